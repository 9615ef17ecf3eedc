package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecide_Scenarios(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		path  string
		token string
		want  Decision
	}{
		{name: "admin root without token", path: "/admin", token: "", want: RedirectToLogin},
		{name: "nested admin path with token", path: "/admin/products/add", token: "abc123", want: Allow},
		{name: "login with token", path: "/login", token: "abc123", want: RedirectToHome},
		{name: "login without token", path: "/login", token: "", want: Allow},
		{name: "empty token is absent", path: "/admin/orders", token: "", want: RedirectToLogin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Decide(tt.path, tt.token))
		})
	}
}

func TestDecide_ProtectedPrefixIsLiteral(t *testing.T) {
	t.Parallel()

	for _, p := range []string{"/admin", "/admin/", "/admin/categories", "/admin/orders/42", "/administrator"} {
		assert.Equal(t, RedirectToLogin, Decide(p, ""), p)
		assert.Equal(t, Allow, Decide(p, "tok"), p)
	}
}

func TestDecide_LoginIsExactMatch(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Allow, Decide("/login/reset", "tok"))
	assert.Equal(t, Allow, Decide("/login/", "tok"))
	assert.Equal(t, Allow, Decide("/LOGIN", "tok"))
}

func TestDecide_OtherPathsAllow(t *testing.T) {
	t.Parallel()

	for _, p := range []string{"/", "/products", "/cart", "/category/shoes", "", "/api/admin"} {
		assert.Equal(t, Allow, Decide(p, ""), p)
		assert.Equal(t, Allow, Decide(p, "tok"), p)
	}
}

func TestDecide_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := [][2]string{{"/admin", ""}, {"/admin/x", "t"}, {"/login", "t"}, {"/login", ""}, {"/", ""}}
	for _, in := range inputs {
		first := Decide(in[0], in[1])
		second := Decide(in[0], in[1])
		assert.Equal(t, first, second)
	}
}

func TestDecision_Location(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/login", RedirectToLogin.Location())
	assert.Equal(t, "/admin", RedirectToHome.Location())
	assert.Empty(t, Allow.Location())
	assert.False(t, Allow.IsRedirect())
	assert.True(t, RedirectToLogin.IsRedirect())
	assert.Equal(t, "redirect_to_home", RedirectToHome.String())
	assert.Equal(t, "unknown", Decision(99).String())
}

func TestStateOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Anonymous, StateOf(""))
	assert.Equal(t, Authenticated, StateOf("stale-or-forged"))
}

func TestIsGuarded(t *testing.T) {
	t.Parallel()

	assert.True(t, IsGuarded("/admin"))
	assert.True(t, IsGuarded("/admin/brands"))
	assert.True(t, IsGuarded("/login"))
	assert.False(t, IsGuarded("/login/reset"))
	assert.False(t, IsGuarded("/administrator"))
	assert.False(t, IsGuarded("/adminx"))
	assert.False(t, IsGuarded("/"))
	assert.False(t, IsGuarded("/cart"))
}
