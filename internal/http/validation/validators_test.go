package validation

import (
	"strings"
	"testing"
)

const errNameRequired = "Name is required."

func TestRequired(t *testing.T) {
	tests := []struct {
		name   string
		maxLen int
		value  string
		want   string
	}{
		{name: "valid input", maxLen: 10, value: "valid"},
		{name: "empty string", maxLen: 10, value: "", want: errNameRequired},
		{name: "whitespace only", maxLen: 10, value: "   ", want: errNameRequired},
		{name: "too long", maxLen: 3, value: "abcd", want: "Name cannot exceed 3 characters."},
		{name: "unicode counts runes", maxLen: 3, value: "héé"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Required("Name", tt.maxLen)(tt.value); got != tt.want {
				t.Errorf("Required() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOptional(t *testing.T) {
	if got := Optional("Meta title", 5)(""); got != "" {
		t.Errorf("blank should pass, got %q", got)
	}
	if got := Optional("Meta title", 5)("toolong"); got == "" {
		t.Error("expected length error")
	}
}

func TestIntRange(t *testing.T) {
	v := IntRange("Quantity", 1, 99)
	cases := map[string]bool{"": true, "1": true, "99": true, "0": false, "100": false, "abc": false, "2.5": false}
	for in, ok := range cases {
		if got := v(in); (got == "") != ok {
			t.Errorf("IntRange(%q) = %q, want ok=%v", in, got, ok)
		}
	}
}

func TestNonNegative(t *testing.T) {
	v := NonNegative("Price")
	if got := v("19.99"); got != "" {
		t.Errorf("unexpected error %q", got)
	}
	if got := v("-1"); got != "Price must be 0 or more." {
		t.Errorf("got %q", got)
	}
	if got := v("ten"); got != "Price must be a number." {
		t.Errorf("got %q", got)
	}
}

func TestEmailAndUUID(t *testing.T) {
	if got := Email("Email")("not-an-email"); got != "Enter a valid email." {
		t.Errorf("got %q", got)
	}
	if got := Email("Email")("jane@shop.test"); got != "" {
		t.Errorf("got %q", got)
	}
	if got := UUID("Category")("123"); got == "" {
		t.Error("expected uuid error")
	}
	if got := UUID("Category")("6f1d1c6e-4d0b-4c8e-9b1a-2f9c7f0f6c11"); got != "" {
		t.Errorf("got %q", got)
	}
}

func TestOneOf(t *testing.T) {
	v := OneOf("Status", []string{"Pending", "Shipped"})
	if got := v("shipped"); got != "" {
		t.Errorf("case-insensitive match failed: %q", got)
	}
	if got := v("Lost"); !strings.Contains(got, "Pending, Shipped") {
		t.Errorf("got %q", got)
	}
}

func TestDateOrder(t *testing.T) {
	if DateOrder("2025-02-01", "2025-01-01") == "" {
		t.Error("expected ordering error")
	}
	if DateOrder("2025-01-01", "") != "" {
		t.Error("open window should pass")
	}
}

func TestFieldValidator(t *testing.T) {
	errs := New().
		Validate("name", "", Required("Name", 10)).
		Validate("name", "x", Required("Name", 10)).
		Validate("sku", "SKU-1", Required("SKU", 10)).
		Add("price", "").
		Add("dates", "bad window").
		Errors()

	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %v", errs)
	}
	if errs["name"] != errNameRequired {
		t.Errorf("first error should be kept, got %q", errs["name"])
	}
	if errs["dates"] != "bad window" {
		t.Errorf("got %q", errs["dates"])
	}
}
