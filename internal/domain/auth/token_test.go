package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenContext(t *testing.T) {
	ctx := context.Background()
	_, ok := TokenFromContext(ctx)
	assert.False(t, ok)

	assert.Equal(t, ctx, ContextWithToken(ctx, ""))

	tok, ok := TokenFromContext(ContextWithToken(ctx, "abc"))
	assert.True(t, ok)
	assert.Equal(t, "abc", tok)
}
