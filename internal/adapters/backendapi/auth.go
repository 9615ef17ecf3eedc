package backendapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	jmespath "github.com/jmespath-community/go-jmespath"

	"github.com/target/ecompanel-ui/internal/domain/model"
	apperrors "github.com/target/ecompanel-ui/internal/errors"
	"github.com/target/ecompanel-ui/internal/ports"
)

// TokenMissingMessage is reported when login succeeds without a token in the response.
const TokenMissingMessage = "Token not received from server"

var _ ports.AuthAPI = (*Client)(nil)

// Login posts credentials to /api/auth/login. The response may or may not be
// wrapped in an envelope; the configured expressions locate token and user.
func (c *Client) Login(ctx context.Context, req model.LoginRequest) (model.Session, error) {
	payload, err := c.invoke(ctx, request{method: http.MethodPost, path: "/api/auth/login", body: req})
	if err != nil {
		return model.Session{}, err
	}

	var doc any
	if err := json.Unmarshal(payload, &doc); err != nil {
		return model.Session{}, apperrors.Wrap(err, apperrors.ErrCodeUnavailable, "decode login response")
	}
	if m, ok := doc.(map[string]any); ok {
		if success, ok := m["success"].(bool); ok && !success {
			return model.Session{}, errorFromFailedEnvelope(payload, envelope{Message: stringField(m, "message")})
		}
	}

	token, err := c.extractToken(doc)
	if err != nil {
		return model.Session{}, err
	}
	user := c.extractUser(doc)
	if user.Email == "" {
		user.Email = req.Email
	}
	return model.Session{Token: token, User: user}, nil
}

func (c *Client) extractToken(doc any) (string, error) {
	res, err := jmespath.Search(c.tokenExpr, doc)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeInternal, "evaluate token expression")
	}
	tok, _ := res.(string)
	if tok = strings.TrimSpace(tok); tok == "" {
		return "", apperrors.Internal(TokenMissingMessage)
	}
	return tok, nil
}

// extractUser returns the zero User when the response carries no profile.
func (c *Client) extractUser(doc any) model.User {
	res, err := jmespath.Search(c.userExpr, doc)
	if err != nil || res == nil {
		return model.User{}
	}
	b, err := json.Marshal(res)
	if err != nil {
		return model.User{}
	}
	var u model.User
	if err := json.Unmarshal(b, &u); err != nil {
		c.logger.Debug("login response user has unexpected shape", "error", err)
		return model.User{}
	}
	return u
}

// Register creates an account via /api/auth/register.
func (c *Client) Register(ctx context.Context, req model.RegisterRequest) (model.User, error) {
	out, err := sendJSON[model.User](ctx, c, request{method: http.MethodPost, path: "/api/auth/register", body: req})
	if err != nil {
		return model.User{}, err
	}
	return *out, nil
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}
