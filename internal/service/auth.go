package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/target/ecompanel-ui/internal/domain/model"
	apperrors "github.com/target/ecompanel-ui/internal/errors"
	"github.com/target/ecompanel-ui/internal/ports"
)

// Login failure messages shown on the sign-in form.
const (
	InvalidCredentialsMessage = "Invalid email or password"
	ConnectFailedMessage      = "Failed to connect to server. Please try again."
)

// AuthConfig tunes AuthService.
type AuthConfig struct {
	// ProfileTTL bounds the Redis profile mirror. Zero disables mirroring.
	ProfileTTL time.Duration
	Logger     *slog.Logger
}

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	API      ports.AuthAPI     // Required
	Profiles ports.ProfileStore // Optional: display-name mirror
	Config   AuthConfig
}

// AuthService signs users in and out against the backend and resolves the
// name shown in the admin header. It never decides access; that is the route
// guard's job.
type AuthService struct {
	api        ports.AuthAPI
	profiles   ports.ProfileStore
	profileTTL time.Duration
	logger     *slog.Logger
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	if opts.API == nil {
		panic("AuthAPI is required")
	}
	logger := opts.Config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{
		api:        opts.API,
		profiles:   opts.Profiles,
		profileTTL: opts.Config.ProfileTTL,
		logger:     logger.With("component", "auth"),
	}
}

// Login exchanges credentials for a session. Returned errors carry a message
// suitable for the sign-in form.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.Session, error) {
	if err := req.Validate(); err != nil {
		return model.Session{}, apperrors.ValidationField(fieldOf(err), capitalize(err.Error()))
	}

	sess, err := s.api.Login(ctx, req)
	if err != nil {
		return model.Session{}, loginError(err)
	}

	s.mirrorProfile(ctx, sess)
	s.logger.InfoContext(ctx, "user signed in", "user_id", sess.User.ID)
	return sess, nil
}

func loginError(err error) error {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		return apperrors.Wrap(err, apperrors.ErrCodeUnavailable, ConnectFailedMessage)
	}
	switch appErr.Code {
	case apperrors.ErrCodeUnauthorized:
		return apperrors.Wrap(err, apperrors.ErrCodeUnauthorized, InvalidCredentialsMessage)
	case apperrors.ErrCodeValidation, apperrors.ErrCodeNotFound, apperrors.ErrCodeForbidden, apperrors.ErrCodeConflict:
		msg := appErr.Message
		if strings.TrimSpace(msg) == "" {
			msg = InvalidCredentialsMessage
		}
		return apperrors.Wrap(err, appErr.Code, msg)
	case apperrors.ErrCodeUnavailable, apperrors.ErrCodeCanceled:
		return apperrors.Wrap(err, apperrors.ErrCodeUnavailable, ConnectFailedMessage)
	default:
		return err
	}
}

func (s *AuthService) mirrorProfile(ctx context.Context, sess model.Session) {
	if s.profiles == nil || s.profileTTL <= 0 {
		return
	}
	if err := s.profiles.SaveProfile(ctx, sess.Token, sess.User, s.profileTTL); err != nil {
		s.logger.WarnContext(ctx, "save profile mirror failed", "error", err)
	}
}

// Register creates a backend account.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (model.User, error) {
	if err := req.Validate(); err != nil {
		return model.User{}, apperrors.ValidationField(fieldOf(err), capitalize(err.Error()))
	}
	u, err := s.api.Register(ctx, req)
	if err != nil {
		return model.User{}, err
	}
	return u, nil
}

// Logout drops the profile mirror for token. Clearing the cookie is the caller's job.
func (s *AuthService) Logout(ctx context.Context, token string) {
	if s.profiles == nil || token == "" {
		return
	}
	if err := s.profiles.DeleteProfile(ctx, token); err != nil {
		s.logger.WarnContext(ctx, "delete profile mirror failed", "error", err)
	}
}

// Identity is what the admin header shows for the signed-in user.
type Identity struct {
	Name    string
	Email   string
	Initial string
}

// Identity resolves the display identity for token: profile mirror first,
// then unverified JWT claims, then a generic fallback.
func (s *AuthService) Identity(ctx context.Context, token string) Identity {
	var u model.User
	if s.profiles != nil && token != "" {
		p, err := s.profiles.GetProfile(ctx, token)
		if err != nil {
			s.logger.DebugContext(ctx, "read profile mirror failed", "error", err)
		} else if p != nil {
			u = *p
		}
	}
	if u.FirstName == "" || u.LastName == "" {
		c := claimsUser(token)
		u.FirstName = firstNonBlank(u.FirstName, c.FirstName)
		u.LastName = firstNonBlank(u.LastName, c.LastName)
		u.Email = firstNonBlank(u.Email, c.Email)
	}
	return identityFor(u)
}

func identityFor(u model.User) Identity {
	id := Identity{Name: u.FullName(), Email: u.Email}
	if id.Name == "" {
		id.Name = model.DefaultDisplayName
	}
	switch {
	case strings.TrimSpace(u.FirstName) != "":
		id.Initial = model.Initial(u.FirstName)
	default:
		id.Initial = model.Initial(u.Email)
	}
	return id
}

// claimsUser reads name claims from the token payload without verifying the
// signature. The result is for display only.
func claimsUser(token string) model.User {
	if strings.Count(token, ".") != 2 {
		return model.User{}
	}
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return model.User{}
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return model.User{}
	}
	u := model.User{
		FirstName: claimString(claims, "firstName", "given_name"),
		LastName:  claimString(claims, "lastName", "family_name"),
		Email:     claimString(claims, "email"),
	}
	if u.FirstName == "" && u.LastName == "" {
		if name := claimString(claims, "name", "unique_name"); name != "" {
			first, last, _ := strings.Cut(name, " ")
			u.FirstName, u.LastName = first, strings.TrimSpace(last)
		}
	}
	return u
}

func claimString(claims jwt.MapClaims, keys ...string) string {
	for _, k := range keys {
		if v, ok := claims[k].(string); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

func firstNonBlank(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// fieldOf guesses the form field a model validation error refers to.
func fieldOf(err error) string {
	msg := err.Error()
	if i := strings.IndexByte(msg, ' '); i > 0 {
		return msg[:i]
	}
	return ""
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
