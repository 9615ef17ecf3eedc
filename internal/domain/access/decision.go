// Package access decides whether a navigation may proceed based on the
// requested path and the presence of a session token.
//
// The decision is presence-only. A token that is present but expired, revoked
// or forged still yields Allow for the protected area; the backend is the
// authority and rejects the next API call made with it. Callers must not treat
// Allow as proof of authentication.
package access

import "strings"

// Decision is the outcome of evaluating a navigation.
type Decision int

const (
	// Allow lets the request proceed unmodified.
	Allow Decision = iota
	// RedirectToLogin sends an anonymous visitor of the protected area to LoginPath.
	RedirectToLogin
	// RedirectToHome sends a visitor holding a token away from LoginPath to HomePath.
	RedirectToHome
)

const (
	// ProtectedPrefix is matched as a literal string prefix.
	ProtectedPrefix = "/admin"
	// LoginPath is matched exactly.
	LoginPath = "/login"
	// HomePath is the root of the protected area.
	HomePath = "/admin"
)

// String returns the decision name used in logs and metrics.
func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case RedirectToLogin:
		return "redirect_to_login"
	case RedirectToHome:
		return "redirect_to_home"
	default:
		return "unknown"
	}
}

// Location returns the redirect target for d, or "" for Allow.
func (d Decision) Location() string {
	switch d {
	case RedirectToLogin:
		return LoginPath
	case RedirectToHome:
		return HomePath
	default:
		return ""
	}
}

// IsRedirect reports whether d requires a redirect response.
func (d Decision) IsRedirect() bool {
	return d == RedirectToLogin || d == RedirectToHome
}

// Decide evaluates path and token. An empty token is treated as absent.
func Decide(path, token string) Decision {
	hasToken := token != ""
	if strings.HasPrefix(path, ProtectedPrefix) {
		if !hasToken {
			return RedirectToLogin
		}
		return Allow
	}
	if path == LoginPath {
		if hasToken {
			return RedirectToHome
		}
		return Allow
	}
	return Allow
}

// State is the session state as observed by the guard.
type State int

const (
	// Anonymous means no token is present.
	Anonymous State = iota
	// Authenticated means a token is present but has not been validated.
	Authenticated
)

// StateOf classifies a token value.
func StateOf(token string) State {
	if token == "" {
		return Anonymous
	}
	return Authenticated
}

// IsGuarded reports whether path belongs to the routes the guard is mounted on:
// /admin, anything under /admin/, and /login. Decide itself still applies the
// bare prefix rule.
func IsGuarded(path string) bool {
	return path == ProtectedPrefix || strings.HasPrefix(path, ProtectedPrefix+"/") || path == LoginPath
}
