package httpx

import (
	"net/http"
	"time"
)

// CookieConfig describes the cookies the UI issues.
type CookieConfig struct {
	SessionName   string
	SessionMaxAge int // seconds
	CartMaxAge    int // seconds; 0 makes the cart cookie a browser-session cookie
	Domain        string
}

// setSessionCookie stores token in the session cookie read by RouteGuard.
func setSessionCookie(w http.ResponseWriter, r *http.Request, cfg CookieConfig, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     cfg.SessionName,
		Value:    token,
		Path:     "/",
		Domain:   cfg.Domain,
		MaxAge:   cfg.SessionMaxAge,
		Expires:  time.Now().Add(time.Duration(cfg.SessionMaxAge) * time.Second),
		HttpOnly: true,
		Secure:   isSecureRequest(r),
		SameSite: http.SameSiteLaxMode,
	})
}

// clearSessionCookie expires the session cookie immediately.
func clearSessionCookie(w http.ResponseWriter, r *http.Request, cfg CookieConfig) {
	http.SetCookie(w, &http.Cookie{
		Name:     cfg.SessionName,
		Value:    "",
		Path:     "/",
		Domain:   cfg.Domain,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   isSecureRequest(r),
		SameSite: http.SameSiteLaxMode,
	})
}

func setCartCookie(w http.ResponseWriter, r *http.Request, cfg CookieConfig, id string) {
	c := &http.Cookie{
		Name:     CartCookieName,
		Value:    id,
		Path:     "/",
		Domain:   cfg.Domain,
		HttpOnly: true,
		Secure:   isSecureRequest(r),
		SameSite: http.SameSiteLaxMode,
	}
	if cfg.CartMaxAge > 0 {
		c.MaxAge = cfg.CartMaxAge
	}
	http.SetCookie(w, c)
}
