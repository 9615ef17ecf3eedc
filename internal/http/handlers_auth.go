package httpx

import (
	"net/http"

	"github.com/target/ecompanel-ui/internal/domain/model"
	apperrors "github.com/target/ecompanel-ui/internal/errors"
)

func loginMeta() PageMeta {
	return PageMeta{Title: "Sign in - eCom Panel", PageTitle: "Sign in", CurrentPage: PageLogin}
}

// LoginPage renders the sign-in form. RouteGuard has already sent signed-in users to /admin.
// GET /login.
func (h *UIHandlers) LoginPage(w http.ResponseWriter, r *http.Request) {
	data := NewTemplateData(r, loginMeta()).With("Email", "").Build()
	h.renderPage(w, r, data)
}

// Login exchanges credentials with the backend and stores the returned token in the session cookie.
// POST /login (form or JSON).
func (h *UIHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	jsonBody := isJSONBody(r)
	if jsonBody {
		if !DecodeJSON(w, r, &req) {
			return
		}
	} else {
		if err := parseRequestForm(r); err != nil {
			h.renderLoginError(w, r, req, err)
			return
		}
		req = model.LoginRequest{Email: formString(r, "email"), Password: r.PostFormValue("password")}
	}

	sess, err := h.Auth.Login(r.Context(), req)
	if err != nil {
		h.logger().InfoContext(r.Context(), "sign-in rejected", "code", string(apperrors.GetCode(err)))
		if jsonBody || wantsJSON(r) {
			WriteJSON(w, apperrors.HTTPStatus(err), errorBody{
				Error:   string(apperrors.GetCode(err)),
				Message: apperrors.UserMessage(err),
				Field:   apperrors.GetField(err),
			})
			return
		}
		h.renderLoginError(w, r, req, err)
		return
	}

	setSessionCookie(w, r, h.Cookies, sess.Token)
	if jsonBody || wantsJSON(r) {
		WriteJSON(w, http.StatusOK, map[string]any{"success": true, "redirect": adminPath})
		return
	}
	Redirect(w, r, adminPath)
}

// renderLoginError re-renders the form keeping the email, never the password.
func (h *UIHandlers) renderLoginError(w http.ResponseWriter, r *http.Request, req model.LoginRequest, err error) {
	status := http.StatusOK
	if !IsHTMX(r) {
		status = apperrors.HTTPStatus(err)
	}
	data := NewTemplateData(r, loginMeta()).
		With("Email", req.Email).
		WithError(apperrors.UserMessage(err)).
		Build()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	h.renderPage(w, r, data)
}

// Logout clears the session cookie and the profile mirror.
// POST /logout.
func (h *UIHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	token := readToken(r, h.Cookies.SessionName)
	if h.Auth != nil {
		h.Auth.Logout(r.Context(), token)
	}
	clearSessionCookie(w, r, h.Cookies)

	if wantsJSON(r) {
		WriteJSON(w, http.StatusOK, map[string]string{"redirect": loginPath})
		return
	}
	Redirect(w, r, loginPath)
}

// Register creates an account on the backend.
// POST /register (JSON).
func (h *UIHandlers) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	u, err := h.Auth.Register(r.Context(), req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, map[string]any{"success": true, "data": u})
}
