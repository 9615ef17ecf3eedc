package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	apperrors "github.com/target/ecompanel-ui/internal/errors"
)

// ErrorRenderer is a function that renders an error template with the given data.
type ErrorRenderer func(w http.ResponseWriter, r *http.Request, data map[string]any)

// ErrorOpts contains all options needed to re-render a form after a failed submit.
type ErrorOpts struct {
	W http.ResponseWriter
	R *http.Request
	// Err is the error that occurred (optional, can be nil if only field errors)
	Err error
	// FieldErrors contains field-level validation errors (field name → error message)
	FieldErrors map[string]string
	// Renderer renders the page; typically h.renderPage.
	Renderer ErrorRenderer
	// Base is the page data the form was rendered with, kept so inputs survive.
	Base *TemplateDataBuilder
	// Data contains additional template data, such as submitted values or select options.
	Data map[string]any
	// StatusCode is the HTTP status code to set (0 keeps 200 so htmx swaps the body)
	StatusCode int
	// ShowToast triggers a toast notification with the error message
	ShowToast bool
}

// RenderError re-renders a page with field and general error messages.
func RenderError(opts ErrorOpts) {
	if opts.Renderer == nil || opts.Base == nil {
		http.Error(opts.W, "misconfigured error renderer", http.StatusInternalServerError)
		return
	}
	builder := opts.Base

	generalError := processError(opts.Err, &opts.FieldErrors)
	if len(opts.FieldErrors) > 0 {
		builder.WithFieldErrors(opts.FieldErrors)
	}
	if generalError != "" {
		builder.WithError(generalError)
	} else if len(opts.FieldErrors) > 0 {
		builder.WithError(errMsgFixBelow)
	}
	for k, v := range opts.Data {
		builder.With(k, v)
	}
	if opts.ShowToast && generalError != "" {
		triggerToast(opts.W, generalError, "error")
	}
	if opts.StatusCode != 0 {
		opts.W.Header().Set("Content-Type", "text/html; charset=utf-8")
		opts.W.WriteHeader(opts.StatusCode)
	}
	opts.Renderer(opts.W, opts.R, builder.Build())
}

// processError maps err to a user-facing message. Validation errors naming a
// field are moved into fieldErrors instead. Returns "" if err is nil.
func processError(err error, fieldErrors *map[string]string) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "Request timed out. Please try again."
	}
	if errors.Is(err, context.Canceled) {
		return "Request was canceled."
	}

	if apperrors.IsValidation(err) {
		if field := apperrors.GetField(err); field != "" && fieldErrors != nil {
			if *fieldErrors == nil {
				*fieldErrors = make(map[string]string)
			}
			(*fieldErrors)[field] = apperrors.UserMessage(err)
			return errMsgFixBelow
		}
		msg := apperrors.UserMessage(err)
		if details := apperrors.GetDetails(err); len(details) > 0 {
			msg = strings.Join(details, " ")
		}
		return msg
	}
	return apperrors.UserMessage(err)
}

// handleServiceError answers a failed service call in the shape the caller expects:
// an expired session is cleared and sent to /login, JSON callers get an error body,
// htmx swaps get a toast plus error fragment, and browsers get the error page.
func (h *UIHandlers) handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	if apperrors.IsUnauthorized(err) {
		h.sessionExpired(w, r)
		return
	}

	status := apperrors.HTTPStatus(err)
	log := h.logger().WarnContext
	if status >= http.StatusInternalServerError {
		log = h.logger().ErrorContext
	}
	log(r.Context(), "request failed",
		slog.String("path", r.URL.Path),
		slog.Int("status", status),
		slog.Any("error", err),
	)

	if wantsJSON(r) || !IsBrowserRequest(r) {
		WriteAppError(w, err)
		return
	}

	msg := processError(err, nil)
	if WantsPartial(r) {
		triggerToast(w, msg, "error")
		h.renderFragment(w, r, "error-fragment", map[string]any{"Message": msg, "StatusCode": status})
		return
	}
	h.renderErrorPage(w, r, status, msg)
}

// sessionExpired drops the session cookie after the backend rejected the token.
// The route guard checks presence only, so a stale cookie would otherwise loop
// the browser back into /admin.
func (h *UIHandlers) sessionExpired(w http.ResponseWriter, r *http.Request) {
	clearSessionCookie(w, r, h.Cookies)
	h.logger().InfoContext(r.Context(), "session rejected by backend; cookie cleared", "path", r.URL.Path)
	if wantsJSON(r) {
		WriteAppError(w, apperrors.Unauthorized())
		return
	}
	Redirect(w, r, loginPath)
}

// NotFound renders a 404 as HTML for browsers and JSON otherwise.
func (h *UIHandlers) NotFound(w http.ResponseWriter, r *http.Request) {
	if !IsBrowserRequest(r) || wantsJSON(r) {
		WriteError(w, ErrorParams{
			Code:    http.StatusNotFound,
			ErrCode: string(apperrors.ErrCodeNotFound),
			Err:     errors.New("not found"),
		})
		return
	}
	h.renderErrorPage(w, r, http.StatusNotFound, "The page you're looking for doesn't exist.")
}

func (h *UIHandlers) renderErrorPage(w http.ResponseWriter, r *http.Request, status int, msg string) {
	isAdmin := strings.HasPrefix(r.URL.Path, adminPath+"/") || r.URL.Path == adminPath
	homeURL := "/"
	if isAdmin {
		homeURL = adminPath
	}
	data := map[string]any{
		"Title":      http.StatusText(status),
		"StatusCode": status,
		"Message":    msg,
		"IsAdmin":    isAdmin,
		"HomeURL":    homeURL,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if h.T == nil {
		_, _ = w.Write([]byte(http.StatusText(status)))
		return
	}
	if err := h.T.RenderError(w, r, data); err != nil {
		_, _ = w.Write([]byte(http.StatusText(status)))
	}
}
