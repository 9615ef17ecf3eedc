package httpx

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	apperrors "github.com/target/ecompanel-ui/internal/errors"
)

// FormParser parses form data from an HTTP request and returns the parsed data
// along with any field-level validation errors.
type FormParser[T any] func(r *http.Request) (T, map[string]string)

// FormService defines the Create and Update operations a form submits to.
type FormService[T any] interface {
	Create(ctx context.Context, req T) error
	Update(ctx context.Context, id string, req T) error
}

// formFuncs adapts a pair of service methods to FormService.
type formFuncs[T any] struct {
	create func(context.Context, T) error
	update func(context.Context, string, T) error
}

func (f formFuncs[T]) Create(ctx context.Context, req T) error { return f.create(ctx, req) }

func (f formFuncs[T]) Update(ctx context.Context, id string, req T) error { return f.update(ctx, id, req) }

// FormHandlerOpts contains all options needed to handle a form submission.
type FormHandlerOpts[T any] struct {
	W        http.ResponseWriter
	R        *http.Request
	Mode     FormMode
	Parser   FormParser[T]
	Service  FormService[T]
	Renderer ErrorRenderer
	// Page builds the form page data (layout plus select options) for re-rendering.
	Page func(r *http.Request, mode FormMode) *TemplateDataBuilder
	// SuccessURL is where the browser goes after a successful save.
	SuccessURL string
	// SuccessMessage is shown as a toast after the redirect.
	SuccessMessage string
}

// handleForm runs the parse, validate, save and redirect cycle shared by every
// admin form. Failed submits re-render the form with the submitted values under "Form".
func handleForm[T any](h *UIHandlers, opts FormHandlerOpts[T]) {
	if opts.Parser == nil || opts.Service == nil || opts.Renderer == nil || opts.Page == nil {
		http.Error(opts.W, "misconfigured form handler", http.StatusInternalServerError)
		return
	}

	var id string
	switch opts.Mode {
	case FormModeCreate:
	case FormModeEdit:
		if id = opts.R.PathValue("id"); id == "" {
			h.NotFound(opts.W, opts.R)
			return
		}
	default:
		http.Error(opts.W, "invalid form mode", http.StatusBadRequest)
		return
	}

	if err := parseRequestForm(opts.R); err != nil {
		opts.renderFormError(nil, err, nil, id)
		return
	}

	data, fieldErrors := opts.Parser(opts.R)
	if len(fieldErrors) > 0 {
		opts.renderFormError(fieldErrors, nil, data, id)
		return
	}

	var err error
	if opts.Mode == FormModeEdit {
		err = opts.Service.Update(opts.R.Context(), id, data)
	} else {
		err = opts.Service.Create(opts.R.Context(), data)
	}
	if err != nil {
		if apperrors.IsUnauthorized(err) {
			h.sessionExpired(opts.W, opts.R)
			return
		}
		h.logger().WarnContext(opts.R.Context(), "form submit failed",
			"path", opts.R.URL.Path, "mode", string(opts.Mode), "error", err)
		opts.renderFormError(nil, err, data, id)
		return
	}

	triggerToast(opts.W, opts.SuccessMessage, "success")
	Redirect(opts.W, opts.R, opts.SuccessURL)
}

func (opts FormHandlerOpts[T]) renderFormError(fieldErrors map[string]string, err error, data any, id string) {
	extra := map[string]any{"Mode": string(opts.Mode), "ID": id}
	if data != nil {
		extra["Form"] = data
	}
	RenderError(ErrorOpts{
		W:           opts.W,
		R:           opts.R,
		Err:         err,
		FieldErrors: fieldErrors,
		Renderer:    opts.Renderer,
		Base:        opts.Page(opts.R, opts.Mode),
		Data:        extra,
		StatusCode:  formErrorStatus(opts.R, err),
		ShowToast:   err != nil,
	})
}

// formErrorStatus keeps 200 for htmx so the swap happens, and reports the real status otherwise.
func formErrorStatus(r *http.Request, err error) int {
	if IsHTMX(r) {
		return 0
	}
	if err == nil {
		return http.StatusUnprocessableEntity
	}
	return apperrors.HTTPStatus(err)
}

// parseRequestForm parses urlencoded and multipart bodies. CSRF validation may already have done so.
func parseRequestForm(r *http.Request) error {
	var err error
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		err = r.ParseMultipartForm(maxUploadSize)
	} else {
		err = r.ParseForm()
	}
	if err != nil {
		return errBadRequest
	}
	return nil
}

// formString returns the trimmed form value for key.
func formString(r *http.Request, key string) string {
	return strings.TrimSpace(r.FormValue(key))
}

// formOptional returns nil for a blank form value.
func formOptional(r *http.Request, key string) *string {
	v := formString(r, key)
	if v == "" {
		return nil
	}
	return &v
}

// formBool treats any checked checkbox value as true.
func formBool(r *http.Request, key string) bool {
	switch strings.ToLower(formString(r, key)) {
	case "on", "true", "1", "yes":
		return true
	default:
		return false
	}
}

// formInt parses an integer, returning 0 for blank or unparsable input.
// Range checks belong to the validators.
func formInt(r *http.Request, key string) int {
	n, err := strconv.Atoi(formString(r, key))
	if err != nil {
		return 0
	}
	return n
}

func formFloat(r *http.Request, key string) float64 {
	f, err := strconv.ParseFloat(formString(r, key), 64)
	if err != nil {
		return 0
	}
	return f
}

// formFloatPtr returns nil for blank or unparsable input.
func formFloatPtr(r *http.Request, key string) *float64 {
	v := formString(r, key)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil
	}
	return &f
}
