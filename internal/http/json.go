package httpx

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	apperrors "github.com/target/ecompanel-ui/internal/errors"
)

const maxJSONBody = 1 << 20

// DecodeJSON decodes JSON from the request body into dst.
// Returns false after writing a 400 response when the body is invalid.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxJSONBody))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_json", Err: err})
		return false
	}
	return true
}

// WriteJSON writes a JSON response with the given status code and data.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	// Client disconnects can't be recovered from here.
	_, _ = buf.WriteTo(w)
}

// ErrorParams groups parameters for WriteError.
type ErrorParams struct {
	Code    int
	ErrCode string
	Err     error
}

// WriteError writes a JSON error response using ErrorParams.
func WriteError(w http.ResponseWriter, p ErrorParams) {
	msg := ""
	if p.Err != nil {
		msg = p.Err.Error()
	}
	WriteJSON(w, p.Code, errorBody{Success: false, Error: p.ErrCode, Message: msg})
}

type errorBody struct {
	Success  bool     `json:"success"`
	Error    string   `json:"error"`
	Message  string   `json:"message"`
	Field    string   `json:"field,omitempty"`
	Errors   []string `json:"errors,omitempty"`
	Redirect string   `json:"redirect,omitempty"`
}

// WriteAppError writes err as JSON using its application error code and user-facing message.
func WriteAppError(w http.ResponseWriter, err error) {
	code := string(apperrors.GetCode(err))
	if code == "" {
		code = string(apperrors.ErrCodeInternal)
	}
	body := errorBody{
		Error:   code,
		Message: apperrors.UserMessage(err),
		Field:   apperrors.GetField(err),
		Errors:  apperrors.GetDetails(err),
	}
	if apperrors.IsUnauthorized(err) {
		body.Redirect = loginPath
	}
	WriteJSON(w, apperrors.HTTPStatus(err), body)
}

// wantsJSON reports whether the caller asked for a JSON response.
func wantsJSON(r *http.Request) bool {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		return true
	}
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "application/json") && !strings.Contains(accept, "text/html")
}

// errBadRequest is returned when a form body could not be parsed.
var errBadRequest = apperrors.Validation("The form could not be read. Please try again.") //nolint:gochecknoglobals // sentinel
