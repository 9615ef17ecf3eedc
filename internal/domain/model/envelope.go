// Package model defines the records exchanged with the backend REST API.
//
// Every resource is decoded into an explicit struct at the API boundary and
// request payloads are validated before they leave the process.
package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Envelope is the response wrapper returned by every backend endpoint.
type Envelope[T any] struct {
	Success bool     `json:"success"`
	Data    T        `json:"data"`
	Message string    `json:"message,omitempty"`
	Title   string    `json:"title,omitempty"`
	Errors  ErrorList `json:"errors,omitempty"`
}

// FieldError is a single problem reported by the backend.
// Field is empty for errors that are not tied to an input.
type FieldError struct {
	Field   string
	Message string
}

// ErrorList accepts both a flat list of messages and the
// {"field": ["message", ...]} validation-problem shape.
type ErrorList []FieldError

// UnmarshalJSON implements json.Unmarshaler.
func (l *ErrorList) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*l = nil
		return nil
	}
	switch b[0] {
	case '[':
		var msgs []string
		if err := json.Unmarshal(b, &msgs); err != nil {
			return fmt.Errorf("errors list: %w", err)
		}
		out := make(ErrorList, 0, len(msgs))
		for _, m := range msgs {
			out = append(out, FieldError{Message: m})
		}
		*l = out
	case '{':
		var byField map[string][]string
		if err := json.Unmarshal(b, &byField); err != nil {
			return fmt.Errorf("errors map: %w", err)
		}
		fields := make([]string, 0, len(byField))
		for f := range byField {
			fields = append(fields, f)
		}
		sort.Strings(fields)
		out := make(ErrorList, 0, len(byField))
		for _, f := range fields {
			name := normalizeFieldName(f)
			for _, m := range byField[f] {
				out = append(out, FieldError{Field: name, Message: m})
			}
		}
		*l = out
	default:
		var msg string
		if err := json.Unmarshal(b, &msg); err != nil {
			return fmt.Errorf("errors: %w", err)
		}
		*l = ErrorList{{Message: msg}}
	}
	return nil
}

// Messages flattens the list to "field: message" strings.
func (l ErrorList) Messages() []string {
	out := make([]string, 0, len(l))
	for _, e := range l {
		if e.Field == "" {
			out = append(out, e.Message)
			continue
		}
		out = append(out, e.Field+": "+e.Message)
	}
	return out
}

// normalizeFieldName turns "$.categoryId" or "Request.Name" into "categoryId" / "name".
func normalizeFieldName(f string) string {
	f = strings.TrimPrefix(strings.TrimPrefix(f, "$"), ".")
	if i := strings.LastIndex(f, "."); i >= 0 {
		f = f[i+1:]
	}
	if f == "" {
		return f
	}
	return strings.ToLower(f[:1]) + f[1:]
}

// Paged is a page of items returned by paginated endpoints.
type Paged[T any] struct {
	Items      []T `json:"items"`
	TotalCount int `json:"totalCount"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
}

// HasNext reports whether another page follows this one.
func (p Paged[T]) HasNext() bool {
	if p.TotalPages > 0 {
		return p.Page < p.TotalPages
	}
	return p.PageSize > 0 && p.Page*p.PageSize < p.TotalCount
}

// SortDirection orders paged listings.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// Valid reports whether the direction is supported.
func (d SortDirection) Valid() bool {
	return d == SortAsc || d == SortDesc
}

// timestampLayouts are the formats the backend is known to emit.
//
//nolint:gochecknoglobals // static read-only lookup
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.9999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Timestamp decodes backend timestamps that may omit the zone offset.
// Values without an offset are interpreted as UTC.
type Timestamp struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Timestamp) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		t.Time = time.Time{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("timestamp: %w", err)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed.UTC()
			return nil
		}
	}
	return fmt.Errorf("timestamp: unsupported format %q", s)
}

// MarshalJSON implements json.Marshaler.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.UTC().Format(time.RFC3339))
}
