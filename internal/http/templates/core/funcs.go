// Package core provides the template helpers shared by storefront and admin pages.
package core

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"strconv"
	"strings"
	"time"

	"github.com/target/ecompanel-ui/internal/domain/model"
	"github.com/target/ecompanel-ui/internal/http/uiutil"
)

// Deps holds dependencies for constructing the core template func map.
type Deps struct {
	Template           **template.Template
	ContentTemplateFor func(string) string
}

// Funcs returns a template.FuncMap containing helpers that are broadly useful across templates.
func Funcs(deps Deps) template.FuncMap {
	funcs := template.FuncMap{
		"sectionTmpl":   deps.ContentTemplateFor,
		"friendlyTime":  createFriendlyTimeFunc(),
		"timeTag":       createTimeTagFunc(),
		"add":           func(a, b int) int { return a + b },
		"sub":           func(a, b int) int { return a - b },
		"seq":           seq,
		"contains":      strings.Contains,
		"money":         Money,
		"formatNumber":  FormatNumber,
		"stockClass":    StockClass,
		"statusClass":   StatusClass,
		"truncateText":  TruncateText,
		"orderStatuses": model.OrderStatuses,
		"deref":         deref,
		"num":           Num,
	}

	addRenderFuncs(funcs, deps)
	return funcs
}

func addRenderFuncs(funcs template.FuncMap, deps Deps) {
	funcs["renderSection"] = func(page string, data any) (template.HTML, error) {
		if deps.Template == nil || *deps.Template == nil {
			return "", errors.New("template not initialized")
		}
		var buf bytes.Buffer
		if err := (*deps.Template).ExecuteTemplate(&buf, deps.ContentTemplateFor(page), data); err != nil {
			return "", err
		}
		// #nosec G203 - rendered by our own html/template set; values were escaped during execution.
		return template.HTML(buf.String()), nil
	}

	funcs["toJSON"] = func(v any) (string, error) {
		b, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}

func asTime(ts any) time.Time {
	switch v := ts.(type) {
	case time.Time:
		return v
	case *time.Time:
		if v != nil {
			return *v
		}
	case model.Timestamp:
		return v.Time
	case *model.Timestamp:
		if v != nil {
			return v.Time
		}
	}
	return time.Time{}
}

func createFriendlyTimeFunc() func(any) string {
	return func(ts any) string {
		return uiutil.FormatFriendlyDateTime(asTime(ts))
	}
}

func createTimeTagFunc() func(any) template.HTML {
	return func(ts any) template.HTML {
		t0 := asTime(ts)
		if t0.IsZero() {
			return ""
		}
		// #nosec G203 - constructed from escaped values only
		return template.HTML(fmt.Sprintf(
			"<time datetime=\"%s\" title=\"%s\">%s</time>",
			t0.UTC().Format(time.RFC3339),
			template.HTMLEscapeString(t0.Local().Format(time.RFC1123)),
			template.HTMLEscapeString(uiutil.FriendlyRelativeTime(t0)),
		))
	}
}

// Money formats float amounts and pointers to them; nil renders as "".
func Money(v any) string {
	switch x := v.(type) {
	case float64:
		return uiutil.FormatMoney(x)
	case *float64:
		if x == nil {
			return ""
		}
		return uiutil.FormatMoney(*x)
	case int:
		return uiutil.FormatMoney(float64(x))
	default:
		return fmt.Sprint(v)
	}
}

// FormatNumber formats an integer with comma separators for thousands.
func FormatNumber(v any) string {
	var n int64
	switch x := v.(type) {
	case int:
		n = int64(x)
	case int64:
		n = x
	case int32:
		n = int64(x)
	default:
		return fmt.Sprint(v)
	}
	neg := n < 0
	if neg {
		n = -n
	}
	s := strconv.FormatInt(n, 10)
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	lead := len(s) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(s[:lead])
	for i := lead; i < len(s); i += 3 {
		b.WriteByte(',')
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// StockClass maps a stock label to a badge class.
func StockClass(s model.StockStatus) string {
	switch s {
	case model.InStock:
		return "badge-success"
	case model.LowStock:
		return "badge-warning"
	default:
		return "badge-danger"
	}
}

// StatusClass maps an order status to a badge class.
func StatusClass(s model.OrderStatus) string {
	switch s {
	case model.OrderPending:
		return "badge-warning"
	case model.OrderProcessing:
		return "badge-info"
	case model.OrderShipped:
		return "badge-primary"
	case model.OrderDelivered:
		return "badge-success"
	case model.OrderCancelled:
		return "badge-danger"
	default:
		return "badge-light"
	}
}

// TruncateText truncates s to maxLen runes, adding an ellipsis when shortened.
func TruncateText(s string, maxLen int) string {
	if maxLen <= 0 {
		return s
	}
	return uiutil.TruncateWithEllipsis(s, maxLen)
}

func seq(from, to int) []int {
	if to < from {
		return nil
	}
	out := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, i)
	}
	return out
}

// Num renders a number for a form input; nil pointers render as "".
func Num(v any) string {
	switch x := v.(type) {
	case *float64:
		if x == nil {
			return ""
		}
		return strconv.FormatFloat(*x, 'f', -1, 64)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int:
		return strconv.Itoa(x)
	default:
		return fmt.Sprint(v)
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
