package core

import (
	"html/template"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/target/ecompanel-ui/internal/domain/model"
)

func TestMoney(t *testing.T) {
	price := 12.5
	var none *float64
	assert.Equal(t, "$12.50", Money(price))
	assert.Equal(t, "$12.50", Money(&price))
	assert.Equal(t, "", Money(none))
	assert.Equal(t, "$3.00", Money(3))
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "999", FormatNumber(999))
	assert.Equal(t, "1,000", FormatNumber(1000))
	assert.Equal(t, "-12,345,678", FormatNumber(int64(-12345678)))
	assert.Equal(t, "x", FormatNumber("x"))
}

func TestBadgeClasses(t *testing.T) {
	assert.Equal(t, "badge-success", StockClass(model.InStock))
	assert.Equal(t, "badge-warning", StockClass(model.LowStock))
	assert.Equal(t, "badge-danger", StockClass(model.OutOfStock))
	assert.Equal(t, "badge-danger", StatusClass(model.OrderCancelled))
	assert.Equal(t, "badge-light", StatusClass("Lost"))
}

func TestRenderSection(t *testing.T) {
	var tmpl *template.Template
	funcs := Funcs(Deps{
		Template:           &tmpl,
		ContentTemplateFor: func(page string) string { return page + "-content" },
	})
	var err error
	tmpl, err = template.New("root").Funcs(funcs).Parse(
		`{{define "cart-content"}}<p>{{.}}</p>{{end}}{{define "page"}}{{renderSection "cart" .}}{{end}}`,
	)
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, tmpl.ExecuteTemplate(&sb, "page", "<b>hi</b>"))
	assert.Equal(t, "<p>&lt;b&gt;hi&lt;/b&gt;</p>", sb.String())
}

func TestTimeHelpers(t *testing.T) {
	funcs := Funcs(Deps{ContentTemplateFor: func(string) string { return "" }})
	friendly := funcs["friendlyTime"].(func(any) string)
	tag := funcs["timeTag"].(func(any) template.HTML)

	ts := model.Timestamp{Time: time.Date(2025, 3, 4, 15, 30, 0, 0, time.UTC)}
	assert.NotEmpty(t, friendly(ts))
	assert.Equal(t, "", friendly(model.Timestamp{}))
	assert.Contains(t, string(tag(ts)), `datetime="2025-03-04T15:30:00Z"`)
	assert.Equal(t, template.HTML(""), tag(nil))
}

func TestNum(t *testing.T) {
	v := 2.5
	var none *float64
	assert.Equal(t, "2.5", Num(&v))
	assert.Equal(t, "", Num(none))
	assert.Equal(t, "7", Num(7))
	assert.Equal(t, "10", Num(10.0))
}
