package views

import (
	"errors"
	"html/template"
	"strings"

	"github.com/SscSPs/business_panel/internal/core/domain"
	portssvc "github.com/SscSPs/business_panel/internal/core/ports/services"
	"github.com/SscSPs/business_panel/internal/utils"
	"github.com/SscSPs/business_panel/internal/validation"
	"github.com/shopspring/decimal"
)

// Funcs are the helpers available to every template.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"pln":         utils.FormatPLN,
		"hours":       utils.FormatHours,
		"day":         func(d domain.Day) string { return d.Display() },
		"isoDay":      func(d domain.Day) string { return d.String() },
		"fieldError":  fieldError,
		"hasError":    func(fe validation.FieldErrors, field string) bool { return fe.Has(field) },
		"label":       lookupLabel,
		"selected":    func(a domain.ID, b string) bool { return a.String() == b },
		"barWidth":    BarWidth,
		"negative":    func(d decimal.Decimal) bool { return d.IsNegative() },
		"targetLabel": func(t domain.EntryTarget) string { return t.Label() },
		"dict":        dict,
		"orDash": func(s string) string {
			if strings.TrimSpace(s) == "" {
				return "-"
			}
			return s
		},
	}
}

func fieldError(fe validation.FieldErrors, field string) string {
	return fe.Get(field)
}

func lookupLabel(options []portssvc.LookupOption, id domain.ID) string {
	for _, o := range options {
		if o.ID == id {
			return o.Label
		}
	}
	return ""
}

// BarWidth scales value to a percentage of largest for the HTML bar charts.
// Negative values are drawn by magnitude.
func BarWidth(value, largest decimal.Decimal) string {
	if largest.IsZero() {
		return "0%"
	}
	pct := value.Abs().Div(largest.Abs()).Mul(decimal.NewFromInt(100))
	if pct.GreaterThan(decimal.NewFromInt(100)) {
		pct = decimal.NewFromInt(100)
	}
	return pct.StringFixed(1) + "%"
}

// dict lets a template pass several named values to a partial.
func dict(pairs ...any) (map[string]any, error) {
	if len(pairs)%2 != 0 {
		return nil, errors.New("dict needs key and value pairs")
	}
	m := make(map[string]any, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return nil, errors.New("dict keys must be strings")
		}
		m[key] = pairs[i+1]
	}
	return m, nil
}
