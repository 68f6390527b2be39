package pyplot

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/ukaji3/pyplot-go/pkg/pyplot/models"
)

// ShortDateLayout is the layout of derived X tick labels.
const ShortDateLayout = "01/02"

// FormatBool renders a boolean literal.
func FormatBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

// FormatDate renders a date constructor call, e.g. datetime.date(2024,1,5).
func FormatDate(t time.Time) string {
	return fmt.Sprintf("datetime.date(%d,%d,%d)", t.Year(), int(t.Month()), t.Day())
}

// FormatShortDate renders a zero-padded MM/DD label.
func FormatShortDate(t time.Time) string {
	return t.Format(ShortDateLayout)
}

// FormatDecimal renders a number token, keeping the decimal's scale:
// 1.50 stays 1.50 and 0.0 stays 0.0.
func FormatDecimal(d decimal.Decimal) string {
	if exp := d.Exponent(); exp < 0 {
		return d.StringFixed(-exp)
	}
	return d.String()
}

// Quote wraps s in double quotes without escaping.
func Quote(s string) string {
	return `"` + s + `"`
}

var literalEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// QuoteEscaped wraps s in double quotes, escaping backslashes and quotes.
func QuoteEscaped(s string) string {
	return `"` + literalEscaper.Replace(s) + `"`
}

// FormatList renders tokens as a list literal with no trailing separator.
func FormatList(tokens []string) string {
	return "[" + strings.Join(tokens, ",") + "]"
}

// NumberTick returns a tick positioned at a numeric value.
func NumberTick(v decimal.Decimal, label string) models.Tick {
	return models.Tick{Position: FormatDecimal(v), Label: label}
}

// DateTick returns a tick positioned at a date.
func DateTick(t time.Time, label string) models.Tick {
	return models.Tick{Position: FormatDate(t), Label: label}
}
