// Package pyplot composes matplotlib scripts from plot descriptions.
package pyplot

import (
	"log/slog"

	"github.com/shopspring/decimal"
)

// DefaultTitleFontSize is used for titles taken from workbook charts.
var DefaultTitleFontSize = decimal.NewFromInt(14)

// Options configures script composition.
type Options struct {
	// Interpreter emits the interpreter start line before the imports.
	Interpreter bool
	// EscapeQuotes backslash-escapes quotes and backslashes inside string
	// literals. Off by default: text is emitted exactly as supplied.
	EscapeQuotes bool
}

// DefaultOptions returns default composition options.
func DefaultOptions() Options {
	return Options{}
}

// LoadOptions configures how plot descriptions are read.
type LoadOptions struct {
	// Sheet selects the workbook sheet. Empty means the first sheet.
	Sheet string
	// Scatter forces the scatter flag on every series.
	// If nil, workbook series follow the chart type and JSON series keep
	// their own flag.
	Scatter *bool
	// Logger receives load diagnostics. If nil, nothing is logged.
	Logger *slog.Logger
}

// ShouldScatter returns the scatter flag of a loaded series: the Scatter
// override when set, the series' own flag otherwise.
func (o LoadOptions) ShouldScatter(loaded bool) bool {
	if o.Scatter != nil {
		return *o.Scatter
	}
	return loaded
}

func (o LoadOptions) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.DiscardHandler)
}
