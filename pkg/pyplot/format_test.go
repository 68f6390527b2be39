package pyplot

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestFormatDate(t *testing.T) {
	tests := []struct {
		date     time.Time
		expected string
	}{
		{day(2024, 1, 5), "datetime.date(2024,1,5)"},
		{day(1999, 12, 31), "datetime.date(1999,12,31)"},
		{time.Date(2024, 7, 4, 23, 59, 0, 0, time.UTC), "datetime.date(2024,7,4)"},
	}

	for _, tt := range tests {
		if result := FormatDate(tt.date); result != tt.expected {
			t.Errorf("FormatDate(%v) = %q, expected %q", tt.date, result, tt.expected)
		}
	}
}

func TestFormatShortDate(t *testing.T) {
	tests := []struct {
		date     time.Time
		expected string
	}{
		{day(2024, 1, 5), "01/05"},
		{day(2024, 11, 30), "11/30"},
	}

	for _, tt := range tests {
		if result := FormatShortDate(tt.date); result != tt.expected {
			t.Errorf("FormatShortDate(%v) = %q, expected %q", tt.date, result, tt.expected)
		}
	}
}

func TestFormatDecimal(t *testing.T) {
	tests := []struct {
		input    decimal.Decimal
		expected string
	}{
		{decimal.RequireFromString("500"), "500"},
		{decimal.RequireFromString("1.50"), "1.50"},
		{decimal.RequireFromString("-0.25"), "-0.25"},
		{decimal.New(0, -1), "0.0"},
		{decimal.NewFromInt(14), "14"},
	}

	for _, tt := range tests {
		if result := FormatDecimal(tt.input); result != tt.expected {
			t.Errorf("FormatDecimal(%v) = %q, expected %q", tt.input, result, tt.expected)
		}
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		input   string
		plain   string
		escaped string
	}{
		{"red", `"red"`, `"red"`},
		{"", `""`, `""`},
		{`a"b`, `"a"b"`, `"a\"b"`},
		{`c:\tmp`, `"c:\tmp"`, `"c:\\tmp"`},
	}

	for _, tt := range tests {
		if result := Quote(tt.input); result != tt.plain {
			t.Errorf("Quote(%q) = %q, expected %q", tt.input, result, tt.plain)
		}
		if result := QuoteEscaped(tt.input); result != tt.escaped {
			t.Errorf("QuoteEscaped(%q) = %q, expected %q", tt.input, result, tt.escaped)
		}
	}
}

func TestFormatList(t *testing.T) {
	tests := []struct {
		tokens   []string
		expected string
	}{
		{nil, "[]"},
		{[]string{"1"}, "[1]"},
		{[]string{"1", "2", "3"}, "[1,2,3]"},
	}

	for _, tt := range tests {
		if result := FormatList(tt.tokens); result != tt.expected {
			t.Errorf("FormatList(%q) = %q, expected %q", tt.tokens, result, tt.expected)
		}
	}
}

func TestFormatBool(t *testing.T) {
	if FormatBool(true) != "True" || FormatBool(false) != "False" {
		t.Errorf("FormatBool = %q/%q, expected True/False", FormatBool(true), FormatBool(false))
	}
}
