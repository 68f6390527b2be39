package models

import (
	"github.com/moznion/go-optional"
	"github.com/shopspring/decimal"
)

// ColorScheme holds the figure and plotting-area background colors.
type ColorScheme struct {
	// Outer is the figure background color.
	Outer optional.Option[string] `json:"outer"`
	// Inner is the plotting-area background color.
	Inner optional.Option[string] `json:"inner"`
}

// Title is the plot title and its font size.
type Title struct {
	// Text is the title label.
	Text string `json:"text"`
	// FontSize is rendered exactly as given.
	FontSize decimal.Decimal `json:"font_size"`
}

// Plot is a complete plot description.
type Plot struct {
	// Title is the plot title; absent titles emit nothing.
	Title optional.Option[Title] `json:"title"`
	// Grid toggles grid visibility.
	Grid bool `json:"grid"`
	// Colors is the background color scheme.
	Colors ColorScheme `json:"colors"`
	// Ticks selects derived or explicit axis ticks.
	Ticks TickConfig `json:"ticks"`
	// Series is the list of datasets in render order.
	Series []Series `json:"series"`
}
