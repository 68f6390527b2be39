package models

import "github.com/moznion/go-optional"

// TickMode names how axis ticks are produced.
type TickMode string

const (
	// TickModeDerived computes ticks from the series extents.
	TickModeDerived TickMode = "derived"
	// TickModeExplicit uses the X and Y tick specs as given.
	TickModeExplicit TickMode = "explicit"
	// TickModeNone emits no tick instructions.
	TickModeNone TickMode = "none"
)

// Tick is an axis position paired with its display label.
type Tick struct {
	// Position is a raw interpreter token, emitted unquoted.
	Position string `json:"position"`
	// Label is emitted as a string literal.
	Label string `json:"label"`
}

// TickSpec is an ordered list of ticks for one axis.
type TickSpec struct {
	Ticks []Tick `json:"ticks"`
}

// TickConfig configures the tick stage of a plot.
type TickConfig struct {
	// Mode is derived, explicit or none. Empty means derived.
	Mode TickMode `json:"mode,omitempty"`
	// X is the explicit X-axis spec, used in explicit mode.
	X optional.Option[TickSpec] `json:"x"`
	// Y is the explicit Y-axis spec, used in explicit mode.
	Y optional.Option[TickSpec] `json:"y"`
}

// EffectiveMode returns Mode, defaulting to TickModeDerived.
func (c TickConfig) EffectiveMode() TickMode {
	if c.Mode == "" {
		return TickModeDerived
	}
	return c.Mode
}
