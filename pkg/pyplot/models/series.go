// Package models defines the plot description consumed by the composer.
package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the layout used for series dates in JSON plot descriptions.
const DateLayout = "2006-01-02"

// Series represents one plotted dataset: X dates paired index-wise with Y values.
type Series struct {
	// Name is an optional display name (header cell or chart series name).
	Name string `json:"name,omitempty"`
	// X holds the date of each point.
	X []time.Time `json:"x"`
	// Y holds the value of each point; Y[i] belongs to X[i].
	Y []decimal.Decimal `json:"y"`
	// Scatter requests point markers in addition to the connecting line.
	Scatter bool `json:"scatter,omitempty"`
}

// Validate reports whether X and Y have the same length.
func (s Series) Validate() error {
	if len(s.X) != len(s.Y) {
		return fmt.Errorf("x has %d values, y has %d", len(s.X), len(s.Y))
	}
	return nil
}

// Len returns the number of X values.
func (s Series) Len() int {
	return len(s.X)
}

type seriesJSON struct {
	Name    string            `json:"name,omitempty"`
	X       []string          `json:"x"`
	Y       []decimal.Decimal `json:"y"`
	Scatter bool              `json:"scatter,omitempty"`
}

// MarshalJSON writes X values as plain dates.
func (s Series) MarshalJSON() ([]byte, error) {
	out := seriesJSON{
		Name:    s.Name,
		X:       make([]string, len(s.X)),
		Y:       s.Y,
		Scatter: s.Scatter,
	}
	for i, x := range s.X {
		out.X[i] = x.Format(DateLayout)
	}
	if out.Y == nil {
		out.Y = []decimal.Decimal{}
	}
	return json.Marshal(out)
}

// UnmarshalJSON accepts X values as plain dates or RFC 3339 timestamps.
func (s *Series) UnmarshalJSON(data []byte) error {
	var in seriesJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	xs := make([]time.Time, len(in.X))
	for i, raw := range in.X {
		t, err := ParseDate(raw)
		if err != nil {
			return fmt.Errorf("x[%d]: %w", i, err)
		}
		xs[i] = t
	}
	*s = Series{
		Name:    in.Name,
		X:       xs,
		Y:       in.Y,
		Scatter: in.Scatter,
	}
	return nil
}

// ParseDate parses a date in DateLayout or RFC 3339 form.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
