package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestSeriesValidate(t *testing.T) {
	tests := []struct {
		x, y    int
		wantErr bool
	}{
		{0, 0, false},
		{2, 2, false},
		{2, 1, true},
		{0, 3, true},
	}

	for _, tt := range tests {
		s := Series{X: make([]time.Time, tt.x), Y: make([]decimal.Decimal, tt.y)}
		if err := s.Validate(); (err != nil) != tt.wantErr {
			t.Errorf("Validate(x=%d, y=%d) error = %v, wantErr %v", tt.x, tt.y, err, tt.wantErr)
		}
	}
}

func TestSeriesUnmarshalJSON(t *testing.T) {
	var s Series
	err := json.Unmarshal([]byte(`{"name":"a","x":["2024-01-05","2024-01-06T12:00:00Z"],"y":[1,"2.50"],"scatter":true}`), &s)
	if err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if s.Name != "a" || !s.Scatter || s.Len() != 2 {
		t.Errorf("series = %+v", s)
	}
	if !s.X[0].Equal(time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("x[0] = %v, expected 2024-01-05", s.X[0])
	}
	if !s.X[1].Equal(time.Date(2024, 1, 6, 12, 0, 0, 0, time.UTC)) {
		t.Errorf("x[1] = %v, expected 2024-01-06T12:00", s.X[1])
	}
	if s.Y[1].String() != "2.5" {
		t.Errorf("y[1] = %v, expected 2.5", s.Y[1])
	}

	if err := json.Unmarshal([]byte(`{"x":["01/05/2024"],"y":[1]}`), &s); err == nil {
		t.Error("Unmarshal accepted an unsupported date layout")
	}
}

func TestTickConfigEffectiveMode(t *testing.T) {
	if m := (TickConfig{}).EffectiveMode(); m != TickModeDerived {
		t.Errorf("EffectiveMode() = %q, expected derived", m)
	}
	if m := (TickConfig{Mode: TickModeNone}).EffectiveMode(); m != TickModeNone {
		t.Errorf("EffectiveMode() = %q, expected none", m)
	}
}
