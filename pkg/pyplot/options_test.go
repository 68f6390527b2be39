package pyplot

import "testing"

func TestShouldScatter(t *testing.T) {
	on, off := true, false

	tests := []struct {
		name     string
		override *bool
		loaded   bool
		expected bool
	}{
		{"no override keeps false", nil, false, false},
		{"no override keeps true", nil, true, true},
		{"override on", &on, false, true},
		{"override off", &off, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := LoadOptions{Scatter: tt.override}
			if got := opts.ShouldScatter(tt.loaded); got != tt.expected {
				t.Errorf("ShouldScatter(%v) = %v, expected %v", tt.loaded, got, tt.expected)
			}
		})
	}
}
