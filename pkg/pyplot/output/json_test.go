package output

import (
	"strings"
	"testing"
	"time"

	"github.com/moznion/go-optional"
	"github.com/shopspring/decimal"
	"github.com/ukaji3/pyplot-go/pkg/pyplot/models"
)

func TestToJSON(t *testing.T) {
	plot := &models.Plot{
		Title:  optional.Some(models.Title{Text: "Hits", FontSize: decimal.NewFromInt(14)}),
		Colors: models.ColorScheme{Outer: optional.Some("white")},
		Series: []models.Series{{
			X: []time.Time{time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
			Y: []decimal.Decimal{decimal.RequireFromString("0.5")},
		}},
	}

	data, err := ToJSON(plot, false)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	for _, want := range []string{`"text":"Hits"`, `"outer":"white"`, `"x":["2024-01-02"]`, `"y":["0.5"]`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("ToJSON output %s does not contain %s", data, want)
		}
	}

	pretty, err := ToJSON(plot, true)
	if err != nil {
		t.Fatalf("ToJSON pretty failed: %v", err)
	}
	if !strings.Contains(string(pretty), "\n  ") {
		t.Errorf("pretty output is not indented: %s", pretty)
	}
}

func TestChartsToJSON(t *testing.T) {
	charts := map[string][]models.ChartRef{
		"Sheet1": {{Name: "Chart 1", ChartType: "Line", Series: []models.ChartSeries{{Name: "Hits", YRange: "Sheet1!$B$2:$B$3"}}}},
	}
	data, err := ChartsToJSON(charts, false)
	if err != nil {
		t.Fatalf("ChartsToJSON failed: %v", err)
	}
	expected := `{"Sheet1":[{"name":"Chart 1","chart_type":"Line","series":[{"name":"Hits","y_range":"Sheet1!$B$2:$B$3"}]}]}`
	if string(data) != expected {
		t.Errorf("ChartsToJSON = %s, expected %s", data, expected)
	}
}
