package output

import (
	"encoding/json"

	"github.com/ukaji3/pyplot-go/pkg/pyplot/models"
)

// ToJSON serializes a plot description.
func ToJSON(plot *models.Plot, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(plot, "", "  ")
	}
	return json.Marshal(plot)
}

// ChartsToJSON serializes the charts found in a workbook, keyed by sheet.
func ChartsToJSON(charts map[string][]models.ChartRef, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(charts, "", "  ")
	}
	return json.Marshal(charts)
}
