package models

// ChartSeries represents the range references of one series in a workbook chart.
type ChartSeries struct {
	// Name is the series display name.
	Name string `json:"name"`
	// NameRange is the range reference for the series name.
	NameRange string `json:"name_range,omitempty"`
	// XRange is the range reference for X axis values.
	XRange string `json:"x_range,omitempty"`
	// YRange is the range reference for Y axis values.
	YRange string `json:"y_range,omitempty"`
}

// ChartRef represents a chart embedded in a workbook sheet.
type ChartRef struct {
	// Name is the chart name.
	Name string `json:"name"`
	// ChartType is the chart type (e.g., Line, XYScatter).
	ChartType string `json:"chart_type"`
	// Title is the chart title.
	Title string `json:"title,omitempty"`
	// Series is the list of series included in the chart.
	Series []ChartSeries `json:"series"`
}

// IsScatter reports whether the chart draws point markers.
func (c ChartRef) IsScatter() bool {
	return c.ChartType == "XYScatter" || c.ChartType == "Bubble"
}
