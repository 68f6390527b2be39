// Package parser reads plot data out of xlsx workbooks.
package parser

import (
	"archive/zip"
	"encoding/xml"
	"strings"

	"github.com/ukaji3/pyplot-go/pkg/pyplot/models"
)

// ChartTypeMap maps OOXML chart element tags to chart type names.
var ChartTypeMap = map[string]string{
	"lineChart":    "Line",
	"line3DChart":  "3DLine",
	"barChart":     "Bar",
	"bar3DChart":   "3DBar",
	"areaChart":    "Area",
	"area3DChart":  "3DArea",
	"scatterChart": "XYScatter",
	"bubbleChart":  "Bubble",
	"radarChart":   "Radar",
	"stockChart":   "Stock",
}

// chartInfo holds a chart's name and package part.
type chartInfo struct {
	name      string
	chartPath string
}

// ExtractCharts lists the charts of every sheet in an xlsx file, in drawing order.
func ExtractCharts(xlsxPath string) (map[string][]models.ChartRef, error) {
	r, err := zip.OpenReader(xlsxPath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	sheetChartMap, err := getSheetChartMap(&r.Reader)
	if err != nil {
		return nil, err
	}

	result := make(map[string][]models.ChartRef)
	for sheetName, chartInfos := range sheetChartMap {
		var charts []models.ChartRef
		for _, ci := range chartInfos {
			chartXML, err := readZipFile(&r.Reader, ci.chartPath)
			if err != nil || chartXML == nil {
				continue
			}
			charts = append(charts, parseChartXML(chartXML, ci.name))
		}
		result[sheetName] = charts
	}

	return result, nil
}

// getSheetChartMap returns a mapping of sheet names to their chart info.
func getSheetChartMap(r *zip.Reader) (map[string][]chartInfo, error) {
	result := make(map[string][]chartInfo)

	workbookXML, err := readZipFile(r, "xl/workbook.xml")
	if err != nil || workbookXML == nil {
		return result, err
	}

	sheetsInfo := parseWorkbookSheets(workbookXML)
	if len(sheetsInfo) == 0 {
		return result, nil
	}

	wbRelsXML, err := readZipFile(r, "xl/_rels/workbook.xml.rels")
	if err != nil || wbRelsXML == nil {
		return result, err
	}

	for sheetName, sheetPath := range parseWorkbookRels(wbRelsXML, sheetsInfo) {
		sheetRelsXML, err := readZipFile(r, relsPathFor(sheetPath))
		if err != nil || sheetRelsXML == nil {
			continue
		}

		drawingPath := findRelationship(sheetRelsXML, "drawing")
		if drawingPath == "" {
			continue
		}

		chartInfos := getChartInfosFromDrawing(r, resolveRelativePath(drawingPath, "xl/drawings"))
		if len(chartInfos) > 0 {
			result[sheetName] = chartInfos
		}
	}

	return result, nil
}

// getChartInfosFromDrawing resolves the charts placed on a drawing.
func getChartInfosFromDrawing(r *zip.Reader, drawingPath string) []chartInfo {
	var result []chartInfo

	drawingXML, err := readZipFile(r, drawingPath)
	if err != nil || drawingXML == nil {
		return result
	}

	frames := parseDrawingForCharts(drawingXML)
	if len(frames) == 0 {
		return result
	}

	relsXML, err := readZipFile(r, relsPathFor(drawingPath))
	if err != nil || relsXML == nil {
		return result
	}

	chartPaths := make(map[string]string)
	for _, rel := range parseRelationships(relsXML) {
		if strings.Contains(strings.ToLower(rel.typ), "chart") {
			chartPaths[rel.id] = rel.target
		}
	}

	for _, fr := range frames {
		if chartPath, ok := chartPaths[fr.rID]; ok {
			result = append(result, chartInfo{
				name:      fr.name,
				chartPath: resolveRelativePath(chartPath, "xl/charts"),
			})
		}
	}

	return result
}

// graphicFrame is a chart reference found in a drawing.
type graphicFrame struct {
	name string
	rID  string
}

// parseDrawingForCharts lists the chart frames of a drawing in document order.
func parseDrawingForCharts(data []byte) []graphicFrame {
	var result []graphicFrame
	var name string
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		se, ok := token.(xml.StartElement)
		if !ok {
			continue
		}
		switch se.Name.Local {
		case "graphicFrame":
			name = ""
		case "cNvPr":
			for _, attr := range se.Attr {
				if attr.Name.Local == "name" {
					name = attr.Value
				}
			}
		case "chart":
			for _, attr := range se.Attr {
				if attr.Name.Local == "id" {
					result = append(result, graphicFrame{name: name, rID: attr.Value})
				}
			}
		}
	}

	return result
}

// parseChartXML parses chart XML content.
func parseChartXML(data []byte, name string) models.ChartRef {
	chart := models.ChartRef{Name: name}
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "chart" {
			chart.ChartType, chart.Title, chart.Series = parseChartElement(decoder)
		}
	}

	if chart.ChartType == "" {
		chart.ChartType = "unknown"
	}
	return chart
}

// parseChartElement parses c:chart element.
func parseChartElement(decoder *xml.Decoder) (chartType, title string, series []models.ChartSeries) {
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "title":
				title = parseChartTitle(decoder)
				depth--
			case "plotArea":
				chartType, series = parsePlotArea(decoder)
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return
}

// parseChartTitle joins the text runs of a title element.
func parseChartTitle(decoder *xml.Decoder) string {
	var sb strings.Builder
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "t" {
				if txt, err := readElementText(decoder); err == nil {
					sb.WriteString(txt)
				}
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return strings.TrimSpace(sb.String())
}

// parsePlotArea returns the first chart type in the plot area and its series.
func parsePlotArea(decoder *xml.Decoder) (chartType string, series []models.ChartSeries) {
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if ct, ok := ChartTypeMap[t.Name.Local]; ok {
				s := parseChartSeries(decoder)
				if chartType == "" {
					chartType = ct
				}
				series = append(series, s...)
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return
}

// parseChartSeries parses series elements within a chart type.
func parseChartSeries(decoder *xml.Decoder) []models.ChartSeries {
	var series []models.ChartSeries
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "ser" {
				series = append(series, parseSingleSeries(decoder))
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return series
}

// parseSingleSeries parses a single series element. Category charts use
// cat/val, scatter charts xVal/yVal.
func parseSingleSeries(decoder *xml.Decoder) models.ChartSeries {
	var s models.ChartSeries
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "tx":
				s.Name, s.NameRange = parseSeriesName(decoder)
				depth--
			case "cat", "xVal":
				s.XRange = parseSeriesRange(decoder)
				depth--
			case "val", "yVal":
				s.YRange = parseSeriesRange(decoder)
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return s
}

// parseSeriesName parses series name from tx element.
func parseSeriesName(decoder *xml.Decoder) (name, nameRange string) {
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "f":
				if txt, err := readElementText(decoder); err == nil {
					nameRange = strings.TrimSpace(txt)
				}
				depth--
			case "v":
				if txt, err := readElementText(decoder); err == nil {
					name = strings.TrimSpace(txt)
				}
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return
}

// parseSeriesRange parses the formula of a cat, val, xVal or yVal element.
func parseSeriesRange(decoder *xml.Decoder) string {
	var ref string
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "f" {
				if txt, err := readElementText(decoder); err == nil && ref == "" {
					ref = strings.TrimSpace(txt)
				}
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return ref
}
