package pyplot

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/moznion/go-optional"
	"github.com/ukaji3/pyplot-go/pkg/pyplot/models"
	"github.com/ukaji3/pyplot-go/pkg/pyplot/parser"
	"github.com/xuri/excelize/v2"
)

// Load reads a plot description from a .json file or an .xlsx workbook.
func Load(path string, opts LoadOptions) (*models.Plot, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to access input: %w", err)
	}

	var (
		plot *models.Plot
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		plot, err = loadJSON(path)
	case ".xlsx", ".xlsm":
		plot, err = loadWorkbook(path, opts)
	default:
		return nil, fmt.Errorf("%w: unsupported extension %q", ErrInvalidFormat, ext)
	}
	if err != nil {
		return nil, err
	}

	for i := range plot.Series {
		plot.Series[i].Scatter = opts.ShouldScatter(plot.Series[i].Scatter)
	}
	return plot, nil
}

func loadJSON(path string) (*models.Plot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var plot models.Plot
	if err := json.Unmarshal(data, &plot); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return &plot, nil
}

func loadWorkbook(path string, opts LoadOptions) (*models.Plot, error) {
	log := opts.logger()

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()

	sheetName := opts.Sheet
	if sheetName == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("%w: workbook has no sheets", ErrInvalidFormat)
		}
		sheetName = sheets[0]
	}
	if idx, err := f.GetSheetIndex(sheetName); err != nil || idx < 0 {
		return nil, NewLoadError(sheetName, "sheet", errors.New("sheet does not exist"))
	}

	plot := &models.Plot{}

	// Charts need direct OOXML parsing; a failure only loses the chart.
	var chart *models.ChartRef
	chartData, err := parser.ExtractCharts(path)
	if err != nil {
		log.Warn("chart discovery failed", "sheet", sheetName, "error", err)
	} else if charts := chartData[sheetName]; len(charts) > 0 {
		chart = &charts[0]
		log.Debug("using chart", "sheet", sheetName, "chart", chart.Name, "type", chart.ChartType, "series", len(chart.Series))
		if len(charts) > 1 {
			log.Info("sheet has several charts, using the first", "sheet", sheetName, "count", len(charts))
		}
	}

	if chart != nil {
		if chart.Title != "" {
			plot.Title = optional.Some(models.Title{Text: chart.Title, FontSize: DefaultTitleFontSize})
		}
		series, err := parser.SeriesFromChart(f, sheetName, *chart)
		if err != nil {
			return nil, NewLoadError(sheetName, "chart", err)
		}
		plot.Series = series
	} else {
		area, ok, err := parser.DetectDataRange(f, sheetName, parser.DefaultDataRangeParams())
		if err != nil {
			return nil, NewLoadError(sheetName, "range", err)
		}
		if !ok {
			log.Warn("no data found", "sheet", sheetName)
			return plot, nil
		}
		log.Debug("detected data range", "sheet", sheetName, "r1", area.R1, "c1", area.C1, "r2", area.R2, "c2", area.C2)
		series, err := parser.ExtractSeries(f, sheetName, area)
		if err != nil {
			return nil, NewLoadError(sheetName, "series", err)
		}
		plot.Series = series
	}

	scatter := chart != nil && chart.IsScatter()
	for i := range plot.Series {
		plot.Series[i].Scatter = scatter
		if err := plot.Series[i].Validate(); err != nil {
			return nil, NewLoadError(sheetName, "series", err)
		}
	}
	log.Debug("loaded series", "sheet", sheetName, "count", len(plot.Series))

	return plot, nil
}
