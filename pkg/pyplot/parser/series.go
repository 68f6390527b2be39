package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/ukaji3/pyplot-go/pkg/pyplot/models"
	"github.com/xuri/excelize/v2"
)

// ErrRangeMismatch indicates chart X and Y ranges of different sizes.
var ErrRangeMismatch = errors.New("x and y ranges differ in size")

// ParseDate converts a raw cell value to a date.
// Excel serial numbers and 2006-01-02 text are accepted.
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if v, err := strconv.ParseFloat(raw, 64); err == nil {
		return excelize.ExcelDateToTime(v, false)
	}
	return models.ParseDate(raw)
}

// ParseValue converts a raw cell value to a decimal.
func ParseValue(raw string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSpace(raw))
}

// ExtractSeries reads series laid out in columns: the first column of area
// holds dates, every further column one series. If the first row does not
// start with a date it is taken as a header naming the series.
// Rows without a date are skipped, and a series skips rows where its own
// cell is empty.
func ExtractSeries(f *excelize.File, sheetName string, area models.CellRange) ([]models.Series, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	cell := func(r, c int) string {
		if r-1 < len(rows) && c-1 < len(rows[r-1]) {
			return strings.TrimSpace(rows[r-1][c-1])
		}
		return ""
	}

	series := make([]models.Series, area.Cols()-1)
	firstRow := area.R1
	if _, err := ParseDate(cell(area.R1, area.C1)); err != nil {
		for i := range series {
			series[i].Name = cell(area.R1, area.C1+1+i)
		}
		firstRow++
	}

	for r := firstRow; r <= area.R2; r++ {
		raw := cell(r, area.C1)
		if raw == "" {
			continue
		}
		x, err := ParseDate(raw)
		if err != nil {
			return nil, cellError(area.C1, r, err)
		}
		for i := range series {
			c := area.C1 + 1 + i
			rawY := cell(r, c)
			if rawY == "" {
				continue
			}
			y, err := ParseValue(rawY)
			if err != nil {
				return nil, cellError(c, r, err)
			}
			series[i].X = append(series[i].X, x)
			series[i].Y = append(series[i].Y, y)
		}
	}

	return series, nil
}

// SeriesFromChart reads the series a workbook chart points at.
func SeriesFromChart(f *excelize.File, sheetName string, chart models.ChartRef) ([]models.Series, error) {
	var result []models.Series
	for _, cs := range chart.Series {
		s, err := readChartSeries(f, sheetName, cs)
		if err != nil {
			return nil, fmt.Errorf("series %q: %w", cs.Name, err)
		}
		result = append(result, s)
	}
	return result, nil
}

func readChartSeries(f *excelize.File, sheetName string, cs models.ChartSeries) (models.Series, error) {
	s := models.Series{Name: cs.Name}
	if s.Name == "" && cs.NameRange != "" {
		if r, err := ParseRangeRef(cs.NameRange); err == nil {
			if names, err := ReadRange(f, sheetName, r); err == nil && len(names) > 0 {
				s.Name = names[0]
			}
		}
	}

	xRange, err := ParseRangeRef(cs.XRange)
	if err != nil {
		return s, err
	}
	yRange, err := ParseRangeRef(cs.YRange)
	if err != nil {
		return s, err
	}
	if xRange.Len() != yRange.Len() {
		return s, fmt.Errorf("%w: %s has %d cells, %s has %d", ErrRangeMismatch, cs.XRange, xRange.Len(), cs.YRange, yRange.Len())
	}

	xs, err := ReadRange(f, sheetName, xRange)
	if err != nil {
		return s, err
	}
	ys, err := ReadRange(f, sheetName, yRange)
	if err != nil {
		return s, err
	}

	for i := range xs {
		if xs[i] == "" || ys[i] == "" {
			continue
		}
		x, err := ParseDate(xs[i])
		if err != nil {
			return s, fmt.Errorf("%s[%d]: %w", cs.XRange, i, err)
		}
		y, err := ParseValue(ys[i])
		if err != nil {
			return s, fmt.Errorf("%s[%d]: %w", cs.YRange, i, err)
		}
		s.X = append(s.X, x)
		s.Y = append(s.Y, y)
	}
	return s, nil
}

func cellError(col, row int, err error) error {
	name, nameErr := excelize.CoordinatesToCellName(col, row)
	if nameErr != nil {
		return err
	}
	return fmt.Errorf("cell %s: %w", name, err)
}
