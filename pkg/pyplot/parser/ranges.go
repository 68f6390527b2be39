package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/pyplot-go/pkg/pyplot/models"
	"github.com/xuri/excelize/v2"
)

// ParseRangeRef parses a range reference such as 'Sheet 1'!$A$2:$A$10,
// Sheet1!B1 or A1:D10.
func ParseRangeRef(ref string) (models.CellRange, error) {
	var r models.CellRange
	ref = strings.TrimSpace(ref)

	// Split by ! to separate sheet name and range
	rangeStr := ref
	if idx := strings.LastIndex(ref, "!"); idx >= 0 {
		r.Sheet = strings.Trim(ref[:idx], "'")
		rangeStr = ref[idx+1:]
	}

	// Remove $ signs
	rangeStr = strings.ReplaceAll(rangeStr, "$", "")

	parts := strings.Split(rangeStr, ":")
	if len(parts) > 2 || parts[0] == "" {
		return r, fmt.Errorf("invalid range reference %q", ref)
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return r, fmt.Errorf("invalid range reference %q: %w", ref, err)
	}
	endCol, endRow := startCol, startRow
	if len(parts) == 2 {
		endCol, endRow, err = excelize.CellNameToCoordinates(parts[1])
		if err != nil {
			return r, fmt.Errorf("invalid range reference %q: %w", ref, err)
		}
	}

	r.R1, r.C1 = min(startRow, endRow), min(startCol, endCol)
	r.R2, r.C2 = max(startRow, endRow), max(startCol, endCol)
	return r, nil
}

// CellNames lists the cell names covered by r in row-major order.
func CellNames(r models.CellRange) ([]string, error) {
	names := make([]string, 0, r.Len())
	for row := r.R1; row <= r.R2; row++ {
		for col := r.C1; col <= r.C2; col++ {
			name, err := excelize.CoordinatesToCellName(col, row)
			if err != nil {
				return nil, err
			}
			names = append(names, name)
		}
	}
	return names, nil
}

// ReadRange returns the raw values of every cell in r, in row-major order.
// defaultSheet is used when r carries no sheet name.
func ReadRange(f *excelize.File, defaultSheet string, r models.CellRange) ([]string, error) {
	sheet := r.Sheet
	if sheet == "" {
		sheet = defaultSheet
	}
	names, err := CellNames(r)
	if err != nil {
		return nil, err
	}
	values := make([]string, len(names))
	for i, name := range names {
		v, err := f.GetCellValue(sheet, name, excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, err
		}
		values[i] = strings.TrimSpace(v)
	}
	return values, nil
}
