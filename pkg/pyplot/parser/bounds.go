package parser

import (
	"github.com/ukaji3/pyplot-go/pkg/pyplot/models"
	"github.com/xuri/excelize/v2"
)

// DataRangeParams holds parameters for data range detection.
type DataRangeParams struct {
	DensityMin       float64
	MinNonemptyCells int
}

// DefaultDataRangeParams returns default data range detection parameters.
func DefaultDataRangeParams() DataRangeParams {
	return DataRangeParams{
		DensityMin:       0.04,
		MinNonemptyCells: 2,
	}
}

// DetectDataRange finds the block of cells holding plot data on a sheet.
// It reports false when the sheet is empty or too sparse to be a table.
func DetectDataRange(f *excelize.File, sheetName string, params DataRangeParams) (models.CellRange, bool, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return models.CellRange{}, false, err
	}
	r, ok := dataRange(rows, params)
	if ok {
		r.Sheet = sheetName
	}
	return r, ok, nil
}

func dataRange(rows [][]string, params DataRangeParams) (models.CellRange, bool) {
	if len(rows) == 0 {
		return models.CellRange{}, false
	}

	// Find the bounding box of non-empty cells
	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return models.CellRange{}, false
	}

	totalCells := (maxRow - minRow + 1) * (maxCol - minCol + 1)
	nonEmptyCells := countNonEmptyCells(rows, minRow, maxRow, minCol, maxCol)

	if nonEmptyCells < params.MinNonemptyCells {
		return models.CellRange{}, false
	}

	density := float64(nonEmptyCells) / float64(totalCells)
	if density < params.DensityMin {
		return models.CellRange{}, false
	}

	return models.CellRange{
		R1: minRow + 1,
		C1: minCol + 1,
		R2: maxRow + 1,
		C2: maxCol + 1,
	}, true
}

// findDataBounds finds the bounding box of non-empty cells (0-based).
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell != "" {
				if minRow < 0 || rowIdx < minRow {
					minRow = rowIdx
				}
				if maxRow < 0 || rowIdx > maxRow {
					maxRow = rowIdx
				}
				if minCol < 0 || colIdx < minCol {
					minCol = colIdx
				}
				if maxCol < 0 || colIdx > maxCol {
					maxCol = colIdx
				}
			}
		}
	}

	return
}

// countNonEmptyCells counts non-empty cells within bounds.
func countNonEmptyCells(rows [][]string, minRow, maxRow, minCol, maxCol int) int {
	count := 0
	for rowIdx := minRow; rowIdx <= maxRow && rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		for colIdx := minCol; colIdx <= maxCol && colIdx < len(row); colIdx++ {
			if row[colIdx] != "" {
				count++
			}
		}
	}
	return count
}
