package pyplot

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is neither a valid plot
// description nor a readable xlsx workbook.
var ErrInvalidFormat = errors.New("invalid plot description format")

// ErrLengthMismatch indicates a series whose X and Y sequences differ in length.
var ErrLengthMismatch = errors.New("length mismatch")

// ErrUnknownTickMode indicates a tick configuration with an unrecognised mode.
var ErrUnknownTickMode = errors.New("unknown tick mode")

// SeriesError represents an invalid series in a collection.
type SeriesError struct {
	Index int // 1-based position in the collection
	XLen  int
	YLen  int
	Err   error
}

func (e *SeriesError) Error() string {
	return fmt.Sprintf("series %d: %v (x has %d values, y has %d)", e.Index, e.Err, e.XLen, e.YLen)
}

func (e *SeriesError) Unwrap() error {
	return e.Err
}

// NewSeriesError creates a new SeriesError for a length mismatch.
func NewSeriesError(index, xLen, yLen int) *SeriesError {
	return &SeriesError{
		Index: index,
		XLen:  xLen,
		YLen:  yLen,
		Err:   ErrLengthMismatch,
	}
}

// LoadError represents an error while reading a plot description from a workbook.
type LoadError struct {
	SheetName string
	Component string // "sheet", "range", "chart", "series"
	Err       error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load error in sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new LoadError.
func NewLoadError(sheetName, component string, err error) *LoadError {
	return &LoadError{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}
