package pyplot

import (
	"github.com/ukaji3/pyplot-go/pkg/pyplot/models"
)

// Compose writes a complete script for plot to sink: imports, colors,
// grid, title, ticks, series and the render trigger, in that order.
// Series and tick mode are checked before anything is written.
func Compose(plot models.Plot, sink InstructionSink, opts Options) error {
	if err := ValidateSeries(plot.Series); err != nil {
		return err
	}
	mode, err := TickModeFor(plot.Ticks, plot.Series)
	if err != nil {
		return err
	}

	c := NewComposer(sink, opts)
	if opts.Interpreter {
		c.WriteInterpreter()
	}
	c.WriteImportModules()
	c.WritePlotColor(plot.Colors)
	c.WriteGrid(plot.Grid)
	if plot.Title.IsSome() {
		c.WriteTitle(plot.Title.Unwrap())
	}
	if mode != nil {
		c.WriteTicks(mode)
	}
	if err := c.WriteXYPair(plot.Series); err != nil {
		return err
	}
	c.WritePlotShow()
	return nil
}
