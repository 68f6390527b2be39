package pyplot

import (
	"strconv"

	"github.com/ukaji3/pyplot-go/pkg/pyplot/models"
)

// AnnotationFontSize is the font size of per-point value labels.
const AnnotationFontSize = 11

// InstructionSink receives script lines in order.
type InstructionSink interface {
	AddInstruction(text string)
}

// Composer writes plot stages to an InstructionSink.
//
// A Composer holds no state besides its sink and options. It is not safe
// for concurrent use; give each render request its own Composer and sink.
type Composer struct {
	sink InstructionSink
	opts Options
}

// NewComposer returns a Composer writing to sink.
func NewComposer(sink InstructionSink, opts Options) *Composer {
	return &Composer{sink: sink, opts: opts}
}

func (c *Composer) add(text string) {
	c.sink.AddInstruction(text)
}

func (c *Composer) quote(s string) string {
	if c.opts.EscapeQuotes {
		return QuoteEscaped(s)
	}
	return Quote(s)
}

// WriteInterpreter writes the line that starts the interpreter.
func (c *Composer) WriteInterpreter() {
	c.add("python")
}

// WriteImportModules writes the imports every later stage relies on.
func (c *Composer) WriteImportModules() {
	c.add("import matplotlib.pyplot as plt")
	c.add("import pandas as pd")
	c.add("import datetime")
}

// WritePlotColor sets the figure and plotting-area backgrounds.
// Absent colors are skipped.
func (c *Composer) WritePlotColor(scheme models.ColorScheme) {
	if scheme.Outer.IsSome() {
		c.add("fig = plt.figure(facecolor=" + c.quote(scheme.Outer.Unwrap()) + ")")
	}
	if scheme.Inner.IsSome() {
		c.add("ax = plt.gca()")
		c.add("ax.set_facecolor(" + c.quote(scheme.Inner.Unwrap()) + ")")
	}
}

// WriteGrid toggles grid visibility.
func (c *Composer) WriteGrid(grid bool) {
	c.add("plt.grid(" + FormatBool(grid) + ")")
}

// WriteTitle sets the title text and font size.
func (c *Composer) WriteTitle(title models.Title) {
	c.add("plt.title(" + c.quote(title.Text) + ",fontsize=" + FormatDecimal(title.FontSize) + ")")
}

// WriteXYPair writes the data arrays, value labels and plot calls of every
// series. The whole collection is validated first; on a length mismatch
// nothing is written.
func (c *Composer) WriteXYPair(series []models.Series) error {
	if err := ValidateSeries(series); err != nil {
		return err
	}
	for i, s := range series {
		c.writeSeries(i+1, s)
	}
	return nil
}

func (c *Composer) writeSeries(index int, s models.Series) {
	n := strconv.Itoa(index)
	x, y := "x"+n, "y"+n

	xs := make([]string, len(s.X))
	for i, v := range s.X {
		xs[i] = FormatDate(v)
	}
	ys := make([]string, len(s.Y))
	for i, v := range s.Y {
		ys[i] = FormatDecimal(v)
	}
	c.add(x + " = " + FormatList(xs))
	c.add(y + " = " + FormatList(ys))

	// Emitted as a loop for the interpreter, not unrolled here.
	c.add("for i,item in enumerate(" + y + "):")
	c.add("\txP = " + x + "[i]")
	c.add("\tyP = " + y + "[i]")
	c.add("\tplt.text(xP,yP,str(item)+" + c.quote("%") + ",fontsize=" + strconv.Itoa(AnnotationFontSize) + ")")

	c.add("plt.plot(" + x + "," + y + ")")
	if s.Scatter {
		c.add("plt.scatter(" + x + "," + y + ")")
	}
}

// WritePlotShow writes the render trigger. It belongs last.
func (c *Composer) WritePlotShow() {
	c.add("plt.show()")
}

// ValidateSeries checks that every series pairs X and Y one to one.
func ValidateSeries(series []models.Series) error {
	for i, s := range series {
		if len(s.X) != len(s.Y) {
			return NewSeriesError(i+1, len(s.X), len(s.Y))
		}
	}
	return nil
}
