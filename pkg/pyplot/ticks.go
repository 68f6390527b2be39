package pyplot

import (
	"fmt"
	"time"

	"github.com/moznion/go-optional"
	"github.com/shopspring/decimal"
	"github.com/ukaji3/pyplot-go/pkg/pyplot/models"
)

// TickMode selects how WriteTicks produces axis ticks.
// It is implemented by DerivedTicks and ExplicitTicks.
type TickMode interface {
	tickMode()
}

// DerivedTicks computes X ticks from the series date extent and uses
// FixedYTicks for the Y axis.
type DerivedTicks struct {
	Series []models.Series
}

// ExplicitTicks emits the given specs. An absent axis emits nothing.
type ExplicitTicks struct {
	X optional.Option[models.TickSpec]
	Y optional.Option[models.TickSpec]
}

func (DerivedTicks) tickMode()  {}
func (ExplicitTicks) tickMode() {}

// YTickPolicy is an inclusive, evenly stepped range of Y ticks.
type YTickPolicy struct {
	Start decimal.Decimal
	Stop  decimal.Decimal
	Step  decimal.Decimal
}

// FixedYTicks is the Y range of derived ticks: 0.0 to 1.0 in steps of 0.1.
// It does not follow the data; the Y extent is not consulted.
var FixedYTicks = YTickPolicy{
	Start: decimal.New(0, -1),
	Stop:  decimal.New(10, -1),
	Step:  decimal.New(1, -1),
}

// Ticks returns the policy's ticks, each labelled with its own value.
func (p YTickPolicy) Ticks() []models.Tick {
	var ticks []models.Tick
	if !p.Step.IsPositive() {
		return ticks
	}
	for v := p.Start; v.LessThanOrEqual(p.Stop); v = v.Add(p.Step) {
		s := FormatDecimal(v)
		ticks = append(ticks, models.Tick{Position: s, Label: s})
	}
	return ticks
}

// Date sentinels used to seed the extent scan.
var (
	MinDate = time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)
	MaxDate = time.Date(9999, time.December, 31, 23, 59, 59, 999999999, time.UTC)
)

// Extent is the value range of a series collection.
// MinX and MaxX are calendar days at UTC midnight, taken from each value's
// own date. With no X values MinX is MaxDate and MaxX is MinDate.
type Extent struct {
	MinX, MaxX time.Time
	MinY, MaxY decimal.Decimal
	HasY       bool
}

// DeriveExtent scans every X and Y value of the collection.
func DeriveExtent(series []models.Series) Extent {
	e := Extent{MinX: MaxDate, MaxX: MinDate}
	for _, s := range series {
		for _, x := range s.X {
			x = calendarDay(x)
			if x.Before(e.MinX) {
				e.MinX = x
			}
			if x.After(e.MaxX) {
				e.MaxX = x
			}
		}
		for _, y := range s.Y {
			if !e.HasY || y.LessThan(e.MinY) {
				e.MinY = y
			}
			if !e.HasY || y.GreaterThan(e.MaxY) {
				e.MaxY = y
			}
			e.HasY = true
		}
	}
	return e
}

// XTicks returns one tick per calendar day from MinX to MaxX inclusive,
// labelled MM/DD. It is empty when MinX is after MaxX.
func (e Extent) XTicks() []models.Tick {
	var ticks []models.Tick
	end := calendarDay(e.MaxX)
	for d := calendarDay(e.MinX); !d.After(end); d = d.AddDate(0, 0, 1) {
		ticks = append(ticks, DateTick(d, FormatShortDate(d)))
	}
	return ticks
}

// calendarDay maps t to UTC midnight of the date it shows in its own
// location, the date FormatDate renders for it.
func calendarDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// WriteTicks writes the X and Y tick instructions selected by mode.
func (c *Composer) WriteTicks(mode TickMode) {
	switch m := mode.(type) {
	case DerivedTicks:
		e := DeriveExtent(m.Series)
		c.writeAxisTicks("plt.xticks", e.XTicks())
		c.writeAxisTicks("plt.yticks", FixedYTicks.Ticks())
	case ExplicitTicks:
		if m.X.IsSome() {
			c.writeAxisTicks("plt.xticks", m.X.Unwrap().Ticks)
		}
		if m.Y.IsSome() {
			c.writeAxisTicks("plt.yticks", m.Y.Unwrap().Ticks)
		}
	}
}

// writeAxisTicks emits positions and labels as two parallel lists in one
// call; the interpreter pairs them by index.
func (c *Composer) writeAxisTicks(fn string, ticks []models.Tick) {
	positions := make([]string, len(ticks))
	labels := make([]string, len(ticks))
	for i, t := range ticks {
		positions[i] = t.Position
		labels[i] = c.quote(t.Label)
	}
	c.add(fn + "(" + FormatList(positions) + "," + FormatList(labels) + ")")
}

// TickModeFor maps a plot's tick configuration onto a TickMode.
// It returns nil for TickModeNone.
func TickModeFor(cfg models.TickConfig, series []models.Series) (TickMode, error) {
	switch cfg.EffectiveMode() {
	case models.TickModeDerived:
		return DerivedTicks{Series: series}, nil
	case models.TickModeExplicit:
		return ExplicitTicks{X: cfg.X, Y: cfg.Y}, nil
	case models.TickModeNone:
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTickMode, cfg.Mode)
	}
}
