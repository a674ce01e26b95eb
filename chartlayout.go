package trellis

import (
	"errors"
	"fmt"
	"math"
)

// Chart plot geometry, in logical canvas units. The plot area is the canvas
// minus the padding box; bars and gridlines are positioned in plot-area
// coordinates with the origin at the plot's top-left corner.
const (
	ChartPaddingTop    = 30
	ChartPaddingRight  = 20
	ChartPaddingBottom = 80
	ChartPaddingLeft   = 80

	ChartPlotWidth  = CanvasWidth - ChartPaddingLeft - ChartPaddingRight
	ChartPlotHeight = CanvasHeight - ChartPaddingTop - ChartPaddingBottom

	// The value axis runs from 0 to the scale maximum in tickSteps equal
	// steps, giving tickSteps+1 gridlines.
	tickSteps = 5

	// Bars fill this share of their slot; the rest is split evenly into
	// margins on both sides.
	barSlotFill = 0.8

	// Axis labels longer than this many runes are truncated with an ellipsis.
	maxAxisLabelRunes = 15
)

// xLabelAngle is the rotation applied to x-axis labels for readability.
var xLabelAngle = -45 * math.Pi / 180

// ErrInvalidInput reports chart input the layout engine refuses to render,
// such as a grouped sub-bar without an explicit color.
var ErrInvalidInput = errors.New("trellis: invalid chart input")

// DataPoint is a single labeled bar. A zero-value Color means "use the theme
// accent" in simple mode; grouped sub-bars must set an explicit color.
type DataPoint struct {
	Label string
	Value float64
	Color Color
}

// GroupedDataPoint is a labeled cluster of sub-bars sharing one x-axis slot.
type GroupedDataPoint struct {
	Label  string
	Values []DataPoint
}

// ChartData is the chart input: either a simple series or a grouped series.
// The variant is fixed at construction ([Series] or [GroupedSeries]), so
// mixed inputs cannot be represented.
type ChartData struct {
	grouped bool
	simple  []DataPoint
	groups  []GroupedDataPoint
}

// Series builds simple (one bar per point) chart input.
func Series(points []DataPoint) ChartData {
	return ChartData{simple: points}
}

// GroupedSeries builds grouped chart input. Every sub-bar must carry an
// explicit color; a zero-value color is rejected with ErrInvalidInput, as is
// a group with no sub-bars.
func GroupedSeries(groups []GroupedDataPoint) (ChartData, error) {
	for _, g := range groups {
		if len(g.Values) == 0 {
			return ChartData{}, fmt.Errorf("%w: group %q has no values", ErrInvalidInput, g.Label)
		}
		for _, v := range g.Values {
			if v.Color.IsZero() {
				return ChartData{}, fmt.Errorf("%w: group %q value %q has no color", ErrInvalidInput, g.Label, v.Label)
			}
		}
	}
	return ChartData{grouped: true, groups: groups}, nil
}

// IsGrouped reports whether the data is a grouped series.
func (d ChartData) IsGrouped() bool {
	return d.grouped
}

// Len returns the number of x-axis slots (points or groups).
func (d ChartData) Len() int {
	if d.grouped {
		return len(d.groups)
	}
	return len(d.simple)
}

// --- Layout output ---

// Bar is one positioned rectangle, in plot-area coordinates.
type Bar struct {
	Rect    Rect
	Color   Color
	Label   string // source label, untruncated
	Tooltip string // hover string, e.g. "Rent: USD 1,200"
	Slot    int    // point/group index along the x axis
	Series  int    // sub-bar index within the group; 0 for simple series
}

// Tick is one value-axis reference line.
type Tick struct {
	Value float64 // rounded tick value
	Y     float64 // gridline position in plot-area coordinates
	Label string  // locale-formatted value
}

// AxisLabel is one x-axis slot label.
type AxisLabel struct {
	Text string  // truncated for display
	X    float64 // slot center in plot-area coordinates
}

// LegendEntry pairs a sub-series label with its color.
type LegendEntry struct {
	Label string
	Color Color
}

// ChartLayout is the full computed geometry for one render of a chart.
type ChartLayout struct {
	Empty     bool // no data: render a placeholder instead of geometry
	Grouped   bool
	MaxValue  float64
	SlotWidth float64
	Ticks     []Tick
	Bars      []Bar
	XLabels   []AxisLabel
	Legend    []LegendEntry
}

// LayoutOptions configures value formatting and defaulting for a layout pass.
type LayoutOptions struct {
	// Currency is the fixed 3-letter prefix for tooltip values.
	// Empty defaults to "USD".
	Currency string

	// DefaultBarColor fills simple-series bars whose DataPoint has no color.
	// Zero defaults to the built-in theme's accent.
	DefaultBarColor Color
}

func (o LayoutOptions) withDefaults() LayoutOptions {
	if o.Currency == "" {
		o.Currency = "USD"
	}
	if o.DefaultBarColor.IsZero() {
		o.DefaultBarColor = DefaultTheme().PrimaryAccent
	}
	return o
}

// ComputeLayout derives scale, ticks, and bar geometry from chart input.
// It is a pure function: same input, same geometry; nothing is cached or
// mutated. Empty input short-circuits to ChartLayout{Empty: true}.
func ComputeLayout(data ChartData, opts LayoutOptions) ChartLayout {
	if data.Len() == 0 {
		return ChartLayout{Empty: true, Grouped: data.grouped}
	}
	opts = opts.withDefaults()

	maxValue := scaleMax(data)
	layout := ChartLayout{
		Grouped:   data.grouped,
		MaxValue:  maxValue,
		SlotWidth: float64(ChartPlotWidth) / float64(data.Len()),
		Ticks:     computeTicks(maxValue),
	}

	if data.grouped {
		layout.Bars = groupedBars(data.groups, layout.SlotWidth, maxValue, opts)
		layout.Legend = legendEntries(data.groups)
		for i, g := range data.groups {
			layout.XLabels = append(layout.XLabels, slotLabel(g.Label, i, layout.SlotWidth))
		}
	} else {
		layout.Bars = simpleBars(data.simple, layout.SlotWidth, maxValue, opts)
		for i, p := range data.simple {
			layout.XLabels = append(layout.XLabels, slotLabel(p.Label, i, layout.SlotWidth))
		}
	}
	return layout
}

// scaleMax flattens all values and returns the scale maximum: the largest
// value, floored at 0, substituting 1 when every value is zero or below so
// that the scale division is always defined.
func scaleMax(data ChartData) float64 {
	maxValue := 0.0
	if data.grouped {
		for _, g := range data.groups {
			for _, v := range g.Values {
				maxValue = math.Max(maxValue, v.Value)
			}
		}
	} else {
		for _, p := range data.simple {
			maxValue = math.Max(maxValue, p.Value)
		}
	}
	if maxValue == 0 {
		return 1
	}
	return maxValue
}

// yScale maps a value to a vertical plot-area coordinate: 0 lands on the
// plot's bottom edge, maxValue on its top edge. Strictly linear.
func yScale(v, maxValue float64) float64 {
	return ChartPlotHeight - (v/maxValue)*ChartPlotHeight
}

// computeTicks returns tickSteps+1 ticks from 0 to maxValue. Gridlines are
// evenly spaced; displayed values are rounded to the nearest integer.
func computeTicks(maxValue float64) []Tick {
	ticks := make([]Tick, 0, tickSteps+1)
	for i := 0; i <= tickSteps; i++ {
		v := math.Round(float64(i) * maxValue / tickSteps)
		ticks = append(ticks, Tick{
			Value: v,
			Y:     float64(ChartPlotHeight) - float64(i)*float64(ChartPlotHeight)/tickSteps,
			Label: FormatNumber(v),
		})
	}
	return ticks
}

// barRect computes one bar's rectangle: top at yScale(v), extending down to
// the plot's bottom edge, height clamped at 0 against floating-point drift.
func barRect(x, width, v, maxValue float64) Rect {
	top := yScale(v, maxValue)
	height := float64(ChartPlotHeight) - top
	if height < 0 {
		height = 0
	}
	return Rect{X: x, Y: top, Width: width, Height: height}
}

// simpleBars lays out one bar per point: 80% of the slot width, centered in
// the slot with a 10% margin on each side.
func simpleBars(points []DataPoint, slotWidth, maxValue float64, opts LayoutOptions) []Bar {
	bars := make([]Bar, 0, len(points))
	barWidth := slotWidth * barSlotFill
	margin := slotWidth * (1 - barSlotFill) / 2

	for i, p := range points {
		color := p.Color
		if color.IsZero() {
			color = opts.DefaultBarColor
		}
		bars = append(bars, Bar{
			Rect:    barRect(float64(i)*slotWidth+margin, barWidth, p.Value, maxValue),
			Color:   color,
			Label:   p.Label,
			Tooltip: fmt.Sprintf("%s: %s", p.Label, FormatCurrency(opts.Currency, p.Value)),
			Slot:    i,
		})
	}
	return bars
}

// groupedBars lays out each group's sub-bars inside 80% of the group slot,
// packed left to right in array order, each 1/groupSize of the group width.
func groupedBars(groups []GroupedDataPoint, slotWidth, maxValue float64, opts LayoutOptions) []Bar {
	var bars []Bar
	margin := slotWidth * (1 - barSlotFill) / 2

	for i, g := range groups {
		subWidth := slotWidth * barSlotFill / float64(len(g.Values))
		for j, v := range g.Values {
			x := float64(i)*slotWidth + margin + float64(j)*subWidth
			bars = append(bars, Bar{
				Rect:    barRect(x, subWidth, v.Value, maxValue),
				Color:   v.Color,
				Label:   v.Label,
				Tooltip: fmt.Sprintf("%s - %s: %s", g.Label, v.Label, FormatCurrency(opts.Currency, v.Value)),
				Slot:    i,
				Series:  j,
			})
		}
	}
	return bars
}

// legendEntries derives the legend from the first group's sub-series.
// Series identity is assumed consistent across groups and not revalidated.
func legendEntries(groups []GroupedDataPoint) []LegendEntry {
	entries := make([]LegendEntry, 0, len(groups[0].Values))
	for _, v := range groups[0].Values {
		entries = append(entries, LegendEntry{Label: v.Label, Color: v.Color})
	}
	return entries
}

// slotLabel builds the display label for one x-axis slot.
func slotLabel(label string, slot int, slotWidth float64) AxisLabel {
	return AxisLabel{
		Text: TruncateLabel(label, maxAxisLabelRunes),
		X:    (float64(slot) + 0.5) * slotWidth,
	}
}
