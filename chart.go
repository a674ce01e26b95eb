package trellis

import (
	"fmt"
	"math"
)

// Chart typography, in logical units.
const (
	chartTitleSize   = 16
	chartLabelSize   = 11
	chartTooltipSize = 12
)

// ChartConfig configures a bar chart. The zero value is usable: no axis
// label, the built-in theme, and USD currency formatting.
type ChartConfig struct {
	// YAxisLabel is drawn rotated along the value axis. Empty omits it.
	YAxisLabel string

	// Currency is the fixed 3-letter prefix in hover tooltips.
	// Empty defaults to "USD".
	Currency string

	// Theme supplies all colors. Nil defaults to DefaultTheme.
	Theme *Theme
}

// NewBarChart builds a bar chart widget spanning the logical canvas.
// Geometry is recomputed from data on construction; rebuild the widget to
// reflect new data. Empty data renders a placeholder message instead of
// axes and bars. Hovering a bar shows its tooltip; the returned node is
// otherwise inert.
func NewBarChart(data ChartData, title string, cfg ChartConfig) *Node {
	theme := cfg.Theme
	if theme == nil {
		theme = DefaultTheme()
	}

	root := NewContainer("barchart")

	panel := NewRect("panel", CanvasWidth, CanvasHeight, theme.Surface)
	panel.CornerRadius = theme.BorderRadius
	panel.StrokeColor = theme.Border
	panel.StrokeWidth = 1
	root.AddChild(panel)

	titleNode := NewText("title", title, DefaultFont(chartTitleSize))
	titleNode.TextBlock.Align = TextAlignCenter
	titleNode.TextBlock.Color = theme.TextPrimary
	titleNode.SetPosition(CanvasWidth/2, 8)
	root.AddChild(titleNode)

	layout := ComputeLayout(data, LayoutOptions{
		Currency:        cfg.Currency,
		DefaultBarColor: theme.PrimaryAccent,
	})

	if layout.Empty {
		placeholder := NewText("placeholder", "No data available", DefaultFont(chartTooltipSize))
		placeholder.TextBlock.Align = TextAlignCenter
		placeholder.TextBlock.Color = theme.TextSecondary
		placeholder.SetPosition(CanvasWidth/2, CanvasHeight/2-8)
		root.AddChild(placeholder)
		return root
	}

	labelFont := DefaultFont(chartLabelSize)

	if cfg.YAxisLabel != "" {
		axis := NewText("y_axis_label", cfg.YAxisLabel, labelFont)
		axis.TextBlock.Align = TextAlignCenter
		axis.TextBlock.Color = theme.TextSecondary
		axis.SetPosition(16, ChartPaddingTop+float64(ChartPlotHeight)/2)
		axis.SetRotation(-math.Pi / 2)
		root.AddChild(axis)
	}

	addTicks(root, layout, theme, labelFont)

	tooltip := newChartTooltip(theme)
	addBars(root, layout, tooltip)
	addXLabels(root, layout, theme, labelFont)

	if layout.Grouped {
		addLegend(root, layout.Legend, theme, labelFont)
	}

	// Added last so the tooltip draws over bars and labels.
	root.AddChild(tooltip.node)
	return root
}

// addTicks adds one gridline and one right-aligned value label per tick.
func addTicks(root *Node, layout ChartLayout, theme *Theme, font Font) {
	for i, tick := range layout.Ticks {
		y := ChartPaddingTop + tick.Y

		grid := NewRect(fmt.Sprintf("tick_%d", i), ChartPlotWidth, 1, theme.Border.WithAlpha(0.5))
		grid.SetPosition(ChartPaddingLeft, y)
		root.AddChild(grid)

		label := NewText(fmt.Sprintf("tick_label_%d", i), tick.Label, font)
		label.TextBlock.Align = TextAlignRight
		label.TextBlock.Color = theme.TextSecondary
		label.SetPosition(ChartPaddingLeft-8, y-chartLabelSize/2-1)
		root.AddChild(label)
	}
}

// addBars adds one interactable rect per bar, wired to the shared tooltip.
func addBars(root *Node, layout ChartLayout, tooltip *chartTooltip) {
	for _, bar := range layout.Bars {
		bar := bar
		node := NewRect(fmt.Sprintf("bar_%d_%d", bar.Slot, bar.Series), bar.Rect.Width, bar.Rect.Height, bar.Color)
		node.SetPosition(ChartPaddingLeft+bar.Rect.X, ChartPaddingTop+bar.Rect.Y)
		node.Interactable = true
		node.UserData = bar
		node.OnPointerEnter = func(PointerContext) {
			tooltip.show(bar)
		}
		node.OnPointerLeave = func(PointerContext) {
			tooltip.hide()
		}
		root.AddChild(node)
	}
}

// addXLabels adds the rotated slot labels under the plot. The anchor sits at
// the label's right end so rotation leans the text away from the axis.
func addXLabels(root *Node, layout ChartLayout, theme *Theme, font Font) {
	for i, lbl := range layout.XLabels {
		node := NewText(fmt.Sprintf("xlabel_%d", i), lbl.Text, font)
		node.TextBlock.Align = TextAlignRight
		node.TextBlock.Color = theme.TextSecondary
		node.SetPosition(ChartPaddingLeft+lbl.X, ChartPaddingTop+ChartPlotHeight+10)
		node.SetRotation(xLabelAngle)
		root.AddChild(node)
	}
}

// addLegend adds one swatch/label pair per sub-series, right-aligned above
// the plot.
func addLegend(root *Node, entries []LegendEntry, theme *Theme, font Font) {
	const (
		swatch  = 10.0
		gap     = 5.0
		spacing = 14.0
	)

	total := 0.0
	for i, e := range entries {
		w, _ := font.MeasureString(e.Label)
		total += swatch + gap + w
		if i > 0 {
			total += spacing
		}
	}

	legend := NewContainer("legend")
	legend.SetPosition(CanvasWidth-ChartPaddingRight-total, 10)
	x := 0.0
	for i, e := range entries {
		sw := NewRect(fmt.Sprintf("legend_swatch_%d", i), swatch, swatch, e.Color)
		sw.SetPosition(x, 1)
		legend.AddChild(sw)
		x += swatch + gap

		lbl := NewText(fmt.Sprintf("legend_label_%d", i), e.Label, font)
		lbl.TextBlock.Color = theme.TextSecondary
		lbl.SetPosition(x, 0)
		legend.AddChild(lbl)
		w, _ := font.MeasureString(e.Label)
		x += w + spacing
	}
	root.AddChild(legend)
}

// --- Tooltip ---

// chartTooltip is the single hover readout shared by all bars of a chart.
type chartTooltip struct {
	node *Node
	box  *Node
	text *Node
	font Font
}

func newChartTooltip(theme *Theme) *chartTooltip {
	font := DefaultFont(chartTooltipSize)

	node := NewContainer("tooltip")
	node.Visible = false
	node.SetZIndex(100)

	box := NewRect("tooltip_box", 0, 0, theme.Background.WithAlpha(0.95))
	box.CornerRadius = theme.BorderRadius
	box.StrokeColor = theme.Border
	box.StrokeWidth = 1
	node.AddChild(box)

	text := NewText("tooltip_text", "", font)
	text.TextBlock.Color = theme.TextPrimary
	node.AddChild(text)

	return &chartTooltip{node: node, box: box, text: text, font: font}
}

// show sizes the tooltip to the bar's hover string and positions it above
// the bar, clamped into the canvas.
func (t *chartTooltip) show(bar Bar) {
	const pad = 6.0

	t.text.TextBlock.Content = bar.Tooltip
	w, h := t.text.TextBlock.Measure()
	t.box.Width = w + 2*pad
	t.box.Height = h + 2*pad
	t.text.SetPosition(pad, pad)

	x := ChartPaddingLeft + bar.Rect.X + bar.Rect.Width/2 - t.box.Width/2
	y := ChartPaddingTop + bar.Rect.Y - t.box.Height - 4
	if x < 2 {
		x = 2
	}
	if maxX := CanvasWidth - t.box.Width - 2; x > maxX {
		x = maxX
	}
	if y < 2 {
		y = 2
	}
	t.node.SetPosition(x, y)
	t.node.SetVisible(true)
}

func (t *chartTooltip) hide() {
	t.node.SetVisible(false)
}
