package trellis

// Nudge overlay metrics, in logical units.
const (
	nudgeDefaultWidth = 240.0
	nudgePadding      = 12.0
	nudgeTextSize     = 13
	nudgeDismissSize  = 18.0
	nudgeMargin       = 12.0
)

// NudgeConfig configures a nudge overlay. The zero value produces a
// non-clickable nudge with a working dismiss control and the built-in theme.
type NudgeConfig struct {
	// OnDismiss fires when the dismiss control is clicked, after the overlay
	// removes itself from its parent. Nil is a no-op.
	OnDismiss func()

	// OnClick fires when the overlay body is clicked. It does not fire for
	// clicks on the dismiss control, and clicks never reach nodes behind the
	// overlay. Nil is a no-op.
	OnClick func()

	// Theme supplies all colors. Nil defaults to DefaultTheme.
	Theme *Theme

	// Width of the overlay box. Zero defaults to 240.
	Width float64
}

// NewNudgeOverlay builds a small floating message box anchored to the
// bottom-right of the logical canvas. Add it to a parent container to show
// it; the dismiss control detaches it again. The overlay holds no state —
// every interaction is an immediate synchronous callback.
func NewNudgeOverlay(message string, cfg NudgeConfig) *Node {
	theme := cfg.Theme
	if theme == nil {
		theme = DefaultTheme()
	}
	width := cfg.Width
	if width <= 0 {
		width = nudgeDefaultWidth
	}

	font := DefaultFont(nudgeTextSize)
	_, textH := font.MeasureString(message)
	height := textH + 2*nudgePadding

	root := NewContainer("nudge")
	root.SetZIndex(200)
	root.SetPosition(CanvasWidth-width-nudgeMargin, CanvasHeight-height-nudgeMargin)

	body := NewRect("nudge_body", width, height, theme.Surface)
	body.CornerRadius = theme.BorderRadius
	body.StrokeColor = theme.PrimaryAccent
	body.StrokeWidth = 1
	body.Interactable = true
	body.OnClick = func(ClickContext) {
		if cfg.OnClick != nil {
			cfg.OnClick()
		}
	}
	root.AddChild(body)

	text := NewText("nudge_text", message, font)
	text.TextBlock.Color = theme.TextPrimary
	text.SetPosition(nudgePadding, nudgePadding)
	root.AddChild(text)

	// The dismiss control sits on top of the body, so it wins hit testing
	// and a dismiss click never doubles as a body click.
	dismiss := NewText("nudge_dismiss", "×", DefaultFont(nudgeTextSize))
	dismiss.TextBlock.Color = theme.TextSecondary
	dismiss.SetPosition(width-nudgeDismissSize, 2)
	dismiss.HitShape = HitRect{X: -4, Y: -2, Width: nudgeDismissSize + 4, Height: nudgeDismissSize + 2}
	dismiss.Interactable = true
	dismiss.ZIndex = 1
	dismiss.OnClick = func(ClickContext) {
		root.RemoveFromParent()
		if cfg.OnDismiss != nil {
			cfg.OnDismiss()
		}
	}
	root.AddChild(dismiss)

	return root
}
