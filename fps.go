package trellis

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// NewFPSWidget creates a text node that displays the current FPS and TPS,
// refreshed every ~0.5 seconds. Drawn above siblings via a high ZIndex.
func NewFPSWidget() *Node {
	node := NewText("fps_widget", "", DefaultFont(11))
	node.TextBlock.Color = Color{1, 1, 1, 0.7}
	node.X = 4
	node.Y = 2
	node.ZIndex = 255

	var sinceUpdate float64
	node.OnUpdate = func(dt float64) {
		sinceUpdate += dt
		if sinceUpdate < 0.5 && node.TextBlock.Content != "" {
			return
		}
		sinceUpdate = 0
		node.TextBlock.Content = fmt.Sprintf("FPS: %.1f  TPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
	}

	return node
}
