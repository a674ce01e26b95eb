package trellis

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// whiteSubImage is the fill texture for vector triangles. A 3x3 image is used
// (sampling the center pixel) so antialiased edges never bleed neighbors.
var whiteSubImage *ebiten.Image

func init() {
	whiteImage := ebiten.NewImage(3, 3)
	whiteImage.Fill(ColorWhite.toRGBA())
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

// drawRectNode renders a rect node: fill first, then the stroke on top.
func (s *Scene) drawRectNode(screen *ebiten.Image, n *Node) {
	if n.Width <= 0 || n.Height <= 0 {
		return
	}

	var p vector.Path
	appendRoundedRectPath(&p, float32(n.Width), float32(n.Height), float32(n.CornerRadius))

	if n.Fill.A > 0 {
		s.vertBuf, s.indBuf = p.AppendVerticesAndIndicesForFilling(s.vertBuf[:0], s.indBuf[:0])
		s.submitVector(screen, n, n.Fill)
	}
	if n.StrokeWidth > 0 && n.StrokeColor.A > 0 {
		op := &vector.StrokeOptions{}
		op.Width = float32(n.StrokeWidth)
		s.vertBuf, s.indBuf = p.AppendVerticesAndIndicesForStroke(s.vertBuf[:0], s.indBuf[:0], op)
		s.submitVector(screen, n, n.StrokeColor)
	}
}

// submitVector transforms the scratch vertices into world space, applies the
// node color and inherited alpha, and issues one DrawTriangles call.
func (s *Scene) submitVector(screen *ebiten.Image, n *Node, c Color) {
	m := n.worldTransform
	a := c.A * n.worldAlpha
	for i := range s.vertBuf {
		x, y := transformPoint(m, float64(s.vertBuf[i].DstX), float64(s.vertBuf[i].DstY))
		s.vertBuf[i].DstX = float32(x)
		s.vertBuf[i].DstY = float32(y)
		s.vertBuf[i].SrcX = 1
		s.vertBuf[i].SrcY = 1
		s.vertBuf[i].ColorR = float32(c.R)
		s.vertBuf[i].ColorG = float32(c.G)
		s.vertBuf[i].ColorB = float32(c.B)
		s.vertBuf[i].ColorA = float32(a)
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.ColorScaleMode = ebiten.ColorScaleModeStraightAlpha
	op.AntiAlias = true
	screen.DrawTriangles(s.vertBuf, s.indBuf, whiteSubImage, op)
}

// appendRoundedRectPath appends a (w x h) rectangle with radius-r corners to
// the path, in local coordinates with the origin at the top-left.
func appendRoundedRectPath(p *vector.Path, w, h, r float32) {
	if r <= 0 {
		p.MoveTo(0, 0)
		p.LineTo(w, 0)
		p.LineTo(w, h)
		p.LineTo(0, h)
		p.Close()
		return
	}
	if half := min(w, h) / 2; r > half {
		r = half
	}

	const (
		q0 = float32(-math.Pi / 2)
		q1 = float32(0)
		q2 = float32(math.Pi / 2)
		q3 = float32(math.Pi)
		q4 = float32(3 * math.Pi / 2)
	)
	p.MoveTo(r, 0)
	p.LineTo(w-r, 0)
	p.Arc(w-r, r, r, q0, q1, vector.Clockwise)
	p.LineTo(w, h-r)
	p.Arc(w-r, h-r, r, q1, q2, vector.Clockwise)
	p.LineTo(r, h)
	p.Arc(r, h-r, r, q2, q3, vector.Clockwise)
	p.LineTo(0, r)
	p.Arc(r, r, r, q3, q4, vector.Clockwise)
	p.Close()
}

// drawTextNode renders a text node via Ebitengine's text/v2. The node's
// world transform supplies position and rotation; TextBlock.Align selects
// the horizontal anchor.
func (s *Scene) drawTextNode(screen *ebiten.Image, n *Node) {
	tb := n.TextBlock
	if tb == nil || tb.Content == "" {
		return
	}
	font, ok := tb.Font.(*TTFFont)
	if !ok || font == nil {
		// Non-TTF Font implementations (test fakes) measure but do not draw.
		return
	}

	op := &text.DrawOptions{}
	m := n.worldTransform
	op.GeoM.SetElement(0, 0, m[0])
	op.GeoM.SetElement(0, 1, m[2])
	op.GeoM.SetElement(0, 2, m[4])
	op.GeoM.SetElement(1, 0, m[1])
	op.GeoM.SetElement(1, 1, m[3])
	op.GeoM.SetElement(1, 2, m[5])

	c := tb.Color
	op.ColorScale.ScaleWithColor(c.WithAlpha(c.A * n.worldAlpha).toRGBA())

	op.LineSpacing = font.LineHeight()
	switch tb.Align {
	case TextAlignCenter:
		op.PrimaryAlign = text.AlignCenter
	case TextAlignRight:
		op.PrimaryAlign = text.AlignEnd
	default:
		op.PrimaryAlign = text.AlignStart
	}

	text.Draw(screen, tb.Content, font.Face(), op)
}
