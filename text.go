package trellis

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Font is the interface for text measurement and layout.
type Font interface {
	MeasureString(text string) (width, height float64)
	LineHeight() float64
}

// TextBlock holds text content and formatting for a text node.
type TextBlock struct {
	Content string
	Font    Font
	Align   TextAlign
	Color   Color
}

// Measure returns the rendered size of the block's content.
func (tb *TextBlock) Measure() (width, height float64) {
	if tb.Font == nil || tb.Content == "" {
		return 0, 0
	}
	return tb.Font.MeasureString(tb.Content)
}

// --- TTFFont ---

// TTFFont wraps Ebitengine's text/v2 for TrueType font rendering.
type TTFFont struct {
	face   *text.GoTextFace
	source *text.GoTextFaceSource
	size   float64
	lh     float64 // cached line height
}

// LoadTTFFont loads a TrueType font from raw TTF/OTF data at the given size.
func LoadTTFFont(ttfData []byte, size float64) (*TTFFont, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("trellis: failed to parse TTF data: %w", err)
	}
	return ttfFromSource(source, size), nil
}

func ttfFromSource(source *text.GoTextFaceSource, size float64) *TTFFont {
	face := &text.GoTextFace{
		Source: source,
		Size:   size,
	}
	m := face.Metrics()
	lh := m.HAscent + m.HDescent + m.HLineGap

	return &TTFFont{
		face:   face,
		source: source,
		size:   size,
		lh:     lh,
	}
}

// MeasureString returns the width and height of the rendered text.
func (f *TTFFont) MeasureString(s string) (width, height float64) {
	w, h := text.Measure(s, f.face, f.lh)
	return w, h
}

// LineHeight returns the vertical distance between baselines.
func (f *TTFFont) LineHeight() float64 {
	return f.lh
}

// Size returns the font size the face was created with.
func (f *TTFFont) Size() float64 {
	return f.size
}

// Face returns the underlying GoTextFace for direct Ebitengine text/v2 rendering.
func (f *TTFFont) Face() *text.GoTextFace {
	return f.face
}

// --- Default font ---

// Lazily-initialized built-in font state (plain vars — trellis is
// single-threaded).
var (
	defaultFontSource *text.GoTextFaceSource
	defaultFontSizes  = map[float64]*TTFFont{}
)

// DefaultFont returns the built-in face (Go Regular) at the given size.
// Faces are cached per size. Widgets fall back to this when no font is
// configured.
func DefaultFont(size float64) *TTFFont {
	if defaultFontSource == nil {
		source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			// goregular.TTF is embedded and known-good.
			panic("trellis: failed to parse built-in font: " + err.Error())
		}
		defaultFontSource = source
	}

	if f, ok := defaultFontSizes[size]; ok {
		return f
	}
	f := ttfFromSource(defaultFontSource, size)
	defaultFontSizes[size] = f
	return f
}
