package trellis

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Theme is the injected visual configuration for widgets. Widgets never
// compute colors; every fill and stroke resolves through the active theme.
//
// The zero value is not usable — call DefaultTheme or ParseTheme.
type Theme struct {
	PrimaryAccent Color   // default bar fill, highlights
	TextPrimary   Color   // titles, values
	TextSecondary Color   // axis labels, tick labels
	Border        Color   // panel and axis strokes
	Background    Color   // scene clear color
	Surface       Color   // panel and tooltip fills
	BorderRadius  float64 // corner radius for panels, bars stay square
}

// DefaultTheme returns the built-in dark theme.
func DefaultTheme() *Theme {
	return &Theme{
		PrimaryAccent: mustHex("#89b4fa"),
		TextPrimary:   mustHex("#cdd6f4"),
		TextSecondary: mustHex("#a6adc8"),
		Border:        mustHex("#45475a"),
		Background:    mustHex("#1e1e2e"),
		Surface:       mustHex("#313244"),
		BorderRadius:  6,
	}
}

// SeriesPalette returns the accent colors assigned to chart series that do
// not specify their own color, in display order.
func SeriesPalette() []Color {
	return []Color{
		mustHex("#89b4fa"), mustHex("#a6e3a1"), mustHex("#fab387"),
		mustHex("#f38ba8"), mustHex("#cba6f7"), mustHex("#94e2d5"),
		mustHex("#f9e2af"), mustHex("#74c7ec"),
	}
}

// themeFile is the YAML wire format for a theme. Tokens are hex color
// strings ("#rrggbb" or "#rrggbbaa"); omitted tokens keep their defaults.
type themeFile struct {
	PrimaryAccent string   `yaml:"primary-accent-color"`
	TextPrimary   string   `yaml:"text-primary-color"`
	TextSecondary string   `yaml:"text-secondary-color"`
	Border        string   `yaml:"border-color"`
	Background    string   `yaml:"background-color"`
	Surface       string   `yaml:"surface-color"`
	BorderRadius  *float64 `yaml:"border-radius"`
}

// ParseTheme parses a YAML theme document. Tokens not present in the
// document keep the DefaultTheme value, so a theme file only needs to name
// the tokens it overrides.
func ParseTheme(data []byte) (*Theme, error) {
	var f themeFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("trellis: failed to parse theme: %w", err)
	}

	t := DefaultTheme()
	fields := []struct {
		token string
		raw   string
		dst   *Color
	}{
		{"primary-accent-color", f.PrimaryAccent, &t.PrimaryAccent},
		{"text-primary-color", f.TextPrimary, &t.TextPrimary},
		{"text-secondary-color", f.TextSecondary, &t.TextSecondary},
		{"border-color", f.Border, &t.Border},
		{"background-color", f.Background, &t.Background},
		{"surface-color", f.Surface, &t.Surface},
	}
	for _, fld := range fields {
		if fld.raw == "" {
			continue
		}
		c, err := ParseHexColor(fld.raw)
		if err != nil {
			return nil, fmt.Errorf("trellis: theme token %s: %w", fld.token, err)
		}
		*fld.dst = c
	}
	if f.BorderRadius != nil {
		if *f.BorderRadius < 0 {
			return nil, fmt.Errorf("trellis: theme token border-radius: negative value %v", *f.BorderRadius)
		}
		t.BorderRadius = *f.BorderRadius
	}
	return t, nil
}

// ParseHexColor parses "#rgb", "#rrggbb", or "#rrggbbaa" into a Color.
func ParseHexColor(s string) (Color, error) {
	if len(s) == 0 || s[0] != '#' {
		return Color{}, fmt.Errorf("invalid hex color %q", s)
	}
	hx := s[1:]

	var r, g, b uint8
	a := uint8(0xff)
	switch len(hx) {
	case 3:
		r4, ok1 := hexNibble(hx[0])
		g4, ok2 := hexNibble(hx[1])
		b4, ok3 := hexNibble(hx[2])
		if !ok1 || !ok2 || !ok3 {
			return Color{}, fmt.Errorf("invalid hex color %q", s)
		}
		r, g, b = r4*17, g4*17, b4*17
	case 6, 8:
		var bytes [4]uint8
		for i := 0; i < len(hx)/2; i++ {
			hi, ok1 := hexNibble(hx[2*i])
			lo, ok2 := hexNibble(hx[2*i+1])
			if !ok1 || !ok2 {
				return Color{}, fmt.Errorf("invalid hex color %q", s)
			}
			bytes[i] = hi<<4 | lo
		}
		r, g, b = bytes[0], bytes[1], bytes[2]
		if len(hx) == 8 {
			a = bytes[3]
		}
	default:
		return Color{}, fmt.Errorf("invalid hex color %q", s)
	}

	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}, nil
}

func hexNibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// mustHex is for package-internal literals only.
func mustHex(s string) Color {
	c, err := ParseHexColor(s)
	if err != nil {
		panic("trellis: bad built-in color: " + s)
	}
	return c
}
