package trellis

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title string

	// Window size in device pixels. Zero values default to 2x the logical
	// canvas. The logical canvas itself is always CanvasWidth x CanvasHeight;
	// Ebitengine scales it to fill the window.
	Width  int
	Height int

	// ShowFPS attaches an FPS readout in the top-left corner.
	ShowFPS bool

	// Resizable allows the user to resize the window. The logical canvas
	// keeps its fixed aspect ratio regardless.
	Resizable bool
}

// game adapts a Scene to the ebiten.Game interface. Layout pins the logical
// canvas size so widget geometry is resolution independent.
type game struct {
	scene *Scene
}

func (g *game) Update() error {
	return g.scene.Update()
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(g.scene.ClearColor.toRGBA())
	g.scene.Draw(screen)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return CanvasWidth, CanvasHeight
}

// Run opens a window and drives the scene's update/draw loop until the
// window is closed or the scene's update func returns an error.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = CanvasWidth * 2
	}
	if cfg.Height <= 0 {
		cfg.Height = CanvasHeight * 2
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	if cfg.ShowFPS {
		scene.Root().AddChild(NewFPSWidget())
	}

	return ebiten.RunGame(&game{scene: scene})
}
