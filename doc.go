// Package trellis is a retained-mode dashboard widget toolkit for [Ebitengine].
//
// Trellis provides the small scene graph, pointer dispatch, vector-shape
// rendering, and text layout that dashboard-style overlays need, plus two
// ready-made widgets built on top of them: a bar chart ([NewBarChart], simple
// and grouped series) and a dismissible nudge overlay ([NewNudgeOverlay]).
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and loop
// for you:
//
//	data := trellis.Series([]trellis.DataPoint{
//		{Label: "Mon", Value: 120},
//		{Label: "Tue", Value: 80},
//	})
//	scene := trellis.NewScene()
//	scene.Root().AddChild(trellis.NewBarChart(data, "Revenue", trellis.ChartConfig{}))
//	trellis.Run(scene, trellis.RunConfig{Title: "Dashboard"})
//
// For full control, implement [ebiten.Game] yourself and call
// [Scene.Update] and [Scene.Draw] directly.
//
// # Logical canvas
//
// Widgets are laid out on a fixed 600x400 logical canvas. [Run] scales the
// canvas to the window, so geometry is resolution independent: a bar computed
// at x=80 is at x=80 regardless of window size.
//
// # Scene graph
//
// Every visual element is a [Node]. Nodes form a tree rooted at [Scene.Root].
// Children inherit their parent's transform and alpha. Create nodes with
// typed constructors: [NewContainer], [NewRect], [NewText].
//
//	panel := trellis.NewRect("panel", 200, 120, theme.Surface)
//	panel.CornerRadius = theme.BorderRadius
//	scene.Root().AddChild(panel)
//
// Interaction is delivered to the top-most node under the pointer: set
// [Node.Interactable] and one of the On* callbacks (OnClick, OnPointerEnter,
// OnPointerLeave). There is no event bubbling; a click on a child never
// reaches its ancestors.
//
// # Charts
//
// Chart geometry is computed by a pure layout pass ([ComputeLayout]) that is
// independent of rendering, so scales, ticks, and bar rectangles can be unit
// tested without a display. [NewBarChart] turns a layout into nodes, wiring
// hover tooltips and a legend for grouped input.
//
// Visual styling comes from an injected [Theme]; see [DefaultTheme] and
// [ParseTheme] for YAML-encoded themes.
//
// [Ebitengine]: https://ebitengine.org
package trellis
