package trellis

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// Logical canvas dimensions. All widget geometry is computed in these units;
// Run scales the canvas to the window.
const (
	CanvasWidth  = 600
	CanvasHeight = 400
)

// Scene is the top-level object that owns the node tree, input state, and
// render buffers.
type Scene struct {
	root *Node

	// ClearColor fills the screen before drawing when the scene is run via
	// Run. Defaults to DefaultTheme().Background.
	ClearColor Color

	// Input state
	handlers    handlerRegistry
	pointer     pointerState
	hitBuf      []*Node
	injectQueue []syntheticPointerEvent

	// Optional per-frame hook, invoked from Update after node callbacks.
	updateFunc func() error
	updateErr  error

	// Render scratch buffers, reused across frames.
	vertBuf []ebiten.Vertex
	indBuf  []uint16
}

// NewScene creates a new scene with a pre-created root container spanning
// the logical canvas.
func NewScene() *Scene {
	root := NewContainer("root")
	root.Interactable = true
	return &Scene{
		root:       root,
		ClearColor: DefaultTheme().Background,
	}
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// SetUpdateFunc registers a per-frame callback, invoked from Update after
// node OnUpdate hooks and input processing. A non-nil return aborts Run.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// Update refreshes world transforms, runs per-node OnUpdate hooks, and
// processes pointer input. Call once per frame.
func (s *Scene) Update() error {
	dt := 1.0 / float64(ebiten.TPS())

	// Refresh world transforms first so hit testing sees accurate positions
	// this frame.
	updateWorldTransform(s.root, identityTransform, 1.0, false)

	fireUpdateHooks(s.root, dt)
	s.processInput()

	if s.updateFunc != nil {
		if err := s.updateFunc(); err != nil {
			s.updateErr = err
			return err
		}
	}
	return nil
}

// fireUpdateHooks walks the visible tree invoking OnUpdate callbacks.
func fireUpdateHooks(n *Node, dt float64) {
	if !n.Visible {
		return
	}
	if n.OnUpdate != nil {
		n.OnUpdate(dt)
	}
	for _, child := range n.children {
		fireUpdateHooks(child, dt)
	}
}

// Draw traverses the scene tree in painter order and renders each visible
// node to the given screen image.
func (s *Scene) Draw(screen *ebiten.Image) {
	// Transforms may be stale when Draw is called without Update (e.g. a
	// static scene rendered once).
	updateWorldTransform(s.root, identityTransform, 1.0, false)
	s.drawNode(screen, s.root)
}

// drawNode renders one node and recurses into its ZIndex-sorted children.
func (s *Scene) drawNode(screen *ebiten.Image, n *Node) {
	if !n.Visible {
		return
	}

	if n.worldAlpha > 0 {
		switch n.Type {
		case NodeTypeRect:
			s.drawRectNode(screen, n)
		case NodeTypeText:
			s.drawTextNode(screen, n)
		}
	}

	for _, child := range sortedByZIndex(n) {
		s.drawNode(screen, child)
	}
}

// sortedByZIndex returns the node's children in stable ZIndex order,
// rebuilding the cached buffer only when the child list changed.
func sortedByZIndex(n *Node) []*Node {
	if n.childrenSorted && len(n.sortedChildren) == len(n.children) {
		if len(n.sortedChildren) > 0 || len(n.children) == 0 {
			return n.sortedChildren
		}
	}
	n.sortedChildren = append(n.sortedChildren[:0], n.children...)
	sort.SliceStable(n.sortedChildren, func(i, j int) bool {
		return n.sortedChildren[i].ZIndex < n.sortedChildren[j].ZIndex
	})
	n.childrenSorted = true
	return n.sortedChildren
}
