package trellis

import "testing"

// drainInject runs Update once per queued synthetic event.
func drainInject(t *testing.T, s *Scene) {
	t.Helper()
	for s.PendingInjectedEvents() > 0 {
		if err := s.Update(); err != nil {
			t.Fatalf("Update: %v", err)
		}
	}
}

func newTestRect(name string, x, y, w, h float64) *Node {
	n := NewRect(name, w, h, ColorWhite)
	n.SetPosition(x, y)
	n.Interactable = true
	return n
}

func TestHitRectContains(t *testing.T) {
	r := HitRect{X: 10, Y: 10, Width: 20, Height: 20}
	if !r.Contains(10, 10) || !r.Contains(30, 30) || !r.Contains(20, 20) {
		t.Error("Contains rejected inside/edge points")
	}
	if r.Contains(9, 20) || r.Contains(20, 31) {
		t.Error("Contains accepted outside points")
	}
}

func TestHitCircleContains(t *testing.T) {
	c := HitCircle{CenterX: 50, CenterY: 50, Radius: 10}
	if !c.Contains(50, 50) || !c.Contains(60, 50) {
		t.Error("Contains rejected center/edge points")
	}
	if c.Contains(58, 58) {
		t.Error("Contains accepted a corner point outside the radius")
	}
}

func TestInjectClickFiresOnClick(t *testing.T) {
	s := NewScene()
	rect := newTestRect("target", 50, 50, 100, 40)
	s.Root().AddChild(rect)

	var clicks int
	var got ClickContext
	rect.OnClick = func(ctx ClickContext) {
		clicks++
		got = ctx
	}

	s.InjectClick(100, 70)
	drainInject(t, s)

	if clicks != 1 {
		t.Fatalf("clicks = %d, want 1", clicks)
	}
	if got.Node != rect {
		t.Errorf("ctx.Node = %v, want target rect", got.Node)
	}
	if got.GlobalX != 100 || got.GlobalY != 70 {
		t.Errorf("global = (%v, %v), want (100, 70)", got.GlobalX, got.GlobalY)
	}
	if got.LocalX != 50 || got.LocalY != 20 {
		t.Errorf("local = (%v, %v), want (50, 20)", got.LocalX, got.LocalY)
	}
	if got.Button != MouseButtonLeft {
		t.Errorf("button = %v, want left", got.Button)
	}
}

func TestClickNeedsPressAndReleaseOnSameNode(t *testing.T) {
	s := NewScene()
	a := newTestRect("a", 0, 0, 50, 50)
	b := newTestRect("b", 100, 0, 50, 50)
	s.Root().AddChild(a)
	s.Root().AddChild(b)

	var clicks, ups int
	a.OnClick = func(ClickContext) { clicks++ }
	b.OnClick = func(ClickContext) { clicks++ }
	s.OnPointerUp(func(PointerContext) { ups++ })

	// Press on a, release on b: no click anywhere, but pointer up fires.
	s.InjectPress(25, 25)
	s.InjectRelease(125, 25)
	drainInject(t, s)

	if clicks != 0 {
		t.Errorf("clicks = %d, want 0 when press and release hit different nodes", clicks)
	}
	if ups != 1 {
		t.Errorf("pointer up fired %d times, want 1", ups)
	}
}

func TestClickOnEmptySpace(t *testing.T) {
	s := NewScene()
	rect := newTestRect("target", 50, 50, 100, 40)
	s.Root().AddChild(rect)

	var clicks int
	rect.OnClick = func(ClickContext) { clicks++ }

	s.InjectClick(10, 10)
	drainInject(t, s)

	if clicks != 0 {
		t.Errorf("clicks = %d, want 0 for empty-space click", clicks)
	}
}

func TestHoverEnterLeave(t *testing.T) {
	s := NewScene()
	rect := newTestRect("target", 50, 50, 100, 40)
	s.Root().AddChild(rect)

	var enters, leaves int
	rect.OnPointerEnter = func(PointerContext) { enters++ }
	rect.OnPointerLeave = func(PointerContext) { leaves++ }

	s.InjectMove(100, 70) // onto the rect
	s.InjectMove(110, 72) // still over it — no extra enter
	s.InjectMove(10, 10)  // off the rect
	drainInject(t, s)

	if enters != 1 {
		t.Errorf("enters = %d, want 1", enters)
	}
	if leaves != 1 {
		t.Errorf("leaves = %d, want 1", leaves)
	}
}

func TestTopmostNodeWinsHitTest(t *testing.T) {
	s := NewScene()
	bottom := newTestRect("bottom", 0, 0, 100, 100)
	top := newTestRect("top", 25, 25, 50, 50)
	top.ZIndex = 1
	s.Root().AddChild(bottom)
	s.Root().AddChild(top)

	var bottomClicks, topClicks int
	bottom.OnClick = func(ClickContext) { bottomClicks++ }
	top.OnClick = func(ClickContext) { topClicks++ }

	// Click inside the overlap: only the topmost node receives it.
	s.InjectClick(50, 50)
	drainInject(t, s)

	if topClicks != 1 || bottomClicks != 0 {
		t.Errorf("top = %d, bottom = %d, want 1, 0", topClicks, bottomClicks)
	}

	// Click outside the top rect but inside the bottom one.
	s.InjectClick(10, 10)
	drainInject(t, s)

	if bottomClicks != 1 {
		t.Errorf("bottomClicks = %d, want 1 after clicking exposed area", bottomClicks)
	}
}

func TestInvisibleNodeNotHit(t *testing.T) {
	s := NewScene()
	rect := newTestRect("target", 50, 50, 100, 40)
	rect.SetVisible(false)
	s.Root().AddChild(rect)

	var clicks int
	rect.OnClick = func(ClickContext) { clicks++ }

	s.InjectClick(100, 70)
	drainInject(t, s)

	if clicks != 0 {
		t.Errorf("clicks = %d, want 0 for hidden node", clicks)
	}
}

func TestNonInteractableNodeNotHit(t *testing.T) {
	s := NewScene()
	rect := NewRect("target", 100, 40, ColorWhite)
	rect.SetPosition(50, 50)
	s.Root().AddChild(rect)

	var clicks int
	s.OnClick(func(ClickContext) { clicks++ })

	s.InjectClick(100, 70)
	drainInject(t, s)

	if clicks != 0 {
		t.Errorf("clicks = %d, want 0 for non-interactable node", clicks)
	}
}

func TestHitShapeOverridesDimensions(t *testing.T) {
	s := NewScene()
	rect := newTestRect("target", 0, 0, 100, 100)
	rect.HitShape = HitCircle{CenterX: 50, CenterY: 50, Radius: 20}
	s.Root().AddChild(rect)

	var clicks int
	rect.OnClick = func(ClickContext) { clicks++ }

	// Inside the rect bounds but outside the circle.
	s.InjectClick(5, 5)
	// Inside the circle.
	s.InjectClick(55, 50)
	drainInject(t, s)

	if clicks != 1 {
		t.Errorf("clicks = %d, want 1 (only the in-circle click)", clicks)
	}
}

func TestInteractableContainerWithHitShape(t *testing.T) {
	s := NewScene()
	con := NewContainer("zone")
	con.SetPosition(100, 100)
	con.Interactable = true
	con.HitShape = HitRect{Width: 40, Height: 40}
	s.Root().AddChild(con)

	var clicks int
	con.OnClick = func(ClickContext) { clicks++ }

	s.InjectClick(120, 120)
	drainInject(t, s)

	if clicks != 1 {
		t.Errorf("clicks = %d, want 1 for container with explicit HitShape", clicks)
	}
}

func TestSceneLevelClickHandler(t *testing.T) {
	s := NewScene()
	rect := newTestRect("target", 50, 50, 100, 40)
	s.Root().AddChild(rect)

	var sceneClicks int
	var sceneNode *Node
	handle := s.OnClick(func(ctx ClickContext) {
		sceneClicks++
		sceneNode = ctx.Node
	})

	s.InjectClick(100, 70)
	drainInject(t, s)

	if sceneClicks != 1 || sceneNode != rect {
		t.Fatalf("sceneClicks = %d, node = %v; want 1 click on target rect", sceneClicks, sceneNode)
	}

	// After Remove the handler no longer fires.
	handle.Remove()
	s.InjectClick(100, 70)
	drainInject(t, s)

	if sceneClicks != 1 {
		t.Errorf("sceneClicks = %d after Remove, want 1", sceneClicks)
	}
}

func TestUserDataReachesContext(t *testing.T) {
	s := NewScene()
	rect := newTestRect("target", 0, 0, 50, 50)
	rect.UserData = "payload"
	s.Root().AddChild(rect)

	var got any
	rect.OnClick = func(ctx ClickContext) { got = ctx.UserData }

	s.InjectClick(25, 25)
	drainInject(t, s)

	if got != "payload" {
		t.Errorf("UserData = %v, want %q", got, "payload")
	}
}

func TestHitTestRespectsTransforms(t *testing.T) {
	s := NewScene()
	group := NewContainer("group")
	group.SetPosition(200, 100)
	s.Root().AddChild(group)

	rect := newTestRect("target", 10, 10, 40, 40)
	group.AddChild(rect)

	var clicks int
	rect.OnClick = func(ClickContext) { clicks++ }

	// World position of the rect is (210, 110) through the parent offset.
	s.InjectClick(230, 130)
	drainInject(t, s)

	if clicks != 1 {
		t.Errorf("clicks = %d, want 1 through parent transform", clicks)
	}

	// The same point in root space no longer hits after the group moves.
	group.SetPosition(0, 0)
	s.InjectClick(230, 130)
	drainInject(t, s)

	if clicks != 1 {
		t.Errorf("clicks = %d after moving group, want still 1", clicks)
	}
}

func TestOnUpdateHookRuns(t *testing.T) {
	s := NewScene()
	node := NewContainer("ticker")
	s.Root().AddChild(node)

	var ticks int
	var lastDt float64
	node.OnUpdate = func(dt float64) {
		ticks++
		lastDt = dt
	}

	if err := s.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if ticks != 1 {
		t.Errorf("ticks = %d, want 1", ticks)
	}
	if lastDt <= 0 {
		t.Errorf("dt = %v, want > 0", lastDt)
	}

	// Hidden subtrees skip OnUpdate.
	node.SetVisible(false)
	if err := s.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if ticks != 1 {
		t.Errorf("ticks = %d for hidden node, want 1", ticks)
	}
}
