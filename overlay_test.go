package trellis

import "testing"

func TestNudgeOverlayStructure(t *testing.T) {
	nudge := NewNudgeOverlay("Try the new report builder", NudgeConfig{})

	body := nudge.FindChild("nudge_body")
	if body == nil {
		t.Fatal("missing nudge_body")
	}
	text := nudge.FindChild("nudge_text")
	if text == nil || text.TextBlock.Content != "Try the new report builder" {
		t.Errorf("nudge_text = %v, want the message", text)
	}
	dismiss := nudge.FindChild("nudge_dismiss")
	if dismiss == nil {
		t.Fatal("missing nudge_dismiss")
	}
	if !dismiss.Interactable || dismiss.HitShape == nil {
		t.Error("dismiss control not hit-testable")
	}

	// Anchored to the bottom-right with the default width.
	if nudge.X+nudgeDefaultWidth+nudgeMargin != CanvasWidth {
		t.Errorf("nudge.X = %v, want right-anchored", nudge.X)
	}
	if nudge.Y >= CanvasHeight || nudge.Y < CanvasHeight/2 {
		t.Errorf("nudge.Y = %v, want near the bottom edge", nudge.Y)
	}
}

func TestNudgeDismissRemovesAndFiresCallback(t *testing.T) {
	s := NewScene()

	var dismissed, clicked int
	nudge := NewNudgeOverlay("Message", NudgeConfig{
		OnDismiss: func() { dismissed++ },
		OnClick:   func() { clicked++ },
	})
	s.Root().AddChild(nudge)

	dismiss := nudge.FindChild("nudge_dismiss")

	// Resolve the dismiss control's world position, then click its center.
	if err := s.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	wx, wy := dismiss.LocalToWorld(4, 6)
	s.InjectClick(wx, wy)
	drainInject(t, s)

	if dismissed != 1 {
		t.Errorf("dismissed = %d, want 1", dismissed)
	}
	if clicked != 0 {
		t.Errorf("clicked = %d, want 0 — dismiss must not double as a body click", clicked)
	}
	if nudge.Parent != nil {
		t.Error("overlay still attached after dismiss")
	}
}

func TestNudgeBodyClick(t *testing.T) {
	s := NewScene()

	var dismissed, clicked int
	nudge := NewNudgeOverlay("Message", NudgeConfig{
		OnDismiss: func() { dismissed++ },
		OnClick:   func() { clicked++ },
	})
	s.Root().AddChild(nudge)

	body := nudge.FindChild("nudge_body")
	if err := s.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	// Click the body's center, well away from the dismiss control.
	wx, wy := body.LocalToWorld(body.Width/2, body.Height/2)
	s.InjectClick(wx, wy)
	drainInject(t, s)

	if clicked != 1 {
		t.Errorf("clicked = %d, want 1", clicked)
	}
	if dismissed != 0 {
		t.Errorf("dismissed = %d, want 0", dismissed)
	}
	if nudge.Parent == nil {
		t.Error("body click must not remove the overlay")
	}
}

func TestNudgeBlocksNodesBehindIt(t *testing.T) {
	s := NewScene()

	var behindClicks int
	behind := NewRect("behind", CanvasWidth, CanvasHeight, ColorWhite)
	behind.Interactable = true
	behind.OnClick = func(ClickContext) { behindClicks++ }
	s.Root().AddChild(behind)

	nudge := NewNudgeOverlay("Message", NudgeConfig{})
	s.Root().AddChild(nudge)

	body := nudge.FindChild("nudge_body")
	if err := s.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	wx, wy := body.LocalToWorld(body.Width/2, body.Height/2)
	s.InjectClick(wx, wy)
	drainInject(t, s)

	if behindClicks != 0 {
		t.Errorf("behindClicks = %d, want 0 — the overlay swallows its clicks", behindClicks)
	}

	// A click outside the overlay reaches the node behind.
	s.InjectClick(20, 20)
	drainInject(t, s)

	if behindClicks != 1 {
		t.Errorf("behindClicks = %d, want 1 outside the overlay", behindClicks)
	}
}

func TestNudgeNilCallbacks(t *testing.T) {
	s := NewScene()
	nudge := NewNudgeOverlay("Message", NudgeConfig{})
	s.Root().AddChild(nudge)

	dismiss := nudge.FindChild("nudge_dismiss")
	if err := s.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	wx, wy := dismiss.LocalToWorld(4, 6)

	// Must not panic with no callbacks configured.
	s.InjectClick(wx, wy)
	drainInject(t, s)

	if nudge.Parent != nil {
		t.Error("overlay still attached after dismiss")
	}
}

func TestNudgeCustomWidth(t *testing.T) {
	nudge := NewNudgeOverlay("Message", NudgeConfig{Width: 320})
	body := nudge.FindChild("nudge_body")
	if body.Width != 320 {
		t.Errorf("body.Width = %v, want 320", body.Width)
	}
	if nudge.X+320+nudgeMargin != CanvasWidth {
		t.Errorf("nudge.X = %v, want right-anchored at custom width", nudge.X)
	}
}
