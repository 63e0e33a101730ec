package scene

import (
	"testing"

	"github.com/vovakirdan/dragon-ascent/internal/core"
)

func TestSceneHandleLifecycle(t *testing.T) {
	s := New()

	a := s.CreateVisual(core.VisualEnemy, core.Style{Size: 1})
	b := s.CreateVisual(core.VisualParticle, core.Style{Size: 0.5})
	if a == 0 || b == 0 || a == b {
		t.Fatalf("handles should be unique and non-zero, got %d %d", a, b)
	}
	if s.Live() != 2 || s.Count(core.VisualEnemy) != 1 {
		t.Errorf("Live() = %d, expected 2", s.Live())
	}

	s.SetPosition(a, core.V3(1, 2, 3))
	s.SetOpacity(b, 4)
	if v, _ := s.Get(a); v.Pos != core.V3(1, 2, 3) {
		t.Errorf("position = %v", v.Pos)
	}
	if v, _ := s.Get(b); v.Opacity != 1 {
		t.Errorf("opacity should clamp to 1, got %v", v.Opacity)
	}

	s.RemoveVisual(a)
	s.RemoveVisual(a)
	s.SetPosition(a, core.V3(9, 9, 9))
	if s.Live() != 1 {
		t.Errorf("Live() after remove = %d, expected 1", s.Live())
	}
	if _, ok := s.Get(a); ok {
		t.Error("removed handle should be gone")
	}
	if s.Created() != 2 {
		t.Errorf("Created() = %d", s.Created())
	}
}

func TestSceneVisibleSortedFarToNear(t *testing.T) {
	s := New()
	s.SetCamera(core.V3(0, 0, 10), core.Vec3{})
	s.OnResize(1, 100, 100)

	near := s.CreateVisual(core.VisualEnemy, core.Style{Size: 1})
	far := s.CreateVisual(core.VisualEnemy, core.Style{Size: 1})
	behind := s.CreateVisual(core.VisualEnemy, core.Style{Size: 1})
	faded := s.CreateVisual(core.VisualParticle, core.Style{Size: 1})
	s.SetPosition(near, core.V3(0, 0, 5))
	s.SetPosition(far, core.V3(0, 0, -50))
	s.SetPosition(behind, core.V3(0, 0, 20))
	s.SetPosition(faded, core.V3(0, 0, 0))
	s.SetOpacity(faded, 0)

	vis := s.Visible()
	if len(vis) != 2 {
		t.Fatalf("expected 2 visible, got %d", len(vis))
	}
	if vis[0].Handle != far || vis[1].Handle != near {
		t.Errorf("order = %d, %d; expected far then near", vis[0].Handle, vis[1].Handle)
	}
	if vis[1].Radius <= vis[0].Radius {
		t.Error("nearer visuals should project larger")
	}
}

func TestSceneResizeAndFrames(t *testing.T) {
	s := New()
	s.OnResize(2, 160, 80)
	if w, h := s.Size(); w != 160 || h != 80 {
		t.Errorf("Size() = %dx%d", w, h)
	}
	if s.Camera().Aspect != 2 {
		t.Errorf("aspect = %v", s.Camera().Aspect)
	}

	s.RenderFrame()
	s.RenderFrame()
	if s.Frames() != 2 {
		t.Errorf("Frames() = %d", s.Frames())
	}
}
