// Package scene is a retained-mode core.Presenter shared by the hosts.
// It stores what the simulation told it and projects it on demand; hosts
// only decide how a projected visual looks.
package scene

import (
	"sort"

	"github.com/vovakirdan/dragon-ascent/internal/core"
)

// Visual is the stored state of one handle.
type Visual struct {
	Handle  core.Handle
	Kind    core.VisualKind
	Style   core.Style
	Pos     core.Vec3
	Rot     core.Vec3
	Opacity float64
}

// Projected is a visual mapped to normalized device coordinates.
type Projected struct {
	Visual
	X, Y   float64 // NDC, +Y up
	Depth  float64
	Radius float64 // Style.Size in NDC units at Depth
}

// Scene implements core.Presenter.
type Scene struct {
	visuals map[core.Handle]*Visual
	next    core.Handle
	camera  core.Camera
	width   int
	height  int
	frames  uint64
	created uint64
	removed uint64
}

// New creates an empty scene with a default camera.
func New() *Scene {
	return &Scene{
		visuals: make(map[core.Handle]*Visual),
		camera:  core.NewCamera(core.V3(0, 2, 15), core.Vec3{}, 16.0/9.0),
	}
}

// CreateVisual registers a new visual and returns its handle.
func (s *Scene) CreateVisual(kind core.VisualKind, style core.Style) core.Handle {
	s.next++
	s.created++
	s.visuals[s.next] = &Visual{Handle: s.next, Kind: kind, Style: style, Opacity: 1}
	return s.next
}

func (s *Scene) SetPosition(h core.Handle, pos core.Vec3) {
	if v, ok := s.visuals[h]; ok {
		v.Pos = pos
	}
}

func (s *Scene) SetRotation(h core.Handle, rot core.Vec3) {
	if v, ok := s.visuals[h]; ok {
		v.Rot = rot
	}
}

func (s *Scene) SetOpacity(h core.Handle, opacity float64) {
	if v, ok := s.visuals[h]; ok {
		v.Opacity = core.ClampF(opacity, 0, 1)
	}
}

// RemoveVisual drops a handle. Unknown handles are ignored.
func (s *Scene) RemoveVisual(h core.Handle) {
	if _, ok := s.visuals[h]; ok {
		delete(s.visuals, h)
		s.removed++
	}
}

func (s *Scene) SetCamera(pos, target core.Vec3) {
	s.camera.Position = pos
	s.camera.Target = target
}

// RenderFrame marks a frame boundary. Drawing happens in the host.
func (s *Scene) RenderFrame() {
	s.frames++
}

func (s *Scene) OnResize(aspect float64, width, height int) {
	if aspect > 0 {
		s.camera.Aspect = aspect
	}
	s.width = width
	s.height = height
}

// Camera returns the current camera pose.
func (s *Scene) Camera() core.Camera {
	return s.camera
}

// Size returns the last size passed to OnResize.
func (s *Scene) Size() (width, height int) {
	return s.width, s.height
}

// Frames returns the number of RenderFrame calls.
func (s *Scene) Frames() uint64 {
	return s.frames
}

// Live returns the number of handles currently held.
func (s *Scene) Live() int {
	return len(s.visuals)
}

// Created returns the total number of handles ever issued.
func (s *Scene) Created() uint64 {
	return s.created
}

// Get returns a copy of a visual.
func (s *Scene) Get(h core.Handle) (Visual, bool) {
	v, ok := s.visuals[h]
	if !ok {
		return Visual{}, false
	}
	return *v, true
}

// Count returns the number of live visuals of a kind.
func (s *Scene) Count(kind core.VisualKind) int {
	n := 0
	for _, v := range s.visuals {
		if v.Kind == kind {
			n++
		}
	}
	return n
}

// Visible projects every visual in front of the camera and on screen,
// sorted far to near so hosts can paint in order. Fully transparent
// visuals are skipped.
func (s *Scene) Visible() []Projected {
	out := make([]Projected, 0, len(s.visuals))
	for _, v := range s.visuals {
		if v.Opacity <= 0 {
			continue
		}
		x, y, depth, ok := s.camera.Project(v.Pos)
		if !ok {
			continue
		}
		r := v.Style.Size * s.camera.FocalScale(depth)
		if x+r < -1 || x-r > 1 || y+r < -1 || y-r > 1 {
			continue
		}
		out = append(out, Projected{Visual: *v, X: x, Y: y, Depth: depth, Radius: r})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Depth != out[j].Depth {
			return out[i].Depth > out[j].Depth
		}
		return out[i].Handle < out[j].Handle
	})
	return out
}

var _ core.Presenter = (*Scene)(nil)
