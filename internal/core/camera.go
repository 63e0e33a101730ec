package core

import "math"

// Near plane distance; points closer than this to the camera are not projected.
const cameraNear = 0.1

// Camera is a look-at perspective pose.
// FOV is the vertical field of view in degrees; Aspect is width/height.
type Camera struct {
	Position Vec3
	Target   Vec3
	FOV      float64
	Aspect   float64
}

// NewCamera returns a camera at pos looking at target with a 60° field of view.
func NewCamera(pos, target Vec3, aspect float64) Camera {
	if aspect <= 0 {
		aspect = 1
	}
	return Camera{Position: pos, Target: target, FOV: 60, Aspect: aspect}
}

// basis returns the camera's forward, right and up unit vectors.
func (c Camera) basis() (fwd, right, up Vec3) {
	fwd = c.Target.Sub(c.Position).Normalize()
	if fwd == (Vec3{}) {
		fwd = Vec3{0, 0, -1}
	}
	right = fwd.Cross(Vec3{0, 1, 0}).Normalize()
	if right == (Vec3{}) {
		// Looking straight up or down
		right = Vec3{1, 0, 0}
	}
	up = right.Cross(fwd)
	return fwd, right, up
}

func (c Camera) tanHalfFOV() float64 {
	fov := c.FOV
	if fov <= 0 {
		fov = 60
	}
	return math.Tan(fov * math.Pi / 360)
}

// Ray returns the world-space ray through normalized device coordinates
// (ndcX, ndcY in [-1,1], +Y up). The direction is unit length.
func (c Camera) Ray(ndcX, ndcY float64) (origin, dir Vec3) {
	fwd, right, up := c.basis()
	t := c.tanHalfFOV()
	aspect := c.Aspect
	if aspect <= 0 {
		aspect = 1
	}
	dir = fwd.
		Add(right.Scale(ndcX * t * aspect)).
		Add(up.Scale(ndcY * t)).
		Normalize()
	return c.Position, dir
}

// Project maps a world point to normalized device coordinates.
// depth is the distance along the view axis. ok is false for points behind
// the near plane.
func (c Camera) Project(p Vec3) (ndcX, ndcY, depth float64, ok bool) {
	fwd, right, up := c.basis()
	d := p.Sub(c.Position)
	depth = d.Dot(fwd)
	if depth < cameraNear {
		return 0, 0, depth, false
	}
	t := c.tanHalfFOV()
	aspect := c.Aspect
	if aspect <= 0 {
		aspect = 1
	}
	ndcX = d.Dot(right) / (depth * t * aspect)
	ndcY = d.Dot(up) / (depth * t)
	return ndcX, ndcY, depth, true
}

// FocalScale returns how many NDC units one world unit spans at the given depth.
func (c Camera) FocalScale(depth float64) float64 {
	if depth < cameraNear {
		depth = cameraNear
	}
	return 1 / (depth * c.tanHalfFOV())
}
