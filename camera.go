package tornado

import "math"

// Camera is a look-at camera. It is derived by SceneController every tick and
// read by renderers.
type Camera struct {
	Eye    Vec3
	Target Vec3
	Up     Vec3
}

// newCamera creates a Camera at the given viewpoint with +Y up.
func newCamera(vp Viewpoint) Camera {
	return Camera{Eye: vp.Eye, Target: vp.Target, Up: Vec3{0, 1, 0}}
}

// Viewport describes the projection onto a screen of Width x Height units.
type Viewport struct {
	Width, Height float64
	// FOV is the vertical field of view in degrees.
	FOV float64
	// Near and Far bound the visible depth range.
	Near, Far float64
}

// DefaultViewport matches a 1200x720 window with a 60 degree vertical field of view.
var DefaultViewport = Viewport{Width: 1200, Height: 720, FOV: 60, Near: 1, Far: 100}

// basis returns the camera's right, up and forward unit vectors.
func (c Camera) basis() (right, up, forward Vec3) {
	forward = c.Target.Sub(c.Eye).Normalize()
	worldUp := c.Up
	if worldUp == (Vec3{}) {
		worldUp = Vec3{0, 1, 0}
	}
	right = forward.Cross(worldUp).Normalize()
	up = right.Cross(forward)
	return right, up, forward
}

// Project maps world point p to screen coordinates with the origin at the
// top-left and Y increasing downward. ok is false when p lies outside the
// viewport's depth range. Points outside the screen rectangle are still
// returned with ok true.
func (c Camera) Project(p Vec3, vp Viewport) (sx, sy, depth float64, ok bool) {
	right, up, forward := c.basis()
	d := p.Sub(c.Eye)
	depth = d.Dot(forward)
	if depth < vp.Near || (vp.Far > 0 && depth > vp.Far) {
		return 0, 0, depth, false
	}

	focal := 1 / math.Tan(vp.FOV*math.Pi/360)
	aspect := vp.Width / vp.Height
	ndcX := d.Dot(right) * focal / (aspect * depth)
	ndcY := d.Dot(up) * focal / depth

	sx = (ndcX + 1) * 0.5 * vp.Width
	sy = (1 - ndcY) * 0.5 * vp.Height
	return sx, sy, depth, true
}

// OnScreen reports whether the screen point lies within the viewport.
func (vp Viewport) OnScreen(sx, sy float64) bool {
	return sx >= 0 && sx < vp.Width && sy >= 0 && sy < vp.Height
}
