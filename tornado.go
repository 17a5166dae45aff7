package tornado

import "math"

// Color represents an RGB color with components in [0, 1].
type Color struct {
	R, G, B float64
}

// Vec3 is a 3D vector used for positions and offsets in world space.
// Y is up; the ground plane is XZ.
type Vec3 struct {
	X float64 `toml:"x" yaml:"x"`
	Y float64 `toml:"y" yaml:"y"`
	Z float64 `toml:"z" yaml:"z"`
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v * s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product v × o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// Length returns the Euclidean length of v.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns v scaled to unit length. The zero vector is returned unchanged.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// PlanarDistance returns the distance between a and b projected onto the
// ground (XZ) plane.
func PlanarDistance(a, b Vec3) float64 {
	return math.Hypot(b.X-a.X, b.Z-a.Z)
}

// Lerp interpolates from a to b by t. At t == 1 the result is exactly b.
func (v Vec3) Lerp(to Vec3, t float64) Vec3 {
	return Vec3{lerp(v.X, to.X, t), lerp(v.Y, to.Y, t), lerp(v.Z, to.Z, t)}
}

// lerp interpolates between a and b by t using a*(1-t) + b*t so both
// endpoints are reproduced exactly.
func lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

// Viewpoint is a named camera waypoint: where the eye sits and what it looks at.
type Viewpoint struct {
	Eye    Vec3 `toml:"eye" yaml:"eye"`
	Target Vec3 `toml:"target" yaml:"target"`
}

// Ground is the axis-aligned ground quad at Y = 0.
type Ground struct {
	MinX, MaxX float64
	MinZ, MaxZ float64
	Color      Color
}

// DefaultGround matches the scene's dirt plane.
var DefaultGround = Ground{
	MinX: -100, MaxX: 100,
	MinZ: -50, MaxZ: 50,
	Color: Color{0.45, 0.35, 0.25},
}

// ClearColor is the night-sky background.
var ClearColor = Color{0.05, 0.05, 0.1}
