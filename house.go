package tornado

import "math"

// Segment is a line between two world-space points.
type Segment struct {
	A, B Vec3
}

// Model-space house geometry: a 2x2x2 box with a gabled roof on top and a
// door and window outlined on the front face (+Z).
const (
	houseHalf      = 1.0
	roofHalfWidth  = 1.25
	roofHeight     = 1.0
	houseFrontZ    = houseHalf
	doorCenterX    = 0.525
	doorCenterY    = -0.275
	doorHalfWidth  = 0.3
	doorHalfHeight = 0.6875
	winCenterX     = -0.415
	winCenterY     = 0.15
	winHalf        = 0.3125
)

// ToWorld maps a model-space point through the house transform: scale, then
// rotate Yaw degrees about +Y, then translate to Position.
func (h HouseState) ToWorld(p Vec3) Vec3 {
	s := h.Scale
	if s == 0 {
		s = 1
	}
	p = p.Scale(s)
	rad := h.Yaw * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return Vec3{
		X: p.X*cos + p.Z*sin + h.Position.X,
		Y: p.Y + h.Position.Y,
		Z: -p.X*sin + p.Z*cos + h.Position.Z,
	}
}

// Wireframe returns the house outline in world space.
func (h HouseState) Wireframe() []Segment {
	model := make([]Segment, 0, 32)

	// Box.
	c := func(x, y, z float64) Vec3 { return Vec3{x * houseHalf, y * houseHalf, z * houseHalf} }
	box := [8]Vec3{
		c(-1, -1, -1), c(1, -1, -1), c(1, -1, 1), c(-1, -1, 1),
		c(-1, 1, -1), c(1, 1, -1), c(1, 1, 1), c(-1, 1, 1),
	}
	for i := 0; i < 4; i++ {
		j := (i + 1) % 4
		model = append(model,
			Segment{box[i], box[j]},
			Segment{box[i+4], box[j+4]},
			Segment{box[i], box[i+4]},
		)
	}

	// Roof: two slopes meeting at a ridge along Z.
	eaveY := houseHalf
	ridgeF := Vec3{0, eaveY + roofHeight, houseHalf}
	ridgeB := Vec3{0, eaveY + roofHeight, -houseHalf}
	leftF := Vec3{-roofHalfWidth, eaveY, houseHalf}
	leftB := Vec3{-roofHalfWidth, eaveY, -houseHalf}
	rightF := Vec3{roofHalfWidth, eaveY, houseHalf}
	rightB := Vec3{roofHalfWidth, eaveY, -houseHalf}
	model = append(model,
		Segment{ridgeF, ridgeB},
		Segment{leftF, ridgeF}, Segment{rightF, ridgeF},
		Segment{leftB, ridgeB}, Segment{rightB, ridgeB},
		Segment{leftF, leftB}, Segment{rightF, rightB},
		Segment{leftF, rightF}, Segment{leftB, rightB},
	)

	model = appendRect(model, doorCenterX, doorCenterY, doorHalfWidth, doorHalfHeight)
	model = appendRect(model, winCenterX, winCenterY, winHalf, winHalf)

	for i := range model {
		model[i].A = h.ToWorld(model[i].A)
		model[i].B = h.ToWorld(model[i].B)
	}
	return model
}

// appendRect outlines a rectangle on the front face.
func appendRect(segs []Segment, cx, cy, hw, hh float64) []Segment {
	tl := Vec3{cx - hw, cy + hh, houseFrontZ}
	tr := Vec3{cx + hw, cy + hh, houseFrontZ}
	br := Vec3{cx + hw, cy - hh, houseFrontZ}
	bl := Vec3{cx - hw, cy - hh, houseFrontZ}
	return append(segs, Segment{tl, tr}, Segment{tr, br}, Segment{br, bl}, Segment{bl, tl})
}

// Outline returns the ground rectangle's edges at y = 0.
func (g Ground) Outline() []Segment {
	a := Vec3{g.MinX, 0, g.MinZ}
	b := Vec3{g.MaxX, 0, g.MinZ}
	c := Vec3{g.MaxX, 0, g.MaxZ}
	d := Vec3{g.MinX, 0, g.MaxZ}
	return []Segment{{a, b}, {b, c}, {c, d}, {d, a}}
}
