package tornado

// ArrivalEpsilon is the planar distance below which the tornado counts as
// having reached the house.
const ArrivalEpsilon = 0.001

// TornadoState is the tornado's world-space placement. Position offsets every
// grain at render time.
type TornadoState struct {
	Position Vec3
	// Active starts the homing motion toward the house.
	Active bool
	// Speed is the homing speed in world units per second.
	Speed float64
	// Radius is the tornado's collision radius.
	Radius float64
}

// HouseState is the fixed placement of the house.
type HouseState struct {
	Position Vec3 `toml:"position" yaml:"position"`
	// Radius is the house's collision radius.
	Radius float64 `toml:"radius" yaml:"radius"`
	// Yaw is the rotation about Y in degrees applied when drawing.
	Yaw float64 `toml:"yaw" yaml:"yaw"`
	// Scale is the uniform scale applied when drawing.
	Scale float64 `toml:"scale" yaml:"scale"`
}

// DefaultTornadoState returns the tornado at the origin, idle.
func DefaultTornadoState() TornadoState {
	return TornadoState{Speed: 2, Radius: 3}
}

// DefaultHouseState returns the house placement used by the scene.
func DefaultHouseState() HouseState {
	return HouseState{
		Position: Vec3{-25, 1, 20},
		Radius:   4,
		Yaw:      -100,
		Scale:    1,
	}
}

// CollisionGate latches a one-way destroyed flag once the active tornado
// comes within reach of the house, and drives the tornado's homing motion.
type CollisionGate struct {
	houseRadius   float64
	tornadoRadius float64
	destroyed     bool
}

// NewCollisionGate returns a gate that fires when the planar distance drops
// below houseRadius + tornadoRadius.
func NewCollisionGate(houseRadius, tornadoRadius float64) *CollisionGate {
	return &CollisionGate{houseRadius: houseRadius, tornadoRadius: tornadoRadius}
}

// Destroyed reports whether the house has been destroyed. Never reverts.
func (g *CollisionGate) Destroyed() bool {
	return g.destroyed
}

// Reach returns the combined collision radius.
func (g *CollisionGate) Reach() float64 {
	return g.houseRadius + g.tornadoRadius
}

// Evaluate checks the planar distance between the tornado and the house and
// latches the destroyed flag. It is a no-op unless active.
func (g *CollisionGate) Evaluate(tornadoPos, housePos Vec3, active bool) bool {
	if !active || g.destroyed {
		return g.destroyed
	}
	if PlanarDistance(tornadoPos, housePos) < g.Reach() {
		g.destroyed = true
	}
	return g.destroyed
}

// Home moves an active tornado toward housePos by at most Speed*dt along the
// ground plane. A tornado within ArrivalEpsilon has arrived and does not move.
func (g *CollisionGate) Home(t *TornadoState, housePos Vec3, dt float64) {
	if !t.Active {
		return
	}
	dx := housePos.X - t.Position.X
	dz := housePos.Z - t.Position.Z
	dist := PlanarDistance(t.Position, housePos)
	if dist < ArrivalEpsilon {
		return
	}

	step := t.Speed * dt
	if step >= dist {
		t.Position.X = housePos.X
		t.Position.Z = housePos.Z
		return
	}
	t.Position.X += dx / dist * step
	t.Position.Z += dz / dist * step
}

// Step runs one tick of homing followed by collision evaluation. It reports
// whether the destroyed flag flipped during this call.
func (g *CollisionGate) Step(t *TornadoState, house HouseState, dt float64) bool {
	before := g.destroyed
	g.Home(t, house.Position, dt)
	return g.Evaluate(t.Position, house.Position, t.Active) && !before
}
