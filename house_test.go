package tornado

import "testing"

func TestHouseToWorld(t *testing.T) {
	h := HouseState{Position: Vec3{10, 1, -5}, Scale: 2}
	assertVecNear(t, "origin", h.ToWorld(Vec3{}), h.Position)
	assertVecNear(t, "scaled", h.ToWorld(Vec3{1, 1, 0}), Vec3{12, 3, -5})

	// +90 degrees about +Y turns +X into -Z.
	h = HouseState{Yaw: 90, Scale: 1}
	assertVecNear(t, "rotated", h.ToWorld(Vec3{1, 0, 0}), Vec3{0, 0, -1})
	assertVecNear(t, "rotated z", h.ToWorld(Vec3{0, 0, 1}), Vec3{1, 0, 0})
}

func TestHouseToWorldZeroScale(t *testing.T) {
	h := HouseState{Position: Vec3{1, 2, 3}}
	assertVecNear(t, "zero scale", h.ToWorld(Vec3{1, 0, 0}), Vec3{2, 2, 3})
}

func TestHouseWireframe(t *testing.T) {
	h := DefaultHouseState()
	segs := h.Wireframe()
	// 12 box edges, 9 roof edges, 4 door edges, 4 window edges.
	if len(segs) != 29 {
		t.Fatalf("segments = %d, want 29", len(segs))
	}
	for i, s := range segs {
		for _, p := range []Vec3{s.A, s.B} {
			if d := PlanarDistance(p, h.Position); d > 2 {
				t.Errorf("segment %d point %+v is %v from the house", i, p, d)
			}
			if p.Y < h.Position.Y-1-epsilon || p.Y > h.Position.Y+2+epsilon {
				t.Errorf("segment %d point %+v outside house height", i, p)
			}
		}
	}
}

func TestGroundOutline(t *testing.T) {
	segs := DefaultGround.Outline()
	if len(segs) != 4 {
		t.Fatalf("segments = %d, want 4", len(segs))
	}
	for i, s := range segs {
		if s.B != segs[(i+1)%4].A {
			t.Errorf("edge %d does not connect to the next", i)
		}
		if s.A.Y != 0 {
			t.Errorf("edge %d not on the ground plane", i)
		}
	}
}
