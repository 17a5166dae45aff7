package tornado

import (
	"errors"
	"math"

	"github.com/tanema/gween/ease"
)

// SceneID identifies one of the scripted camera scenes.
type SceneID uint8

const (
	SceneTornado SceneID = iota // fixed overview of the funnel
	SceneHouse                  // pan from the overview to the house
	SceneChase                  // follow the tornado toward the house
)

// String returns the scene's name.
func (s SceneID) String() string {
	switch s {
	case SceneTornado:
		return "tornado"
	case SceneHouse:
		return "house"
	case SceneChase:
		return "chase"
	default:
		return "unknown"
	}
}

// ErrFinalScene is returned by Advance when the controller is already in the
// last scene. The state is left unchanged.
var ErrFinalScene = errors.New("already in final scene")

// CameraConfig holds the camera waypoints and transition parameters.
type CameraConfig struct {
	// Overview is the fixed viewpoint of the tornado scene and the start of the pan.
	Overview Viewpoint
	// HouseView is the end of the pan.
	HouseView Viewpoint
	// PanSpeed is the pan progress gained per tick.
	PanSpeed float64
	// PanEase shapes the pan. Nil means linear.
	PanEase ease.TweenFunc
	// ChaseOffset is added to the tornado position to place the chase eye.
	ChaseOffset Vec3
	// ChaseTargetHeight is the fixed Y of the chase look-at point.
	ChaseTargetHeight float64
}

// DefaultCameraConfig returns the waypoints used by the scene.
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Overview: Viewpoint{
			Eye:    Vec3{0, 15, 25},
			Target: Vec3{0, 2, 0},
		},
		HouseView: Viewpoint{
			Eye:    Vec3{-30, 1, 20},
			Target: Vec3{40, 2, 0},
		},
		PanSpeed:          0.005,
		PanEase:           ease.Linear,
		ChaseOffset:       Vec3{-3, 15, -25},
		ChaseTargetHeight: 2,
	}
}

// SceneController is the scene state machine. It owns the current scene and
// pan progress and derives the camera from them each tick.
type SceneController struct {
	config   CameraConfig
	scene    SceneID
	panTicks int
	progress float64
	camera   Camera
}

// NewSceneController starts in SceneTornado with the camera at the overview.
func NewSceneController(cfg CameraConfig) *SceneController {
	if cfg.PanEase == nil {
		cfg.PanEase = ease.Linear
	}
	c := &SceneController{config: cfg}
	c.camera = newCamera(cfg.Overview)
	return c
}

// Scene returns the current scene.
func (c *SceneController) Scene() SceneID {
	return c.scene
}

// PanProgress returns the pan progress in [0, 1]. Only meaningful in SceneHouse.
func (c *SceneController) PanProgress() float64 {
	return c.progress
}

// Camera returns the camera derived on the last Update.
func (c *SceneController) Camera() Camera {
	return c.camera
}

// Advance moves to the next scene: tornado to house, then house to chase.
// In the chase scene it returns ErrFinalScene and changes nothing.
func (c *SceneController) Advance() (SceneID, error) {
	switch c.scene {
	case SceneTornado:
		c.scene = SceneHouse
		c.panTicks = 0
		c.progress = 0
	case SceneHouse:
		c.scene = SceneChase
	default:
		return c.scene, ErrFinalScene
	}
	return c.scene, nil
}

// Update recomputes the camera for the current scene.
func (c *SceneController) Update(tornadoPos, housePos Vec3) {
	switch c.scene {
	case SceneTornado:
		c.camera.Eye = c.config.Overview.Eye
		c.camera.Target = c.config.Overview.Target

	case SceneHouse:
		c.panTicks++
		c.progress = math.Min(1, float64(c.panTicks)*c.config.PanSpeed)
		if c.progress >= 1 {
			c.camera.Eye = c.config.HouseView.Eye
			c.camera.Target = c.config.HouseView.Target
			return
		}
		t := float64(c.config.PanEase(float32(c.progress), 0, 1, 1))
		c.camera.Eye = c.config.Overview.Eye.Lerp(c.config.HouseView.Eye, t)
		c.camera.Target = c.config.Overview.Target.Lerp(c.config.HouseView.Target, t)

	case SceneChase:
		c.camera.Eye = tornadoPos.Add(c.config.ChaseOffset)
		c.camera.Target = Vec3{
			X: (tornadoPos.X + housePos.X) * 0.5,
			Y: c.config.ChaseTargetHeight,
			Z: (tornadoPos.Z + housePos.Z) * 0.5,
		}
	}
}
