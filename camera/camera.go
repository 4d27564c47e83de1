package camera

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/voxelsim/game"
	"github.com/samber/lo"
)

// Camera is the narrow view of the render engine's camera that movement needs. The position is the player's
// anchor: the top of its column, where the eyes are.
type Camera interface {
	Position() mgl32.Vec3
	SetPosition(pos mgl32.Vec3)
	// Yaw returns the rotation about the vertical axis in radians. Zero faces -Z.
	Yaw() float32
	// Pitch returns the rotation about the horizontal axis in radians, within [-π/2, π/2].
	Pitch() float32
}

// Rotator is implemented by cameras that let the session turn them, for mouse look and keyboard turning.
type Rotator interface {
	SetRotation(yaw, pitch float32)
}

// Pose is an in-memory Camera. The zero value sits at the origin facing -Z.
type Pose struct {
	pos        mgl32.Vec3
	yaw, pitch float32

	width, height int
}

// NewPose returns a Pose at pos with the given rotation.
func NewPose(pos mgl32.Vec3, yaw, pitch float32) *Pose {
	p := &Pose{pos: pos}
	p.SetRotation(yaw, pitch)
	return p
}

func (p *Pose) Position() mgl32.Vec3 {
	return p.pos
}

func (p *Pose) SetPosition(pos mgl32.Vec3) {
	p.pos = pos
}

func (p *Pose) Yaw() float32 {
	return p.yaw
}

func (p *Pose) Pitch() float32 {
	return p.pitch
}

// SetRotation sets the yaw and pitch. The pitch is clamped to [-π/2, π/2].
func (p *Pose) SetRotation(yaw, pitch float32) {
	p.yaw = yaw
	p.pitch = lo.Clamp(pitch, -game.MaxPitch, game.MaxPitch)
}

// Resize records a new viewport size.
func (p *Pose) Resize(width, height int) {
	p.width, p.height = width, height
}

// Aspect returns the viewport aspect ratio, or 1 before the first Resize.
func (p *Pose) Aspect() float32 {
	if p.width <= 0 || p.height <= 0 {
		return 1
	}
	return float32(p.width) / float32(p.height)
}
