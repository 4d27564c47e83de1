package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/voxelsim/game"
	"github.com/stretchr/testify/require"
)

func TestPose(t *testing.T) {
	var _ Camera = (*Pose)(nil)
	var _ Rotator = (*Pose)(nil)

	p := NewPose(mgl32.Vec3{0, 5, 0}, 0.4, 3)
	require.Equal(t, mgl32.Vec3{0, 5, 0}, p.Position())
	require.Equal(t, float32(0.4), p.Yaw())
	require.Equal(t, float32(game.MaxPitch), p.Pitch())

	p.SetPosition(mgl32.Vec3{1, 2, 3})
	require.Equal(t, mgl32.Vec3{1, 2, 3}, p.Position())

	p.SetRotation(-1, -3)
	require.Equal(t, float32(-game.MaxPitch), p.Pitch())
}

func TestAspect(t *testing.T) {
	var p Pose
	require.Equal(t, float32(1), p.Aspect())
	p.Resize(1280, 720)
	require.InDelta(t, 1280.0/720.0, p.Aspect(), 1e-6)
}
