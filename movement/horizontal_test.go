package movement

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/voxelsim/game"
	"github.com/stretchr/testify/require"
)

// floorWithWall returns a 7x7 floor at y = 0 with a single wall cell standing on it at the origin.
func floorWithWall() CellList {
	var cells CellList
	for x := -3; x <= 3; x++ {
		for z := -3; z <= 3; z++ {
			cells = append(cells, mgl32.Vec3{float32(x), 0, float32(z)})
		}
	}
	return append(cells, mgl32.Vec3{0, 1, 0})
}

func TestApproachNeverPenetratesCell(t *testing.T) {
	sim := newTestSimulator(mgl32.Vec3{0, 0, 0})
	state := NewState(mgl32.Vec3{0, game.PlayerHeight, 2})
	reach := game.BlockHalfWidth + sim.Options.Radius

	blocked := false
	// The cell stays within the horizontal band for the first 17 ticks of the fall.
	for range 17 {
		res := sim.Simulate(state, InputState{Forward: true})
		require.GreaterOrEqual(t, math32.Abs(state.Pos.Z()), reach)
		blocked = blocked || res.BlockedForward
	}
	require.True(t, blocked)
}

func TestApproachWallOnFloor(t *testing.T) {
	sim := NewSimulator(floorWithWall(), DefaultOptions())
	state := NewState(mgl32.Vec3{0, game.PlayerHeight, 3})
	reach := game.BlockHalfWidth + sim.Options.Radius

	for range 40 {
		sim.Simulate(state, InputState{Forward: true})
		require.GreaterOrEqual(t, math32.Abs(state.Pos.Z()), reach)
		require.Equal(t, float32(game.PlayerHeight), state.Pos.Y())
		require.True(t, state.CanJump)
	}
	require.Less(t, state.Pos.Z(), reach+sim.Options.Speed+1e-3)
	require.Zero(t, state.Pos.X())
}

func TestSlidingAlongWall(t *testing.T) {
	sim := NewSimulator(floorWithWall(), DefaultOptions())
	state := NewState(mgl32.Vec3{0, game.PlayerHeight, 0.85})

	res := sim.Simulate(state, InputState{Forward: true, Right: true})
	require.True(t, res.BlockedForward)
	require.False(t, res.BlockedRight)
	require.InDelta(t, 0.1, state.Pos.X(), 1e-6, "the right-axis step is still applied")
	require.InDelta(t, 0.85, state.Pos.Z(), 1e-6)
}

func TestCombinedPolicyDoesNotSlide(t *testing.T) {
	opts := DefaultOptions()
	opts.Policy = PolicyCombined
	sim := NewSimulator(floorWithWall(), opts)
	start := mgl32.Vec3{0, game.PlayerHeight, 0.85}
	state := NewState(start)

	res := sim.Simulate(state, InputState{Forward: true, Right: true})
	require.True(t, res.BlockedForward)
	require.True(t, res.BlockedRight)
	require.Equal(t, start, state.Pos)

	// Without the wall in the way the combined step is taken in full.
	state = NewState(mgl32.Vec3{0, game.PlayerHeight, 2})
	res = sim.Simulate(state, InputState{Forward: true, Right: true})
	require.False(t, res.BlockedForward)
	require.InDelta(t, 0.1, state.Pos.X(), 1e-6)
	require.InDelta(t, 1.9, state.Pos.Z(), 1e-6)
}

func TestFloorNeverBlocksHorizontalMovement(t *testing.T) {
	sim := NewSimulator(floorWithWall(), DefaultOptions())
	state := NewState(mgl32.Vec3{-2, game.PlayerHeight, -2})

	for range 30 {
		res := sim.Simulate(state, InputState{Back: true})
		require.False(t, res.BlockedForward)
	}
	require.InDelta(t, 1, state.Pos.Z(), 1e-4)
}

func TestPitchDoesNotAffectGroundMovement(t *testing.T) {
	sim := newTestSimulator()
	for _, pitch := range []float32{-1.5, -0.7, 0, 0.4, 1.5} {
		state := NewState(mgl32.Vec3{0, 10, 0})
		res := sim.Simulate(state, InputState{Forward: true, Left: true, Yaw: 0.6, Pitch: pitch})

		forward, right := game.YawBasis(0.6)
		want := forward.Sub(right).Mul(sim.Options.Speed)
		require.InDelta(t, want.X(), res.Moved.X(), 1e-6)
		require.Zero(t, res.Moved.Y())
		require.InDelta(t, want.Z(), res.Moved.Z(), 1e-6)
	}
}

func TestYawRotatesMovement(t *testing.T) {
	sim := newTestSimulator()
	state := NewState(mgl32.Vec3{0, 10, 0})

	res := sim.Simulate(state, InputState{Forward: true, Yaw: math32.Pi / 2})
	require.InDelta(t, -0.1, res.Moved.X(), 1e-6, "a quarter turn to the left faces -X")
	require.InDelta(t, 0, res.Moved.Z(), 1e-6)
}

func TestOpposingIntentsCancel(t *testing.T) {
	sim := newTestSimulator()
	state := NewState(mgl32.Vec3{0, 10, 0})
	res := sim.Simulate(state, InputState{Forward: true, Back: true, Left: true, Right: true})
	require.Equal(t, mgl32.Vec3{}, res.Moved)
}

func TestFlyingUsesProjectedLook(t *testing.T) {
	sim := newTestSimulator()
	state := NewState(mgl32.Vec3{0, 10, 0})
	state.Flying = true

	res := sim.Simulate(state, InputState{Forward: true, Yaw: 0, Pitch: 0.8})
	require.InDelta(t, 0, res.Moved.X(), 1e-6)
	require.Zero(t, res.Moved.Y(), "looking up does not lift a flying player")
	require.InDelta(t, -0.1, res.Moved.Z(), 1e-6)
	require.Equal(t, float32(10), state.Pos.Y())
}

func TestFlyingHorizontalSpeed(t *testing.T) {
	opts := DefaultOptions()
	opts.FlyHorizontalSpeed = 0.25
	sim := NewSimulator(nil, opts)
	state := NewState(mgl32.Vec3{})
	state.Flying = true

	res := sim.Simulate(state, InputState{Right: true})
	require.InDelta(t, 0.25, res.Moved.X(), 1e-6)
}

func TestPolicyNames(t *testing.T) {
	for _, p := range []Policy{PolicyPerAxis, PolicyCombined} {
		parsed, err := ParsePolicy(p.String())
		require.NoError(t, err)
		require.Equal(t, p, parsed)
	}
	_, err := ParsePolicy("sideways")
	require.Error(t, err)
}
