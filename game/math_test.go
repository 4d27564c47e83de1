package game

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vecApproxEq(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	for i := range 3 {
		require.Truef(t, Float32ApproxEq(want[i], got[i]), "component %d: want %v got %v", i, want, got)
	}
}

func TestYawBasis(t *testing.T) {
	forward, right := YawBasis(0)
	vecApproxEq(t, mgl32.Vec3{0, 0, -1}, forward)
	vecApproxEq(t, mgl32.Vec3{1, 0, 0}, right)

	forward, right = YawBasis(math32.Pi / 2)
	vecApproxEq(t, mgl32.Vec3{-1, 0, 0}, forward)
	vecApproxEq(t, mgl32.Vec3{0, 0, -1}, right)

	for _, yaw := range []float32{-2.5, -1, 0.3, 1.7, 3.1} {
		forward, right := YawBasis(yaw)
		assert.InDelta(t, 0, forward.Dot(right), 1e-5)
		assert.InDelta(t, 1, forward.Len(), 1e-5)
		assert.InDelta(t, 1, right.Len(), 1e-5)
		assert.Zero(t, forward.Y())
		assert.Zero(t, right.Y())
	}
}

func TestLookBasisIgnoresPitch(t *testing.T) {
	for _, yaw := range []float32{0, 0.8, -2} {
		wantF, wantR := YawBasis(yaw)
		for _, pitch := range []float32{-1.4, -0.5, 0, 0.5, 1.4} {
			f, r := LookBasis(yaw, pitch)
			vecApproxEq(t, wantF, f)
			vecApproxEq(t, wantR, r)
		}
	}
}

func TestLookBasisDegenerate(t *testing.T) {
	wantF, wantR := YawBasis(1)
	f, r := LookBasis(1, MaxPitch)
	vecApproxEq(t, wantF, f)
	vecApproxEq(t, wantR, r)
}

func TestLookDirection(t *testing.T) {
	vecApproxEq(t, mgl32.Vec3{0, 0, -1}, LookDirection(0, 0))
	vecApproxEq(t, mgl32.Vec3{0, 1, 0}, LookDirection(0, MaxPitch))
}

func TestCellAt(t *testing.T) {
	require.Equal(t, CellVec3(CellAt(mgl32.Vec3{0.49, -0.2, 2.51})), mgl32.Vec3{0, 0, 3})
	require.Equal(t, CellVec3(CellAt(mgl32.Vec3{-1.6, 4, -0.5})), mgl32.Vec3{-2, 4, 0})
}

func TestCellBBox(t *testing.T) {
	bb := CellBBox(mgl32.Vec3{2, 1, -3})
	require.Equal(t, mgl32.Vec3{1.5, 1, -3.5}, bb.Min())
	require.Equal(t, mgl32.Vec3{2.5, 2, -2.5}, bb.Max())
}

func TestClampFloat(t *testing.T) {
	require.Equal(t, float32(1), ClampFloat(3, -1, 1))
	require.Equal(t, float32(-1), ClampFloat(-3, -1, 1))
	require.Equal(t, float32(0.5), ClampFloat(0.5, -1, 1))
}
