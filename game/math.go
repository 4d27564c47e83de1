package game

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// MaxPitch is the largest magnitude the camera pitch may take, in radians.
const MaxPitch = float32(math32.Pi / 2)

// Float32ApproxEq determines whether two floating point numbers are close enough to each other
// by a threshold of 1e-5.
func Float32ApproxEq(a, b float32) bool {
	return math32.Abs(a-b) <= 1e-5
}

// ClampFloat clamps num to the range [min, max].
func ClampFloat(num, min, max float32) float32 {
	return math32.Max(min, math32.Min(num, max))
}

// Vec3HzDistSqr returns the squared horizontal length of vec3.
func Vec3HzDistSqr(vec3 mgl32.Vec3) float32 {
	return vec3[0]*vec3[0] + vec3[2]*vec3[2]
}

// YawBasis returns the horizontal forward and right unit vectors for a yaw in radians. A yaw of zero
// faces -Z with +X to the right, and the yaw increases counter-clockwise when seen from above.
func YawBasis(yaw float32) (forward, right mgl32.Vec3) {
	sin, cos := math32.Sin(yaw), math32.Cos(yaw)
	return mgl32.Vec3{-sin, 0, -cos}, mgl32.Vec3{cos, 0, -sin}
}

// LookDirection returns the unit vector the camera looks along for the given yaw and pitch.
func LookDirection(yaw, pitch float32) mgl32.Vec3 {
	ySin, yCos := math32.Sin(yaw), math32.Cos(yaw)
	pSin, pCos := math32.Sin(pitch), math32.Cos(pitch)
	return mgl32.Vec3{-ySin * pCos, pSin, -yCos * pCos}
}

// LookBasis projects the full look direction onto the horizontal plane and returns the resulting forward and
// right unit vectors. If the camera looks straight up or down the projection is degenerate and the yaw basis is
// used instead.
func LookBasis(yaw, pitch float32) (forward, right mgl32.Vec3) {
	look := LookDirection(yaw, pitch)
	hz := mgl32.Vec3{look.X(), 0, look.Z()}
	if hz.Len() < 1e-4 {
		return YawBasis(yaw)
	}
	forward = hz.Normalize()
	return forward, forward.Cross(mgl32.Vec3{0, 1, 0})
}

func roundHalfUp(v float32) float32 {
	return math32.Floor(v + 0.5)
}
