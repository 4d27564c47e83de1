package assert

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/voxelsim/oerror"
)

// IsTrue panics with an *oerror.Error if ok is false.
func IsTrue(ok bool, message string, args ...any) {
	if !ok {
		panic(oerror.New(message, args...))
	}
}

// Finite panics if any component of v is NaN or infinite.
func Finite(v mgl32.Vec3, what string) {
	for i := range 3 {
		IsTrue(!math32.IsNaN(v[i]) && !math32.IsInf(v[i], 0), "%s is not finite: %v", what, v)
	}
}
