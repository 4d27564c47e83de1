package game

import (
	"iter"

	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// CellsBetween walks the cell lattice from start to end and yields every cell the segment passes through, in
// order. Cells are centred on integer x and z and start at integer y, so the walk runs in a lattice shifted by
// half a block horizontally.
// https://github.com/pmmp/Math/blob/stable/src/VoxelRayTrace.php#L67
func CellsBetween(start, end mgl32.Vec3) iter.Seq[cube.Pos] {
	return func(yield func(cube.Pos) bool) {
		shift := mgl32.Vec3{BlockHalfWidth, 0, BlockHalfWidth}
		start, end = start.Add(shift), end.Add(shift)

		delta := end.Sub(start)
		radius := delta.Len()
		if radius <= 0 {
			return
		}
		dir := delta.Mul(1 / radius)

		step := [3]int{sign(dir.X()), sign(dir.Y()), sign(dir.Z())}
		var tMax, tDelta [3]float32
		for i := range 3 {
			tMax[i] = distanceToBoundary(start[i], dir[i])
			if dir[i] != 0 {
				tDelta[i] = float32(step[i]) / dir[i]
			}
		}

		current := cube.Pos{int(math32.Floor(start.X())), int(math32.Floor(start.Y())), int(math32.Floor(start.Z()))}
		for {
			if !yield(current) {
				return
			}

			axis := 2
			if tMax[0] < tMax[1] && tMax[0] < tMax[2] {
				axis = 0
			} else if tMax[1] < tMax[2] {
				axis = 1
			}
			if tMax[axis] > radius {
				return
			}
			current[axis] += step[axis]
			tMax[axis] += tDelta[axis]
		}
	}
}

func sign(v float32) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// https://github.com/pmmp/Math/blob/stable/src/VoxelRayTrace.php#L134
func distanceToBoundary(s, ds float32) float32 {
	if ds == 0 {
		return math32.MaxFloat32
	}

	if ds < 0 {
		s = -s
		ds = -ds

		if math32.Floor(s) == s {
			return 0
		}
	}

	return (1 - (s - math32.Floor(s))) / ds
}
