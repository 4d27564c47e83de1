package host

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/voxelsim/game"
	"github.com/oomph-ac/voxelsim/world"
)

// Target is the result of looking along a ray for a cell to edit.
type Target struct {
	// Hit is the first occupied cell the ray passes through.
	Hit cube.Pos
	// Place is the empty cell the ray passed through just before Hit. It is only valid if CanPlace is true.
	Place    cube.Pos
	CanPlace bool
}

// FindTarget walks the ray from eye along dir, up to reach blocks, and returns the first occupied cell of w it
// passes through.
func FindTarget(w *world.World, eye, dir mgl32.Vec3, reach float32) (Target, bool) {
	if dir.Len() == 0 {
		return Target{}, false
	}
	var (
		prev    cube.Pos
		hasPrev bool
	)
	for pos := range game.CellsBetween(eye, eye.Add(dir.Normalize().Mul(reach))) {
		if w.HasPos(pos) {
			return Target{Hit: pos, Place: prev, CanPlace: hasPrev}, true
		}
		prev, hasPrev = pos, true
	}
	return Target{}, false
}

// Break removes the targeted cell from the world.
func Break(w *world.World, t Target) bool {
	return w.RemovePos(t.Hit)
}

// Place adds a cell in front of the targeted cell, unless it would overlap the player's column.
func Place(w *world.World, t Target, anchor mgl32.Vec3, radius, height float32) bool {
	if !t.CanPlace {
		return false
	}
	if game.ColumnBBox(anchor, radius, height).IntersectsWith(game.CellBBox(game.CellVec3(t.Place))) {
		return false
	}
	return w.AddPos(t.Place)
}
