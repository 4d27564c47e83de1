package movement

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/voxelsim/game"
)

// queryMargin pads the box passed to a CellSource so that cells sitting exactly on a band or radius boundary
// are still handed to the predicate, which alone decides whether they collide.
const queryMargin float32 = 0.01

// Band is the range of vertical offsets, anchor.y - cell.y, within which a cell collides with the player.
// The lower bound is always exclusive.
type Band struct {
	Lower, Upper   float32
	UpperInclusive bool
}

// HorizontalBand returns the band used when testing horizontal moves for a player of the given height. It
// ignores cells the player stands on or touches with its head.
func HorizontalBand(height, epsilon float32) Band {
	return Band{Lower: epsilon, Upper: height - epsilon}
}

// VerticalBand returns the band used when testing vertical moves for a player of the given height. A cell
// whose top is level with the player's feet collides.
func VerticalBand(height float32) Band {
	return Band{Lower: 0, Upper: height, UpperInclusive: true}
}

// Contains reports whether the vertical offset dy lies in the band.
func (b Band) Contains(dy float32) bool {
	if dy <= b.Lower {
		return false
	}
	if b.UpperInclusive {
		return dy <= b.Upper
	}
	return dy < b.Upper
}

// CellSource provides the cells that might collide with a player.
type CellSource interface {
	// NearbyCells returns every cell whose position lies inside the box, in canonical order. It may return more
	// cells than that.
	NearbyCells(box cube.BBox) []mgl32.Vec3
}

// CellList is a CellSource backed by a plain slice. Every cell is reported as nearby.
type CellList []mgl32.Vec3

// NearbyCells ...
func (l CellList) NearbyCells(cube.BBox) []mgl32.Vec3 {
	return l
}

// IntersectsAny reports whether a player anchored at candidate, with the given radius, collides with any cell
// of src within band.
func IntersectsAny(src CellSource, candidate mgl32.Vec3, radius float32, band Band) bool {
	_, ok := FirstIntersecting(src, candidate, radius, band)
	return ok
}

// FirstIntersecting returns the first cell, in the canonical order of src, that collides with a player anchored
// at candidate.
func FirstIntersecting(src CellSource, candidate mgl32.Vec3, radius float32, band Band) (mgl32.Vec3, bool) {
	if src == nil {
		return mgl32.Vec3{}, false
	}
	for _, cell := range src.NearbyCells(queryBox(candidate, radius, band)) {
		if intersects(candidate, cell, radius, band) {
			return cell, true
		}
	}
	return mgl32.Vec3{}, false
}

func intersects(candidate, cell mgl32.Vec3, radius float32, band Band) bool {
	reach := game.BlockHalfWidth + radius
	if math32.Abs(candidate.X()-cell.X()) >= reach || math32.Abs(candidate.Z()-cell.Z()) >= reach {
		return false
	}
	return band.Contains(candidate.Y() - cell.Y())
}

// queryBox returns the box of cell positions that could satisfy intersects for the candidate.
func queryBox(candidate mgl32.Vec3, radius float32, band Band) cube.BBox {
	reach := game.BlockHalfWidth + radius
	return cube.Box(
		candidate.X()-reach, candidate.Y()-band.Upper, candidate.Z()-reach,
		candidate.X()+reach, candidate.Y()-band.Lower, candidate.Z()+reach,
	).Grow(queryMargin)
}
