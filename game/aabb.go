package game

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// CellBBox returns the box occupied by a cell positioned at pos: a unit in x and z centred on the position and
// one block high starting at the position's y.
func CellBBox(pos mgl32.Vec3) cube.BBox {
	return cube.Box(
		pos.X()-BlockHalfWidth, pos.Y(), pos.Z()-BlockHalfWidth,
		pos.X()+BlockHalfWidth, pos.Y()+BlockHeight, pos.Z()+BlockHalfWidth,
	)
}

// ColumnBBox returns the player's column for the given anchor. The anchor is the camera position, so the column
// extends height units downwards from it.
func ColumnBBox(anchor mgl32.Vec3, radius, height float32) cube.BBox {
	return cube.Box(
		anchor.X()-radius, anchor.Y()-height, anchor.Z()-radius,
		anchor.X()+radius, anchor.Y(), anchor.Z()+radius,
	)
}

// CellAt snaps a position to the integer cell it names.
func CellAt(pos mgl32.Vec3) cube.Pos {
	return cube.Pos{int(roundHalfUp(pos.X())), int(roundHalfUp(pos.Y())), int(roundHalfUp(pos.Z()))}
}

// CellVec3 returns the position of a cell as a vector.
func CellVec3(pos cube.Pos) mgl32.Vec3 {
	return mgl32.Vec3{float32(pos[0]), float32(pos[1]), float32(pos[2])}
}
