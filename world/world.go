package world

import (
	"cmp"
	"slices"

	"github.com/chewxy/math32"
	"github.com/elliotchance/orderedmap/v2"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/voxelsim/game"
	"github.com/sasha-s/go-deadlock"
)

// World is the spatial index of occupied cells. Cells are kept in insertion order, which is the canonical
// iteration order used by every query: removing a cell and adding it again moves it to the end.
//
// A World may be edited from any goroutine. Readers always see a consistent snapshot.
type World struct {
	seq   uint64
	cells *orderedmap.OrderedMap[cube.Pos, uint64]

	deadlock.RWMutex
}

// New returns an empty World.
func New() *World {
	return &World{cells: orderedmap.NewOrderedMap[cube.Pos, uint64]()}
}

// Add marks the cell nearest to pos as occupied. It returns false if the cell was already occupied.
func (w *World) Add(pos mgl32.Vec3) bool {
	return w.AddPos(game.CellAt(pos))
}

// AddPos marks the cell at pos as occupied. It returns false if the cell was already occupied.
func (w *World) AddPos(pos cube.Pos) bool {
	w.Lock()
	defer w.Unlock()

	if _, ok := w.cells.Get(pos); ok {
		return false
	}
	w.seq++
	w.cells.Set(pos, w.seq)
	return true
}

// Remove clears the cell nearest to pos. It returns false if the cell was not occupied.
func (w *World) Remove(pos mgl32.Vec3) bool {
	return w.RemovePos(game.CellAt(pos))
}

// RemovePos clears the cell at pos. It returns false if the cell was not occupied.
func (w *World) RemovePos(pos cube.Pos) bool {
	w.Lock()
	defer w.Unlock()
	return w.cells.Delete(pos)
}

// Has returns true if the cell nearest to pos is occupied.
func (w *World) Has(pos mgl32.Vec3) bool {
	return w.HasPos(game.CellAt(pos))
}

// HasPos returns true if the cell at pos is occupied.
func (w *World) HasPos(pos cube.Pos) bool {
	w.RLock()
	defer w.RUnlock()
	_, ok := w.cells.Get(pos)
	return ok
}

// Len returns the amount of occupied cells.
func (w *World) Len() int {
	w.RLock()
	defer w.RUnlock()
	return w.cells.Len()
}

// Cells returns the position of every occupied cell in canonical order. The returned slice is a copy and may be
// iterated any number of times.
func (w *World) Cells() []mgl32.Vec3 {
	w.RLock()
	defer w.RUnlock()

	cells := make([]mgl32.Vec3, 0, w.cells.Len())
	for el := w.cells.Front(); el != nil; el = el.Next() {
		cells = append(cells, game.CellVec3(el.Key))
	}
	return cells
}

// NearbyCells returns the occupied cells whose position lies within box (bounds inclusive), in canonical order.
// The result is always equal to filtering Cells() by the same box.
func (w *World) NearbyCells(box cube.BBox) []mgl32.Vec3 {
	min, max := box.Min(), box.Max()
	lo := cube.Pos{int(math32.Ceil(min.X())), int(math32.Ceil(min.Y())), int(math32.Ceil(min.Z()))}
	hi := cube.Pos{int(math32.Floor(max.X())), int(math32.Floor(max.Y())), int(math32.Floor(max.Z()))}
	if hi[0] < lo[0] || hi[1] < lo[1] || hi[2] < lo[2] {
		return nil
	}

	w.RLock()
	defer w.RUnlock()

	volume := (hi[0] - lo[0] + 1) * (hi[1] - lo[1] + 1) * (hi[2] - lo[2] + 1)
	if volume > w.cells.Len() {
		// Walking the whole index is cheaper than probing every position in the box.
		var cells []mgl32.Vec3
		for el := w.cells.Front(); el != nil; el = el.Next() {
			if inRange(el.Key, lo, hi) {
				cells = append(cells, game.CellVec3(el.Key))
			}
		}
		return cells
	}

	hits := getHits()
	defer putHits(hits)
	for x := lo[0]; x <= hi[0]; x++ {
		for y := lo[1]; y <= hi[1]; y++ {
			for z := lo[2]; z <= hi[2]; z++ {
				pos := cube.Pos{x, y, z}
				if seq, ok := w.cells.Get(pos); ok {
					*hits = append(*hits, hit{pos: pos, seq: seq})
				}
			}
		}
	}
	slices.SortFunc(*hits, func(a, b hit) int {
		return cmp.Compare(a.seq, b.seq)
	})

	if len(*hits) == 0 {
		return nil
	}
	cells := make([]mgl32.Vec3, len(*hits))
	for i, h := range *hits {
		cells[i] = game.CellVec3(h.pos)
	}
	return cells
}

func inRange(pos, lo, hi cube.Pos) bool {
	for i := range 3 {
		if pos[i] < lo[i] || pos[i] > hi[i] {
			return false
		}
	}
	return true
}
