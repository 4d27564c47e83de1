package movement

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/voxelsim/world"
	"github.com/stretchr/testify/require"
)

func TestBandContains(t *testing.T) {
	hz := HorizontalBand(1.8, 0.1)
	require.False(t, hz.Contains(0), "standing on a cell must not collide horizontally")
	require.False(t, hz.Contains(0.1))
	require.True(t, hz.Contains(0.5))
	require.True(t, hz.Contains(1))
	require.False(t, hz.Contains(1.75))
	require.False(t, hz.Contains(-0.5))

	v := VerticalBand(1.8)
	require.False(t, v.Contains(0))
	require.True(t, v.Contains(0.01))
	require.True(t, v.Contains(1.8), "upper bound of the vertical band is inclusive")
	require.False(t, v.Contains(1.81))
}

func TestIntersectsAnyOutsideFootprint(t *testing.T) {
	cells := CellList{{0, 0, 0}}
	bands := []Band{HorizontalBand(1.8, 0.1), VerticalBand(1.8)}
	offsets := []mgl32.Vec2{{0.81, 0}, {-0.81, 0}, {0, 0.81}, {0, -0.81}, {1, 1}, {-2, 0.3}}

	for _, band := range bands {
		for _, off := range offsets {
			for dy := float32(-3); dy <= 3; dy += 0.25 {
				candidate := mgl32.Vec3{off.X(), dy, off.Y()}
				require.False(t, IntersectsAny(cells, candidate, 0.3, band), "candidate %v band %+v", candidate, band)
			}
		}
	}
}

func TestIntersectsAnyInsideFootprint(t *testing.T) {
	cells := CellList{{0, 0, 0}}
	require.True(t, IntersectsAny(cells, mgl32.Vec3{0.7, 1, -0.7}, 0.3, HorizontalBand(1.8, 0.1)))
	require.True(t, IntersectsAny(cells, mgl32.Vec3{0, 1.8, 0}, 0.3, VerticalBand(1.8)))
	require.False(t, IntersectsAny(cells, mgl32.Vec3{0, 1.8, 0}, 0.3, HorizontalBand(1.8, 0.1)))
}

func TestIntersectsAnyEmpty(t *testing.T) {
	require.False(t, IntersectsAny(nil, mgl32.Vec3{}, 0.3, VerticalBand(1.8)))
	require.False(t, IntersectsAny(CellList{}, mgl32.Vec3{}, 0.3, VerticalBand(1.8)))
	require.False(t, IntersectsAny(world.New(), mgl32.Vec3{}, 0.3, VerticalBand(1.8)))
}

func TestFirstIntersectingOrder(t *testing.T) {
	cells := CellList{{5, 0, 5}, {0, 1, 0}, {0, 0, 0}}
	cell, ok := FirstIntersecting(cells, mgl32.Vec3{0, 1.5, 0}, 0.3, VerticalBand(1.8))
	require.True(t, ok)
	require.Equal(t, mgl32.Vec3{0, 1, 0}, cell)

	w := world.New()
	w.Add(mgl32.Vec3{0, 0, 0})
	w.Add(mgl32.Vec3{0, 1, 0})
	cell, ok = FirstIntersecting(w, mgl32.Vec3{0, 1.5, 0}, 0.3, VerticalBand(1.8))
	require.True(t, ok)
	require.Equal(t, mgl32.Vec3{0, 0, 0}, cell, "the world's insertion order decides the first cell")
}

// TestWorldMatchesFullScan checks that the query box handed to a World never hides a colliding cell.
func TestWorldMatchesFullScan(t *testing.T) {
	w := world.Flat(10)
	w.Add(mgl32.Vec3{0, 1, 0})
	w.Add(mgl32.Vec3{2, 1, -1})
	w.Add(mgl32.Vec3{-3, 2, 3})
	all := CellList(w.Cells())

	bands := []Band{HorizontalBand(1.8, 0.1), VerticalBand(1.8)}
	for _, band := range bands {
		for x := float32(-4); x <= 4; x += 0.35 {
			for z := float32(-4); z <= 4; z += 0.35 {
				for y := float32(0); y <= 4; y += 0.3 {
					candidate := mgl32.Vec3{x, y, z}
					want, wantOK := FirstIntersecting(all, candidate, 0.3, band)
					got, gotOK := FirstIntersecting(w, candidate, 0.3, band)
					require.Equal(t, wantOK, gotOK, "candidate %v band %+v", candidate, band)
					require.Equal(t, want, got, "candidate %v band %+v", candidate, band)
				}
			}
		}
	}
}
