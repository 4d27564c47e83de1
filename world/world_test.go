package world

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddRemove(t *testing.T) {
	w := New()
	require.Zero(t, w.Len())
	require.Empty(t, w.Cells())

	require.True(t, w.Add(mgl32.Vec3{0.2, 0, -0.4}))
	require.False(t, w.Add(mgl32.Vec3{0, 0, 0}), "snapped to the same cell")
	require.True(t, w.Has(mgl32.Vec3{0, 0, 0}))
	require.True(t, w.HasPos(cube.Pos{0, 0, 0}))
	require.Equal(t, 1, w.Len())

	require.True(t, w.Remove(mgl32.Vec3{0, 0, 0}))
	require.False(t, w.Remove(mgl32.Vec3{0, 0, 0}))
	require.Zero(t, w.Len())
}

func TestCanonicalOrder(t *testing.T) {
	w := New()
	w.AddPos(cube.Pos{3, 0, 0})
	w.AddPos(cube.Pos{1, 0, 0})
	w.AddPos(cube.Pos{2, 0, 0})
	require.Equal(t, []mgl32.Vec3{{3, 0, 0}, {1, 0, 0}, {2, 0, 0}}, w.Cells())

	// Re-adding a removed cell moves it to the end.
	w.RemovePos(cube.Pos{3, 0, 0})
	w.AddPos(cube.Pos{3, 0, 0})
	require.Equal(t, []mgl32.Vec3{{1, 0, 0}, {2, 0, 0}, {3, 0, 0}}, w.Cells())

	// Cells are re-iterable and independent of later edits.
	cells := w.Cells()
	w.AddPos(cube.Pos{9, 9, 9})
	require.Len(t, cells, 3)
	require.Len(t, w.Cells(), 4)
}

func TestNearbyCellsMatchesFilter(t *testing.T) {
	w := Terrain(TerrainConfig{Size: 12, Seed: 7, Amplitude: 3, Scale: 0.2})
	w.AddPos(cube.Pos{0, 6, 0})
	w.AddPos(cube.Pos{-1, 5, 0})

	boxes := []cube.BBox{
		cube.Box(-1.3, 3.5, -1.3, 1.3, 7, 1.3),
		cube.Box(-0.8, -0.01, -0.8, 0.8, 1.7, 0.8),
		cube.Box(-100, -100, -100, 100, 100, 100),
		cube.Box(4.2, 0, 4.2, 4.8, 10, 4.8),
	}
	for _, box := range boxes {
		var want []mgl32.Vec3
		for _, c := range w.Cells() {
			if c.X() >= box.Min().X() && c.X() <= box.Max().X() &&
				c.Y() >= box.Min().Y() && c.Y() <= box.Max().Y() &&
				c.Z() >= box.Min().Z() && c.Z() <= box.Max().Z() {
				want = append(want, c)
			}
		}
		assert.Equal(t, want, w.NearbyCells(box), "box %v", box)
	}
}

func TestFlat(t *testing.T) {
	w := Flat(20)
	require.Equal(t, 400, w.Len())
	require.True(t, w.HasPos(cube.Pos{-10, 0, -10}))
	require.True(t, w.HasPos(cube.Pos{9, 0, 9}))
	require.False(t, w.HasPos(cube.Pos{10, 0, 0}))
	require.Equal(t, mgl32.Vec3{-10, 0, -10}, w.Cells()[0])
}

func TestTerrainDeterministic(t *testing.T) {
	conf := TerrainConfig{Size: 16, Seed: 42, Amplitude: 5, Scale: 0.1}
	a, b := Terrain(conf), Terrain(conf)
	require.Equal(t, a.Cells(), b.Cells())

	for _, c := range a.Cells() {
		require.GreaterOrEqual(t, c.Y(), float32(0))
		require.LessOrEqual(t, c.Y(), float32(5))
	}
	// Every column has a floor cell.
	for x := -8; x < 8; x++ {
		for z := -8; z < 8; z++ {
			require.True(t, a.HasPos(cube.Pos{x, 0, z}), "column %d,%d", x, z)
		}
	}
}

func TestParse(t *testing.T) {
	w, err := Parse([]byte(`
generator: flat
size: 4
cells:
  - [0, 1, -1]
remove:
  - [-2, 0, -2]
`))
	require.NoError(t, err)
	require.Equal(t, 16, w.Len())
	require.True(t, w.HasPos(cube.Pos{0, 1, -1}))
	require.False(t, w.HasPos(cube.Pos{-2, 0, -2}))
	cells := w.Cells()
	require.Equal(t, mgl32.Vec3{0, 1, -1}, cells[len(cells)-1])

	_, err = Parse([]byte("generator: caves"))
	require.ErrorContains(t, err, `unknown world generator "caves"`)

	_, err = Parse([]byte("generator: [flat"))
	require.Error(t, err)

	w, err = Parse(nil)
	require.NoError(t, err)
	require.Zero(t, w.Len())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "world.yaml")
	require.NoError(t, os.WriteFile(path, []byte("generator: terrain\nsize: 8\nseed: 3\n"), 0644))

	w, err := Load(path)
	require.NoError(t, err)
	require.GreaterOrEqual(t, w.Len(), 64)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
