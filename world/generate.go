package world

import (
	"github.com/aquilax/go-perlin"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/oomph-ac/voxelsim/worker"
)

// Flat returns a World holding a size×size floor of cells at y = 0. The floor spans [-size/2, size/2) on both
// horizontal axes and cells are added row by row, x outermost.
func Flat(size int) *World {
	w := New()
	FillFlat(w, size)
	return w
}

// FillFlat adds a flat floor to w. See Flat.
func FillFlat(w *World, size int) {
	for x := -size / 2; x < size-size/2; x++ {
		for z := -size / 2; z < size-size/2; z++ {
			w.AddPos(cube.Pos{x, 0, z})
		}
	}
}

// TerrainConfig configures the heightmap generator.
type TerrainConfig struct {
	// Size is the length of each side of the square generated area.
	Size int
	// Seed seeds the perlin noise source.
	Seed int64
	// Amplitude is the largest column height above y = 0.
	Amplitude int
	// Scale is the horizontal distance between noise samples per cell. Smaller values give smoother terrain.
	Scale float64
}

// DefaultTerrainConfig returns the TerrainConfig used when terrain is requested without parameters.
func DefaultTerrainConfig() TerrainConfig {
	return TerrainConfig{Size: 32, Seed: 1, Amplitude: 4, Scale: 0.08}
}

// Terrain returns a World whose columns follow a perlin heightmap. Each column is filled from y = 0 up to its
// height so no holes appear under the surface.
func Terrain(conf TerrainConfig) *World {
	w := New()
	FillTerrain(w, conf)
	return w
}

// FillTerrain adds a heightmap to w. See Terrain.
func FillTerrain(w *World, conf TerrainConfig) {
	if conf.Size <= 0 {
		return
	}
	noise := perlin.NewPerlin(2, 2, 3, conf.Seed)
	heights := make([][]int, conf.Size)
	offset := conf.Size / 2

	// Sampling is done per row on the worker pool, insertion stays sequential so the canonical order only
	// depends on the configuration.
	worker.Parallel(conf.Size, func(row int) {
		heights[row] = make([]int, conf.Size)
		for col := range conf.Size {
			n := noise.Noise2D(float64(row-offset)*conf.Scale, float64(col-offset)*conf.Scale)
			h := int((n + 1) / 2 * float64(conf.Amplitude+1))
			heights[row][col] = max(0, min(h, conf.Amplitude))
		}
	})

	for row, cols := range heights {
		for col, h := range cols {
			for y := 0; y <= h; y++ {
				w.AddPos(cube.Pos{row - offset, y, col - offset})
			}
		}
	}
}
