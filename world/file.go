package world

import (
	"os"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/oomph-ac/voxelsim/oerror"
	"gopkg.in/yaml.v3"
)

const (
	GeneratorEmpty   = "empty"
	GeneratorFlat    = "flat"
	GeneratorTerrain = "terrain"
)

// Description is the YAML form of a world: a generator with its parameters, followed by explicit edits.
//
//	generator: flat
//	size: 20
//	cells:
//	  - [0, 1, -3]
//	remove:
//	  - [0, 0, 0]
type Description struct {
	Generator string  `yaml:"generator"`
	Size      int     `yaml:"size"`
	Seed      int64   `yaml:"seed"`
	Amplitude int     `yaml:"amplitude"`
	Scale     float64 `yaml:"scale"`

	Cells  [][3]int `yaml:"cells"`
	Remove [][3]int `yaml:"remove"`
}

// Build generates the described world. Generated cells come first in canonical order, followed by the explicit
// cells in the order they are listed.
func (d Description) Build() (*World, error) {
	w := New()
	switch d.Generator {
	case "", GeneratorEmpty:
	case GeneratorFlat:
		size := d.Size
		if size <= 0 {
			size = 20
		}
		FillFlat(w, size)
	case GeneratorTerrain:
		conf := DefaultTerrainConfig()
		if d.Size > 0 {
			conf.Size = d.Size
		}
		if d.Seed != 0 {
			conf.Seed = d.Seed
		}
		if d.Amplitude > 0 {
			conf.Amplitude = d.Amplitude
		}
		if d.Scale > 0 {
			conf.Scale = d.Scale
		}
		FillTerrain(w, conf)
	default:
		return nil, oerror.New("unknown world generator %q", d.Generator)
	}

	for _, c := range d.Cells {
		w.AddPos(cube.Pos{c[0], c[1], c[2]})
	}
	for _, c := range d.Remove {
		w.RemovePos(cube.Pos{c[0], c[1], c[2]})
	}
	return w, nil
}

// Parse decodes a YAML world description and builds it.
func Parse(data []byte) (*World, error) {
	var d Description
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, oerror.Wrap(err, "decode world description")
	}
	return d.Build()
}

// Load reads the YAML world description at path and builds it.
func Load(path string) (*World, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, oerror.Wrap(err, "read world file")
	}
	w, err := Parse(data)
	if err != nil {
		return nil, oerror.Wrap(err, "load world %s", path)
	}
	return w, nil
}
