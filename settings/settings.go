package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/oomph-ac/voxelsim/game"
	"github.com/oomph-ac/voxelsim/input"
	"github.com/oomph-ac/voxelsim/movement"
	"github.com/oomph-ac/voxelsim/world"
	"github.com/pelletier/go-toml/v2"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

// Settings contains everything that can be configured in the settings file.
type Settings struct {
	Movement struct {
		Radius             float32
		Height             float32
		Gravity            float32
		JumpVelocity       float32
		Speed              float32
		FlySpeed           float32
		FlyHorizontalSpeed float32
		BandEpsilon        float32
		HeadClearance      float32
		// DoubleTapWindowMS is the double tap window for toggling flight, in milliseconds.
		DoubleTapWindowMS int64
		// Policy and FlyPolicy are either "per_axis" or "combined".
		Policy    string
		FlyPolicy string
	}
	Input struct {
		Sensitivity float32
		TurnSpeed   float32
		// Keys maps key names to intent names. If present in the file it replaces the default bindings.
		Keys map[string]string
	}
	World struct {
		// File is the path of a YAML world file. If set, the generator settings are ignored.
		File      string
		Generator string
		Size      int
		Seed      int64
		Amplitude int
		Scale     float64
	}
	Debug struct {
		LogLevel string
		Modes    []string
	}
	Window struct {
		Width  int
		Height int
		Title  string
	}
	Metrics struct {
		// Address is the address the prometheus endpoint listens on. Empty disables it.
		Address string
	}
}

// DefaultSettings returns the default settings.
func DefaultSettings() Settings {
	var s Settings
	opts := movement.DefaultOptions()
	s.Movement.Radius = opts.Radius
	s.Movement.Height = opts.Height
	s.Movement.Gravity = opts.Gravity
	s.Movement.JumpVelocity = opts.JumpVelocity
	s.Movement.Speed = opts.Speed
	s.Movement.FlySpeed = opts.FlySpeed
	s.Movement.FlyHorizontalSpeed = opts.FlyHorizontalSpeed
	s.Movement.BandEpsilon = opts.BandEpsilon
	s.Movement.HeadClearance = opts.HeadClearance
	s.Movement.DoubleTapWindowMS = opts.DoubleTapWindow.Milliseconds()
	s.Movement.Policy = opts.Policy.String()
	s.Movement.FlyPolicy = opts.FlyPolicy.String()

	s.Input.Sensitivity = game.DefaultMouseSensitivity
	s.Input.TurnSpeed = game.DefaultTurnSpeed
	s.Input.Keys = input.DefaultKeyMap().Names()

	s.World.Generator = world.GeneratorFlat
	s.World.Size = 20
	s.World.Seed = 1

	s.Debug.LogLevel = logrus.InfoLevel.String()
	s.Debug.Modes = []string{}

	s.Window.Width = 960
	s.Window.Height = 720
	s.Window.Title = "voxelsim"
	return s
}

// Read decodes the settings file at path over the default settings. It does not write anything.
func Read(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("error reading settings: %w", err)
	}
	return Decode(data)
}

// Decode decodes TOML settings over the default settings.
func Decode(data []byte) (Settings, error) {
	s := DefaultSettings()
	s.Input.Keys = nil
	if err := toml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("error decoding settings: %w", err)
	}
	if s.Input.Keys == nil {
		s.Input.Keys = input.DefaultKeyMap().Names()
	}
	return s, nil
}

// Load loads the settings file at path. If the file does not exist it is created with the default settings.
// Otherwise it is rewritten after decoding, so that settings missing from it are added with their defaults.
func Load(path string) (Settings, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		s := DefaultSettings()
		return s, Save(path, s)
	}
	s, err := Read(path)
	if err != nil {
		return Settings{}, err
	}
	return s, Save(path, s)
}

// Encode encodes the settings as TOML.
func Encode(s Settings) ([]byte, error) {
	data, err := toml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed encoding settings: %w", err)
	}
	return data, nil
}

// Save writes the settings to path.
func Save(path string, s Settings) error {
	data, err := Encode(s)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed writing settings file: %w", err)
	}
	return nil
}

// MovementOptions returns the movement options described by the settings.
func (s Settings) MovementOptions() (movement.Options, error) {
	policy, err := movement.ParsePolicy(s.Movement.Policy)
	if err != nil {
		return movement.Options{}, err
	}
	flyPolicy, err := movement.ParsePolicy(s.Movement.FlyPolicy)
	if err != nil {
		return movement.Options{}, err
	}
	return movement.Options{
		Radius:             s.Movement.Radius,
		Height:             s.Movement.Height,
		Gravity:            s.Movement.Gravity,
		JumpVelocity:       s.Movement.JumpVelocity,
		Speed:              s.Movement.Speed,
		FlySpeed:           s.Movement.FlySpeed,
		FlyHorizontalSpeed: s.Movement.FlyHorizontalSpeed,
		BandEpsilon:        s.Movement.BandEpsilon,
		HeadClearance:      s.Movement.HeadClearance,
		DoubleTapWindow:    time.Duration(s.Movement.DoubleTapWindowMS) * time.Millisecond,
		Policy:             policy,
		FlyPolicy:          flyPolicy,
	}, nil
}

// KeyMap returns the key bindings described by the settings.
func (s Settings) KeyMap() (input.KeyMap, error) {
	return input.KeyMapFromNames(s.Input.Keys)
}

// DebugModes returns the debug modes enabled by the settings.
func (s Settings) DebugModes() ([]movement.DebugMode, error) {
	modes := make([]movement.DebugMode, 0, len(s.Debug.Modes))
	for _, name := range lo.Uniq(s.Debug.Modes) {
		m, err := movement.ParseDebugMode(name)
		if err != nil {
			return nil, err
		}
		modes = append(modes, m)
	}
	return modes, nil
}

// LogLevel returns the log level set in the settings.
func (s Settings) LogLevel() (logrus.Level, error) {
	return logrus.ParseLevel(s.Debug.LogLevel)
}

// BuildWorld builds the world described by the settings.
func (s Settings) BuildWorld() (*world.World, error) {
	if s.World.File != "" {
		return world.Load(s.World.File)
	}
	return world.Description{
		Generator: s.World.Generator,
		Size:      s.World.Size,
		Seed:      s.World.Seed,
		Amplitude: s.World.Amplitude,
		Scale:     s.World.Scale,
	}.Build()
}
