package movement

import (
	"time"

	"github.com/oomph-ac/voxelsim/game"
	"github.com/oomph-ac/voxelsim/oerror"
)

// Policy selects how a horizontal step that runs into a cell is resolved.
type Policy uint8

const (
	// PolicyPerAxis applies the forward step and the right step independently, so that moving diagonally into a
	// wall still slides along it.
	PolicyPerAxis Policy = iota
	// PolicyCombined tests the full displacement once and drops it entirely on collision.
	PolicyCombined
)

// String returns the name of the policy as used in settings files.
func (p Policy) String() string {
	switch p {
	case PolicyPerAxis:
		return "per_axis"
	case PolicyCombined:
		return "combined"
	}
	return "unknown"
}

// ParsePolicy returns the policy with the given name.
func ParsePolicy(name string) (Policy, error) {
	switch name {
	case "per_axis", "":
		return PolicyPerAxis, nil
	case "combined":
		return PolicyCombined, nil
	}
	return 0, oerror.New("unknown movement policy %q", name)
}

// Options holds the tuning of the simulation. Velocities and speeds are in blocks per tick.
type Options struct {
	Radius float32
	Height float32

	Gravity      float32
	JumpVelocity float32
	Speed        float32

	// FlySpeed is the vertical speed while flying.
	FlySpeed float32
	// FlyHorizontalSpeed is the horizontal speed while flying. Zero means Speed.
	FlyHorizontalSpeed float32

	// BandEpsilon shrinks the vertical band of horizontal collision checks at both ends.
	BandEpsilon float32
	// HeadClearance is how far below a cell the anchor is placed after bumping into it from beneath.
	HeadClearance float32

	// DoubleTapWindow is the largest gap between two jump presses, exclusive, that toggles flight.
	DoubleTapWindow time.Duration

	Policy    Policy
	FlyPolicy Policy
}

// DefaultOptions returns the default simulation options.
func DefaultOptions() Options {
	return Options{
		Radius:          game.PlayerRadius,
		Height:          game.PlayerHeight,
		Gravity:         game.DefaultGravity,
		JumpVelocity:    game.DefaultJumpVelocity,
		Speed:           game.DefaultSpeed,
		FlySpeed:        game.DefaultFlySpeed,
		BandEpsilon:     game.HorizontalBandEpsilon,
		HeadClearance:   game.HeadClearance,
		DoubleTapWindow: game.DoubleTapWindow,
		Policy:          PolicyPerAxis,
		FlyPolicy:       PolicyPerAxis,
	}
}

func (o Options) horizontalSpeed(flying bool) float32 {
	if flying && o.FlyHorizontalSpeed > 0 {
		return o.FlyHorizontalSpeed
	}
	return o.Speed
}

func (o Options) policy(flying bool) Policy {
	if flying {
		return o.FlyPolicy
	}
	return o.Policy
}
