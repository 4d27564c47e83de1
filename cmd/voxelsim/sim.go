package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/oomph-ac/voxelsim"
	"github.com/oomph-ac/voxelsim/camera"
	"github.com/oomph-ac/voxelsim/input"
	"github.com/oomph-ac/voxelsim/movement"
	"github.com/oomph-ac/voxelsim/settings"
	"github.com/oomph-ac/voxelsim/world"
	"github.com/sirupsen/logrus"
)

// tickInterval is the simulated time between two ticks.
const tickInterval = time.Second / 60

type simCmd struct {
	Ticks int       `help:"Amount of ticks to simulate." default:"120"`
	World string    `help:"YAML world file to use instead of the world in the settings." type:"path"`
	Start []float32 `help:"Position the player starts at." default:"0,5,0" sep:","`
	Yaw   float32   `help:"Camera yaw in radians. Zero faces -Z."`
	Pitch float32   `help:"Camera pitch in radians."`
	Hold  []string  `help:"Intents held for the whole run, for example forward,right." sep:","`
	Press []string  `help:"Intents pressed at a tick, written intent@tick, for example jump@10." sep:","`
	Every int       `help:"Print every n-th tick." default:"1"`
}

// scriptedPress is an intent pressed and released at a single tick.
type scriptedPress struct {
	intent input.Intent
	tick   int
}

func parsePresses(args []string) ([]scriptedPress, error) {
	presses := make([]scriptedPress, 0, len(args))
	for _, arg := range args {
		name, at, ok := strings.Cut(arg, "@")
		if !ok {
			return nil, fmt.Errorf("press %q is not written as intent@tick", arg)
		}
		i, ok := input.ParseIntent(name)
		if !ok {
			return nil, fmt.Errorf("press %q names unknown intent %q", arg, name)
		}
		tick, err := strconv.Atoi(at)
		if err != nil {
			return nil, fmt.Errorf("press %q has an invalid tick: %w", arg, err)
		}
		presses = append(presses, scriptedPress{intent: i, tick: tick})
	}
	return presses, nil
}

func (c *simCmd) run(s settings.Settings, log *logrus.Logger, out io.Writer) error {
	var (
		w   *world.World
		err error
	)
	if c.World != "" {
		w, err = world.Load(c.World)
	} else {
		w, err = s.BuildWorld()
	}
	if err != nil {
		return err
	}
	opts, err := sessionOptions(s, log)
	if err != nil {
		return err
	}
	start, err := vec3(c.Start)
	if err != nil {
		return err
	}
	presses, err := parsePresses(c.Press)
	if err != nil {
		return err
	}
	every := max(c.Every, 1)

	cam := camera.NewPose(start, c.Yaw, c.Pitch)
	session := voxelsim.New(w, cam, opts...)
	epoch := time.Unix(0, 0)
	for _, name := range c.Hold {
		i, ok := input.ParseIntent(name)
		if !ok {
			return fmt.Errorf("unknown intent %q", name)
		}
		session.ApplyInputEvent(input.Event{Intent: i, Pressed: true, At: epoch})
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "tick\tx\ty\tz\tvy\tcanJump\tflying\tevents")
	for tick := range c.Ticks {
		now := epoch.Add(time.Duration(tick) * tickInterval)
		for _, p := range presses {
			if p.tick == tick {
				session.ApplyInputEvent(input.Event{Intent: p.intent, Pressed: true, At: now})
				session.ApplyInputEvent(input.Event{Intent: p.intent, Pressed: false, At: now})
			}
		}
		res := session.Tick(now)
		if tick%every != 0 && !interesting(res) {
			continue
		}
		pos := res.Position
		fmt.Fprintf(tw, "%d\t%.4f\t%.4f\t%.4f\t%.4f\t%v\t%v\t%s\n",
			tick, pos.X(), pos.Y(), pos.Z(), res.Vy, res.CanJump, res.Flying, events(res))
	}
	return tw.Flush()
}

func interesting(res movement.Result) bool {
	return res.Jumped || res.ToggledFlight || res.HeadBumped
}

// events lists what happened during a tick, or "-" if nothing did.
func events(res movement.Result) string {
	var ev []string
	flags := []struct {
		set  bool
		name string
	}{
		{res.Landed, "landed"},
		{res.HeadBumped, "head_bump"},
		{res.Jumped, "jump"},
		{res.ToggledFlight, "fly_toggle"},
		{res.BlockedForward, "blocked_forward"},
		{res.BlockedRight, "blocked_right"},
	}
	for _, f := range flags {
		if f.set {
			ev = append(ev, f.name)
		}
	}
	if len(ev) == 0 {
		return "-"
	}
	return strings.Join(ev, ",")
}
