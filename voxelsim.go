package voxelsim

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/oomph-ac/voxelsim/assert"
	"github.com/oomph-ac/voxelsim/camera"
	"github.com/oomph-ac/voxelsim/game"
	"github.com/oomph-ac/voxelsim/input"
	"github.com/oomph-ac/voxelsim/movement"
	"github.com/sirupsen/logrus"
)

// Observer receives the result of every tick, for example to export metrics.
type Observer interface {
	Observe(res movement.Result)
}

// Session is a single player moving around a world. It owns the player's movement state and input state, and
// drives the camera it was created with. A Session is driven by one tick loop and is not safe for concurrent
// use; only the world may be edited from other goroutines.
type Session struct {
	id  uuid.UUID
	log *logrus.Entry

	cam   camera.Camera
	state *movement.State
	input input.State
	sim   *movement.Simulator

	turnSpeed   float32
	sensitivity float32

	observers  []Observer
	debugModes []movement.DebugMode
	ticks      uint64
}

// Option configures a Session in New.
type Option func(s *Session)

// WithLogger sets the logger the session writes to. By default the standard logrus logger is used.
func WithLogger(log *logrus.Logger) Option {
	return func(s *Session) {
		s.log = log.WithField("session", s.id.String())
	}
}

// WithMovementOptions sets the options of the movement simulation.
func WithMovementOptions(opts movement.Options) Option {
	return func(s *Session) {
		s.sim.Options = opts
	}
}

// WithDebugModes enables debug output for the given modes.
func WithDebugModes(modes ...movement.DebugMode) Option {
	return func(s *Session) {
		s.debugModes = append(s.debugModes, modes...)
	}
}

// WithTurnSpeed sets the yaw change per tick while a turn key is held.
func WithTurnSpeed(speed float32) Option {
	return func(s *Session) {
		s.turnSpeed = speed
	}
}

// WithSensitivity sets the rotation in radians per pixel of pointer movement.
func WithSensitivity(sensitivity float32) Option {
	return func(s *Session) {
		s.sensitivity = sensitivity
	}
}

// WithObserver registers an Observer called after every tick.
func WithObserver(o Observer) Option {
	return func(s *Session) {
		s.observers = append(s.observers, o)
	}
}

// New returns a Session for a player standing where cam is, moving against the cells of src.
func New(src movement.CellSource, cam camera.Camera, opts ...Option) *Session {
	assert.IsTrue(cam != nil, "session created without a camera")
	s := &Session{
		id:          uuid.New(),
		cam:         cam,
		state:       movement.NewState(cam.Position()),
		sim:         movement.NewSimulator(src, movement.DefaultOptions()),
		turnSpeed:   game.DefaultTurnSpeed,
		sensitivity: game.DefaultMouseSensitivity,
	}
	s.log = logrus.StandardLogger().WithField("session", s.id.String())
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	s.sim.Dbg = movement.NewDebugger(s.log)
	for _, m := range s.debugModes {
		s.sim.Dbg.Toggle(m, true)
	}
	s.log.WithField("pos", s.state.Pos).Info("session started")
	return s
}

// ID returns the unique id of the session.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Log returns the logger of the session.
func (s *Session) Log() *logrus.Entry {
	return s.log
}

// State returns the player's movement state. It must only be read from the tick loop.
func (s *Session) State() *movement.State {
	return s.state
}

// Ticks returns the amount of ticks run so far.
func (s *Session) Ticks() uint64 {
	return s.ticks
}

// Options returns the current movement options.
func (s *Session) Options() movement.Options {
	return s.sim.Options
}

// SetOptions replaces the movement options. The new options apply from the next tick.
func (s *Session) SetOptions(opts movement.Options) {
	s.sim.Options = opts
	s.log.Debug("movement options updated")
}

// SetLookOptions replaces the turn speed and pointer sensitivity.
func (s *Session) SetLookOptions(turnSpeed, sensitivity float32) {
	s.turnSpeed, s.sensitivity = turnSpeed, sensitivity
}

// SetDebugMode enables or disables a debug mode.
func (s *Session) SetDebugMode(mode movement.DebugMode, enabled bool) {
	s.sim.Dbg.Toggle(mode, enabled)
}

// ApplyInputEvent updates the input state with a single event. It is the only way input reaches the movement
// simulation.
func (s *Session) ApplyInputEvent(e input.Event) {
	s.sim.Dbg.Notify(movement.DebugModeInput, true, "input event %v pressed=%v", e.Intent, e.Pressed)
	s.input.Apply(e)
}

// ReleaseAll releases every held intent and drops pending presses.
func (s *Session) ReleaseAll() {
	s.input.Reset()
}

// ApplyLook rotates the camera by a pointer movement. It has no effect if the camera cannot be rotated.
func (s *Session) ApplyLook(l input.Look) {
	rot, ok := s.cam.(camera.Rotator)
	if !ok {
		return
	}
	rot.SetRotation(input.ApplyLook(s.cam.Yaw(), s.cam.Pitch(), l, s.sensitivity))
}

// Teleport moves the player to pos, dropping its vertical velocity and jump readiness.
func (s *Session) Teleport(pos mgl32.Vec3) {
	s.state.Pos, s.state.LastPos = pos, pos
	s.state.Vy = 0
	s.state.CanJump = false
	s.cam.SetPosition(pos)
	s.log.WithField("pos", pos).Info("player teleported")
}

// Tick runs a single frame of movement at the given time and moves the camera to the result. Presses without a
// timestamp are treated as happening at now.
func (s *Session) Tick(now time.Time) movement.Result {
	s.state.Pos = s.cam.Position()
	s.turn()

	in := movement.InputState{
		Forward: s.input.Held(input.IntentForward),
		Back:    s.input.Held(input.IntentBack),
		Left:    s.input.Held(input.IntentLeft),
		Right:   s.input.Held(input.IntentRight),
		Ascend:  s.input.Ascending(),
		Descend: s.input.Descending(),
		Yaw:     s.cam.Yaw(),
		Pitch:   s.cam.Pitch(),
	}
	for _, p := range s.input.DrainPresses() {
		at := p.At
		if at.IsZero() {
			at = now
		}
		switch p.Intent {
		case input.IntentJump:
			in.Presses = append(in.Presses, movement.Press{Action: movement.ActionJump, At: at})
		case input.IntentFlyToggle:
			in.Presses = append(in.Presses, movement.Press{Action: movement.ActionFlyToggle, At: at})
		}
	}

	res := s.sim.Simulate(s.state, in)
	s.cam.SetPosition(res.Position)
	s.ticks++

	if res.ToggledFlight {
		s.log.WithField("flying", res.Flying).Debug("flight toggled")
	}
	for _, o := range s.observers {
		o.Observe(res)
	}
	return res
}

// turn applies the keyboard turn intents to the camera.
func (s *Session) turn() {
	var delta float32
	if s.input.Held(input.IntentTurnLeft) {
		delta += s.turnSpeed
	}
	if s.input.Held(input.IntentTurnRight) {
		delta -= s.turnSpeed
	}
	if delta == 0 {
		return
	}
	if rot, ok := s.cam.(camera.Rotator); ok {
		rot.SetRotation(s.cam.Yaw()+delta, s.cam.Pitch())
	}
}
