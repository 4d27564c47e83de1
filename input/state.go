package input

import (
	"time"

	"github.com/oomph-ac/voxelsim/game"
	"github.com/samber/lo"
)

// Event is a single key transition, already translated to an intent.
type Event struct {
	Intent  Intent
	Pressed bool
	At      time.Time
}

// Press is a queued one-shot action.
type Press struct {
	Intent Intent
	At     time.Time
}

// Look is a relative pointer movement in pixels.
type Look struct {
	DX, DY float32
}

// State holds the current intent flags. Level intents are updated on every event; presses of edge intents are
// additionally queued until the next tick drains them. Held keys that repeat do not queue further presses.
//
// State is owned by the tick loop and is not safe for concurrent use.
type State struct {
	held    [intentCount]bool
	presses []Press
}

// Apply updates the state with a single event. Events for unknown intents are ignored.
func (s *State) Apply(e Event) {
	if !e.Intent.Valid() {
		return
	}
	wasHeld := s.held[e.Intent]
	s.held[e.Intent] = e.Pressed
	if e.Pressed && !wasHeld && e.Intent.Edge() {
		s.presses = append(s.presses, Press{Intent: e.Intent, At: e.At})
	}
}

// Held returns true if the intent is currently active.
func (s *State) Held(i Intent) bool {
	return i.Valid() && s.held[i]
}

// Ascending returns true if the player wants to rise while flying.
func (s *State) Ascending() bool {
	return s.held[IntentUp] || s.held[IntentJump]
}

// Descending returns true if the player wants to sink while flying.
func (s *State) Descending() bool {
	return s.held[IntentDown]
}

// DrainPresses returns the presses queued since the previous call, oldest first.
func (s *State) DrainPresses() []Press {
	presses := s.presses
	s.presses = nil
	return presses
}

// Reset releases every intent and drops queued presses, for example when the window loses focus.
func (s *State) Reset() {
	s.held = [intentCount]bool{}
	s.presses = nil
}

// ApplyLook turns a pointer movement into new yaw and pitch angles in radians. Moving right turns right and
// moving up looks up. The pitch is clamped so that the camera never flips over.
func ApplyLook(yaw, pitch float32, l Look, sensitivity float32) (float32, float32) {
	yaw -= l.DX * sensitivity
	pitch -= l.DY * sensitivity
	return yaw, lo.Clamp(pitch, -game.MaxPitch, game.MaxPitch)
}
