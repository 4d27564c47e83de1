package movement

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// State is the movement state of a single player. It is created once per session and mutated by every tick.
type State struct {
	// Pos is the anchor of the player: the top of its column, where the camera sits.
	Pos, LastPos mgl32.Vec3
	// Vy is the vertical velocity. It is not used while flying.
	Vy float32

	// CanJump is true only while the player stands on a cell it landed on this tick.
	CanJump bool
	Flying  bool

	// LastJumpPress is the time of the last jump press that could start a double tap. The zero time means none.
	LastJumpPress time.Time
}

// NewState returns a grounded, airborne State anchored at pos.
func NewState(pos mgl32.Vec3) *State {
	return &State{Pos: pos, LastPos: pos}
}

// SetPos sets the anchor, remembering the previous one.
func (s *State) SetPos(newPos mgl32.Vec3) {
	s.LastPos = s.Pos
	s.Pos = newPos
}

// Action is a one-shot input action.
type Action uint8

const (
	ActionJump Action = iota
	ActionFlyToggle
)

// Press is a one-shot action and the time it happened at.
type Press struct {
	Action Action
	At     time.Time
}

// InputState represents a single tick's input, already resolved into intents and camera angles.
type InputState struct {
	Forward, Back, Left, Right bool
	Ascend, Descend            bool

	// Presses holds the one-shot actions since the last tick, oldest first.
	Presses []Press

	Yaw   float32
	Pitch float32
}

// Result describes what happened during a tick.
type Result struct {
	Position mgl32.Vec3
	Vy       float32
	CanJump  bool
	Flying   bool

	// Landed is true if a downward move was stopped on top of a cell.
	Landed bool
	// HeadBumped is true if an upward move was stopped beneath a cell.
	HeadBumped bool

	Jumped        bool
	ToggledFlight bool

	BlockedForward bool
	BlockedRight   bool
	// Moved is the horizontal displacement that was applied.
	Moved mgl32.Vec3
}
