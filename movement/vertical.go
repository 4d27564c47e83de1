package movement

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// Jump launches the player upwards if it is standing on a cell and not flying. It returns true if the jump
// happened. canJump is cleared immediately, so that a second call before the next landing has no effect.
func (s *Simulator) Jump(state *State) bool {
	if !state.CanJump || state.Flying {
		s.Dbg.Notify(DebugModeVertical, true, "jump ignored (canJump=%v, flying=%v)", state.CanJump, state.Flying)
		return false
	}
	state.Vy = s.Options.JumpVelocity
	state.CanJump = false
	s.Dbg.Notify(DebugModeVertical, true, "jump (vy=%.4f)", state.Vy)
	return true
}

// ToggleFlight flips the player between grounded and flying mode. The vertical velocity is reset and canJump
// is cleared either way.
func (s *Simulator) ToggleFlight(state *State) {
	state.Flying = !state.Flying
	state.Vy = 0
	state.CanJump = false
	state.LastJumpPress = time.Time{}
	s.Dbg.Notify(DebugModeFlight, true, "flight toggled (flying=%v)", state.Flying)
}

// handlePress applies a one-shot action to the state. Two jump presses closer together than the double tap
// window toggle flight instead of jumping a second time.
func (s *Simulator) handlePress(state *State, press Press, res *Result) {
	switch press.Action {
	case ActionFlyToggle:
		s.ToggleFlight(state)
		res.ToggledFlight = true
	case ActionJump:
		if s.doubleTapped(state, press.At) {
			s.ToggleFlight(state)
			res.ToggledFlight = true
			return
		}
		state.LastJumpPress = press.At
		if !state.Flying && s.Jump(state) {
			res.Jumped = true
		}
	}
}

func (s *Simulator) doubleTapped(state *State, at time.Time) bool {
	if state.LastJumpPress.IsZero() || s.Options.DoubleTapWindow <= 0 {
		return false
	}
	delta := at.Sub(state.LastJumpPress)
	s.Dbg.Notify(DebugModeFlight, true, "jump press delta=%v window=%v", delta, s.Options.DoubleTapWindow)
	return delta >= 0 && delta < s.Options.DoubleTapWindow
}

// simulateVertical advances the vertical position of the player by a single tick.
func (s *Simulator) simulateVertical(state *State, in InputState, res *Result) {
	if state.Flying {
		s.simulateFlyingVertical(state, in, res)
		return
	}

	state.Vy += s.Options.Gravity
	nextY := state.Pos.Y() + state.Vy
	candidate := mgl32.Vec3{state.Pos.X(), nextY, state.Pos.Z()}

	collided := false
	if cell, ok := FirstIntersecting(s.World, candidate, s.Options.Radius, VerticalBand(s.Options.Height)); ok {
		collided = true
		if state.Vy <= 0 {
			nextY = cell.Y() + s.Options.Height
			state.CanJump = true
			res.Landed = true
			s.Dbg.Notify(DebugModeVertical, true, "landed on %v (y=%.4f)", cell, nextY)
		} else {
			nextY = cell.Y() - s.Options.HeadClearance
			res.HeadBumped = true
			s.Dbg.Notify(DebugModeVertical, true, "head bumped on %v (y=%.4f)", cell, nextY)
		}
		state.Vy = 0
	}
	if !collided {
		state.CanJump = false
	}
	state.Pos[1] = nextY
}

// simulateFlyingVertical moves the player directly by the fly speed. Gravity and vy are not used, and descending
// takes precedence over ascending.
func (s *Simulator) simulateFlyingVertical(state *State, in InputState, res *Result) {
	var dy float32
	switch {
	case in.Descend:
		dy = -s.Options.FlySpeed
	case in.Ascend:
		dy = s.Options.FlySpeed
	default:
		return
	}

	nextY := state.Pos.Y() + dy
	candidate := mgl32.Vec3{state.Pos.X(), nextY, state.Pos.Z()}
	if cell, ok := FirstIntersecting(s.World, candidate, s.Options.Radius, VerticalBand(s.Options.Height)); ok {
		if dy < 0 {
			nextY = cell.Y() + s.Options.Height
			res.Landed = true
		} else {
			nextY = cell.Y() - s.Options.HeadClearance
			res.HeadBumped = true
		}
		s.Dbg.Notify(DebugModeFlight, true, "flying vertical move clamped by %v (y=%.4f)", cell, nextY)
	}
	state.Pos[1] = nextY
}
