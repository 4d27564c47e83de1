package movement

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/voxelsim/game"
)

// impulse sums the held direction intents into a forward and a right scalar, each in [-1, 1].
func impulse(in InputState) (forward, right float32) {
	if in.Forward {
		forward++
	}
	if in.Back {
		forward--
	}
	if in.Right {
		right++
	}
	if in.Left {
		right--
	}
	return
}

// basis returns the horizontal forward and right vectors the player moves along. Grounded players move along
// the yaw only. Flying players move along the look direction projected onto the horizontal plane.
func (s *Simulator) basis(state *State, in InputState) (forward, right mgl32.Vec3) {
	if state.Flying {
		return game.LookBasis(in.Yaw, in.Pitch)
	}
	return game.YawBasis(in.Yaw)
}

// simulateHorizontal moves the player along the horizontal plane by a single tick, resolving collisions with
// the configured policy.
func (s *Simulator) simulateHorizontal(state *State, in InputState, res *Result) {
	mf, ms := impulse(in)
	if mf == 0 && ms == 0 {
		return
	}

	speed := s.Options.horizontalSpeed(state.Flying)
	forward, right := s.basis(state, in)
	forwardStep := forward.Mul(mf * speed)
	rightStep := right.Mul(ms * speed)
	start := state.Pos

	switch s.Options.policy(state.Flying) {
	case PolicyCombined:
		s.moveCombined(state, forwardStep.Add(rightStep), mf != 0, ms != 0, res)
	default:
		if mf != 0 {
			res.BlockedForward = !s.tryStep(state, forwardStep)
		}
		if ms != 0 {
			res.BlockedRight = !s.tryStep(state, rightStep)
		}
	}
	res.Moved = state.Pos.Sub(start)
	s.Dbg.Notify(DebugModeHorizontal, true, "mF=%.0f mS=%.0f moved=%v blockedF=%v blockedR=%v", mf, ms, res.Moved, res.BlockedForward, res.BlockedRight)
}

// tryStep moves the player by delta if the resulting position does not collide. It returns true if the step
// was taken.
func (s *Simulator) tryStep(state *State, delta mgl32.Vec3) bool {
	candidate := state.Pos.Add(delta)
	if s.blockedAt(candidate) {
		return false
	}
	state.Pos = candidate
	return true
}

func (s *Simulator) moveCombined(state *State, delta mgl32.Vec3, hasForward, hasRight bool, res *Result) {
	if s.tryStep(state, delta) {
		return
	}
	res.BlockedForward = hasForward
	res.BlockedRight = hasRight
}

func (s *Simulator) blockedAt(candidate mgl32.Vec3) bool {
	return IntersectsAny(s.World, candidate, s.Options.Radius, HorizontalBand(s.Options.Height, s.Options.BandEpsilon))
}
