package movement

import (
	"github.com/oomph-ac/voxelsim/assert"
)

// Simulator advances a player's movement state against a set of cells. It holds no per-player state, so a
// single Simulator may be shared by sessions that run on the same goroutine.
type Simulator struct {
	World   CellSource
	Options Options
	Dbg     *Debugger
}

// NewSimulator returns a Simulator over the cells of src with the given options.
func NewSimulator(src CellSource, opts Options) *Simulator {
	return &Simulator{World: src, Options: opts}
}

// Simulate runs a single tick of movement for the state. One-shot presses are handled first, then the vertical
// move, then the horizontal move.
func (s *Simulator) Simulate(state *State, in InputState) Result {
	var res Result
	if state == nil {
		return res
	}
	state.LastPos = state.Pos

	s.Dbg.Notify(DebugModeInput, len(in.Presses) > 0, "handling %d presses", len(in.Presses))
	for _, press := range in.Presses {
		s.handlePress(state, press, &res)
	}
	s.simulateVertical(state, in, &res)
	s.simulateHorizontal(state, in, &res)
	assert.Finite(state.Pos, "player position")

	res.Position = state.Pos
	res.Vy = state.Vy
	res.CanJump = state.CanJump
	res.Flying = state.Flying
	return res
}
