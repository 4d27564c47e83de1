package movement

import (
	"fmt"
	"strings"

	"github.com/oomph-ac/voxelsim/oerror"
	"github.com/sirupsen/logrus"
)

// DebugMode is a category of debug output emitted by the simulator.
type DebugMode uint8

const (
	DebugModeVertical DebugMode = iota
	DebugModeHorizontal
	DebugModeFlight
	DebugModeInput
	debugModeCount
)

var debugModeNames = [debugModeCount]string{
	DebugModeVertical:   "vertical",
	DebugModeHorizontal: "horizontal",
	DebugModeFlight:     "flight",
	DebugModeInput:      "input",
}

func (m DebugMode) String() string {
	if m >= debugModeCount {
		return fmt.Sprintf("DebugMode(%d)", uint8(m))
	}
	return debugModeNames[m]
}

// ParseDebugMode returns the debug mode with the given name.
func ParseDebugMode(name string) (DebugMode, error) {
	for m, n := range debugModeNames {
		if strings.EqualFold(n, name) {
			return DebugMode(m), nil
		}
	}
	return 0, oerror.New("unknown debug mode %q", name)
}

// Debugger writes debug messages for the enabled modes to a logger. A nil *Debugger is valid and discards
// everything.
type Debugger struct {
	log   logrus.FieldLogger
	modes [debugModeCount]bool
}

// NewDebugger returns a Debugger with no modes enabled.
func NewDebugger(log logrus.FieldLogger) *Debugger {
	return &Debugger{log: log}
}

// Toggle enables or disables a mode.
func (d *Debugger) Toggle(mode DebugMode, enabled bool) {
	if d == nil || mode >= debugModeCount {
		return
	}
	d.modes[mode] = enabled
}

// Enabled reports whether a mode is enabled.
func (d *Debugger) Enabled(mode DebugMode) bool {
	return d != nil && mode < debugModeCount && d.modes[mode] && d.log != nil
}

// Notify logs the message if the mode is enabled and cond is true.
func (d *Debugger) Notify(mode DebugMode, cond bool, format string, args ...any) {
	if !cond || !d.Enabled(mode) {
		return
	}
	d.log.WithField("mode", mode.String()).Debugf(format, args...)
}
