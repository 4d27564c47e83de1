package input

import (
	"maps"
	"slices"
	"time"

	"github.com/oomph-ac/voxelsim/oerror"
	"github.com/samber/lo"
)

// KeyMap binds device key names to intents. Key names are whatever the host reports, for example "W" or
// "ShiftLeft" for ebiten.
type KeyMap map[string]Intent

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		"W":          IntentForward,
		"S":          IntentBack,
		"A":          IntentLeft,
		"D":          IntentRight,
		"Space":      IntentJump,
		"E":          IntentUp,
		"ShiftLeft":  IntentDown,
		"ShiftRight": IntentDown,
		"F":          IntentFlyToggle,
		"ArrowLeft":  IntentTurnLeft,
		"ArrowRight": IntentTurnRight,
		"ArrowUp":    IntentForward,
		"ArrowDown":  IntentBack,
	}
}

// Resolve returns the intent bound to key. Unbound keys report false.
func (m KeyMap) Resolve(key string) (Intent, bool) {
	i, ok := m[key]
	return i, ok
}

// Event translates a key transition into an Event. Unbound keys report false and should be ignored.
func (m KeyMap) Event(key string, pressed bool, at time.Time) (Event, bool) {
	i, ok := m.Resolve(key)
	if !ok {
		return Event{}, false
	}
	return Event{Intent: i, Pressed: pressed, At: at}, true
}

// Names returns the bindings keyed by key name with intent names as values, for writing to settings files.
func (m KeyMap) Names() map[string]string {
	return lo.MapValues(m, func(i Intent, _ string) string {
		return i.String()
	})
}

// Keys returns the keys bound to any intent, sorted.
func (m KeyMap) Keys() []string {
	return slices.Sorted(maps.Keys(m))
}

// KeyMapFromNames builds a KeyMap from key names mapped to intent names.
func KeyMapFromNames(names map[string]string) (KeyMap, error) {
	m := make(KeyMap, len(names))
	for key, name := range names {
		i, ok := ParseIntent(name)
		if !ok {
			return nil, oerror.New("key %q is bound to unknown intent %q", key, name)
		}
		m[key] = i
	}
	return m, nil
}
