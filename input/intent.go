package input

// Intent is a logical movement intent, independent of the device that produced it.
type Intent uint8

const (
	IntentForward Intent = iota
	IntentBack
	IntentLeft
	IntentRight
	// IntentUp ascends while flying.
	IntentUp
	// IntentDown descends while flying.
	IntentDown
	// IntentJump is the jump key. Its presses are one-shot actions (jump, double-tap flight toggle) and holding it
	// ascends while flying.
	IntentJump
	// IntentFlyToggle flips flight on each press.
	IntentFlyToggle
	IntentTurnLeft
	IntentTurnRight

	intentCount
)

var intentNames = [intentCount]string{
	IntentForward:   "forward",
	IntentBack:      "back",
	IntentLeft:      "left",
	IntentRight:     "right",
	IntentUp:        "up",
	IntentDown:      "down",
	IntentJump:      "jump",
	IntentFlyToggle: "fly_toggle",
	IntentTurnLeft:  "turn_left",
	IntentTurnRight: "turn_right",
}

// String returns the name of the intent as used in settings files.
func (i Intent) String() string {
	if !i.Valid() {
		return "unknown"
	}
	return intentNames[i]
}

// Valid returns true if i is one of the defined intents.
func (i Intent) Valid() bool {
	return i < intentCount
}

// Edge returns true if presses of the intent are queued as one-shot actions.
func (i Intent) Edge() bool {
	return i == IntentJump || i == IntentFlyToggle
}

// ParseIntent returns the intent with the given name.
func ParseIntent(name string) (Intent, bool) {
	for i, n := range intentNames {
		if n == name {
			return Intent(i), true
		}
	}
	return 0, false
}
