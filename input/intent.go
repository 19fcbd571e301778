package input

// Intent is the semantic action a key resolves to
type Intent uint8

const (
	IntentNone Intent = iota

	// System
	IntentQuit       // q, Esc, Ctrl+C
	IntentToggleMute // m, Ctrl+S

	// Round control
	IntentStart // s, Enter, Space

	// Paddle
	IntentLeft  // Left, a, h
	IntentRight // Right, d, l
)

// intentNames maps action names used in key overrides to intents
var intentNames = map[string]Intent{
	"none":        IntentNone,
	"quit":        IntentQuit,
	"toggle_mute": IntentToggleMute,
	"start":       IntentStart,
	"left":        IntentLeft,
	"right":       IntentRight,
}

func (i Intent) String() string {
	for name, v := range intentNames {
		if v == i {
			return name
		}
	}
	return "unknown"
}

// Direction returns the paddle direction for movement intents, zero otherwise
func (i Intent) Direction() int {
	switch i {
	case IntentLeft:
		return -1
	case IntentRight:
		return 1
	default:
		return 0
	}
}
