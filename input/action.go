package input

// Action is what a key press asks the game to do
type Action uint8

const (
	ActionNone Action = iota
	// ActionMove is button A: step the cannon
	ActionMove
	// ActionFire is button B: launch a bullet
	ActionFire
	ActionQuit
)

// actionRegistry maps canonical action names to actions
// Used by the keymap loader to resolve TOML action strings
var actionRegistry = map[string]Action{
	// Unbind sentinel
	"none": ActionNone,
	"move": ActionMove,
	"fire": ActionFire,
	"quit": ActionQuit,
}

// ActionByName resolves a canonical action name
func ActionByName(name string) (Action, bool) {
	a, ok := actionRegistry[name]
	return a, ok
}

func (a Action) String() string {
	for name, v := range actionRegistry {
		if v == a {
			return name
		}
	}
	return "unknown"
}
