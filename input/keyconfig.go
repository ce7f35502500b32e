package input

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// Special key names accepted in the [special] section
var specialKeyNames = map[string]tcell.Key{
	"left":      tcell.KeyLeft,
	"right":     tcell.KeyRight,
	"up":        tcell.KeyUp,
	"down":      tcell.KeyDown,
	"enter":     tcell.KeyEnter,
	"tab":       tcell.KeyTab,
	"escape":    tcell.KeyEscape,
	"esc":       tcell.KeyEscape,
	"backspace": tcell.KeyBackspace2,
	"ctrl-c":    tcell.KeyCtrlC,
	"ctrl-q":    tcell.KeyCtrlQ,
}

// KeyByName resolves a special key name, case-insensitive
func KeyByName(name string) (tcell.Key, bool) {
	k, ok := specialKeyNames[strings.ToLower(name)]
	return k, ok
}

type keymapFile struct {
	Keys    map[string]string `toml:"keys"`
	Special map[string]string `toml:"special"`
}

// LoadKeyConfig parses TOML keymap data into a sparse override KeyTable
//
//	[keys]
//	x = "fire"
//	space = "none"
//
//	[special]
//	up = "move"
//
// Returns error on unknown action names, invalid key names, or parse failure
func LoadKeyConfig(data []byte) (*KeyTable, error) {
	var raw keymapFile
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}

	kt := &KeyTable{
		Runes:   make(map[rune]Action, len(raw.Keys)),
		Special: make(map[tcell.Key]Action, len(raw.Special)),
	}

	for keyStr, actionName := range raw.Keys {
		r, err := resolveRune(keyStr)
		if err != nil {
			return nil, fmt.Errorf("[keys] key %q: %w", keyStr, err)
		}
		a, err := resolveAction(actionName)
		if err != nil {
			return nil, fmt.Errorf("[keys] key %q: %w", keyStr, err)
		}
		kt.Runes[r] = a
	}

	for keyStr, actionName := range raw.Special {
		k, ok := KeyByName(keyStr)
		if !ok {
			return nil, fmt.Errorf("[special] unknown key name: %q", keyStr)
		}
		a, err := resolveAction(actionName)
		if err != nil {
			return nil, fmt.Errorf("[special] key %q: %w", keyStr, err)
		}
		kt.Special[k] = a
	}

	return kt, nil
}

// resolveRune converts a TOML key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}

	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}

	return 0, fmt.Errorf("invalid rune key: %q (expected single character or alias)", s)
}

// resolveAction converts an action name string to an Action
func resolveAction(name string) (Action, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	a, ok := ActionByName(name)
	if !ok {
		return ActionNone, fmt.Errorf("unknown action: %q", name)
	}
	return a, nil
}
