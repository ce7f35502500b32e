package input

import (
	"maps"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps key presses to actions
// Printable keys are matched by rune, the rest by tcell key code
type KeyTable struct {
	Runes   map[rune]Action
	Special map[tcell.Key]Action
}

// DefaultKeyTable returns the built-in bindings:
// a, Left, Right move; b, space, Enter fire; q, Escape, Ctrl-C quit
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Runes: map[rune]Action{
			'a': ActionMove,
			'b': ActionFire,
			' ': ActionFire,
			'q': ActionQuit,
		},
		Special: map[tcell.Key]Action{
			tcell.KeyLeft:   ActionMove,
			tcell.KeyRight:  ActionMove,
			tcell.KeyEnter:  ActionFire,
			tcell.KeyEscape: ActionQuit,
			tcell.KeyCtrlC:  ActionQuit,
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		Runes:   maps.Clone(kt.Runes),
		Special: maps.Clone(kt.Special),
	}
}

// Lookup resolves a tcell key event
func (kt *KeyTable) Lookup(ev *tcell.EventKey) Action {
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.Special[ev.Key()]
}

// LookupRune resolves a printable character
func (kt *KeyTable) LookupRune(r rune) Action {
	return kt.Runes[r]
}

// LookupSpecial resolves a non-printable key
func (kt *KeyTable) LookupSpecial(k tcell.Key) Action {
	return kt.Special[k]
}

// MergeKeyTable returns a new KeyTable with base values overridden by override
// Override entries bound to ActionNone delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	if result.Runes == nil {
		result.Runes = make(map[rune]Action)
	}
	if result.Special == nil {
		result.Special = make(map[tcell.Key]Action)
	}

	mergeMap(result.Runes, override.Runes)
	mergeMap(result.Special, override.Special)

	return result
}

func mergeMap[K comparable](base, override map[K]Action) {
	for k, v := range override {
		if v == ActionNone {
			delete(base, k)
		} else {
			base[k] = v
		}
	}
}
