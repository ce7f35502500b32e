package input

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestLoadKeyConfig(t *testing.T) {
	data := []byte(`
[keys]
x = "fire"
z = "Move"
space = "none"

[special]
Up = "move"
esc = "quit"
`)

	kt, err := LoadKeyConfig(data)
	if err != nil {
		t.Fatalf("LoadKeyConfig failed: %v", err)
	}

	if kt.Runes['x'] != ActionFire {
		t.Errorf("Expected x bound to fire, got %v", kt.Runes['x'])
	}
	if kt.Runes['z'] != ActionMove {
		t.Errorf("Expected z bound to move (case-insensitive action), got %v", kt.Runes['z'])
	}
	if a, ok := kt.Runes[' ']; !ok || a != ActionNone {
		t.Errorf("Expected space alias bound to none, got %v (present=%v)", a, ok)
	}
	if kt.Special[tcell.KeyUp] != ActionMove {
		t.Errorf("Expected Up bound to move, got %v", kt.Special[tcell.KeyUp])
	}
	if kt.Special[tcell.KeyEscape] != ActionQuit {
		t.Errorf("Expected Esc bound to quit, got %v", kt.Special[tcell.KeyEscape])
	}
}

func TestLoadKeyConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantSub string
	}{
		{"unknown action", "[keys]\nx = \"jump\"\n", "unknown action"},
		{"multi-char key", "[keys]\nxy = \"fire\"\n", "invalid rune key"},
		{"unknown special", "[special]\nhyper = \"fire\"\n", "unknown key name"},
		{"bad toml", "[keys\n", "keymap parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadKeyConfig([]byte(tt.data))
			if err == nil {
				t.Fatal("Expected error")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("Expected error containing %q, got %v", tt.wantSub, err)
			}
		})
	}
}

func TestMergeKeyTable(t *testing.T) {
	base := DefaultKeyTable()
	override, err := LoadKeyConfig([]byte("[keys]\nb = \"none\"\nf = \"fire\"\n[special]\nleft = \"none\"\n"))
	if err != nil {
		t.Fatalf("LoadKeyConfig failed: %v", err)
	}

	merged := MergeKeyTable(base, override)

	if _, ok := merged.Runes['b']; ok {
		t.Error("Expected b unbound by none override")
	}
	if merged.Runes['f'] != ActionFire {
		t.Errorf("Expected f bound to fire, got %v", merged.Runes['f'])
	}
	if _, ok := merged.Special[tcell.KeyLeft]; ok {
		t.Error("Expected Left unbound by none override")
	}
	if merged.Runes['a'] != ActionMove {
		t.Error("Expected untouched default a to stay bound to move")
	}

	// Base must not be mutated
	if base.Runes['b'] != ActionFire {
		t.Error("Expected base table unchanged after merge")
	}
}

func TestLookup(t *testing.T) {
	kt := DefaultKeyTable()

	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Action
	}{
		{"rune a", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), ActionMove},
		{"rune b", tcell.NewEventKey(tcell.KeyRune, 'b', tcell.ModNone), ActionFire},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), ActionFire},
		{"unbound rune", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), ActionNone},
		{"right arrow", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), ActionMove},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), ActionFire},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), ActionQuit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := kt.Lookup(tt.ev); got != tt.want {
				t.Errorf("Lookup = %v, want %v", got, tt.want)
			}
		})
	}
}
