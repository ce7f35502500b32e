package window

import (
	"errors"
	"image/color"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/led-invaders/constants"
	"github.com/lixenwraith/led-invaders/driver"
	"github.com/lixenwraith/led-invaders/input"
	"github.com/lixenwraith/led-invaders/invaders"
	"github.com/lixenwraith/led-invaders/led"
	"github.com/lixenwraith/led-invaders/status"
)

// newTestGame wires a fresh engine the way main does for the window frontend
func newTestGame() (*Game, *Frontend, *input.Buttons) {
	frontend := &Frontend{}
	buttons := &input.Buttons{}
	session := driver.NewSession(invaders.New(), buttons, frontend, status.NewRegistry())
	g := NewGame(session, frontend, input.DefaultKeyTable(), buttons, 20*time.Millisecond, 1)
	return g, frontend, buttons
}

func TestFrontendShowAndText(t *testing.T) {
	var f Frontend

	f.Show(led.Happy)
	img, msg := f.snapshot()
	if img != led.Happy || msg != "" {
		t.Errorf("Expected happy image without text, got %s and %q", img, msg)
	}

	f.ShowText("--- 2 ---")
	img, msg = f.snapshot()
	if img != led.Blank || msg != "--- 2 ---" {
		t.Errorf("Expected blank matrix with text, got %s and %q", img, msg)
	}
}

func TestLayoutScales(t *testing.T) {
	g := NewGame(nil, &Frontend{}, input.DefaultKeyTable(), &input.Buttons{}, 20*time.Millisecond, 1)
	w1, h1 := g.Layout(0, 0)

	g.scale = 2
	w2, h2 := g.Layout(0, 0)

	if w2 != 2*w1 || h2 != 2*h1 {
		t.Errorf("Expected layout to double, got %dx%d then %dx%d", w1, h1, w2, h2)
	}
	if w1 != constants.WindowMargin*2+constants.WindowLEDPitch*led.Size {
		t.Errorf("Unexpected base width %d", w1)
	}
}

func TestLEDColor(t *testing.T) {
	full, ok := ledColor(9).(color.RGBA)
	if !ok {
		t.Fatalf("Expected color.RGBA, got %T", ledColor(9))
	}
	if full.R != 255 || full.A != 255 {
		t.Errorf("Expected full red opaque LED, got %+v", full)
	}

	off := ledColor(0).(color.RGBA)
	if off.R >= full.R {
		t.Errorf("Expected off LED dimmer than lit, got %+v vs %+v", off, full)
	}
}

func TestSpecialKeysResolveThroughKeyTable(t *testing.T) {
	kt := input.DefaultKeyTable()
	want := map[input.Action]bool{}
	for _, tk := range specialKeys {
		want[kt.LookupSpecial(tk)] = true
	}
	for _, a := range []input.Action{input.ActionMove, input.ActionFire, input.ActionQuit} {
		if !want[a] {
			t.Errorf("Expected some window key to map to %v", a)
		}
	}
}

func TestUpdateTicksUntilLostThenCelebrates(t *testing.T) {
	g, frontend, _ := newTestGame()

	ticks := 0
	for g.celebration == nil {
		if err := g.update(false); err != nil {
			t.Fatalf("Unexpected error on tick %d: %v", ticks, err)
		}
		ticks++
		if ticks > 1000 {
			t.Fatal("Expected idle game to be lost within 1000 ticks")
		}
		if g.celebration == nil {
			if img, msg := frontend.snapshot(); msg != "" || img == led.Blank {
				t.Fatalf("Expected game view on tick %d, got %s and %q", ticks, img, msg)
			}
		}
	}

	if g.session.Outcome() != invaders.Lost {
		t.Fatalf("Expected lost outcome, got %v", g.session.Outcome())
	}
	if _, msg := frontend.snapshot(); msg != driver.BannerText(0) {
		t.Errorf("Expected banner %q, got %q", driver.BannerText(0), msg)
	}

	// Banner holds for its duration, then the score text follows
	steps := int(constants.GameOverTextDuration / g.tick)
	for i := 0; i < steps; i++ {
		if err := g.update(false); err != nil {
			t.Fatalf("Unexpected error during celebration: %v", err)
		}
	}
	if _, msg := frontend.snapshot(); msg != driver.ScoreText(0) {
		t.Errorf("Expected score text %q, got %q", driver.ScoreText(0), msg)
	}
}

func TestUpdateQuitTerminates(t *testing.T) {
	g, _, _ := newTestGame()

	if err := g.update(true); !errors.Is(err, ebiten.Termination) {
		t.Errorf("Expected ebiten.Termination, got %v", err)
	}
	if g.session.Outcome() != invaders.Playing {
		t.Errorf("Expected quit not to step the game, got %v", g.session.Outcome())
	}
}

func TestDispatch(t *testing.T) {
	tests := []struct {
		name     string
		chars    []rune
		keys     []ebiten.Key
		wantQuit bool
		wantMove bool
		wantFire bool
	}{
		{"quit rune", []rune{'q'}, nil, true, false, false},
		{"escape key", nil, []ebiten.Key{ebiten.KeyEscape}, true, false, false},
		{"move rune", []rune{'a'}, nil, false, true, false},
		{"fire key", nil, []ebiten.Key{ebiten.KeyEnter}, false, false, true},
		{"both", []rune{'b'}, []ebiten.Key{ebiten.KeyArrowLeft}, false, true, true},
		{"unbound", []rune{'z'}, []ebiten.Key{ebiten.KeyF1}, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _, buttons := newTestGame()
			if quit := g.dispatch(tt.chars, tt.keys); quit != tt.wantQuit {
				t.Errorf("Expected quit=%v, got %v", tt.wantQuit, quit)
			}
			move, fire := buttons.Poll()
			if move != tt.wantMove || fire != tt.wantFire {
				t.Errorf("Expected move=%v fire=%v, got move=%v fire=%v", tt.wantMove, tt.wantFire, move, fire)
			}
		})
	}
}
