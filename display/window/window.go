// Package window is the desktop frontend: an ebiten window drawing the LED matrix
//
// Ebiten owns the loop here. Update runs once per tick at the configured TPS,
// so ebiten is the timing source and the driver Clock is not used.
package window

import (
	"errors"
	"image/color"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/lixenwraith/led-invaders/constants"
	"github.com/lixenwraith/led-invaders/driver"
	"github.com/lixenwraith/led-invaders/input"
	"github.com/lixenwraith/led-invaders/invaders"
	"github.com/lixenwraith/led-invaders/led"
)

var (
	colorBackground = color.RGBA{10, 10, 16, 255}
	colorText       = color.RGBA{230, 230, 230, 255}
)

// specialKeys maps ebiten keys to the tcell key codes used by the shared KeyTable
var specialKeys = map[ebiten.Key]tcell.Key{
	ebiten.KeyArrowLeft:  tcell.KeyLeft,
	ebiten.KeyArrowRight: tcell.KeyRight,
	ebiten.KeyArrowUp:    tcell.KeyUp,
	ebiten.KeyArrowDown:  tcell.KeyDown,
	ebiten.KeyEnter:      tcell.KeyEnter,
	ebiten.KeyTab:        tcell.KeyTab,
	ebiten.KeyEscape:     tcell.KeyEscape,
	ebiten.KeyBackspace:  tcell.KeyBackspace2,
}

// Frontend is a display.Sink that ebiten paints each Draw
type Frontend struct {
	mu   sync.Mutex
	img  led.Image
	text string
}

// Show stores an image for the next Draw and clears any text
func (f *Frontend) Show(img led.Image) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.img = img
	f.text = ""
}

// ShowText blanks the matrix and stores text for the next Draw
func (f *Frontend) ShowText(s string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.img = led.Blank
	f.text = s
}

func (f *Frontend) snapshot() (led.Image, string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.img, f.text
}

// Game implements ebiten.Game around a driver session
type Game struct {
	session  *driver.Session
	frontend *Frontend
	keys     *input.KeyTable
	buttons  *input.Buttons
	tick     time.Duration
	scale    float64

	celebration *driver.Celebration
	chars       []rune
	pressed     []ebiten.Key
}

// NewGame builds a game; buttons must be the session's input source
func NewGame(session *driver.Session, frontend *Frontend, keys *input.KeyTable, buttons *input.Buttons, tick time.Duration, scale float64) *Game {
	return &Game{
		session:  session,
		frontend: frontend,
		keys:     keys,
		buttons:  buttons,
		tick:     tick,
		scale:    scale,
	}
}

// Run opens the window and blocks until it is closed or the quit key is pressed
func Run(g *Game) error {
	w, h := g.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("LED Invaders")
	ebiten.SetTPS(max(int(time.Second/g.tick), 1))

	g.session.Render()
	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// Update is one tick: latch key edges, then step the game or the celebration
func (g *Game) Update() error {
	g.chars = ebiten.AppendInputChars(g.chars[:0])
	g.pressed = inpututil.AppendJustPressedKeys(g.pressed[:0])
	return g.update(g.dispatch(g.chars, g.pressed))
}

func (g *Game) update(quit bool) error {
	if quit {
		return ebiten.Termination
	}

	if g.celebration != nil {
		g.celebration.Advance(g.tick)
		return nil
	}

	if g.session.Tick() == invaders.Lost {
		g.celebration = driver.NewCelebration(g.frontend, g.session.Score())
	}
	return nil
}

// dispatch presses buttons for typed runes and newly pressed keys and reports a quit request
func (g *Game) dispatch(chars []rune, keys []ebiten.Key) bool {
	quit := false
	press := func(a input.Action) {
		switch a {
		case input.ActionQuit:
			quit = true
		case input.ActionNone:
		default:
			g.buttons.Press(a)
		}
	}

	for _, r := range chars {
		press(g.keys.LookupRune(r))
	}
	for _, k := range keys {
		if tk, ok := specialKeys[k]; ok {
			press(g.keys.LookupSpecial(tk))
		}
	}
	return quit
}

// Draw paints the current image as round LEDs and the text line under them
func (g *Game) Draw(screen *ebiten.Image) {
	img, msg := g.frontend.snapshot()
	screen.Fill(colorBackground)

	pitch := float32(constants.WindowLEDPitch * g.scale)
	radius := float32(constants.WindowLEDRadius * g.scale)
	margin := float32(constants.WindowMargin * g.scale)

	for r := 0; r < led.Size; r++ {
		for c := 0; c < led.Size; c++ {
			cx := margin + pitch*float32(c) + pitch/2
			cy := margin + pitch*float32(r) + pitch/2
			vector.DrawFilledCircle(screen, cx, cy, radius, ledColor(img[r][c]), true)
		}
	}

	if msg != "" {
		y := int(margin + pitch*led.Size + float32(constants.WindowTextLine))
		text.Draw(screen, msg, basicfont.Face7x13, int(margin), y, colorText)
	}
}

// Layout keeps a fixed logical size derived from the scale
func (g *Game) Layout(_, _ int) (int, int) {
	side := constants.WindowMargin*2 + constants.WindowLEDPitch*led.Size
	w := int(float64(side) * g.scale)
	h := int(float64(side+constants.WindowTextRows*constants.WindowTextLine) * g.scale)
	return w, h
}

// ledColor maps brightness onto the same palette as the terminal frontend
func ledColor(level uint8) color.Color {
	r, gr, b := constants.LEDColor(level).RGB()
	return color.RGBA{uint8(r), uint8(gr), uint8(b), 255}
}
