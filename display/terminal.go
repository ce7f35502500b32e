package display

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/led-invaders/constants"
	"github.com/lixenwraith/led-invaders/input"
	"github.com/lixenwraith/led-invaders/led"
	"github.com/lixenwraith/led-invaders/status"
)

// Matrix footprint including border and padding
const (
	matrixWidth  = led.Size*constants.LEDCellWidth + 2*constants.MatrixPadding + 2
	matrixHeight = led.Size + 2*constants.MatrixPadding + 2
)

// Terminal draws the LED matrix on a tcell screen with a text line and a status line beneath
// Draw calls come from the tick loop and from resize events, so state is guarded
type Terminal struct {
	screen   tcell.Screen
	registry *status.Registry

	mu   sync.Mutex
	img  led.Image
	text string
}

// NewTerminal wraps an initialized screen; registry may be nil
func NewTerminal(screen tcell.Screen, registry *status.Registry) *Terminal {
	screen.SetStyle(tcell.StyleDefault.Background(constants.RgbBackground))
	return &Terminal{screen: screen, registry: registry}
}

// Show displays an image and clears any text
func (t *Terminal) Show(img led.Image) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.img = img
	t.text = ""
	t.draw()
}

// ShowText blanks the matrix and displays text under it
func (t *Terminal) ShowText(text string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.img = led.Blank
	t.text = text
	t.draw()
}

// Events reads terminal input until the screen is finalized
// Button actions are latched into buttons; the quit action calls quit
func (t *Terminal) Events(keys *input.KeyTable, buttons *input.Buttons, quit func()) {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			switch a := keys.Lookup(ev); a {
			case input.ActionQuit:
				quit()
			case input.ActionNone:
			default:
				buttons.Press(a)
			}
		case *tcell.EventResize:
			t.mu.Lock()
			t.screen.Sync()
			t.draw()
			t.mu.Unlock()
		}
	}
}

// matrixOrigin returns the top-left corner of the matrix border, centred on a w x h screen
func matrixOrigin(w, h int) (int, int) {
	x := max((w-matrixWidth)/2, 0)
	y := max((h-matrixHeight-2)/2, 0)
	return x, y
}

// ledPosition returns the screen cell of the first column of an LED
func ledPosition(originX, originY, row, col int) (int, int) {
	x := originX + 1 + constants.MatrixPadding + col*constants.LEDCellWidth
	y := originY + 1 + constants.MatrixPadding + row
	return x, y
}

// draw must be called with mu held
func (t *Terminal) draw() {
	t.screen.Clear()
	w, h := t.screen.Size()
	ox, oy := matrixOrigin(w, h)
	base := tcell.StyleDefault.Background(constants.RgbBackground)

	t.drawBorder(ox, oy, base.Foreground(constants.RgbBorder))

	for r := 0; r < led.Size; r++ {
		for c := 0; c < led.Size; c++ {
			level := t.img[r][c]
			glyph := constants.LEDGlyph
			if level == 0 {
				glyph = constants.OffGlyph
			}
			style := base.Foreground(constants.LEDColor(level))
			x, y := ledPosition(ox, oy, r, c)
			for i := 0; i < constants.LEDCellWidth; i++ {
				t.screen.SetContent(x+i, y, glyph, nil, style)
			}
		}
	}

	textY := oy + matrixHeight
	t.drawCentered(textY, w, t.text, base.Foreground(constants.RgbText))
	if t.registry != nil {
		t.drawCentered(textY+1, w, t.registry.Line(), base.Foreground(constants.RgbStatus))
	}

	t.screen.Show()
}

func (t *Terminal) drawBorder(x, y int, style tcell.Style) {
	right := x + matrixWidth - 1
	bottom := y + matrixHeight - 1

	for i := x + 1; i < right; i++ {
		t.screen.SetContent(i, y, tcell.RuneHLine, nil, style)
		t.screen.SetContent(i, bottom, tcell.RuneHLine, nil, style)
	}
	for j := y + 1; j < bottom; j++ {
		t.screen.SetContent(x, j, tcell.RuneVLine, nil, style)
		t.screen.SetContent(right, j, tcell.RuneVLine, nil, style)
	}
	t.screen.SetContent(x, y, tcell.RuneULCorner, nil, style)
	t.screen.SetContent(right, y, tcell.RuneURCorner, nil, style)
	t.screen.SetContent(x, bottom, tcell.RuneLLCorner, nil, style)
	t.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, style)
}

func (t *Terminal) drawCentered(y, w int, s string, style tcell.Style) {
	runes := []rune(s)
	x := max((w-len(runes))/2, 0)
	for i, r := range runes {
		if x+i >= w {
			break
		}
		t.screen.SetContent(x+i, y, r, nil, style)
	}
}
