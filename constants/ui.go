package constants

import "github.com/gdamore/tcell/v2"

// Terminal matrix layout
const (
	// LEDCellWidth is the number of terminal columns per LED; two keeps LEDs roughly square
	LEDCellWidth = 2

	// MatrixPadding is the gap between the border and the LEDs
	MatrixPadding = 1
)

// LED glyphs
const (
	LEDGlyph = '█'
	OffGlyph = '·'
)

// Terminal colours
var (
	RgbBackground = tcell.NewRGBColor(10, 10, 16)
	RgbBorder     = tcell.NewRGBColor(90, 90, 110)
	RgbLEDOff     = tcell.NewRGBColor(45, 20, 20)
	RgbText       = tcell.NewRGBColor(230, 230, 230)
	RgbStatus     = tcell.NewRGBColor(0, 200, 200)
)

// LEDColor scales red by brightness 1..9, as the micro:bit matrix glows
func LEDColor(level uint8) tcell.Color {
	if level == 0 {
		return RgbLEDOff
	}
	r := int32(255) * int32(level) / 9
	g := int32(40) * int32(level) / 9
	return tcell.NewRGBColor(r, g, g/2)
}

// Window frontend sizing, in pixels before -scale
const (
	WindowLEDPitch  = 48
	WindowLEDRadius = 16
	WindowMargin    = 24
	WindowTextRows  = 2
	WindowTextLine  = 18
)
