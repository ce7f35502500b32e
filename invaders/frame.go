package invaders

import (
	"strings"

	"github.com/lixenwraith/led-invaders/led"
)

// LED brightness per cell kind, micro:bit scale
const (
	BrightnessOff     uint8 = 0
	BrightnessInvader uint8 = 8
	BrightnessLit     uint8 = 9
)

// Frame is a read-only render snapshot: three sky rows and the cannon row
type Frame [FrameRows][Width]uint8

func (c Cell) brightness() uint8 {
	switch c {
	case Invader:
		return BrightnessInvader
	case Bullet:
		return BrightnessLit
	default:
		return BrightnessOff
	}
}

// cannonRow synthesizes the bottom row with a single lit cell at pos
func cannonRow(pos int) [Width]uint8 {
	var row [Width]uint8
	row[pos] = BrightnessLit
	return row
}

// Lit reports whether the LED at row, col is on
func (f Frame) Lit(row, col int) bool {
	return f[row][col] > BrightnessOff
}

// Image places the frame on a 5x5 matrix, top-aligned, last row dark
func (f Frame) Image() led.Image {
	var img led.Image
	for r, row := range f {
		copy(img[r][:], row[:])
	}
	return img
}

// String encodes the frame in micro:bit image form, e.g. "88880:00000:00000:00900"
func (f Frame) String() string {
	var sb strings.Builder
	for r, row := range f {
		if r > 0 {
			sb.WriteByte(':')
		}
		for _, v := range row {
			sb.WriteByte('0' + v)
		}
	}
	return sb.String()
}
