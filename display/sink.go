// Package display renders the LED matrix and reads buttons for the terminal frontend
package display

import "github.com/lixenwraith/led-invaders/led"

// Sink is the display contract the tick loop draws through
// A sink shows either an image or a line of text, never both
type Sink interface {
	Show(img led.Image)
	ShowText(text string)
}
