// Package led models a 5x5 LED matrix image in the micro:bit string form
package led

import (
	"fmt"
	"strings"
)

const (
	Size          = 5
	MaxBrightness = 9
)

// Image is a 5x5 grid of LED brightness levels, 0 (off) to 9
type Image [Size][Size]uint8

// Built-in images
var (
	Blank = Image{}
	Happy = MustParse("00000:09090:00000:90009:09990")
)

// Parse reads rows of digits separated by ':'
// A trailing ':' is accepted; missing rows and short rows stay dark
func Parse(s string) (Image, error) {
	var img Image
	rows := strings.Split(strings.TrimSuffix(s, ":"), ":")
	if len(rows) > Size {
		return img, fmt.Errorf("image has %d rows, max %d", len(rows), Size)
	}
	for r, row := range rows {
		if len(row) > Size {
			return img, fmt.Errorf("row %d has %d columns, max %d", r, len(row), Size)
		}
		for c := 0; c < len(row); c++ {
			ch := row[c]
			if ch < '0' || ch > '0'+MaxBrightness {
				return img, fmt.Errorf("row %d col %d: invalid brightness %q", r, c, ch)
			}
			img[r][c] = ch - '0'
		}
	}
	return img, nil
}

// MustParse is Parse for package-level literals; it panics on malformed input
func MustParse(s string) Image {
	img, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return img
}

// Lit reports whether the LED at row, col is on
func (img Image) Lit(row, col int) bool {
	return img[row][col] > 0
}

// String returns the micro:bit form with all five rows
func (img Image) String() string {
	var sb strings.Builder
	sb.Grow(Size*(Size+1) - 1)
	for r := range img {
		if r > 0 {
			sb.WriteByte(':')
		}
		for _, v := range img[r] {
			sb.WriteByte('0' + v)
		}
	}
	return sb.String()
}
