package constants

import "testing"

func TestLEDColorScalesWithBrightness(t *testing.T) {
	if LEDColor(0) != RgbLEDOff {
		t.Error("Expected level 0 to use the off colour")
	}

	prev := int32(-1)
	for level := uint8(1); level <= 9; level++ {
		r, _, _ := LEDColor(level).RGB()
		if r <= prev {
			t.Errorf("Expected red to increase at level %d, got %d after %d", level, r, prev)
		}
		prev = r
	}

	if r, _, _ := LEDColor(9).RGB(); r != 255 {
		t.Errorf("Expected full red at level 9, got %d", r)
	}
}
