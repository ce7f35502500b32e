package invaders

import "testing"

func TestRampFloors(t *testing.T) {
	w := WaveController{Counter: 21, WiggleInterval: 25, TickInWave: 21}

	w.ramp()
	if w.Counter != 20 || w.WiggleInterval != 20 || w.TickInWave != 0 {
		t.Fatalf("Expected 20/20/0 after ramp, got %+v", w)
	}

	// Both floors are inclusive: 20 is reachable and never undercut
	w.ramp()
	if w.Counter != MinWaveCounter || w.WiggleInterval != MinWiggle {
		t.Errorf("Expected floors to hold at %d/%d, got %+v", MinWaveCounter, MinWiggle, w)
	}
}

func TestRampSequence(t *testing.T) {
	w := newWaveController()
	for i := 1; i <= 12; i++ {
		w.ramp()
		wantWiggle := max(StartWiggle-WiggleIntervalStep*i, MinWiggle)
		if w.WiggleInterval != wantWiggle {
			t.Errorf("Wave %d: expected wiggle %d, got %d", i, wantWiggle, w.WiggleInterval)
		}
		if w.Counter != StartWaveCounter-i {
			t.Errorf("Wave %d: expected counter %d, got %d", i, StartWaveCounter-i, w.Counter)
		}
	}
}

func TestWaveTick(t *testing.T) {
	w := WaveController{Counter: 6, WiggleInterval: 3}
	var wiggles, drops []int
	for i := 1; i <= 6; i++ {
		wiggle, drop := w.tick()
		if wiggle {
			wiggles = append(wiggles, i)
		}
		if drop {
			drops = append(drops, i)
		}
	}
	if len(wiggles) != 2 || wiggles[0] != 3 || wiggles[1] != 6 {
		t.Errorf("Expected wiggles at 3 and 6, got %v", wiggles)
	}
	if len(drops) != 1 || drops[0] != 6 {
		t.Errorf("Expected single drop at 6, got %v", drops)
	}
}
