package invaders

// Difficulty ramp
const (
	StartWaveCounter   = 200
	StartWiggle        = 80
	MinWaveCounter     = 20
	MinWiggle          = 20
	WaveCounterStep    = 1
	WiggleIntervalStep = 5
)

// WaveController paces the invader formation
type WaveController struct {
	// Counter is the number of ticks from one drop to the next
	Counter int
	// WiggleInterval is the number of ticks between horizontal shifts
	WiggleInterval int
	Direction      Direction
	TickInWave     int
}

func newWaveController() WaveController {
	return WaveController{
		Counter:        StartWaveCounter,
		WiggleInterval: StartWiggle,
		Direction:      Right,
	}
}

// tick advances the in-wave counter and reports whether a wiggle and a drop are due
func (w *WaveController) tick() (wiggle, drop bool) {
	w.TickInWave++
	return w.TickInWave%w.WiggleInterval == 0, w.TickInWave == w.Counter
}

// ramp resets the wave and tightens both intervals down to their floors
func (w *WaveController) ramp() {
	w.TickInWave = 0
	w.Counter = max(w.Counter-WaveCounterStep, MinWaveCounter)
	w.WiggleInterval = max(w.WiggleInterval-WiggleIntervalStep, MinWiggle)
}
