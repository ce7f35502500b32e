package input

import "sync/atomic"

// Buttons latches press edges between ticks
// Press is safe to call from the event goroutine; Poll belongs to the tick loop
type Buttons struct {
	move atomic.Bool
	fire atomic.Bool
}

// Press records an edge for a button action; other actions are ignored
func (b *Buttons) Press(a Action) {
	switch a {
	case ActionMove:
		b.move.Store(true)
	case ActionFire:
		b.fire.Store(true)
	}
}

// Poll reports which buttons were pressed since the last poll and clears both edges
func (b *Buttons) Poll() (move, fire bool) {
	return b.move.Swap(false), b.fire.Swap(false)
}
