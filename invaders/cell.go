package invaders

// Grid dimensions
const (
	Width     = 5
	SkyRows   = 3
	FrameRows = SkyRows + 1
	BottomRow = SkyRows - 1
)

// Cell is the state of a single sky position
type Cell uint8

const (
	Empty Cell = iota
	Invader
	Bullet
)

func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case Invader:
		return "invader"
	case Bullet:
		return "bullet"
	default:
		return "unknown"
	}
}

// Row is one fixed-width line of sky
type Row [Width]Cell

// formationRow is the shape of a freshly inserted invader row: four invaders, gap on the right
var formationRow = Row{Invader, Invader, Invader, Invader, Empty}

// HasInvader reports whether any cell in the row holds an invader
func (r Row) HasInvader() bool {
	for _, c := range r {
		if c == Invader {
			return true
		}
	}
	return false
}

// invadersOnly returns the row with bullet marks cleared
func (r Row) invadersOnly() Row {
	var out Row
	for i, c := range r {
		if c == Invader {
			out[i] = Invader
		}
	}
	return out
}
