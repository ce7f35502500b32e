package invaders

// Direction is horizontal travel for both the cannon and the invader formation
type Direction uint8

const (
	Right Direction = iota
	Left
)

// Step returns the column delta for one move in this direction
func (d Direction) Step() int {
	if d == Left {
		return -1
	}
	return 1
}

// Reverse returns the opposite direction
func (d Direction) Reverse() Direction {
	if d == Left {
		return Right
	}
	return Left
}

func (d Direction) String() string {
	if d == Left {
		return "left"
	}
	return "right"
}

// Cannon is the player's gun on the row below the sky
type Cannon struct {
	Position  int
	Direction Direction
}

// startCannon is the cannon at game start: centre column, heading right
var startCannon = Cannon{Position: 2, Direction: Right}

// Move advances the cannon one column, bouncing off the walls
// Reaching a wall reverses and steps inward in the same move, so 4 goes to 3 and 0 goes to 1
func (c *Cannon) Move() {
	switch {
	case c.Direction == Right && c.Position < Width-1:
		c.Position++
	case c.Direction == Right:
		c.Direction = Left
		c.Position = Width - 2
	case c.Position == 0:
		c.Direction = Right
		c.Position = 1
	default:
		c.Position--
	}
}
