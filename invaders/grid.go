package invaders

// Grid is the sky: row 0 is the top, BottomRow sits directly above the cannon
type Grid [SkyRows]Row

// Cell returns the cell at row, col
func (g *Grid) Cell(row, col int) Cell {
	return g[row][col]
}

// Set writes a cell
func (g *Grid) Set(row, col int, c Cell) {
	g[row][col] = c
}

// Drop removes the bottom row, shifts every other row down and inserts top at row 0
// Returns the removed bottom row
func (g *Grid) Drop(top Row) Row {
	bottom := g[BottomRow]
	copy(g[1:], g[:BottomRow])
	g[0] = top
	return bottom
}

// ColumnClear reports whether col is Empty in every row; a bullet mark counts as occupied
func (g *Grid) ColumnClear(col int) bool {
	for _, r := range g {
		if r[col] != Empty {
			return false
		}
	}
	return true
}

// Shift moves every invader one column in dir, filling the trailing edge with Empty
// Bullet marks are dropped; the caller restamps the bullet
func (g *Grid) Shift(dir Direction) {
	for i, r := range g {
		src := r.invadersOnly()
		var dst Row
		for col := range src {
			to := col + dir.Step()
			if to < 0 || to >= Width {
				continue
			}
			dst[to] = src[col]
		}
		g[i] = dst
	}
}

// InvaderCount returns the number of invaders currently in the sky
func (g *Grid) InvaderCount() int {
	n := 0
	for _, r := range g {
		for _, c := range r {
			if c == Invader {
				n++
			}
		}
	}
	return n
}
