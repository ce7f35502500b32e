// Package invaders is the game-state engine for a 5x5 LED space invaders game.
//
// The engine is a deterministic state machine advanced one tick per Step call.
// It performs no timing, input polling or drawing; the driver owns those.
package invaders

// Outcome is the game result reported after each tick
type Outcome uint8

const (
	Playing Outcome = iota
	// Lost is terminal: an invader reached the cannon line
	Lost
)

func (o Outcome) String() string {
	if o == Lost {
		return "lost"
	}
	return "playing"
}

// Engine owns the sky, cannon, bullet, wave pacing and score
// Not safe for concurrent use; one driver goroutine calls Step, View and the accessors
type Engine struct {
	grid    Grid
	cannon  Cannon
	bullet  BulletState
	wave    WaveController
	score   int
	outcome Outcome

	waves int
	ticks int
}

// New returns an engine with one invader row at the top and the cannon centred
func New() *Engine {
	e := &Engine{
		cannon: startCannon,
		bullet: noBullet,
		wave:   newWaveController(),
	}
	e.grid.Drop(formationRow)
	return e
}

// Step advances exactly one tick
// The order is fixed: move, fire, bullet, wiggle, drop
// After Lost the call is a no-op that returns Lost
func (e *Engine) Step(moveRequested, fireRequested bool) Outcome {
	if e.outcome == Lost {
		return Lost
	}
	e.ticks++

	if moveRequested {
		e.cannon.Move()
	}
	if fireRequested {
		e.fire()
	}
	e.advanceBullet()

	wiggle, drop := e.wave.tick()
	if wiggle {
		e.wiggle()
	}
	if drop {
		e.drop()
	}

	return e.outcome
}

// fire spawns a bullet on the bottom sky row above the cannon
// An invader already on that cell is hit point-blank
func (e *Engine) fire() {
	if e.bullet.Active {
		return
	}
	e.bullet = BulletState{Active: true, Column: e.cannon.Position, Row: BottomRow}
	e.settleBullet()
}

func (e *Engine) advanceBullet() {
	b := &e.bullet
	if !b.Active {
		return
	}

	e.clearBulletMark()
	b.Row--
	if b.Row < 0 {
		b.reset()
		return
	}
	e.settleBullet()
}

// settleBullet resolves the bullet against the cell it now occupies
func (e *Engine) settleBullet() {
	b := e.bullet
	if !b.Active {
		return
	}
	if e.grid.Cell(b.Row, b.Column) == Invader {
		e.grid.Set(b.Row, b.Column, Empty)
		e.bullet.reset()
		e.score++
		return
	}
	e.grid.Set(b.Row, b.Column, Bullet)
}

func (e *Engine) clearBulletMark() {
	b := e.bullet
	if b.Active && e.grid.Cell(b.Row, b.Column) == Bullet {
		e.grid.Set(b.Row, b.Column, Empty)
	}
}

// wiggle shifts the formation one column toward the leading wall,
// or turns it around when anything, invader or bullet, already touches that wall
func (e *Engine) wiggle() {
	dir := e.wave.Direction
	edge := 0
	if dir == Right {
		edge = Width - 1
	}
	if !e.grid.ColumnClear(edge) {
		e.wave.Direction = dir.Reverse()
		return
	}
	e.grid.Shift(dir)
	e.settleBullet()
}

// drop lowers the formation one line and inserts a fresh row on top
// An invader on the bottom row ends the game and leaves the sky as it is
func (e *Engine) drop() {
	if e.grid[BottomRow].HasInvader() {
		e.outcome = Lost
		return
	}

	e.clearBulletMark()
	e.grid.Drop(formationRow)
	e.settleBullet()

	e.waves++
	e.wave.ramp()
}

// View returns the sky plus the synthesized cannon row
func (e *Engine) View() Frame {
	var f Frame
	for r, row := range e.grid {
		for c, cell := range row {
			f[r][c] = cell.brightness()
		}
	}
	f[SkyRows] = cannonRow(e.cannon.Position)
	return f
}

// Score returns the number of invaders destroyed
func (e *Engine) Score() int { return e.score }

// Outcome returns the current game outcome
func (e *Engine) Outcome() Outcome { return e.outcome }

// Cannon returns a copy of the cannon state
func (e *Engine) Cannon() Cannon { return e.cannon }

// Bullet returns a copy of the bullet state
func (e *Engine) Bullet() BulletState { return e.bullet }

// Wave returns a copy of the wave controller
func (e *Engine) Wave() WaveController { return e.wave }

// Grid returns a copy of the sky
func (e *Engine) Grid() Grid { return e.grid }

// Waves returns the number of completed drops
func (e *Engine) Waves() int { return e.waves }

// Ticks returns the number of ticks processed while playing
func (e *Engine) Ticks() int { return e.ticks }
