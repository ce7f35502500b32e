package driver

import (
	"context"
	"fmt"
	"time"

	"github.com/lixenwraith/led-invaders/constants"
	"github.com/lixenwraith/led-invaders/display"
	"github.com/lixenwraith/led-invaders/led"
)

type celebrationPhase uint8

const (
	phaseBanner celebrationPhase = iota
	phaseScore
	phaseHappy
)

// Celebration is the end-of-game display: a score banner,
// then the score and a happy face alternating forever
// It is advanced by elapsed time so both the blocking loop and the window frontend can drive it
type Celebration struct {
	sink    display.Sink
	score   int
	phase   celebrationPhase
	elapsed time.Duration
}

// NewCelebration shows the banner immediately
func NewCelebration(sink display.Sink, score int) *Celebration {
	c := &Celebration{sink: sink, score: score}
	c.sink.ShowText(BannerText(score))
	return c
}

// BannerText is the first message after a loss
func BannerText(score int) string {
	return fmt.Sprintf("GAME OVER You Scored %d", score)
}

// ScoreText is the message alternating with the happy face
func ScoreText(score int) string {
	return fmt.Sprintf("--- %d ---", score)
}

func (c *Celebration) phaseDuration() time.Duration {
	if c.phase == phaseBanner {
		return constants.GameOverTextDuration
	}
	return constants.CelebrationInterval
}

// Advance moves the presentation forward by dt, showing each phase it enters
func (c *Celebration) Advance(dt time.Duration) {
	c.elapsed += dt
	for c.elapsed >= c.phaseDuration() {
		c.elapsed -= c.phaseDuration()
		c.enterNext()
	}
}

func (c *Celebration) enterNext() {
	if c.phase == phaseScore {
		c.phase = phaseHappy
		c.sink.Show(led.Happy)
		return
	}
	c.phase = phaseScore
	c.sink.ShowText(ScoreText(c.score))
}

// Celebrate runs the celebration on clock until ctx ends, returning ctx.Err()
func Celebrate(ctx context.Context, sink display.Sink, score int, clock Clock, interval time.Duration) error {
	c := NewCelebration(sink, score)
	for {
		if err := clock.Sleep(ctx, interval); err != nil {
			return err
		}
		c.Advance(interval)
	}
}
