package driver

import (
	"context"
	"time"

	"github.com/lixenwraith/led-invaders/invaders"
)

// Run ticks the session every interval until the game is lost or ctx ends
// Returns Lost with a nil error on loss; otherwise the current outcome and ctx.Err()
func Run(ctx context.Context, s *Session, clock Clock, interval time.Duration) (invaders.Outcome, error) {
	for {
		if err := ctx.Err(); err != nil {
			return s.Outcome(), err
		}
		if s.Tick() == invaders.Lost {
			return invaders.Lost, nil
		}
		if err := clock.Sleep(ctx, interval); err != nil {
			return s.Outcome(), err
		}
	}
}
