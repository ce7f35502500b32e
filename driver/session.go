// Package driver runs the tick loop around the engine: poll, step, render, delay
package driver

import (
	"log"
	"sync/atomic"

	"github.com/lixenwraith/led-invaders/display"
	"github.com/lixenwraith/led-invaders/invaders"
	"github.com/lixenwraith/led-invaders/status"
)

// Source yields the button edges latched since the previous poll
type Source interface {
	Poll() (move, fire bool)
}

// Session binds one engine to its input source, display sink and metrics
type Session struct {
	engine *invaders.Engine
	source Source
	sink   display.Sink

	score   *atomic.Int64
	wave    *atomic.Int64
	ticks   *atomic.Int64
	outcome *status.AtomicString

	lastWaves int
	lastScore int
}

// NewSession wires an engine; metric pointers are cached from registry once
func NewSession(engine *invaders.Engine, source Source, sink display.Sink, registry *status.Registry) *Session {
	s := &Session{
		engine:  engine,
		source:  source,
		sink:    sink,
		score:   registry.Ints.Get(status.KeyScore),
		wave:    registry.Ints.Get(status.KeyWave),
		ticks:   registry.Ints.Get(status.KeyTicks),
		outcome: registry.Strings.Get(status.KeyOutcome),
	}
	s.publish()
	return s
}

// Tick runs one frame: poll inputs, step the engine, render the view
func (s *Session) Tick() invaders.Outcome {
	if s.engine.Outcome() == invaders.Lost {
		return invaders.Lost
	}

	move, fire := s.source.Poll()
	outcome := s.engine.Step(move, fire)
	s.publish()
	s.sink.Show(s.engine.View().Image())

	if score := s.engine.Score(); score != s.lastScore {
		s.lastScore = score
		log.Printf("hit: score=%d tick=%d", score, s.engine.Ticks())
	}
	if waves := s.engine.Waves(); waves != s.lastWaves {
		s.lastWaves = waves
		w := s.engine.Wave()
		log.Printf("wave %d: drop every %d ticks, wiggle every %d", waves+1, w.Counter, w.WiggleInterval)
	}
	if outcome == invaders.Lost {
		log.Printf("lost: score=%d waves=%d ticks=%d", s.engine.Score(), s.engine.Waves(), s.engine.Ticks())
	}

	return outcome
}

// Render shows the current view without advancing the game
func (s *Session) Render() {
	s.sink.Show(s.engine.View().Image())
}

// Score returns the engine score
func (s *Session) Score() int { return s.engine.Score() }

// Outcome returns the engine outcome
func (s *Session) Outcome() invaders.Outcome { return s.engine.Outcome() }

func (s *Session) publish() {
	s.score.Store(int64(s.engine.Score()))
	s.wave.Store(int64(s.engine.Waves() + 1))
	s.ticks.Store(int64(s.engine.Ticks()))
	s.outcome.Store(s.engine.Outcome().String())
}
