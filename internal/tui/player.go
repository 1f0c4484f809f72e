package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/oechslein/AdventOfCode2024/internal/core"
)

// frameInterval is how often the player polls its tick controller.
const frameInterval = 16 * time.Millisecond

// PlayerOptions configures a Player.
type PlayerOptions struct {
	TPS  int
	Seed int64
	// Steps stops the player after that many generations; 0 runs until quit.
	Steps int
}

// Player runs a simulation on a terminal screen at a fixed tick rate.
//
// Keys: q or Esc quits, space pauses, n steps once while paused, r resets
// with the same seed.
type Player struct {
	screen tcell.Screen
	sim    core.Sim
	opts   PlayerOptions
	timer  *core.FixedStep
	log    *zap.Logger

	generation int
	paused     bool
}

// NewPlayer prepares sim for display on screen. The screen must already be
// initialised; the caller keeps ownership of it.
func NewPlayer(screen tcell.Screen, sim core.Sim, opts PlayerOptions, log *zap.Logger) *Player {
	if log == nil {
		log = zap.NewNop()
	}
	p := &Player{
		screen: screen,
		sim:    sim,
		opts:   opts,
		timer:  core.NewFixedStep(opts.TPS),
		log:    log.With(zap.String("sim", sim.Name())),
	}
	p.Reset()
	return p
}

// Generation returns the number of steps taken since the last reset.
func (p *Player) Generation() int { return p.generation }

// Reset reseeds the simulation.
func (p *Player) Reset() {
	p.sim.Reset(p.opts.Seed)
	p.generation = 0
}

// Step advances the simulation one generation.
func (p *Player) Step() {
	p.sim.Step()
	p.generation++
}

// Render draws the current generation and a status line below it.
func (p *Player) Render() {
	p.screen.Clear()
	Draw(p.screen, p.sim.Cells(), 0, 0, StateGlyph)
	status := fmt.Sprintf("%s gen %d", p.sim.Name(), p.generation)
	if p.paused {
		status += " [paused]"
	}
	DrawText(p.screen, 0, p.sim.Size().H, status, tcell.StyleDefault.Reverse(true))
	p.screen.Show()
}

// Run plays until the user quits, the step limit is reached or ctx is done.
// It returns nil in the first two cases and ctx.Err() in the last.
func (p *Player) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := p.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	p.log.Info("player started", zap.Int("tps", p.opts.TPS), zap.Int64("seed", p.opts.Seed))
	p.Render()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !p.handle(ev) {
				p.log.Info("player quit", zap.Int("generation", p.generation))
				return nil
			}
			p.Render()
		case <-ticker.C:
			if p.paused {
				continue
			}
			for range p.timer.Pending(4) {
				p.Step()
				if p.opts.Steps > 0 && p.generation >= p.opts.Steps {
					p.Render()
					p.log.Info("step limit reached", zap.Int("generation", p.generation))
					return nil
				}
			}
			p.Render()
		}
	}
}

func (p *Player) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		switch ev.Rune() {
		case 'q':
			return false
		case ' ':
			p.paused = !p.paused
			p.log.Debug("pause toggled", zap.Bool("paused", p.paused))
		case 'n':
			if p.paused {
				p.Step()
			}
		case 'r':
			p.Reset()
		}
	case *tcell.EventResize:
		p.screen.Sync()
	}
	return true
}
