// Package loop drives game sessions at a fixed tick rate for a front end.
package loop

import (
	"context"
	"fmt"
	"time"

	"grid-snake/game"
	"grid-snake/game/manager"
	"grid-snake/game/types"

	"github.com/rs/zerolog/log"
)

// DefaultRetryDelay keeps the game-over screen up before a key can restart.
const DefaultRetryDelay = time.Second

// Frontend is the presentation side of the game: it supplies one optional
// direction per tick and draws what the session reports.
type Frontend interface {
	PollDirection() types.Direction
	AnyKeyPressed() bool
	ShouldClose() bool
	DrawFrame(snap game.Snapshot, summary manager.Summary)
	DrawGameOver(snap game.Snapshot, summary manager.Summary)
	Close() error
}

type Runner struct {
	fe         Frontend
	cfg        game.Config
	interval   time.Duration
	retryDelay time.Duration
	stats      *manager.StatsManager
}

func NewRunner(fe Frontend, cfg game.Config, interval time.Duration) *Runner {
	return &Runner{
		fe:         fe,
		cfg:        cfg,
		interval:   interval,
		retryDelay: DefaultRetryDelay,
		stats:      manager.NewStatsManager(),
	}
}

// SetRetryDelay changes how long the game-over screen ignores keys.
func (r *Runner) SetRetryDelay(d time.Duration) {
	r.retryDelay = d
}

func (r *Runner) Stats() *manager.StatsManager {
	return r.stats
}

// Run plays rounds until the front end closes or ctx is cancelled. With a
// fixed seed, round n uses seed+n so rounds do not repeat the same food.
func (r *Runner) Run(ctx context.Context) error {
	if r.interval <= 0 {
		return fmt.Errorf("tick interval %v must be positive", r.interval)
	}
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for round := uint64(0); ; round++ {
		cfg := r.cfg
		if cfg.Seed != 0 {
			cfg.Seed += round
		}

		g, err := game.NewGame(cfg)
		if err != nil {
			return fmt.Errorf("start round %d: %w", round+1, err)
		}

		finished, err := r.playRound(ctx, ticker, g)
		if err != nil || !finished {
			return err
		}
		r.stats.AddRound(g.Record())

		if !r.awaitRetry(ctx, ticker, g.Snapshot()) {
			return nil
		}
		log.Info().Msg("Retrying the game...")
	}
}

// playRound ticks g until it ends. It reports false when the player quit
// before the round was over.
func (r *Runner) playRound(ctx context.Context, ticker *time.Ticker, g *game.Game) (bool, error) {
	for !g.Over() {
		select {
		case <-ctx.Done():
			return false, nil
		case <-ticker.C:
		}
		if r.fe.ShouldClose() {
			return false, nil
		}

		if _, err := g.Tick(r.fe.PollDirection()); err != nil {
			return false, fmt.Errorf("tick session %s: %w", g.ID(), err)
		}
		r.fe.DrawFrame(g.Snapshot(), r.stats.Summary())
	}
	return true, nil
}

// awaitRetry shows the game-over screen until a key is pressed after the
// retry delay. It reports false when the player quit instead.
func (r *Runner) awaitRetry(ctx context.Context, ticker *time.Ticker, snap game.Snapshot) bool {
	shownAt := time.Now()
	for {
		select {
		case <-ctx.Done():
			return false
		case <-ticker.C:
		}
		if r.fe.ShouldClose() {
			return false
		}

		r.fe.DrawGameOver(snap, r.stats.Summary())
		if r.fe.AnyKeyPressed() && time.Since(shownAt) >= r.retryDelay {
			return true
		}
	}
}
