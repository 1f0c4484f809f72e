// Package sweep runs many independent simulations in parallel.
package sweep

import (
	"cmp"
	"context"
	"fmt"
	"runtime"
	"slices"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/oechslein/AdventOfCode2024/internal/core"
	"github.com/oechslein/AdventOfCode2024/internal/logging"
	"github.com/oechslein/AdventOfCode2024/pkg/grid"
)

// Options controls a sweep.
type Options struct {
	Seeds   []int64
	Steps   int
	Workers int
}

// Seeds returns n consecutive seeds starting at first.
func Seeds(first int64, n int) []int64 {
	seeds := make([]int64, n)
	for i := range seeds {
		seeds[i] = first + int64(i)
	}
	return seeds
}

// Result summarises one simulation run.
type Result struct {
	Seed int64
	// Initial and Final count non-zero cells.
	Initial int
	Final   int
	// Peak is the highest count seen and PeakStep the first step it was seen.
	Peak     int
	PeakStep int
	// StableAt is the first step after which the grid stopped changing, or
	// -1 if it was still changing at the end.
	StableAt int
	Elapsed  time.Duration
}

// Run builds one simulation per seed with factory and steps each on its own
// goroutine, at most Workers at a time. Results are sorted by seed. The
// first error, including cancellation of ctx, stops the sweep.
func Run(ctx context.Context, factory core.Factory, params map[string]string, opts Options, log *zap.Logger) ([]Result, error) {
	log = logging.OrNop(log)
	if factory == nil {
		return nil, fmt.Errorf("sweep: nil factory")
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]Result, len(opts.Seeds))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	start := time.Now()
	log.Info("sweep started",
		zap.Int("seeds", len(opts.Seeds)),
		zap.Int("steps", opts.Steps),
		zap.Int("workers", workers))

	for i, seed := range opts.Seeds {
		eg.Go(func() error {
			res, err := runOne(egCtx, factory(params), seed, opts.Steps)
			if err != nil {
				return fmt.Errorf("seed %d: %w", seed, err)
			}
			results[i] = res
			log.Debug("seed finished",
				zap.Int64("seed", seed),
				zap.Int("final", res.Final),
				zap.Duration("elapsed", res.Elapsed))
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		log.Warn("sweep aborted", zap.Error(err))
		return nil, err
	}

	slices.SortFunc(results, func(a, b Result) int { return cmp.Compare(a.Seed, b.Seed) })
	log.Info("sweep finished", zap.Duration("elapsed", time.Since(start)))
	return results, nil
}

func runOne(ctx context.Context, sim core.Sim, seed int64, steps int) (Result, error) {
	start := time.Now()
	sim.Reset(seed)

	live := func(v uint8) bool { return v != 0 }
	res := Result{Seed: seed, StableAt: -1}
	res.Initial = sim.Cells().CountFunc(live)
	res.Peak = res.Initial

	prev := sim.Cells().Clone()
	for step := 1; step <= steps; step++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		sim.Step()
		cur := sim.Cells()
		if n := cur.CountFunc(live); n > res.Peak {
			res.Peak, res.PeakStep = n, step
		}
		if grid.Equal(prev, cur) {
			if res.StableAt < 0 {
				res.StableAt = step - 1
			}
		} else {
			res.StableAt = -1
		}
		prev = cur.Clone()
	}
	res.Final = sim.Cells().CountFunc(live)
	res.Elapsed = time.Since(start)
	return res, nil
}

// Summary aggregates a sweep.
type Summary struct {
	Runs      int
	Extinct   int
	Stable    int
	MeanFinal float64
	Best      Result
}

// Summarize counts extinct and stabilised runs and picks the run with the
// highest final count; ties go to the lower seed.
func Summarize(results []Result) Summary {
	s := Summary{Runs: len(results)}
	total := 0
	for i, r := range results {
		total += r.Final
		if r.Final == 0 {
			s.Extinct++
		}
		if r.StableAt >= 0 {
			s.Stable++
		}
		if i == 0 || r.Final > s.Best.Final {
			s.Best = r
		}
	}
	if len(results) > 0 {
		s.MeanFinal = float64(total) / float64(len(results))
	}
	return s
}
