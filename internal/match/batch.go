package match

import (
	"context"
	"log"
	"sort"

	apperr "github.com/KirkDiggler/pet-groomer/internal/errors"
	"github.com/KirkDiggler/pet-groomer/internal/scoring"
	"golang.org/x/sync/errgroup"
)

// BatchConfig describes a run of independent seeded matches
type BatchConfig struct {
	Matches int
	Workers int
	// BaseSeed seeds match i with BaseSeed+i
	BaseSeed int64
	// Options builds the options for one seed
	Options func(seed int64) Options
	// Store receives every finished result; optional
	Store scoring.Store
}

// RunBatch plays the matches on up to Workers goroutines. Each match is
// single threaded and shares nothing with the others. Results come back in
// seed order.
func RunBatch(ctx context.Context, cfg BatchConfig) ([]*scoring.MatchResult, error) {
	if cfg.Matches <= 0 {
		return nil, apperr.InvalidArgumentf("batch needs at least one match, got %d", cfg.Matches)
	}
	if cfg.Options == nil {
		return nil, apperr.InvalidArgument("batch options builder is required")
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	results := make([]*scoring.MatchResult, cfg.Matches)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := 0; i < cfg.Matches; i++ {
		seed := cfg.BaseSeed + int64(i)
		g.Go(func() error {
			m, err := New(cfg.Options(seed))
			if err != nil {
				return apperr.Wrapf(err, "failed to create match for seed %d", seed)
			}

			result, err := m.Run(gctx)
			if err != nil {
				return err
			}

			if cfg.Store != nil {
				if err := cfg.Store.Save(gctx, result); err != nil {
					return apperr.Wrapf(err, "failed to save match %s", result.ID)
				}
			}

			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Printf("Match: batch of %d finished", cfg.Matches)
	return results, nil
}

// Summary aggregates a batch of results
type Summary struct {
	Matches     int
	GroomerWins int
	PetsGroomed int
	ExtraSteps  int
	// SpeciesPoints sums skill-hit points per species
	SpeciesPoints map[string]int
}

// Summarize folds results into a Summary
func Summarize(results []*scoring.MatchResult) Summary {
	s := Summary{SpeciesPoints: make(map[string]int)}
	for _, r := range results {
		if r == nil {
			continue
		}
		s.Matches++
		if r.GroomerWon {
			s.GroomerWins++
		}
		s.PetsGroomed += len(r.Captured)
		s.ExtraSteps += r.ExtraSteps
		for species, points := range r.SpeciesScores() {
			s.SpeciesPoints[species] += points
		}
	}
	return s
}

// SpeciesNames returns the species with points, sorted
func (s Summary) SpeciesNames() []string {
	names := make([]string, 0, len(s.SpeciesPoints))
	for name := range s.SpeciesPoints {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
