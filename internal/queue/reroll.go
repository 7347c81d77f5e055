package queue

import (
	"context"
	"fmt"
	"math/rand"
	"sort"

	"github.com/example/echoslice/pkg/models"
)

// oversampleFactor controls how many candidates the reroll draws relative to
// the number of slots it has to fill, so exclusion filtering rarely starves
// the scan.
const oversampleFactor = 5

// Reroller regenerates only the kind='new' slots of an existing queue.
// Review slots keep their exact clips and positions.
type Reroller struct {
	repo    Repository
	builder *Builder
	rng     *rand.Rand
}

// NewReroller creates a reroller that falls back to builder when no queue
// exists yet for the day.
func NewReroller(repo Repository, builder *Builder, rng *rand.Rand) *Reroller {
	return &Reroller{repo: repo, builder: builder, rng: rng}
}

// Reroll redraws the new-clip slots of the day's queue. Positions previously
// holding new entries keep their values; only the clip identities change.
// If the candidate pool runs out, leftover positions stay empty rather than
// being padded with excluded clips.
func (r *Reroller) Reroll(ctx context.Context, day string, limit, reviewTarget int) ([]models.QueueEntry, error) {
	existing, err := r.repo.QueueForDay(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("failed to reroll queue: %w", err)
	}
	if len(existing) == 0 {
		return r.builder.Build(ctx, day, limit, reviewTarget)
	}

	reviewIDs := make(map[int64]struct{})
	var newPositions []int
	for _, e := range existing {
		switch e.Kind {
		case models.KindReview:
			reviewIDs[e.ClipID] = struct{}{}
		case models.KindNew:
			newPositions = append(newPositions, e.Position)
		}
	}
	if len(newPositions) == 0 {
		return existing, nil
	}
	sort.Ints(newPositions)

	done, err := r.repo.DoneToday(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("failed to reroll queue: %w", err)
	}

	candidates, err := r.repo.NeverReviewedClips(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reroll queue: %w", err)
	}
	pool := append([]int64(nil), candidates...)
	r.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if sample := oversampleFactor * len(newPositions); len(pool) > sample {
		pool = pool[:sample]
	}

	picked := make([]int64, 0, len(newPositions))
	seen := make(map[int64]struct{}, len(newPositions))
	for _, id := range pool {
		if len(picked) == len(newPositions) {
			break
		}
		if _, ok := reviewIDs[id]; ok {
			continue
		}
		if _, ok := done[id]; ok {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		picked = append(picked, id)
	}

	// Ascending positions pair with clips in selection order. A short pick
	// leaves the highest positions empty.
	entries := make([]models.QueueEntry, 0, len(picked))
	for i, id := range picked {
		entries = append(entries, models.QueueEntry{
			Day:      day,
			Position: newPositions[i],
			ClipID:   id,
			Kind:     models.KindNew,
		})
	}

	if err := r.repo.ReplaceNewEntries(ctx, day, entries); err != nil {
		return nil, fmt.Errorf("failed to persist reroll: %w", err)
	}
	return r.repo.QueueForDay(ctx, day)
}
