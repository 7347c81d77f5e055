package queue

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/example/echoslice/pkg/models"
)

// Builder constructs a fresh queue for a day. Randomness comes from the
// injected source so tests can seed it.
type Builder struct {
	repo Repository
	rng  *rand.Rand
	now  func() time.Time
}

// NewBuilder creates a builder. now may be nil to use time.Now.
func NewBuilder(repo Repository, rng *rand.Rand, now func() time.Time) *Builder {
	if now == nil {
		now = time.Now
	}
	return &Builder{repo: repo, rng: rng, now: now}
}

// Build selects up to reviewTarget due-review clips (most overdue first) and
// fills the remaining slots up to limit with uniformly random never-reviewed
// clips, then persists the result as the day's queue in one atomic unit.
// Clips already reviewed on day are excluded entirely. A queue shorter than
// limit is not an error.
func (b *Builder) Build(ctx context.Context, day string, limit, reviewTarget int) ([]models.QueueEntry, error) {
	done, err := b.repo.DoneToday(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("failed to build queue: %w", err)
	}

	due, err := b.repo.DueReviewClips(ctx, models.FormatTimestamp(b.now()))
	if err != nil {
		return nil, fmt.Errorf("failed to build queue: %w", err)
	}
	reviewIDs := make([]int64, 0, reviewTarget)
	for _, id := range due {
		if len(reviewIDs) == reviewTarget {
			break
		}
		if _, ok := done[id]; ok {
			continue
		}
		reviewIDs = append(reviewIDs, id)
	}

	slotsLeft := limit - len(reviewIDs)
	if slotsLeft < 0 {
		slotsLeft = 0
	}

	candidates, err := b.repo.NeverReviewedClips(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build queue: %w", err)
	}
	picked := make(map[int64]struct{}, len(reviewIDs))
	for _, id := range reviewIDs {
		picked[id] = struct{}{}
	}
	pool := make([]int64, 0, len(candidates))
	for _, id := range candidates {
		if _, ok := done[id]; ok {
			continue
		}
		if _, ok := picked[id]; ok {
			continue
		}
		pool = append(pool, id)
	}
	b.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if len(pool) > slotsLeft {
		pool = pool[:slotsLeft]
	}

	entries := make([]models.QueueEntry, 0, len(reviewIDs)+len(pool))
	for _, id := range reviewIDs {
		entries = append(entries, models.QueueEntry{
			Day:      day,
			Position: len(entries),
			ClipID:   id,
			Kind:     models.KindReview,
		})
	}
	for _, id := range pool {
		entries = append(entries, models.QueueEntry{
			Day:      day,
			Position: len(entries),
			ClipID:   id,
			Kind:     models.KindNew,
		})
	}

	if err := b.repo.ReplaceQueue(ctx, day, entries); err != nil {
		return nil, fmt.Errorf("failed to persist queue: %w", err)
	}
	return entries, nil
}
