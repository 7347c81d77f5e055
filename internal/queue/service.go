package queue

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/example/echoslice/internal/logger"
	"github.com/example/echoslice/internal/spaced_repetition"
	"github.com/example/echoslice/pkg/models"
)

// Default queue shape.
const (
	DefaultLimit        = 5
	DefaultReviewTarget = 2
)

// Config sets the queue shape. Zero values fall back to the defaults.
type Config struct {
	Limit        int
	ReviewTarget int
}

// Service orchestrates queue construction, rerolls and review recording for
// the current UTC day.
type Service struct {
	repo         Repository
	builder      *Builder
	reroller     *Reroller
	now          func() time.Time
	log          *logger.Logger
	limit        int
	reviewTarget int
}

// NewService wires a service around repo. rng seeds all random selection;
// now may be nil to use time.Now.
func NewService(repo Repository, rng *rand.Rand, log *logger.Logger, cfg Config, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	if cfg.Limit <= 0 {
		cfg.Limit = DefaultLimit
	}
	if cfg.ReviewTarget <= 0 {
		cfg.ReviewTarget = DefaultReviewTarget
	}
	builder := NewBuilder(repo, rng, now)
	return &Service{
		repo:         repo,
		builder:      builder,
		reroller:     NewReroller(repo, builder, rng),
		now:          now,
		log:          log,
		limit:        cfg.Limit,
		reviewTarget: cfg.ReviewTarget,
	}
}

// GetToday returns the current UTC day's queue, building and persisting it on
// the first call of the day. Repeated calls within the day return the same
// ordered result.
func (s *Service) GetToday(ctx context.Context) ([]models.QueueItem, error) {
	day := models.FormatDay(s.now())
	items, err := s.repo.QueueItemsForDay(ctx, day)
	if err != nil {
		return nil, err
	}
	if len(items) > 0 {
		return items, nil
	}

	entries, err := s.builder.Build(ctx, day, s.limit, s.reviewTarget)
	if err != nil {
		return nil, err
	}
	s.log.Infow("built today queue", "day", day, "entries", len(entries))
	return s.repo.QueueItemsForDay(ctx, day)
}

// RerollToday redraws the new-clip slots of the current UTC day's queue,
// building the queue first if it does not exist yet.
func (s *Service) RerollToday(ctx context.Context) ([]models.QueueItem, error) {
	day := models.FormatDay(s.now())
	entries, err := s.reroller.Reroll(ctx, day, s.limit, s.reviewTarget)
	if err != nil {
		return nil, err
	}
	s.log.Infow("rerolled today queue", "day", day, "entries", len(entries))
	return s.repo.QueueItemsForDay(ctx, day)
}

// RecordReview validates and appends a review for clipID at the current
// instant. The day's already-built queue is deliberately left untouched: a
// clip reviewed mid-day stays visible in the queue until the next rebuild,
// though the done-today exclusion keeps it out of future builds and rerolls.
func (s *Service) RecordReview(ctx context.Context, clipID int64, score int) (*models.Review, error) {
	if score < 1 || score > 5 {
		return nil, models.ErrInvalidScore
	}
	if _, err := s.repo.GetClip(ctx, clipID); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	review := &models.Review{
		ClipID:       clipID,
		Score:        score,
		ReviewedAt:   models.FormatTimestamp(now),
		NextReviewAt: models.FormatTimestamp(spaced_repetition.NextReviewAt(score, now)),
	}
	if err := s.repo.CreateReview(ctx, review); err != nil {
		return nil, fmt.Errorf("failed to record review: %w", err)
	}
	s.log.Infow("recorded review", "clip_id", clipID, "score", score, "next_review_at", review.NextReviewAt)
	return review, nil
}

// ListTodayReviews returns the current UTC day's reviews, most recent first.
func (s *Service) ListTodayReviews(ctx context.Context) ([]models.Review, error) {
	return s.repo.ReviewsForDay(ctx, models.FormatDay(s.now()))
}
