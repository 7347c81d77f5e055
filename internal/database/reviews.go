package database

import (
	"context"
	"fmt"

	"github.com/example/echoslice/pkg/models"
)

// CreateReview appends a review row and fills in its id. Reviews are
// immutable; there is no update or delete counterpart.
func (s *Store) CreateReview(ctx context.Context, review *models.Review) error {
	if s.db.DriverName() == "postgres" {
		query := `
			INSERT INTO reviews (clip_id, score, reviewed_at, next_review_at)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`
		return s.db.QueryRowContext(ctx, query,
			review.ClipID, review.Score, review.ReviewedAt, review.NextReviewAt,
		).Scan(&review.ID)
	}

	result, err := s.db.ExecContext(ctx,
		"INSERT INTO reviews (clip_id, score, reviewed_at, next_review_at) VALUES (?, ?, ?, ?)",
		review.ClipID, review.Score, review.ReviewedAt, review.NextReviewAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert ID: %w", err)
	}
	review.ID = id
	return nil
}

// ReviewsForDay returns all reviews whose reviewed_at falls on the given UTC
// day, most recent first.
func (s *Store) ReviewsForDay(ctx context.Context, day string) ([]models.Review, error) {
	var reviews []models.Review
	query := s.db.Rebind(`
		SELECT id, clip_id, score, reviewed_at, next_review_at
		FROM reviews
		WHERE reviewed_at LIKE ?
		ORDER BY reviewed_at DESC
	`)
	err := s.db.SelectContext(ctx, &reviews, query, day+"%")
	if err != nil {
		return nil, fmt.Errorf("failed to get reviews for day: %w", err)
	}
	return reviews, nil
}

// DoneToday returns the set of clip ids with a review on the given UTC day.
func (s *Store) DoneToday(ctx context.Context, day string) (map[int64]struct{}, error) {
	var ids []int64
	query := s.db.Rebind("SELECT DISTINCT clip_id FROM reviews WHERE reviewed_at LIKE ?")
	err := s.db.SelectContext(ctx, &ids, query, day+"%")
	if err != nil {
		return nil, fmt.Errorf("failed to get done-today clips: %w", err)
	}
	done := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		done[id] = struct{}{}
	}
	return done, nil
}

// DueReviewClips returns the ids of reviewed clips whose latest next_review_at
// is at or before now, most overdue first. now uses the stored timestamp
// format, which sorts lexicographically in time order.
func (s *Store) DueReviewClips(ctx context.Context, now string) ([]int64, error) {
	var ids []int64
	query := s.db.Rebind(`
		SELECT clip_id
		FROM reviews
		GROUP BY clip_id
		HAVING MAX(next_review_at) <= ?
		ORDER BY MAX(next_review_at) ASC
	`)
	err := s.db.SelectContext(ctx, &ids, query, now)
	if err != nil {
		return nil, fmt.Errorf("failed to get due clips: %w", err)
	}
	return ids, nil
}
