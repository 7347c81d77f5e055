// Package queue builds and maintains the daily review queue.
//
// The queue for a UTC day mixes clips due for review with never-reviewed
// clips, is persisted on first access so repeated requests within the day are
// stable, and supports rerolling only the new-clip slots.
package queue

import (
	"context"

	"github.com/example/echoslice/pkg/models"
)

// Repository is the storage access the queue algorithms need. Implemented by
// database.Store; tests substitute an in-memory version.
//
// Day parameters use the models.DayLayout format, now parameters the
// models.TimestampLayout format.
type Repository interface {
	// DoneToday returns clip ids with a review on the given UTC day.
	DoneToday(ctx context.Context, day string) (map[int64]struct{}, error)
	// DueReviewClips returns reviewed clips whose latest next_review_at is
	// at or before now, most overdue first.
	DueReviewClips(ctx context.Context, now string) ([]int64, error)
	// NeverReviewedClips returns clips with zero reviews, in stable order.
	NeverReviewedClips(ctx context.Context) ([]int64, error)

	QueueForDay(ctx context.Context, day string) ([]models.QueueEntry, error)
	QueueItemsForDay(ctx context.Context, day string) ([]models.QueueItem, error)
	// ReplaceQueue atomically replaces a day's whole queue.
	ReplaceQueue(ctx context.Context, day string, entries []models.QueueEntry) error
	// ReplaceNewEntries atomically replaces only the kind='new' rows.
	ReplaceNewEntries(ctx context.Context, day string, entries []models.QueueEntry) error

	GetClip(ctx context.Context, id int64) (*models.Clip, error)
	CreateReview(ctx context.Context, review *models.Review) error
	ReviewsForDay(ctx context.Context, day string) ([]models.Review, error)
}
