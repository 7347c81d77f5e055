package database

import (
	"context"
	"fmt"

	"github.com/example/echoslice/pkg/models"
)

// QueueForDay returns the raw queue entries for a day, ordered by position.
func (s *Store) QueueForDay(ctx context.Context, day string) ([]models.QueueEntry, error) {
	var entries []models.QueueEntry
	query := s.db.Rebind(`
		SELECT day, position, clip_id, kind
		FROM today_queue
		WHERE day = ?
		ORDER BY position
	`)
	err := s.db.SelectContext(ctx, &entries, query, day)
	if err != nil {
		return nil, fmt.Errorf("failed to get queue: %w", err)
	}
	return entries, nil
}

// QueueItemsForDay returns a day's queue joined with clip metadata, ordered
// by position.
func (s *Store) QueueItemsForDay(ctx context.Context, day string) ([]models.QueueItem, error) {
	var items []models.QueueItem
	query := s.db.Rebind(`
		SELECT c.id, c.video_id, c.start_sec, c.end_sec, c.title, q.kind
		FROM today_queue q
		JOIN clips c ON c.id = q.clip_id
		WHERE q.day = ?
		ORDER BY q.position
	`)
	err := s.db.SelectContext(ctx, &items, query, day)
	if err != nil {
		return nil, fmt.Errorf("failed to get queue items: %w", err)
	}
	return items, nil
}

// ReplaceQueue replaces a day's whole queue in one transaction. Any existing
// rows for the day are deleted first, so a racing first-build cannot leave
// two interleaved queues behind.
func (s *Store) ReplaceQueue(ctx context.Context, day string, entries []models.QueueEntry) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, tx.Rebind("DELETE FROM today_queue WHERE day = ?"), day); err != nil {
		return fmt.Errorf("failed to clear queue: %w", err)
	}
	insert := tx.Rebind("INSERT INTO today_queue (day, position, clip_id, kind) VALUES (?, ?, ?, ?)")
	for _, e := range entries {
		if _, err := tx.ExecContext(ctx, insert, e.Day, e.Position, e.ClipID, e.Kind); err != nil {
			return fmt.Errorf("failed to insert queue entry: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit queue: %w", err)
	}
	return nil
}

// ReplaceNewEntries swaps out only the kind='new' rows of a day's queue in
// one transaction. Review rows are untouched. The given entries must reuse
// position values previously held by new rows.
func (s *Store) ReplaceNewEntries(ctx context.Context, day string, entries []models.QueueEntry) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	del := tx.Rebind("DELETE FROM today_queue WHERE day = ? AND kind = ?")
	if _, err := tx.ExecContext(ctx, del, day, models.KindNew); err != nil {
		return fmt.Errorf("failed to clear new entries: %w", err)
	}
	insert := tx.Rebind("INSERT INTO today_queue (day, position, clip_id, kind) VALUES (?, ?, ?, ?)")
	for _, e := range entries {
		if _, err := tx.ExecContext(ctx, insert, e.Day, e.Position, e.ClipID, e.Kind); err != nil {
			return fmt.Errorf("failed to insert queue entry: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit queue: %w", err)
	}
	return nil
}
