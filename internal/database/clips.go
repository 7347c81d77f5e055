package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/echoslice/pkg/models"
)

// AllClips returns every clip, newest first.
func (s *Store) AllClips(ctx context.Context) ([]models.Clip, error) {
	var clips []models.Clip
	err := s.db.SelectContext(ctx, &clips, "SELECT id, video_id, start_sec, end_sec, title FROM clips ORDER BY id DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to get clips: %w", err)
	}
	return clips, nil
}

// GetClip returns a clip by id, or models.ErrClipNotFound.
func (s *Store) GetClip(ctx context.Context, id int64) (*models.Clip, error) {
	var clip models.Clip
	query := s.db.Rebind("SELECT id, video_id, start_sec, end_sec, title FROM clips WHERE id = ?")
	err := s.db.GetContext(ctx, &clip, query, id)
	if err == sql.ErrNoRows {
		return nil, models.ErrClipNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get clip: %w", err)
	}
	return &clip, nil
}

// CreateClip inserts a new clip and fills in its id.
func (s *Store) CreateClip(ctx context.Context, clip *models.Clip) error {
	if s.db.DriverName() == "postgres" {
		query := `
			INSERT INTO clips (video_id, start_sec, end_sec, title)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`
		return s.db.QueryRowContext(ctx, query, clip.VideoID, clip.StartSec, clip.EndSec, clip.Title).Scan(&clip.ID)
	}

	result, err := s.db.ExecContext(ctx,
		"INSERT INTO clips (video_id, start_sec, end_sec, title) VALUES (?, ?, ?, ?)",
		clip.VideoID, clip.StartSec, clip.EndSec, clip.Title,
	)
	if err != nil {
		return fmt.Errorf("failed to create clip: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert ID: %w", err)
	}
	clip.ID = id
	return nil
}

// NeverReviewedClips returns the ids of clips with zero reviews, in id order.
// Callers randomize the order themselves so selection stays testable.
func (s *Store) NeverReviewedClips(ctx context.Context) ([]int64, error) {
	var ids []int64
	query := `
		SELECT c.id
		FROM clips c
		LEFT JOIN reviews r ON r.clip_id = c.id
		WHERE r.id IS NULL
		ORDER BY c.id
	`
	err := s.db.SelectContext(ctx, &ids, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get never-reviewed clips: %w", err)
	}
	return ids, nil
}
