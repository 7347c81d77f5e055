package queue

import (
	"context"
	"sort"
	"strings"

	"github.com/example/echoslice/pkg/models"
)

// memRepo is an in-memory Repository for the algorithm tests.
type memRepo struct {
	clips        map[int64]models.Clip
	reviews      []models.Review
	queues       map[string][]models.QueueEntry
	nextReviewID int64
}

func newMemRepo() *memRepo {
	return &memRepo{
		clips:  make(map[int64]models.Clip),
		queues: make(map[string][]models.QueueEntry),
	}
}

func (m *memRepo) addClip(id int64) {
	m.clips[id] = models.Clip{ID: id, VideoID: "vid", StartSec: 0, EndSec: 10, Title: "clip"}
}

func (m *memRepo) addClips(ids ...int64) {
	for _, id := range ids {
		m.addClip(id)
	}
}

func (m *memRepo) DoneToday(_ context.Context, day string) (map[int64]struct{}, error) {
	done := make(map[int64]struct{})
	for _, r := range m.reviews {
		if strings.HasPrefix(r.ReviewedAt, day) {
			done[r.ClipID] = struct{}{}
		}
	}
	return done, nil
}

func (m *memRepo) DueReviewClips(_ context.Context, now string) ([]int64, error) {
	latest := make(map[int64]string)
	for _, r := range m.reviews {
		if cur, ok := latest[r.ClipID]; !ok || r.NextReviewAt > cur {
			latest[r.ClipID] = r.NextReviewAt
		}
	}
	var ids []int64
	for id, next := range latest {
		if next <= now {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool {
		if latest[ids[i]] != latest[ids[j]] {
			return latest[ids[i]] < latest[ids[j]]
		}
		return ids[i] < ids[j]
	})
	return ids, nil
}

func (m *memRepo) NeverReviewedClips(_ context.Context) ([]int64, error) {
	reviewed := make(map[int64]struct{})
	for _, r := range m.reviews {
		reviewed[r.ClipID] = struct{}{}
	}
	var ids []int64
	for id := range m.clips {
		if _, ok := reviewed[id]; !ok {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (m *memRepo) QueueForDay(_ context.Context, day string) ([]models.QueueEntry, error) {
	entries := append([]models.QueueEntry(nil), m.queues[day]...)
	sort.Slice(entries, func(i, j int) bool { return entries[i].Position < entries[j].Position })
	return entries, nil
}

func (m *memRepo) QueueItemsForDay(ctx context.Context, day string) ([]models.QueueItem, error) {
	entries, _ := m.QueueForDay(ctx, day)
	items := make([]models.QueueItem, 0, len(entries))
	for _, e := range entries {
		c := m.clips[e.ClipID]
		items = append(items, models.QueueItem{
			ID:       c.ID,
			VideoID:  c.VideoID,
			StartSec: c.StartSec,
			EndSec:   c.EndSec,
			Title:    c.Title,
			Kind:     e.Kind,
		})
	}
	return items, nil
}

func (m *memRepo) ReplaceQueue(_ context.Context, day string, entries []models.QueueEntry) error {
	m.queues[day] = append([]models.QueueEntry(nil), entries...)
	return nil
}

func (m *memRepo) ReplaceNewEntries(_ context.Context, day string, entries []models.QueueEntry) error {
	var kept []models.QueueEntry
	for _, e := range m.queues[day] {
		if e.Kind != models.KindNew {
			kept = append(kept, e)
		}
	}
	m.queues[day] = append(kept, entries...)
	return nil
}

func (m *memRepo) GetClip(_ context.Context, id int64) (*models.Clip, error) {
	c, ok := m.clips[id]
	if !ok {
		return nil, models.ErrClipNotFound
	}
	return &c, nil
}

func (m *memRepo) CreateReview(_ context.Context, review *models.Review) error {
	m.nextReviewID++
	review.ID = m.nextReviewID
	m.reviews = append(m.reviews, *review)
	return nil
}

func (m *memRepo) ReviewsForDay(_ context.Context, day string) ([]models.Review, error) {
	var out []models.Review
	for _, r := range m.reviews {
		if strings.HasPrefix(r.ReviewedAt, day) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ReviewedAt > out[j].ReviewedAt })
	return out, nil
}
