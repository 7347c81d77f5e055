package queue

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/example/echoslice/internal/logger"
	"github.com/example/echoslice/pkg/models"
)

func newTestService(repo Repository, seed int64) *Service {
	return NewService(repo, rand.New(rand.NewSource(seed)), logger.NewNop(), Config{}, fixedNow)
}

func TestGetTodayIsIdempotentWithinADay(t *testing.T) {
	repo := newMemRepo()
	repo.addClips(1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
	svc := newTestService(repo, 1)

	first, err := svc.GetToday(context.Background())
	if err != nil {
		t.Fatalf("GetToday: %v", err)
	}
	second, err := svc.GetToday(context.Background())
	if err != nil {
		t.Fatalf("GetToday: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("item %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestGetTodayRespectsLimitAndKindOrder(t *testing.T) {
	repo := newMemRepo()
	repo.addClips(1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
	addReview(repo, 1, 1, testNow.AddDate(0, 0, -2), testNow.AddDate(0, 0, -1))
	svc := newTestService(repo, 1)

	items, err := svc.GetToday(context.Background())
	if err != nil {
		t.Fatalf("GetToday: %v", err)
	}
	if len(items) > DefaultLimit {
		t.Fatalf("queue length %d exceeds limit %d", len(items), DefaultLimit)
	}
	sawNew := false
	reviews := 0
	for _, it := range items {
		switch it.Kind {
		case models.KindReview:
			if sawNew {
				t.Error("review item after a new item")
			}
			reviews++
		case models.KindNew:
			sawNew = true
		default:
			t.Errorf("unexpected kind %q", it.Kind)
		}
	}
	if reviews > DefaultReviewTarget {
		t.Errorf("%d review items exceed target %d", reviews, DefaultReviewTarget)
	}
}

func TestRecordReviewRejectsScoreOutOfRange(t *testing.T) {
	repo := newMemRepo()
	repo.addClips(1)
	svc := newTestService(repo, 1)

	for _, score := range []int{0, 6, -1} {
		_, err := svc.RecordReview(context.Background(), 1, score)
		if !errors.Is(err, models.ErrInvalidScore) {
			t.Errorf("score %d: got %v, want ErrInvalidScore", score, err)
		}
	}
	if len(repo.reviews) != 0 {
		t.Errorf("%d rows inserted despite invalid score", len(repo.reviews))
	}
}

func TestRecordReviewUnknownClip(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo, 1)

	_, err := svc.RecordReview(context.Background(), 9999, 3)
	if !errors.Is(err, models.ErrClipNotFound) {
		t.Errorf("got %v, want ErrClipNotFound", err)
	}
	if len(repo.reviews) != 0 {
		t.Errorf("%d rows inserted despite unknown clip", len(repo.reviews))
	}
}

func TestRecordReviewComputesNextDueDate(t *testing.T) {
	repo := newMemRepo()
	repo.addClips(1)
	svc := newTestService(repo, 1)

	review, err := svc.RecordReview(context.Background(), 1, 4)
	if err != nil {
		t.Fatalf("RecordReview: %v", err)
	}
	if review.ID == 0 {
		t.Error("review id not assigned")
	}
	if review.ReviewedAt != models.FormatTimestamp(testNow) {
		t.Errorf("reviewedAt = %q, want %q", review.ReviewedAt, models.FormatTimestamp(testNow))
	}
	want := models.FormatTimestamp(testNow.AddDate(0, 0, 7))
	if review.NextReviewAt != want {
		t.Errorf("nextReviewAt = %q, want %q", review.NextReviewAt, want)
	}
}

func TestListTodayReviewsMostRecentFirst(t *testing.T) {
	repo := newMemRepo()
	repo.addClips(1, 2)
	addReview(repo, 1, 3, testNow.Add(-3*time.Hour), testNow.AddDate(0, 0, 3))
	addReview(repo, 2, 5, testNow.Add(-1*time.Hour), testNow.AddDate(0, 0, 14))
	// Yesterday's review must not show up.
	addReview(repo, 1, 2, testNow.AddDate(0, 0, -1), testNow)
	svc := newTestService(repo, 1)

	reviews, err := svc.ListTodayReviews(context.Background())
	if err != nil {
		t.Fatalf("ListTodayReviews: %v", err)
	}
	if len(reviews) != 2 {
		t.Fatalf("got %d reviews, want 2", len(reviews))
	}
	if reviews[0].ClipID != 2 || reviews[1].ClipID != 1 {
		t.Errorf("order = [%d %d], want [2 1] (most recent first)", reviews[0].ClipID, reviews[1].ClipID)
	}
}

// A clip reviewed mid-day keeps its slot in the already-built queue; only
// future builds and rerolls exclude it. This mirrors the original behavior
// on purpose.
func TestMidDayReviewDoesNotEvictQueueEntry(t *testing.T) {
	repo := newMemRepo()
	repo.addClips(1, 2, 3, 4, 5, 6, 7, 8)
	svc := newTestService(repo, 1)

	items, err := svc.GetToday(context.Background())
	if err != nil {
		t.Fatalf("GetToday: %v", err)
	}
	reviewed := items[0].ID
	if _, err := svc.RecordReview(context.Background(), reviewed, 5); err != nil {
		t.Fatalf("RecordReview: %v", err)
	}

	after, err := svc.GetToday(context.Background())
	if err != nil {
		t.Fatalf("GetToday: %v", err)
	}
	found := false
	for _, it := range after {
		if it.ID == reviewed {
			found = true
		}
	}
	if !found {
		t.Error("reviewed clip was evicted from the built queue; entries should persist until rebuild")
	}

	// A reroll, by contrast, must not bring it back into a new slot.
	rerolled, err := svc.RerollToday(context.Background())
	if err != nil {
		t.Fatalf("RerollToday: %v", err)
	}
	for _, it := range rerolled {
		if it.Kind == models.KindNew && it.ID == reviewed {
			t.Error("reroll reused a clip reviewed today")
		}
	}
}
