package spaced_repetition

import (
	"testing"
	"time"
)

func TestIntervalDays(t *testing.T) {
	tests := []struct {
		score int
		want  int
	}{
		{1, 1},
		{2, 1},
		{3, 3}, // boundary: 2 -> 3 switches from 1 to 3 days
		{4, 7},
		{5, 14},
		{6, 14}, // above range behaves like a perfect recall
		{0, 1},  // below range behaves like a failed recall
	}
	for _, tt := range tests {
		if got := IntervalDays(tt.score); got != tt.want {
			t.Errorf("IntervalDays(%d) = %d, want %d", tt.score, got, tt.want)
		}
	}
}

func TestNextReviewAt(t *testing.T) {
	now := time.Date(2024, 3, 10, 15, 4, 5, 0, time.UTC)

	got := NextReviewAt(1, now)
	if want := now.AddDate(0, 0, 1); !got.Equal(want) {
		t.Errorf("NextReviewAt(1) = %v, want %v", got, want)
	}
	got = NextReviewAt(5, now)
	if want := now.AddDate(0, 0, 14); !got.Equal(want) {
		t.Errorf("NextReviewAt(5) = %v, want %v", got, want)
	}
}

func TestNextReviewAtNormalizesToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*3600)
	now := time.Date(2024, 3, 10, 23, 0, 0, 0, loc)

	got := NextReviewAt(3, now)
	if got.Location() != time.UTC {
		t.Errorf("NextReviewAt location = %v, want UTC", got.Location())
	}
	if want := now.UTC().AddDate(0, 0, 3); !got.Equal(want) {
		t.Errorf("NextReviewAt(3) = %v, want %v", got, want)
	}
}
