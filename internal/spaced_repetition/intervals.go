// Package spaced_repetition maps review scores to the next due date.
//
// The schedule is a fixed score-to-interval table rather than a full SM-2
// style algorithm: clips are short and the app favors predictable intervals
// over per-item easiness tracking.
package spaced_repetition

import "time"

// Review intervals in days per score band.
const (
	intervalFail = 1  // score 1-2
	intervalHard = 3  // score 3
	intervalGood = 7  // score 4
	intervalEasy = 14 // score 5
)

// IntervalDays returns the review interval in days for a score. Scores are
// expected to be 1-5; values below the range behave like a failed recall and
// values above like a perfect one.
func IntervalDays(score int) int {
	switch {
	case score <= 2:
		return intervalFail
	case score == 3:
		return intervalHard
	case score == 4:
		return intervalGood
	default:
		return intervalEasy
	}
}

// NextReviewAt returns the instant the clip is due again after being scored
// at now. Pure and deterministic given now.
func NextReviewAt(score int, now time.Time) time.Time {
	return now.UTC().AddDate(0, 0, IntervalDays(score))
}
