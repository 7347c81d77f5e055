package models

// Review is one completed recall event for a clip. Rows are append-only:
// a review is never updated or deleted after creation.
type Review struct {
	ID           int64  `json:"id" db:"id"`
	ClipID       int64  `json:"clipId" db:"clip_id"`
	Score        int    `json:"score" db:"score"` // 1-5 recall quality
	ReviewedAt   string `json:"reviewedAt" db:"reviewed_at"`
	NextReviewAt string `json:"nextReviewAt" db:"next_review_at"`
}
