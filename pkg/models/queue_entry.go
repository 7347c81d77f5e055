package models

// Queue entry kinds.
const (
	KindReview = "review"
	KindNew    = "new"
)

// QueueEntry is one slot in a day's queue. For a fixed day, positions form a
// contiguous range starting at 0 and each clip appears at most once.
type QueueEntry struct {
	Day      string `json:"day" db:"day"`
	Position int    `json:"position" db:"position"`
	ClipID   int64  `json:"clipId" db:"clip_id"`
	Kind     string `json:"kind" db:"kind"`
}

// QueueItem is a queue entry joined with its clip metadata, the shape the API
// returns.
type QueueItem struct {
	ID       int64  `json:"id" db:"id"`
	VideoID  string `json:"videoId" db:"video_id"`
	StartSec int    `json:"startSec" db:"start_sec"`
	EndSec   int    `json:"endSec" db:"end_sec"`
	Title    string `json:"title" db:"title"`
	Kind     string `json:"kind" db:"kind"`
}
