package models

// Clip represents a bounded segment of a source video used as a review unit.
// Clip metadata is immutable once created.
type Clip struct {
	ID       int64  `json:"id" db:"id"`
	VideoID  string `json:"videoId" db:"video_id"`
	StartSec int    `json:"startSec" db:"start_sec"`
	EndSec   int    `json:"endSec" db:"end_sec"`
	Title    string `json:"title" db:"title"`
}
