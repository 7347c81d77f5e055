package models

import "errors"

var (
	// ErrClipNotFound is returned when a referenced clip does not exist.
	ErrClipNotFound = errors.New("clip not found")
	// ErrInvalidScore is returned when a review score is outside 1..5.
	ErrInvalidScore = errors.New("score must be between 1 and 5")
)
