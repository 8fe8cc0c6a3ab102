package repository

import "errors"

var (
	// ErrNotFound is wrapped by every lookup that matches no row.
	ErrNotFound = errors.New("not found")
	// ErrVersionConflict means the stored itinerary moved past the version
	// the caller revised.
	ErrVersionConflict = errors.New("version conflict")
)
