package view

import "errors"

// Buffer errors.
var (
	// ErrSelectionOverlap indicates a new selection intersects an
	// existing one. The render algorithm requires disjoint selections,
	// so overlapping additions are rejected outright.
	ErrSelectionOverlap = errors.New("selection overlaps an existing selection")
)
