package market

import "errors"

var (
	// ErrInvalidSegmentKey indicates a segment or plant key could not be parsed
	ErrInvalidSegmentKey = errors.New("invalid segment key")

	// ErrNonNegativeSlope indicates a demand fit with upward-sloping demand
	ErrNonNegativeSlope = errors.New("demand slope must be negative")

	// ErrInvalidPrice indicates a non-positive price
	ErrInvalidPrice = errors.New("price must be positive")
)
