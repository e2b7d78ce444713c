package domain

import "errors"

var (
	// ErrChartNotFound is returned when a chart is not found in the store
	ErrChartNotFound = errors.New("chart not found")

	// ErrScheduleNotFound is returned when a sync schedule is not found
	ErrScheduleNotFound = errors.New("sync schedule not found")

	// ErrExecutionNotFound is returned when a sync execution is not found
	ErrExecutionNotFound = errors.New("sync execution not found")

	// ErrPlatformNotFound is returned when a platform slug resolves to no row
	ErrPlatformNotFound = errors.New("platform not found")

	// ErrTrackNotFound is returned when a track is not found in the store
	ErrTrackNotFound = errors.New("track not found")

	// ErrArtistNotFound is returned when an artist is not found in the store
	ErrArtistNotFound = errors.New("artist not found")

	// ErrInvalidTransition is returned when an execution status change
	// violates the state machine
	ErrInvalidTransition = errors.New("invalid execution status transition")

	// ErrProviderNotFound is returned when the upstream provider has no such
	// entity; the item is skipped, never retried
	ErrProviderNotFound = errors.New("entity not found upstream")

	// ErrProviderRateLimited is returned when the upstream provider rejects a
	// call for rate limiting; the call is retryable
	ErrProviderRateLimited = errors.New("provider rate limited")

	// ErrProviderMalformed is returned when the upstream provider response
	// cannot be decoded; the item is skipped, never retried
	ErrProviderMalformed = errors.New("malformed provider response")
)
