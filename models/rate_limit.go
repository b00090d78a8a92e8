// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The EasyLearn Authors

package models

import "time"

// RateLimitWindow is the state of one client's fixed counting window as
// returned by a window store after recording a hit.
type RateLimitWindow struct {
	// Hits is the number of requests counted in the current window,
	// including the one just recorded.
	Hits int64

	// ResetAt is the moment the current window ends and the counter
	// starts again from zero.
	ResetAt time.Time
}

// RateLimitDecision is the admission verdict for a single request.
type RateLimitDecision struct {
	// Allowed reports whether the request may proceed.
	Allowed bool

	// Limit is the maximum number of requests per window.
	Limit int64

	// Remaining is how many more requests the client may make before the
	// window resets. Never negative.
	Remaining int64

	// ResetAt is when the client's window ends.
	ResetAt time.Time

	// RetryAfter is the time left until ResetAt, rounded up to whole
	// seconds. Zero when Allowed is true.
	RetryAfter time.Duration
}
