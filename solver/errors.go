// SPDX-License-Identifier: MIT

package solver

import "errors"

var (
	// ErrEmptyProblem is returned when a Request has neither text nor an upload.
	ErrEmptyProblem = errors.New("solver: enter a problem or upload an image")

	// ErrUnsupportedFile is returned by EncodeUpload for anything but images and PDFs.
	ErrUnsupportedFile = errors.New("solver: unsupported file, upload an image or PDF")

	// ErrNotConfigured is returned when a client has no API key.
	ErrNotConfigured = errors.New("solver: API key not configured")

	// ErrRateLimited maps an upstream 429.
	ErrRateLimited = errors.New("Rate limit exceeded. Please try again shortly.")

	// ErrUsageLimit maps an upstream 402.
	ErrUsageLimit = errors.New("Usage limit reached. Please add credits.")

	// ErrUpstream covers every other upstream failure.
	ErrUpstream = errors.New("solver: upstream error")
)
