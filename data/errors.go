// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package data

import "errors"

var (
	// ErrBatchSize indicates a non-positive batch size was requested.
	ErrBatchSize = errors.New("data: batch size must be positive")
	// ErrCountMismatch indicates the label count and sample count disagree.
	ErrCountMismatch = errors.New("data: label count does not match sample count")
	// ErrInvalidCursor indicates Batch was called on a cursor that is not
	// positioned on a batch (before the first Next, or after exhaustion).
	ErrInvalidCursor = errors.New("data: cursor is not positioned on a batch")
	// ErrDisposed indicates a Dataset was used after Close released its buffers.
	ErrDisposed = errors.New("data: dataset has been released")
)
