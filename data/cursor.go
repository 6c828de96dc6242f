// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package data

// beforeFirst is the cursor position before the first Next call.
const beforeFirst = -1

// Cursor is a restartable, single-pass iterator over a dataset's batch
// sequence. It starts before the first batch: call Next to advance, Batch to
// read the current element, Reset to start over. Restarting is free because
// the underlying batches are already materialized.
//
// A Cursor is not safe for concurrent use; create one per goroutine instead.
type Cursor struct {
	ds  *Dataset
	pos int
}

// Next advances the cursor and reports whether it reached a valid batch.
// Once it has returned false the cursor stays exhausted until Reset.
func (c *Cursor) Next() bool {
	if c.pos+1 < len(c.ds.batches) {
		c.pos++
		return true
	}
	c.pos = len(c.ds.batches) // saturate: repeated Next stays exhausted
	return false
}

// Batch returns the batch at the current position. It fails with
// ErrInvalidCursor before the first Next and after exhaustion, and with
// ErrDisposed once the dataset has been closed.
func (c *Cursor) Batch() (Batch, error) {
	if c.ds.disposed.Load() {
		return Batch{}, ErrDisposed
	}
	if c.pos < 0 || c.pos >= len(c.ds.batches) {
		return Batch{}, ErrInvalidCursor
	}
	return c.ds.batches[c.pos], nil
}

// Reset rewinds the cursor to before the first batch. A full re-iteration
// afterwards yields the exact same batch sequence.
func (c *Cursor) Reset() {
	c.pos = beforeFirst
}
