// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package data

import (
	"fmt"
	"sync/atomic"
)

// Dataset is an immutable, fully materialized batch sequence. It exclusively
// owns every numeric buffer it built; Close releases them all. After Close
// any checked operation fails with ErrDisposed.
type Dataset struct {
	batches   []Batch
	size      int
	batchSize int
	disposed  atomic.Bool
}

// New constructs a Dataset from a Source. It is the single synchronous point
// where parsing, ordering and batch materialization happen: the source is
// loaded and validated, a traversal order is drawn, and every batch is built
// in memory before New returns. Nothing is read lazily afterwards.
//
// Construction failures release every buffer allocated on the way and return
// no partial dataset.
func New(src Source, batchSize int, opts ...Option) (*Dataset, error) {
	if batchSize < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBatchSize, batchSize)
	}
	cfg := newConfig(opts)

	payload, err := src.Load()
	if err != nil {
		return nil, err
	}
	if err := payload.Validate(); err != nil {
		return nil, err
	}

	perm := permutation(payload.Count, cfg.shuffle, cfg.seed)
	batches, err := buildBatches(payload, perm, batchSize, cfg)
	if err != nil {
		return nil, err
	}

	return &Dataset{
		batches:   batches,
		size:      payload.Count,
		batchSize: batchSize,
	}, nil
}

// Size returns the total number of samples across all batches.
func (d *Dataset) Size() int {
	return d.size
}

// BatchSize returns the configured batch size. The final batch may hold
// fewer samples.
func (d *Dataset) BatchSize() int {
	return d.batchSize
}

// NumBatches returns the number of materialized batches.
func (d *Dataset) NumBatches() int {
	return len(d.batches)
}

// Cursor returns a fresh cursor positioned before the first batch. Any number
// of cursors may iterate the same dataset independently.
func (d *Dataset) Cursor() (*Cursor, error) {
	if d.disposed.Load() {
		return nil, ErrDisposed
	}
	return &Cursor{ds: d, pos: beforeFirst}, nil
}

// Close releases every buffer the dataset owns. It is idempotent: the second
// and later calls are no-ops. Batches obtained before Close must not be used
// afterwards.
func (d *Dataset) Close() error {
	if !d.disposed.CompareAndSwap(false, true) {
		return nil
	}
	releaseBatches(d.batches)
	d.batches = nil
	return nil
}
