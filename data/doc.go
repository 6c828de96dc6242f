// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package data implements the in-memory dataset pipeline of datakit: loading
// a labeled sample payload through a pluggable Source, ordering samples,
// materializing fixed-size batches as numeric buffers, and iterating them
// through a restartable cursor.
//
// # Pipeline
//
// Construction is a single synchronous pass:
//
//	Source.Load → Payload.Validate → permutation → batch materialization
//
// Every batch is built up front; iteration never touches the input files
// again, which makes restarts free. The Dataset exclusively owns all numeric
// buffers it materialized and releases them in Close.
//
// # Usage
//
//	ds, err := data.New(src, 32, data.WithShuffle())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer ds.Close()
//
//	cur, err := ds.Cursor()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for cur.Next() {
//	    batch, err := cur.Batch()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    // feed batch.Data / batch.Labels to the training step
//	}
//
// # Concurrency
//
// A Dataset is read-only after construction, so any number of cursors may
// iterate it concurrently from different goroutines. An individual Cursor is
// not safe for concurrent use; give each goroutine its own.
package data
