// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the numeric buffer type consumed by the datakit
// loading pipeline.
//
// The package is deliberately small: it covers allocation, typed data access,
// zero-copy views and reference-counted release. It performs no math. Compute
// belongs to the framework consuming the batches; datakit only needs a place
// to materialize normalized sample data and labels.
//
// # Basic Usage
//
//	raw, err := tensor.NewRaw(tensor.Shape{32, 1, 28, 28}, tensor.Float32, tensor.CPU)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer raw.Release()
//
//	pixels := raw.AsFloat32() // type-safe view of the underlying buffer
//	pixels[0] = 0.5
//
// # Memory Management
//
// Buffers are reference-counted. Clone shares the buffer and bumps the count;
// Release drops it and frees the memory when the count reaches zero. A
// RawTensor must not be used after its last reference has been released.
package tensor
