// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package data

import "github.com/born-ml/datakit/tensor"

// Batch is one materialized group of samples: normalized pixel intensities of
// shape [n, 1, height, width] and int64 labels of shape [n]. Both tensors are
// owned by the Dataset that built them and are immutable after construction.
type Batch struct {
	Data   *tensor.RawTensor
	Labels *tensor.RawTensor
}

// Len returns the number of samples in the batch.
func (b Batch) Len() int {
	return b.Labels.Shape()[0]
}

// release drops the batch's references to its tensors.
func (b Batch) release() {
	b.Data.Release()
	b.Labels.Release()
}

// Transform replaces a batch's data tensor during construction, e.g. with an
// augmented copy. It must return a tensor it owns: either its input (possibly
// mutated in place) or a freshly allocated one. When a different tensor comes
// back the builder releases the input immediately after the call, so the
// transform must not release it and must not keep a reference to it.
type Transform func(*tensor.RawTensor) (*tensor.RawTensor, error)
