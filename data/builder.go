// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package data

import (
	"fmt"

	"github.com/born-ml/datakit/tensor"
)

// buildBatches walks the permutation in windows of batchSize and materializes
// one Batch per window. The final window may be shorter; it is emitted as
// long as it holds at least one sample, so window lengths always sum to
// payload.Count. On any failure every tensor allocated so far is released
// before returning.
func buildBatches(p *Payload, perm []int, batchSize int, cfg *config) ([]Batch, error) {
	pixels := p.Height * p.Width
	batches := make([]Batch, 0, (p.Count+batchSize-1)/batchSize)

	ok := false
	defer func() {
		if !ok {
			releaseBatches(batches)
		}
	}()

	for start := 0; start < p.Count; start += batchSize {
		end := min(start+batchSize, p.Count)
		n := end - start

		dataT, err := tensor.NewRaw(tensor.Shape{n, 1, p.Height, p.Width}, tensor.Float32, cfg.device)
		if err != nil {
			return nil, fmt.Errorf("data: allocate batch %d data: %w", len(batches), err)
		}
		labelsT, err := tensor.NewRaw(tensor.Shape{n}, tensor.Int64, cfg.device)
		if err != nil {
			dataT.Release()
			return nil, fmt.Errorf("data: allocate batch %d labels: %w", len(batches), err)
		}

		dst := dataT.AsFloat32()
		labels := labelsT.AsInt64()
		for j := 0; j < n; j++ {
			idx := perm[start+j]
			src := p.Images[idx*pixels : (idx+1)*pixels]
			row := dst[j*pixels : (j+1)*pixels]
			for k, v := range src {
				// Raw byte intensities land in [0, 1).
				row[k] = float32(v) / 256.0
			}
			labels[j] = int64(p.Labels[idx])
		}

		if cfg.transform != nil {
			out, err := cfg.transform(dataT)
			if err != nil {
				dataT.Release()
				labelsT.Release()
				return nil, fmt.Errorf("data: transform batch %d: %w", len(batches), err)
			}
			if out != dataT {
				dataT.Release()
			}
			dataT = out
		}

		batches = append(batches, Batch{Data: dataT, Labels: labelsT})
	}

	ok = true
	return batches, nil
}

// releaseBatches releases every tensor held by the given batches.
func releaseBatches(batches []Batch) {
	for _, b := range batches {
		b.release()
	}
}
