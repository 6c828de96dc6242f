// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package data

import "fmt"

// Payload is a fully buffered labeled dataset: one byte per pixel in
// row-major order, one label byte per sample.
type Payload struct {
	Count  int // number of samples
	Height int // rows per sample
	Width  int // columns per sample

	Images []byte // Count*Height*Width bytes
	Labels []byte // Count bytes
}

// Validate checks the payload's internal consistency.
// A label slice whose length disagrees with Count fails with ErrCountMismatch.
func (p *Payload) Validate() error {
	if p.Count < 0 {
		return fmt.Errorf("data: negative sample count %d", p.Count)
	}
	if p.Count > 0 && (p.Height <= 0 || p.Width <= 0) {
		return fmt.Errorf("data: invalid sample shape %dx%d", p.Height, p.Width)
	}
	if len(p.Labels) != p.Count {
		return fmt.Errorf("%w: %d labels for %d samples", ErrCountMismatch, len(p.Labels), p.Count)
	}
	if want := p.Count * p.Height * p.Width; len(p.Images) != want {
		return fmt.Errorf("data: image payload is %d bytes, want %d", len(p.Images), want)
	}
	return nil
}

// Source loads a dataset's raw material into memory. Implementations are
// format strategies: they own file naming and binary decoding, while the
// batching pipeline stays format-agnostic.
//
// Load is called exactly once per Dataset construction and must fully buffer
// the payload; nothing is streamed during iteration.
type Source interface {
	Load() (*Payload, error)
}
