// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package data

import "github.com/born-ml/datakit/tensor"

// config collects construction settings with their defaults: deterministic
// order, CPU placement, no transform.
type config struct {
	shuffle   bool
	seed      *int64
	device    tensor.Device
	transform Transform
}

// Option configures Dataset construction.
type Option func(*config)

// WithShuffle draws a fresh uniformly random sample order for this dataset.
// Without it samples are traversed in original file order, which evaluation
// passes rely on.
func WithShuffle() Option {
	return func(c *config) {
		c.shuffle = true
	}
}

// WithSeed makes a shuffled order reproducible across constructions.
// It has no effect unless WithShuffle is also given.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = &seed
	}
}

// WithDevice sets the placement tag forwarded to the buffer allocator.
// The default is tensor.CPU.
func WithDevice(device tensor.Device) Option {
	return func(c *config) {
		c.device = device
	}
}

// WithTransform applies fn to every batch's data tensor during construction.
// See Transform for the ownership contract.
func WithTransform(fn Transform) Option {
	return func(c *config) {
		c.transform = fn
	}
}

func newConfig(opts []Option) *config {
	cfg := &config{device: tensor.CPU}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
