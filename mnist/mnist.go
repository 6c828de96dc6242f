// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package mnist

import (
	"fmt"
	"path/filepath"

	"github.com/born-ml/datakit/data"
	"github.com/born-ml/datakit/idx"
)

// Split prefixes of the official MNIST dataset.
const (
	TrainPrefix = "train"
	TestPrefix  = "t10k"
)

// Fixed file name suffixes of the IDX split layout.
const (
	imagesSuffix = "-images-idx3-ubyte"
	labelsSuffix = "-labels-idx1-ubyte"
)

// Source loads one MNIST split as a data.Source. It reads both IDX files
// fully into memory and cross-checks their declared sample counts.
type Source struct {
	dir    string
	prefix string
}

// NewSource returns a source for the split named by prefix inside dir.
func NewSource(dir, prefix string) *Source {
	return &Source{dir: dir, prefix: prefix}
}

// ImagesPath returns the path of the split's image file.
func (s *Source) ImagesPath() string {
	return filepath.Join(s.dir, s.prefix+imagesSuffix)
}

// LabelsPath returns the path of the split's label file.
func (s *Source) LabelsPath() string {
	return filepath.Join(s.dir, s.prefix+labelsSuffix)
}

// Load reads the split's image and label files. A disagreement between the
// two declared counts fails with data.ErrCountMismatch; I/O and format errors
// propagate unchanged.
func (s *Source) Load() (*data.Payload, error) {
	images, err := idx.ReadImages(s.ImagesPath())
	if err != nil {
		return nil, fmt.Errorf("mnist: load images: %w", err)
	}
	labels, err := idx.ReadLabels(s.LabelsPath())
	if err != nil {
		return nil, fmt.Errorf("mnist: load labels: %w", err)
	}
	if images.Count != labels.Count {
		return nil, fmt.Errorf("%w: %d images, %d labels", data.ErrCountMismatch, images.Count, labels.Count)
	}

	return &data.Payload{
		Count:  images.Count,
		Height: images.Height,
		Width:  images.Width,
		Images: images.Pixels,
		Labels: labels.Values,
	}, nil
}

// Open loads the split named by prefix from dir and batches it. It is the
// one-call constructor: shuffle, seed, device placement and a per-batch
// transform are configured through data options.
func Open(dir, prefix string, batchSize int, opts ...data.Option) (*data.Dataset, error) {
	return data.New(NewSource(dir, prefix), batchSize, opts...)
}
