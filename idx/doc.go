// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package idx decodes the IDX binary format used by MNIST-style datasets.
//
// An image file carries four big-endian int32 header fields (magic, count,
// rows, cols) followed by count*rows*cols unsigned pixel bytes in row-major
// order. A label file carries two header fields (magic, count) followed by
// count label bytes. The magic value is consumed but not validated; files are
// fully buffered in one synchronous read.
package idx
