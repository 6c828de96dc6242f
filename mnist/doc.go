// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package mnist loads MNIST-style IDX dataset splits into batched datasets.
//
// A split is a pair of files in one directory, named by a prefix plus fixed
// suffixes: <prefix>-images-idx3-ubyte and <prefix>-labels-idx1-ubyte. The
// official dataset uses the "train" and "t10k" prefixes.
//
//	ds, err := mnist.Open("testdata/mnist", mnist.TrainPrefix, 32, data.WithShuffle())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer ds.Close()
package mnist
