// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package data

import "math/rand"

// permutation returns the traversal order over n sample indices: the identity
// order, or a uniformly random bijection when shuffling is enabled. A nil
// seed draws a fresh permutation per call.
func permutation(n int, shuffle bool, seed *int64) []int {
	if !shuffle {
		perm := make([]int, n)
		for i := range perm {
			perm[i] = i
		}
		return perm
	}
	if seed != nil {
		rng := rand.New(rand.NewSource(*seed)) //nolint:gosec // G404: sample ordering, not cryptography
		return rng.Perm(n)
	}
	return rand.Perm(n) //nolint:gosec // G404: sample ordering, not cryptography
}
