// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPermutationIdentity(t *testing.T) {
	perm := permutation(5, false, nil)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, perm)
}

func TestPermutationEmpty(t *testing.T) {
	assert.Empty(t, permutation(0, false, nil))
	assert.Empty(t, permutation(0, true, nil))
}

func TestPermutationShuffleIsBijection(t *testing.T) {
	perm := permutation(1000, true, nil)
	require.Len(t, perm, 1000)

	seen := make([]bool, 1000)
	for _, idx := range perm {
		require.GreaterOrEqual(t, idx, 0)
		require.Less(t, idx, 1000)
		require.False(t, seen[idx], "index %d appears twice", idx)
		seen[idx] = true
	}
}

func TestPermutationSeeded(t *testing.T) {
	seed := int64(7)
	first := permutation(100, true, &seed)
	second := permutation(100, true, &seed)
	assert.Equal(t, first, second, "seeded permutations are reproducible")
}
