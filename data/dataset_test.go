// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package data

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/datakit/tensor"
)

// memSource serves a fixed payload, or a fixed error.
type memSource struct {
	payload *Payload
	err     error
}

func (m *memSource) Load() (*Payload, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.payload, nil
}

// indexPayload builds a payload of n hxw samples where sample i is filled
// with byte i and labeled i, so batch contents reveal traversal order.
func indexPayload(n, h, w int) *Payload {
	images := make([]byte, n*h*w)
	labels := make([]byte, n)
	for i := 0; i < n; i++ {
		labels[i] = byte(i)
		for j := 0; j < h*w; j++ {
			images[i*h*w+j] = byte(i)
		}
	}
	return &Payload{Count: n, Height: h, Width: w, Images: images, Labels: labels}
}

// collectLabels drains a fresh cursor and returns all labels in batch order.
func collectLabels(t *testing.T, ds *Dataset) []int64 {
	t.Helper()
	cur, err := ds.Cursor()
	require.NoError(t, err)

	var out []int64
	for cur.Next() {
		batch, err := cur.Batch()
		require.NoError(t, err)
		out = append(out, batch.Labels.AsInt64()...)
	}
	return out
}

func TestNewBatchLengths(t *testing.T) {
	tests := []struct {
		name      string
		count     int
		batchSize int
		lengths   []int
	}{
		{"exact multiple", 6, 3, []int{3, 3}},
		{"partial final batch", 7, 3, []int{3, 3, 1}},
		{"single oversized batch", 2, 5, []int{2}},
		{"batch size one", 3, 1, []int{1, 1, 1}},
		{"empty dataset", 0, 4, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, err := New(&memSource{payload: indexPayload(tt.count, 2, 2)}, tt.batchSize)
			require.NoError(t, err)
			defer ds.Close()

			assert.Equal(t, tt.count, ds.Size())
			assert.Equal(t, tt.batchSize, ds.BatchSize())
			require.Equal(t, len(tt.lengths), ds.NumBatches())

			cur, err := ds.Cursor()
			require.NoError(t, err)

			total := 0
			for i := 0; cur.Next(); i++ {
				batch, err := cur.Batch()
				require.NoError(t, err)
				assert.Equal(t, tt.lengths[i], batch.Len())
				assert.NotZero(t, batch.Len(), "no batch may be empty")
				total += batch.Len()
			}
			assert.Equal(t, ds.Size(), total, "batch lengths must sum to dataset size")
		})
	}
}

func TestNewOrderedTraversal(t *testing.T) {
	ds, err := New(&memSource{payload: indexPayload(10, 2, 3)}, 4)
	require.NoError(t, err)
	defer ds.Close()

	labels := collectLabels(t, ds)
	require.Len(t, labels, 10)
	for i, l := range labels {
		assert.Equal(t, int64(i), l, "unshuffled traversal must be in ascending original order")
	}
}

func TestNewShuffleIsBijection(t *testing.T) {
	ds, err := New(&memSource{payload: indexPayload(100, 2, 2)}, 7, WithShuffle())
	require.NoError(t, err)
	defer ds.Close()

	labels := collectLabels(t, ds)
	require.Len(t, labels, 100)

	seen := make(map[int64]bool, 100)
	for _, l := range labels {
		seen[l] = true
	}
	assert.Len(t, seen, 100, "every original index must appear exactly once")
}

func TestNewSeededShuffleIsReproducible(t *testing.T) {
	build := func() []int64 {
		ds, err := New(&memSource{payload: indexPayload(50, 2, 2)}, 8, WithShuffle(), WithSeed(42))
		require.NoError(t, err)
		defer ds.Close()
		return collectLabels(t, ds)
	}

	assert.Equal(t, build(), build(), "same seed must give the same traversal order")
}

func TestNewNormalization(t *testing.T) {
	payload := &Payload{
		Count: 1, Height: 2, Width: 2,
		Images: []byte{0, 128, 255, 64},
		Labels: []byte{9},
	}
	ds, err := New(&memSource{payload: payload}, 1)
	require.NoError(t, err)
	defer ds.Close()

	cur, err := ds.Cursor()
	require.NoError(t, err)
	require.True(t, cur.Next())
	batch, err := cur.Batch()
	require.NoError(t, err)

	assert.True(t, batch.Data.Shape().Equal(tensor.Shape{1, 1, 2, 2}))
	pixels := batch.Data.AsFloat32()
	assert.Equal(t, []float32{0, 128.0 / 256.0, 255.0 / 256.0, 64.0 / 256.0}, pixels)
	for _, v := range pixels {
		assert.GreaterOrEqual(t, v, float32(0))
		assert.Less(t, v, float32(1), "normalized intensities stay below 1")
	}
	assert.Equal(t, []int64{9}, batch.Labels.AsInt64())
}

func TestNewPartialFinalBatchContents(t *testing.T) {
	payload := &Payload{
		Count: 4, Height: 2, Width: 2,
		Images: []byte{
			0, 128, 255, 64,
			10, 20, 30, 40,
			5, 5, 5, 5,
			200, 200, 200, 200,
		},
		Labels: []byte{3, 1, 4, 1},
	}
	ds, err := New(&memSource{payload: payload}, 3)
	require.NoError(t, err)
	defer ds.Close()

	require.Equal(t, 2, ds.NumBatches())

	cur, err := ds.Cursor()
	require.NoError(t, err)

	require.True(t, cur.Next())
	first, err := cur.Batch()
	require.NoError(t, err)
	assert.Equal(t, 3, first.Len())
	assert.Equal(t, []int64{3, 1, 4}, first.Labels.AsInt64())
	assert.Equal(t, float32(0), first.Data.AsFloat32()[0])

	require.True(t, cur.Next())
	last, err := cur.Batch()
	require.NoError(t, err)
	assert.Equal(t, 1, last.Len())
	assert.Equal(t, []int64{1}, last.Labels.AsInt64())

	assert.False(t, cur.Next())
}

func TestNewCountMismatch(t *testing.T) {
	payload := indexPayload(4, 2, 2)
	payload.Labels = payload.Labels[:3]

	ds, err := New(&memSource{payload: payload}, 2)
	assert.Nil(t, ds, "no partial dataset on mismatch")
	require.ErrorIs(t, err, ErrCountMismatch)
}

func TestNewBadBatchSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		_, err := New(&memSource{payload: indexPayload(4, 2, 2)}, size)
		assert.ErrorIs(t, err, ErrBatchSize)
	}
}

func TestNewSourceErrorPropagates(t *testing.T) {
	boom := errors.New("disk gone")
	_, err := New(&memSource{err: boom}, 2)
	require.ErrorIs(t, err, boom)
}

func TestNewTransformPerBatch(t *testing.T) {
	calls := 0
	double := func(data *tensor.RawTensor) (*tensor.RawTensor, error) {
		calls++
		values := data.AsFloat32()
		for i := range values {
			values[i] *= 2
		}
		return data, nil
	}

	payload := indexPayload(5, 2, 2) // sample i filled with byte i
	ds, err := New(&memSource{payload: payload}, 2, WithTransform(double))
	require.NoError(t, err)
	defer ds.Close()

	assert.Equal(t, 3, calls, "transform runs once per batch")

	cur, err := ds.Cursor()
	require.NoError(t, err)
	require.True(t, cur.Next())
	batch, err := cur.Batch()
	require.NoError(t, err)
	// Sample 1 is filled with byte 1: 2 * 1/256.
	assert.Equal(t, float32(2.0/256.0), batch.Data.AsFloat32()[4])
}

func TestNewTransformReplacesTensor(t *testing.T) {
	flatten := func(data *tensor.RawTensor) (*tensor.RawTensor, error) {
		n := data.Shape()[0]
		out, err := data.View(tensor.Shape{n, data.NumElements() / n})
		if err != nil {
			return nil, err
		}
		return out, nil
	}

	ds, err := New(&memSource{payload: indexPayload(4, 2, 2)}, 2, WithTransform(flatten))
	require.NoError(t, err)
	defer ds.Close()

	cur, err := ds.Cursor()
	require.NoError(t, err)
	require.True(t, cur.Next())
	batch, err := cur.Batch()
	require.NoError(t, err)
	assert.True(t, batch.Data.Shape().Equal(tensor.Shape{2, 4}), "builder keeps the returned tensor")
}

func TestNewTransformError(t *testing.T) {
	boom := errors.New("augmentation failed")
	fail := func(*tensor.RawTensor) (*tensor.RawTensor, error) { return nil, boom }

	ds, err := New(&memSource{payload: indexPayload(4, 2, 2)}, 2, WithTransform(fail))
	assert.Nil(t, ds)
	require.ErrorIs(t, err, boom)
}

func TestDatasetCloseIsIdempotent(t *testing.T) {
	ds, err := New(&memSource{payload: indexPayload(4, 2, 2)}, 2)
	require.NoError(t, err)

	require.NoError(t, ds.Close())
	require.NoError(t, ds.Close(), "second Close is a no-op")
}

func TestDatasetUseAfterClose(t *testing.T) {
	ds, err := New(&memSource{payload: indexPayload(4, 2, 2)}, 2)
	require.NoError(t, err)

	cur, err := ds.Cursor()
	require.NoError(t, err)
	require.True(t, cur.Next())

	require.NoError(t, ds.Close())

	_, err = ds.Cursor()
	assert.ErrorIs(t, err, ErrDisposed)

	_, err = cur.Batch()
	assert.ErrorIs(t, err, ErrDisposed)
}

func TestPayloadValidate(t *testing.T) {
	tests := []struct {
		name    string
		payload Payload
		wantErr error
	}{
		{"valid", Payload{Count: 2, Height: 1, Width: 2, Images: make([]byte, 4), Labels: make([]byte, 2)}, nil},
		{"empty", Payload{}, nil},
		{"label mismatch", Payload{Count: 2, Height: 1, Width: 2, Images: make([]byte, 4), Labels: make([]byte, 1)}, ErrCountMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.payload.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}

	short := Payload{Count: 2, Height: 2, Width: 2, Images: make([]byte, 7), Labels: make([]byte, 2)}
	assert.Error(t, short.Validate(), "truncated image payload must not validate")
}
