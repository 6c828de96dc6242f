// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package idx

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// Images is a decoded IDX image file: Count samples of Height x Width pixels,
// one byte per pixel, row-major.
type Images struct {
	Count  int
	Height int
	Width  int
	Pixels []byte
}

// Labels is a decoded IDX label file: one byte per sample.
type Labels struct {
	Count  int
	Values []byte
}

// DecodeImages reads an IDX image stream: magic, count, rows and cols as
// big-endian int32, then exactly count*rows*cols payload bytes. The magic
// value is consumed without validation.
func DecodeImages(r io.Reader) (*Images, error) {
	var magic, count, rows, cols int32
	for _, field := range []struct {
		name string
		dst  *int32
	}{
		{"magic", &magic},
		{"count", &count},
		{"rows", &rows},
		{"cols", &cols},
	} {
		if err := binary.Read(r, binary.BigEndian, field.dst); err != nil {
			return nil, fmt.Errorf("idx: read image %s: %w", field.name, err)
		}
	}
	if count < 0 || rows < 0 || cols < 0 {
		return nil, fmt.Errorf("idx: invalid image header: count=%d rows=%d cols=%d", count, rows, cols)
	}

	pixels := make([]byte, int(count)*int(rows)*int(cols))
	if _, err := io.ReadFull(r, pixels); err != nil {
		return nil, fmt.Errorf("idx: read image payload: %w", err)
	}

	return &Images{
		Count:  int(count),
		Height: int(rows),
		Width:  int(cols),
		Pixels: pixels,
	}, nil
}

// DecodeLabels reads an IDX label stream: magic and count as big-endian
// int32, then exactly count label bytes. The magic value is consumed without
// validation.
func DecodeLabels(r io.Reader) (*Labels, error) {
	var magic, count int32
	if err := binary.Read(r, binary.BigEndian, &magic); err != nil {
		return nil, fmt.Errorf("idx: read label magic: %w", err)
	}
	if err := binary.Read(r, binary.BigEndian, &count); err != nil {
		return nil, fmt.Errorf("idx: read label count: %w", err)
	}
	if count < 0 {
		return nil, fmt.Errorf("idx: invalid label header: count=%d", count)
	}

	values := make([]byte, int(count))
	if _, err := io.ReadFull(r, values); err != nil {
		return nil, fmt.Errorf("idx: read label payload: %w", err)
	}

	return &Labels{Count: int(count), Values: values}, nil
}

// ReadImages decodes the IDX image file at path.
func ReadImages(path string) (*Images, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return DecodeImages(file)
}

// ReadLabels decodes the IDX label file at path.
func ReadLabels(path string) (*Labels, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return DecodeLabels(file)
}
