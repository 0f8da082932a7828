// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the ssz-merkle library.

package sszmerkle

import "github.com/holiman/uint256"

var zeroBytes = make([]byte, 1024)

// AppendZeroPadding appends the specified number of zero bytes to buf
func AppendZeroPadding(buf []byte, count int) []byte {
	for count > 0 {
		toCopy := count
		if toCopy > len(zeroBytes) {
			toCopy = len(zeroBytes)
		}
		buf = append(buf, zeroBytes[:toCopy]...)
		count -= toCopy
	}
	return buf
}

// Serializer is the interface implemented by values that can append their
// SSZ serialization to a buffer. It matches the fastssz MarshalSSZTo surface,
// so generated types satisfy it without adapters.
type Serializer interface {
	MarshalSSZTo(dst []byte) ([]byte, error)
}

// PackBytes right pads buf with zero bytes so its length becomes a multiple
// of BytesPerChunk. An aligned buffer is returned unchanged.
func PackBytes(buf []byte) []byte {
	if rest := len(buf) % BytesPerChunk; rest != 0 {
		buf = AppendZeroPadding(buf, BytesPerChunk-rest)
	}
	return buf
}

// Pack serializes each value in order into a fresh buffer and pads it to a
// multiple of BytesPerChunk. A serializer failure is returned as a
// *SerializationError wrapping the inner error.
func Pack[T Serializer](values []T) ([]byte, error) {
	var buf []byte
	var err error
	for _, value := range values {
		buf, err = value.MarshalSSZTo(buf)
		if err != nil {
			return nil, &SerializationError{Err: err}
		}
	}
	return PackBytes(buf), nil
}

// PackUint64Values packs a uint64 sequence into a chunk aligned buffer.
func PackUint64Values(values []uint64) []byte {
	buf := make([]byte, 0, (len(values)*8+BytesPerChunk-1)/BytesPerChunk*BytesPerChunk)
	for _, v := range values {
		buf = MarshalUint64(buf, v)
	}
	return PackBytes(buf)
}

// PackUint16Values packs a uint16 sequence into a chunk aligned buffer.
func PackUint16Values(values []uint16) []byte {
	buf := make([]byte, 0, (len(values)*2+BytesPerChunk-1)/BytesPerChunk*BytesPerChunk)
	for _, v := range values {
		buf = MarshalUint16(buf, v)
	}
	return PackBytes(buf)
}

// PackBoolValues packs a boolean sequence into a chunk aligned buffer.
func PackBoolValues(values []bool) []byte {
	buf := make([]byte, 0, (len(values)+BytesPerChunk-1)/BytesPerChunk*BytesPerChunk)
	for _, v := range values {
		buf = MarshalBool(buf, v)
	}
	return PackBytes(buf)
}

// PackUint256Values packs a uint256 sequence into a chunk aligned buffer.
// Each value fills exactly one chunk in little endian order.
func PackUint256Values(values []*uint256.Int) []byte {
	buf := make([]byte, 0, len(values)*BytesPerChunk)
	for _, v := range values {
		for _, limb := range v {
			buf = MarshalUint64(buf, limb)
		}
	}
	return buf
}
