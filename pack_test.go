// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the ssz-merkle library.

package sszmerkle_test

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/holiman/uint256"
	. "github.com/pk910/ssz-merkle"
)

type testSerializer struct {
	data []byte
	err  error
}

func (s *testSerializer) MarshalSSZTo(dst []byte) ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	return append(dst, s.data...), nil
}

func TestPackBytes(t *testing.T) {
	tests := []struct {
		length int
		want   int
	}{
		{0, 0},
		{1, 32},
		{31, 32},
		{32, 32},
		{33, 64},
		{64, 64},
		{100, 128},
	}
	for _, test := range tests {
		buf := bytes.Repeat([]byte{0xee}, test.length)
		packed := PackBytes(buf)
		if len(packed) != test.want {
			t.Errorf("PackBytes(%v bytes): got length %v, want %v", test.length, len(packed), test.want)
		}
		if !bytes.Equal(packed[:test.length], buf[:test.length]) {
			t.Errorf("PackBytes(%v bytes): payload modified", test.length)
		}
		for _, b := range packed[test.length:] {
			if b != 0 {
				t.Errorf("PackBytes(%v bytes): padding is not zero", test.length)
			}
		}

		// idempotent on aligned buffers
		repacked := PackBytes(append([]byte{}, packed...))
		if !bytes.Equal(repacked, packed) {
			t.Errorf("PackBytes(%v bytes): not idempotent", test.length)
		}
	}
}

func TestPack(t *testing.T) {
	values := []*testSerializer{
		{data: []byte{0x01, 0x00, 0x00, 0x00}},
		{data: []byte{0x02, 0x00, 0x00, 0x00}},
	}
	buf, err := Pack(values)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := make([]byte, 32)
	want[0] = 0x01
	want[4] = 0x02
	if !bytes.Equal(buf, want) {
		t.Fatalf("unexpected buffer\ngot:  0x%x\nwant: 0x%x", buf, want)
	}
}

func TestPackSerializationError(t *testing.T) {
	inner := fmt.Errorf("value out of range")
	values := []*testSerializer{
		{data: []byte{0x01}},
		{err: inner},
	}

	_, err := Pack(values)
	if err == nil {
		t.Fatal("expected error from failing serializer")
	}

	serErr := &SerializationError{}
	if !errors.As(err, &serErr) {
		t.Fatalf("expected *SerializationError, got %T", err)
	}
	// the inner error stays reachable
	if !errors.Is(err, inner) {
		t.Fatalf("inner error lost: %v", err)
	}
}

func TestPackBoolValues(t *testing.T) {
	buf := PackBoolValues([]bool{true, false, false, true})
	if len(buf) != 32 {
		t.Fatalf("expected one chunk, got %v bytes", len(buf))
	}
	want := make([]byte, 32)
	want[0] = 1
	want[3] = 1
	if !bytes.Equal(buf, want) {
		t.Fatalf("unexpected buffer: 0x%x", buf)
	}
}

func TestPackUint64Values(t *testing.T) {
	buf := PackUint64Values([]uint64{1, 2, 3, 4, 5})
	if len(buf) != 64 {
		t.Fatalf("expected two chunks, got %v bytes", len(buf))
	}
	if buf[0] != 1 || buf[8] != 2 || buf[32] != 5 {
		t.Fatalf("unexpected little endian layout: 0x%x", buf)
	}
}

func TestPackUint256Values(t *testing.T) {
	buf := PackUint256Values([]*uint256.Int{uint256.NewInt(68)})
	if len(buf) != 32 {
		t.Fatalf("expected one chunk, got %v bytes", len(buf))
	}

	// one value packs to exactly one chunk, so its root is the chunk itself
	root, err := Merkleize(buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := nodeFromHex("0x4400000000000000000000000000000000000000000000000000000000000000")
	if root != want {
		t.Fatalf("unexpected root\ngot:  %v\nwant: %v", root, want)
	}

	// three identical values pack to three chunks of repeating bytes
	one := new(uint256.Int).SetBytes(bytes.Repeat([]byte{0x01}, 32))
	buf = PackUint256Values([]*uint256.Int{one, one, one})
	if !bytes.Equal(buf, bytes.Repeat([]byte{0x01}, 96)) {
		t.Fatalf("unexpected buffer: 0x%x", buf)
	}
}
