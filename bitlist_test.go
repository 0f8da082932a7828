// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the ssz-merkle library.

package sszmerkle_test

import (
	"bytes"
	"errors"
	"testing"

	. "github.com/pk910/ssz-merkle"
	"github.com/prysmaticlabs/go-bitfield"
)

func TestBitlistRoot(t *testing.T) {
	tests := []struct {
		name    string
		bitlist bitfield.Bitlist
		maxBits uint64
		root    string
	}{
		{
			// bits [1, 1, 0], termination bit at position 3
			"three_bits",
			bitfield.Bitlist{0x0b},
			27,
			"0xa8e9d684dceaef6e6a478c2130ee96a72d37aae54289bcb5972f31c027994f5f",
		},
		{
			// 96 set bits over multiple chunks of capacity
			"ninety_six_bits",
			bitfield.Bitlist(append(bytes.Repeat([]byte{0xff}, 12), 0x01)),
			2048,
			"0x62c9204b40aef4df99ac9ca14582fc3a9691048bcaddb0ea213c8a0bf532417a",
		},
		{
			// only the termination bit: an empty bitlist
			"empty",
			bitfield.Bitlist{0x01},
			27,
			"0xf5a5fd42d16a20302798ef6ed309979b43003d2320d9f0e8ea9831a92759fb4b",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			root, err := BitlistRoot(test.bitlist, test.maxBits)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if root != nodeFromHex(test.root) {
				t.Fatalf("unexpected root\ngot:  %v\nwant: %v", root, test.root)
			}
		})
	}
}

func TestBitlistRootErrors(t *testing.T) {
	// missing termination bit
	if _, err := BitlistRoot(bitfield.Bitlist{0x00}, 27); !errors.Is(err, ErrBitlistNotTerminated) {
		t.Fatalf("expected ErrBitlistNotTerminated, got %v", err)
	}
	if _, err := BitlistRoot(bitfield.Bitlist{}, 27); !errors.Is(err, ErrBitlistNotTerminated) {
		t.Fatalf("expected ErrBitlistNotTerminated, got %v", err)
	}

	// more bits than the declared capacity
	bl := bitfield.NewBitlist(64)
	_, err := BitlistRoot(bl, 32)
	limitErr := &InputExceedsLimitError{}
	if !errors.As(err, &limitErr) {
		t.Fatalf("expected *InputExceedsLimitError, got %v", err)
	}
}

func TestBitvectorRoot(t *testing.T) {
	root, err := BitvectorRoot([]byte{0x55, 0x55}, 16)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := nodeFromHex("0x5555000000000000000000000000000000000000000000000000000000000000")
	if root != want {
		t.Fatalf("unexpected root\ngot:  %v\nwant: %v", root, want)
	}

	if _, err := BitvectorRoot([]byte{0x55}, 16); !errors.Is(err, ErrVectorLength) {
		t.Fatalf("expected ErrVectorLength, got %v", err)
	}
}
