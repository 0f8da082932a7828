// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the ssz-merkle library.

package sszmerkle

import (
	"crypto/sha256"
	"testing"
)

func TestZeroHashTableChain(t *testing.T) {
	if zeroHashes[0] != (Node{}) {
		t.Fatal("entry 0 must be the zero chunk")
	}

	// every entry is the hash of the previous entry concatenated with itself
	var pair [2 * BytesPerChunk]byte
	for depth := 1; depth < MaxMerkleTreeDepth; depth++ {
		copy(pair[:BytesPerChunk], zeroHashes[depth-1][:])
		copy(pair[BytesPerChunk:], zeroHashes[depth-1][:])
		if zeroHashes[depth] != Node(sha256.Sum256(pair[:])) {
			t.Fatalf("entry %v breaks the generated chain", depth)
		}
	}
}

func TestZeroHashKnownValues(t *testing.T) {
	tests := []struct {
		depth int
		hash  string
	}{
		{1, "0xf5a5fd42d16a20302798ef6ed309979b43003d2320d9f0e8ea9831a92759fb4b"},
		{2, "0xdb56114e00fdd4c1f85c892bf35ac9a89289aaecb1ebd0a96cde606a748b5d71"},
		{10, "0xffff0ad7e659772f9534c195c815efc4014ef1e1daed4404c06385d11192e92b"},
		{63, "0xecc502c9b1145f3950cb7d3e3842446f81a4f0df1df537cee139ef64ea984bd9"},
	}
	for _, test := range tests {
		var want Node
		copy(want[:], fromHex(test.hash))
		if got := ZeroHash(test.depth); got != want {
			t.Errorf("ZeroHash(%v) = %v, want %v", test.depth, got, want)
		}
	}
}
