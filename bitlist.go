// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the ssz-merkle library.

package sszmerkle

import (
	"github.com/prysmaticlabs/go-bitfield"
)

// BitlistRoot returns the hash tree root of a bitlist with the given bit
// capacity. The termination bit is stripped from the content before
// merkleization and the current bit length is mixed into the content root.
func BitlistRoot(bl bitfield.Bitlist, maxBits uint64) (Node, error) {
	if len(bl) == 0 || bl[len(bl)-1] == 0 {
		return Node{}, ErrBitlistNotTerminated
	}

	size := bl.Len()
	if size > maxBits {
		return Node{}, &InputExceedsLimitError{Limit: maxBits}
	}

	chunks := PackBytes(bl.Bytes())
	root, err := Merkleize(chunks, (maxBits+BitsPerChunk-1)/BitsPerChunk)
	if err != nil {
		return Node{}, err
	}
	return MixInLength(root, size), nil
}

// BitvectorRoot returns the hash tree root of a fixed width bitfield of
// bitSize bits, supplied as its packed byte representation.
func BitvectorRoot(bv []byte, bitSize uint64) (Node, error) {
	if uint64(len(bv)) != (bitSize+7)/8 {
		return Node{}, ErrVectorLength
	}

	chunks := PackBytes(bv)
	return Merkleize(chunks, (bitSize+BitsPerChunk-1)/BitsPerChunk)
}
