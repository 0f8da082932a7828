// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the ssz-merkle library.

package sszmerkle

import "math/bits"

// Merkleize returns the hash tree root of a chunk aligned byte buffer.
//
// The buffer forms the bottom layer of a perfect binary tree whose width is
// the next power of two of the chunk count, or of the declared limit when one
// is given. Leaves beyond the buffer are treated as zero and substituted from
// the precomputed zero hash table, so a limit of 2^63 with a handful of real
// chunks completes in O(chunks + log limit).
//
// A limit smaller than the supplied chunk count yields an
// *InputExceedsLimitError. A buffer whose length is not a multiple of 32 is a
// programmer error and panics.
func Merkleize(chunks []byte, limit ...uint64) (Node, error) {
	h := FastHasherPool.Get()
	defer FastHasherPool.Put(h)

	return h.Merkleize(chunks, limit...)
}

// Merkleize returns the hash tree root of a chunk aligned byte buffer,
// reusing the hasher's working buffer. See the package level Merkleize.
func (h *Hasher) Merkleize(chunks []byte, limit ...uint64) (Node, error) {
	if len(chunks)%BytesPerChunk != 0 {
		panic("sszmerkle: chunk buffer is not a multiple of 32 bytes")
	}

	chunkCount := uint64(len(chunks) / BytesPerChunk)
	leafCount := nextPowerOfTwo(chunkCount)
	if len(limit) > 0 {
		if limit[0] < chunkCount {
			return Node{}, &InputExceedsLimitError{Limit: limit[0]}
		}
		leafCount = nextPowerOfTwo(limit[0])
	}

	return h.merkleizeVirtualPadding(chunks, leafCount), nil
}

// merkleizeVirtualPadding computes the root of the perfect binary tree of
// leafCount leaves whose first chunks are taken from the buffer and whose
// remaining leaves are zero.
//
// The chunks are copied into the hasher's working buffer and each tree layer
// is hashed into the parent layer in place: the parent of pair i is written
// at slot i/2, which is always at or below the slot of its left child. Zero
// subtrees to the right of the data are never materialized; when the last
// written node has no right sibling, the sibling is taken from the zero hash
// table at the height already collapsed beneath the current layer.
//
// Preconditions (caller guaranteed, violation panics):
//   - len(chunks) is a multiple of BytesPerChunk
//   - leafCount is a power of two, >= 1
//   - log2(leafCount) < MaxMerkleTreeDepth
func (h *Hasher) merkleizeVirtualPadding(chunks []byte, leafCount uint64) Node {
	if len(chunks)%BytesPerChunk != 0 {
		panic("sszmerkle: chunk buffer is not a multiple of 32 bytes")
	}
	if leafCount == 0 || leafCount&(leafCount-1) != 0 {
		panic("sszmerkle: leaf count is not a power of two")
	}

	depth := uint64(bits.TrailingZeros64(leafCount))
	if depth >= MaxMerkleTreeDepth {
		panic("sszmerkle: leaf count exceeds the maximum tree depth")
	}

	chunkCount := uint64(len(chunks) / BytesPerChunk)
	if leafCount < chunkCount {
		panic("sszmerkle: chunk count exceeds the declared leaf count")
	}

	height := depth + 1
	if chunkCount == 0 {
		return zeroHashes[height-1]
	}

	h.layer = append(h.layer[:0], chunks...)
	layer := h.layer
	lastIndex := chunkCount - 1

	for k := height - 1; k >= 1; k-- {
		// hash all pairs with both children present in one call, in place
		if fullPairs := (lastIndex + 1) / 2; fullPairs > 0 {
			h.hash(layer[:fullPairs*BytesPerChunk], layer[:fullPairs*2*BytesPerChunk])
		}

		if lastIndex%2 == 0 {
			// odd tail: the right sibling is the root of a zero subtree of
			// the height collapsed so far. hashed through the scratch pair,
			// the parent slot overlaps the left child when lastIndex == 0.
			copy(h.tmp[:BytesPerChunk], layer[lastIndex*BytesPerChunk:(lastIndex+1)*BytesPerChunk])
			copy(h.tmp[BytesPerChunk:], zeroHashes[height-k-1][:])
			h.hash(h.tmp[:BytesPerChunk], h.tmp)
			copy(layer[(lastIndex/2)*BytesPerChunk:], h.tmp[:BytesPerChunk])
		}

		lastIndex /= 2
	}

	var root Node
	copy(root[:], layer[:BytesPerChunk])
	return root
}

// nextPowerOfTwo rounds v up to the next power of two, with 0 and 1 both
// mapping to 1. Inputs above 2^63 wrap to 0, which the merkleizer's power of
// two assertion rejects.
func nextPowerOfTwo(v uint64) uint64 {
	if v <= 1 {
		return 1
	}
	return 1 << (64 - uint(bits.LeadingZeros64(v-1)))
}
