// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the ssz-merkle library.

package sszmerkle

import "encoding/binary"

// MixInLength folds the current length of a variable size collection into its
// content root, producing the final hash tree root of the collection.
func MixInLength(root Node, length uint64) Node {
	h := FastHasherPool.Get()
	defer FastHasherPool.Put(h)

	return h.MixInLength(root, length)
}

// MixInSelector folds the variant index of a tagged union into the root of
// the selected value.
func MixInSelector(root Node, selector uint64) Node {
	h := FastHasherPool.Get()
	defer FastHasherPool.Put(h)

	return h.MixInSelector(root, selector)
}

// MixInLength folds the current length of a variable size collection into its
// content root.
func (h *Hasher) MixInLength(root Node, length uint64) Node {
	return h.mixInDecoration(root, length)
}

// MixInSelector folds the variant index of a tagged union into the root of
// the selected value.
func (h *Hasher) MixInSelector(root Node, selector uint64) Node {
	return h.mixInDecoration(root, selector)
}

// mixInDecoration hashes root against the hash tree root of the decoration,
// a little endian uint64 right padded to a full chunk.
func (h *Hasher) mixInDecoration(root Node, decoration uint64) Node {
	copy(h.tmp[:BytesPerChunk], root[:])
	for i := BytesPerChunk; i < 2*BytesPerChunk; i++ {
		h.tmp[i] = 0
	}
	binary.LittleEndian.PutUint64(h.tmp[BytesPerChunk:], decoration)

	return h.hashPair()
}
