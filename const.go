// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the ssz-merkle library.

package sszmerkle

const (
	// BytesPerChunk is the size of a merkle tree leaf chunk in bytes.
	BytesPerChunk = 32

	// BitsPerChunk is the size of a merkle tree leaf chunk in bits.
	BitsPerChunk = BytesPerChunk * 8

	// MaxMerkleTreeDepth bounds the height of any merkleized tree.
	// Leaf counts up to 2^63 are addressable, so 64 zero-subtree roots
	// cover every depth the merkleizer can reach.
	MaxMerkleTreeDepth = 64
)
