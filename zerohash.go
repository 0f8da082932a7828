// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the ssz-merkle library.

package sszmerkle

//go:generate go run ./zerohash-gen -out zerohash_table.go

// ZeroHash returns the root of a perfect binary tree of the given depth whose
// leaves are all zero. ZeroHash(0) is the zero chunk itself. Depths at or
// above MaxMerkleTreeDepth are a programmer error; the merkleizer never
// produces one.
func ZeroHash(depth int) Node {
	return zeroHashes[depth]
}
