// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
//
// This file contains code derived from https://github.com/ferranbt/fastssz/blob/v1.0.0/proof.go
// Copyright (c) 2020 Ferran Borreguero
// Licensed under the MIT License

package sszmerkle

import "crypto/sha256"

// IsValidMerkleBranch verifies a single merkle branch: it recomputes the path
// from leaf at the given generalized position up through the sibling hashes in
// branch and compares the result against root. The branch is ordered from the
// leaf's own sibling upwards.
//
// A branch whose length does not match depth is malformed and yields
// ErrInvalidProof; a well formed branch that does not authenticate the leaf
// returns false without an error.
func IsValidMerkleBranch(leaf Node, branch []Node, depth uint64, index uint64, root Node) (bool, error) {
	if uint64(len(branch)) != depth {
		return false, ErrInvalidProof
	}

	node := leaf
	var tmp [2 * BytesPerChunk]byte
	for i := uint64(0); i < depth; i++ {
		if (index>>i)&1 == 1 {
			copy(tmp[:BytesPerChunk], branch[i][:])
			copy(tmp[BytesPerChunk:], node[:])
		} else {
			copy(tmp[:BytesPerChunk], node[:])
			copy(tmp[BytesPerChunk:], branch[i][:])
		}
		node = sha256.Sum256(tmp[:])
	}

	return node == root, nil
}
