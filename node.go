// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the ssz-merkle library.

package sszmerkle

import "encoding/hex"

// Node is a 32 byte merkle tree root. It is byte-compatible with a chunk;
// the distinct type marks values that are the output of merkleization.
type Node [BytesPerChunk]byte

// NodeFromBytes converts a 32 byte slice into a Node.
func NodeFromBytes(b []byte) (Node, error) {
	var n Node
	if len(b) != BytesPerChunk {
		return n, ErrIncorrectByteSize
	}
	copy(n[:], b)
	return n, nil
}

// Bytes returns the node as a byte slice.
func (n Node) Bytes() []byte {
	return n[:]
}

func (n Node) String() string {
	return "0x" + hex.EncodeToString(n[:])
}
