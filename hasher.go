// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the ssz-merkle library.

package sszmerkle

import (
	"crypto/sha256"
	"hash"
	"sync"

	"github.com/prysmaticlabs/gohashtree"
)

// the hasher pooling scheme follows the fastssz package
// https://github.com/ferranbt/fastssz/blob/main/hasher.go

// HashFn hashes a layer of 64 byte chunk pairs from input and writes the
// 32 byte digest of pair i to dst[i*32:]. dst may alias input: a digest is
// never written above the offset of the pair it was computed from.
type HashFn func(dst []byte, input []byte) error

// DefaultHasherPool is a hasher pool backed by the native sha256 implementation
var DefaultHasherPool HasherPool

// FastHasherPool is a hasher pool backed by the vectorized gohashtree implementation
var FastHasherPool = HasherPool{
	HashFn: gohashtree.HashByteSlice,
}

// NativeHashWrapper wraps a hash.Hash function into a HashFn.
// The wrapped hasher state is reset after every pair, so a single instance
// serves an entire tree.
func NativeHashWrapper(hashFn hash.Hash) HashFn {
	return func(dst []byte, input []byte) error {
		if len(input)%(2*BytesPerChunk) != 0 {
			return ErrIncorrectByteSize
		}

		layerLen := len(input) / BytesPerChunk
		for i := 0; i < layerLen; i += 2 {
			hashFn.Write(input[i*BytesPerChunk : (i+1)*BytesPerChunk])
			hashFn.Write(input[(i+1)*BytesPerChunk : (i+2)*BytesPerChunk])
			hashFn.Sum(dst[(i/2)*BytesPerChunk:][:0])
			hashFn.Reset()
		}
		return nil
	}
}

// HasherPool may be used for pooling Hashers across root computations.
type HasherPool struct {
	HashFn HashFn
	pool   sync.Pool
}

// Get acquires a Hasher from the pool.
func (hh *HasherPool) Get() *Hasher {
	h := hh.pool.Get()
	if h == nil {
		if hh.HashFn == nil {
			return NewHasher()
		}
		return NewHasherWithHashFn(hh.HashFn)
	}
	return h.(*Hasher)
}

// Put releases the Hasher to the pool.
func (hh *HasherPool) Put(h *Hasher) {
	h.Reset()
	hh.pool.Put(h)
}

// Hasher holds the reusable state for one root computation: the hash
// function, the in-place working layer and a scratch pair buffer.
type Hasher struct {
	// hash function used for pairwise hashing
	hash HashFn

	// working buffer holding the current tree layer
	layer []byte

	// tmp pair buffer used for odd tails and mix-ins
	tmp []byte
}

// NewHasher creates a new Hasher object with native sha256
func NewHasher() *Hasher {
	return NewHasherWithHash(sha256.New())
}

// NewHasherWithHash creates a new Hasher object with a custom hash.Hash function
func NewHasherWithHash(hh hash.Hash) *Hasher {
	return NewHasherWithHashFn(NativeHashWrapper(hh))
}

// NewHasherWithHashFn creates a new Hasher object with a custom HashFn function
func NewHasherWithHashFn(hh HashFn) *Hasher {
	return &Hasher{
		hash: hh,
		tmp:  make([]byte, 2*BytesPerChunk),
	}
}

// Reset resets the Hasher obj
func (h *Hasher) Reset() {
	h.layer = h.layer[:0]
}

// hashPair hashes the 64 byte pair in h.tmp and returns the digest as a Node.
func (h *Hasher) hashPair() Node {
	h.hash(h.tmp[:BytesPerChunk], h.tmp)
	var n Node
	copy(n[:], h.tmp[:BytesPerChunk])
	return n
}
