// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the ssz-merkle library.

// Package sszmerkle implements the SSZ merkleization core: hash tree root
// computation over 32 byte chunk buffers with virtualized zero padding, plus
// the supporting operations roots are composed from - chunk packing, length
// and selector mix-ins, element root collection and merkle branch
// verification.
//
// The merkleizer treats its input as the bottom layer of a perfect binary
// tree of a declared power of two width. Leaves not backed by data are never
// materialized: any all zero subtree of height h has a root that depends only
// on h, so a precomputed table of 64 roots stands in for arbitrarily large
// empty regions. Declaring a capacity of 2^63 leaves with five real chunks
// costs six hashes over the data plus one hash and one table lookup for each
// of the 60 tree levels above it.
//
// Roots are bit-exact with the Ethereum consensus specification. Hashing runs
// on the vectorized gohashtree implementation by default; DefaultHasherPool
// provides a pure stdlib fallback.
package sszmerkle
