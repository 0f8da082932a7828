// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the ssz-merkle library.

// Package main implements the zerohash-gen command. It precomputes the roots
// of all zero subtrees for depths 0..63 and emits them as a Go source file,
// so the shipped library carries the table verbatim instead of building it
// at init time.
package main

import (
	"bytes"
	"crypto/sha256"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
)

const (
	bytesPerChunk = 32
	tableDepth    = 64
)

func main() {
	out := flag.String("out", "zerohash_table.go", "output file")
	flag.Parse()

	table := make([][bytesPerChunk]byte, tableDepth)
	for depth := 1; depth < tableDepth; depth++ {
		var pair [2 * bytesPerChunk]byte
		copy(pair[:bytesPerChunk], table[depth-1][:])
		copy(pair[bytesPerChunk:], table[depth-1][:])
		table[depth] = sha256.Sum256(pair[:])
	}

	var buf bytes.Buffer
	buf.WriteString("// Code generated by zerohash-gen. DO NOT EDIT.\n\n")
	buf.WriteString("package sszmerkle\n\n")
	buf.WriteString("// zeroHashes[d] is the root of a perfect binary tree of depth d whose\n")
	buf.WriteString("// leaves are all zero: zeroHashes[0] is the zero chunk and each further\n")
	buf.WriteString("// entry is the hash of the previous entry concatenated with itself.\n")
	buf.WriteString("var zeroHashes = [MaxMerkleTreeDepth]Node{\n")
	for _, entry := range table {
		buf.WriteString("\t{")
		for i, b := range entry {
			if i > 0 {
				buf.WriteString(", ")
			}
			fmt.Fprintf(&buf, "0x%02x", b)
		}
		buf.WriteString("},\n")
	}
	buf.WriteString("}\n")

	src, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatalf("formatting generated table: %v", err)
	}
	if err := os.WriteFile(*out, src, 0o644); err != nil {
		log.Fatalf("writing %s: %v", *out, err)
	}
}
