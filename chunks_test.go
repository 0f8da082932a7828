// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the ssz-merkle library.

package sszmerkle_test

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	. "github.com/pk910/ssz-merkle"
)

type testElement struct {
	root [32]byte
	err  error
}

func (e *testElement) HashTreeRoot() ([32]byte, error) {
	return e.root, e.err
}

func makeTestElements(count int) []*testElement {
	elements := make([]*testElement, count)
	for i := range elements {
		elements[i] = &testElement{}
		for j := range elements[i].root {
			elements[i].root[j] = byte(i + 1)
		}
	}
	return elements
}

func TestElementsToChunks(t *testing.T) {
	elements := makeTestElements(3)

	chunks, err := ElementsToChunks(elements, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(chunks) != 5*32 {
		t.Fatalf("expected 5 chunks, got %v bytes", len(chunks))
	}
	for i, element := range elements {
		if !bytes.Equal(chunks[i*32:(i+1)*32], element.root[:]) {
			t.Fatalf("chunk %v does not hold the element root", i)
		}
	}
	for _, b := range chunks[3*32:] {
		if b != 0 {
			t.Fatal("trailing chunks must stay zero")
		}
	}
}

func TestElementsToChunksBounds(t *testing.T) {
	_, err := ElementsToChunks(makeTestElements(4), 3)
	limitErr := &InputExceedsLimitError{}
	if !errors.As(err, &limitErr) {
		t.Fatalf("expected *InputExceedsLimitError, got %v", err)
	}
	if limitErr.Limit != 3 {
		t.Fatalf("expected offending limit 3, got %v", limitErr.Limit)
	}
}

func TestElementsToChunksPropagatesRootFailure(t *testing.T) {
	rootErr := fmt.Errorf("no root for you")
	elements := makeTestElements(3)
	elements[1].err = rootErr

	_, err := ElementsToChunks(elements, 3)
	if !errors.Is(err, rootErr) {
		t.Fatalf("expected the element root error, got %v", err)
	}
}

func TestVectorRoot(t *testing.T) {
	elements := makeTestElements(3)

	root, err := VectorRoot(elements)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// equal to merkleizing the collected element roots directly
	chunks, err := ElementsToChunks(elements, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want, err := Merkleize(chunks)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if root != want {
		t.Fatalf("got %v, want %v", root, want)
	}
}

func TestListRoot(t *testing.T) {
	elements := makeTestElements(3)

	root, err := ListRoot(elements, 16)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	chunks, err := ElementsToChunks(elements, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	content, err := Merkleize(chunks, 16)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := MixInLength(content, 3); root != want {
		t.Fatalf("got %v, want %v", root, want)
	}

	// capacity overflow surfaces as a limit error
	if _, err := ListRoot(elements, 2); err == nil {
		t.Fatal("expected error for list above capacity")
	}
}

func TestListRootEmpty(t *testing.T) {
	root, err := ListRoot([]*testElement{}, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := MixInLength(ZeroHash(2), 0)
	if root != want {
		t.Fatalf("got %v, want %v", root, want)
	}
}
