// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the ssz-merkle library.

package sszmerkle

import "fmt"

var (
	// ErrIncorrectByteSize means that the byte size is incorrect
	ErrIncorrectByteSize = fmt.Errorf("incorrect byte size")

	// ErrVectorLength means that the length of a fixed size bit vector is incorrect
	ErrVectorLength = fmt.Errorf("incorrect vector length")

	// ErrBitlistNotTerminated means a bitlist misses its mandatory termination bit
	ErrBitlistNotTerminated = fmt.Errorf("bitlist misses mandatory termination bit")

	// ErrInvalidProof is returned when proof verification receives malformed input
	ErrInvalidProof = fmt.Errorf("merkle proof verification failed")
)

// SerializationError wraps a failure from a value's serializer during packing.
// The inner error stays reachable through Unwrap so callers can distinguish
// packing failures from capacity failures.
type SerializationError struct {
	Err error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("failed to serialize value: %v", e.Err)
}

func (e *SerializationError) Unwrap() error {
	return e.Err
}

// InputExceedsLimitError is returned when a declared capacity is strictly
// smaller than the number of chunks or elements supplied.
type InputExceedsLimitError struct {
	Limit uint64
}

func (e *InputExceedsLimitError) Error() string {
	return fmt.Sprintf("data exceeds the declared limit %d", e.Limit)
}
