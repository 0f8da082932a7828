// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the ssz-merkle library.

package sszmerkle

import (
	"fmt"
	"sync"

	"github.com/casbin/govaluate"
	"gopkg.in/yaml.v3"
)

// Specs holds named specification values (consensus preset parameters) that
// callers use to derive list capacities and limits. Values are resolved as
// mathematical expressions, so a name like "MAX_ATTESTATIONS * 8" works
// against a preset that only defines MAX_ATTESTATIONS.
//
// Resolution results are cached per instance; reusing one Specs across root
// computations avoids re-parsing expressions.
type Specs struct {
	values     map[string]any
	cache      map[string]*cachedSpecValue
	cacheMutex sync.RWMutex
}

type cachedSpecValue struct {
	resolved bool
	value    uint64
}

// NewSpecs creates a Specs instance from a map of specification values.
// The map may be nil.
func NewSpecs(values map[string]any) *Specs {
	if values == nil {
		values = map[string]any{}
	}
	return &Specs{
		values: values,
		cache:  map[string]*cachedSpecValue{},
	}
}

// NewSpecsFromYAML creates a Specs instance from a YAML preset document of
// the form used by consensus spec configs: a flat mapping of names to values.
func NewSpecsFromYAML(data []byte) (*Specs, error) {
	values := map[string]any{}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("error parsing spec preset: %w", err)
	}
	return NewSpecs(values), nil
}

// ResolveSpecValue evaluates name as an expression over the specification
// values. The first return value reports whether the expression resolved to
// a number.
func (s *Specs) ResolveSpecValue(name string) (bool, uint64, error) {
	s.cacheMutex.RLock()
	cachedValue := s.cache[name]
	s.cacheMutex.RUnlock()
	if cachedValue != nil {
		return cachedValue.resolved, cachedValue.value, nil
	}

	cachedValue = &cachedSpecValue{}
	expression, err := govaluate.NewEvaluableExpression(name)
	if err != nil {
		return false, 0, fmt.Errorf("error parsing dynamic spec expression: %w", err)
	}

	result, err := expression.Evaluate(s.values)
	if err == nil {
		value, ok := result.(float64)
		if ok {
			cachedValue.resolved = true
			cachedValue.value = uint64(value)
			if float64(cachedValue.value) < value {
				// rounding issue - always round up to full bytes as we can't serialize parial bytes
				cachedValue.value++
			}
		}
	}

	s.cacheMutex.Lock()
	s.cache[name] = cachedValue
	s.cacheMutex.Unlock()
	return cachedValue.resolved, cachedValue.value, nil
}

// ResolveSpecValueWithDefault evaluates name and falls back to defaultValue
// when the expression does not resolve.
func (s *Specs) ResolveSpecValueWithDefault(name string, defaultValue uint64) (uint64, error) {
	hasValue, value, err := s.ResolveSpecValue(name)
	if err != nil {
		return 0, err
	}
	if !hasValue {
		return defaultValue, nil
	}
	return value, nil
}

// ChunkLimit converts a list capacity in items into the chunk limit passed to
// Merkleize. size is the serialized byte size of one item.
func ChunkLimit(maxCapacity, numItems, size uint64) uint64 {
	limit := (maxCapacity*size + 31) / 32
	if limit != 0 {
		return limit
	}
	if numItems == 0 {
		return 1
	}
	return numItems
}
