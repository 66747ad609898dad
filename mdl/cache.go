// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package mdl

import "github.com/zeebo/xxh3"

// Identity derives the emission-cache key for a function identifier. Node
// implementations backed by the same function share one identity, so the
// definition is emitted at most once per program.
func Identity(functionName string) uint64 {
	return xxh3.HashString(functionName)
}

// FunctionCache tracks which function definitions have been emitted during
// one program build. It is owned by the Generator; node implementations only
// contribute the identity key.
type FunctionCache struct {
	emitted map[uint64]struct{}
}

// NewFunctionCache creates an empty cache.
func NewFunctionCache() *FunctionCache {
	return &FunctionCache{
		emitted: make(map[uint64]struct{}),
	}
}

// MarkEmitted records the identity and reports whether this was its first
// emission.
func (c *FunctionCache) MarkEmitted(identity uint64) bool {
	if _, ok := c.emitted[identity]; ok {
		return false
	}
	c.emitted[identity] = struct{}{}
	return true
}

// Emitted reports whether the identity was already emitted.
func (c *FunctionCache) Emitted(identity uint64) bool {
	_, ok := c.emitted[identity]
	return ok
}
