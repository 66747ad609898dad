// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package mdl

import "testing"

func TestIdentity(t *testing.T) {
	if Identity("mx_add") != Identity("mx_add") {
		t.Error("Identity() is not stable for equal identifiers")
	}
	if Identity("mx_add") == Identity("mx_multiply") {
		t.Error("Identity() collides for distinct identifiers")
	}
}

func TestFunctionCache_MarkEmitted(t *testing.T) {
	cache := NewFunctionCache()
	id := Identity("mx_add")

	if cache.Emitted(id) {
		t.Error("Emitted() = true for fresh cache")
	}
	if !cache.MarkEmitted(id) {
		t.Error("MarkEmitted() = false for first emission")
	}
	if cache.MarkEmitted(id) {
		t.Error("MarkEmitted() = true for repeated emission")
	}
	if !cache.Emitted(id) {
		t.Error("Emitted() = false after MarkEmitted")
	}

	other := Identity("mx_multiply")
	if !cache.MarkEmitted(other) {
		t.Error("MarkEmitted() = false for unrelated identity")
	}
}
