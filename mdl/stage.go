// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package mdl

import "strings"

// Stage names. MDL generation uses a single stage; function calls are only
// ever emitted into the pixel stage.
const (
	// StagePixel is the primary generation stage.
	StagePixel = "pixel"
)

// ScopeType selects the punctuation of an emitted scope.
type ScopeType uint8

const (
	// ScopeBraces opens a `{` ... `}` scope.
	ScopeBraces ScopeType = iota

	// ScopeParens opens a `(` ... `)` scope.
	ScopeParens
)

// Stage is the instruction stream of one generation stage. It collects
// generated source text and tracks indentation, open scopes, and which node
// calls have already been emitted into it.
type Stage struct {
	name   string
	out    strings.Builder
	indent int
	scopes []ScopeType

	emittedCalls map[string]struct{}
}

// NewStage creates an empty instruction stream for the named stage.
func NewStage(name string) *Stage {
	return &Stage{
		name:         name,
		emittedCalls: make(map[string]struct{}),
	}
}

// Name returns the stage name.
func (st *Stage) Name() string {
	return st.name
}

// String returns the generated source text.
func (st *Stage) String() string {
	return st.out.String()
}

// EmitString appends text verbatim, without indentation or a newline.
func (st *Stage) EmitString(text string) {
	st.out.WriteString(text)
}

// EmitLine appends one indented line, terminated with a semicolon when
// requested.
func (st *Stage) EmitLine(line string, semicolon bool) {
	st.writeIndent()
	st.out.WriteString(line)
	if semicolon {
		st.out.WriteString(";")
	}
	st.out.WriteString("\n")
}

// EmitLineEnd terminates the current line, with a semicolon when requested.
func (st *Stage) EmitLineEnd(semicolon bool) {
	if semicolon {
		st.out.WriteString(";")
	}
	st.out.WriteString("\n")
}

// EmitComment appends an indented line comment.
func (st *Stage) EmitComment(text string) {
	st.EmitLine("// "+text, false)
}

// EmitBlankLine appends an empty line.
func (st *Stage) EmitBlankLine() {
	st.out.WriteString("\n")
}

// BeginScope opens a scope with the given punctuation on its own line and
// increases indentation.
func (st *Stage) BeginScope(typ ScopeType) {
	switch typ {
	case ScopeParens:
		st.EmitLine("(", false)
	default:
		st.EmitLine("{", false)
	}
	st.scopes = append(st.scopes, typ)
	st.indent++
}

// EndScope closes the innermost open scope, terminating it with a semicolon
// when requested.
func (st *Stage) EndScope(semicolon bool) {
	typ := ScopeBraces
	if n := len(st.scopes); n > 0 {
		typ = st.scopes[n-1]
		st.scopes = st.scopes[:n-1]
	}
	if st.indent > 0 {
		st.indent--
	}
	st.writeIndent()
	switch typ {
	case ScopeParens:
		st.out.WriteString(")")
	default:
		st.out.WriteString("}")
	}
	st.EmitLineEnd(semicolon)
}

// HasEmittedCall reports whether a call for the named node was already
// written into this stage.
func (st *Stage) HasEmittedCall(node string) bool {
	_, ok := st.emittedCalls[node]
	return ok
}

// markCallEmitted records that a call for the named node was written.
func (st *Stage) markCallEmitted(node string) {
	st.emittedCalls[node] = struct{}{}
}

func (st *Stage) writeIndent() {
	for i := 0; i < st.indent; i++ {
		st.out.WriteString("    ")
	}
}
