// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package mdl provides an MDL (NVIDIA Material Definition Language) backend
// for shadergen.
//
// The backend generates MDL source code from a node graph. User-defined
// function nodes are handled by CustomNode, which supports two provenance
// modes:
//
//   - Inline: the implementation carries the function body as source text;
//     the backend emits a complete MDL function definition once per distinct
//     function, then a call at every use site.
//   - External: the implementation references a function inside an existing
//     MDL module file; the backend emits only qualified calls.
//
// # Basic Usage
//
//	gen := mdl.NewGenerator(mdl.Options{Version: mdl.Version1_8})
//	impl, err := mdl.NewCustomNode(implementation, gen)
//	gen.Bind(node, impl)
//
//	stage := mdl.NewStage(mdl.StagePixel)
//	err = gen.EmitFunctionDefinition(node, stage)
//	err = gen.EmitFunctionCall(node, stage)
//
// # Definition Deduplication
//
// Many node instances can share one backing function. The Generator owns a
// program-wide FunctionCache keyed by the implementation's identity hash and
// guarantees each definition is emitted at most once per build.
//
// # Versioned Modules
//
// External module paths may carry a {{MDL_VERSION_SUFFIX}} marker, replaced
// with the target version's filename suffix so one implementation record can
// reference version-specific module variants.
//
// # Reserved Words
//
// Parameter and output names colliding with MDL reserved words are escaped
// with an "_mx" suffix; call templates keep the declaration name in their
// substitution markers.
package mdl
