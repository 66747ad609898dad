// Package graph defines the node-definition data model for shadergen.
//
// The model is designed to be:
//   - Backend-agnostic: Not tied to any specific shading language
//   - Immutable: All records are plain values, fixed after construction
//   - Flat: No cyclic references or handle indirection
//
// # Structure
//
// The model is organized around three layers:
//   - NodeDef: The interface of a function node (typed inputs and outputs)
//   - Implementation: How a NodeDef is realized (inline source or a module
//     file reference), expressed as an attribute map
//   - Node: A use-site instance of a NodeDef inside a generated program,
//     with per-input bindings to upstream nodes or literal values
//
// Backends consume these records read-only; nothing in this package writes
// generated code.
package graph
