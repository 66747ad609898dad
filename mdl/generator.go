// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package mdl

import "github.com/gogpu/shadergen/graph"

// Options configures MDL code generation.
type Options struct {
	// Version is the target MDL language version.
	Version Version
}

// DefaultOptions returns sensible default options for MDL generation.
func DefaultOptions() Options {
	return Options{
		Version: VersionLatest,
	}
}

// NodeImpl is the generator-facing contract of a node implementation.
type NodeImpl interface {
	// IdentityHash keys the program-wide function-definition cache.
	IdentityHash() uint64

	// EmitFunctionDefinition writes the node's function definition, or is a
	// no-op for externally defined functions.
	EmitFunctionDefinition(node *graph.Node, gen *Generator, stage *Stage) error

	// EmitFunctionCall writes the call expression at one use site.
	EmitFunctionCall(node *graph.Node, gen *Generator, stage *Stage) error
}

// Generator drives MDL code generation over a node graph. It owns the
// syntax mapper and the function-definition emission cache; node
// implementations stay stateless across use sites.
type Generator struct {
	options Options
	syntax  *Syntax
	cache   *FunctionCache

	impls map[*graph.Node]NodeImpl
}

// NewGenerator creates a generator with the given options.
func NewGenerator(options Options) *Generator {
	return &Generator{
		options: options,
		syntax:  NewSyntax(),
		cache:   NewFunctionCache(),
		impls:   make(map[*graph.Node]NodeImpl),
	}
}

// Options returns the active generation options.
func (g *Generator) Options() Options {
	return g.options
}

// Syntax returns the MDL syntax mapper.
func (g *Generator) Syntax() *Syntax {
	return g.syntax
}

// Cache returns the function-definition emission cache.
func (g *Generator) Cache() *FunctionCache {
	return g.cache
}

// VersionSuffix returns the module filename suffix of the target version,
// substituted for version markers in module paths.
func (g *Generator) VersionSuffix() string {
	return g.options.Version.FilenameSuffix()
}

// Bind associates a graph node with its implementation.
func (g *Generator) Bind(node *graph.Node, impl NodeImpl) {
	g.impls[node] = impl
}

// EmitFunctionDefinition writes the function definition backing node, at
// most once per function identity across the whole program build.
func (g *Generator) EmitFunctionDefinition(node *graph.Node, stage *Stage) error {
	impl, err := g.implOf(node)
	if err != nil {
		return err
	}
	if g.cache.Emitted(impl.IdentityHash()) {
		return nil
	}
	if err := impl.EmitFunctionDefinition(node, g, stage); err != nil {
		return err
	}
	// Recorded only after a successful emission, so the cache never claims
	// a definition that was not written.
	g.cache.MarkEmitted(impl.IdentityHash())
	return nil
}

// EmitFunctionCall writes the call expression for node into stage, once per
// stage per node instance.
func (g *Generator) EmitFunctionCall(node *graph.Node, stage *Stage) error {
	if stage.HasEmittedCall(node.Name) {
		return nil
	}
	impl, err := g.implOf(node)
	if err != nil {
		return err
	}
	if err := impl.EmitFunctionCall(node, g, stage); err != nil {
		return err
	}
	stage.markCallEmitted(node.Name)
	return nil
}

// emitDependentFunctionCalls emits calls for node's upstream dependencies
// whose classification matches mask, so their results exist before node's
// own call references them.
func (g *Generator) emitDependentFunctionCalls(node *graph.Node, stage *Stage, mask graph.Classification) error {
	for _, input := range node.Def.Inputs {
		binding := node.Binding(input.Name)
		if binding.Upstream == nil || !binding.Upstream.HasClassification(mask) {
			continue
		}
		if err := g.EmitFunctionCall(binding.Upstream, stage); err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) implOf(node *graph.Node) (NodeImpl, error) {
	impl, ok := g.impls[node]
	if !ok {
		return nil, newError(ErrInternal, "", "no implementation bound for node '"+node.Name+"'")
	}
	return impl, nil
}
