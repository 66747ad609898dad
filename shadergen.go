// Package shadergen provides a Pure Go node-graph shader generator.
//
// shadergen turns abstract function-node definitions into target shading
// language source code. The graph package defines the backend-agnostic data
// model (node definitions, implementations, use-site instances); backend
// packages generate code from it. The mdl package targets NVIDIA's Material
// Definition Language.
//
// Example usage (MDL):
//
//	def := &graph.NodeDef{
//	    Name:    "checker",
//	    Inputs:  []graph.Input{{Name: "scale", Type: graph.TypeFloat}},
//	    Outputs: []graph.Output{{Name: "out", Type: graph.TypeColor3}},
//	}
//	impl := &graph.Implementation{
//	    Name:    "IM_checker_mdl",
//	    NodeDef: def,
//	    Attributes: map[string]string{
//	        graph.AttrSourceCode: "out = color(scale, scale, scale);",
//	    },
//	}
//	node := &graph.Node{Name: "checker1", Def: def}
//	source, err := shadergen.GenerateMDL(node, impl, mdl.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// For multi-node programs, drive the mdl.Generator directly: bind each node
// to its implementation, then emit definitions and calls in dependency
// order.
package shadergen

import (
	"fmt"

	"github.com/gogpu/shadergen/graph"
	"github.com/gogpu/shadergen/mdl"
)

// GenerateMDL generates MDL source for a single node: the function
// definition (for inline implementations) followed by the call expression.
//
// This is the simplest way to use the MDL backend. For multi-node programs,
// use mdl.Generator directly.
func GenerateMDL(node *graph.Node, impl *graph.Implementation, opts mdl.Options) (string, error) {
	gen := mdl.NewGenerator(opts)

	custom, err := mdl.NewCustomNode(impl, gen)
	if err != nil {
		return "", fmt.Errorf("initialization error: %w", err)
	}
	gen.Bind(node, custom)

	stage := mdl.NewStage(mdl.StagePixel)
	if err := gen.EmitFunctionDefinition(node, stage); err != nil {
		return "", fmt.Errorf("definition emission error: %w", err)
	}
	if err := gen.EmitFunctionCall(node, stage); err != nil {
		return "", fmt.Errorf("call emission error: %w", err)
	}
	return stage.String(), nil
}
