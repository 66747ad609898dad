// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package shadergen_test

import (
	"fmt"
	"log"

	"github.com/gogpu/shadergen"
	"github.com/gogpu/shadergen/graph"
	"github.com/gogpu/shadergen/mdl"
)

// ExampleGenerateMDL generates the definition and call for an inline
// custom-function node.
func ExampleGenerateMDL() {
	def := &graph.NodeDef{
		Name: "mx_gamma",
		Inputs: []graph.Input{
			{Name: "value", Type: graph.TypeFloat},
			{Name: "gamma", Type: graph.TypeFloat, Default: graph.Float(2.2)},
		},
		Outputs: []graph.Output{
			{Name: "out", Type: graph.TypeFloat},
		},
	}
	impl := &graph.Implementation{
		Name:    "IM_gamma_float",
		NodeDef: def,
		Attributes: map[string]string{
			graph.AttrSourceCode: "out = math::pow(value, 1.0 / gamma);",
		},
	}
	node := &graph.Node{
		Name: "gamma1",
		Def:  def,
		Bindings: map[string]graph.Binding{
			"value": {Value: graph.Float(0.5)},
		},
	}

	source, err := shadergen.GenerateMDL(node, impl, mdl.DefaultOptions())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(source)

	// Output:
	// // generated code for implementation: 'IM_gamma_float'
	// float mx_gamma
	// (
	//     float value,
	//     float gamma
	// )
	// {
	//     float out = 0.0;
	//     out = math::pow(value, 1.0 / gamma);
	//     return out;
	// }
	//
	// float gamma1_out = mx_gamma(value: 0.5, gamma: 2.2);
}
