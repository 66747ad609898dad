// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package mdl

import "github.com/gogpu/shadergen/graph"

// SourceCodeNode is the base for node implementations whose call sites are
// produced from a call-expression template: a fixed callee with one
// substitutable {{input}} marker per input, in declaration order.
type SourceCodeNode struct {
	functionName string
	callTemplate string
}

// FunctionName returns the callee identifier.
func (n *SourceCodeNode) FunctionName() string {
	return n.functionName
}

// CallTemplate returns the call-expression template.
func (n *SourceCodeNode) CallTemplate() string {
	return n.callTemplate
}

// emitCall writes the call expression for one use site: a result variable
// declaration assigned from the template with every input marker replaced by
// that use site's concrete argument expression.
func (n *SourceCodeNode) emitCall(node *graph.Node, gen *Generator, stage *Stage) {
	syntax := gen.Syntax()

	args := make(map[string]string, len(node.Def.Inputs))
	for _, input := range node.Def.Inputs {
		args[input.Name] = argumentExpression(node, input, syntax)
	}
	call := syntax.ReplaceSourceCodeMarkers(n.callTemplate, func(marker string) string {
		if arg, ok := args[marker]; ok {
			return arg
		}
		return syntax.Marker(marker)
	})

	if len(node.Def.Outputs) == 1 {
		out := node.Def.Outputs[0]
		stage.EmitLine(syntax.TypeName(out.Type)+" "+ResultVariable(node, out.Name, syntax)+" = "+call, true)
		return
	}
	// Multiple outputs return an aggregate; bind it once and let downstream
	// references select fields.
	stage.EmitLine("auto "+resultAggregateVariable(node)+" = "+call, true)
}

// ResultVariable returns the name of the local holding a node output at its
// use sites.
func ResultVariable(node *graph.Node, output string, syntax *Syntax) string {
	name := node.Name + "_" + output
	if len(node.Def.Outputs) > 1 {
		name = resultAggregateVariable(node) + "." + syntax.ModifyReservedOutputName(output)
	}
	return name
}

func resultAggregateVariable(node *graph.Node) string {
	return node.Name + "_result"
}

// argumentExpression resolves the concrete argument text for one input at a
// use site: the upstream node's result variable when connected, otherwise
// the bound literal, otherwise the input's declared or canonical default.
func argumentExpression(node *graph.Node, input graph.Input, syntax *Syntax) string {
	binding := node.Binding(input.Name)
	switch {
	case binding.Upstream != nil:
		return ResultVariable(binding.Upstream, binding.Output, syntax)
	case binding.Value != nil:
		return syntax.Value(binding.Value)
	case input.Default != nil:
		return syntax.Value(input.Default)
	default:
		return syntax.DefaultValue(input.Type)
	}
}
