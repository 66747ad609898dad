// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package mdl

import (
	"strings"

	"github.com/gogpu/shadergen/graph"
)

// CustomNode generates code for user-defined function nodes. The function
// body is either supplied inline in the implementation and emitted once as a
// new MDL function, or defined in an external MDL module that emitted calls
// reference by qualified name.
type CustomNode struct {
	SourceCodeNode

	implName       string
	hash           uint64
	outputDefaults []*graph.Value

	// Exactly one of the two payloads is set, chosen at construction.
	inline   *inlineFunction
	external *externalFunction
}

// inlineFunction is the payload of an inline-mode CustomNode.
type inlineFunction struct {
	// sourceCode is injected verbatim into the emitted function body. It is
	// trusted to assign into the output-named locals.
	sourceCode string
}

// externalFunction is the payload of an external-mode CustomNode.
type externalFunction struct {
	// qualifiedModuleName is the module path in `::a::b::c` form, with the
	// module extension stripped.
	qualifiedModuleName string
}

// NewCustomNode resolves an implementation record into a CustomNode. Inline
// mode is chosen when the record carries non-empty source text; otherwise
// the record must reference an external MDL module and function.
func NewCustomNode(impl *graph.Implementation, gen *Generator) (*CustomNode, error) {
	n := &CustomNode{implName: impl.Name}
	def := impl.NodeDef

	if source := impl.Attribute(graph.AttrSourceCode); source != "" {
		n.inline = &inlineFunction{sourceCode: source}
		n.functionName = def.Name
		// Shared definitions are recognized by function identity, so the
		// definition is emitted only once program-wide.
		n.hash = Identity(n.functionName)
	} else {
		file := impl.Attribute(graph.AttrFile)
		if file == "" {
			return nil, newError(ErrMissingSource, impl.Name, "no source code or file was specified")
		}
		function := impl.Attribute(graph.AttrFunction)
		if function == "" {
			return nil, newError(ErrMissingFunctionName, impl.Name, "no function name was specified")
		}
		qualified, err := qualifyModuleName(file, impl.Name, gen)
		if err != nil {
			return nil, err
		}
		n.external = &externalFunction{qualifiedModuleName: qualified}
		n.functionName = function
		n.hash = Identity(qualified + NamespaceSeparator + function)
	}

	n.callTemplate = buildCallTemplate(n, def, gen.Syntax())
	n.outputDefaults = collectOutputDefaults(def)
	return n, nil
}

// Inline reports whether this node emits its own function definition.
func (n *CustomNode) Inline() bool {
	return n.inline != nil
}

// QualifiedModuleName returns the referenced module path in external mode,
// or "" in inline mode.
func (n *CustomNode) QualifiedModuleName() string {
	if n.external == nil {
		return ""
	}
	return n.external.qualifiedModuleName
}

// IdentityHash returns the emission-cache key for this node's function.
func (n *CustomNode) IdentityHash() uint64 {
	return n.hash
}

// OutputDefaults returns the declared output defaults, one entry per output
// in declaration order; entries are nil where no default was declared.
func (n *CustomNode) OutputDefaults() []*graph.Value {
	return n.outputDefaults
}

// qualifyModuleName maps a slash-separated module file path to a fully
// qualified MDL module name: separators become `::`, a global-scope prefix
// is ensured, the `.mdl` extension is validated and stripped, and the
// version marker is substituted with the active version's filename suffix.
func qualifyModuleName(file, implName string, gen *Generator) (string, error) {
	name := strings.ReplaceAll(file, "/", NamespaceSeparator)
	if !strings.HasPrefix(name, GlobalScopePrefix) {
		name = GlobalScopePrefix + name
	}
	if !strings.HasSuffix(name, ModuleExtension) {
		return "", newError(ErrInvalidModuleReference, implName,
			"referenced source file is not an MDL module: '"+file+"'")
	}
	name = strings.TrimSuffix(name, ModuleExtension)

	syntax := gen.Syntax()
	suffix := gen.VersionSuffix()
	return syntax.ReplaceSourceCodeMarkers(name, func(marker string) string {
		if marker == VersionSuffixMarker {
			return suffix
		}
		return syntax.Marker(marker)
	}), nil
}

// buildCallTemplate constructs the reusable call-expression template: the
// callee followed by `name: {{name}}` for each input in declaration order.
// Parameter names are escaped for reserved words; the marker keeps the
// declaration name so call sites can substitute arguments.
func buildCallTemplate(n *CustomNode, def *graph.NodeDef, syntax *Syntax) string {
	var tpl strings.Builder
	if n.external != nil {
		tpl.WriteString(strings.TrimPrefix(n.external.qualifiedModuleName, GlobalScopePrefix))
		tpl.WriteString(NamespaceSeparator)
	}
	tpl.WriteString(n.functionName)
	tpl.WriteString("(")
	for i, input := range def.Inputs {
		if i > 0 {
			tpl.WriteString(", ")
		}
		tpl.WriteString(syntax.ModifyReservedParameterName(input.Name))
		tpl.WriteString(": ")
		tpl.WriteString(syntax.Marker(input.Name))
	}
	tpl.WriteString(")")
	return tpl.String()
}

// collectOutputDefaults captures each output's declared default, aligned by
// position with the definition's outputs. Formatting is deferred to emission
// time.
func collectOutputDefaults(def *graph.NodeDef) []*graph.Value {
	defaults := make([]*graph.Value, len(def.Outputs))
	for i, output := range def.Outputs {
		defaults[i] = output.Default
	}
	return defaults
}

// outputField is one resolved output of an inline function definition.
type outputField struct {
	name         string
	typeName     string
	defaultValue string
}

// resolveOutputs maps each output to its escaped name, MDL type name, and
// default literal, falling back to the type's canonical default when none
// was declared.
func (n *CustomNode) resolveOutputs(def *graph.NodeDef, syntax *Syntax) []outputField {
	fields := make([]outputField, len(def.Outputs))
	for i, output := range def.Outputs {
		field := outputField{
			name:     syntax.ModifyReservedOutputName(output.Name),
			typeName: syntax.TypeName(output.Type),
		}
		if dv := n.outputDefaults[i]; dv != nil {
			field.defaultValue = syntax.Value(dv)
		} else {
			field.defaultValue = syntax.DefaultValue(output.Type)
		}
		fields[i] = field
	}
	return fields
}

// EmitFunctionDefinition writes the function definition for inline nodes.
// External functions live in their referenced module, so nothing is emitted
// for them.
func (n *CustomNode) EmitFunctionDefinition(node *graph.Node, gen *Generator, stage *Stage) error {
	if n.inline == nil {
		return nil
	}

	syntax := gen.Syntax()
	outputs := n.resolveOutputs(node.Def, syntax)
	if len(outputs) == 0 {
		return newError(ErrInternal, n.implName, "node definition has no outputs")
	}

	stage.EmitComment("generated code for implementation: '" + n.implName + "'")

	// With more than one output the function returns a synthesized
	// aggregate, one field per output.
	returnTypeName := outputs[len(outputs)-1].typeName
	if len(outputs) > 1 {
		returnTypeName = n.functionName + "_return_type"
		stage.EmitLine("struct "+returnTypeName, false)
		stage.BeginScope(ScopeBraces)
		for _, field := range outputs {
			stage.EmitLine(field.typeName+" "+field.name+" = "+field.defaultValue, true)
		}
		stage.EndScope(true)
	}

	// Signature.
	stage.EmitString(returnTypeName + " " + n.functionName + "\n")
	stage.BeginScope(ScopeParens)
	for i, input := range node.Def.Inputs {
		qualifier := ""
		if input.Uniform || input.Type.IsFilename() {
			qualifier = UniformQualifier + " "
		}
		delim := ","
		if i == len(node.Def.Inputs)-1 {
			delim = ""
		}
		stage.EmitLine(qualifier+syntax.TypeName(input.Type)+" "+syntax.ModifyReservedParameterName(input.Name)+delim, false)
	}
	stage.EndScope(false)

	// Body: default-initialized output locals, the user's source text
	// verbatim, then the return.
	stage.BeginScope(ScopeBraces)
	for _, field := range outputs {
		stage.EmitLine(field.typeName+" "+field.name+" = "+field.defaultValue, true)
	}
	stage.EmitLine(n.inline.sourceCode, false)
	if len(outputs) == 1 {
		stage.EmitLine("return "+outputs[0].name, true)
	} else {
		names := make([]string, len(outputs))
		for i, field := range outputs {
			names[i] = field.name
		}
		stage.EmitLine("return "+returnTypeName+"("+strings.Join(names, ", ")+")", true)
	}
	stage.EndScope(false)

	stage.EmitBlankLine()
	return nil
}

// EmitFunctionCall writes the call expression for one use site into the
// pixel stage, after materializing any closure-producing upstream nodes.
func (n *CustomNode) EmitFunctionCall(node *graph.Node, gen *Generator, stage *Stage) error {
	if stage.Name() != StagePixel {
		return nil
	}

	// Closures must be materialized before being referenced.
	if err := gen.emitDependentFunctionCalls(node, stage, graph.ClassificationClosure); err != nil {
		return err
	}

	n.emitCall(node, gen, stage)
	return nil
}
