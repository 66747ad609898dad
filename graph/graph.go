// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package graph

// Type is the port type of a node input or output.
type Type uint8

const (
	// TypeNone is the zero value; it never appears on a valid port.
	TypeNone Type = iota

	TypeBool
	TypeInt
	TypeFloat
	TypeVector2
	TypeVector3
	TypeVector4
	TypeColor3
	TypeMatrix33
	TypeMatrix44
	TypeString
	TypeFilename
	TypeBSDF
	TypeEDF
	TypeVDF
	TypeMaterial
)

// String returns the canonical port type name.
func (t Type) String() string {
	switch t {
	case TypeBool:
		return "boolean"
	case TypeInt:
		return "integer"
	case TypeFloat:
		return "float"
	case TypeVector2:
		return "vector2"
	case TypeVector3:
		return "vector3"
	case TypeVector4:
		return "vector4"
	case TypeColor3:
		return "color3"
	case TypeMatrix33:
		return "matrix33"
	case TypeMatrix44:
		return "matrix44"
	case TypeString:
		return "string"
	case TypeFilename:
		return "filename"
	case TypeBSDF:
		return "BSDF"
	case TypeEDF:
		return "EDF"
	case TypeVDF:
		return "VDF"
	case TypeMaterial:
		return "material"
	default:
		return "none"
	}
}

// IsClosure reports whether values of this type are closures that must be
// materialized by their producing node's call before being referenced.
func (t Type) IsClosure() bool {
	switch t {
	case TypeBSDF, TypeEDF, TypeVDF, TypeMaterial:
		return true
	default:
		return false
	}
}

// IsFilename reports whether this type is a file reference. File references
// cannot vary per invocation and are always uniform in generated code.
func (t Type) IsFilename() bool {
	return t == TypeFilename
}

// Value is a typed literal, used for input values and output defaults.
type Value struct {
	// Type tags the payload.
	Type Type

	// Bool holds the payload for TypeBool.
	Bool bool

	// Int holds the payload for TypeInt.
	Int int

	// Floats holds the components for float, vector, color, and matrix
	// types, in row-major order for matrices.
	Floats []float64

	// Str holds the payload for TypeString and TypeFilename.
	Str string
}

// Bool returns a boolean literal.
func Bool(v bool) *Value { return &Value{Type: TypeBool, Bool: v} }

// Int returns an integer literal.
func Int(v int) *Value { return &Value{Type: TypeInt, Int: v} }

// Float returns a float literal.
func Float(v float64) *Value { return &Value{Type: TypeFloat, Floats: []float64{v}} }

// Vector2 returns a two-component vector literal.
func Vector2(x, y float64) *Value { return &Value{Type: TypeVector2, Floats: []float64{x, y}} }

// Vector3 returns a three-component vector literal.
func Vector3(x, y, z float64) *Value { return &Value{Type: TypeVector3, Floats: []float64{x, y, z}} }

// Vector4 returns a four-component vector literal.
func Vector4(x, y, z, w float64) *Value {
	return &Value{Type: TypeVector4, Floats: []float64{x, y, z, w}}
}

// Color3 returns an RGB color literal.
func Color3(r, g, b float64) *Value { return &Value{Type: TypeColor3, Floats: []float64{r, g, b}} }

// String returns a string literal.
func String(v string) *Value { return &Value{Type: TypeString, Str: v} }

// Filename returns a file-reference literal.
func Filename(v string) *Value { return &Value{Type: TypeFilename, Str: v} }

// Input is a typed input port of a NodeDef.
type Input struct {
	// Name is the port name as declared.
	Name string

	// Type is the port type.
	Type Type

	// Uniform marks inputs that cannot vary per invocation.
	Uniform bool

	// Default is the declared default value, or nil.
	Default *Value
}

// Output is a typed output port of a NodeDef.
type Output struct {
	// Name is the port name as declared.
	Name string

	// Type is the port type.
	Type Type

	// Default is the declared default value, or nil.
	Default *Value
}

// NodeDef declares the interface of a function node: its name and its
// ordered input and output ports.
type NodeDef struct {
	Name    string
	Inputs  []Input
	Outputs []Output
}

// Well-known implementation attribute keys.
const (
	// AttrSourceCode carries inline source text for the function body.
	AttrSourceCode = "sourcecode"

	// AttrFile carries a slash-separated path to an external module file.
	AttrFile = "file"

	// AttrFunction carries the function name inside an external module.
	AttrFunction = "function"
)

// Implementation describes how a NodeDef is realized, as an attribute map.
// Exactly one of AttrSourceCode or AttrFile is expected to be present.
type Implementation struct {
	// Name identifies the implementation in diagnostics.
	Name string

	// NodeDef is the interface this implementation realizes.
	NodeDef *NodeDef

	// Attributes holds the implementation attributes by key.
	Attributes map[string]string
}

// Attribute returns the attribute value for key, or "" when absent.
func (im *Implementation) Attribute(key string) string {
	return im.Attributes[key]
}

// Classification is a bit set describing what kind of result a node
// produces, used by backends to order dependent emissions.
type Classification uint32

const (
	// ClassificationClosure marks nodes producing closure-valued results.
	ClassificationClosure Classification = 1 << iota

	// ClassificationConstant marks nodes producing compile-time constants.
	ClassificationConstant
)

// Binding supplies the value for one input at a use site: either a
// connection to an upstream node's output, or a literal.
type Binding struct {
	// Upstream is the connected node, or nil for an unconnected input.
	Upstream *Node

	// Output is the upstream output port name when Upstream is set.
	Output string

	// Value is the bound literal for an unconnected input, or nil to fall
	// back to the input's declared default.
	Value *Value
}

// Node is a use-site instance of a NodeDef inside a generated program.
type Node struct {
	// Name is the unique instance name within the program.
	Name string

	// Def is the node's interface.
	Def *NodeDef

	// Classification describes the node's result kind.
	Classification Classification

	// Bindings maps input port names to their use-site bindings. Inputs
	// without an entry use their declared defaults.
	Bindings map[string]Binding
}

// HasClassification reports whether all bits in mask are set.
func (n *Node) HasClassification(mask Classification) bool {
	return n.Classification&mask == mask
}

// Binding returns the binding for the named input, which may be the zero
// Binding when the input is unbound.
func (n *Node) Binding(input string) Binding {
	return n.Bindings[input]
}
