// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package mdl

import (
	"strconv"
	"strings"

	"github.com/gogpu/shadergen/graph"
)

// Syntax tokens of the MDL target language.
const (
	// NamespaceSeparator separates components of a qualified MDL name.
	NamespaceSeparator = "::"

	// GlobalScopePrefix marks a name as rooted in the global namespace.
	GlobalScopePrefix = "::"

	// ModuleExtension is the filename extension of MDL module files.
	ModuleExtension = ".mdl"

	// UniformQualifier is the parameter qualifier for non-varying values.
	UniformQualifier = "uniform"

	// VersionSuffixMarker is the source-code marker replaced with the
	// active MDL version's filename suffix.
	VersionSuffixMarker = "MDL_VERSION_SUFFIX"
)

// Source-code marker delimiters. Markers appear both in call templates
// (one per input) and in module paths (version marker).
const (
	markerOpen  = "{{"
	markerClose = "}}"
)

// Syntax maps graph types and identifiers to MDL source text.
type Syntax struct{}

// NewSyntax creates the MDL syntax mapper.
func NewSyntax() *Syntax {
	return &Syntax{}
}

// TypeName returns the MDL type name for a port type.
func (s *Syntax) TypeName(t graph.Type) string {
	switch t {
	case graph.TypeBool:
		return "bool"
	case graph.TypeInt:
		return "int"
	case graph.TypeFloat:
		return "float"
	case graph.TypeVector2:
		return "float2"
	case graph.TypeVector3:
		return "float3"
	case graph.TypeVector4:
		return "float4"
	case graph.TypeColor3:
		return "color"
	case graph.TypeMatrix33:
		return "float3x3"
	case graph.TypeMatrix44:
		return "float4x4"
	case graph.TypeString:
		return "string"
	case graph.TypeFilename:
		return "texture_2d"
	case graph.TypeBSDF:
		return "bsdf"
	case graph.TypeEDF:
		return "edf"
	case graph.TypeVDF:
		return "vdf"
	case graph.TypeMaterial:
		return "material"
	default:
		return "unknown_type"
	}
}

// DefaultValue returns the canonical default literal for a port type.
func (s *Syntax) DefaultValue(t graph.Type) string {
	switch t {
	case graph.TypeBool:
		return "false"
	case graph.TypeInt:
		return "0"
	case graph.TypeFloat:
		return "0.0"
	case graph.TypeVector2:
		return "float2(0.0)"
	case graph.TypeVector3:
		return "float3(0.0)"
	case graph.TypeVector4:
		return "float4(0.0)"
	case graph.TypeColor3:
		return "color(0.0)"
	case graph.TypeMatrix33:
		return "float3x3(1.0)"
	case graph.TypeMatrix44:
		return "float4x4(1.0)"
	case graph.TypeString:
		return `""`
	case graph.TypeFilename:
		return "texture_2d()"
	case graph.TypeBSDF:
		return "bsdf()"
	case graph.TypeEDF:
		return "edf()"
	case graph.TypeVDF:
		return "vdf()"
	case graph.TypeMaterial:
		return "material()"
	default:
		return "unknown_value"
	}
}

// Value returns the MDL literal for a typed value. Values of closure types
// have no literal form and fall back to the type's default.
func (s *Syntax) Value(v *graph.Value) string {
	if v == nil {
		return ""
	}
	switch v.Type {
	case graph.TypeBool:
		if v.Bool {
			return "true"
		}
		return "false"
	case graph.TypeInt:
		return strconv.Itoa(v.Int)
	case graph.TypeFloat:
		return formatFloat(component(v, 0))
	case graph.TypeVector2, graph.TypeVector3, graph.TypeVector4,
		graph.TypeColor3, graph.TypeMatrix33, graph.TypeMatrix44:
		return s.TypeName(v.Type) + "(" + joinComponents(v.Floats) + ")"
	case graph.TypeString:
		return strconv.Quote(v.Str)
	case graph.TypeFilename:
		return "texture_2d(" + strconv.Quote(v.Str) + ")"
	default:
		return s.DefaultValue(v.Type)
	}
}

// ModifyReservedParameterName escapes a parameter name that collides with
// an MDL reserved word.
func (s *Syntax) ModifyReservedParameterName(name string) string {
	return escapeReserved(name)
}

// ModifyReservedOutputName escapes an output name that collides with an MDL
// reserved word.
func (s *Syntax) ModifyReservedOutputName(name string) string {
	return escapeReserved(name)
}

// Marker wraps name in source-code marker delimiters.
func (s *Syntax) Marker(name string) string {
	return markerOpen + name + markerClose
}

// ReplaceSourceCodeMarkers scans text for {{...}} markers and replaces each
// with resolve(marker). A resolver returning the marker's own text (wrapped
// again via Marker) leaves it untouched, so unrecognized markers can pass
// through unchanged.
func (s *Syntax) ReplaceSourceCodeMarkers(text string, resolve func(marker string) string) string {
	var out strings.Builder
	for {
		start := strings.Index(text, markerOpen)
		if start < 0 {
			break
		}
		end := strings.Index(text[start+len(markerOpen):], markerClose)
		if end < 0 {
			break
		}
		marker := text[start+len(markerOpen) : start+len(markerOpen)+end]
		out.WriteString(text[:start])
		out.WriteString(resolve(marker))
		text = text[start+len(markerOpen)+end+len(markerClose):]
	}
	out.WriteString(text)
	return out.String()
}

// formatFloat renders a float literal with an explicit decimal point.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// joinComponents renders float components as a comma-separated list.
func joinComponents(fs []float64) string {
	parts := make([]string, len(fs))
	for i, f := range fs {
		parts[i] = formatFloat(f)
	}
	return strings.Join(parts, ", ")
}

// component returns the i-th float component, or 0 when absent.
func component(v *graph.Value, i int) float64 {
	if i >= len(v.Floats) {
		return 0
	}
	return v.Floats[i]
}
