// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package mdl

import (
	"testing"

	"github.com/gogpu/shadergen/graph"
)

// =============================================================================
// Type Mapping Tests
// =============================================================================

func TestSyntax_TypeName(t *testing.T) {
	tests := []struct {
		typ  graph.Type
		want string
	}{
		{graph.TypeBool, "bool"},
		{graph.TypeInt, "int"},
		{graph.TypeFloat, "float"},
		{graph.TypeVector2, "float2"},
		{graph.TypeVector3, "float3"},
		{graph.TypeVector4, "float4"},
		{graph.TypeColor3, "color"},
		{graph.TypeMatrix33, "float3x3"},
		{graph.TypeMatrix44, "float4x4"},
		{graph.TypeString, "string"},
		{graph.TypeFilename, "texture_2d"},
		{graph.TypeBSDF, "bsdf"},
		{graph.TypeEDF, "edf"},
		{graph.TypeVDF, "vdf"},
		{graph.TypeMaterial, "material"},
	}

	syntax := NewSyntax()
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := syntax.TypeName(tt.typ); got != tt.want {
				t.Errorf("TypeName(%v) = %q, want %q", tt.typ, got, tt.want)
			}
		})
	}
}

func TestSyntax_DefaultValue(t *testing.T) {
	tests := []struct {
		typ  graph.Type
		want string
	}{
		{graph.TypeBool, "false"},
		{graph.TypeInt, "0"},
		{graph.TypeFloat, "0.0"},
		{graph.TypeVector3, "float3(0.0)"},
		{graph.TypeColor3, "color(0.0)"},
		{graph.TypeMatrix33, "float3x3(1.0)"},
		{graph.TypeString, `""`},
		{graph.TypeFilename, "texture_2d()"},
		{graph.TypeBSDF, "bsdf()"},
	}

	syntax := NewSyntax()
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := syntax.DefaultValue(tt.typ); got != tt.want {
				t.Errorf("DefaultValue(%v) = %q, want %q", tt.typ, got, tt.want)
			}
		})
	}
}

func TestSyntax_Value(t *testing.T) {
	tests := []struct {
		name  string
		value *graph.Value
		want  string
	}{
		{"bool true", graph.Bool(true), "true"},
		{"bool false", graph.Bool(false), "false"},
		{"int", graph.Int(42), "42"},
		{"float whole", graph.Float(1), "1.0"},
		{"float fraction", graph.Float(0.25), "0.25"},
		{"vector2", graph.Vector2(1, 2), "float2(1.0, 2.0)"},
		{"vector3", graph.Vector3(0, 0.5, 1), "float3(0.0, 0.5, 1.0)"},
		{"color3", graph.Color3(1, 0.5, 0), "color(1.0, 0.5, 0.0)"},
		{"string", graph.String("srgb_texture"), `"srgb_texture"`},
		{"filename", graph.Filename("textures/wood.png"), `texture_2d("textures/wood.png")`},
	}

	syntax := NewSyntax()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := syntax.Value(tt.value); got != tt.want {
				t.Errorf("Value() = %q, want %q", got, tt.want)
			}
		})
	}
}

// =============================================================================
// Reserved Name Tests
// =============================================================================

func TestSyntax_ModifyReservedNames(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"in", "in_mx"},
		{"color", "color_mx"},
		{"material", "material_mx"},
		{"uniform", "uniform_mx"},
		{"out", "out"},
		{"roughness", "roughness"},
	}

	syntax := NewSyntax()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := syntax.ModifyReservedParameterName(tt.name); got != tt.want {
				t.Errorf("ModifyReservedParameterName(%q) = %q, want %q", tt.name, got, tt.want)
			}
			if got := syntax.ModifyReservedOutputName(tt.name); got != tt.want {
				t.Errorf("ModifyReservedOutputName(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

// =============================================================================
// Marker Substitution Tests
// =============================================================================

func TestSyntax_ReplaceSourceCodeMarkers(t *testing.T) {
	syntax := NewSyntax()
	resolve := func(marker string) string {
		switch marker {
		case "a":
			return "1"
		case "b":
			return "2"
		default:
			return syntax.Marker(marker)
		}
	}

	tests := []struct {
		name string
		text string
		want string
	}{
		{"no markers", "plain text", "plain text"},
		{"single marker", "x = {{a}}", "x = 1"},
		{"multiple markers", "{{a}} + {{b}} + {{a}}", "1 + 2 + 1"},
		{"unrecognized passes through", "{{a}}::{{keep}}", "1::{{keep}}"},
		{"unterminated marker kept", "x = {{a", "x = {{a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := syntax.ReplaceSourceCodeMarkers(tt.text, resolve); got != tt.want {
				t.Errorf("ReplaceSourceCodeMarkers(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestSyntax_Marker(t *testing.T) {
	syntax := NewSyntax()
	if got, want := syntax.Marker("x"), "{{x}}"; got != want {
		t.Errorf("Marker(\"x\") = %q, want %q", got, want)
	}
}

// =============================================================================
// Float Formatting Tests
// =============================================================================

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.0"},
		{1, "1.0"},
		{-2, "-2.0"},
		{0.5, "0.5"},
		{1.25, "1.25"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := formatFloat(tt.in); got != tt.want {
				t.Errorf("formatFloat(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
