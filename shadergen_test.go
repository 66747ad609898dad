// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package shadergen_test

import (
	"strings"
	"testing"

	"github.com/gogpu/shadergen"
	"github.com/gogpu/shadergen/graph"
	"github.com/gogpu/shadergen/mdl"
)

func TestGenerateMDL_External(t *testing.T) {
	def := &graph.NodeDef{
		Name: "mx_cellnoise",
		Inputs: []graph.Input{
			{Name: "position", Type: graph.TypeVector3},
		},
		Outputs: []graph.Output{
			{Name: "out", Type: graph.TypeFloat},
		},
	}
	impl := &graph.Implementation{
		Name:    "IM_cellnoise_mdl",
		NodeDef: def,
		Attributes: map[string]string{
			graph.AttrFile:     "materialx/noise{{MDL_VERSION_SUFFIX}}.mdl",
			graph.AttrFunction: "mx_cellnoise_float",
		},
	}
	node := &graph.Node{
		Name: "noise1",
		Def:  def,
		Bindings: map[string]graph.Binding{
			"position": {Value: graph.Vector3(1, 2, 3)},
		},
	}

	source, err := shadergen.GenerateMDL(node, impl, mdl.Options{Version: mdl.Version1_8})
	if err != nil {
		t.Fatalf("GenerateMDL() error = %v", err)
	}

	// External functions get no emitted definition, only a qualified call.
	want := "float noise1_out = materialx::noise_1_8::mx_cellnoise_float(position: float3(1.0, 2.0, 3.0));\n"
	if source != want {
		t.Errorf("GenerateMDL() = %q, want %q", source, want)
	}
}

func TestGenerateMDL_InitializationError(t *testing.T) {
	def := &graph.NodeDef{
		Name:    "mx_broken",
		Outputs: []graph.Output{{Name: "out", Type: graph.TypeFloat}},
	}
	impl := &graph.Implementation{
		Name:       "IM_broken",
		NodeDef:    def,
		Attributes: map[string]string{},
	}
	node := &graph.Node{Name: "broken1", Def: def}

	_, err := shadergen.GenerateMDL(node, impl, mdl.DefaultOptions())
	if err == nil {
		t.Fatal("GenerateMDL() error = nil, want error")
	}
	if !strings.Contains(err.Error(), "IM_broken") {
		t.Errorf("error %q does not name the implementation", err)
	}
}
