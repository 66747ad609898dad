// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package mdl

// reservedKeywords contains MDL reserved words and predefined type names.
// Based on the MDL 1.x language specification, including words reserved
// for future use.
var reservedKeywords = map[string]struct{}{
	// =========================================================================
	// Keywords
	// =========================================================================
	"annotation": {},
	"break":      {},
	"case":       {},
	"cast":       {},
	"const":      {},
	"continue":   {},
	"default":    {},
	"do":         {},
	"else":       {},
	"enum":       {},
	"export":     {},
	"false":      {},
	"for":        {},
	"if":         {},
	"import":     {},
	"in":         {},
	"let":        {},
	"mdl":        {},
	"module":     {},
	"package":    {},
	"return":     {},
	"struct":     {},
	"switch":     {},
	"true":       {},
	"typedef":    {},
	"uniform":    {},
	"using":      {},
	"varying":    {},
	"while":      {},

	// =========================================================================
	// Predefined types
	// =========================================================================
	"bool":              {},
	"bool2":             {},
	"bool3":             {},
	"bool4":             {},
	"bsdf":              {},
	"bsdf_measurement":  {},
	"color":             {},
	"double":            {},
	"double2":           {},
	"double3":           {},
	"double4":           {},
	"double2x2":         {},
	"double3x3":         {},
	"double4x4":         {},
	"edf":               {},
	"float":             {},
	"float2":            {},
	"float3":            {},
	"float4":            {},
	"float2x2":          {},
	"float3x3":          {},
	"float4x4":          {},
	"hair_bsdf":         {},
	"int":               {},
	"int2":              {},
	"int3":              {},
	"int4":              {},
	"intensity_mode":    {},
	"light_profile":     {},
	"material":          {},
	"material_emission": {},
	"material_geometry": {},
	"material_surface":  {},
	"material_volume":   {},
	"string":            {},
	"texture_2d":        {},
	"texture_3d":        {},
	"texture_cube":      {},
	"texture_ptex":      {},
	"vdf":               {},

	// =========================================================================
	// Reserved for future use
	// =========================================================================
	"auto":         {},
	"catch":        {},
	"char":         {},
	"class":        {},
	"dynamic_cast": {},
	"explicit":     {},
	"extern":       {},
	"foreach":      {},
	"friend":       {},
	"goto":         {},
	"graph":        {},
	"half":         {},
	"inline":       {},
	"inout":        {},
	"lambda":       {},
	"long":         {},
	"mutable":      {},
	"namespace":    {},
	"native":       {},
	"new":          {},
	"operator":     {},
	"phase":        {},
	"private":      {},
	"protected":    {},
	"public":       {},
	"sampler":      {},
	"shader":       {},
	"short":        {},
	"signed":       {},
	"sizeof":       {},
	"static":       {},
	"technique":    {},
	"template":     {},
	"this":         {},
	"throw":        {},
	"try":          {},
	"typeid":       {},
	"typename":     {},
	"union":        {},
	"unsigned":     {},
	"virtual":      {},
	"void":         {},
	"volatile":     {},
	"wchar_t":      {},
}

// isReserved reports whether name is an MDL reserved word.
func isReserved(name string) bool {
	_, ok := reservedKeywords[name]
	return ok
}

// escapeReserved returns name with a suffix appended when it collides with
// an MDL reserved word, and unchanged otherwise.
func escapeReserved(name string) string {
	if isReserved(name) {
		return name + "_mx"
	}
	return name
}
