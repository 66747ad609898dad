// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package mdl

import "fmt"

// Version represents a target MDL language version.
type Version uint8

// Supported MDL versions.
const (
	// Version1_6 targets MDL 1.6, the oldest supported dialect.
	Version1_6 Version = iota

	// Version1_7 targets MDL 1.7.
	Version1_7

	// Version1_8 targets MDL 1.8.
	Version1_8

	// Version1_9 targets MDL 1.9.
	Version1_9

	// Version1_10 targets MDL 1.10, the latest supported dialect.
	Version1_10
)

// VersionLatest is the most recent MDL version the backend targets.
const VersionLatest = Version1_10

// String returns the version in "major.minor" form.
func (v Version) String() string {
	switch v {
	case Version1_6:
		return "1.6"
	case Version1_7:
		return "1.7"
	case Version1_8:
		return "1.8"
	case Version1_9:
		return "1.9"
	case Version1_10:
		return "1.10"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(v))
	}
}

// FilenameSuffix returns the suffix appended to module filenames that ship
// one variant per MDL version, e.g. "_1_7". Substituted for the version
// marker when qualifying module paths. Unsuffixed module files are the
// latest variant, so the latest version maps to "".
func (v Version) FilenameSuffix() string {
	switch v {
	case Version1_6:
		return "_1_6"
	case Version1_7:
		return "_1_7"
	case Version1_8:
		return "_1_8"
	case Version1_9:
		return "_1_9"
	default:
		return ""
	}
}
