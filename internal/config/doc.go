// SPDX-License-Identifier: EPL-2.0

// Package config loads cubenote settings from a TOML or YAML file.
//
// Example cubenote.toml:
//
//	[pipeline]
//	bin_size = 2048
//	gain = 1.0
//	faces = ["L", "R"]
//	rescale = false
//	rescale_flat = "fail"   # or "zero"
//	tail = "drop"           # or "close"
//	mixdown = false
//
//	[logging]
//	level = "info"
//	format = "console"      # or "json"
//
// The same keys work in YAML. Missing keys take the defaults shown.
package config
