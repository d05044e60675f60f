// SPDX-License-Identifier: EPL-2.0

// Command cubenote converts audio recordings into Rubik's cube notation.
//
// Usage:
//
//	cubenote notate take1.wav            # table of moves
//	cubenote notate --plain take1.wav    # "L2 R L' ..."
//	cubenote notate --json take1.wav
//	cubenote plot --tail close take1.wav # braille plots per channel
//	cubenote formats                     # supported file types
//	cubenote config show --format yaml
//
// Settings come from the file given with --config (TOML or YAML) and can
// be overridden per run with flags.
package main
