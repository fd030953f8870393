/*
Package display renders weft subtrees on devices with fixed-width fonts.
Think of this package in terms of `fmt.Println` for node trees.

Output is an indented outline with box-drawing connectors, one node per
line. Payload labels are colored by node role (root, internal, external)
and shortened to the configured line width. Label widths are measured in
fixed-width positions per UAX#11, with grapheme clusters as the unit, so
that trees carrying non-Latin payloads line up correctly on a terminal.

This package does not constitute a typesetter; it will not deal with
fonts, glyphing or locale-specific rendering gaps of an output device.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2023–24, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package display

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'weft'
func tracer() tracing.Trace {
	return tracing.Select("weft")
}
