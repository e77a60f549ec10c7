// Package codec implements the bidirectional converters between user text
// (or file contents) and on-storage bytes used by the datamodels — spec
// §4.C. Each codec is a small capability set, never an opaque function
// pointer, per the REDESIGN FLAGS in spec §9.
//
// # Basic Usage
//
//	out, err := codec.Text.Parse([]byte("widget-7"))
//	s, err := codec.Text.Format(out)
//
// Parse/Format never mutate their input; size-only callers use ParseSize
// and FormatSize, which MUST report exactly the byte count the non-null
// form would have produced (spec §8, "Size query fidelity").
package codec
