//go:build nolzma

package codec

// When built with the "nolzma" tag — the LZMA library is unavailable —
// `lzma-binary` degrades to `opaque-binary`, deterministically and without
// any attempt at compression, per spec §4.C.
var LZMABinary SizedCodec = binaryCodec{}
