// Package registry implements the protocol/datamodel registry of spec §4.F:
// a default model plus an ordered list of alternates, auto-probing a region
// to find the matching on-disk layout.
//
// Each datamodel package registers itself from an init() function — mirror
// of the C implementation's __attribute__((constructor)) hooks, expressed
// in Go the way the teacher's generator packages self-register into a
// factory. Callers blank-import the datamodel packages they want available
// (see cmd/tlvstore/main.go) before calling Init.
package registry
