package registry

import "errors"

// Error classification codes — spec §7's State/Integrity taxonomy.
var (
	// ErrDuplicateDefault indicates a second model tried to register as
	// default; exactly one model may be marked default (spec §4.F).
	ErrDuplicateDefault = errors.New("registry: duplicate default model registration")
	// ErrNoDefault indicates Init was called before any model registered
	// itself as default.
	ErrNoDefault = errors.New("registry: no default model registered")
	// ErrNoMatch indicates neither the default nor any alternate model
	// recognized the region.
	ErrNoMatch = errors.New("registry: no model recognized the region")
)
