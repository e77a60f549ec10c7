package property

import "errors"

// ErrMissingValue indicates a set-mode key argument had no "=value" suffix.
var ErrMissingValue = errors.New("property: missing value")
