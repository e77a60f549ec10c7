package registry

import (
	"errors"
	"fmt"
	"sync"

	"github.com/edzius/tlvstore/internal/datamodel"
)

var (
	mu           sync.RWMutex
	defaultModel datamodel.Model
	alternates   []datamodel.Model
)

// RegisterDefault marks m as the primary model probed first by Init.
// Exactly one model may be registered as default; a second call panics at
// init() time the way a duplicate const/route registration would, since
// this is a programmer error in the compiled-in model list, not a runtime
// condition a caller can recover from.
func RegisterDefault(m datamodel.Model) {
	mu.Lock()
	defer mu.Unlock()

	if defaultModel != nil {
		panic(fmt.Sprintf("registry: %s: %q and %q", ErrDuplicateDefault, defaultModel.Name(), m.Name()))
	}

	defaultModel = m
}

// RegisterAlternate appends m to the ordered list of fallback models tried
// when the default fails to recognize a region.
func RegisterAlternate(m datamodel.Model) {
	mu.Lock()
	defer mu.Unlock()

	alternates = append(alternates, m)
}

// Reset clears all registrations. Exposed for tests that need a clean
// registry between cases; production code never calls it.
func Reset() {
	mu.Lock()
	defer mu.Unlock()

	defaultModel = nil
	alternates = nil
}

// Init probes region against the default model first, then — only when
// force is false — each alternate in registration order, adopting the
// first model whose Init succeeds, per spec §4.F.
func Init(region []byte, force bool) (datamodel.Model, error) {
	mu.RLock()
	def := defaultModel
	alts := append([]datamodel.Model(nil), alternates...)
	mu.RUnlock()

	if def == nil {
		return nil, ErrNoDefault
	}

	if err := def.Init(region, force); err == nil {
		return def, nil
	} else if force {
		return nil, fmt.Errorf("registry: default model %q: %w", def.Name(), err)
	}

	for _, alt := range alts {
		if err := alt.Init(region, false); err == nil {
			return alt, nil
		}
	}

	return nil, fmt.Errorf("registry: %w", ErrNoMatch)
}

// Close flushes and releases handle, spec §4.F's free(handle).
func Close(handle datamodel.Model) error {
	return handle.Flush()
}

// IsUnrecognized reports whether err indicates a model declined to claim a
// region (as opposed to a hard failure like a CRC mismatch that should
// still abort a forced init).
func IsUnrecognized(err error) bool {
	return errors.Is(err, datamodel.ErrUnrecognized)
}
