package orbit

import "errors"

// Domain errors for propagation setup.
var (
	// ErrEpochUnresolved indicates an epoch outside the resolvable
	// calendar range; no context can be built from it.
	ErrEpochUnresolved = errors.New("orbit: epoch outside resolvable range")

	// ErrNotDeepSpace indicates an orbital period below the deep-space
	// threshold; the deep-space model does not apply.
	ErrNotDeepSpace = errors.New("orbit: orbital period below deep-space threshold")

	// ErrInvalidElements indicates an element set with NaN or Inf fields.
	ErrInvalidElements = errors.New("orbit: invalid elements (NaN or Inf detected)")
)
