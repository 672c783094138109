// Package deepspace implements the lunar/solar and geopotential-resonance
// perturbation model for orbits with periods of 225 minutes and up.
//
// The model is a per-satellite state machine:
//
//   - [Initialize] builds a [Context] from the epoch elements: it
//     accumulates lunisolar secular rates, classifies the resonance regime
//     (synchronous, half-day, or none) and seeds the resonance integrator.
//   - [Context.Secular] advances an element set to a signed elapsed time,
//     running the libration integrator only when the orbit is resonant.
//   - [Context.Periodic] applies the short-period lunisolar corrections,
//     switching to the Lyddane formulation near zero inclination.
//
// A Context is owned by one satellite and is not safe for concurrent use;
// independent satellites with their own contexts propagate in parallel
// freely. The only shared state is the lunar geometry cache, which is
// keyed by epoch day and guarded internally.
//
// Call order within one context is Initialize once, then Secular followed
// by Periodic for each requested time. Secular accepts arbitrary time
// sequences but only amortizes its integrator work across monotonic ones.
package deepspace
