// Package orbit provides the shared element-set types for deep-space
// propagation.
//
// The package defines:
//
//   - [Elements]: an osculating element set, owned by the caller and
//     mutated in place by the propagation routines
//   - [Derived]: quantities recovered from the epoch elements by the
//     near-earth secular theory and consumed by the deep-space model
//
// Angles are radians, mean motion is rad/min, time offsets are minutes
// since epoch throughout the module.
package orbit
