// Package domain defines the core phonological entities for phonet.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Phonet: the feature bundle of one speech sound (Consonant or Vowel)
//   - Feature domains: VocalFolds, Place, Manner, Airstream, Height,
//     Backness and Rounding, each with an Unmarked wildcard
//   - Inventory: a named set of IPA symbols
//   - NaturalClass: a generalized pattern and its members
//
// It also holds the pure feature algebra (Generalize, Enumerate, Matches)
// and the rewrite rules (Voice, Devoice, Spirantize, Retract).
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
