// Package distance provides vector distance calculations.
//
// # Supported Functions
//
//   - SquaredL2: Squared Euclidean distance (default for neighbor ranking)
//   - L2: Euclidean distance
//
// SquaredL2 preserves the ordering of L2, so neighbor selection uses it
// directly and skips the square root.
//
// # Usage
//
//	dist := distance.SquaredL2(a, b)
package distance
