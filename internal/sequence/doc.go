// Package sequence owns the bitcode pipeline.
//
// Ownership boundary:
// - 4-bit block tokenization
// - deletion-only repair of digit/operator alternation
// - expression rendering and left-to-right evaluation
//
// A Sequence is repaired exactly once, in New, and is read-only afterwards.
// The package never logs; warnings are returned to the caller.
package sequence
