// Package uniqueid produces identifiers suitable as database primary keys.
//
// These identifiers have the following properties:
//   - short (56 bits of entropy, ~10 characters in base62)
//   - collision-free against a caller-supplied uniqueness predicate
//   - encodable with any basen alphabet
//
// Without a predicate, 128-bit version 4 UUIDs are used instead, their
// collision probability is small enough that no check is needed.
package uniqueid
