// Package basen converts non-negative integers to and from their string
// representation in an arbitrary radix using a configurable symbol alphabet.
//
// The predefined alphabets keep the exact symbol order of the RFCs they come
// from, so encoded values are stable across processes and may be persisted
// or shared.
package basen
