// Package digest computes SHA family digests of text. Text is
// hashed over its UTF-8 bytes and rendered as lowercase hex.
// The set of algorithms is closed: ParseAlgorithm validates
// free-form names at the boundary and Sum only accepts the
// enumerated Algorithm values.
package digest
