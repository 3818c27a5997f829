// Package genpass generates random passwords from look-alike-free
// alphabets and scores their strength.
//
// It backs the genpass command and supplies printable key material to the
// BLAKE3 key generator.
package genpass
