// Package store resolves input references and persists generated keys.
//
// Inputs are either "-" for standard input or a file path. Key files are
// raw bytes with no header, written 0600 through a temp file and rename so a
// crash never leaves a half-written key behind.
package store
