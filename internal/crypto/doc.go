// Package crypto implements the text signing and encryption engines.
//
// Contents
//
//   - BLAKE3 keyed hashing as a MAC (Blake3, Blake3Generator)
//   - Ed25519 signing and verification (Ed25519Signer, Ed25519Verifier,
//     Ed25519Generator)
//   - ChaCha20-Poly1305 authenticated encryption (ChaCha20Poly1305)
//   - URL-safe unpadded base64 for every text result (EncodeText, DecodeText)
//   - Checked key slicing and file loading (LoadKey)
//   - Best-effort memory wiping for sensitive byte slices (Wipe)
//
// # Notes
//
// Every constructor validates the byte length before slicing and returns a
// domain.ErrKey error on short input; extra trailing bytes are ignored.
// Engines hold only immutable key material, so a loaded engine may be shared
// by concurrent callers.
//
// The ChaCha20-Poly1305 key file carries its own nonce (bytes 0..12), which
// means every message encrypted under one key file reuses that nonce. This
// keeps existing key files working; do not encrypt many distinct messages
// with a single key file.
package crypto
