// Package text dispatches text sign, verify, key generation, encryption and
// decryption to the matching crypto engine.
//
// Each call resolves its input reference, loads the key, runs one engine and
// returns a URL-safe base64 result. Unknown formats fail with
// domain.ErrConfig before the key file or the input is touched. No state is
// kept between calls.
package text
