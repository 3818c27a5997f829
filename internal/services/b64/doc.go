// Package b64 encodes and decodes an input with standard or URL-safe base64.
//
// Inputs are resolved through the store package, so "-" reads standard
// input. Decoded output must be valid UTF-8 text.
package b64
