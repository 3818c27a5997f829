package crypto

import (
	"crypto/ed25519"

	"golang.org/x/crypto/chacha20poly1305"
)

const (
	// Blake3KeySize is the size of a BLAKE3 MAC key in bytes.
	Blake3KeySize = 32
	// Blake3SignatureSize is the size of a BLAKE3 keyed digest in bytes.
	Blake3SignatureSize = 32

	// Ed25519SeedSize is the size of an Ed25519 signing key seed in bytes.
	Ed25519SeedSize = ed25519.SeedSize
	// Ed25519PublicKeySize is the size of an Ed25519 verifying key in bytes.
	Ed25519PublicKeySize = ed25519.PublicKeySize
	// Ed25519SignatureSize is the size of an Ed25519 signature in bytes.
	Ed25519SignatureSize = ed25519.SignatureSize

	// ChaChaNonceSize is the nonce prefix of a ChaCha20-Poly1305 key file.
	ChaChaNonceSize = chacha20poly1305.NonceSize
	// ChaChaKeySize is the cipher key that follows the nonce.
	ChaChaKeySize = chacha20poly1305.KeySize
	// ChaChaKeyFileSize is the minimum size of a ChaCha20-Poly1305 key file.
	ChaChaKeyFileSize = ChaChaNonceSize + ChaChaKeySize
	// ChaChaTagSize is the Poly1305 tag appended to every ciphertext.
	ChaChaTagSize = chacha20poly1305.Overhead
)
