package crypto

import (
	"crypto/ed25519"
	"crypto/rand"
	"io"

	"filippo.io/edwards25519"

	"textcrypt/internal/domain"
)

// Ed25519Signer signs with an Ed25519 private key expanded from a seed.
type Ed25519Signer struct {
	key ed25519.PrivateKey
}

// NewEd25519Signer expands seed into a signing key.
func NewEd25519Signer(seed [Ed25519SeedSize]byte) *Ed25519Signer {
	return &Ed25519Signer{key: ed25519.NewKeyFromSeed(seed[:])}
}

// ParseEd25519Signer uses the first 32 bytes of raw as the seed.
func ParseEd25519Signer(raw []byte) (*Ed25519Signer, error) {
	seed, err := key32(raw)
	if err != nil {
		return nil, err
	}
	defer Wipe(seed[:])
	return NewEd25519Signer(seed), nil
}

// LoadEd25519Signer reads an Ed25519 secret key file.
func LoadEd25519Signer(path string) (*Ed25519Signer, error) {
	return LoadKey(path, ParseEd25519Signer)
}

// Sign returns the 64-byte signature of the message.
func (s *Ed25519Signer) Sign(r io.Reader) ([]byte, error) {
	msg, err := readMessage(r)
	if err != nil {
		return nil, err
	}
	return ed25519.Sign(s.key, msg), nil
}

// Public returns the verifying key bytes.
func (s *Ed25519Signer) Public() []byte {
	return append([]byte(nil), s.key.Public().(ed25519.PublicKey)...)
}

// Ed25519Verifier verifies with an Ed25519 public key.
type Ed25519Verifier struct {
	key ed25519.PublicKey
}

// ParseEd25519Verifier uses the first 32 bytes of raw as the public key.
// The bytes must decode to a point on the curve.
func ParseEd25519Verifier(raw []byte) (*Ed25519Verifier, error) {
	pub, err := key32(raw)
	if err != nil {
		return nil, err
	}
	if _, err := new(edwards25519.Point).SetBytes(pub[:]); err != nil {
		return nil, domain.Wrapf(domain.ErrKey, err, "ed25519 public key")
	}
	return &Ed25519Verifier{key: ed25519.PublicKey(pub[:])}, nil
}

// LoadEd25519Verifier reads an Ed25519 public key file.
func LoadEd25519Verifier(path string) (*Ed25519Verifier, error) {
	return LoadKey(path, ParseEd25519Verifier)
}

// Verify reports whether sig is a valid signature of the message. A
// signature that is not exactly 64 bytes is a domain.ErrVerification error.
func (v *Ed25519Verifier) Verify(r io.Reader, sig []byte) (bool, error) {
	msg, err := readMessage(r)
	if err != nil {
		return false, err
	}
	if len(sig) != Ed25519SignatureSize {
		return false, domain.Errorf(domain.ErrVerification,
			"ed25519 signature must be %d bytes, got %d", Ed25519SignatureSize, len(sig))
	}
	return ed25519.Verify(v.key, msg, sig), nil
}

// Ed25519Generator creates Ed25519 key pairs from Rand. A nil Rand uses
// crypto/rand.
type Ed25519Generator struct {
	Rand io.Reader
}

// Generate returns the 32-byte seed followed by the 32-byte public key.
func (g Ed25519Generator) Generate() ([][]byte, error) {
	random := g.Rand
	if random == nil {
		random = rand.Reader
	}
	seed := make([]byte, Ed25519SeedSize)
	if _, err := io.ReadFull(random, seed); err != nil {
		return nil, domain.Wrapf(domain.ErrIO, err, "generate ed25519 seed")
	}
	priv := ed25519.NewKeyFromSeed(seed)
	defer Wipe(priv)
	pub := append([]byte(nil), priv.Public().(ed25519.PublicKey)...)
	return [][]byte{seed, pub}, nil
}
