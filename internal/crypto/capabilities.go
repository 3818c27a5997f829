package crypto

import "io"

// Signer signs the full contents of a reader.
type Signer interface {
	Sign(r io.Reader) ([]byte, error)
}

// Verifier checks a signature against the full contents of a reader.
// A well-formed but wrong signature yields false, not an error.
type Verifier interface {
	Verify(r io.Reader, sig []byte) (bool, error)
}

// Generator produces fresh key material as an ordered list of blobs.
// Single-key formats return one blob; key pairs return secret then public.
type Generator interface {
	Generate() ([][]byte, error)
}

var (
	_ Signer    = (*Blake3)(nil)
	_ Verifier  = (*Blake3)(nil)
	_ Signer    = (*Ed25519Signer)(nil)
	_ Verifier  = (*Ed25519Verifier)(nil)
	_ Generator = Blake3Generator{}
	_ Generator = Ed25519Generator{}
)
