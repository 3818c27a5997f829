package crypto

import (
	"crypto/subtle"
	"io"

	"lukechampine.com/blake3"

	"textcrypt/internal/domain"
)

// Blake3 signs and verifies with a BLAKE3 keyed hash.
type Blake3 struct {
	key [Blake3KeySize]byte
}

// NewBlake3 returns a MAC engine for key.
func NewBlake3(key [Blake3KeySize]byte) *Blake3 { return &Blake3{key: key} }

// ParseBlake3 uses the first 32 bytes of raw as the key.
func ParseBlake3(raw []byte) (*Blake3, error) {
	key, err := key32(raw)
	if err != nil {
		return nil, err
	}
	return NewBlake3(key), nil
}

// LoadBlake3 reads a BLAKE3 key file.
func LoadBlake3(path string) (*Blake3, error) { return LoadKey(path, ParseBlake3) }

// Sign returns the 32-byte keyed digest of the message.
func (b *Blake3) Sign(r io.Reader) ([]byte, error) {
	msg, err := readMessage(r)
	if err != nil {
		return nil, err
	}
	return b.digest(msg), nil
}

// Verify recomputes the digest and compares it in constant time.
// Signatures of the wrong length never match.
func (b *Blake3) Verify(r io.Reader, sig []byte) (bool, error) {
	msg, err := readMessage(r)
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare(b.digest(msg), sig) == 1, nil
}

func (b *Blake3) digest(msg []byte) []byte {
	h := blake3.New(Blake3SignatureSize, b.key[:])
	_, _ = h.Write(msg)
	return h.Sum(nil)
}

// PasswordFunc returns a printable password of the requested length.
type PasswordFunc func(length int) (string, error)

// Blake3Generator derives a BLAKE3 key from a generated password. The key
// holds printable ASCII only, which is the key file format other tools
// produce for this algorithm.
type Blake3Generator struct {
	Password PasswordFunc
}

// Generate returns a single 32-byte key.
func (g Blake3Generator) Generate() ([][]byte, error) {
	if g.Password == nil {
		return nil, domain.Errorf(domain.ErrConfig, "blake3 generator has no password source")
	}
	pw, err := g.Password(Blake3KeySize)
	if err != nil {
		return nil, err
	}
	key := []byte(pw)
	if len(key) != Blake3KeySize {
		return nil, domain.Errorf(domain.ErrKey, "password source returned %d bytes, want %d", len(key), Blake3KeySize)
	}
	return [][]byte{key}, nil
}
