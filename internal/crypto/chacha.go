package crypto

import (
	"io"
	"unicode/utf8"

	"golang.org/x/crypto/chacha20poly1305"

	"textcrypt/internal/domain"
)

// ChaCha20Poly1305 encrypts with a key file laid out as nonce || key.
type ChaCha20Poly1305 struct {
	key   [ChaChaKeySize]byte
	nonce [ChaChaNonceSize]byte
}

// NewChaCha20Poly1305 returns an engine for key and nonce.
func NewChaCha20Poly1305(key [ChaChaKeySize]byte, nonce [ChaChaNonceSize]byte) *ChaCha20Poly1305 {
	return &ChaCha20Poly1305{key: key, nonce: nonce}
}

// ParseChaCha20Poly1305 reads the nonce from raw[0:12] and the key from
// raw[12:44]. Bytes beyond 44 are ignored.
func ParseChaCha20Poly1305(raw []byte) (*ChaCha20Poly1305, error) {
	n, err := keyRange(raw, 0, ChaChaNonceSize)
	if err != nil {
		return nil, err
	}
	k, err := keyRange(raw, ChaChaNonceSize, ChaChaKeyFileSize)
	if err != nil {
		return nil, err
	}
	e := &ChaCha20Poly1305{}
	copy(e.nonce[:], n)
	copy(e.key[:], k)
	return e, nil
}

// LoadChaCha20Poly1305 reads a 44-byte key file.
func LoadChaCha20Poly1305(path string) (*ChaCha20Poly1305, error) {
	return LoadKey(path, ParseChaCha20Poly1305)
}

// Seal encrypts msg and appends the Poly1305 tag.
func (e *ChaCha20Poly1305) Seal(msg []byte) ([]byte, error) {
	aead, err := chacha20poly1305.New(e.key[:])
	if err != nil {
		return nil, domain.Wrap(domain.ErrKey, err)
	}
	return aead.Seal(nil, e.nonce[:], msg, nil), nil
}

// Open authenticates and decrypts ct.
func (e *ChaCha20Poly1305) Open(ct []byte) ([]byte, error) {
	aead, err := chacha20poly1305.New(e.key[:])
	if err != nil {
		return nil, domain.Wrap(domain.ErrKey, err)
	}
	if len(ct) < ChaChaTagSize {
		return nil, domain.Errorf(domain.ErrCrypto, "ciphertext shorter than tag: %d bytes", len(ct))
	}
	pt, err := aead.Open(nil, e.nonce[:], ct, nil)
	if err != nil {
		return nil, domain.Wrap(domain.ErrCrypto, err)
	}
	return pt, nil
}

// Encrypt seals the message and returns it as URL-safe base64.
func (e *ChaCha20Poly1305) Encrypt(r io.Reader) (string, error) {
	msg, err := readMessage(r)
	if err != nil {
		return "", err
	}
	ct, err := e.Seal(msg)
	if err != nil {
		return "", err
	}
	return EncodeText(ct), nil
}

// Decrypt decodes URL-safe base64 from r and opens it. The plaintext must
// be valid UTF-8.
func (e *ChaCha20Poly1305) Decrypt(r io.Reader) (string, error) {
	in, err := readMessage(r)
	if err != nil {
		return "", err
	}
	ct, err := DecodeText(in)
	if err != nil {
		return "", err
	}
	pt, err := e.Open(ct)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(pt) {
		return "", domain.Errorf(domain.ErrEncoding, "plaintext is not valid UTF-8")
	}
	return string(pt), nil
}
