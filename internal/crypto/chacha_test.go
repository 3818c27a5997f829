package crypto_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textcrypt/internal/crypto"
	"textcrypt/internal/domain"
)

func zeroChaCha(t *testing.T) *crypto.ChaCha20Poly1305 {
	t.Helper()
	e, err := crypto.ParseChaCha20Poly1305(make([]byte, crypto.ChaChaKeyFileSize))
	require.NoError(t, err)
	return e
}

func TestChaCha20Poly1305_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		msg  string
	}{
		{"empty", ""},
		{"hello", "hello, world!"},
		{"unicode", "grüße, 世界"},
		{"large", strings.Repeat("x", 10000)},
	}
	e := zeroChaCha(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc, err := e.Encrypt(strings.NewReader(tt.msg))
			require.NoError(t, err)
			assert.NotContains(t, enc, "=")

			dec, err := e.Decrypt(strings.NewReader(enc))
			require.NoError(t, err)
			assert.Equal(t, tt.msg, dec)
		})
	}
}

func TestChaCha20Poly1305_CiphertextLayout(t *testing.T) {
	e := zeroChaCha(t)
	msg := []byte("hello, world!")
	ct, err := e.Seal(msg)
	require.NoError(t, err)
	assert.Len(t, ct, len(msg)+crypto.ChaChaTagSize)

	again, err := e.Seal(msg)
	require.NoError(t, err)
	assert.Equal(t, ct, again, "nonce comes from the key file")
}

func TestChaCha20Poly1305_TamperedCiphertext(t *testing.T) {
	e := zeroChaCha(t)
	ct, err := e.Seal([]byte("hello, world!"))
	require.NoError(t, err)

	for i := range ct {
		tampered := append([]byte(nil), ct...)
		tampered[i] ^= 0x80
		_, err := e.Open(tampered)
		require.ErrorIs(t, err, domain.ErrCrypto, "byte %d", i)
	}
}

func TestChaCha20Poly1305_WrongKey(t *testing.T) {
	e := zeroChaCha(t)
	enc, err := e.Encrypt(strings.NewReader("hello, world!"))
	require.NoError(t, err)

	raw := make([]byte, crypto.ChaChaKeyFileSize)
	raw[len(raw)-1] ^= 0x01
	other, err := crypto.ParseChaCha20Poly1305(raw)
	require.NoError(t, err)

	_, err = other.Decrypt(strings.NewReader(enc))
	require.ErrorIs(t, err, domain.ErrCrypto)
}

func TestChaCha20Poly1305_TruncatedCiphertext(t *testing.T) {
	e := zeroChaCha(t)
	_, err := e.Open(make([]byte, crypto.ChaChaTagSize-1))
	require.ErrorIs(t, err, domain.ErrCrypto)
}

func TestChaCha20Poly1305_InvalidBase64(t *testing.T) {
	e := zeroChaCha(t)
	_, err := e.Decrypt(strings.NewReader("not base64!!"))
	require.ErrorIs(t, err, domain.ErrEncoding)
}

func TestChaCha20Poly1305_TrailingNewline(t *testing.T) {
	e := zeroChaCha(t)
	enc, err := e.Encrypt(strings.NewReader("hello, world!"))
	require.NoError(t, err)
	dec, err := e.Decrypt(strings.NewReader(enc + "\n"))
	require.NoError(t, err)
	assert.Equal(t, "hello, world!", dec)
}

func TestChaCha20Poly1305_NonUTF8Plaintext(t *testing.T) {
	e := zeroChaCha(t)
	ct, err := e.Seal([]byte{0xff, 0xfe, 0xfd})
	require.NoError(t, err)
	_, err = e.Decrypt(strings.NewReader(crypto.EncodeText(ct)))
	require.ErrorIs(t, err, domain.ErrEncoding)
}

func TestParseChaCha20Poly1305_KeyLength(t *testing.T) {
	for _, n := range []int{0, 11, 12, 43} {
		_, err := crypto.ParseChaCha20Poly1305(make([]byte, n))
		require.ErrorIs(t, err, domain.ErrKey, "length %d", n)
	}
	_, err := crypto.ParseChaCha20Poly1305(make([]byte, 60))
	require.NoError(t, err)
}

func TestParseChaCha20Poly1305_FixedOffsets(t *testing.T) {
	raw := make([]byte, crypto.ChaChaKeyFileSize+8)
	for i := range raw {
		raw[i] = byte(i)
	}
	long, err := crypto.ParseChaCha20Poly1305(raw)
	require.NoError(t, err)

	var key [crypto.ChaChaKeySize]byte
	var nonce [crypto.ChaChaNonceSize]byte
	copy(nonce[:], raw[:12])
	copy(key[:], raw[12:44])
	exact := crypto.NewChaCha20Poly1305(key, nonce)

	a, err := long.Seal([]byte("m"))
	require.NoError(t, err)
	b, err := exact.Seal([]byte("m"))
	require.NoError(t, err)
	assert.True(t, bytes.Equal(a, b))
}

func TestLoadChaCha20Poly1305(t *testing.T) {
	e, err := crypto.LoadChaCha20Poly1305(writeKey(t, "chacha20poly1305.txt", make([]byte, 44)))
	require.NoError(t, err)
	enc, err := e.Encrypt(strings.NewReader("hello, world!"))
	require.NoError(t, err)
	dec, err := zeroChaCha(t).Decrypt(strings.NewReader(enc))
	require.NoError(t, err)
	assert.Equal(t, "hello, world!", dec)
}
