package text_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textcrypt/internal/crypto"
	"textcrypt/internal/domain"
	"textcrypt/internal/services/genpass"
	"textcrypt/internal/services/text"
	"textcrypt/internal/store"
)

const message = "hello, world!"

func newService(stdin string) *text.Service {
	return text.New(text.Deps{
		Stdin:     strings.NewReader(stdin),
		Passwords: genpass.New(nil).KeyPassword,
	})
}

func writeFile(t *testing.T, dir, name string, b []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

// generateKeys runs GenerateKey and persists the blobs the way the CLI does.
func generateKeys(t *testing.T, svc *text.Service, f domain.Format) []string {
	t.Helper()
	blobs, err := svc.GenerateKey(f)
	require.NoError(t, err)
	paths, err := store.NewKeyDir(t.TempDir()).SaveKeys(f, blobs)
	require.NoError(t, err)
	return paths
}

func TestSignVerify_Blake3(t *testing.T) {
	svc := newService(message)
	key := generateKeys(t, svc, domain.FormatBlake3)[0]

	sig, err := svc.Sign("-", key, domain.FormatBlake3)
	require.NoError(t, err)
	raw, err := crypto.DecodeText([]byte(sig))
	require.NoError(t, err)
	assert.Len(t, raw, crypto.Blake3SignatureSize)

	ok, err := newService(message).Verify("-", key, domain.FormatBlake3, sig)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = newService(message+"!").Verify("-", key, domain.FormatBlake3, sig)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSignVerify_Ed25519(t *testing.T) {
	svc := newService("")
	paths := generateKeys(t, svc, domain.FormatEd25519)
	sk, pk := paths[0], paths[1]
	input := writeFile(t, t.TempDir(), "msg.txt", []byte(message))

	sig, err := svc.Sign(input, sk, domain.FormatEd25519)
	require.NoError(t, err)
	raw, err := crypto.DecodeText([]byte(sig))
	require.NoError(t, err)
	assert.Len(t, raw, crypto.Ed25519SignatureSize)

	ok, err := svc.Verify(input, pk, domain.FormatEd25519, sig)
	require.NoError(t, err)
	assert.True(t, ok)

	// A 32-byte signature is structurally invalid for ed25519.
	_, err = svc.Verify(input, pk, domain.FormatEd25519, crypto.EncodeText(make([]byte, 32)))
	require.ErrorIs(t, err, domain.ErrVerification)
}

func TestVerify_MalformedSignature(t *testing.T) {
	svc := newService(message)
	key := generateKeys(t, svc, domain.FormatBlake3)[0]
	_, err := svc.Verify("-", key, domain.FormatBlake3, "***")
	require.ErrorIs(t, err, domain.ErrEncoding)
}

func TestUnknownFormat_NoKeyIO(t *testing.T) {
	svc := newService(message)
	missing := filepath.Join(t.TempDir(), "does-not-exist")
	bad := domain.Format(99)

	_, err := svc.Sign("-", missing, bad)
	require.ErrorIs(t, err, domain.ErrConfig)
	require.NotErrorIs(t, err, domain.ErrIO)

	_, err = svc.Verify("-", missing, bad, "AAAA")
	require.ErrorIs(t, err, domain.ErrConfig)

	_, err = svc.GenerateKey(bad)
	require.ErrorIs(t, err, domain.ErrConfig)
}

func TestSign_Errors(t *testing.T) {
	dir := t.TempDir()
	short := writeFile(t, dir, "short.txt", make([]byte, 31))

	_, err := newService(message).Sign("-", short, domain.FormatBlake3)
	require.ErrorIs(t, err, domain.ErrKey)

	_, err = newService(message).Sign("-", filepath.Join(dir, "missing"), domain.FormatEd25519)
	require.ErrorIs(t, err, domain.ErrIO)

	key := writeFile(t, dir, "blake3.txt", bytes.Repeat([]byte{'k'}, 32))
	_, err = newService(message).Sign(filepath.Join(dir, "no-input"), key, domain.FormatBlake3)
	require.ErrorIs(t, err, domain.ErrIO)
}

func TestSign_Blake3Deterministic(t *testing.T) {
	key := writeFile(t, t.TempDir(), "blake3.txt", bytes.Repeat([]byte{'k'}, 32))
	a, err := newService(message).Sign("-", key, domain.FormatBlake3)
	require.NoError(t, err)
	b, err := newService(message).Sign("-", key, domain.FormatBlake3)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerateKey(t *testing.T) {
	svc := newService("")

	blobs, err := svc.GenerateKey(domain.FormatBlake3)
	require.NoError(t, err)
	require.Len(t, blobs, 1)
	assert.Len(t, blobs[0], 32)

	blobs, err = svc.GenerateKey(domain.FormatEd25519)
	require.NoError(t, err)
	require.Len(t, blobs, 2)
	assert.Len(t, blobs[0], 32)
	assert.Len(t, blobs[1], 32)
}

func TestGenerateKey_Blake3Printable(t *testing.T) {
	blobs, err := newService("").GenerateKey(domain.FormatBlake3)
	require.NoError(t, err)
	for _, c := range blobs[0] {
		assert.True(t, c > 0x20 && c < 0x7f, "byte %#x is not printable", c)
	}
}

func TestEncryptDecrypt(t *testing.T) {
	dir := t.TempDir()
	key := writeFile(t, dir, "chacha.key", make([]byte, 44))

	enc, err := newService(message).Encrypt("-", key)
	require.NoError(t, err)

	dec, err := newService(enc+"\n").Decrypt("-", key)
	require.NoError(t, err)
	assert.Equal(t, message, dec)

	flipped := make([]byte, 44)
	flipped[43] = 0x01
	other := writeFile(t, dir, "other.key", flipped)
	_, err = newService(enc).Decrypt("-", other)
	require.ErrorIs(t, err, domain.ErrCrypto)
}

func TestEncrypt_ShortKey(t *testing.T) {
	key := writeFile(t, t.TempDir(), "short.key", make([]byte, 43))
	_, err := newService(message).Encrypt("-", key)
	require.ErrorIs(t, err, domain.ErrKey)
	_, err = newService(message).Decrypt("-", key)
	require.ErrorIs(t, err, domain.ErrKey)
}

func TestDecrypt_InvalidBase64(t *testing.T) {
	key := writeFile(t, t.TempDir(), "chacha.key", make([]byte, 44))
	_, err := newService("%%%").Decrypt("-", key)
	require.ErrorIs(t, err, domain.ErrEncoding)
}
