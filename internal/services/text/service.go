package text

import (
	"io"
	"log/slog"

	"textcrypt/internal/crypto"
	"textcrypt/internal/domain"
	"textcrypt/internal/store"
)

// Deps holds the collaborators of a Service.
type Deps struct {
	// Stdin backs the "-" input reference.
	Stdin io.Reader
	// Passwords supplies printable key material for BLAKE3 keys.
	Passwords crypto.PasswordFunc
	// Rand feeds Ed25519 key generation; nil uses crypto/rand.
	Rand io.Reader
	// Logger receives one debug record per operation; nil discards.
	Logger *slog.Logger
}

// Service is the text dispatch layer.
type Service struct {
	stdin     io.Reader
	passwords crypto.PasswordFunc
	rand      io.Reader
	log       *slog.Logger
}

// New returns a Service wired to deps.
func New(deps Deps) *Service {
	log := deps.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Service{
		stdin:     deps.Stdin,
		passwords: deps.Passwords,
		rand:      deps.Rand,
		log:       log,
	}
}

// Sign signs the input with the key at keyPath and returns the signature as
// URL-safe base64.
func (s *Service) Sign(input, keyPath string, f domain.Format) (string, error) {
	s.log.Debug("text sign", "format", f, "input", input, "key", keyPath)

	signer, err := s.signer(f, keyPath)
	if err != nil {
		return "", err
	}
	r, err := store.OpenInput(input, s.stdin)
	if err != nil {
		return "", err
	}
	defer r.Close()

	sig, err := signer.Sign(r)
	if err != nil {
		return "", err
	}
	return crypto.EncodeText(sig), nil
}

// Verify checks a URL-safe base64 signature over the input. A malformed
// base64 signature is a domain.ErrEncoding error, not false.
func (s *Service) Verify(input, keyPath string, f domain.Format, sig string) (bool, error) {
	s.log.Debug("text verify", "format", f, "input", input, "key", keyPath)

	if err := checkFormat(f); err != nil {
		return false, err
	}
	raw, err := crypto.DecodeText([]byte(sig))
	if err != nil {
		return false, err
	}
	verifier, err := s.verifier(f, keyPath)
	if err != nil {
		return false, err
	}
	r, err := store.OpenInput(input, s.stdin)
	if err != nil {
		return false, err
	}
	defer r.Close()

	return verifier.Verify(r, raw)
}

// GenerateKey returns fresh key blobs for f: one key for blake3, secret
// then public for ed25519.
func (s *Service) GenerateKey(f domain.Format) ([][]byte, error) {
	s.log.Debug("text generate", "format", f)

	g, err := s.generator(f)
	if err != nil {
		return nil, err
	}
	return g.Generate()
}

// Encrypt seals the input with the ChaCha20-Poly1305 key file at keyPath.
func (s *Service) Encrypt(input, keyPath string) (string, error) {
	s.log.Debug("text encrypt", "input", input, "key", keyPath)

	engine, err := crypto.LoadChaCha20Poly1305(keyPath)
	if err != nil {
		return "", err
	}
	r, err := store.OpenInput(input, s.stdin)
	if err != nil {
		return "", err
	}
	defer r.Close()

	return engine.Encrypt(r)
}

// Decrypt opens URL-safe base64 ciphertext from the input. The plaintext
// must be valid UTF-8.
func (s *Service) Decrypt(input, keyPath string) (string, error) {
	s.log.Debug("text decrypt", "input", input, "key", keyPath)

	engine, err := crypto.LoadChaCha20Poly1305(keyPath)
	if err != nil {
		return "", err
	}
	r, err := store.OpenInput(input, s.stdin)
	if err != nil {
		return "", err
	}
	defer r.Close()

	return engine.Decrypt(r)
}

func checkFormat(f domain.Format) error {
	switch f {
	case domain.FormatBlake3, domain.FormatEd25519:
		return nil
	}
	return domain.Errorf(domain.ErrConfig, "unsupported sign format %s", f)
}

func (s *Service) signer(f domain.Format, keyPath string) (crypto.Signer, error) {
	switch f {
	case domain.FormatBlake3:
		return crypto.LoadBlake3(keyPath)
	case domain.FormatEd25519:
		return crypto.LoadEd25519Signer(keyPath)
	}
	return nil, checkFormat(f)
}

func (s *Service) verifier(f domain.Format, keyPath string) (crypto.Verifier, error) {
	switch f {
	case domain.FormatBlake3:
		return crypto.LoadBlake3(keyPath)
	case domain.FormatEd25519:
		return crypto.LoadEd25519Verifier(keyPath)
	}
	return nil, checkFormat(f)
}

func (s *Service) generator(f domain.Format) (crypto.Generator, error) {
	switch f {
	case domain.FormatBlake3:
		return crypto.Blake3Generator{Password: s.passwords}, nil
	case domain.FormatEd25519:
		return crypto.Ed25519Generator{Rand: s.rand}, nil
	}
	return nil, checkFormat(f)
}
