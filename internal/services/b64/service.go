package b64

import (
	"io"
	"log/slog"
	"unicode/utf8"

	"textcrypt/internal/crypto"
	"textcrypt/internal/domain"
	"textcrypt/internal/store"
)

// Service reads inputs through the store resolver.
type Service struct {
	stdin io.Reader
	log   *slog.Logger
}

// New returns a Service reading "-" from stdin.
func New(stdin io.Reader, log *slog.Logger) *Service {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Service{stdin: stdin, log: log}
}

// Encode reads the whole input and encodes it in format f.
func (s *Service) Encode(input string, f domain.Base64Format) (string, error) {
	s.log.Debug("base64 encode", "format", f, "input", input)
	b, err := store.ReadInput(input, s.stdin)
	if err != nil {
		return "", err
	}
	return crypto.Encode(f, b)
}

// Decode reads base64 text in format f and returns the decoded string.
// Output that is not valid UTF-8 is a domain.ErrEncoding error.
func (s *Service) Decode(input string, f domain.Base64Format) (string, error) {
	s.log.Debug("base64 decode", "format", f, "input", input)
	b, err := store.ReadInput(input, s.stdin)
	if err != nil {
		return "", err
	}
	out, err := crypto.Decode(f, b)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(out) {
		return "", domain.Errorf(domain.ErrEncoding, "decoded input is not valid UTF-8")
	}
	return string(out), nil
}
