package app

import (
	"io"
	"log/slog"

	"textcrypt/internal/services/b64"
	"textcrypt/internal/services/csvconv"
	"textcrypt/internal/services/genpass"
	"textcrypt/internal/services/httpserve"
	"textcrypt/internal/services/text"
	"textcrypt/internal/services/token"
	"textcrypt/internal/store"
)

// Wire bundles all stores and services for the CLI.
type Wire struct {
	Config    Config
	Logger    *slog.Logger
	Text      *text.Service
	Base64    *b64.Service
	Passwords *genpass.Service
	CSV       *csvconv.Service
	Tokens    *token.Service
	Keys      *store.KeyDir
}

// NewWire constructs the dependency graph from cfg. stdin backs the "-"
// input and logs are written to stderr.
func NewWire(cfg Config, stdin io.Reader, stderr io.Writer) *Wire {
	logger := NewLogger(stderr, cfg)

	// A fresh crypto/rand-backed generator; nothing random is process global.
	passwords := genpass.New(nil)

	return &Wire{
		Config: cfg,
		Logger: logger,
		Text: text.New(text.Deps{
			Stdin:     stdin,
			Passwords: passwords.KeyPassword,
			Logger:    logger,
		}),
		Base64:    b64.New(stdin, logger),
		Passwords: passwords,
		CSV:       csvconv.New(stdin, logger),
		Tokens:    token.New(nil, logger),
		Keys:      store.NewKeyDir(cfg.KeyDir),
	}
}

// Server returns an HTTP server for dir that logs through the app logger.
func (w *Wire) Server(dir string) *httpserve.Server {
	return httpserve.New(dir, w.Logger)
}
