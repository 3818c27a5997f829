package httpserve

import (
	"context"
	"errors"
	"html"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"textcrypt/internal/domain"
)

// StaticPrefix is the route prefix for raw file downloads.
const StaticPrefix = "/static"

const shutdownTimeout = 5 * time.Second

// Server serves one directory.
type Server struct {
	root string
	log  *slog.Logger
	echo *echo.Echo
}

// New returns a Server rooted at dir.
func New(dir string, log *slog.Logger) *Server {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	s := &Server{root: dir, log: log}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod: true,
		LogURI:    true,
		LogStatus: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Info("request", "method", v.Method, "uri", v.URI, "status", v.Status)
			return nil
		},
	}))
	e.Static(StaticPrefix, dir)
	e.GET("/*", s.file)
	s.echo = e
	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler { return s.echo }

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	info, err := os.Stat(s.root)
	if err != nil {
		return domain.Wrapf(domain.ErrIO, err, "serve directory %s", s.root)
	}
	if !info.IsDir() {
		return domain.Errorf(domain.ErrIO, "serve directory %s is not a directory", s.root)
	}

	s.log.Info("serving directory", "dir", s.root, "addr", addr)
	done := make(chan error, 1)
	go func() { done <- s.echo.Start(addr) }()

	select {
	case err := <-done:
		return serveErr(err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.echo.Shutdown(shutdownCtx); err != nil {
		return domain.Wrapf(domain.ErrIO, err, "shutdown")
	}
	return serveErr(<-done)
}

func serveErr(err error) error {
	if err == nil || errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return domain.Wrapf(domain.ErrIO, err, "http server")
}

func (s *Server) file(c echo.Context) error {
	rel := path.Clean("/" + c.Param("*"))
	p := filepath.Join(s.root, filepath.FromSlash(rel))

	info, err := os.Stat(p)
	if errors.Is(err, os.ErrNotExist) {
		return c.String(http.StatusNotFound, "File not found: "+rel)
	}
	if err != nil {
		s.log.Warn("stat failed", "path", p, "error", err)
		return c.String(http.StatusInternalServerError, "Error reading file: "+rel)
	}

	if info.IsDir() {
		page, err := listing(p, rel)
		if err != nil {
			s.log.Warn("read directory failed", "path", p, "error", err)
			return c.String(http.StatusInternalServerError, "Error reading directory: "+rel)
		}
		return c.HTML(http.StatusOK, page)
	}

	b, err := os.ReadFile(p)
	if err != nil || !utf8.Valid(b) {
		s.log.Warn("read file failed", "path", p, "error", err)
		return c.String(http.StatusInternalServerError, "Error reading file: "+rel)
	}
	s.log.Debug("read file", "path", p, "bytes", len(b))
	return c.String(http.StatusOK, string(b))
}

// listing renders dir as an HTML list of links relative to the site root.
func listing(dir, rel string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	sb.WriteString("<html><head><title>Directory listing</title></head><body><ul>")
	for _, e := range entries {
		href := (&url.URL{Path: path.Join(rel, e.Name())}).EscapedPath()
		sb.WriteString(`<li><a href="`)
		sb.WriteString(html.EscapeString(href))
		sb.WriteString(`">`)
		sb.WriteString(html.EscapeString(e.Name()))
		sb.WriteString("</a></li>")
	}
	sb.WriteString("</ul></body></html>")
	return sb.String(), nil
}
