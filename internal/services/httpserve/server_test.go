package httpserve_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textcrypt/internal/domain"
	"textcrypt/internal/services/httpserve"
)

// site lays out parent/secret.txt next to the served parent/site directory.
func site(t *testing.T) string {
	t.Helper()
	parent := t.TempDir()
	root := filepath.Join(parent, "site")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "hello.txt"), []byte("hello, world!"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "a b.txt"), []byte("spaced"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "blob.bin"), []byte{0xff, 0xfe, 0x00}, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "sub", "inner.txt"), []byte("inner"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(parent, "secret.txt"), []byte("secret"), 0o644))
	return root
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestServe_Files(t *testing.T) {
	h := httpserve.New(site(t), nil).Handler()

	tests := []struct {
		name   string
		target string
		status int
		body   string
	}{
		{"text file", "/hello.txt", http.StatusOK, "hello, world!"},
		{"nested file", "/sub/inner.txt", http.StatusOK, "inner"},
		{"escaped name", "/a%20b.txt", http.StatusOK, "spaced"},
		{"static route", "/static/hello.txt", http.StatusOK, "hello, world!"},
		{"missing", "/nope.txt", http.StatusNotFound, "File not found: /nope.txt"},
		{"binary file", "/blob.bin", http.StatusInternalServerError, "Error reading file: /blob.bin"},
		{"parent escape", "/../secret.txt", http.StatusNotFound, "File not found: /secret.txt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, h, tt.target)
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.body, rec.Body.String())
		})
	}
}

func TestServe_Listing(t *testing.T) {
	h := httpserve.New(site(t), nil).Handler()

	rec := get(t, h, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	body := rec.Body.String()
	assert.Contains(t, body, `<a href="/hello.txt">hello.txt</a>`)
	assert.Contains(t, body, `<a href="/a%20b.txt">a b.txt</a>`)
	assert.Contains(t, body, `<a href="/sub">sub</a>`)
	assert.NotContains(t, body, "secret.txt")

	rec = get(t, h, "/sub")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `<a href="/sub/inner.txt">inner.txt</a>`)
}

func TestListenAndServe_Shutdown(t *testing.T) {
	srv := httpserve.New(site(t), nil)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.ListenAndServe(ctx, "127.0.0.1:0") }()

	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestListenAndServe_BadDir(t *testing.T) {
	err := httpserve.New(filepath.Join(t.TempDir(), "nope"), nil).ListenAndServe(context.Background(), "127.0.0.1:0")
	require.ErrorIs(t, err, domain.ErrIO)
}
