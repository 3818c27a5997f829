package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textcrypt/internal/domain"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want domain.Format
	}{
		{"blake3", domain.FormatBlake3},
		{"ed25519", domain.FormatEd25519},
	}
	for _, tt := range tests {
		got, err := domain.ParseFormat(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
		assert.Equal(t, tt.in, got.String())
	}

	for _, in := range []string{"", "BLAKE3", "rsa", "chacha20poly1305"} {
		_, err := domain.ParseFormat(in)
		require.ErrorIs(t, err, domain.ErrConfig, "token %q", in)
	}
	assert.Equal(t, "Format(9)", domain.Format(9).String())
}

func TestParseBase64Format(t *testing.T) {
	f, err := domain.ParseBase64Format("standard")
	require.NoError(t, err)
	assert.Equal(t, domain.Base64Standard, f)

	f, err = domain.ParseBase64Format("urlsafe")
	require.NoError(t, err)
	assert.Equal(t, "urlsafe", f.String())

	_, err = domain.ParseBase64Format("hex")
	require.ErrorIs(t, err, domain.ErrConfig)
}

func TestParseOutputFormat(t *testing.T) {
	for _, in := range []string{"json", "yaml"} {
		f, err := domain.ParseOutputFormat(in)
		require.NoError(t, err)
		assert.Equal(t, in, f.String())
	}

	_, err := domain.ParseOutputFormat("toml")
	require.ErrorIs(t, err, domain.ErrConfig)
	assert.Equal(t, "OutputFormat(7)", domain.OutputFormat(7).String())
}
