package crypto

import (
	"bytes"
	"encoding/base64"

	"textcrypt/internal/domain"
)

// EncodeText encodes b as URL-safe base64 without padding.
func EncodeText(b []byte) string { return base64.RawURLEncoding.EncodeToString(b) }

// DecodeText decodes URL-safe unpadded base64. Leading and trailing
// whitespace is ignored so a newline from stdin does not break decoding.
func DecodeText(s []byte) ([]byte, error) {
	return decode(base64.RawURLEncoding, s)
}

// Encode encodes b in the given base64 format.
func Encode(f domain.Base64Format, b []byte) (string, error) {
	enc, err := encoding(f)
	if err != nil {
		return "", err
	}
	return enc.EncodeToString(b), nil
}

// Decode decodes s in the given base64 format.
func Decode(f domain.Base64Format, s []byte) ([]byte, error) {
	enc, err := encoding(f)
	if err != nil {
		return nil, err
	}
	return decode(enc, s)
}

func encoding(f domain.Base64Format) (*base64.Encoding, error) {
	switch f {
	case domain.Base64Standard:
		return base64.StdEncoding, nil
	case domain.Base64URLSafe:
		return base64.RawURLEncoding, nil
	}
	return nil, domain.Errorf(domain.ErrConfig, "unsupported base64 format %s", f)
}

func decode(enc *base64.Encoding, s []byte) ([]byte, error) {
	s = bytes.TrimSpace(s)
	out := make([]byte, enc.DecodedLen(len(s)))
	n, err := enc.Decode(out, s)
	if err != nil {
		return nil, domain.Wrapf(domain.ErrEncoding, err, "decode base64")
	}
	return out[:n], nil
}
