package crypto

import (
	"io"
	"os"

	"textcrypt/internal/domain"
)

// LoadKey reads the whole key file at path and hands it to parse. The raw
// bytes are wiped once parse returns; parsers must copy what they keep.
func LoadKey[T any](path string, parse func(raw []byte) (T, error)) (T, error) {
	var zero T
	raw, err := os.ReadFile(path)
	if err != nil {
		return zero, domain.Wrapf(domain.ErrIO, err, "read key %s", path)
	}
	defer Wipe(raw)
	return parse(raw)
}

// keyRange returns raw[lo:hi] or a domain.ErrKey error when raw is too short.
func keyRange(raw []byte, lo, hi int) ([]byte, error) {
	if lo < 0 || hi < lo {
		return nil, domain.Errorf(domain.ErrKey, "bad key range [%d,%d)", lo, hi)
	}
	if len(raw) < hi {
		return nil, domain.Errorf(domain.ErrKey, "key needs %d bytes, got %d", hi, len(raw))
	}
	return raw[lo:hi], nil
}

// key32 copies the first 32 bytes of raw into a fixed array.
func key32(raw []byte) (out [32]byte, err error) {
	b, err := keyRange(raw, 0, len(out))
	if err != nil {
		return out, err
	}
	copy(out[:], b)
	return out, nil
}

// readMessage materializes the whole message before any crypto runs.
func readMessage(r io.Reader) ([]byte, error) {
	msg, err := io.ReadAll(r)
	if err != nil {
		return nil, domain.Wrapf(domain.ErrIO, err, "read message")
	}
	return msg, nil
}
