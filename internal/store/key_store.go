package store

import (
	"os"
	"path/filepath"

	"textcrypt/internal/domain"
)

const keyFileMode os.FileMode = 0o600

// KeyFileNames returns the file names used for a format's generated keys, in
// the order the generator returns them.
func KeyFileNames(f domain.Format) ([]string, error) {
	switch f {
	case domain.FormatBlake3:
		return []string{"blake3.txt"}, nil
	case domain.FormatEd25519:
		return []string{"ed25519.sk", "ed25519.pk"}, nil
	}
	return nil, domain.Errorf(domain.ErrConfig, "unsupported sign format %s", f)
}

// KeyDir writes generated key files into a directory.
type KeyDir struct {
	dir string
}

// NewKeyDir returns a KeyDir rooted at dir.
func NewKeyDir(dir string) *KeyDir { return &KeyDir{dir: dir} }

// SaveKeys writes one file per blob and returns the written paths. The
// number of blobs must match the format's file names.
func (k *KeyDir) SaveKeys(f domain.Format, blobs [][]byte) ([]string, error) {
	names, err := KeyFileNames(f)
	if err != nil {
		return nil, err
	}
	if len(names) != len(blobs) {
		return nil, domain.Errorf(domain.ErrKey, "%s expects %d key blobs, got %d", f, len(names), len(blobs))
	}
	info, err := os.Stat(k.dir)
	if err != nil {
		return nil, domain.Wrapf(domain.ErrIO, err, "key directory %s", k.dir)
	}
	if !info.IsDir() {
		return nil, domain.Errorf(domain.ErrIO, "key directory %s is not a directory", k.dir)
	}

	paths := make([]string, 0, len(names))
	for i, name := range names {
		path := filepath.Join(k.dir, name)
		if err := WriteFile(path, blobs[i], keyFileMode); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
