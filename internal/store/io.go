package store

import (
	"io"
	"os"
	"path/filepath"

	"textcrypt/internal/domain"
)

// StdinRef is the input reference that selects standard input.
const StdinRef = "-"

// CheckInput reports whether ref is StdinRef or names an existing file.
func CheckInput(ref string) error {
	if ref == StdinRef {
		return nil
	}
	if _, err := os.Stat(ref); err != nil {
		return domain.Wrapf(domain.ErrIO, err, "input file %s does not exist", ref)
	}
	return nil
}

// OpenInput resolves ref to a reader: StdinRef reads stdin, anything else is
// opened as a file path. Closing the returned reader never closes stdin.
func OpenInput(ref string, stdin io.Reader) (io.ReadCloser, error) {
	if ref == StdinRef {
		if stdin == nil {
			return nil, domain.Errorf(domain.ErrIO, "no standard input available")
		}
		return io.NopCloser(stdin), nil
	}
	f, err := os.Open(ref)
	if err != nil {
		return nil, domain.Wrapf(domain.ErrIO, err, "open input %s", ref)
	}
	return f, nil
}

// ReadInput reads the whole input named by ref.
func ReadInput(ref string, stdin io.Reader) ([]byte, error) {
	r, err := OpenInput(ref, stdin)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, domain.Wrapf(domain.ErrIO, err, "read input %s", ref)
	}
	return b, nil
}

// WriteFile replaces path with b. The bytes go to a temp file in the same
// directory, which is synced and renamed over path, so readers see either
// the old file or the whole new one. Failures are domain.ErrIO errors.
func WriteFile(path string, b []byte, mode os.FileMode) error {
	f, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return domain.Wrapf(domain.ErrIO, err, "create temp file for %s", path)
	}
	tmp := f.Name()
	// No-op once the rename succeeded.
	defer func() { _ = os.Remove(tmp) }()

	if err := fill(f, b, mode); err != nil {
		_ = f.Close()
		return domain.Wrapf(domain.ErrIO, err, "write %s", path)
	}
	if err := f.Close(); err != nil {
		return domain.Wrapf(domain.ErrIO, err, "close %s", tmp)
	}
	if err := os.Rename(tmp, path); err != nil {
		return domain.Wrapf(domain.ErrIO, err, "replace %s", path)
	}
	return nil
}

func fill(f *os.File, b []byte, mode os.FileMode) error {
	if _, err := f.Write(b); err != nil {
		return err
	}
	if err := f.Chmod(mode); err != nil {
		return err
	}
	return f.Sync()
}
