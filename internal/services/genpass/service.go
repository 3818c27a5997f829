package genpass

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/nbutton23/zxcvbn-go"

	"textcrypt/internal/domain"
)

const (
	upper  = "ABCDEFGHJKLMNPQRSTUVWXYZ"  // no I, O
	lower  = "abcdefghijkmnopqrstuvwxyz" // no l
	number = "123456789"                 // no 0
	symbol = "!@#$%^&*_"
)

// MaxLength bounds the requested password length.
const MaxLength = 255

// Options selects the password length and character classes.
type Options struct {
	Length int
	Upper  bool
	Lower  bool
	Number bool
	Symbol bool
}

// AllClasses returns options with every class enabled.
func AllClasses(length int) Options {
	return Options{Length: length, Upper: true, Lower: true, Number: true, Symbol: true}
}

// Service draws passwords from a random source.
type Service struct {
	rand io.Reader
}

// New returns a generator reading from r. A nil r uses crypto/rand.
func New(r io.Reader) *Service {
	if r == nil {
		r = rand.Reader
	}
	return &Service{rand: r}
}

// Generate returns a password with at least one character of every enabled
// class, shuffled.
func (s *Service) Generate(opts Options) (string, error) {
	var classes []string
	if opts.Upper {
		classes = append(classes, upper)
	}
	if opts.Lower {
		classes = append(classes, lower)
	}
	if opts.Number {
		classes = append(classes, number)
	}
	if opts.Symbol {
		classes = append(classes, symbol)
	}
	if len(classes) == 0 {
		return "", domain.Errorf(domain.ErrConfig, "at least one character class is required")
	}
	if opts.Length < len(classes) || opts.Length > MaxLength {
		return "", domain.Errorf(domain.ErrConfig,
			"password length must be between %d and %d, got %d", len(classes), MaxLength, opts.Length)
	}

	var all []byte
	pw := make([]byte, 0, opts.Length)
	for _, c := range classes {
		all = append(all, c...)
		ch, err := s.pick(c)
		if err != nil {
			return "", err
		}
		pw = append(pw, ch)
	}
	for len(pw) < opts.Length {
		ch, err := s.pick(string(all))
		if err != nil {
			return "", err
		}
		pw = append(pw, ch)
	}

	// Fisher-Yates.
	for i := len(pw) - 1; i > 0; i-- {
		j, err := s.intn(i + 1)
		if err != nil {
			return "", err
		}
		pw[i], pw[j] = pw[j], pw[i]
	}
	return string(pw), nil
}

// KeyPassword returns a password of length n using every class. It matches
// crypto.PasswordFunc.
func (s *Service) KeyPassword(n int) (string, error) {
	return s.Generate(AllClasses(n))
}

// Strength scores pw from 0 (weak) to 4 (strong).
func Strength(pw string) int {
	return zxcvbn.PasswordStrength(pw, nil).Score
}

func (s *Service) pick(alphabet string) (byte, error) {
	i, err := s.intn(len(alphabet))
	if err != nil {
		return 0, err
	}
	return alphabet[i], nil
}

func (s *Service) intn(n int) (int, error) {
	v, err := rand.Int(s.rand, big.NewInt(int64(n)))
	if err != nil {
		return 0, domain.Wrapf(domain.ErrIO, err, "read random source")
	}
	return int(v.Int64()), nil
}
