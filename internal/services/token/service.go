package token

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"

	"textcrypt/internal/domain"
)

// Claims are the registered claims a token carries.
type Claims struct {
	Subject   string
	Audience  string
	ExpiresAt time.Time
}

// Service issues and checks tokens against a shared secret.
type Service struct {
	now func() time.Time
	log *slog.Logger
}

// New returns a Service. A nil now uses time.Now.
func New(now func() time.Time, log *slog.Logger) *Service {
	if now == nil {
		now = time.Now
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Service{now: now, log: log}
}

// Sign returns a compact HS256 token for sub and aud that expires ttl from
// now.
func (s *Service) Sign(sub, aud string, ttl time.Duration, secret string) (string, error) {
	s.log.Debug("jwt sign", "sub", sub, "aud", aud, "ttl", ttl)

	if secret == "" {
		return "", domain.Errorf(domain.ErrConfig, "jwt secret is empty")
	}
	if sub == "" || aud == "" {
		return "", domain.Errorf(domain.ErrConfig, "jwt subject and audience are required")
	}
	tok, err := jwt.NewBuilder().
		Subject(sub).
		Audience([]string{aud}).
		Expiration(s.now().Add(ttl)).
		Build()
	if err != nil {
		return "", domain.Wrapf(domain.ErrCrypto, err, "build jwt")
	}
	signed, err := jwt.Sign(tok, jwt.WithKey(jwa.HS256, []byte(secret)))
	if err != nil {
		return "", domain.Wrapf(domain.ErrCrypto, err, "sign jwt")
	}
	return string(signed), nil
}

// Verify checks the signature and expiry of raw and returns its claims.
// The audience is reported but not checked. Any rejection, including a
// malformed token, is a domain.ErrVerification error.
func (s *Service) Verify(raw, secret string) (Claims, error) {
	s.log.Debug("jwt verify")

	if secret == "" {
		return Claims{}, domain.Errorf(domain.ErrConfig, "jwt secret is empty")
	}
	tok, err := jwt.ParseString(raw,
		jwt.WithKey(jwa.HS256, []byte(secret)),
		jwt.WithValidate(true),
		jwt.WithClock(jwt.ClockFunc(s.now)),
		jwt.WithRequiredClaim(jwt.SubjectKey),
		jwt.WithRequiredClaim(jwt.AudienceKey),
		jwt.WithRequiredClaim(jwt.ExpirationKey),
	)
	if err != nil {
		return Claims{}, domain.Wrapf(domain.ErrVerification, err, "verify jwt")
	}
	claims := Claims{Subject: tok.Subject(), ExpiresAt: tok.Expiration()}
	if aud := tok.Audience(); len(aud) > 0 {
		claims.Audience = aud[0]
	}
	return claims, nil
}

// ParseTTL parses a lifetime such as 30s, 15m, 12h or 7d. Only a whole
// number followed by one of s, m, h or d is accepted.
func ParseTTL(s string) (time.Duration, error) {
	if len(s) < 2 {
		return 0, domain.Errorf(domain.ErrConfig, "invalid duration %q", s)
	}
	var unit time.Duration
	switch s[len(s)-1] {
	case 's':
		unit = time.Second
	case 'm':
		unit = time.Minute
	case 'h':
		unit = time.Hour
	case 'd':
		unit = 24 * time.Hour
	default:
		return 0, domain.Errorf(domain.ErrConfig, "invalid duration unit in %q", s)
	}
	digits := s[:len(s)-1]
	for _, c := range digits {
		if c < '0' || c > '9' {
			return 0, domain.Errorf(domain.ErrConfig, "invalid duration %q", s)
		}
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil || n > int64(maxTTL/unit) {
		return 0, domain.Errorf(domain.ErrConfig, "duration %q out of range", s)
	}
	return time.Duration(n) * unit, nil
}

// maxTTL keeps exp well inside the NumericDate range.
const maxTTL = 100 * 365 * 24 * time.Hour
