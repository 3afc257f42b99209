package jwtx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultSessionTTL is the lifetime of a session token. The frontend holds
// the token in local storage, so a week matches the original product
// behaviour of staying signed in between visits.
const DefaultSessionTTL = 7 * 24 * time.Hour

var (
	ErrNoSecret   = errors.New("jwtx: signing secret is empty")
	ErrMalformed  = errors.New("jwtx: malformed token")
	ErrInvalidSig = errors.New("jwtx: invalid signature")
	ErrExpired    = errors.New("jwtx: token expired")
)

// Claims are the session token claims. The subject is the local user id,
// never the GitHub id.
type Claims struct {
	jwt.RegisteredClaims
}

// UserID returns the local user id the token was minted for.
func (c Claims) UserID() string { return c.Subject }

// Verifier validates a session token and returns its claims.
type Verifier interface {
	Verify(token string) (Claims, error)
}

// Signer mints and verifies HS256 session tokens under a single
// process-wide secret.
type Signer struct {
	secret []byte
	issuer string
	ttl    time.Duration

	now func() time.Time
}

// NewSigner builds a Signer. TTL of zero falls back to DefaultSessionTTL.
func NewSigner(secret, issuer string, ttl time.Duration) *Signer {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Signer{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Validate reports whether the signer is usable. Called once at startup so
// a missing secret fails the process instead of every request.
func (s *Signer) Validate() error {
	if len(s.secret) == 0 {
		return ErrNoSecret
	}
	return nil
}

// Sign mints a session token for the given local user id.
func (s *Signer) Sign(userID string) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrNoSecret
	}

	now := s.now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	})
	return tok.SignedString(s.secret)
}

// Verify checks the signature and expiry and returns the claims. Any
// failure collapses to one of the sentinel errors above; callers must not
// surface partial identity for a bad token.
func (s *Signer) Verify(token string) (Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSig
		}
		return s.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return Claims{}, ErrExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return Claims{}, ErrInvalidSig
		default:
			return Claims{}, ErrMalformed
		}
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.Subject == "" {
		return Claims{}, ErrMalformed
	}
	return *claims, nil
}
