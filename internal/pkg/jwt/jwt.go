package jwt

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every verification failure: malformed encoding, bad
// signature, expired token, missing subject. Callers get one uniform signal.
var ErrInvalidToken = errors.New("invalid token")

type Service struct {
	secret []byte
	ttl    time.Duration
}

func New(secret string, ttl time.Duration) *Service {
	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// GenerateToken issues a signed token whose subject is the user's email and
// whose expiry is now plus the configured TTL.
func (s *Service) GenerateToken(subject string) (string, error) {
	now := time.Now()
	claims := jwtlib.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwtlib.NewNumericDate(now.Add(s.ttl)),
		IssuedAt:  jwtlib.NewNumericDate(now),
	}

	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken checks signature and expiry and returns the subject.
func (s *Service) ValidateToken(tokenStr string) (string, error) {
	token, err := jwtlib.ParseWithClaims(tokenStr, &jwtlib.RegisteredClaims{}, func(t *jwtlib.Token) (any, error) {
		if _, ok := t.Method.(*jwtlib.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwtlib.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}
