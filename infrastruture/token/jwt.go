// Package token issues and verifies the bearer tokens required to store mazes.
package token

import (
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"
)

var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrEmptySubject   = errors.New("token subject must not be empty")
	ErrUnexpectedAlgo = errors.New("unexpected signing method")
)

// JwtService signs submitter tokens with an HMAC secret.
type JwtService struct {
	secretKey []byte
	issuer    string
}

// NewJwtService creates a JwtService for the given secret and issuer.
func NewJwtService(secretKey, issuer string) *JwtService {
	return &JwtService{
		secretKey: []byte(secretKey),
		issuer:    issuer,
	}
}

// Generate issues a token naming subject as the submitter.
func (s *JwtService) Generate(subject string, ttl time.Duration) (string, error) {
	if subject == "" {
		return "", ErrEmptySubject
	}

	now := time.Now().UTC()
	claims := jwt.StandardClaims{
		Subject:   subject,
		Issuer:    s.issuer,
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(ttl).Unix(),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secretKey)
}

// Decode validates signature, expiry and issuer and returns the token subject.
func (s *JwtService) Decode(tokenString string) (string, error) {
	claims := &jwt.StandardClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, s.signingKey)
	if err != nil {
		return "", err
	}

	if !token.Valid || !claims.VerifyIssuer(s.issuer, true) || claims.Subject == "" {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}

// signingKey rejects anything but HMAC before handing out the secret.
func (s *JwtService) signingKey(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, ErrUnexpectedAlgo
	}
	return s.secretKey, nil
}
