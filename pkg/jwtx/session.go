// Package jwtx signs and verifies the hub's session cookies. The cookie is a
// compact HS256 JWT carrying only the session ID and user ID; possession of a
// valid signature is never sufficient on its own; the session row is
// re-checked against the store on every request.
package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// KeyLength is the size in bytes of the HS256 signing key.
const KeyLength = 32

var (
	// ErrInvalidToken reports a cookie that failed signature or claim
	// validation.
	ErrInvalidToken = errors.New("jwtx: invalid session token")
)

// SessionClaims is the payload of a session cookie.
type SessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// Codec signs and verifies session cookies with a single symmetric key.
type Codec struct {
	key    []byte
	issuer string
}

// NewCodec builds a codec from a signing key and issuer claim value.
func NewCodec(key []byte, issuer string) (*Codec, error) {
	if len(key) < KeyLength {
		return nil, fmt.Errorf("jwtx: signing key must be at least %d bytes, got %d", KeyLength, len(key))
	}
	if issuer == "" {
		return nil, errors.New("jwtx: issuer must not be empty")
	}
	return &Codec{key: key, issuer: issuer}, nil
}

// Sign produces a session cookie value for the given session and user.
func (c *Codec) Sign(sessionID, userID string, expiresAt time.Time) (string, error) {
	now := time.Now().UTC()
	claims := SessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    c.issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.key)
	if err != nil {
		return "", fmt.Errorf("jwtx: signing session token: %w", err)
	}
	return signed, nil
}

// Verify parses a cookie value, checking the HS256 signature, issuer and
// expiry. Any failure returns ErrInvalidToken; callers must fail closed.
func (c *Codec) Verify(raw string) (SessionClaims, error) {
	var claims SessionClaims
	_, err := jwt.ParseWithClaims(raw, &claims,
		func(t *jwt.Token) (any, error) { return c.key, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(c.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return SessionClaims{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if claims.SessionID == "" || claims.Subject == "" {
		return SessionClaims{}, ErrInvalidToken
	}
	return claims, nil
}

// LoadOrGenerateKey reads the signing key from path, generating and
// persisting a fresh one on first start.
func LoadOrGenerateKey(path string) ([]byte, error) {
	path = filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, err
	}

	if raw, err := os.ReadFile(path); err == nil {
		key, decErr := base64.RawURLEncoding.DecodeString(string(raw))
		if decErr != nil {
			return nil, fmt.Errorf("jwtx: corrupt key file %s: %w", path, decErr)
		}
		return key, nil
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	key := make([]byte, KeyLength)
	if _, err := rand.Read(key); err != nil {
		return nil, err
	}
	encoded := base64.RawURLEncoding.EncodeToString(key)
	if err := os.WriteFile(path, []byte(encoded), 0600); err != nil {
		return nil, err
	}
	return key, nil
}
