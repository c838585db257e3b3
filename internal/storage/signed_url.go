package storage

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// URLClaims are the claims embedded in a signed download token. The subject
// is the document id.
type URLClaims struct {
	Bucket    string `json:"bkt"`
	ObjectKey string `json:"key"`
	jwt.RegisteredClaims
}

// Signer issues and validates signed download tokens.
type Signer struct {
	secret        []byte
	ttl           time.Duration
	refreshMargin time.Duration
}

func NewSigner(secret []byte, ttl, refreshMargin time.Duration) *Signer {
	return &Signer{secret: secret, ttl: ttl, refreshMargin: refreshMargin}
}

// Issue creates a signed token for a stored object and returns it with its
// expiry time.
func (s *Signer) Issue(documentID uuid.UUID, bucket, key string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.ttl)

	claims := &URLClaims{
		Bucket:    bucket,
		ObjectKey: key,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   documentID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

// Verify parses and validates a download token.
func (s *Signer) Verify(tokenStr string) (*URLClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &URLClaims{}, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*URLClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, jwt.ErrSignatureInvalid
}

// ExpiresSoon decodes the token's expiry without validating the signature
// and reports whether it falls inside the refresh margin. Undecodable
// tokens count as expiring so callers re-issue them.
func (s *Signer) ExpiresSoon(tokenStr string, now time.Time) bool {
	var claims URLClaims
	if _, _, err := jwt.NewParser().ParseUnverified(tokenStr, &claims); err != nil {
		return true
	}
	if claims.ExpiresAt == nil {
		return true
	}
	return now.Add(s.refreshMargin).After(claims.ExpiresAt.Time)
}
