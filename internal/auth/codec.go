package auth

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	apperrors "storewatch/internal/errors"
	"storewatch/internal/model"
)

// SessionTTL is how long a session cookie and a signed token stay valid.
const SessionTTL = time.Hour

// Codec turns an identity into a cookie value and back.
type Codec interface {
	Encode(id model.Identity) (string, error)
	Decode(token string) (*model.Identity, error)
}

// NewCodec returns the codec named by kind ("legacy" or "signed").
func NewCodec(kind, secret string) Codec {
	if kind == "legacy" {
		return LegacyCodec{}
	}
	return NewSignedCodec(secret)
}

// LegacyCodec is base64 of the identity JSON. It carries no signature and no
// expiry, so anyone able to set the cookie can forge it; only the cookie
// flags protect it.
type LegacyCodec struct{}

// Encode serializes id as base64(JSON).
func (LegacyCodec) Encode(id model.Identity) (string, error) {
	payload, err := json.Marshal(id)
	if err != nil {
		return "", fmt.Errorf("marshal identity: %w", err)
	}
	return base64.StdEncoding.EncodeToString(payload), nil
}

// Decode reverses Encode. Anything that is not base64 of a JSON object fails
// with ErrInvalidToken.
func (LegacyCodec) Decode(token string) (*model.Identity, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidToken, err)
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		return nil, apperrors.ErrInvalidToken
	}
	var id model.Identity
	if err := json.Unmarshal(raw, &id); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidToken, err)
	}
	return &id, nil
}

type sessionClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// SignedCodec issues HS256 tokens that expire with the session.
type SignedCodec struct {
	secret []byte
	now    func() time.Time
}

// NewSignedCodec creates a codec signing with secret.
func NewSignedCodec(secret string) *SignedCodec {
	return &SignedCodec{secret: []byte(secret), now: time.Now}
}

// Encode signs id with a one hour expiry.
func (s *SignedCodec) Encode(id model.Identity) (string, error) {
	now := s.now()
	claims := &sessionClaims{
		Email: id.Email,
		Role:  id.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(SessionTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Decode verifies the signature and expiry.
func (s *SignedCodec) Decode(token string) (*model.Identity, error) {
	parsed, err := jwt.ParseWithClaims(token, &sessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidToken, err)
	}
	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok || !parsed.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	return &model.Identity{ID: claims.Subject, Email: claims.Email, Role: claims.Role}, nil
}
