// Package tokens issues and verifies the ES256 session tokens returned by
// /auth/token, /auth/register and POST /users.
package tokens

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/qolzam/jobly/internal/types"
)

const (
	issuer = "jobly"
	keyID  = "jobly-auth-key-1"
)

// Claims is the token payload.
type Claims struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
	jwt.RegisteredClaims
}

// Issuer signs tokens with an EC P-256 private key.
type Issuer struct {
	privateKey *ecdsa.PrivateKey
	ttl        time.Duration
	now        func() time.Time
}

// NewIssuer parses the PEM private key once.
func NewIssuer(privateKeyPEM string, ttl time.Duration) (*Issuer, error) {
	privateKey, err := jwt.ParseECPrivateKeyFromPEM([]byte(privateKeyPEM))
	if err != nil {
		return nil, fmt.Errorf("unable to parse private key: %w", err)
	}
	return &Issuer{privateKey: privateKey, ttl: ttl, now: time.Now}, nil
}

// Create returns a signed token for the user.
func (i *Issuer) Create(user types.UserContext) (string, error) {
	now := i.now()
	claims := Claims{
		Username: user.Username,
		IsAdmin:  user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodES256, claims)
	token.Header["kid"] = keyID
	return token.SignedString(i.privateKey)
}

// Verifier checks tokens against an EC P-256 public key.
type Verifier struct {
	publicKey *ecdsa.PublicKey
}

// NewVerifier parses the PEM public key once.
func NewVerifier(publicKeyPEM string) (*Verifier, error) {
	publicKey, err := jwt.ParseECPublicKeyFromPEM([]byte(publicKeyPEM))
	if err != nil {
		return nil, fmt.Errorf("failed to parse EC public key: %w", err)
	}
	return &Verifier{publicKey: publicKey}, nil
}

// Verify validates signature, algorithm and expiry and returns the identity.
func (v *Verifier) Verify(tokenString string) (types.UserContext, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodECDSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.publicKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodES256.Alg()}), jwt.WithIssuer(issuer))
	if err != nil {
		return types.UserContext{}, fmt.Errorf("invalid token: %w", err)
	}
	if !token.Valid || claims.Username == "" {
		return types.UserContext{}, errors.New("invalid token claims")
	}

	return types.UserContext{Username: claims.Username, IsAdmin: claims.IsAdmin}, nil
}
