package testutil

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"testing"
	"time"

	"github.com/qolzam/jobly/internal/auth/tokens"
	"github.com/qolzam/jobly/internal/types"
	"github.com/stretchr/testify/require"
)

// GenerateECDSAKeyPairPEM generates a P-256 key pair for testing.
// Returns (publicKeyPEM, privateKeyPEM) as strings.
func GenerateECDSAKeyPairPEM(t *testing.T) (string, string) {
	t.Helper()

	priv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err, "Failed to generate ECDSA private key")

	privBytes, err := x509.MarshalPKCS8PrivateKey(priv)
	require.NoError(t, err, "Failed to marshal ECDSA private key")
	privPEM := pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: privBytes})

	pubBytes, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(t, err, "Failed to marshal ECDSA public key")
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubBytes})

	return string(pubPEM), string(privPEM)
}

// Keys bundles a fresh key pair with an issuer and verifier built from it.
type Keys struct {
	PublicKeyPEM  string
	PrivateKeyPEM string
	Issuer        *tokens.Issuer
	Verifier      *tokens.Verifier
}

// NewKeys generates keys for one test.
func NewKeys(t *testing.T) *Keys {
	t.Helper()

	pub, priv := GenerateECDSAKeyPairPEM(t)
	issuer, err := tokens.NewIssuer(priv, time.Hour)
	require.NoError(t, err)
	verifier, err := tokens.NewVerifier(pub)
	require.NoError(t, err)

	return &Keys{PublicKeyPEM: pub, PrivateKeyPEM: priv, Issuer: issuer, Verifier: verifier}
}

// Token signs a token for username.
func (k *Keys) Token(t *testing.T, username string, isAdmin bool) string {
	t.Helper()

	token, err := k.Issuer.Create(types.UserContext{Username: username, IsAdmin: isAdmin})
	require.NoError(t, err)
	return token
}
