package tokens

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/qolzam/jobly/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyPair(t *testing.T) (string, string) {
	t.Helper()
	ecKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	privDER, err := x509.MarshalECPrivateKey(ecKey)
	require.NoError(t, err)
	privPEM := pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: privDER})
	pubDER, err := x509.MarshalPKIXPublicKey(&ecKey.PublicKey)
	require.NoError(t, err)
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubDER})
	return string(pubPEM), string(privPEM)
}

func TestCreateAndVerify(t *testing.T) {
	pub, priv := keyPair(t)
	issuer, err := NewIssuer(priv, time.Hour)
	require.NoError(t, err)
	verifier, err := NewVerifier(pub)
	require.NoError(t, err)

	token, err := issuer.Create(types.UserContext{Username: "u1", IsAdmin: true})
	require.NoError(t, err)

	user, err := verifier.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, types.UserContext{Username: "u1", IsAdmin: true}, user)
}

func TestVerify_Expired(t *testing.T) {
	pub, priv := keyPair(t)
	issuer, err := NewIssuer(priv, time.Minute)
	require.NoError(t, err)
	issuer.now = func() time.Time { return time.Now().Add(-time.Hour) }
	verifier, err := NewVerifier(pub)
	require.NoError(t, err)

	token, err := issuer.Create(types.UserContext{Username: "u1"})
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestVerify_WrongKey(t *testing.T) {
	_, priv := keyPair(t)
	otherPub, _ := keyPair(t)
	issuer, err := NewIssuer(priv, time.Hour)
	require.NoError(t, err)
	verifier, err := NewVerifier(otherPub)
	require.NoError(t, err)

	token, err := issuer.Create(types.UserContext{Username: "u1"})
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.Error(t, err)
}

func TestVerify_RejectsOtherAlgorithms(t *testing.T) {
	pub, _ := keyPair(t)
	verifier, err := NewVerifier(pub)
	require.NoError(t, err)

	hs := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{Username: "u1", IsAdmin: true})
	token, err := hs.SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.Error(t, err)
}

func TestNewIssuer_BadKey(t *testing.T) {
	_, err := NewIssuer("not a key", time.Hour)
	assert.Error(t, err)

	_, err = NewVerifier("not a key")
	assert.Error(t, err)
}
