package jwt

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-unit-tests"

func TestGenerate_ParseRecuperaClaims(t *testing.T) {
	tok, err := Generate(testSecret, "admin", DefaultTTL)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	name, err := Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, "admin", name)
}

func TestGenerate_ExpiraEnOchoHoras(t *testing.T) {
	now := time.Now()
	tok, err := generateAt(testSecret, "admin", DefaultTTL, now)
	require.NoError(t, err)

	claims, err := ParseClaims(testSecret, tok)
	require.NoError(t, err)
	assert.WithinDuration(t, now.Add(8*time.Hour), claims.ExpiresAt.Time, time.Second)
	assert.Empty(t, claims.Issuer)
	assert.Empty(t, claims.Audience)
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, err := generateAt(testSecret, "admin", DefaultTTL, time.Now().Add(-9*time.Hour))
	require.NoError(t, err)

	_, err = Parse(testSecret, tok)
	assert.ErrorIs(t, err, gojwt.ErrTokenExpired)
}

func TestParse_SecretoIncorrecto(t *testing.T) {
	tok, err := Generate(testSecret, "admin", DefaultTTL)
	require.NoError(t, err)

	_, err = Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err)
}

func TestParse_RequiereExpiracion(t *testing.T) {
	tok, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, Claims{Name: "admin"}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = Parse(testSecret, tok)
	assert.Error(t, err)
}

func TestParse_RechazaOtrosAlgoritmos(t *testing.T) {
	claims := Claims{
		RegisteredClaims: gojwt.RegisteredClaims{ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour))},
		Name:             "admin",
	}
	tok, err := gojwt.NewWithClaims(gojwt.SigningMethodNone, claims).SignedString(gojwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = Parse(testSecret, tok)
	assert.Error(t, err)
}

func TestGenerate_SecretoVacio(t *testing.T) {
	_, err := Generate("", "admin", DefaultTTL)
	assert.Error(t, err)
}
