package auth

import (
	"context"
	"testing"
	"time"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret-key-for-unit-tests"

func newTestUseCase(t *testing.T) *AuthUseCase {
	t.Helper()
	verifier, err := newStaticCredentialVerifier("admin", "adminpw", bcrypt.MinCost)
	require.NoError(t, err)
	return NewAuthUseCase(verifier, JWTConfig{Secret: testSecret})
}

func TestLogin_CredencialesValidas(t *testing.T) {
	uc := newTestUseCase(t)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "adminpw"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	claims, err := jwt.ParseClaims(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Name)
	assert.WithinDuration(t, time.Now().Add(8*time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc := newTestUseCase(t)

	cases := []dto.LoginRequest{
		{Username: "admin", Password: "wrong"},
		{Username: "Admin", Password: "adminpw"},
		{Username: "root", Password: "adminpw"},
		{Username: "", Password: ""},
	}
	for _, in := range cases {
		out, err := uc.Login(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrUnauthorized, "%+v", in)
		assert.Nil(t, out)
	}
}

func TestNewStaticCredentialVerifier_RequiereValores(t *testing.T) {
	_, err := NewStaticCredentialVerifier("", "x")
	assert.Error(t, err)
	_, err = NewStaticCredentialVerifier("x", "")
	assert.Error(t, err)
}

func TestStaticCredentialVerifier_NoGuardaContrasenaEnClaro(t *testing.T) {
	v, err := newStaticCredentialVerifier("admin", "adminpw", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, "adminpw", string(v.hash))
	assert.NoError(t, bcrypt.CompareHashAndPassword(v.hash, []byte("adminpw")))
}
