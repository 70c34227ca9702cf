package auth

import (
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/jhoicas/Catalogo-api/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// Identity identidad autenticada.
type Identity struct {
	Username string
}

// CredentialVerifier verifica un par usuario/contraseña. Devuelve domain.ErrUnauthorized si no coincide.
type CredentialVerifier interface {
	Verify(ctx context.Context, username, password string) (*Identity, error)
}

// StaticCredentialVerifier acepta una única credencial configurada.
// Es un reemplazo provisional de un almacén de usuarios; la contraseña solo se guarda como hash bcrypt.
type StaticCredentialVerifier struct {
	username string
	hash     []byte
}

var _ CredentialVerifier = (*StaticCredentialVerifier)(nil)

// NewStaticCredentialVerifier hashea password con bcrypt.DefaultCost.
func NewStaticCredentialVerifier(username, password string) (*StaticCredentialVerifier, error) {
	return newStaticCredentialVerifier(username, password, bcrypt.DefaultCost)
}

func newStaticCredentialVerifier(username, password string, cost int) (*StaticCredentialVerifier, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("auth: usuario y contraseña son requeridos")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return nil, fmt.Errorf("auth: hash de contraseña: %w", err)
	}
	return &StaticCredentialVerifier{username: username, hash: hash}, nil
}

// Verify compara usuario en tiempo constante y contraseña contra el hash; ambas comprobaciones siempre se ejecutan.
func (v *StaticCredentialVerifier) Verify(_ context.Context, username, password string) (*Identity, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(v.username)) == 1
	passErr := bcrypt.CompareHashAndPassword(v.hash, []byte(password))
	if !userOK || passErr != nil {
		return nil, domain.ErrUnauthorized
	}
	return &Identity{Username: v.username}, nil
}
