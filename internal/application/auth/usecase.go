package auth

import (
	"context"
	"time"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret string
	TTL    time.Duration
}

// AuthUseCase login con emisión de JWT.
type AuthUseCase struct {
	verifier CredentialVerifier
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth. Si TTL es cero se usa jwt.DefaultTTL.
func NewAuthUseCase(verifier CredentialVerifier, jwtCfg JWTConfig) *AuthUseCase {
	if jwtCfg.TTL <= 0 {
		jwtCfg.TTL = jwt.DefaultTTL
	}
	return &AuthUseCase{verifier: verifier, jwtCfg: jwtCfg}
}

// Login verifica las credenciales y genera el token. domain.ErrUnauthorized si no coinciden.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	identity, err := uc.verifier.Verify(ctx, in.Username, in.Password)
	if err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, identity.Username, uc.jwtCfg.TTL)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token}, nil
}
