package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL vigencia de los tokens emitidos en el login.
const DefaultTTL = 8 * time.Hour

// Claims claims estándar más la identidad (nombre de usuario) del portador.
type Claims struct {
	jwt.RegisteredClaims
	Name string `json:"name"`
}

// Generate genera un token HS256 con la identidad username y expiración now+ttl.
func Generate(secret, username string, ttl time.Duration) (string, error) {
	return generateAt(secret, username, ttl, time.Now())
}

func generateAt(secret, username string, ttl time.Duration, now time.Time) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: empty secret")
	}
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Name: username,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida firma y expiración y devuelve el nombre de usuario del token.
// No valida issuer ni audience.
func Parse(secret, tokenString string) (string, error) {
	claims, err := ParseClaims(secret, tokenString)
	if err != nil {
		return "", err
	}
	return claims.Name, nil
}

// ParseClaims como Parse pero devuelve todos los claims.
func ParseClaims(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: empty secret")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithExpirationRequired(), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("jwt: invalid claims")
	}
	if claims.Name == "" {
		return nil, fmt.Errorf("jwt: missing name claim")
	}
	return claims, nil
}
