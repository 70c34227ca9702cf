package dto

// LoginRequest credenciales de acceso. Los campos vacíos no se validan aquí:
// el verificador los rechaza como credenciales inválidas (401).
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse token JWT emitido tras un login correcto.
type LoginResponse struct {
	Token string `json:"token"`
}
