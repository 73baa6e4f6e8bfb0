package dto

// RegisterRequest auto-registro público: siempre crea un admin.
type RegisterRequest struct {
	Name     string `json:"name"`
	LastName string `json:"lastName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest credenciales de acceso. RememberMe extiende la vigencia del token.
type LoginRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"rememberMe"`
}

// SessionResponse token emitido tras registro o login.
type SessionResponse struct {
	Token string `json:"token"`
}
