package dto

import "time"

// RegisterRequest entrada de registro de usuario.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Nombre   string `json:"nombre"`
}

// LoginRequest entrada de inicio de sesión.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token de sesión más el usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse salida de un usuario (sin hash de password).
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Nombre    string    `json:"nombre"`
	CreatedAt time.Time `json:"created_at"`
}

// SessionPayload sesión emitida por el cliente de identidad del navegador.
type SessionPayload struct {
	AccessToken string `json:"access_token"`
}

// SessionEventRequest evento de sesión que el navegador espeja al servidor:
// SIGNED_IN/SIGNED_OUT con sesión opcional, o una sesión a secas.
type SessionEventRequest struct {
	Event   string          `json:"event"`
	Session *SessionPayload `json:"session"`
}
