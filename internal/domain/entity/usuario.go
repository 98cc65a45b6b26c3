package entity

import "time"

// Usuario actor de la operación (dos socios). Las credenciales viven aquí;
// la sesión se materializa como un JWT firmado.
type Usuario struct {
	ID           string
	Email        string
	PasswordHash string
	Nombre       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
