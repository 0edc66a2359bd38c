package entity

import "time"

// User representa un usuario del sistema (pertenece a una Society).
// Username es único dentro de cada sociedad; el login requiere además
// el nombre de la sociedad.
type User struct {
	ID             string
	SocietyID      string
	Username       string
	Email          string
	PasswordHash   string // bcrypt hash, nunca plano en dominio después de persistir
	IsSocietyAdmin bool
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
