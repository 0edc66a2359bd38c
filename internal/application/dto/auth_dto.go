package dto

import "time"

// RegisterSocietyRequest registro de una nueva sociedad con su primer
// administrador (una sola transacción).
type RegisterSocietyRequest struct {
	SocietyName   string `json:"society_name"`
	AdminUsername string `json:"admin_username"`
	AdminEmail    string `json:"admin_email"`
	Password      string `json:"password"`
}

// LoginRequest login por (sociedad, username, password).
type LoginRequest struct {
	SocietyName string `json:"society_name"`
	Username    string `json:"username"`
	Password    string `json:"password"`
}

// LoginResponse token + datos del usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// CreateUserRequest alta de usuario dentro de la sociedad del admin.
type CreateUserRequest struct {
	Username       string `json:"username"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	IsSocietyAdmin bool   `json:"is_society_admin"`
}

// UpdateUserRequest edición de usuario (password vacío = sin cambio).
type UpdateUserRequest struct {
	Email          string `json:"email"`
	Password       string `json:"password"`
	IsSocietyAdmin *bool  `json:"is_society_admin"`
	IsActive       *bool  `json:"is_active"`
}

// UserResponse usuario expuesto por la API (sin hash).
type UserResponse struct {
	ID             string    `json:"id"`
	SocietyID      string    `json:"society_id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	IsSocietyAdmin bool      `json:"is_society_admin"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// UserListResponse listado de usuarios con el estado de los límites del plan.
type UserListResponse struct {
	Users      []UserResponse `json:"users"`
	TotalUsers int            `json:"total_users"`
	AdminUsers int            `json:"admin_users"`
	MaxUsers   int            `json:"max_users"`  // -1 = sin tope
	MaxAdmins  int            `json:"max_admins"` // -1 = sin tope
}
