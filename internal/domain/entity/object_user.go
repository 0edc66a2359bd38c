package entity

import "time"

// ObjectUser representa un consumidor de stock (departamento, máquina o
// persona). Distinto del User que inicia sesión. Nombre único por sociedad.
type ObjectUser struct {
	ID          string
	SocietyID   string
	Name        string
	ContactInfo string
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
