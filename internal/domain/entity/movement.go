package entity

import "time"

// Direcciones de movimiento de stock.
const (
	MovementIn  = "in"  // entrada
	MovementOut = "out" // salida
)

// ValidMovementDirection informa si la dirección es "in" u "out".
func ValidMovementDirection(d string) bool {
	return d == MovementIn || d == MovementOut
}

// StockMovement registro de auditoría append-only de un cambio de cantidad.
// Nunca se modifica ni se borra después de creado.
type StockMovement struct {
	ID            string
	SocietyID     string
	StockObjectID string
	Direction     string // in, out
	Quantity      int64  // siempre positivo; la dirección indica el signo
	QuantityAfter int64  // snapshot de la cantidad del objeto tras el movimiento
	MovedBy       string // UserID del actor
	DrawerID      string // cajón involucrado, vacío si no aplica
	Notes         string
	CreatedAt     time.Time
}
