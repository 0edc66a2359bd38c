package entity

import "time"

// Estados de un RefillSchedule.
const (
	RefillPending   = "pending"
	RefillCompleted = "completed"
	RefillCancelled = "cancelled"
)

// RefillSchedule reposición planificada de un objeto de stock.
// Completarla aplica un movimiento de entrada por QuantityToRefill.
type RefillSchedule struct {
	ID              string
	SocietyID       string
	StockObjectID   string
	ScheduledDate   time.Time
	QuantityToRefill int64
	Status          string     // pending, completed, cancelled
	CompletedDate   *time.Time // nil hasta completarse
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
