package entity

import "time"

// StockUsage registro append-only de consumo: qué ObjectUser usó cuánto de
// un StockObject y en qué periodo. Base de la predicción de reposición.
// Crear uno dispara un movimiento de salida en el ledger (misma transacción).
type StockUsage struct {
	ID            string
	SocietyID     string
	StockObjectID string
	ObjectUserID  string
	QuantityUsed  int64
	StartDate     time.Time
	EndDate       *time.Time // nil = uso en curso
	Notes         string
	LoggedBy      string // UserID del actor
	LoggedAt      time.Time
}
