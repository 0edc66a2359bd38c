package dto

import "time"

// RecordUsageRequest consumo de stock por un ObjectUser.
// Dispara un movimiento de salida en la misma transacción.
type RecordUsageRequest struct {
	ObjectUserID  string     `json:"object_user_id"`
	StockObjectID string     `json:"stock_object_id"`
	Quantity      int64      `json:"quantity"`
	StartDate     time.Time  `json:"start_date"`
	EndDate       *time.Time `json:"end_date"`
	Notes         string     `json:"notes"`
}

// UsageResponse registro de consumo expuesto por la API.
type UsageResponse struct {
	ID            string     `json:"id"`
	ObjectUserID  string     `json:"object_user_id"`
	StockObjectID string     `json:"stock_object_id"`
	QuantityUsed  int64      `json:"quantity_used"`
	StartDate     time.Time  `json:"start_date"`
	EndDate       *time.Time `json:"end_date,omitempty"`
	Notes         string     `json:"notes,omitempty"`
	LoggedBy      string     `json:"logged_by"`
	LoggedAt      time.Time  `json:"logged_at"`
	// QuantityAfter snapshot del stock del objeto tras registrar el consumo.
	QuantityAfter int64 `json:"quantity_after"`
}
