package dto

import "time"

// RegisterMovementRequest entrada/salida de stock.
// drawer_id es opcional y requiere que la sociedad gestione cajones.
type RegisterMovementRequest struct {
	StockObjectID string `json:"stock_object_id"`
	Direction     string `json:"direction"` // in, out
	Quantity      int64  `json:"quantity"`
	DrawerID      string `json:"drawer_id"`
	Notes         string `json:"notes"`
}

// MovementResponse movimiento registrado (incluye snapshot post-movimiento).
type MovementResponse struct {
	ID            string    `json:"id"`
	StockObjectID string    `json:"stock_object_id"`
	Direction     string    `json:"direction"`
	Quantity      int64     `json:"quantity"`
	QuantityAfter int64     `json:"quantity_after"`
	MovedBy       string    `json:"moved_by"`
	DrawerID      string    `json:"drawer_id,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
