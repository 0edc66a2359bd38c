package dto

import "time"

// CreateStockObjectRequest alta de objeto de stock.
type CreateStockObjectRequest struct {
	Name                string `json:"name"`
	Description         string `json:"description"`
	KindID              string `json:"kind_id"`
	Unit                string `json:"unit"`
	MinimumQuantity     int64  `json:"minimum_quantity"`
	LocationDescription string `json:"location_description"`
	// InitialQuantity se aplica como un movimiento de entrada inicial.
	InitialQuantity int64 `json:"initial_quantity"`
}

// UpdateStockObjectRequest edición de objeto de stock. La cantidad no es
// editable aquí: solo cambia vía movimientos.
type UpdateStockObjectRequest struct {
	Name                string `json:"name"`
	Description         string `json:"description"`
	KindID              string `json:"kind_id"`
	Unit                string `json:"unit"`
	MinimumQuantity     *int64 `json:"minimum_quantity"`
	LocationDescription string `json:"location_description"`
	IsActive            *bool  `json:"is_active"`
}

// StockObjectResponse objeto de stock expuesto por la API.
type StockObjectResponse struct {
	ID                  string    `json:"id"`
	SocietyID           string    `json:"society_id"`
	KindID              string    `json:"kind_id,omitempty"`
	Name                string    `json:"name"`
	Description         string    `json:"description,omitempty"`
	Quantity            int64     `json:"quantity"`
	MinimumQuantity     int64     `json:"minimum_quantity"`
	Unit                string    `json:"unit,omitempty"`
	LocationDescription string    `json:"location_description,omitempty"`
	IsActive            bool      `json:"is_active"`
	BelowMinimum        bool      `json:"below_minimum"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// KindRequest alta/edición de categoría.
type KindRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// KindResponse categoría expuesta por la API.
type KindResponse struct {
	ID          string `json:"id"`
	SocietyID   string `json:"society_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// ObjectUserRequest alta/edición de consumidor de stock.
type ObjectUserRequest struct {
	Name        string `json:"name"`
	ContactInfo string `json:"contact_info"`
	Notes       string `json:"notes"`
}

// ObjectUserResponse consumidor expuesto por la API.
type ObjectUserResponse struct {
	ID          string    `json:"id"`
	SocietyID   string    `json:"society_id"`
	Name        string    `json:"name"`
	ContactInfo string    `json:"contact_info,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
