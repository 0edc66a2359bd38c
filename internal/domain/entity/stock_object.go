package entity

import "time"

// StockObjectKind categoría de objetos de stock definida por cada sociedad
// (p. ej. "Electrónica", "Herramientas"). Nombre único por sociedad.
type StockObjectKind struct {
	ID          string
	SocietyID   string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// StockObject representa un objeto de stock gestionado por una sociedad.
// Invariante: Quantity >= 0 siempre; la cantidad solo cambia vía movimientos
// registrados por el motor de inventario (ledger), nunca por escritura libre.
type StockObject struct {
	ID                  string
	SocietyID           string
	KindID              string // vacío = sin categoría
	Name                string
	Description         string
	Quantity            int64 // entero no negativo
	MinimumQuantity     int64 // umbral de reposición
	Unit                string // "pcs", "kg", "m", ...
	LocationDescription string // ubicación general cuando no se usan cajones
	IsActive            bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// BelowMinimum informa si el objeto está por debajo de su umbral de reposición.
func (o *StockObject) BelowMinimum() bool {
	return o.Quantity <= o.MinimumQuantity
}
