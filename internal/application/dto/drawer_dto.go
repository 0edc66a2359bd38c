package dto

// DrawerRequest alta/edición de cajón.
type DrawerRequest struct {
	CabinetName string `json:"cabinet_name"`
	LetterX     string `json:"letter_x"`
	NumberY     int    `json:"number_y"`
	Description string `json:"description"`
}

// DrawerResponse cajón expuesto por la API.
type DrawerResponse struct {
	ID          string `json:"id"`
	SocietyID   string `json:"society_id"`
	CabinetName string `json:"cabinet_name,omitempty"`
	LetterX     string `json:"letter_x"`
	NumberY     int    `json:"number_y"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
}

// PlacementRequest colocar o retirar stock de un cajón.
type PlacementRequest struct {
	StockObjectID string `json:"stock_object_id"`
	DrawerID      string `json:"drawer_id"`
	Quantity      int64  `json:"quantity"`
}

// PlacementResponse colocación vigente de un objeto en un cajón.
type PlacementResponse struct {
	StockObjectID string `json:"stock_object_id"`
	DrawerID      string `json:"drawer_id"`
	Quantity      int64  `json:"quantity"`
}

// PlacementInconsistencyDTO objeto con total colocado mayor que su cantidad.
// Se reporta para revisión del operador; nunca se corrige automáticamente.
type PlacementInconsistencyDTO struct {
	StockObjectID   string `json:"stock_object_id"`
	StockObjectName string `json:"stock_object_name"`
	Quantity        int64  `json:"quantity"`
	PlacedTotal     int64  `json:"placed_total"`
	Excess          int64  `json:"excess"`
}
