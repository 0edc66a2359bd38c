package dto

// DashboardResponse resumen de la sociedad para la pantalla de inicio.
type DashboardResponse struct {
	TotalStockObjects int                `json:"total_stock_objects"`
	LowStockObjects   int                `json:"low_stock_objects"`
	RecentMovements   []MovementResponse `json:"recent_movements"`
	UpcomingRefills   []RefillResponse   `json:"upcoming_refills"`
}
