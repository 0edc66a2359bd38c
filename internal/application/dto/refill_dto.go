package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ScheduleRefillRequest reposición planificada.
type ScheduleRefillRequest struct {
	StockObjectID    string    `json:"stock_object_id"`
	ScheduledDate    time.Time `json:"scheduled_date"`
	QuantityToRefill int64     `json:"quantity_to_refill"`
	Notes            string    `json:"notes"`
}

// RefillResponse reposición expuesta por la API.
type RefillResponse struct {
	ID               string     `json:"id"`
	StockObjectID    string     `json:"stock_object_id"`
	ScheduledDate    time.Time  `json:"scheduled_date"`
	QuantityToRefill int64      `json:"quantity_to_refill"`
	Status           string     `json:"status"`
	CompletedDate    *time.Time `json:"completed_date,omitempty"`
	Notes            string     `json:"notes,omitempty"`
}

// Niveles de alerta de la predicción de reposición, de más a menos urgente.
const (
	AlertStockZero    = "stock_zero"    // sin stock: reposición inmediata
	AlertUrgent       = "urgent"        // se agota en <= 7 días
	AlertEarly        = "early"         // se agota en <= 14 días
	AlertBelowMinimum = "below_minimum" // bajo el umbral, sin ritmo de consumo estimable
	AlertNone         = "none"
)

// RefillPredictionDTO predicción de reposición de un objeto, derivada del
// consumo de los últimos 90 días.
type RefillPredictionDTO struct {
	StockObjectID   string          `json:"stock_object_id"`
	StockObjectName string          `json:"stock_object_name"`
	CurrentQuantity int64           `json:"current_quantity"`
	MinimumQuantity int64           `json:"minimum_quantity"`
	UsedLast90Days  int64           `json:"used_last_90_days"`
	DailyUsage      decimal.Decimal `json:"daily_usage"`
	DaysUntilEmpty  *int            `json:"days_until_empty,omitempty"`
	PredictedDate   *time.Time      `json:"predicted_refill_date,omitempty"`
	NeedsRefill     bool            `json:"needs_refill"`
	Alert           string          `json:"alert"`
}
