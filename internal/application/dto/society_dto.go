package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SocietyResponse sociedad expuesta por la API.
type SocietyResponse struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	Slug               string          `json:"slug"`
	SubscriptionLevel  string          `json:"subscription_level"`
	MonthlyPrice       decimal.Decimal `json:"monthly_price"`
	IsActive           bool            `json:"is_active"`
	CanManageDrawers   bool            `json:"can_manage_drawers"`
	ShowsDrawersInList bool            `json:"shows_drawers_in_list"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// UpdateSocietySettingsRequest ajustes editables por el admin de la sociedad.
type UpdateSocietySettingsRequest struct {
	CanManageDrawers   *bool `json:"can_manage_drawers"`
	ShowsDrawersInList *bool `json:"shows_drawers_in_list"`
}

// UpgradeSubscriptionRequest cambio de plan (el cobro real queda fuera del core).
type UpgradeSubscriptionRequest struct {
	Level string `json:"level"` // free, basic, premium
}

// SubscriptionPlanDTO plan del catálogo de precios.
type SubscriptionPlanDTO struct {
	Level        string          `json:"level"`
	Name         string          `json:"name"`
	MonthlyPrice decimal.Decimal `json:"monthly_price"`
	MaxAdmins    int             `json:"max_admins"` // -1 = sin tope
	MaxUsers     int             `json:"max_users"`  // -1 = sin tope
}
