package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Niveles de suscripción disponibles para una Society.
const (
	SubscriptionFree    = "free"
	SubscriptionBasic   = "basic"
	SubscriptionPremium = "premium"
)

// SubscriptionLimits límites de cuentas por plan. Unlimited = sin tope.
type SubscriptionLimits struct {
	MaxAdmins int
	MaxUsers  int // total de usuarios, administradores incluidos
}

// Unlimited marca un límite sin tope (plan premium).
const Unlimited = -1

var subscriptionLimits = map[string]SubscriptionLimits{
	SubscriptionFree:    {MaxAdmins: 1, MaxUsers: 2},
	SubscriptionBasic:   {MaxAdmins: 2, MaxUsers: 10},
	SubscriptionPremium: {MaxAdmins: Unlimited, MaxUsers: Unlimited},
}

// SubscriptionPlan describe un plan comercial (catálogo de precios).
type SubscriptionPlan struct {
	Level        string
	Name         string
	MonthlyPrice decimal.Decimal
	Limits       SubscriptionLimits
}

// SubscriptionPlans catálogo ordenado de planes (free → premium).
func SubscriptionPlans() []SubscriptionPlan {
	return []SubscriptionPlan{
		{Level: SubscriptionFree, Name: "Free", MonthlyPrice: decimal.Zero, Limits: subscriptionLimits[SubscriptionFree]},
		{Level: SubscriptionBasic, Name: "Basic", MonthlyPrice: decimal.NewFromInt(9), Limits: subscriptionLimits[SubscriptionBasic]},
		{Level: SubscriptionPremium, Name: "Premium", MonthlyPrice: decimal.NewFromInt(29), Limits: subscriptionLimits[SubscriptionPremium]},
	}
}

// ValidSubscriptionLevel informa si el nivel existe en el catálogo.
func ValidSubscriptionLevel(level string) bool {
	_, ok := subscriptionLimits[level]
	return ok
}

// SubscriptionPlanByLevel busca un plan del catálogo por su nivel.
func SubscriptionPlanByLevel(level string) (SubscriptionPlan, bool) {
	for _, p := range SubscriptionPlans() {
		if p.Level == level {
			return p, true
		}
	}
	return SubscriptionPlan{}, false
}

// Society representa una organización/tenant del sistema. Toda entidad de
// inventario pertenece a exactamente una Society; no hay referencias cruzadas.
type Society struct {
	ID                 string
	Name               string
	Slug               string
	SubscriptionLevel  string          // free, basic, premium
	MonthlyPrice       decimal.Decimal // precio mensual vigente del plan contratado
	IsActive           bool
	CanManageDrawers   bool
	ShowsDrawersInList bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Limits devuelve los límites del plan actual de la sociedad.
func (s *Society) Limits() SubscriptionLimits {
	if l, ok := subscriptionLimits[s.SubscriptionLevel]; ok {
		return l
	}
	return subscriptionLimits[SubscriptionFree]
}
