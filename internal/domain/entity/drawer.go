package entity

import (
	"fmt"
	"time"
)

// Drawer representa un cajón numerado dentro de un gabinete de piezas.
// Único por (sociedad, gabinete, letra X, número Y).
type Drawer struct {
	ID          string
	SocietyID   string
	CabinetName string // p. ej. "Gabinete A"
	LetterX     string // letra del eje X, una sola letra
	NumberY     int    // número del eje Y
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Label devuelve la etiqueta legible del cajón ("Gabinete A - B3").
func (d *Drawer) Label() string {
	if d.CabinetName == "" {
		return fmt.Sprintf("%s%d", d.LetterX, d.NumberY)
	}
	return fmt.Sprintf("%s - %s%d", d.CabinetName, d.LetterX, d.NumberY)
}

// StockObjectDrawerPlacement vincula un StockObject con un Drawer y la
// cantidad colocada en él. Única por (objeto, cajón).
// Invariante: la suma de colocaciones de un objeto no debe exceder su
// cantidad total (puede ser menor si hay stock sin colocar).
type StockObjectDrawerPlacement struct {
	ID            string
	StockObjectID string
	DrawerID      string
	Quantity      int64
	UpdatedAt     time.Time
}
