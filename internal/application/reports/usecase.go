// Package reports arma los datos del reporte de stock y delega el render
// del PDF en un generador de infraestructura.
package reports

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tu-usuario/stock-service/internal/domain"
	"github.com/tu-usuario/stock-service/internal/domain/entity"
	"github.com/tu-usuario/stock-service/internal/domain/repository"
)

// StockReportLine una fila del reporte: un objeto de stock con su ubicación.
type StockReportLine struct {
	Name            string
	KindName        string
	Unit            string
	Quantity        int64
	MinimumQuantity int64
	BelowMinimum    bool
	Location        string // etiquetas de cajón o descripción libre
}

// StockReportData datos completos del reporte listos para renderizar.
type StockReportData struct {
	SocietyName  string
	GeneratedAt  time.Time
	TotalObjects int
	BelowMinimum int
	Lines        []StockReportLine
}

// StockReportPDFGenerator puerto de render del reporte.
type StockReportPDFGenerator interface {
	GenerateStockReport(ctx context.Context, data *StockReportData) ([]byte, error)
}

// UseCase genera el reporte de inventario de una sociedad.
type UseCase struct {
	societyRepo   repository.SocietyRepository
	stockRepo     repository.StockObjectRepository
	kindRepo      repository.StockObjectKindRepository
	drawerRepo    repository.DrawerRepository
	placementRepo repository.PlacementRepository
	generator     StockReportPDFGenerator
}

// NewUseCase construye el caso de uso de reportes.
func NewUseCase(
	societyRepo repository.SocietyRepository,
	stockRepo repository.StockObjectRepository,
	kindRepo repository.StockObjectKindRepository,
	drawerRepo repository.DrawerRepository,
	placementRepo repository.PlacementRepository,
	generator StockReportPDFGenerator,
) *UseCase {
	return &UseCase{
		societyRepo:   societyRepo,
		stockRepo:     stockRepo,
		kindRepo:      kindRepo,
		drawerRepo:    drawerRepo,
		placementRepo: placementRepo,
		generator:     generator,
	}
}

// StockReport genera el PDF del inventario activo de la sociedad y devuelve
// sus bytes junto con un nombre de archivo sugerido.
func (uc *UseCase) StockReport(ctx context.Context, societyID string) ([]byte, string, error) {
	society, err := uc.societyRepo.GetByID(ctx, societyID)
	if err != nil {
		return nil, "", err
	}
	if society == nil {
		return nil, "", domain.ErrNotFound
	}

	objects, err := uc.stockRepo.ListActiveBySociety(ctx, societyID)
	if err != nil {
		return nil, "", err
	}

	kinds, err := uc.kindRepo.ListBySociety(ctx, societyID)
	if err != nil {
		return nil, "", err
	}
	kindNames := make(map[string]string, len(kinds))
	for _, k := range kinds {
		kindNames[k.ID] = k.Name
	}

	// Las etiquetas de cajón solo se incluyen si la sociedad las muestra en
	// sus listados; en caso contrario se usa la ubicación libre del objeto.
	var drawerLabels map[string]string
	if society.CanManageDrawers && society.ShowsDrawersInList {
		drawers, err := uc.drawerRepo.ListBySociety(ctx, societyID)
		if err != nil {
			return nil, "", err
		}
		drawerLabels = make(map[string]string, len(drawers))
		for _, d := range drawers {
			drawerLabels[d.ID] = d.Label()
		}
	}

	data := &StockReportData{
		SocietyName: society.Name,
		GeneratedAt: time.Now(),
		Lines:       make([]StockReportLine, 0, len(objects)),
	}
	for _, obj := range objects {
		line := StockReportLine{
			Name:            obj.Name,
			KindName:        kindNames[obj.KindID],
			Unit:            obj.Unit,
			Quantity:        obj.Quantity,
			MinimumQuantity: obj.MinimumQuantity,
			BelowMinimum:    obj.BelowMinimum(),
			Location:        obj.LocationDescription,
		}
		if drawerLabels != nil {
			loc, err := uc.placementLocation(ctx, obj, drawerLabels)
			if err != nil {
				return nil, "", err
			}
			if loc != "" {
				line.Location = loc
			}
		}
		if line.BelowMinimum {
			data.BelowMinimum++
		}
		data.Lines = append(data.Lines, line)
	}
	data.TotalObjects = len(data.Lines)

	pdf, err := uc.generator.GenerateStockReport(ctx, data)
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("stock-%s-%s.pdf", society.Slug, data.GeneratedAt.Format("2006-01-02"))
	return pdf, filename, nil
}

// placementLocation arma "Gabinete A - B3 (x10), Gabinete A - C1 (x5)".
func (uc *UseCase) placementLocation(ctx context.Context, obj *entity.StockObject, labels map[string]string) (string, error) {
	placements, err := uc.placementRepo.ListByStockObject(ctx, obj.ID)
	if err != nil {
		return "", err
	}
	parts := make([]string, 0, len(placements))
	for _, p := range placements {
		label, ok := labels[p.DrawerID]
		if !ok {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s (x%d)", label, p.Quantity))
	}
	return strings.Join(parts, ", "), nil
}
