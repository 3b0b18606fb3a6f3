package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/modus-trade/modus-api/internal/application/dto"
	"github.com/modus-trade/modus-api/internal/application/stock"
	"github.com/modus-trade/modus-api/internal/domain/entity"
	"github.com/modus-trade/modus-api/internal/domain/repository"
)

// lowStockThreshold cantidad bajo la cual un producto entra al listado de
// stock bajo del tablero.
var lowStockThreshold = decimal.NewFromInt(10)

// StockReportPDFGenerator puerto para renderizar el resumen global de stock
// como PDF.
type StockReportPDFGenerator interface {
	GenerateStockReport(ctx context.Context, rows []dto.StockSummaryRow) ([]byte, error)
}

// ReportUseCase agrega datos ya computados (proyección de stock, conteos)
// para el tablero y el reporte PDF. No escribe nada.
type ReportUseCase struct {
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	demandRepo   repository.DemandRepository
	offerRepo    repository.OfferRepository
	stockQueries *stock.Queries
	pdf          StockReportPDFGenerator
}

// NewReportUseCase construye el caso de uso de reportes.
func NewReportUseCase(
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	demandRepo repository.DemandRepository,
	offerRepo repository.OfferRepository,
	stockQueries *stock.Queries,
	pdf StockReportPDFGenerator,
) *ReportUseCase {
	return &ReportUseCase{
		productRepo:  productRepo,
		customerRepo: customerRepo,
		demandRepo:   demandRepo,
		offerRepo:    offerRepo,
		stockQueries: stockQueries,
		pdf:          pdf,
	}
}

// Dashboard arma los datos del tablero: conteos, demandas pendientes, valor
// de ofertas aceptadas y hasta 5 productos con stock bajo según la
// proyección global.
func (uc *ReportUseCase) Dashboard() (*dto.DashboardResponse, error) {
	totalProducts, err := uc.productRepo.Count()
	if err != nil {
		return nil, err
	}
	totalCustomers, err := uc.customerRepo.Count()
	if err != nil {
		return nil, err
	}
	pendingDemands, err := uc.demandRepo.CountByStatus(entity.DemandStatusPending)
	if err != nil {
		return nil, err
	}
	acceptedValue, err := uc.offerRepo.SumTotalAmountByStatus(entity.OfferStatusAccepted)
	if err != nil {
		return nil, err
	}
	summary, err := uc.stockQueries.GlobalOverview()
	if err != nil {
		return nil, err
	}
	lowStock := make([]dto.StockSummaryRow, 0, 5)
	for _, row := range summary {
		if row.Quantity.LessThan(lowStockThreshold) {
			lowStock = append(lowStock, row)
			if len(lowStock) == 5 {
				break
			}
		}
	}
	return &dto.DashboardResponse{
		TotalProducts:           totalProducts,
		TotalCustomers:          totalCustomers,
		PendingDemands:          pendingDemands,
		TotalAcceptedOfferValue: acceptedValue,
		LowStockItems:           lowStock,
		// TODO: derivar la actividad reciente de los últimos movimientos
		// del libro; por ahora una entrada fija.
		RecentActivities: []dto.RecentActivity{
			{Description: "Sistema iniciado", Timestamp: "Justo ahora"},
		},
	}, nil
}

// StockReportPDF genera el resumen global de stock como PDF.
func (uc *ReportUseCase) StockReportPDF(ctx context.Context) ([]byte, error) {
	summary, err := uc.stockQueries.GlobalOverview()
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateStockReport(ctx, summary)
}
