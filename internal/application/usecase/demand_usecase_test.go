package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modus-trade/modus-api/internal/application/dto"
	"github.com/modus-trade/modus-api/internal/application/usecase"
	"github.com/modus-trade/modus-api/internal/domain"
	"github.com/modus-trade/modus-api/internal/domain/entity"
)

func newDemandFixture() (*usecase.DemandUseCase, *memDemandRepo) {
	demands := newMemDemandRepo()
	products := newMemProductRepo(&entity.Product{
		ID: "p1", SKU: "CAF-001", Name: "Café tostado 500g",
	})
	return usecase.NewDemandUseCase(demands, products, &memDemandTx{repo: demands}), demands
}

func createDemand(t *testing.T, uc *usecase.DemandUseCase) *dto.DemandResponse {
	t.Helper()
	resp, err := uc.Create(dto.CreateDemandRequest{
		Title: "Reposición tienda centro",
		Items: []dto.DemandItemRequest{
			{ProductID: "p1", Quantity: decimal.NewFromInt(10)},
		},
	})
	require.NoError(t, err)
	return resp
}

// Una demanda nueva nace en DRAFT con prioridad MEDIUM por defecto.
func TestDemandCreate_EstadoInicial(t *testing.T) {
	uc, _ := newDemandFixture()
	resp := createDemand(t, uc)

	assert.Equal(t, entity.DemandStatusDraft, resp.Status)
	assert.Equal(t, entity.PriorityMedium, resp.Priority)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Café tostado 500g", resp.Items[0].ProductName)
}

// Sin título o sin líneas no hay demanda.
func TestDemandCreate_EntradaInvalida(t *testing.T) {
	uc, _ := newDemandFixture()

	_, err := uc.Create(dto.CreateDemandRequest{Title: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CreateDemandRequest{
		Title: "Sin líneas",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CreateDemandRequest{
		Title: "Cantidad cero",
		Items: []dto.DemandItemRequest{{ProductID: "p1", Quantity: decimal.Zero}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = uc.Create(dto.CreateDemandRequest{
		Title: "Producto fantasma",
		Items: []dto.DemandItemRequest{{ProductID: "nope", Quantity: decimal.NewFromInt(1)}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// DRAFT → PENDING → PROCESSED es el camino feliz.
func TestDemandUpdateStatus_FlujoNormal(t *testing.T) {
	uc, _ := newDemandFixture()
	d := createDemand(t, uc)

	resp, err := uc.UpdateStatus(d.ID, entity.DemandStatusPending)
	require.NoError(t, err)
	assert.Equal(t, entity.DemandStatusPending, resp.Status)

	resp, err = uc.UpdateStatus(d.ID, entity.DemandStatusProcessed)
	require.NoError(t, err)
	assert.Equal(t, entity.DemandStatusProcessed, resp.Status)
}

// Una demanda CANCELLED es terminal: ningún cambio posterior.
func TestDemandUpdateStatus_CanceladaEsTerminal(t *testing.T) {
	uc, _ := newDemandFixture()
	d := createDemand(t, uc)

	_, err := uc.UpdateStatus(d.ID, entity.DemandStatusCancelled)
	require.NoError(t, err)

	for _, status := range []string{entity.DemandStatusDraft, entity.DemandStatusPending, entity.DemandStatusProcessed} {
		_, err := uc.UpdateStatus(d.ID, status)
		assert.ErrorIs(t, err, domain.ErrConflict, "CANCELLED → %s debe rechazarse", status)
	}
}

// Una demanda PROCESSED solo admite pasar a CANCELLED.
func TestDemandUpdateStatus_ProcesadaSoloCancelable(t *testing.T) {
	uc, _ := newDemandFixture()
	d := createDemand(t, uc)

	_, err := uc.UpdateStatus(d.ID, entity.DemandStatusProcessed)
	require.NoError(t, err)

	_, err = uc.UpdateStatus(d.ID, entity.DemandStatusPending)
	assert.ErrorIs(t, err, domain.ErrConflict)

	resp, err := uc.UpdateStatus(d.ID, entity.DemandStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, entity.DemandStatusCancelled, resp.Status)
}

// Estados fuera del vocabulario y demandas inexistentes.
func TestDemandUpdateStatus_Errores(t *testing.T) {
	uc, _ := newDemandFixture()
	d := createDemand(t, uc)

	_, err := uc.UpdateStatus(d.ID, "ARCHIVED")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.UpdateStatus("no-existe", entity.DemandStatusPending)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Si la inserción de una línea falla a mitad de camino, la transacción
// descarta también la cabecera: no queda una demanda parcial.
func TestDemandCreate_AtomicidadCabeceraYLineas(t *testing.T) {
	uc, demands := newDemandFixture()
	demands.failAfterItems = 1

	_, err := uc.Create(dto.CreateDemandRequest{
		Title: "Reposición tienda centro",
		Items: []dto.DemandItemRequest{
			{ProductID: "p1", Quantity: decimal.NewFromInt(10)},
			{ProductID: "p1", Quantity: decimal.NewFromInt(5)},
		},
	})
	require.Error(t, err)
	assert.Empty(t, demands.demands, "la demanda parcial debe revertirse")
}
