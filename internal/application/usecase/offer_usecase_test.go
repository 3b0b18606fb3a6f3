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

func newOfferFixture() (*usecase.OfferUseCase, *memOfferRepo) {
	offers := newMemOfferRepo()
	demands := newMemDemandRepo()
	customers := newMemCustomerRepo(&entity.Customer{
		ID: "c1", Name: "Distribuciones Andinas", Type: entity.CustomerTypeCompany,
	})
	products := newMemProductRepo(
		&entity.Product{ID: "p1", SKU: "CAF-001", Name: "Café tostado 500g"},
		&entity.Product{ID: "p2", SKU: "AZU-001", Name: "Azúcar refinada 1kg"},
	)
	return usecase.NewOfferUseCase(offers, demands, customers, products, &memOfferTx{repo: offers}), offers
}

// Los totales de línea son cantidad*precio - descuento; el total de la
// oferta, la suma de líneas. Moneda por defecto USD.
func TestOfferCreate_CalculoDeTotales(t *testing.T) {
	uc, _ := newOfferFixture()
	discount := decimal.NewFromInt(5)

	resp, err := uc.Create(dto.CreateOfferRequest{
		CustomerID: "c1",
		Items: []dto.OfferItemRequest{
			{ProductID: "p1", Quantity: decimal.NewFromInt(10), UnitPrice: decimal.NewFromFloat(12.50)},
			{ProductID: "p2", Quantity: decimal.NewFromInt(3), UnitPrice: decimal.NewFromInt(20), Discount: &discount},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, entity.OfferStatusDraft, resp.Status)
	assert.Equal(t, "USD", resp.Currency)
	require.Len(t, resp.Items, 2)
	// 10 * 12.50 = 125
	assert.True(t, resp.Items[0].TotalPrice.Equal(decimal.NewFromInt(125)))
	// 3 * 20 - 5 = 55
	assert.True(t, resp.Items[1].TotalPrice.Equal(decimal.NewFromInt(55)))
	assert.True(t, resp.TotalAmount.Equal(decimal.NewFromInt(180)))
}

// Referencias inválidas: cliente, demanda o producto inexistentes.
func TestOfferCreate_ReferenciasInvalidas(t *testing.T) {
	uc, _ := newOfferFixture()
	item := dto.OfferItemRequest{
		ProductID: "p1", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(10),
	}

	_, err := uc.Create(dto.CreateOfferRequest{CustomerID: "", Items: []dto.OfferItemRequest{item}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CreateOfferRequest{CustomerID: "ghost", Items: []dto.OfferItemRequest{item}})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	ghostDemand := "no-existe"
	_, err = uc.Create(dto.CreateOfferRequest{
		CustomerID: "c1", DemandID: &ghostDemand, Items: []dto.OfferItemRequest{item},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Create(dto.CreateOfferRequest{
		CustomerID: "c1",
		Items: []dto.OfferItemRequest{
			{ProductID: "p1", Quantity: decimal.Zero, UnitPrice: decimal.NewFromInt(10)},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

// DRAFT → SENT → ACCEPTED; una vez aceptada, la oferta queda congelada.
func TestOfferUpdateStatus_AceptadaCongelada(t *testing.T) {
	uc, _ := newOfferFixture()
	resp, err := uc.Create(dto.CreateOfferRequest{
		CustomerID: "c1",
		Items: []dto.OfferItemRequest{
			{ProductID: "p1", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(10)},
		},
	})
	require.NoError(t, err)

	_, err = uc.UpdateStatus(resp.ID, entity.OfferStatusSent)
	require.NoError(t, err)

	updated, err := uc.UpdateStatus(resp.ID, entity.OfferStatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, entity.OfferStatusAccepted, updated.Status)

	for _, status := range []string{entity.OfferStatusDraft, entity.OfferStatusSent, entity.OfferStatusRejected} {
		_, err := uc.UpdateStatus(resp.ID, status)
		assert.ErrorIs(t, err, domain.ErrConflict, "ACCEPTED → %s debe rechazarse", status)
	}
}

// REJECTED también congela.
func TestOfferUpdateStatus_RechazadaCongelada(t *testing.T) {
	uc, _ := newOfferFixture()
	resp, err := uc.Create(dto.CreateOfferRequest{
		CustomerID: "c1",
		Items: []dto.OfferItemRequest{
			{ProductID: "p1", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(10)},
		},
	})
	require.NoError(t, err)

	_, err = uc.UpdateStatus(resp.ID, entity.OfferStatusRejected)
	require.NoError(t, err)

	_, err = uc.UpdateStatus(resp.ID, entity.OfferStatusSent)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

// Estados fuera del vocabulario y ofertas inexistentes.
func TestOfferUpdateStatus_Errores(t *testing.T) {
	uc, _ := newOfferFixture()

	_, err := uc.UpdateStatus("cualquiera", "EXPIRED")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.UpdateStatus("no-existe", entity.OfferStatusSent)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Si la inserción de una línea falla a mitad de camino, la transacción
// descarta también la cabecera: no queda una oferta parcial.
func TestOfferCreate_AtomicidadCabeceraYLineas(t *testing.T) {
	uc, offers := newOfferFixture()
	offers.failAfterItems = 1

	_, err := uc.Create(dto.CreateOfferRequest{
		CustomerID: "c1",
		Items: []dto.OfferItemRequest{
			{ProductID: "p1", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(10)},
			{ProductID: "p2", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(20)},
		},
	})
	require.Error(t, err)
	assert.Empty(t, offers.offers, "la oferta parcial debe revertirse")
}
