package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/modus-trade/modus-api/internal/domain/entity"
)

// El signo del fold sale del tipo: entradas positivas, salidas negativas.
func TestSigned(t *testing.T) {
	qty := decimal.NewFromInt(10)
	cases := []struct {
		movType string
		want    int64
	}{
		{entity.MovementTypeIN, 10},
		{entity.MovementTypeTRANSFERIN, 10},
		{entity.MovementTypeOUT, -10},
		{entity.MovementTypeTRANSFEROUT, -10},
	}
	for _, tc := range cases {
		m := &entity.StockMovement{Type: tc.movType, Quantity: qty}
		assert.True(t, m.Signed().Equal(decimal.NewFromInt(tc.want)), "tipo %s", tc.movType)
	}
}

func TestValidMovementType(t *testing.T) {
	for _, valid := range []string{"IN", "OUT", "TRANSFER_IN", "TRANSFER_OUT"} {
		assert.True(t, entity.ValidMovementType(valid))
	}
	for _, invalid := range []string{"", "in", "AJUSTE", "TRANSFER"} {
		assert.False(t, entity.ValidMovementType(invalid))
	}
}
