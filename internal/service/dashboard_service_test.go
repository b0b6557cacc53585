package service

import (
	"context"
	"testing"

	"go-fuelstation/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardStats(t *testing.T) {
	ctx := context.Background()
	fuels := newMemFuelRepo(model.FuelType{Name: "Gasoline", PricePerLitre: d("5.899")})
	pumps := newMemPumpRepo()
	txs := newMemTxRepo()

	pumpSvc := NewPumpService(pumps, fuels, nil, nil)
	pump, err := pumpSvc.Save(ctx, &model.Pump{Name: "P1", FuelType: model.FuelType{ID: 1}})
	require.NoError(t, err)

	txSvc := NewTransactionService(pumps, txs, nil, nil)
	_, err = txSvc.RecordByVolume(ctx, pump.ID, d("10"))
	require.NoError(t, err)
	_, err = txSvc.RecordByValue(ctx, pump.ID, d("100"))
	require.NoError(t, err)

	stats, err := NewDashboardService(fuels, pumps, txs).GetStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(1), stats.FuelTypes)
	assert.Equal(t, int64(1), stats.Pumps)
	assert.Equal(t, int64(2), stats.Transactions.Count)
	assert.Equal(t, "26.952", stats.Transactions.Litres.StringFixed(3))
	assert.Equal(t, "158.99", stats.Transactions.TotalValue.StringFixed(2))
}
