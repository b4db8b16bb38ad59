package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edsonpereira/nexus-crm/internal/application/usecase"
	"github.com/edsonpereira/nexus-crm/internal/domain/entity"
)

func TestGetSummary_RegistroVacio(t *testing.T) {
	env := newTestEnv(t, "")
	dashboard := usecase.NewDashboardUseCase(env.registry)

	summary := dashboard.GetSummary()
	assert.Zero(t, summary.TotalCustomers)
	assert.True(t, summary.PortfolioValue.IsZero())
	assert.Zero(t, summary.ActiveCount)
	assert.Zero(t, summary.OverdueCount)
	assert.Empty(t, summary.StatusDistribution)
	assert.Empty(t, summary.ValueTrend)
}

func TestGetSummary_TotalesYDistribucion(t *testing.T) {
	env := newTestEnv(t, "")
	ctx := context.Background()

	_, err := env.registry.Create(ctx, customerReq("Ana Silva", "11999990000", entity.StatusActive, 100))
	require.NoError(t, err)
	_, err = env.registry.Create(ctx, customerReq("Bruno Costa", "21988880000", entity.StatusOverdue, 200))
	require.NoError(t, err)
	_, err = env.registry.Create(ctx, customerReq("Carla Dias", "31977770000", entity.StatusActive, 50))
	require.NoError(t, err)

	dashboard := usecase.NewDashboardUseCase(env.registry)
	summary := dashboard.GetSummary()

	assert.Equal(t, 3, summary.TotalCustomers)
	assert.True(t, summary.PortfolioValue.Equal(decimal.NewFromInt(350)))
	assert.Equal(t, 2, summary.ActiveCount)
	assert.Equal(t, 1, summary.OverdueCount)

	// Solo estados presentes, en orden fijo Active, Overdue, Expired
	require.Len(t, summary.StatusDistribution, 2)
	assert.Equal(t, "Active", summary.StatusDistribution[0].Status)
	assert.Equal(t, 2, summary.StatusDistribution[0].Count)
	assert.Equal(t, "Overdue", summary.StatusDistribution[1].Status)
	assert.Equal(t, 1, summary.StatusDistribution[1].Count)
}

func TestGetSummary_SerieDeValoresUsaElPrimerNombre(t *testing.T) {
	env := newTestEnv(t, "")

	_, err := env.registry.Create(context.Background(), customerReq("Ana Silva", "11999990000", entity.StatusActive, 100))
	require.NoError(t, err)

	dashboard := usecase.NewDashboardUseCase(env.registry)
	summary := dashboard.GetSummary()

	require.Len(t, summary.ValueTrend, 1)
	assert.Equal(t, "Ana", summary.ValueTrend[0].Name)
	assert.True(t, summary.ValueTrend[0].Value.Equal(decimal.NewFromInt(100)))
}

func TestGetSummary_SerieDeValoresRecortaASiete(t *testing.T) {
	env := newTestEnv(t, "")
	ctx := context.Background()

	for i := 0; i < 9; i++ {
		_, err := env.registry.Create(ctx, customerReq(fmt.Sprintf("Cliente %d", i), "11999990000", entity.StatusActive, int64(i)))
		require.NoError(t, err)
	}

	dashboard := usecase.NewDashboardUseCase(env.registry)
	summary := dashboard.GetSummary()

	// La colección está en orden más-reciente-primero; la serie toma los
	// últimos siete elementos, es decir los clientes 6..0
	require.Len(t, summary.ValueTrend, 7)
	assert.Equal(t, "Cliente", summary.ValueTrend[0].Name)
	assert.True(t, summary.ValueTrend[0].Value.Equal(decimal.NewFromInt(6)))
	assert.True(t, summary.ValueTrend[6].Value.Equal(decimal.NewFromInt(0)))
}
