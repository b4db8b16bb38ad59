package usecase

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/edsonpereira/nexus-crm/internal/application/dto"
	"github.com/edsonpereira/nexus-crm/internal/domain/entity"
)

// trendPoints cantidad de puntos de la serie de valores del panel.
const trendPoints = 7

// DashboardUseCase agrega las métricas del panel general a partir del
// registro de clientes. Solo lectura; un recorrido lineal por llamada.
type DashboardUseCase struct {
	registry *CustomerUseCase
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(registry *CustomerUseCase) *DashboardUseCase {
	return &DashboardUseCase{registry: registry}
}

// GetSummary calcula totales, valor de portafolio, conteos por estado y la
// serie de valores de los últimos clientes de la colección.
func (uc *DashboardUseCase) GetSummary() dto.DashboardSummaryDTO {
	customers := uc.registry.List()

	total := decimal.Zero
	counts := map[entity.CustomerStatus]int{}
	for _, c := range customers {
		total = total.Add(c.Value)
		counts[c.Status]++
	}

	// Solo estados con al menos un cliente, en orden fijo de la enumeración
	distribution := make([]dto.StatusCountDTO, 0, 3)
	for _, s := range []entity.CustomerStatus{entity.StatusActive, entity.StatusOverdue, entity.StatusExpired} {
		if counts[s] > 0 {
			distribution = append(distribution, dto.StatusCountDTO{Status: string(s), Count: counts[s]})
		}
	}

	// Cola de la colección (los registros más antiguos), cada punto
	// etiquetado con el primer nombre del cliente.
	start := 0
	if len(customers) > trendPoints {
		start = len(customers) - trendPoints
	}
	trend := make([]dto.TrendPointDTO, 0, trendPoints)
	for _, c := range customers[start:] {
		name := c.Name
		if i := strings.IndexByte(name, ' '); i > 0 {
			name = name[:i]
		}
		trend = append(trend, dto.TrendPointDTO{Name: name, Value: c.Value})
	}

	return dto.DashboardSummaryDTO{
		TotalCustomers:     len(customers),
		PortfolioValue:     total,
		ActiveCount:        counts[entity.StatusActive],
		OverdueCount:       counts[entity.StatusOverdue],
		StatusDistribution: distribution,
		ValueTrend:         trend,
	}
}
