package services

import (
	"github.com/SscSPs/organic_store_accounting/internal/core/accounting"
	"github.com/SscSPs/organic_store_accounting/internal/core/domain"
	portssvc "github.com/SscSPs/organic_store_accounting/internal/core/ports/services"
)

type chartService struct{}

// NewChartService returns the static chart-of-accounts reference.
func NewChartService() portssvc.ChartSvc {
	return chartService{}
}

func (chartService) ChartOfAccounts() []domain.ChartFamily {
	families := make([]domain.ChartFamily, len(accounting.ChartFamilies))
	copy(families, accounting.ChartFamilies)
	return families
}
