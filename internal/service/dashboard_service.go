package service

import (
	"context"

	"go-fuelstation/internal/repository"
)

type DashboardService interface {
	GetStats(ctx context.Context) (*DashboardStats, error)
}

// DashboardStats is the station overview
type DashboardStats struct {
	FuelTypes    int64                         `json:"fuel_types"`
	Pumps        int64                         `json:"pumps"`
	Transactions *repository.TransactionTotals `json:"transactions"`
}

type dashboardService struct {
	fuelRepo repository.FuelTypeRepository
	pumpRepo repository.PumpRepository
	txRepo   repository.TransactionRepository
}

func NewDashboardService(fuelRepo repository.FuelTypeRepository, pumpRepo repository.PumpRepository, txRepo repository.TransactionRepository) DashboardService {
	return &dashboardService{
		fuelRepo: fuelRepo,
		pumpRepo: pumpRepo,
		txRepo:   txRepo,
	}
}

func (s *dashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	fuelTypes, err := s.fuelRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	pumps, err := s.pumpRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	totals, err := s.txRepo.GetTotals(ctx)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		FuelTypes:    fuelTypes,
		Pumps:        pumps,
		Transactions: totals,
	}, nil
}
