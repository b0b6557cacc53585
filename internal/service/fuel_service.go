package service

import (
	"context"
	"errors"

	"go-fuelstation/internal/model"
	"go-fuelstation/internal/repository"

	"go.uber.org/zap"
)

type FuelService interface {
	List(ctx context.Context) ([]model.FuelType, error)
	Get(ctx context.Context, id uint) (*model.FuelType, error)
	Save(ctx context.Context, fuelType *model.FuelType) (*model.FuelType, error)
	Remove(ctx context.Context, id uint) error
}

type fuelService struct {
	fuelRepo repository.FuelTypeRepository
	events   Publisher
	logger   *zap.Logger
}

func NewFuelService(fuelRepo repository.FuelTypeRepository, events Publisher, logger *zap.Logger) FuelService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &fuelService{
		fuelRepo: fuelRepo,
		events:   publisherOrNoop(events),
		logger:   logger,
	}
}

func (s *fuelService) List(ctx context.Context) ([]model.FuelType, error) {
	return s.fuelRepo.FindAll(ctx)
}

func (s *fuelService) Get(ctx context.Context, id uint) (*model.FuelType, error) {
	fuelType, err := s.fuelRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrFuelTypeNotFound
	}
	return fuelType, err
}

// Save inserts or fully replaces a fuel type. The price is not checked here;
// a non-positive price only fails later, when litres are derived from a value.
func (s *fuelService) Save(ctx context.Context, fuelType *model.FuelType) (*model.FuelType, error) {
	if err := validateStruct(fuelType); err != nil {
		return nil, err
	}

	if err := s.fuelRepo.Save(ctx, fuelType); err != nil {
		s.logger.Error("failed to save fuel type", zap.Uint("fuel_type_id", fuelType.ID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("fuel type saved",
		zap.Uint("fuel_type_id", fuelType.ID),
		zap.String("name", fuelType.Name),
		zap.Stringer("price_per_litre", fuelType.PricePerLitre),
	)
	s.events.Publish("fuel_type_saved", fuelType)
	return fuelType, nil
}

func (s *fuelService) Remove(ctx context.Context, id uint) error {
	if err := s.fuelRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("fuel type removed", zap.Uint("fuel_type_id", id))
	return nil
}
