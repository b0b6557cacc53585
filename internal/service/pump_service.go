package service

import (
	"context"
	"errors"

	"go-fuelstation/internal/model"
	"go-fuelstation/internal/repository"

	"go.uber.org/zap"
)

type PumpService interface {
	List(ctx context.Context) ([]model.Pump, error)
	Get(ctx context.Context, id uint) (*model.Pump, error)
	Save(ctx context.Context, pump *model.Pump) (*model.Pump, error)
	Remove(ctx context.Context, id uint) error
}

type pumpService struct {
	pumpRepo repository.PumpRepository
	fuelRepo repository.FuelTypeRepository
	events   Publisher
	logger   *zap.Logger
}

func NewPumpService(pumpRepo repository.PumpRepository, fuelRepo repository.FuelTypeRepository, events Publisher, logger *zap.Logger) PumpService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &pumpService{
		pumpRepo: pumpRepo,
		fuelRepo: fuelRepo,
		events:   publisherOrNoop(events),
		logger:   logger,
	}
}

func (s *pumpService) List(ctx context.Context) ([]model.Pump, error) {
	return s.pumpRepo.FindAll(ctx)
}

func (s *pumpService) Get(ctx context.Context, id uint) (*model.Pump, error) {
	pump, err := s.pumpRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrPumpNotFound
	}
	return pump, err
}

// Save resolves pump.FuelType.ID against the catalog and replaces whatever
// fuel data the caller sent with the stored fuel type before persisting.
func (s *pumpService) Save(ctx context.Context, pump *model.Pump) (*model.Pump, error) {
	if err := validateStruct(pump); err != nil {
		return nil, err
	}

	fuelTypeID := pump.FuelType.ID
	if fuelTypeID == 0 {
		return nil, ErrFuelTypeNotFound
	}

	fuelType, err := s.fuelRepo.FindByID(ctx, fuelTypeID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrFuelTypeNotFound
		}
		return nil, err
	}
	pump.FuelType = *fuelType

	if err := s.pumpRepo.Save(ctx, pump); err != nil {
		s.logger.Error("failed to save pump", zap.Uint("pump_id", pump.ID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("pump saved",
		zap.Uint("pump_id", pump.ID),
		zap.String("name", pump.Name),
		zap.Uint("fuel_type_id", fuelType.ID),
	)
	s.events.Publish("pump_saved", pump)
	return pump, nil
}

// Remove leaves the check for dependent transactions to the database.
func (s *pumpService) Remove(ctx context.Context, id uint) error {
	if err := s.pumpRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("pump removed", zap.Uint("pump_id", id))
	return nil
}
