package service

import (
	"context"
	"errors"
	"time"

	"go-fuelstation/internal/metrics"
	"go-fuelstation/internal/model"
	"go-fuelstation/internal/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Quantity is what the customer asked for: a volume or an amount of money.
// Exactly one of ByVolume and ByValue implements it per request.
type Quantity interface {
	mode() string
}

// ByVolume asks for a number of litres; the value is derived.
type ByVolume struct {
	Litres decimal.Decimal
}

// ByValue asks for an amount of money; the litres are derived.
type ByValue struct {
	Amount decimal.Decimal
}

func (ByVolume) mode() string { return "volume" }
func (ByValue) mode() string  { return "value" }

// QuantityOf picks the quantity from a request carrying optional litres and
// value. Litres take priority when both are present.
func QuantityOf(litres, value *decimal.Decimal) (Quantity, error) {
	switch {
	case litres != nil:
		return ByVolume{Litres: *litres}, nil
	case value != nil:
		return ByValue{Amount: *value}, nil
	default:
		return nil, ErrQuantityRequired
	}
}

type TransactionService interface {
	Record(ctx context.Context, pumpID uint, q Quantity) (*model.Transaction, error)
	RecordByVolume(ctx context.Context, pumpID uint, litres decimal.Decimal) (*model.Transaction, error)
	RecordByValue(ctx context.Context, pumpID uint, value decimal.Decimal) (*model.Transaction, error)
	List(ctx context.Context) ([]model.Transaction, error)
	Get(ctx context.Context, id uint) (*model.Transaction, error)
	Remove(ctx context.Context, id uint) error
}

type transactionService struct {
	pumpRepo repository.PumpRepository
	txRepo   repository.TransactionRepository
	events   Publisher
	logger   *zap.Logger
	now      func() time.Time
}

func NewTransactionService(pumpRepo repository.PumpRepository, txRepo repository.TransactionRepository, events Publisher, logger *zap.Logger) TransactionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &transactionService{
		pumpRepo: pumpRepo,
		txRepo:   txRepo,
		events:   publisherOrNoop(events),
		logger:   logger,
		now:      time.Now,
	}
}

func (s *transactionService) Record(ctx context.Context, pumpID uint, q Quantity) (*model.Transaction, error) {
	switch q := q.(type) {
	case ByVolume:
		return s.RecordByVolume(ctx, pumpID, q.Litres)
	case ByValue:
		return s.RecordByValue(ctx, pumpID, q.Amount)
	default:
		return nil, ErrQuantityRequired
	}
}

// RecordByVolume stores a fueling of the given litres, charging
// round(litres * price, 2) half up.
func (s *transactionService) RecordByVolume(ctx context.Context, pumpID uint, litres decimal.Decimal) (*model.Transaction, error) {
	if !litres.IsPositive() {
		return nil, ErrInvalidQuantity
	}

	pump, err := s.findPump(ctx, pumpID)
	if err != nil {
		return nil, err
	}

	price := pump.FuelType.PricePerLitre
	tx := &model.Transaction{
		Pump:          *pump,
		Litres:        litres.Round(model.LitresScale),
		TotalValue:    valueForLitres(litres, price),
		PricePerLitre: price,
	}
	return s.persist(ctx, ByVolume{}.mode(), tx)
}

// RecordByValue stores a fueling paid by amount, dispensing
// round(value / price, 3) half up litres.
func (s *transactionService) RecordByValue(ctx context.Context, pumpID uint, value decimal.Decimal) (*model.Transaction, error) {
	if !value.IsPositive() {
		return nil, ErrInvalidQuantity
	}

	pump, err := s.findPump(ctx, pumpID)
	if err != nil {
		return nil, err
	}

	price := pump.FuelType.PricePerLitre
	litres, err := litresForValue(value, price)
	if err != nil {
		s.logger.Warn("cannot derive litres from value",
			zap.Uint("pump_id", pump.ID),
			zap.Stringer("price_per_litre", price),
		)
		return nil, err
	}

	tx := &model.Transaction{
		Pump:          *pump,
		Litres:        litres,
		TotalValue:    value.Round(model.ValueScale),
		PricePerLitre: price,
	}
	return s.persist(ctx, ByValue{}.mode(), tx)
}

func (s *transactionService) List(ctx context.Context) ([]model.Transaction, error) {
	return s.txRepo.FindAll(ctx)
}

func (s *transactionService) Get(ctx context.Context, id uint) (*model.Transaction, error) {
	tx, err := s.txRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrTransactionNotFound
	}
	return tx, err
}

// Remove deletes a transaction. Removing an id that does not exist succeeds.
func (s *transactionService) Remove(ctx context.Context, id uint) error {
	if err := s.txRepo.Delete(ctx, id); err != nil {
		s.logger.Error("failed to remove transaction", zap.Uint("transaction_id", id), zap.Error(err))
		return err
	}
	metrics.TransactionsRemoved.Inc()
	s.logger.Info("transaction removed", zap.Uint("transaction_id", id))
	return nil
}

func (s *transactionService) findPump(ctx context.Context, id uint) (*model.Pump, error) {
	if id == 0 {
		return nil, ErrPumpNotFound
	}
	pump, err := s.pumpRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPumpNotFound
		}
		return nil, err
	}
	return pump, nil
}

func (s *transactionService) persist(ctx context.Context, mode string, tx *model.Transaction) (*model.Transaction, error) {
	tx.PumpID = tx.Pump.ID
	tx.Timestamp = s.now()

	if err := s.txRepo.Create(ctx, tx); err != nil {
		s.logger.Error("failed to record transaction", zap.Uint("pump_id", tx.PumpID), zap.Error(err))
		return nil, err
	}

	metrics.ObserveTransaction(mode, tx.Litres, tx.TotalValue)
	s.logger.Info("transaction recorded",
		zap.Uint("transaction_id", tx.ID),
		zap.Uint("pump_id", tx.PumpID),
		zap.String("mode", mode),
		zap.Stringer("litres", tx.Litres),
		zap.Stringer("total_value", tx.TotalValue),
	)
	s.events.Publish("transaction_recorded", tx)
	return tx, nil
}

// valueForLitres rounds half away from zero, which for the positive
// quantities handled here is HALF_UP.
func valueForLitres(litres, price decimal.Decimal) decimal.Decimal {
	return litres.Mul(price).Round(model.ValueScale)
}

func litresForValue(value, price decimal.Decimal) (decimal.Decimal, error) {
	if !price.IsPositive() {
		return decimal.Zero, ErrInvalidFuelPrice
	}
	return value.DivRound(price, model.LitresScale), nil
}
