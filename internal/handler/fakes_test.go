package handler

import (
	"context"

	"go-fuelstation/internal/model"
	"go-fuelstation/internal/service"

	"github.com/shopspring/decimal"
)

// Function-field fakes. A nil field means the call is not expected and
// answers with zero values.

type fakeTransactionService struct {
	RecordFunc func(ctx context.Context, pumpID uint, q service.Quantity) (*model.Transaction, error)
	ListFunc   func(ctx context.Context) ([]model.Transaction, error)
	GetFunc    func(ctx context.Context, id uint) (*model.Transaction, error)
	RemoveFunc func(ctx context.Context, id uint) error
}

func (f *fakeTransactionService) Record(ctx context.Context, pumpID uint, q service.Quantity) (*model.Transaction, error) {
	if f.RecordFunc != nil {
		return f.RecordFunc(ctx, pumpID, q)
	}
	return &model.Transaction{}, nil
}

func (f *fakeTransactionService) RecordByVolume(ctx context.Context, pumpID uint, litres decimal.Decimal) (*model.Transaction, error) {
	return f.Record(ctx, pumpID, service.ByVolume{Litres: litres})
}

func (f *fakeTransactionService) RecordByValue(ctx context.Context, pumpID uint, value decimal.Decimal) (*model.Transaction, error) {
	return f.Record(ctx, pumpID, service.ByValue{Amount: value})
}

func (f *fakeTransactionService) List(ctx context.Context) ([]model.Transaction, error) {
	if f.ListFunc != nil {
		return f.ListFunc(ctx)
	}
	return nil, nil
}

func (f *fakeTransactionService) Get(ctx context.Context, id uint) (*model.Transaction, error) {
	if f.GetFunc != nil {
		return f.GetFunc(ctx, id)
	}
	return nil, service.ErrTransactionNotFound
}

func (f *fakeTransactionService) Remove(ctx context.Context, id uint) error {
	if f.RemoveFunc != nil {
		return f.RemoveFunc(ctx, id)
	}
	return nil
}

type fakePumpService struct {
	SaveFunc   func(ctx context.Context, pump *model.Pump) (*model.Pump, error)
	RemoveFunc func(ctx context.Context, id uint) error
}

func (f *fakePumpService) List(ctx context.Context) ([]model.Pump, error) {
	return []model.Pump{}, nil
}

func (f *fakePumpService) Get(ctx context.Context, id uint) (*model.Pump, error) {
	return nil, service.ErrPumpNotFound
}

func (f *fakePumpService) Save(ctx context.Context, pump *model.Pump) (*model.Pump, error) {
	if f.SaveFunc != nil {
		return f.SaveFunc(ctx, pump)
	}
	return pump, nil
}

func (f *fakePumpService) Remove(ctx context.Context, id uint) error {
	if f.RemoveFunc != nil {
		return f.RemoveFunc(ctx, id)
	}
	return nil
}

type fakeFuelService struct {
	SaveFunc   func(ctx context.Context, fuelType *model.FuelType) (*model.FuelType, error)
	RemoveFunc func(ctx context.Context, id uint) error
}

func (f *fakeFuelService) List(ctx context.Context) ([]model.FuelType, error) {
	return []model.FuelType{}, nil
}

func (f *fakeFuelService) Get(ctx context.Context, id uint) (*model.FuelType, error) {
	return nil, service.ErrFuelTypeNotFound
}

func (f *fakeFuelService) Save(ctx context.Context, fuelType *model.FuelType) (*model.FuelType, error) {
	if f.SaveFunc != nil {
		return f.SaveFunc(ctx, fuelType)
	}
	return fuelType, nil
}

func (f *fakeFuelService) Remove(ctx context.Context, id uint) error {
	if f.RemoveFunc != nil {
		return f.RemoveFunc(ctx, id)
	}
	return nil
}

type fakeSessionService struct {
	LoginFunc    func(ctx context.Context, username, password string) (*service.LoginResponse, error)
	RegisterFunc func(ctx context.Context, username, password string, role model.Role) (*model.Credential, error)
}

func (f *fakeSessionService) Authenticate(ctx context.Context, username, password string) (*model.Credential, bool, error) {
	return nil, false, nil
}

func (f *fakeSessionService) Register(ctx context.Context, username, password string, role model.Role) (*model.Credential, error) {
	if f.RegisterFunc != nil {
		return f.RegisterFunc(ctx, username, password, role)
	}
	return &model.Credential{ID: 1, Username: username, Password: password, Role: role}, nil
}

func (f *fakeSessionService) Login(ctx context.Context, username, password string) (*service.LoginResponse, error) {
	if f.LoginFunc != nil {
		return f.LoginFunc(ctx, username, password)
	}
	return nil, service.ErrInvalidCredentials
}

type fakeDashboardService struct{}

func (fakeDashboardService) GetStats(ctx context.Context) (*service.DashboardStats, error) {
	return &service.DashboardStats{}, nil
}
