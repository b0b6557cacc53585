package service

import (
	"context"
	"sort"
	"sync"

	"go-fuelstation/internal/model"
	"go-fuelstation/internal/repository"

	"github.com/shopspring/decimal"
)

// In-memory repositories. They mimic the ordering and error contract of the
// gorm implementations closely enough for service tests.

type memFuelRepo struct {
	mu     sync.Mutex
	nextID uint
	rows   map[uint]model.FuelType
	saves  int
}

func newMemFuelRepo(fuelTypes ...model.FuelType) *memFuelRepo {
	r := &memFuelRepo{rows: map[uint]model.FuelType{}}
	for _, f := range fuelTypes {
		f := f
		_ = r.Save(context.Background(), &f)
	}
	r.saves = 0
	return r
}

func (r *memFuelRepo) FindAll(ctx context.Context) ([]model.FuelType, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.FuelType, 0, len(r.rows))
	for _, f := range r.rows {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memFuelRepo) FindByID(ctx context.Context, id uint) (*model.FuelType, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &f, nil
}

func (r *memFuelRepo) Save(ctx context.Context, fuelType *model.FuelType) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saves++
	if fuelType.ID == 0 {
		r.nextID++
		fuelType.ID = r.nextID
	}
	r.rows[fuelType.ID] = *fuelType
	return nil
}

func (r *memFuelRepo) Delete(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rows, id)
	return nil
}

func (r *memFuelRepo) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.rows)), nil
}

type memPumpRepo struct {
	mu     sync.Mutex
	nextID uint
	rows   map[uint]model.Pump
	saves  int
}

func newMemPumpRepo() *memPumpRepo {
	return &memPumpRepo{rows: map[uint]model.Pump{}}
}

func (r *memPumpRepo) FindAll(ctx context.Context) ([]model.Pump, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Pump, 0, len(r.rows))
	for _, p := range r.rows {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memPumpRepo) FindByID(ctx context.Context, id uint) (*model.Pump, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (r *memPumpRepo) Save(ctx context.Context, pump *model.Pump) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saves++
	if pump.ID == 0 {
		r.nextID++
		pump.ID = r.nextID
	}
	pump.FuelTypeID = pump.FuelType.ID
	r.rows[pump.ID] = *pump
	return nil
}

func (r *memPumpRepo) Delete(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rows, id)
	return nil
}

func (r *memPumpRepo) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.rows)), nil
}

type memTxRepo struct {
	mu     sync.Mutex
	nextID uint
	rows   map[uint]model.Transaction
}

func newMemTxRepo() *memTxRepo {
	return &memTxRepo{rows: map[uint]model.Transaction{}}
}

func (r *memTxRepo) Create(ctx context.Context, tx *model.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	tx.ID = r.nextID
	r.rows[tx.ID] = *tx
	return nil
}

func (r *memTxRepo) FindAll(ctx context.Context) ([]model.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Transaction, 0, len(r.rows))
	for _, t := range r.rows {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *memTxRepo) FindByID(ctx context.Context, id uint) (*model.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &t, nil
}

func (r *memTxRepo) Delete(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rows, id)
	return nil
}

func (r *memTxRepo) GetTotals(ctx context.Context) (*repository.TransactionTotals, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	totals := &repository.TransactionTotals{Litres: decimal.Zero, TotalValue: decimal.Zero}
	for _, t := range r.rows {
		totals.Count++
		totals.Litres = totals.Litres.Add(t.Litres)
		totals.TotalValue = totals.TotalValue.Add(t.TotalValue)
	}
	return totals, nil
}

type memCredentialRepo struct {
	mu     sync.Mutex
	nextID uint
	rows   map[string]model.Credential
}

func newMemCredentialRepo() *memCredentialRepo {
	return &memCredentialRepo{rows: map[string]model.Credential{}}
}

func (r *memCredentialRepo) FindByUsername(ctx context.Context, username string) (*model.Credential, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.rows[username]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &c, nil
}

func (r *memCredentialRepo) Create(ctx context.Context, credential *model.Credential) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[credential.Username]; ok {
		return repository.ErrDuplicate
	}
	r.nextID++
	credential.ID = r.nextID
	r.rows[credential.Username] = *credential
	return nil
}

type recordingPublisher struct {
	mu      sync.Mutex
	actions []string
}

func (p *recordingPublisher) Publish(action string, payload interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.actions = append(p.actions, action)
}

func (p *recordingPublisher) Actions() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.actions...)
}
