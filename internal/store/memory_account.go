package store

import (
	"context"
	"sort"
	"sync"

	"github.com/MKhiriev/go-account-service/internal/logger"
	"github.com/MKhiriev/go-account-service/models"
)

// memoryAccountRepository is an in-process [AccountRepository] used when the
// DSN is [MemoryDSN]. Data lives only as long as the process.
type memoryAccountRepository struct {
	mu       sync.RWMutex
	nextID   int64
	accounts map[int64]models.Account
	logger   *logger.Logger
}

// NewMemoryAccountRepository returns an empty in-memory repository whose
// identifiers start at 1 and are never reused.
func NewMemoryAccountRepository(logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating in-memory account repository")
	return &memoryAccountRepository{
		nextID:   1,
		accounts: make(map[int64]models.Account),
		logger:   logger,
	}
}

func (m *memoryAccountRepository) Create(ctx context.Context, account models.Account) (models.Account, error) {
	if err := ctx.Err(); err != nil {
		return models.Account{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	account.ID = m.nextID
	m.nextID++
	m.accounts[account.ID] = account

	return account, nil
}

func (m *memoryAccountRepository) FindByID(ctx context.Context, id int64) (*models.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	account, ok := m.accounts[id]
	if !ok {
		return nil, nil
	}
	return &account, nil
}

func (m *memoryAccountRepository) List(ctx context.Context) ([]models.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	accounts := make([]models.Account, 0, len(m.accounts))
	for _, account := range m.accounts {
		accounts = append(accounts, account)
	}
	m.mu.RUnlock()

	sort.Slice(accounts, func(i, j int) bool { return accounts[i].ID < accounts[j].ID })
	return accounts, nil
}

func (m *memoryAccountRepository) Update(ctx context.Context, account models.Account) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.accounts[account.ID]
	if !ok {
		return ErrAccountNotFound
	}

	m.accounts[account.ID] = stored.Apply(account.Payload())
	return nil
}

func (m *memoryAccountRepository) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	delete(m.accounts, id)
	m.mu.Unlock()

	return nil
}
