package mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/iho/loanledger/internal/domain"
)

// MockLoanRepository is a mock implementation of LoanRepository backed by an
// in-memory map with real compare-and-swap semantics on Version.
type MockLoanRepository struct {
	mu      sync.RWMutex
	records map[string]*domain.LoanRecord

	GetFunc    func(ctx context.Context, borrowerID string) (*domain.LoanRecord, error)
	CreateFunc func(ctx context.Context, record *domain.LoanRecord) error
	UpdateFunc func(ctx context.Context, record *domain.LoanRecord, expectedVersion int64) error
}

func NewMockLoanRepository() *MockLoanRepository {
	return &MockLoanRepository{
		records: make(map[string]*domain.LoanRecord),
	}
}

func (m *MockLoanRepository) Get(ctx context.Context, borrowerID string) (*domain.LoanRecord, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, borrowerID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if rec, ok := m.records[borrowerID]; ok {
		clone := *rec
		return &clone, nil
	}
	return nil, domain.ErrLoanNotFound
}

func (m *MockLoanRepository) Create(ctx context.Context, record *domain.LoanRecord) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, record)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.records[record.BorrowerID]; ok {
		return domain.ErrConflict
	}
	record.Version = 1
	clone := *record
	m.records[record.BorrowerID] = &clone
	return nil
}

func (m *MockLoanRepository) Update(ctx context.Context, record *domain.LoanRecord, expectedVersion int64) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, record, expectedVersion)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	current, ok := m.records[record.BorrowerID]
	if !ok || current.Version != expectedVersion {
		return domain.ErrConflict
	}
	record.Version = expectedVersion + 1
	clone := *record
	m.records[record.BorrowerID] = &clone
	return nil
}

// Seed installs a record directly, bypassing CAS. Test setup only.
func (m *MockLoanRepository) Seed(record *domain.LoanRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()
	clone := *record
	m.records[record.BorrowerID] = &clone
}

// MockLoanEventRepository is a mock implementation of LoanEventRepository.
type MockLoanEventRepository struct {
	mu     sync.RWMutex
	events []*domain.LoanEvent

	CreateFunc         func(ctx context.Context, event *domain.LoanEvent) error
	ListByBorrowerFunc func(ctx context.Context, borrowerID string, limit, offset int) ([]*domain.LoanEvent, error)
}

func NewMockLoanEventRepository() *MockLoanEventRepository {
	return &MockLoanEventRepository{}
}

func (m *MockLoanEventRepository) Create(ctx context.Context, event *domain.LoanEvent) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, event)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
	return nil
}

func (m *MockLoanEventRepository) ListByBorrower(ctx context.Context, borrowerID string, limit, offset int) ([]*domain.LoanEvent, error) {
	if m.ListByBorrowerFunc != nil {
		return m.ListByBorrowerFunc(ctx, borrowerID, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.LoanEvent
	for _, e := range m.events {
		if e.BorrowerID == borrowerID {
			out = append(out, e)
		}
	}
	return out, nil
}

// Events returns all recorded events.
func (m *MockLoanEventRepository) Events() []*domain.LoanEvent {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*domain.LoanEvent, len(m.events))
	copy(out, m.events)
	return out
}

// MockIDGenerator is a mock implementation of IDGenerator.
type MockIDGenerator struct {
	mu      sync.Mutex
	counter int

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return fmt.Sprintf("id-%d", m.counter)
}

// MockOracle is a mock implementation of DelinquencyOracle.
type MockOracle struct {
	Late bool

	IsLateFunc func(ctx context.Context, record *domain.LoanRecord) (bool, error)
}

func NewMockOracle() *MockOracle {
	return &MockOracle{}
}

func (m *MockOracle) IsLate(ctx context.Context, record *domain.LoanRecord) (bool, error) {
	if m.IsLateFunc != nil {
		return m.IsLateFunc(ctx, record)
	}
	return m.Late, nil
}

// PassthroughRetrier runs the operation exactly once.
type PassthroughRetrier struct{}

func (PassthroughRetrier) Retry(ctx context.Context, operation func() error) error {
	return operation()
}

// MockCache is a mock implementation of Cache.
type MockCache struct {
	mu    sync.RWMutex
	items map[string][]byte

	GetFunc    func(ctx context.Context, key string) ([]byte, error)
	SetFunc    func(ctx context.Context, key string, value []byte, ttl time.Duration) error
	DeleteFunc func(ctx context.Context, key string) error
}

func NewMockCache() *MockCache {
	return &MockCache{items: make(map[string][]byte)}
}

func (m *MockCache) Get(ctx context.Context, key string) ([]byte, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if v, ok := m.items[key]; ok {
		return v, nil
	}
	return nil, fmt.Errorf("cache miss: %s", key)
}

func (m *MockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
	return nil
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}

// MockIdempotencyStore is a mock implementation of IdempotencyStore.
type MockIdempotencyStore struct {
	mu    sync.Mutex
	items map[string][]byte
}

func NewMockIdempotencyStore() *MockIdempotencyStore {
	return &MockIdempotencyStore{items: make(map[string][]byte)}
}

func (m *MockIdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.items[key]; ok {
		return true, existing, nil
	}
	if response != nil {
		m.items[key] = response
	} else {
		m.items[key] = []byte("processing")
	}
	return false, nil, nil
}

func (m *MockIdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = response
	return nil
}
