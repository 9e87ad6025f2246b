package service

import (
	"context"
	"errors"
	"sync"

	"github.com/anna-pye/myeventlane-v2-sub000/internal/domain"
)

// ErrMockRepositoryFailure is returned when a mock is configured to fail
var ErrMockRepositoryFailure = errors.New("mock repository failure")

// MockEventRepository is an in-memory implementation of repository.EventRepository
type MockEventRepository struct {
	mu         sync.RWMutex
	events     map[string]*domain.Event
	ShouldFail bool
}

// NewMockEventRepository creates a new MockEventRepository
func NewMockEventRepository() *MockEventRepository {
	return &MockEventRepository{events: make(map[string]*domain.Event)}
}

// Put seeds an event into the mock store
func (m *MockEventRepository) Put(event *domain.Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events[event.ID] = event
}

func (m *MockEventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	if m.ShouldFail {
		return nil, ErrMockRepositoryFailure
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.events[id], nil
}

func (m *MockEventRepository) Create(ctx context.Context, event *domain.Event) error {
	if m.ShouldFail {
		return ErrMockRepositoryFailure
	}
	m.Put(event)
	return nil
}

func (m *MockEventRepository) Update(ctx context.Context, event *domain.Event) error {
	return m.Create(ctx, event)
}

func (m *MockEventRepository) SetProductID(ctx context.Context, eventID, productID string) error {
	if m.ShouldFail {
		return ErrMockRepositoryFailure
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if event, ok := m.events[eventID]; ok {
		event.ProductID = &productID
	}
	return nil
}

// MockProductRepository is an in-memory implementation of repository.ProductRepository
type MockProductRepository struct {
	mu             sync.RWMutex
	products       map[string]*domain.Product
	variations     map[string]*domain.Variation
	variationOrder []string
	storeCurrency  map[string]string
	ShouldFail     bool
	FailVariation  string
	CurrencyErr    error
	CreatedCount   int
	VariationCount int
}

// NewMockProductRepository creates a new MockProductRepository
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products:      make(map[string]*domain.Product),
		variations:    make(map[string]*domain.Variation),
		storeCurrency: make(map[string]string),
	}
}

// Put seeds a product and its variations into the mock store. The
// store keeps copies: callers' structs stay disconnected from it, the
// way rows are disconnected from the structs scanned out of them.
func (m *MockProductRepository) Put(product *domain.Product) {
	m.mu.Lock()
	defer m.mu.Unlock()
	clone := *product
	clone.Variations = nil
	m.products[product.ID] = &clone
	for i := range product.Variations {
		v := product.Variations[i]
		if _, ok := m.variations[v.ID]; !ok {
			m.variationOrder = append(m.variationOrder, v.ID)
		}
		m.variations[v.ID] = &v
	}
}

// SetStoreCurrency seeds a store currency
func (m *MockProductRepository) SetStoreCurrency(storeID, currency string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.storeCurrency[storeID] = currency
}

func (m *MockProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	if m.ShouldFail {
		return nil, ErrMockRepositoryFailure
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	product, ok := m.products[id]
	if !ok {
		return nil, nil
	}
	// Rebuild the variation slice from the variation store so updates
	// made through UpdateVariation are visible.
	clone := *product
	clone.Variations = nil
	for _, vid := range m.variationOrder {
		if v := m.variations[vid]; v != nil && v.ProductID == id {
			clone.Variations = append(clone.Variations, *v)
		}
	}
	return &clone, nil
}

func (m *MockProductRepository) Create(ctx context.Context, product *domain.Product) error {
	if m.ShouldFail {
		return ErrMockRepositoryFailure
	}
	m.Put(product)
	m.mu.Lock()
	m.CreatedCount++
	m.mu.Unlock()
	return nil
}

func (m *MockProductRepository) SetEventID(ctx context.Context, productID, eventID string) error {
	if m.ShouldFail {
		return ErrMockRepositoryFailure
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if product, ok := m.products[productID]; ok {
		product.EventID = &eventID
	}
	return nil
}

func (m *MockProductRepository) UpdateTitle(ctx context.Context, productID, title string) error {
	if m.ShouldFail {
		return ErrMockRepositoryFailure
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if product, ok := m.products[productID]; ok {
		product.Title = title
	}
	return nil
}

func (m *MockProductRepository) GetVariation(ctx context.Context, id string) (*domain.Variation, error) {
	if m.ShouldFail || (m.FailVariation != "" && id == m.FailVariation) {
		return nil, ErrMockRepositoryFailure
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.variations[id]
	if !ok {
		return nil, nil
	}
	clone := *v
	return &clone, nil
}

func (m *MockProductRepository) CreateVariation(ctx context.Context, v *domain.Variation) error {
	if m.ShouldFail {
		return ErrMockRepositoryFailure
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	clone := *v
	if _, ok := m.variations[v.ID]; !ok {
		m.variationOrder = append(m.variationOrder, v.ID)
	}
	m.variations[v.ID] = &clone
	m.VariationCount++
	return nil
}

func (m *MockProductRepository) UpdateVariation(ctx context.Context, v *domain.Variation) error {
	if m.ShouldFail {
		return ErrMockRepositoryFailure
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	clone := *v
	m.variations[v.ID] = &clone
	return nil
}

func (m *MockProductRepository) UpdateVariationTitle(ctx context.Context, id, title string) error {
	if m.ShouldFail {
		return ErrMockRepositoryFailure
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if v, ok := m.variations[id]; ok {
		v.Title = title
	}
	return nil
}

func (m *MockProductRepository) UnpublishVariation(ctx context.Context, id string) error {
	if m.ShouldFail {
		return ErrMockRepositoryFailure
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if v, ok := m.variations[id]; ok {
		v.Published = false
	}
	return nil
}

func (m *MockProductRepository) GetStoreCurrency(ctx context.Context, storeID string) (string, error) {
	if m.CurrencyErr != nil {
		return "", m.CurrencyErr
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.storeCurrency[storeID], nil
}

func (m *MockProductRepository) WithEventLock(ctx context.Context, eventID string, fn func(ctx context.Context) error) error {
	if m.ShouldFail {
		return ErrMockRepositoryFailure
	}
	return fn(ctx)
}

// PublishedVariations counts currently published variations
func (m *MockProductRepository) PublishedVariations() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	count := 0
	for _, v := range m.variations {
		if v.Published {
			count++
		}
	}
	return count
}

// TotalVariations counts all variations, retired included
func (m *MockProductRepository) TotalVariations() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.variations)
}

// MockTicketTypeConfigRepository is an in-memory implementation of
// repository.TicketTypeConfigRepository
type MockTicketTypeConfigRepository struct {
	mu         sync.RWMutex
	configs    map[string][]*domain.TicketTypeConfig // by event ID
	ShouldFail bool
}

// NewMockTicketTypeConfigRepository creates a new MockTicketTypeConfigRepository
func NewMockTicketTypeConfigRepository() *MockTicketTypeConfigRepository {
	return &MockTicketTypeConfigRepository{configs: make(map[string][]*domain.TicketTypeConfig)}
}

// Put seeds configs for an event
func (m *MockTicketTypeConfigRepository) Put(eventID string, configs ...*domain.TicketTypeConfig) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.configs[eventID] = configs
}

func (m *MockTicketTypeConfigRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.TicketTypeConfig, error) {
	if m.ShouldFail {
		return nil, ErrMockRepositoryFailure
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.configs[eventID], nil
}

func (m *MockTicketTypeConfigRepository) ReplaceForEvent(ctx context.Context, eventID string, configs []*domain.TicketTypeConfig) error {
	if m.ShouldFail {
		return ErrMockRepositoryFailure
	}
	m.Put(eventID, configs...)
	return nil
}

func (m *MockTicketTypeConfigRepository) SetVariationID(ctx context.Context, configID, variationID string) error {
	if m.ShouldFail {
		return ErrMockRepositoryFailure
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, configs := range m.configs {
		for _, c := range configs {
			if c.ID == configID {
				id := variationID
				c.VariationID = &id
			}
		}
	}
	return nil
}

// MockAvailabilityOracle is a configurable AvailabilityOracle
type MockAvailabilityOracle struct {
	Remaining  *int
	Reason     string
	Available  bool
	ShouldFail bool
}

func (m *MockAvailabilityOracle) RSVPRemaining(ctx context.Context, event *domain.Event) (*domain.RSVPAvailability, error) {
	if m.ShouldFail {
		return nil, ErrMockRepositoryFailure
	}
	return &domain.RSVPAvailability{
		Available:      m.Available,
		Reason:         m.Reason,
		SpotsRemaining: m.Remaining,
	}, nil
}
