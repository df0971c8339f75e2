package menu

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/menusnap/menusnap/internal/settings"
)

// MockMenuItemRepo is an in-memory MenuItemRepo for testing
type MockMenuItemRepo struct {
	mu         sync.RWMutex
	items      map[uuid.UUID]*MenuItem
	CreateFunc func(ctx context.Context, item *MenuItem) error
	ListFunc   func(ctx context.Context) ([]*MenuItem, error)
	DeleteFunc func(ctx context.Context, id uuid.UUID) error
}

func NewMockMenuItemRepo() *MockMenuItemRepo {
	return &MockMenuItemRepo{
		items: make(map[uuid.UUID]*MenuItem),
	}
}

func (m *MockMenuItemRepo) Create(ctx context.Context, item *MenuItem) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, item)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[item.ID] = item
	return nil
}

func (m *MockMenuItemRepo) Get(ctx context.Context, id uuid.UUID) (*MenuItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.items[id], nil
}

// List returns items sorted by name, matching the store's fetch order.
func (m *MockMenuItemRepo) List(ctx context.Context) ([]*MenuItem, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	items := make([]*MenuItem, 0, len(m.items))
	for _, item := range m.items {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

func (m *MockMenuItemRepo) ListAvailable(ctx context.Context) ([]*MenuItem, error) {
	items, err := m.List(ctx)
	if err != nil {
		return nil, err
	}
	return FilterAvailable(items), nil
}

func (m *MockMenuItemRepo) Save(ctx context.Context, item *MenuItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[item.ID]; !ok {
		return fmt.Errorf("menu item with ID %s not found", item.ID.String())
	}
	m.items[item.ID] = item
	return nil
}

func (m *MockMenuItemRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[id]; !ok {
		return fmt.Errorf("menu item with ID %s not found", id.String())
	}
	delete(m.items, id)
	return nil
}

// MockSettingsRepo is an in-memory settings.Repo for testing
type MockSettingsRepo struct {
	mu       sync.RWMutex
	byID     map[string]*settings.Settings
	GetFunc  func(ctx context.Context, id string) (*settings.Settings, error)
	SaveFunc func(ctx context.Context, s *settings.Settings) error
}

func NewMockSettingsRepo() *MockSettingsRepo {
	return &MockSettingsRepo{
		byID: make(map[string]*settings.Settings),
	}
}

func (m *MockSettingsRepo) Get(ctx context.Context, id string) (*settings.Settings, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.byID[id], nil
}

func (m *MockSettingsRepo) Save(ctx context.Context, s *settings.Settings) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, s)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byID[s.ID] = s
	return nil
}

// MockPublisher records published events for testing
type MockPublisher struct {
	mu     sync.Mutex
	Topics []string
	Msgs   [][]byte
}

func NewMockPublisher() *MockPublisher {
	return &MockPublisher{}
}

func (m *MockPublisher) Publish(ctx context.Context, topic string, msg []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Topics = append(m.Topics, topic)
	m.Msgs = append(m.Msgs, msg)
	return nil
}
