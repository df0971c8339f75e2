package settings

import (
	"context"
	"sync"
)

// MockRepo is an in-memory Repo for testing
type MockRepo struct {
	mu       sync.RWMutex
	byID     map[string]*Settings
	GetFunc  func(ctx context.Context, id string) (*Settings, error)
	SaveFunc func(ctx context.Context, s *Settings) error
}

func NewMockRepo() *MockRepo {
	return &MockRepo{
		byID: make(map[string]*Settings),
	}
}

func (m *MockRepo) Get(ctx context.Context, id string) (*Settings, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.byID[id], nil
}

func (m *MockRepo) Save(ctx context.Context, s *Settings) error {
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
