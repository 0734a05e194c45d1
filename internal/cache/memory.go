package cache

import (
	"context"
	"strings"
	"sync"

	"github.com/bilgisen/geopulse/internal/models"
)

// MemoryStore is an in-process Store used in tests and when Redis is
// not available. It applies no retention; entries live until replaced.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]models.CountryRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string]models.CountryRecord),
	}
}

func (m *MemoryStore) Close() error {
	return nil
}

func (m *MemoryStore) Lookup(ctx context.Context, countryName string) (*models.CountryRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.data[strings.ToLower(strings.TrimSpace(countryName))]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

func (m *MemoryStore) Store(ctx context.Context, record models.CountryRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[strings.ToLower(strings.TrimSpace(record.CountryName))] = record.FactsOnly()
	return nil
}
