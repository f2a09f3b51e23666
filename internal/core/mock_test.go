package core

import (
	"context"
	"fmt"

	"github.com/inspecthq/ferrite/internal/store"
)

type MockStore struct {
	Collections map[string][]map[string]interface{}
	Err         error
}

func (m *MockStore) FindOne(ctx context.Context, collection, id string) (map[string]interface{}, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, record := range m.Collections[collection] {
		if record["id"] == id {
			return record, nil
		}
	}
	return nil, fmt.Errorf("%s '%s': %w", collection, id, store.ErrNotFound)
}

func (m *MockStore) FindAll(ctx context.Context, collection string) ([]map[string]interface{}, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Collections[collection], nil
}
