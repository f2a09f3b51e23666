package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockCollectionStore struct {
	Replaced       map[string][]map[string]interface{}
	IndexesEnsured bool
}

func newMockCollectionStore() *MockCollectionStore {
	return &MockCollectionStore{Replaced: make(map[string][]map[string]interface{})}
}

func (m *MockCollectionStore) ReplaceAll(ctx context.Context, collection string, records []map[string]interface{}) error {
	m.Replaced[collection] = records
	return nil
}

func (m *MockCollectionStore) EnsureIndexes(ctx context.Context) error {
	m.IndexesEnsured = true
	return nil
}

func TestRun_AllCollections(t *testing.T) {
	mock := newMockCollectionStore()

	err := Run(context.Background(), mock, "")

	require.NoError(t, err)
	assert.Len(t, mock.Replaced, 4)
	assert.Len(t, mock.Replaced["equipment"], len(EquipmentData))
	assert.Len(t, mock.Replaced["fluids"], len(FluidsData))
	assert.Len(t, mock.Replaced["deterioration"], len(DeteriorationData))
	assert.Len(t, mock.Replaced["failure_scenarios"], len(FailureScenariosData))
	assert.True(t, mock.IndexesEnsured)
}

func TestRun_SingleCollection(t *testing.T) {
	mock := newMockCollectionStore()

	err := Run(context.Background(), mock, "deterioration")

	require.NoError(t, err)
	assert.Len(t, mock.Replaced, 1)
	require.Len(t, mock.Replaced["deterioration"], len(DeteriorationData))
	assert.True(t, mock.IndexesEnsured)

	// Records carry the stored property names.
	first := mock.Replaced["deterioration"][0]
	assert.Equal(t, "corr-general", first["id"])
	assert.Equal(t, "General Corrosion", first["name"])
	assert.Contains(t, first, "affectedAreas")
	assert.Contains(t, first, "contributingFactors")
}

func TestRun_InvalidCollection(t *testing.T) {
	mock := newMockCollectionStore()

	err := Run(context.Background(), mock, "widgets")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid collection name")
	assert.Empty(t, mock.Replaced)
}
