package store

import (
	"context"
	"errors"
	"testing"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockDriver struct {
	Queries []string
	Params  []map[string]interface{}
	Results []neo4j.EagerResult
	Err     error
}

func (m *MockDriver) ExecuteQuery(ctx context.Context, query string, params map[string]interface{}) (neo4j.EagerResult, error) {
	m.Queries = append(m.Queries, query)
	m.Params = append(m.Params, params)
	if m.Err != nil {
		return neo4j.EagerResult{}, m.Err
	}
	if len(m.Results) > 0 {
		result := m.Results[0]
		m.Results = m.Results[1:]
		return result, nil
	}
	return neo4j.EagerResult{}, nil
}

func (m *MockDriver) BuildIndices(ctx context.Context) error {
	return nil
}

func (m *MockDriver) Close(ctx context.Context) error {
	return nil
}

func nodeResult(props ...map[string]interface{}) neo4j.EagerResult {
	records := make([]*neo4j.Record, 0, len(props))
	for _, p := range props {
		records = append(records, &neo4j.Record{
			Keys:   []string{"n"},
			Values: []interface{}{neo4j.Node{Props: p}},
		})
	}
	return neo4j.EagerResult{Keys: []string{"n"}, Records: records}
}

func TestFindOne(t *testing.T) {
	mock := &MockDriver{Results: []neo4j.EagerResult{
		nodeResult(map[string]interface{}{"id": "pump-cent-1", "name": "Horizontal Centrifugal Pump"}),
	}}
	s := New(mock)

	record, err := s.FindOne(context.Background(), "equipment", "pump-cent-1")

	require.NoError(t, err)
	assert.Equal(t, "Horizontal Centrifugal Pump", record["name"])
	require.Len(t, mock.Queries, 1)
	assert.Contains(t, mock.Queries[0], "MATCH (n:Equipment {id: $id})")
	assert.Equal(t, "pump-cent-1", mock.Params[0]["id"])
}

func TestFindOne_NotFound(t *testing.T) {
	mock := &MockDriver{Results: []neo4j.EagerResult{nodeResult()}}
	s := New(mock)

	_, err := s.FindOne(context.Background(), "fluids", "missing")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "missing")
}

func TestFindOne_UnknownCollection(t *testing.T) {
	s := New(&MockDriver{})

	_, err := s.FindOne(context.Background(), "widgets", "id-1")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown collection")
}

func TestFindAll(t *testing.T) {
	mock := &MockDriver{Results: []neo4j.EagerResult{
		nodeResult(
			map[string]interface{}{"id": "corr-general"},
			map[string]interface{}{"id": "corr-pitting"},
		),
	}}
	s := New(mock)

	records, err := s.FindAll(context.Background(), "deterioration")

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "corr-general", records[0]["id"])
	assert.Contains(t, mock.Queries[0], "MATCH (n:Deterioration)")
}

func TestFindAll_DriverError(t *testing.T) {
	mock := &MockDriver{Err: errors.New("connection refused")}
	s := New(mock)

	_, err := s.FindAll(context.Background(), "equipment")

	assert.Error(t, err)
}

func TestReplaceAll(t *testing.T) {
	mock := &MockDriver{}
	s := New(mock)

	records := []map[string]interface{}{
		{"id": "catastrophic", "name": "Catastrophic Failure"},
		{"id": "gradual-leakage", "name": "Gradual Leakage"},
	}
	err := s.ReplaceAll(context.Background(), "failure_scenarios", records)

	require.NoError(t, err)
	require.Len(t, mock.Queries, 3)
	assert.Contains(t, mock.Queries[0], "MATCH (n:FailureScenario)")
	assert.Contains(t, mock.Queries[0], "DETACH DELETE")
	assert.Contains(t, mock.Queries[1], "MERGE (n:FailureScenario {id: $id})")
	assert.Equal(t, "catastrophic", mock.Params[1]["id"])
	assert.Equal(t, records[1], mock.Params[2]["props"])
}

func TestReplaceAll_RecordWithoutID(t *testing.T) {
	s := New(&MockDriver{})

	err := s.ReplaceAll(context.Background(), "equipment", []map[string]interface{}{{"name": "nameless"}})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no string id")
}
