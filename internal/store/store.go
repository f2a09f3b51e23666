// Package store exposes the reference catalogs as named record collections:
// exact-match lookup by id, bulk reads, and whole-collection replacement for
// seeding. Records travel as flat property maps.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/inspecthq/ferrite/internal/driver"
)

var ErrNotFound = errors.New("record not found")

type Store struct {
	Driver driver.GraphDriver
}

func New(d driver.GraphDriver) *Store {
	return &Store{Driver: d}
}

func (s *Store) FindOne(ctx context.Context, collection, id string) (map[string]interface{}, error) {
	label, err := driver.CollectionLabel(collection)
	if err != nil {
		return nil, err
	}

	result, err := s.Driver.ExecuteQuery(ctx, driver.FindOneQuery(label), map[string]interface{}{"id": id})
	if err != nil {
		return nil, err
	}
	if len(result.Records) == 0 {
		return nil, fmt.Errorf("%s '%s': %w", collection, id, ErrNotFound)
	}
	return nodeProps(result.Records[0])
}

func (s *Store) FindAll(ctx context.Context, collection string) ([]map[string]interface{}, error) {
	label, err := driver.CollectionLabel(collection)
	if err != nil {
		return nil, err
	}

	result, err := s.Driver.ExecuteQuery(ctx, driver.FindAllQuery(label), nil)
	if err != nil {
		return nil, err
	}

	records := make([]map[string]interface{}, 0, len(result.Records))
	for _, rec := range result.Records {
		props, err := nodeProps(rec)
		if err != nil {
			return nil, err
		}
		records = append(records, props)
	}
	return records, nil
}

// ReplaceAll drops the collection and re-inserts the given records. Each
// record must carry a string "id" property.
func (s *Store) ReplaceAll(ctx context.Context, collection string, records []map[string]interface{}) error {
	label, err := driver.CollectionLabel(collection)
	if err != nil {
		return err
	}

	if _, err := s.Driver.ExecuteQuery(ctx, driver.DropCollectionQuery(label), nil); err != nil {
		return fmt.Errorf("failed to drop %s: %w", collection, err)
	}

	for _, record := range records {
		id, ok := record["id"].(string)
		if !ok || id == "" {
			return fmt.Errorf("record in %s has no string id", collection)
		}
		params := map[string]interface{}{
			"id":    id,
			"props": record,
		}
		if _, err := s.Driver.ExecuteQuery(ctx, driver.UpsertQuery(label), params); err != nil {
			return fmt.Errorf("failed to insert %s '%s': %w", collection, id, err)
		}
	}
	return nil
}

func (s *Store) EnsureIndexes(ctx context.Context) error {
	return s.Driver.BuildIndices(ctx)
}

func nodeProps(rec *neo4j.Record) (map[string]interface{}, error) {
	value, ok := rec.Get("n")
	if !ok {
		return nil, fmt.Errorf("result record has no 'n' column")
	}
	node, ok := value.(neo4j.Node)
	if !ok {
		return nil, fmt.Errorf("result column 'n' is not a node (got %T)", value)
	}
	return node.Props, nil
}
