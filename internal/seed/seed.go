package seed

import (
	"context"
	"fmt"
	"log"

	"github.com/inspecthq/ferrite/internal/core/model"
)

// CollectionStore is the write surface seeding needs.
type CollectionStore interface {
	ReplaceAll(ctx context.Context, collection string, records []map[string]interface{}) error
	EnsureIndexes(ctx context.Context) error
}

func datasets() (map[string][]map[string]interface{}, error) {
	out := make(map[string][]map[string]interface{})
	var err error

	if out["equipment"], err = encode(EquipmentData); err != nil {
		return nil, fmt.Errorf("encoding equipment: %w", err)
	}
	if out["fluids"], err = encode(FluidsData); err != nil {
		return nil, fmt.Errorf("encoding fluids: %w", err)
	}
	if out["deterioration"], err = encode(DeteriorationData); err != nil {
		return nil, fmt.Errorf("encoding deterioration: %w", err)
	}
	if out["failure_scenarios"], err = encode(FailureScenariosData); err != nil {
		return nil, fmt.Errorf("encoding failure_scenarios: %w", err)
	}
	return out, nil
}

func encode[T any](records []T) ([]map[string]interface{}, error) {
	maps := make([]map[string]interface{}, 0, len(records))
	for _, record := range records {
		props, err := model.ToMap(record)
		if err != nil {
			return nil, err
		}
		maps = append(maps, props)
	}
	return maps, nil
}

// Run resets and reloads the named collection, or every collection when name
// is empty, then ensures the id indexes exist.
func Run(ctx context.Context, s CollectionStore, name string) error {
	all, err := datasets()
	if err != nil {
		return err
	}

	if name != "" {
		records, ok := all[name]
		if !ok {
			return fmt.Errorf("invalid collection name '%s': must be one of equipment, fluids, deterioration, failure_scenarios", name)
		}
		if err := s.ReplaceAll(ctx, name, records); err != nil {
			return err
		}
		log.Printf("Inserted %d %s items", len(records), name)
		return s.EnsureIndexes(ctx)
	}

	// Stable order keeps seeding output readable.
	for _, collection := range []string{"equipment", "fluids", "deterioration", "failure_scenarios"} {
		records := all[collection]
		if err := s.ReplaceAll(ctx, collection, records); err != nil {
			return err
		}
		log.Printf("Inserted %d %s items", len(records), collection)
	}
	return s.EnsureIndexes(ctx)
}
