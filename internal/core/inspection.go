// Package core wires the reference store and the relevance classifiers into
// the inspection query surface.
package core

import (
	"context"
	"errors"

	"github.com/inspecthq/ferrite/internal/config"
	"github.com/inspecthq/ferrite/internal/core/model"
	"github.com/inspecthq/ferrite/internal/core/relevance"
	"github.com/inspecthq/ferrite/internal/llm"
	"github.com/inspecthq/ferrite/internal/store"
)

// ReferenceStore is the read surface the inspection core needs from the
// document store.
type ReferenceStore interface {
	FindOne(ctx context.Context, collection, id string) (map[string]interface{}, error)
	FindAll(ctx context.Context, collection string) ([]map[string]interface{}, error)
}

type Inspection struct {
	Store      ReferenceStore
	Mechanisms *relevance.Classifier
	Scenarios  *relevance.Classifier
}

func NewInspection(store ReferenceStore, client llm.LLMClient, cfg *config.Config) *Inspection {
	return &Inspection{
		Store:      store,
		Mechanisms: relevance.NewMechanismClassifier(client, cfg.Relevance),
		Scenarios:  relevance.NewScenarioClassifier(client, cfg.Relevance),
	}
}

func (s *Inspection) ListEquipment(ctx context.Context) ([]model.Equipment, error) {
	maps, err := s.Store.FindAll(ctx, "equipment")
	if err != nil {
		return nil, err
	}
	return model.DecodeAll[model.Equipment](maps)
}

func (s *Inspection) ListFluids(ctx context.Context) ([]model.Fluid, error) {
	maps, err := s.Store.FindAll(ctx, "fluids")
	if err != nil {
		return nil, err
	}
	return model.DecodeAll[model.Fluid](maps)
}

func (s *Inspection) ListMechanisms(ctx context.Context) ([]model.Mechanism, error) {
	maps, err := s.Store.FindAll(ctx, "deterioration")
	if err != nil {
		return nil, err
	}
	return model.DecodeAll[model.Mechanism](maps)
}

// RelevantMechanisms classifies the deterioration catalog against an
// equipment/fluid pairing. With neither id given the full catalog is returned
// without a classification call. An unknown id surfaces as the store's
// not-found error before any call is made.
func (s *Inspection) RelevantMechanisms(ctx context.Context, equipmentID, fluidID string) ([]model.Mechanism, error) {
	mechanisms, err := s.ListMechanisms(ctx)
	if err != nil {
		return nil, err
	}

	if equipmentID == "" && fluidID == "" {
		return mechanisms, nil
	}

	var equipment *model.Equipment
	if equipmentID != "" {
		props, err := s.Store.FindOne(ctx, "equipment", equipmentID)
		if err != nil {
			return nil, err
		}
		equipment = &model.Equipment{}
		if err := model.FromMap(props, equipment); err != nil {
			return nil, err
		}
	}

	var fluid *model.Fluid
	if fluidID != "" {
		props, err := s.Store.FindOne(ctx, "fluids", fluidID)
		if err != nil {
			return nil, err
		}
		fluid = &model.Fluid{}
		if err := model.FromMap(props, fluid); err != nil {
			return nil, err
		}
	}

	contextBlock := relevance.EquipmentFluidContext(equipment, fluid)
	relevant := s.Mechanisms.Classify(ctx, contextBlock, relevance.MechanismCandidates(mechanisms))

	byID := make(map[string]model.Mechanism, len(mechanisms))
	for _, m := range mechanisms {
		byID[m.ID] = m
	}
	result := make([]model.Mechanism, 0, len(relevant))
	for _, c := range relevant {
		result = append(result, byID[c.ID])
	}
	return result, nil
}

// RelevantScenarios classifies the failure-scenario catalog against a set of
// confirmed deterioration mechanisms. Unknown mechanism ids are skipped; if
// none resolve, or the scenario catalog is empty, the result is empty and no
// call is made.
func (s *Inspection) RelevantScenarios(ctx context.Context, deteriorationIDs []string) ([]model.Scenario, error) {
	var mechanisms []model.Mechanism
	for _, id := range deteriorationIDs {
		props, err := s.Store.FindOne(ctx, "deterioration", id)
		if errors.Is(err, store.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		var m model.Mechanism
		if err := model.FromMap(props, &m); err != nil {
			return nil, err
		}
		mechanisms = append(mechanisms, m)
	}
	if len(mechanisms) == 0 {
		return []model.Scenario{}, nil
	}

	maps, err := s.Store.FindAll(ctx, "failure_scenarios")
	if err != nil {
		return nil, err
	}
	scenarios, err := model.DecodeAll[model.Scenario](maps)
	if err != nil {
		return nil, err
	}
	if len(scenarios) == 0 {
		return []model.Scenario{}, nil
	}

	contextBlock := relevance.MechanismContext(relevance.MechanismCandidates(mechanisms))
	relevant := s.Scenarios.Classify(ctx, contextBlock, relevance.ScenarioCandidates(scenarios))

	byID := make(map[string]model.Scenario, len(scenarios))
	for _, sc := range scenarios {
		byID[sc.ID] = sc
	}
	result := make([]model.Scenario, 0, len(relevant))
	for _, c := range relevant {
		result = append(result, byID[c.ID])
	}
	return result, nil
}
