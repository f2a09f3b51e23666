package relevance

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/inspecthq/ferrite/internal/core/model"
)

func TestBuildPrompt_PreservesCandidateOrder(t *testing.T) {
	candidates := []Candidate{
		{ID: "corr-pitting", Name: "Pitting Corrosion", Description: "Localized holes", Areas: []string{"Welds", "Vessel Bottom"}, Factors: []string{"Chlorides"}},
		{ID: "corr-general", Name: "General Corrosion", Description: "Uniform thinning", Areas: []string{"Pipe Walls"}, Factors: []string{"Oxygen Content", "Temperature"}},
	}

	prompt := BuildPrompt("Analyze the mechanisms.", "Equipment:\n- Type: Pump\n", candidates, MechanismLabels)

	assert.Contains(t, prompt, "exactly 2 lines")
	assert.Contains(t, prompt, "one line per mechanism")
	assert.Contains(t, prompt, "Deterioration Mechanisms:")
	assert.Contains(t, prompt, "id: corr-pitting\nMechanism 1:")
	assert.Contains(t, prompt, "id: corr-general\nMechanism 2:")
	assert.Less(t, strings.Index(prompt, "Pitting Corrosion"), strings.Index(prompt, "General Corrosion"))
	assert.Contains(t, prompt, "- Affected Areas: Welds, Vessel Bottom")
	assert.Contains(t, prompt, "- Contributing Factors: Oxygen Content, Temperature")
}

func TestBuildPrompt_ScenarioLabels(t *testing.T) {
	candidates := []Candidate{
		{ID: "catastrophic", Name: "Catastrophic Failure", Description: "Sudden failure", Areas: []string{"Pressure Vessels"}, Factors: []string{"Regular Inspection"}},
	}

	prompt := BuildPrompt("Analyze the scenarios.", "", candidates, ScenarioLabels)

	assert.Contains(t, prompt, "Possible Failure Scenarios:")
	assert.Contains(t, prompt, "Scenario 1:")
	assert.Contains(t, prompt, "- Affected Components: Pressure Vessels")
	assert.Contains(t, prompt, "- Mitigation Strategies: Regular Inspection")
}

func TestEquipmentFluidContext(t *testing.T) {
	material := "Carbon Steel"
	opTemp := 120.5
	equipment := &model.Equipment{Type: "Centrifugal", Material: &material, OperatingTemperature: &opTemp}
	ph := 7.0
	fluid := &model.Fluid{Name: "Water", PH: &ph}

	out := EquipmentFluidContext(equipment, fluid)

	assert.Contains(t, out, "- Type: Centrifugal")
	assert.Contains(t, out, "- Material: Carbon Steel")
	assert.Contains(t, out, "- Operating Temperature: 120.5°C")
	assert.Contains(t, out, "- Name: Water")
	assert.Contains(t, out, "- pH: 7")
}

func TestEquipmentFluidContext_MissingValuesRenderNA(t *testing.T) {
	out := EquipmentFluidContext(&model.Equipment{Type: "Pump"}, nil)

	assert.Contains(t, out, "- Material: N/A")
	assert.Contains(t, out, "- Operating Pressure: N/A bar")
	assert.Contains(t, out, "- Design Temperature: N/A°C")
	// The fluid block keeps its full shape even with no fluid at all.
	assert.Contains(t, out, "Fluid:\n- Name: N/A\n- Type: N/A\n- pH: N/A")
}

func TestEquipmentFluidContext_FixedShape(t *testing.T) {
	full := EquipmentFluidContext(&model.Equipment{Type: "Pump"}, &model.Fluid{Name: "Water"})
	empty := EquipmentFluidContext(nil, nil)

	assert.Equal(t, strings.Count(full, "\n"), strings.Count(empty, "\n"))
}

func TestMechanismContext(t *testing.T) {
	mechanisms := []Candidate{
		{Name: "Pitting Corrosion", Description: "Localized holes", Areas: []string{"Welds"}, Factors: []string{"Chlorides"}},
		{Name: "Cavitation", Description: "Vapor bubble collapse", Areas: []string{"Pump Impellers"}, Factors: []string{"Pressure Drops"}},
	}

	out := MechanismContext(mechanisms)

	assert.Contains(t, out, "Deterioration 1:\n- Name: Pitting Corrosion")
	assert.Contains(t, out, "Deterioration 2:\n- Name: Cavitation")
	assert.Contains(t, out, "- Affected Areas: Welds")
	assert.Contains(t, out, "- Contributing Factors: Pressure Drops")
}
