package relevance

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/inspecthq/ferrite/internal/core/model"
)

// BuildPrompt renders the full classification prompt: task line, the
// line-per-candidate reply instruction, the context block, then the catalog.
// Candidates are rendered in caller order, never filtered or reordered; the
// response parser depends on this exact ordering.
func BuildPrompt(task, contextBlock string, candidates []Candidate, labels Labels) string {
	var b strings.Builder

	b.WriteString(task)
	b.WriteString("\n")
	fmt.Fprintf(&b,
		"Respond with exactly %d lines, one line per %s in the order given. Each line must contain only true or false and nothing else, no commentary.\n\n",
		len(candidates), strings.ToLower(labels.Noun))

	b.WriteString(contextBlock)
	b.WriteString("\n")

	b.WriteString(labels.CatalogTitle)
	b.WriteString(":\n")
	for i, c := range candidates {
		fmt.Fprintf(&b, "id: %s\n", textOrNA(c.ID))
		fmt.Fprintf(&b, "%s %d:\n", labels.Noun, i+1)
		fmt.Fprintf(&b, "- Name: %s\n", textOrNA(c.Name))
		fmt.Fprintf(&b, "- Description: %s\n", textOrNA(c.Description))
		fmt.Fprintf(&b, "- %s: %s\n", labels.Areas, strings.Join(c.Areas, ", "))
		fmt.Fprintf(&b, "- %s: %s\n\n", labels.Factors, strings.Join(c.Factors, ", "))
	}

	return b.String()
}

// EquipmentFluidContext renders the equipment/fluid attribute blocks. Every
// attribute appears regardless of availability so the prompt keeps a fixed
// shape; an absent value renders as N/A.
func EquipmentFluidContext(equipment *model.Equipment, fluid *model.Fluid) string {
	var b strings.Builder

	b.WriteString("Equipment:\n")
	if equipment != nil {
		fmt.Fprintf(&b, "- Type: %s\n", textOrNA(equipment.Type))
		fmt.Fprintf(&b, "- Material: %s\n", stringOrNA(equipment.Material))
		fmt.Fprintf(&b, "- Operating Temperature: %s°C\n", floatOrNA(equipment.OperatingTemperature))
		fmt.Fprintf(&b, "- Operating Pressure: %s bar\n", floatOrNA(equipment.OperatingPressure))
		fmt.Fprintf(&b, "- Design Temperature: %s°C\n", floatOrNA(equipment.DesignTemperature))
		fmt.Fprintf(&b, "- Design Pressure: %s bar\n", floatOrNA(equipment.DesignPressure))
	} else {
		b.WriteString("- Type: N/A\n- Material: N/A\n- Operating Temperature: N/A\n- Operating Pressure: N/A\n- Design Temperature: N/A\n- Design Pressure: N/A\n")
	}

	b.WriteString("\nFluid:\n")
	if fluid != nil {
		fmt.Fprintf(&b, "- Name: %s\n", textOrNA(fluid.Name))
		fmt.Fprintf(&b, "- Type: %s\n", stringOrNA(fluid.Type))
		fmt.Fprintf(&b, "- pH: %s\n", floatOrNA(fluid.PH))
		fmt.Fprintf(&b, "- Temperature: %s°C\n", floatOrNA(fluid.Temperature))
		fmt.Fprintf(&b, "- Pressure: %s bar\n", floatOrNA(fluid.Pressure))
	} else {
		b.WriteString("- Name: N/A\n- Type: N/A\n- pH: N/A\n- Temperature: N/A\n- Pressure: N/A\n")
	}

	return b.String()
}

// MechanismContext renders a list of confirmed deterioration mechanisms as
// the context for scenario classification.
func MechanismContext(mechanisms []Candidate) string {
	var b strings.Builder
	b.WriteString("Deterioration Mechanisms:\n")
	for i, m := range mechanisms {
		fmt.Fprintf(&b, "Deterioration %d:\n", i+1)
		fmt.Fprintf(&b, "- Name: %s\n", textOrNA(m.Name))
		fmt.Fprintf(&b, "- Description: %s\n", textOrNA(m.Description))
		fmt.Fprintf(&b, "- Affected Areas: %s\n", strings.Join(m.Areas, ", "))
		fmt.Fprintf(&b, "- Contributing Factors: %s\n\n", strings.Join(m.Factors, ", "))
	}
	return b.String()
}

const notAvailable = "N/A"

func textOrNA(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}

func stringOrNA(s *string) string {
	if s == nil || *s == "" {
		return notAvailable
	}
	return *s
}

func floatOrNA(f *float64) string {
	if f == nil {
		return notAvailable
	}
	return strconv.FormatFloat(*f, 'g', -1, 64)
}
