// Package model defines the reference records served by the store. Field
// names follow the stored property names; optional scalars are pointers and
// render as "N/A" when absent.
package model

import "encoding/json"

type Equipment struct {
	ID       string `json:"id"`
	Category string `json:"category,omitempty"`
	Type     string `json:"type,omitempty"`
	Subtype  string `json:"subtype,omitempty"`
	Name     string `json:"name"`
	Image    string `json:"image,omitempty"`

	Material             *string  `json:"material,omitempty"`
	OperatingTemperature *float64 `json:"operatingTemperature,omitempty"`
	OperatingPressure    *float64 `json:"operatingPressure,omitempty"`
	DesignTemperature    *float64 `json:"designTemperature,omitempty"`
	DesignPressure       *float64 `json:"designPressure,omitempty"`
}

type Fluid struct {
	ID             string   `json:"id"`
	Category       string   `json:"category,omitempty"`
	Name           string   `json:"name"`
	CompatibleWith []string `json:"compatibleWith,omitempty"`

	Type        *string  `json:"type,omitempty"`
	PH          *float64 `json:"pH,omitempty"`
	Temperature *float64 `json:"temperature,omitempty"`
	Pressure    *float64 `json:"pressure,omitempty"`
}

type Mechanism struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	Description         string   `json:"description"`
	Likelihood          string   `json:"likelihood,omitempty"`
	AffectedAreas       []string `json:"affectedAreas,omitempty"`
	ContributingFactors []string `json:"contributingFactors,omitempty"`
	Comment             string   `json:"comment,omitempty"`
}

type Scenario struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"name"`
	Description          string   `json:"description"`
	Severity             string   `json:"severity,omitempty"`
	Likelihood           string   `json:"likelihood,omitempty"`
	AffectedComponents   []string `json:"affectedComponents,omitempty"`
	MitigationStrategies []string `json:"mitigationStrategies,omitempty"`
}

// ToMap converts a record into the flat property map the store persists.
func ToMap(record interface{}) (map[string]interface{}, error) {
	data, err := json.Marshal(record)
	if err != nil {
		return nil, err
	}
	var props map[string]interface{}
	if err := json.Unmarshal(data, &props); err != nil {
		return nil, err
	}
	return props, nil
}

// FromMap decodes a stored property map into the given record pointer.
func FromMap(props map[string]interface{}, record interface{}) error {
	data, err := json.Marshal(props)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, record)
}

// DecodeAll decodes a list of property maps into records of type T.
func DecodeAll[T any](maps []map[string]interface{}) ([]T, error) {
	records := make([]T, 0, len(maps))
	for _, props := range maps {
		var record T
		if err := FromMap(props, &record); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}
