package driver

import "fmt"

// Reference collections and their node labels. Labels cannot be parameterized
// in Cypher, so query text is built per collection from this fixed set.
var collectionLabels = map[string]string{
	"equipment":         "Equipment",
	"fluids":            "Fluid",
	"deterioration":     "Deterioration",
	"failure_scenarios": "FailureScenario",
}

func CollectionLabel(collection string) (string, error) {
	label, ok := collectionLabels[collection]
	if !ok {
		return "", fmt.Errorf("unknown collection: %s", collection)
	}
	return label, nil
}

func CollectionLabels() []string {
	// Stable order for index creation.
	return []string{"Equipment", "Fluid", "Deterioration", "FailureScenario"}
}

func FindOneQuery(label string) string {
	return fmt.Sprintf(`
		MATCH (n:%s {id: $id})
		RETURN n
		LIMIT 1
	`, label)
}

func FindAllQuery(label string) string {
	return fmt.Sprintf(`
		MATCH (n:%s)
		RETURN n
		ORDER BY n.id
	`, label)
}

func UpsertQuery(label string) string {
	return fmt.Sprintf(`
		MERGE (n:%s {id: $id})
		SET n = $props
		RETURN n.id AS id
	`, label)
}

func DropCollectionQuery(label string) string {
	return fmt.Sprintf(`
		MATCH (n:%s)
		DETACH DELETE n
	`, label)
}
