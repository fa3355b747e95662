package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"fireapi/internal/storage"
)

var requiredFields = []string{
	"job_id", "trade_category", "job_name", "description",
	"phases", "labor_rates", "sizing_factors",
}

var requiredPhaseFields = []string{
	"phase_id", "phase_name", "sequence", "tasks", "materials",
}

// SchemaError reports every missing required field at once, so a broken
// template can be fixed in one pass instead of one field per run.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("template schema: missing required fields: [%s]", strings.Join(e.Missing, ", "))
}

// Load reads a trade template from path, checks the required fields and
// returns the parsed document. Presence is checked on the raw JSON keys so a
// zero value is not mistaken for a missing field.
func Load(path string) (*storage.Template, error) {
	const op = "storage.jsonfile.Load"

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%s: parse %s: %w", op, path, err)
	}

	if missing := validate(raw); len(missing) > 0 {
		return nil, &SchemaError{Missing: missing}
	}

	var tpl storage.Template
	if err := json.Unmarshal(data, &tpl); err != nil {
		return nil, fmt.Errorf("%s: parse %s: %w", op, path, err)
	}

	return &tpl, nil
}

func validate(raw map[string]json.RawMessage) []string {
	var missing []string

	for _, field := range requiredFields {
		if _, ok := raw[field]; !ok {
			missing = append(missing, field)
		}
	}

	phasesRaw, ok := raw["phases"]
	if !ok {
		return missing
	}

	var phases []map[string]json.RawMessage
	if err := json.Unmarshal(phasesRaw, &phases); err != nil {
		missing = append(missing, "phases")
		return missing
	}

	for i, phase := range phases {
		for _, field := range requiredPhaseFields {
			if _, ok := phase[field]; !ok {
				missing = append(missing, fmt.Sprintf("phases[%d].%s", i, field))
			}
		}
	}

	return missing
}
