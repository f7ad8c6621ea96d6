package util

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"
)

// Round-trips through JSON so omitempty and json tags drive the YAML keys.
func toJSON(v any) (any, error) {
	jsonBytes, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	var jsonOut any
	if err := json.Unmarshal(jsonBytes, &jsonOut); err != nil {
		return nil, err
	}
	return jsonOut, nil
}

func SerializeToJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// SerializeToYAML writes v as YAML using the keys its JSON encoding would use.
func SerializeToYAML(w io.Writer, v any) error {
	encoder := yaml.NewEncoder(w)
	defer encoder.Close()
	encoder.SetIndent(2)

	toOutput, err := toJSON(v)
	if err != nil {
		return err
	}
	return encoder.Encode(toOutput)
}
