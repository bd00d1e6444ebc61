package dfafile

import "encoding/json"

// ParseJSON parses a definition from JSON.
func ParseJSON(data []byte) (*Definition, error) {
	var d Definition
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// ToJSON serializes a definition to JSON.
func ToJSON(d *Definition, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(d, "", "  ")
	}
	return json.Marshal(d)
}
