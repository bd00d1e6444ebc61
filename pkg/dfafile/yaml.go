package dfafile

import "gopkg.in/yaml.v3"

// ParseYAML parses a definition from YAML.
func ParseYAML(data []byte) (*Definition, error) {
	var d Definition
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// ToYAML serializes a definition to YAML.
func ToYAML(d *Definition) ([]byte, error) {
	return yaml.Marshal(d)
}
