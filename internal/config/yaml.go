package config

import (
	"github.com/knadh/koanf/v2"
	"gopkg.in/yaml.v3"
)

// yamlParser implements koanf.Parser with yaml.v3.
type yamlParser struct{}

// YAMLParser returns a koanf parser for YAML config files.
func YAMLParser() koanf.Parser {
	return yamlParser{}
}

// Unmarshal parses YAML bytes into a nested map. An empty document yields
// an empty map so that defaults apply.
func (yamlParser) Unmarshal(b []byte) (map[string]interface{}, error) {
	var out map[string]interface{}
	if err := yaml.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = map[string]interface{}{}
	}
	return out, nil
}

// Marshal serializes a nested map to YAML.
func (yamlParser) Marshal(m map[string]interface{}) ([]byte, error) {
	return yaml.Marshal(m)
}
