package config

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// starterConfig is the configuration written by `testidcheck init`.
type starterConfig struct {
	DirectoryToCheck       string            `json:"directoryToCheck" yaml:"directoryToCheck"`
	TestIDAttributes       []string          `json:"testIdAttributes" yaml:"testIdAttributes"`
	Extensions             string            `json:"extensions" yaml:"extensions"`
	OutputFormat           string            `json:"outputFormat" yaml:"outputFormat"`
	ExcludePattern         string            `json:"excludePattern" yaml:"excludePattern"`
	DynamicTestIDFunction  string            `json:"dynamicTestIdFunction" yaml:"dynamicTestIdFunction"`
	InteractiveElements    []string          `json:"interactiveElements" yaml:"interactiveElements"`
	NonInteractiveElements []string          `json:"nonInteractiveElements" yaml:"nonInteractiveElements"`
	InternalElementPattern string            `json:"internalElementPattern" yaml:"internalElementPattern"`
	AutoFix                bool              `json:"autoFix" yaml:"autoFix"`
	Colors                 map[string]string `json:"colors" yaml:"colors"`
}

func newStarterConfig() starterConfig {
	colors := make(map[string]string, len(DefaultColors))
	for role, name := range DefaultColors {
		colors[role] = name
	}
	return starterConfig{
		DirectoryToCheck:       "src",
		TestIDAttributes:       []string{"testID"},
		Extensions:             "js,jsx,tsx,ts",
		OutputFormat:           "text",
		ExcludePattern:         "**/node_modules/**",
		DynamicTestIDFunction:  "getTestID",
		InteractiveElements:    []string{"Button", "Pressable", "TextInput", "TouchableOpacity"},
		NonInteractiveElements: []string{"Text", "View"},
		InternalElementPattern: "^_",
		AutoFix:                false,
		Colors:                 colors,
	}
}

// StarterConfig renders the starter configuration in the format implied
// by the extension of path.
func StarterConfig(path string) ([]byte, error) {
	starter := newStarterConfig()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		out, err := json.MarshalIndent(starter, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling starter config: %w", err)
		}
		return append(out, '\n'), nil
	case ".yaml", ".yml":
		out, err := yaml.Marshal(starter)
		if err != nil {
			return nil, fmt.Errorf("marshaling starter config: %w", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported config format %q (use .json, .yaml or .yml)", filepath.Ext(path))
	}
}
