package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/ariel-frischer/testidcheck/internal/rule"
)

// EnvPrefix is the prefix of environment variables that override config keys.
const EnvPrefix = "TESTIDCHECK_"

// ErrMissingPath is returned by Load when no config path is given.
var ErrMissingPath = errors.New("no config file path provided")

// ErrNotFound is returned by Load when the config file does not exist.
var ErrNotFound = errors.New("config file not found")

// Configuration represents the testidcheck configuration
type Configuration struct {
	DirectoryToCheck       string            `koanf:"directoryToCheck" validate:"required"`
	TestIDAttributes       []string          `koanf:"testIdAttributes" validate:"required,min=1,dive,required"`
	Extensions             string            `koanf:"extensions" validate:"required"`
	OutputFormat           string            `koanf:"outputFormat" validate:"oneof=text json"`
	ExcludePattern         string            `koanf:"excludePattern"`
	DynamicTestIDFunction  string            `koanf:"dynamicTestIdFunction"`
	NonInteractiveElements []string          `koanf:"nonInteractiveElements"`
	InternalElementPattern string            `koanf:"internalElementPattern"`
	InteractiveElements    []string          `koanf:"interactiveElements"`
	AutoFix                bool              `koanf:"autoFix"`
	Colors                 map[string]string `koanf:"colors" validate:"dive,keys,oneof=componentName lineNumber fileLocation attributeName totalMissing,endkeys,oneof=black red green yellow blue magenta cyan white gray grey"`
	IDPrefix               string            `koanf:"idPrefix" validate:"attrliteral"`
	SkipConfirmations      bool              `koanf:"skipConfirmations"` // Apply fixes without prompting (also TESTIDCHECK_YES)

	// Path is the file the configuration was loaded from.
	Path string `koanf:"-"`

	internalPattern *regexp.Regexp
}

// Load loads configuration from the file at path, applying defaults first
// and environment variables last.
// Priority: Environment variables > Config file > Defaults
func Load(path string) (*Configuration, error) {
	if path == "" {
		return nil, ErrMissingPath
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, &ValidationError{FilePath: path, Message: err.Error()}
	}

	parser, err := parserFor(path)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")

	for key, value := range GetDefaults() {
		k.Set(key, value)
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		line, column := extractLineColumn(err.Error())
		return nil, &ValidationError{
			FilePath: path,
			Line:     line,
			Column:   column,
			Message:  cleanYAMLError(err.Error()),
		}
	}

	// Override with environment variables (highest priority)
	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envValue), nil); err != nil {
		return nil, fmt.Errorf("loading environment overrides: %w", err)
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, &ValidationError{FilePath: path, Message: fmt.Sprintf("failed to unmarshal config: %v", err)}
	}
	cfg.Path = path

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks field constraints and compiles the internal element
// pattern. It must be called again after modifying the configuration.
func (c *Configuration) Validate() error {
	validate := validator.New()
	if err := validate.RegisterValidation("attrliteral", attrLiteral); err != nil {
		return err
	}
	if err := validate.Struct(c); err != nil {
		return fromValidatorError(c.Path, err)
	}

	c.internalPattern = nil
	if c.InternalElementPattern != "" {
		re, err := regexp.Compile(c.InternalElementPattern)
		if err != nil {
			return &ValidationError{
				FilePath: c.Path,
				Field:    "internalElementPattern",
				Message:  fmt.Sprintf("invalid regular expression: %v", err),
			}
		}
		c.internalPattern = re
	}

	if c.ExcludePattern != "" && !validGlob(c.ExcludePattern) {
		return &ValidationError{
			FilePath: c.Path,
			Field:    "excludePattern",
			Message:  "invalid glob pattern",
		}
	}

	return nil
}

// Rule builds the attribute rule described by the configuration.
func (c *Configuration) Rule() *rule.Rule {
	return rule.New(rule.Options{
		RequiredAttributes:  c.TestIDAttributes,
		ExemptElements:      c.NonInteractiveElements,
		InternalPattern:     c.internalPattern,
		InteractiveElements: c.InteractiveElements,
		DynamicFunction:     c.DynamicTestIDFunction,
	})
}

// Color returns the configured color name for role, falling back to the
// default palette.
func (c *Configuration) Color(role string) string {
	if name, ok := c.Colors[role]; ok && name != "" {
		return name
	}
	return DefaultColors[role]
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return json.Parser(), nil
	case ".yaml", ".yml":
		return YAMLParser(), nil
	default:
		return nil, &ValidationError{
			FilePath: path,
			Message:  "unsupported config format (use .json, .yaml or .yml)",
		}
	}
}

// listKeys are config keys whose environment values are comma-separated.
var listKeys = func() map[string]bool {
	m := map[string]bool{}
	for key, value := range GetDefaults() {
		if _, ok := value.([]string); ok {
			m[key] = true
		}
	}
	return m
}()

// envValue maps an environment variable to its config key and value,
// splitting list keys on commas. Example:
// TESTIDCHECK_TESTIDATTRIBUTES=testID,nativeID -> ["testID", "nativeID"].
func envValue(name, value string) (string, interface{}) {
	key := envTransform(name)
	if key == "" || !listKeys[key] {
		return key, value
	}

	items := []string{}
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return key, items
}

// envKeys maps normalized environment suffixes to config keys.
var envKeys = func() map[string]string {
	m := map[string]string{"yes": "skipConfirmations"}
	for key := range GetDefaults() {
		if strings.Contains(key, ".") {
			continue // nested maps are file-only
		}
		m[strings.ToLower(key)] = key
	}
	return m
}()

// envTransform converts environment variable names to config keys.
// Example: TESTIDCHECK_OUTPUT_FORMAT -> outputFormat. Unknown names map
// to "" and are ignored.
func envTransform(s string) string {
	name := strings.TrimPrefix(s, EnvPrefix)
	name = strings.ReplaceAll(strings.ToLower(name), "_", "")
	return envKeys[name]
}
