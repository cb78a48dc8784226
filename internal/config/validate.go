package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-playground/validator/v10"
)

// ValidationError represents a configuration validation error with context
type ValidationError struct {
	FilePath string
	Line     int
	Column   int
	Message  string
	Field    string
}

func (e *ValidationError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s", e.FilePath, e.Line, e.Column, e.Message)
	}
	if e.Field != "" {
		return fmt.Sprintf("%s: field '%s': %s", e.FilePath, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.FilePath, e.Message)
}

// fromValidatorError converts the first validator field error into a
// ValidationError naming the config key.
func fromValidatorError(filePath string, err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &ValidationError{FilePath: filePath, Message: fmt.Sprintf("config validation failed: %v", err)}
	}

	fe := fieldErrs[0]
	return &ValidationError{
		FilePath: filePath,
		Field:    configKey(fe.StructNamespace()),
		Message:  describeTag(fe),
	}
}

// configKey maps a struct namespace such as "Configuration.Colors[foo]"
// to the config key "colors[foo]".
func configKey(namespace string) string {
	_, field, ok := strings.Cut(namespace, ".")
	if !ok {
		field = namespace
	}
	name, rest, _ := strings.Cut(field, "[")
	if key, ok := fieldKeys[name]; ok {
		name = key
	}
	if rest != "" {
		return name + "[" + rest
	}
	return name
}

var fieldKeys = map[string]string{
	"DirectoryToCheck": "directoryToCheck",
	"TestIDAttributes": "testIdAttributes",
	"Extensions":       "extensions",
	"OutputFormat":     "outputFormat",
	"Colors":           "colors",
	"IDPrefix":         "idPrefix",
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must contain at least %s entry", fe.Param())
	case "oneof":
		return fmt.Sprintf("%q must be one of: %s", fmt.Sprint(fe.Value()), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "attrliteral":
		return fmt.Sprintf("%q is not usable inside a quoted JSX attribute value", fmt.Sprint(fe.Value()))
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}

// attrLiteral accepts strings that can sit verbatim inside a double-quoted
// JSX attribute value.
func attrLiteral(fl validator.FieldLevel) bool {
	for _, r := range fl.Field().String() {
		if unicode.IsControl(r) || strings.ContainsRune(`"\{}<>`, r) {
			return false
		}
	}
	return true
}

func validGlob(pattern string) bool {
	return doublestar.ValidatePattern(filepath.ToSlash(pattern))
}

// extractLineColumn attempts to extract line and column numbers from a YAML error message.
// Returns 0, 0 if unable to extract.
func extractLineColumn(errMsg string) (line, column int) {
	// yaml.v3 errors look like: "yaml: line 5: could not find expected ':'"
	idx := strings.Index(errMsg, "yaml: line ")
	if idx < 0 {
		return 0, 0
	}
	msg := errMsg[idx:]

	var l, c int
	if n, _ := fmt.Sscanf(msg, "yaml: line %d: column %d:", &l, &c); n == 2 {
		return l, c
	}
	if n, _ := fmt.Sscanf(msg, "yaml: line %d:", &l); n == 1 {
		return l, 1
	}
	return 0, 0
}

// cleanYAMLError removes the "yaml: line X:" prefix from error messages for cleaner output.
func cleanYAMLError(errMsg string) string {
	idx := strings.Index(errMsg, "yaml: line ")
	if idx < 0 {
		return errMsg
	}
	if end := strings.LastIndex(errMsg, ": "); end > idx {
		return errMsg[end+2:]
	}
	return errMsg
}
