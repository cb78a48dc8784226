package config

import "github.com/ariel-frischer/testidcheck/internal/rule"

// DefaultColors is the default palette for text output roles.
var DefaultColors = map[string]string{
	"componentName": "red",
	"lineNumber":    "blue",
	"fileLocation":  "green",
	"attributeName": "yellow",
	"totalMissing":  "magenta",
}

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	defaults := map[string]interface{}{
		"directoryToCheck":       "src",
		"testIdAttributes":       []string{"testID"},
		"extensions":             "js,jsx,tsx,ts",
		"outputFormat":           "text",
		"excludePattern":         "",
		"dynamicTestIdFunction":  "getTestID",
		"nonInteractiveElements": []string{},
		"internalElementPattern": "",
		"interactiveElements":    []string{},
		"autoFix":                false,
		"idPrefix":               rule.DefaultIDPrefix,
		"skipConfirmations":      false,
	}
	for role, name := range DefaultColors {
		defaults["colors."+role] = name
	}
	return defaults
}
