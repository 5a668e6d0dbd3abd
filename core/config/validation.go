// File: validation.go
// Title: Configuration Validation Implementation
// Description: Implements rule-based validation for configuration values
//              covering required keys, type checking, numeric ranges, length
//              bounds, and regular expression patterns.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation of validation

package config

import (
	"fmt"
	"regexp"
	"sort"
	"time"

	lingoerror "github.com/msto63/lingo/core/error"
)

// ValidationRule defines validation criteria for a configuration value
type ValidationRule struct {
	Required bool        // Whether the key must be present
	Type     string      // Expected type: "string", "int", "float", "bool", "duration", "[]string"
	Min      interface{} // Minimum value (numbers) or length (strings/slices)
	Max      interface{} // Maximum value (numbers) or length (strings/slices)
	Default  interface{} // Value applied when the key is absent
	Pattern  string      // Regular expression for string validation
}

// ValidationRules maps configuration keys to their validation rules
type ValidationRules map[string]ValidationRule

// ValidationResult contains the results of configuration validation
type ValidationResult struct {
	Valid  bool
	Errors []*lingoerror.Error
}

// Messages returns the validation error messages in rule key order
func (r *ValidationResult) Messages() []string {
	messages := make([]string, len(r.Errors))
	for i, err := range r.Errors {
		messages[i] = err.Error()
	}
	return messages
}

// Err returns nil when the result is valid and a single summarizing error
// otherwise, with the individual messages in the details
func (r *ValidationResult) Err() error {
	if r.Valid || len(r.Errors) == 0 {
		return nil
	}
	return lingoerror.New(fmt.Sprintf("config validation failed: %d problem(s) found", len(r.Errors))).
		WithCode(lingoerror.CodeValidationFailed).
		WithOperation("config.Validate").
		WithDetail("problems", r.Messages())
}

// Validate checks the configuration against the provided rules. Keys are
// checked in sorted order so the error list is deterministic. Defaults from
// rules are applied to absent keys as a side effect.
func (c *Config) Validate(rules ValidationRules) *ValidationResult {
	result := &ValidationResult{Valid: true}

	keys := make([]string, 0, len(rules))
	for key := range rules {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if err := c.validateKey(key, rules[key]); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, err)
		}
	}

	return result
}

// validateKey validates a single configuration key against its rule
func (c *Config) validateKey(key string, rule ValidationRule) *lingoerror.Error {
	value := c.rawValue(key)

	if value == nil {
		if rule.Required {
			return ruleError(key, lingoerror.CodeRequiredField,
				fmt.Sprintf("required config key %q is missing", key))
		}
		if rule.Default != nil {
			c.Set(key, rule.Default)
		}
		return nil
	}

	if rule.Type != "" {
		if err := validateType(key, value, rule.Type); err != nil {
			return err
		}
	}

	if rule.Min != nil {
		if err := validateMin(key, value, rule.Min); err != nil {
			return err
		}
	}

	if rule.Max != nil {
		if err := validateMax(key, value, rule.Max); err != nil {
			return err
		}
	}

	if rule.Pattern != "" {
		if err := validatePattern(key, value, rule.Pattern); err != nil {
			return err
		}
	}

	return nil
}

// validateType checks that a value has the expected type. Numeric widening
// is tolerated because the typed getters coerce on read anyway; only
// genuinely incompatible values are rejected.
func validateType(key string, value interface{}, expectedType string) *lingoerror.Error {
	switch expectedType {
	case "string":
		if _, ok := value.(string); !ok {
			return typeError(key, "string", value)
		}

	case "int":
		switch v := value.(type) {
		case int, int64:
			// valid
		case float64:
			if v != float64(int64(v)) {
				return ruleError(key, lingoerror.CodeInvalidFormat,
					fmt.Sprintf("config key %q must be an integer, got a fractional number", key))
			}
		default:
			return typeError(key, "int", value)
		}

	case "float":
		switch value.(type) {
		case float32, float64, int, int64:
			// valid
		default:
			return typeError(key, "float", value)
		}

	case "bool":
		if _, ok := value.(bool); !ok {
			return typeError(key, "bool", value)
		}

	case "duration":
		switch v := value.(type) {
		case time.Duration, int, int64:
			// valid, bare integers are nanoseconds
		case string:
			if _, err := time.ParseDuration(v); err != nil {
				return ruleError(key, lingoerror.CodeInvalidFormat,
					fmt.Sprintf("config key %q must be a valid duration, got %q", key, v))
			}
		default:
			return typeError(key, "duration", value)
		}

	case "[]string":
		switch value.(type) {
		case []string, []interface{}:
			// valid
		default:
			return typeError(key, "[]string", value)
		}

	default:
		return ruleError(key, lingoerror.CodeInvalidInput,
			fmt.Sprintf("unknown validation type %q for config key %q", expectedType, key))
	}

	return nil
}

// validateMin checks minimum values for numbers and minimum lengths for
// strings and slices
func validateMin(key string, value, min interface{}) *lingoerror.Error {
	switch v := value.(type) {
	case int, int64:
		actual, _ := asInt64(v)
		if m, ok := asInt64(min); ok && actual < m {
			return ruleError(key, lingoerror.CodeValueOutOfRange,
				fmt.Sprintf("config key %q value %d is below minimum %d", key, actual, m))
		}

	case float32, float64:
		actual, _ := asFloat64(v)
		if m, ok := asFloat64(min); ok && actual < m {
			return ruleError(key, lingoerror.CodeValueOutOfRange,
				fmt.Sprintf("config key %q value %g is below minimum %g", key, actual, m))
		}

	case string:
		if m, ok := asInt64(min); ok && int64(len(v)) < m {
			return ruleError(key, lingoerror.CodeInvalidLength,
				fmt.Sprintf("config key %q length %d is below minimum %d", key, len(v), m))
		}

	case []string:
		if m, ok := asInt64(min); ok && int64(len(v)) < m {
			return ruleError(key, lingoerror.CodeInvalidLength,
				fmt.Sprintf("config key %q has %d element(s), minimum is %d", key, len(v), m))
		}

	case []interface{}:
		if m, ok := asInt64(min); ok && int64(len(v)) < m {
			return ruleError(key, lingoerror.CodeInvalidLength,
				fmt.Sprintf("config key %q has %d element(s), minimum is %d", key, len(v), m))
		}
	}

	return nil
}

// validateMax checks maximum values for numbers and maximum lengths for
// strings and slices
func validateMax(key string, value, max interface{}) *lingoerror.Error {
	switch v := value.(type) {
	case int, int64:
		actual, _ := asInt64(v)
		if m, ok := asInt64(max); ok && actual > m {
			return ruleError(key, lingoerror.CodeValueOutOfRange,
				fmt.Sprintf("config key %q value %d is above maximum %d", key, actual, m))
		}

	case float32, float64:
		actual, _ := asFloat64(v)
		if m, ok := asFloat64(max); ok && actual > m {
			return ruleError(key, lingoerror.CodeValueOutOfRange,
				fmt.Sprintf("config key %q value %g is above maximum %g", key, actual, m))
		}

	case string:
		if m, ok := asInt64(max); ok && int64(len(v)) > m {
			return ruleError(key, lingoerror.CodeInvalidLength,
				fmt.Sprintf("config key %q length %d is above maximum %d", key, len(v), m))
		}

	case []string:
		if m, ok := asInt64(max); ok && int64(len(v)) > m {
			return ruleError(key, lingoerror.CodeInvalidLength,
				fmt.Sprintf("config key %q has %d element(s), maximum is %d", key, len(v), m))
		}

	case []interface{}:
		if m, ok := asInt64(max); ok && int64(len(v)) > m {
			return ruleError(key, lingoerror.CodeInvalidLength,
				fmt.Sprintf("config key %q has %d element(s), maximum is %d", key, len(v), m))
		}
	}

	return nil
}

// validatePattern checks string values against a regular expression
func validatePattern(key string, value interface{}, pattern string) *lingoerror.Error {
	strValue, ok := value.(string)
	if !ok {
		return ruleError(key, lingoerror.CodeInvalidFormat,
			fmt.Sprintf("config key %q pattern validation requires a string value", key))
	}

	regex, err := regexp.Compile(pattern)
	if err != nil {
		return ruleError(key, lingoerror.CodeInvalidInput,
			fmt.Sprintf("invalid pattern %q for config key %q: %v", pattern, key, err))
	}

	if !regex.MatchString(strValue) {
		return ruleError(key, lingoerror.CodeInvalidFormat,
			fmt.Sprintf("config key %q value %q does not match pattern %q", key, strValue, pattern))
	}

	return nil
}

// ruleError builds a validation error carrying the offending key
func ruleError(key string, code lingoerror.Code, message string) *lingoerror.Error {
	return lingoerror.New(message).
		WithCode(code).
		WithOperation("config.Validate").
		WithDetail("key", key)
}

// typeError builds the standard wrong-type error message
func typeError(key, expected string, value interface{}) *lingoerror.Error {
	return ruleError(key, lingoerror.CodeInvalidFormat,
		fmt.Sprintf("config key %q must be a %s, got %T", key, expected, value))
}

// asInt64 widens integer-like values for comparisons
func asInt64(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		return int64(n), true
	}
	return 0, false
}

// asFloat64 widens numeric values for comparisons
func asFloat64(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
