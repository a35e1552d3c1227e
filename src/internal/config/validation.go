package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// getValidationMessage returns a human-readable message for a validation error
func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required", "required_if":
		return "field is required"
	case "min":
		return fmt.Sprintf("must be >= %s", e.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", e.Param())
	case "hostname_or_ip":
		return "must be an IP address or a valid host name"
	case "login_name":
		return "must consist only of letters, digits, '.', '_' and '-' and must not start with '-'"
	case "ifname":
		return "must consist only of letters, digits, '.', '_' and '-'"
	case "readable_file":
		return "file does not exist or is not readable"
	case "template_has_interface":
		return "must reference {{interface}}"
	default:
		return fmt.Sprintf("validation failed: %s", e.Tag())
	}
}

// ValidationError represents a single validation error with context
type ValidationError struct {
	FieldPath string // TOML key of the offending field (e.g., "host", "private_key_path")
	Message   string // Human-readable error message
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("validation failed with %d error(s):\n", len(ve)))
	for i, err := range ve {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.FieldPath, err.Message))
	}
	return sb.String()
}

// HasField reports whether any error refers to fieldPath.
func (ve ValidationErrors) HasField(fieldPath string) bool {
	for _, err := range ve {
		if err.FieldPath == fieldPath {
			return true
		}
	}
	return false
}
