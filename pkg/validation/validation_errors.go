package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps config struct field names to the environment variables that feed them
var FieldLabels = map[string]string{
	"Port":                    "PORT",
	"GinMode":                 "GIN_MODE",
	"DBDriver":                "DATABASE_DRIVER",
	"DBUrl":                   "DATABASE_URL",
	"DBMaxConns":              "DB_MAX_CONNS",
	"DBMinConns":              "DB_MIN_CONNS",
	"SeedFile":                "SEED_FILE",
	"FrontendURL":             "FRONTEND_URL",
	"CORSAllowedOrigins":      "CORS_ALLOWED_ORIGINS",
	"TrustedProxies":          "TRUSTED_PROXIES",
	"LogLevel":                "LOG_LEVEL",
	"RedisURL":                "REDIS_URL",
	"RateLimitWindowSeconds":  "RATE_LIMIT_WINDOW_SECONDS",
	"RateLimitWriteThreshold": "RATE_LIMIT_WRITE_THRESHOLD",
}

// FormatValidationErrors converts validator.ValidationErrors to readable messages
func FormatValidationErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		// Not a validation error, return generic message
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

// formatSingleError formats a single validation error
func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.StructField())
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s: is required", label)
	case "numeric":
		return fmt.Sprintf("%s: must be numeric, got %q", label, e.Value())
	case "oneof":
		return fmt.Sprintf("%s: must be one of: %s", label, strings.Join(strings.Fields(param), ", "))
	case "url":
		return fmt.Sprintf("%s: invalid URL %q", label, e.Value())
	case "file":
		return fmt.Sprintf("%s: file %q does not exist", label, e.Value())
	case "gte":
		return fmt.Sprintf("%s: must be at least %s", label, param)
	case "ltefield":
		return fmt.Sprintf("%s: must not exceed %s", label, getFieldLabel(param))
	default:
		// Fallback for unknown tags
		return fmt.Sprintf("%s: validation failed (%s)", label, e.Tag())
	}
}

// getFieldLabel returns the environment variable name for a field
func getFieldLabel(fieldName string) string {
	// Slice elements are reported as Field[i]
	if i := strings.IndexByte(fieldName, '['); i >= 0 {
		fieldName = fieldName[:i]
	}
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return formatCamelCase(fieldName)
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}
