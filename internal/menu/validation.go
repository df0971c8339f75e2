package menu

import (
	"net/url"
	"strings"
)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidateMenuItem validates a menu item before create or update. Violations
// are returned as field errors so the admin form can surface them inline
// instead of silently refusing to submit.
func ValidateMenuItem(item *MenuItem) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(item.Name) == "" {
		errors = append(errors, ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if item.Price < 0 {
		errors = append(errors, ValidationError{
			Field:   "price",
			Message: "price cannot be negative",
		})
	}

	if item.ImageURL != "" {
		if _, err := url.ParseRequestURI(item.ImageURL); err != nil {
			errors = append(errors, ValidationError{
				Field:   "image_url",
				Message: "image_url must be a valid URL",
			})
		}
	}

	return errors
}
