// Package api provides the HTTP surface of the search engine: request
// validation, routing, and handler glue over the engine services.
package api

import "strings"

// ValidationError represents a validation error with field context
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult holds the result of validation operations
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// AddError adds a validation error to the result
func (vr *ValidationResult) AddError(field, message string) {
	vr.Valid = false
	vr.Errors = append(vr.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors
func (vr *ValidationResult) HasErrors() bool {
	return len(vr.Errors) > 0
}

// ValidateQuery validates a search query string. Empty queries are a
// request error at this boundary; the core itself just returns empty
// results for empty token sequences.
func ValidateQuery(query string) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if strings.TrimSpace(query) == "" {
		result.AddError("query", "Query is required")
	}
	return result
}

// ValidatePrefix validates an autocomplete prefix parameter.
func ValidatePrefix(prefix string) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if strings.TrimSpace(prefix) == "" {
		result.AddError("prefix", "Prefix is required")
	}
	return result
}

// ValidateDocumentID validates a document ID parameter.
func ValidateDocumentID(documentID string) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if documentID == "" {
		result.AddError("documentId", "Document ID is required")
		return result
	}
	if strings.TrimSpace(documentID) != documentID {
		result.AddError("documentId", "Document ID cannot have leading or trailing whitespace")
	}
	return result
}

// ValidateURL validates a scrape target URL.
func ValidateURL(url string) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if strings.TrimSpace(url) == "" {
		result.AddError("url", "URL is required")
		return result
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		result.AddError("url", "URL must start with http:// or https://")
	}
	return result
}
