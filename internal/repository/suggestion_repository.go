package repository

import "context"

// SuggestionRepository defines the interface for cross-sell lookups
type SuggestionRepository interface {
	// Set maps a purchased code to a suggested code, overwriting any
	// previous suggestion for that code.
	Set(ctx context.Context, fromCode, suggestCode string)

	// Get returns the suggestion registered for the code, if any. It is a
	// pure read: filtering by stock or existence is the caller's job.
	Get(ctx context.Context, fromCode string) (string, bool)
}
