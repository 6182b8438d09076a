package repository

import "context"

// memorySuggestionRepository implements SuggestionRepository with a plain map
type memorySuggestionRepository struct {
	byCode map[string]string
}

// NewSuggestionRepository creates an empty in-memory suggestion table
func NewSuggestionRepository() SuggestionRepository {
	return &memorySuggestionRepository{byCode: make(map[string]string)}
}

// Set registers a suggestion, overwriting any previous one
func (r *memorySuggestionRepository) Set(_ context.Context, fromCode, suggestCode string) {
	r.byCode[fromCode] = suggestCode
}

// Get looks up the suggestion for a code
func (r *memorySuggestionRepository) Get(_ context.Context, fromCode string) (string, bool) {
	s, ok := r.byCode[fromCode]
	return s, ok
}
