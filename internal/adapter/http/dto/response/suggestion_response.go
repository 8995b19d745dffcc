package response

import "meopastel/internal/domain/entities"

type SuggestionResponse struct {
	Title       string   `json:"title"`
	Fillings    []string `json:"fillings"`
	Description string   `json:"description"`
}

func FromSuggestions(suggestions []entities.Suggestion) []SuggestionResponse {
	out := make([]SuggestionResponse, 0, len(suggestions))
	for _, s := range suggestions {
		out = append(out, SuggestionResponse{Title: s.Title, Fillings: s.Fillings, Description: s.Description})
	}
	return out
}
