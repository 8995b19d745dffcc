package interfaces

import (
	"context"

	"meopastel/internal/domain/entities"
)

// ISuggestionProvider abstracts the external combination generator. It
// receives the flavor axis and the filling names available on that axis
// and returns titled three-filling combinations. Responses are untrusted:
// the usecase validates every returned name against the catalog.

type ISuggestionProvider interface {
	GenerateCombinations(ctx context.Context, axis entities.FlavorAxis, available []string) ([]entities.Suggestion, error)
}
