package usecase

import (
	"context"
	"errors"
	"log"

	"meopastel/internal/domain/catalog"
	"meopastel/internal/domain/entities"
	"meopastel/internal/usecase/interfaces"
)

var (
	ErrSuggestionsUnavailable = errors.New("suggestion provider failed")
	ErrNoAxisForSuggestions   = errors.New("suggestions only exist for filling views")
	ErrNoMatchingFillings     = errors.New("no suggested filling matches the catalog")
)

// ISuggestionUseCase wraps the external combination generator. Provider
// output is untrusted: every suggestion must resolve to exactly three
// catalog fillings on the requested axis or it is dropped silently.

type ISuggestionUseCase interface {
	Generate(ctx context.Context) ([]entities.Suggestion, error)
	Apply(ctx context.Context, fillingNames []string) error
}

type SuggestionUseCase struct {
	sessions interfaces.ISessionRepository
	provider interfaces.ISuggestionProvider
}

var _ ISuggestionUseCase = (*SuggestionUseCase)(nil)

func NewSuggestionUseCase(sessions interfaces.ISessionRepository, provider interfaces.ISuggestionProvider) *SuggestionUseCase {
	return &SuggestionUseCase{sessions: sessions, provider: provider}
}

func (u *SuggestionUseCase) Generate(ctx context.Context) ([]entities.Suggestion, error) {
	var axis entities.FlavorAxis
	if err := u.sessions.View(ctx, func(s *entities.Session) error {
		a, ok := s.View.Axis()
		if !ok {
			return ErrNoAxisForSuggestions
		}
		axis = a
		return nil
	}); err != nil {
		return nil, err
	}

	if u.provider == nil {
		log.Printf("[suggestion][usecase] provider not configured")
		return nil, ErrSuggestionsUnavailable
	}

	raw, err := u.provider.GenerateCombinations(ctx, axis, catalog.FillingNamesByAxis(axis))
	if err != nil {
		log.Printf("[suggestion][usecase] provider failed axis=%s err=%v", axis, err)
		return nil, ErrSuggestionsUnavailable
	}

	valid := make([]entities.Suggestion, 0, len(raw))
	for _, sg := range raw {
		if resolveSuggestion(sg, axis) {
			valid = append(valid, sg)
		} else {
			log.Printf("[suggestion][usecase] dropping unresolvable suggestion title=%q", sg.Title)
		}
	}
	return valid, nil
}

// resolveSuggestion checks a suggestion against the catalog by case- and
// whitespace-insensitive exact name match, on one axis, exactly three.
func resolveSuggestion(sg entities.Suggestion, axis entities.FlavorAxis) bool {
	if len(sg.Fillings) != entities.SelectionSize {
		return false
	}
	for _, name := range sg.Fillings {
		if _, ok := catalog.FindFillingByName(name, axis); !ok {
			return false
		}
	}
	return true
}

// Apply replaces the current selection with the suggested fillings that
// resolve on the active view's axis, capped at three picks.
func (u *SuggestionUseCase) Apply(ctx context.Context, fillingNames []string) error {
	return u.sessions.Update(ctx, func(s *entities.Session) error {
		axis, ok := s.View.Axis()
		if !ok {
			return ErrNoAxisForSuggestions
		}

		matched := make(entities.Selection, 0, entities.SelectionSize)
		for _, name := range fillingNames {
			if f, found := catalog.FindFillingByName(name, axis); found {
				matched = append(matched, f)
			}
			if len(matched) == entities.SelectionSize {
				break
			}
		}
		if len(matched) == 0 {
			return ErrNoMatchingFillings
		}
		s.Selection = matched
		return nil
	})
}
