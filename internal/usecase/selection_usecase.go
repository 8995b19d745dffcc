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
	ErrUnknownFilling     = errors.New("filling not in catalog")
	ErrInvalidCatalogView = errors.New("invalid catalog view")
	ErrWrongCatalogView   = errors.New("filling not offered by the active view")
)

// ISelectionUseCase drives the in-progress custom pastel.
//
// Axis purity is enforced here the same way the storefront does it: the
// active catalog view gates which fillings may be picked, so a selection
// can never mix salty and sweet.

type ISelectionUseCase interface {
	SetView(ctx context.Context, view entities.CatalogView) error
	AddFilling(ctx context.Context, fillingID string) error
	RemoveAt(ctx context.Context, index int) error
	RemoveLastMatching(ctx context.Context, fillingID string) error
	Commit(ctx context.Context) (entities.CartLine, error)
}

type SelectionUseCase struct {
	sessions interfaces.ISessionRepository
}

var _ ISelectionUseCase = (*SelectionUseCase)(nil)

func NewSelectionUseCase(sessions interfaces.ISessionRepository) *SelectionUseCase {
	return &SelectionUseCase{sessions: sessions}
}

// SetView switches the browsing tab. Any in-progress selection is reset:
// picks from one view must not leak into another.
func (u *SelectionUseCase) SetView(ctx context.Context, view entities.CatalogView) error {
	if !view.Valid() {
		return ErrInvalidCatalogView
	}
	return u.sessions.Update(ctx, func(s *entities.Session) error {
		if s.View != view {
			s.Selection = nil
		}
		s.View = view
		return nil
	})
}

func (u *SelectionUseCase) AddFilling(ctx context.Context, fillingID string) error {
	f, ok := catalog.FindFillingByID(fillingID)
	if !ok {
		return ErrUnknownFilling
	}
	return u.sessions.Update(ctx, func(s *entities.Session) error {
		axis, ok := s.View.Axis()
		if !ok || axis != f.Axis {
			return ErrWrongCatalogView
		}
		return s.Selection.Add(f)
	})
}

func (u *SelectionUseCase) RemoveAt(ctx context.Context, index int) error {
	return u.sessions.Update(ctx, func(s *entities.Session) error {
		s.Selection.RemoveAt(index)
		return nil
	})
}

func (u *SelectionUseCase) RemoveLastMatching(ctx context.Context, fillingID string) error {
	return u.sessions.Update(ctx, func(s *entities.Session) error {
		s.Selection.RemoveLastMatching(fillingID)
		return nil
	})
}

// Commit closes the three-pick selection into a cart line.
func (u *SelectionUseCase) Commit(ctx context.Context) (entities.CartLine, error) {
	var line entities.CartLine
	err := u.sessions.Update(ctx, func(s *entities.Session) error {
		committed, err := s.Selection.Commit()
		if err != nil {
			return err
		}
		s.Cart.AddPastel(committed)
		line = committed
		return nil
	})
	if err != nil {
		return entities.CartLine{}, err
	}
	log.Printf("[selection][usecase] pastel committed axis=%s price=%s", line.Axis, line.UnitPrice.StringFixed(2))
	return line, nil
}
