package usecase

import (
	"context"
	"errors"

	"meopastel/internal/domain/catalog"
	"meopastel/internal/domain/entities"
	"meopastel/internal/usecase/interfaces"
)

var ErrUnknownBeverage = errors.New("beverage not in catalog")

// ICartUseCase mutates the current cart's lines.

type ICartUseCase interface {
	AddBeverage(ctx context.Context, beverageID string) error
	RemoveBeverageUnit(ctx context.Context, name string) error
	SetQuantity(ctx context.Context, lineID string, quantity int) error
	RemoveLine(ctx context.Context, lineID string) error
}

type CartUseCase struct {
	sessions interfaces.ISessionRepository
}

var _ ICartUseCase = (*CartUseCase)(nil)

func NewCartUseCase(sessions interfaces.ISessionRepository) *CartUseCase {
	return &CartUseCase{sessions: sessions}
}

func (u *CartUseCase) AddBeverage(ctx context.Context, beverageID string) error {
	b, ok := catalog.FindBeverageByID(beverageID)
	if !ok {
		return ErrUnknownBeverage
	}
	return u.sessions.Update(ctx, func(s *entities.Session) error {
		s.Cart.AddBeverage(b)
		return nil
	})
}

func (u *CartUseCase) RemoveBeverageUnit(ctx context.Context, name string) error {
	return u.sessions.Update(ctx, func(s *entities.Session) error {
		s.Cart.RemoveBeverageUnit(name)
		return nil
	})
}

func (u *CartUseCase) SetQuantity(ctx context.Context, lineID string, quantity int) error {
	return u.sessions.Update(ctx, func(s *entities.Session) error {
		s.Cart.SetQuantity(lineID, quantity)
		return nil
	})
}

func (u *CartUseCase) RemoveLine(ctx context.Context, lineID string) error {
	return u.sessions.Update(ctx, func(s *entities.Session) error {
		s.Cart.RemoveLine(lineID)
		return nil
	})
}
