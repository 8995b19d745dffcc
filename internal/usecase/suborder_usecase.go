package usecase

import (
	"context"
	"log"
	"strings"

	"meopastel/internal/domain/entities"
	"meopastel/internal/usecase/interfaces"
)

// ISubOrderUseCase manages the ledger of closed sub-orders sharing one
// checkout.

type ISubOrderUseCase interface {
	CloseCurrentOrder(ctx context.Context, label string) (entities.SubOrder, error)
	RemoveSubOrder(ctx context.Context, id string) error
}

type SubOrderUseCase struct {
	sessions interfaces.ISessionRepository
}

var _ ISubOrderUseCase = (*SubOrderUseCase)(nil)

func NewSubOrderUseCase(sessions interfaces.ISessionRepository) *SubOrderUseCase {
	return &SubOrderUseCase{sessions: sessions}
}

// CloseCurrentOrder freezes the current cart into the ledger. A non-empty
// label overrides the one already on the session. On success the cart,
// label, consumption method and delivery snapshot are reset for the next
// sub-order; on rejection nothing changes.
func (u *SubOrderUseCase) CloseCurrentOrder(ctx context.Context, label string) (entities.SubOrder, error) {
	var order entities.SubOrder
	err := u.sessions.Update(ctx, func(s *entities.Session) error {
		if trimmed := strings.TrimSpace(label); trimmed != "" {
			s.Label = trimmed
		}
		closed, err := s.CloseCurrentOrder()
		if err != nil {
			return err
		}
		order = closed
		return nil
	})
	if err != nil {
		return entities.SubOrder{}, err
	}
	log.Printf("[suborder][usecase] order closed id=%s method=%s total=%s", order.ID, order.Method, order.Total.StringFixed(2))
	return order, nil
}

func (u *SubOrderUseCase) RemoveSubOrder(ctx context.Context, id string) error {
	return u.sessions.Update(ctx, func(s *entities.Session) error {
		s.RemoveSubOrder(id)
		return nil
	})
}
