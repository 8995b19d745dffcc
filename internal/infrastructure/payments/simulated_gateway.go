package payments

import (
	"context"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"meopastel/internal/domain/entities"
	"meopastel/internal/usecase/interfaces"
)

const DefaultAuthorizationDelay = 2 * time.Second

// SimulatedGateway stands in for an online payment provider. It waits a
// fixed authorization window and always approves; there is no decline
// path in this storefront.

type SimulatedGateway struct {
	delay time.Duration
}

var _ interfaces.IPaymentGateway = (*SimulatedGateway)(nil)

func NewSimulatedGateway(delay time.Duration) *SimulatedGateway {
	if delay < 0 {
		delay = DefaultAuthorizationDelay
	}
	return &SimulatedGateway{delay: delay}
}

func (g *SimulatedGateway) Authorize(ctx context.Context, method entities.PaymentMethod, amount decimal.Decimal, orderNumber string) error {
	log.Printf("[payment][gateway] authorize start order=%s method=%s amount=%s", orderNumber, method, amount.StringFixed(2))

	select {
	case <-time.After(g.delay):
	case <-ctx.Done():
		return ctx.Err()
	}

	log.Printf("[payment][gateway] authorize approved order=%s", orderNumber)
	return nil
}
