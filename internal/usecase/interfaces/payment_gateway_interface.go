package interfaces

import (
	"context"

	"github.com/shopspring/decimal"

	"meopastel/internal/domain/entities"
)

// IPaymentGateway abstracts the online-payment authorization round trip
// performed for prepaid methods before an order is marked paid.

type IPaymentGateway interface {
	Authorize(ctx context.Context, method entities.PaymentMethod, amount decimal.Decimal, orderNumber string) error
}
