package entities

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrCartEmpty             = errors.New("cart is empty")
	ErrConsumptionMethodUnset = errors.New("consumption method not chosen")
	ErrDeliveryFeeNotComputed = errors.New("delivery fee not computed")
)

// SubOrder is a closed cart slice: immutable once created, bound to its
// own consumption method and delivery snapshot, with its total frozen at
// close time.

type SubOrder struct {
	ID       string            `json:"id"`
	Label    string            `json:"label,omitempty"`
	Lines    Cart              `json:"lines"`
	Method   ConsumptionMethod `json:"method"`
	Delivery DeliverySnapshot  `json:"delivery"`
	Total    decimal.Decimal   `json:"total"`
}

// CloseCurrentOrder snapshots the session's current cart into a new
// sub-order and resets the composing state (cart, label, method, delivery)
// for the next one. Rejected without side effects when the cart is empty,
// no method is chosen, or an entrega order has no usable fee.
func (s *Session) CloseCurrentOrder() (SubOrder, error) {
	if len(s.Cart) == 0 {
		return SubOrder{}, ErrCartEmpty
	}
	if s.Method == "" {
		return SubOrder{}, ErrConsumptionMethodUnset
	}
	if s.Method == ConsumptionEntrega && !s.Delivery.HasComputedFee() {
		return SubOrder{}, ErrDeliveryFeeNotComputed
	}

	order := SubOrder{
		ID:       uuid.NewString(),
		Label:    strings.TrimSpace(s.Label),
		Lines:    s.Cart.Clone(),
		Method:   s.Method,
		Delivery: s.Delivery,
		Total:    s.CurrentOrderTotal(),
	}
	s.SubOrders = append(s.SubOrders, order)

	s.Cart = nil
	s.Label = ""
	s.Method = ""
	s.Delivery = DeliverySnapshot{}
	return order, nil
}

// RemoveSubOrder deletes unconditionally. Frozen totals of the remaining
// sub-orders are untouched.
func (s *Session) RemoveSubOrder(id string) {
	for i := range s.SubOrders {
		if s.SubOrders[i].ID == id {
			s.SubOrders = append(s.SubOrders[:i], s.SubOrders[i+1:]...)
			return
		}
	}
}
