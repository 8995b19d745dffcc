package entities

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type LineKind string

const (
	LineKindPastel   LineKind = "pastel"
	LineKindBeverage LineKind = "beverage"
)

// CartLine is one purchasable unit. For a pastel line the unit price is
// the maximum price among its three fillings and Details carries the
// joined filling names; Axis is set for pastel lines only.

type CartLine struct {
	ID        string          `json:"id"`
	Kind      LineKind        `json:"kind"`
	Axis      FlavorAxis      `json:"axis,omitempty"`
	Name      string          `json:"name"`
	Details   string          `json:"details,omitempty"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

func (l CartLine) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is the ordered list of finalized lines.

type Cart []CartLine

// AddPastel always appends a new line: each custom pastel is distinct even
// when its fillings repeat an earlier one.
func (c *Cart) AddPastel(line CartLine) {
	*c = append(*c, line)
}

// AddBeverage merges into an existing line for the same beverage name by
// bumping quantity; otherwise it opens a quantity-1 line.
func (c *Cart) AddBeverage(b Beverage) {
	for i := range *c {
		if (*c)[i].Kind == LineKindBeverage && (*c)[i].Name == b.Name {
			(*c)[i].Quantity++
			return
		}
	}
	*c = append(*c, CartLine{
		ID:        uuid.NewString(),
		Kind:      LineKindBeverage,
		Name:      b.Name,
		UnitPrice: b.Price,
		Quantity:  1,
	})
}

// RemoveBeverageUnit decrements the matching line, removing it entirely
// once the last unit goes. Absent name is a no-op.
func (c *Cart) RemoveBeverageUnit(name string) {
	for i := range *c {
		if (*c)[i].Kind == LineKindBeverage && (*c)[i].Name == name {
			if (*c)[i].Quantity > 1 {
				(*c)[i].Quantity--
				return
			}
			*c = append((*c)[:i], (*c)[i+1:]...)
			return
		}
	}
}

// SetQuantity clamps to a floor of one. Removal is a separate explicit
// action, never a side effect of this path.
func (c *Cart) SetQuantity(lineID string, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	for i := range *c {
		if (*c)[i].ID == lineID {
			(*c)[i].Quantity = quantity
			return
		}
	}
}

func (c *Cart) RemoveLine(lineID string) {
	for i := range *c {
		if (*c)[i].ID == lineID {
			*c = append((*c)[:i], (*c)[i+1:]...)
			return
		}
	}
}

// Subtotal is the pure sum of unit price times quantity over all lines.
func (c Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c {
		total = total.Add(l.LineTotal())
	}
	return total
}

func (c Cart) HasSweetPastel() bool {
	for _, l := range c {
		if l.Kind == LineKindPastel && l.Axis == FlavorDoce {
			return true
		}
	}
	return false
}

// Clone copies the cart by value so a closed sub-order never shares line
// storage with the live cart.
func (c Cart) Clone() Cart {
	if c == nil {
		return nil
	}
	cp := make(Cart, len(c))
	copy(cp, c)
	return cp
}
