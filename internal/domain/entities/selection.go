package entities

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const SelectionSize = 3

var (
	ErrSelectionFull       = errors.New("selection already holds 3 fillings")
	ErrIncompleteSelection = errors.New("selection needs exactly 3 fillings")
)

// Selection is the in-progress custom pastel: an ordered sequence of up to
// three filling picks. Repeats are allowed; it is a sequence, not a set.
// All entries share one flavor axis because the active catalog view gates
// what can be added.

type Selection []Filling

// Add appends a pick while there is room. The fourth pick is rejected and
// leaves the selection untouched.
func (s *Selection) Add(f Filling) error {
	if len(*s) >= SelectionSize {
		return ErrSelectionFull
	}
	*s = append(*s, f)
	return nil
}

// RemoveAt drops the entry at index; out-of-range is a no-op.
func (s *Selection) RemoveAt(index int) {
	if index < 0 || index >= len(*s) {
		return
	}
	*s = append((*s)[:index], (*s)[index+1:]...)
}

// RemoveLastMatching drops the most recently added pick of the given
// catalog id, not the first. Tapping minus on a tile undoes the latest
// pick of that filling.
func (s *Selection) RemoveLastMatching(fillingID string) {
	for i := len(*s) - 1; i >= 0; i-- {
		if (*s)[i].ID == fillingID {
			s.RemoveAt(i)
			return
		}
	}
}

// PriceNow is zero for an empty selection, otherwise the maximum unit
// price among current picks. Recomputed on every call; never cached.
func (s Selection) PriceNow() decimal.Decimal {
	if len(s) == 0 {
		return decimal.Zero
	}
	max := s[0].Price
	for _, f := range s[1:] {
		if f.Price.GreaterThan(max) {
			max = f.Price
		}
	}
	return max
}

// Commit turns a complete selection into a cart line and clears the
// selection. One pastel, one dominant-ingredient price: the line's unit
// price is the maximum filling price, never the sum.
func (s *Selection) Commit() (CartLine, error) {
	if len(*s) != SelectionSize {
		return CartLine{}, ErrIncompleteSelection
	}

	axis := (*s)[0].Axis
	name := "Pastel Salgado Customizado"
	if axis == FlavorDoce {
		name = "Pastel Doce Customizado"
	}

	names := make([]string, 0, SelectionSize)
	for _, f := range *s {
		names = append(names, f.Name)
	}

	line := CartLine{
		ID:        uuid.NewString(),
		Kind:      LineKindPastel,
		Axis:      axis,
		Name:      name,
		Details:   strings.Join(names, ", "),
		UnitPrice: s.PriceNow(),
		Quantity:  1,
	}
	*s = nil
	return line, nil
}
