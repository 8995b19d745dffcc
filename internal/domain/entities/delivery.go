package entities

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrEstimationFailed covers a provider answer that yields no positive
// distance. It is distinct from being out of the service area and never
// silently defaults to a fee.
var ErrEstimationFailed = errors.New("could not estimate a positive distance")

// OutOfServiceAreaError rejects addresses beyond the 7 km delivery radius.

type OutOfServiceAreaError struct {
	Meters int
}

func (e *OutOfServiceAreaError) Error() string {
	return fmt.Sprintf("distância de %.1fkm está fora da nossa área de entrega direta (máx 7km)", float64(e.Meters)/1000)
}

// FeeForDistance maps a straight-line distance in meters to the delivery
// fee. The table is owned by this core, not by the distance provider.
func FeeForDistance(meters int) (decimal.Decimal, error) {
	if meters <= 0 {
		return decimal.Zero, ErrEstimationFailed
	}
	switch {
	case meters <= 100:
		return decimal.Zero, nil
	case meters <= 2500:
		return decimal.NewFromInt(7), nil
	case meters <= 5000:
		return decimal.NewFromInt(12), nil
	case meters <= 7000:
		return decimal.NewFromInt(15), nil
	}
	return decimal.Zero, &OutOfServiceAreaError{Meters: meters}
}

// DeliverySnapshot carries the address fields plus the computed
// distance/fee pair and a field-scoped error message. One snapshot belongs
// to exactly one order context; sub-orders take their own copy at close
// time.

type DeliverySnapshot struct {
	CEP          string `json:"cep"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Neighborhood string `json:"neighborhood"`
	Complement   string `json:"complement"`
	Observations string `json:"observations"`

	Distance *int             `json:"distance,omitempty"`
	Fee      *decimal.Decimal `json:"fee,omitempty"`
	Error    string           `json:"error,omitempty"`
}

// AddressComplete reports whether the fields required before estimating
// are all present.
func (d DeliverySnapshot) AddressComplete() bool {
	return strings.TrimSpace(d.CEP) != "" &&
		strings.TrimSpace(d.Street) != "" &&
		strings.TrimSpace(d.Number) != "" &&
		strings.TrimSpace(d.Neighborhood) != ""
}

// Invalidate clears any computed distance/fee/error. Must run after every
// address-field edit; a stale fee for an edited address is never valid.
func (d *DeliverySnapshot) Invalidate() {
	d.Distance = nil
	d.Fee = nil
	d.Error = ""
}

// HasComputedFee reports a usable estimate: a fee present with no
// outstanding error.
func (d DeliverySnapshot) HasComputedFee() bool {
	return d.Fee != nil && d.Error == ""
}

// FullAddress renders the provider-facing address string.
func (d DeliverySnapshot) FullAddress() string {
	return fmt.Sprintf("%s, %s - %s, São Paulo, Brasil, CEP %s", d.Street, d.Number, d.Neighborhood, d.CEP)
}
