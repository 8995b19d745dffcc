package interfaces

import (
	"context"
	"errors"
)

// ErrPostalCodeNotFound is returned by providers when the code resolves to
// no address, as opposed to a transport failure.
var ErrPostalCodeNotFound = errors.New("postal code not found")

// PostalAddress is the prefill payload for a delivery snapshot. Fields
// stay user-editable afterward.

type PostalAddress struct {
	Street       string
	Neighborhood string
}

// IPostalLookupProvider abstracts the CEP lookup service (e.g. ViaCEP).
// Input is a normalized 8-digit postal code.

type IPostalLookupProvider interface {
	Lookup(ctx context.Context, cep string) (PostalAddress, error)
}
