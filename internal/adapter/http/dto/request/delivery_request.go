package request

import "strings"

type DeliveryAddressRequest struct {
	CEP          string `json:"cep"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Neighborhood string `json:"neighborhood"`
	Complement   string `json:"complement"`
	Observations string `json:"observations"`
}

type CEPLookupRequest struct {
	CEP string `json:"cep" binding:"required"`
}

// NormalizedCEP strips everything but digits, the shape the lookup
// provider expects.
func (r CEPLookupRequest) NormalizedCEP() string {
	var b strings.Builder
	for _, c := range r.CEP {
		if c >= '0' && c <= '9' {
			b.WriteRune(c)
		}
	}
	return b.String()
}
