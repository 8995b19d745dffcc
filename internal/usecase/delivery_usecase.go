package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"meopastel/internal/domain/entities"
	"meopastel/internal/usecase/interfaces"
)

var (
	ErrInvalidCEP        = errors.New("postal code must have 8 digits")
	ErrIncompleteAddress = errors.New("cep, street, number and neighborhood are required")
	ErrLookupInFlight    = errors.New("postal lookup already in progress")
	ErrEstimateInFlight  = errors.New("distance estimate already in progress")
	ErrPostalLookupFailed = errors.New("postal lookup failed")
)

// Field-scoped messages stored on the delivery snapshot, verbatim from the
// storefront.
const (
	msgCEPNotFound       = "CEP não encontrado."
	msgCEPLookupFailed   = "Erro ao buscar CEP."
	msgIncompleteAddress = "Preencha todos os campos obrigatórios (CEP, Endereço, Nº e Bairro)."
	msgEstimateFailed    = "Ocorreu um erro ao processar o frete. Por favor, tente novamente em alguns segundos."
	msgOutOfAreaSuffix   = " Por favor, utilize iFood ou Rappi."
)

// DeliveryFields is the editable address slice of the snapshot.

type DeliveryFields struct {
	CEP          string
	Street       string
	Number       string
	Neighborhood string
	Complement   string
	Observations string
}

// IDeliveryUseCase edits the delivery snapshot and orchestrates the two
// external calls: postal-code prefill and distance estimation. Both are
// guarded against doubled requests and both recover failures into the
// snapshot's field-scoped error, never a fatal path.

type IDeliveryUseCase interface {
	UpdateAddress(ctx context.Context, fields DeliveryFields) error
	LookupCEP(ctx context.Context, cep string) error
	EstimateFee(ctx context.Context) error
}

type DeliveryUseCase struct {
	sessions interfaces.ISessionRepository
	postal   interfaces.IPostalLookupProvider
	distance interfaces.IDistanceProvider
}

var _ IDeliveryUseCase = (*DeliveryUseCase)(nil)

func NewDeliveryUseCase(sessions interfaces.ISessionRepository, postal interfaces.IPostalLookupProvider, distance interfaces.IDistanceProvider) *DeliveryUseCase {
	return &DeliveryUseCase{sessions: sessions, postal: postal, distance: distance}
}

// UpdateAddress writes the editable fields. Changing any of the four core
// fields invalidates a previously computed distance/fee: estimates are
// only valid for the address they were computed against.
func (u *DeliveryUseCase) UpdateAddress(ctx context.Context, fields DeliveryFields) error {
	return u.sessions.Update(ctx, func(s *entities.Session) error {
		d := &s.Delivery
		coreChanged := d.CEP != fields.CEP || d.Street != fields.Street ||
			d.Number != fields.Number || d.Neighborhood != fields.Neighborhood

		d.CEP = fields.CEP
		d.Street = fields.Street
		d.Number = fields.Number
		d.Neighborhood = fields.Neighborhood
		d.Complement = fields.Complement
		d.Observations = fields.Observations

		if coreChanged {
			d.Invalidate()
		}
		return nil
	})
}

// LookupCEP prefills street and neighborhood from the postal provider. The
// user can edit both afterward.
func (u *DeliveryUseCase) LookupCEP(ctx context.Context, cep string) error {
	normalized := normalizeCEP(cep)
	if len(normalized) != 8 {
		return ErrInvalidCEP
	}

	if err := u.sessions.Update(ctx, func(s *entities.Session) error {
		if s.CEPLookupInFlight {
			return ErrLookupInFlight
		}
		s.CEPLookupInFlight = true
		return nil
	}); err != nil {
		return err
	}

	addr, lookupErr := u.postal.Lookup(ctx, normalized)

	// The guard must clear even when the caller disconnected mid-lookup,
	// or no retry can ever run.
	return u.sessions.Update(context.WithoutCancel(ctx), func(s *entities.Session) error {
		s.CEPLookupInFlight = false
		d := &s.Delivery
		switch {
		case lookupErr == nil:
			d.CEP = normalized
			d.Street = addr.Street
			d.Neighborhood = addr.Neighborhood
			d.Invalidate()
			return nil
		case errors.Is(lookupErr, interfaces.ErrPostalCodeNotFound):
			log.Printf("[delivery][usecase] cep not found cep=%s", normalized)
			d.Error = msgCEPNotFound
			return lookupErr
		default:
			log.Printf("[delivery][usecase] cep lookup failed cep=%s err=%v", normalized, lookupErr)
			d.Error = msgCEPLookupFailed
			return ErrPostalLookupFailed
		}
	})
}

// EstimateFee runs the distance provider against the snapshot address and
// applies the fee table. The provider is never invoked with an incomplete
// address, and a failed estimate never defaults to a fee.
func (u *DeliveryUseCase) EstimateFee(ctx context.Context) error {
	var address string
	if err := u.sessions.Update(ctx, func(s *entities.Session) error {
		if s.EstimateInFlight {
			return ErrEstimateInFlight
		}
		if !s.Delivery.AddressComplete() {
			s.Delivery.Error = msgIncompleteAddress
			return ErrIncompleteAddress
		}
		s.EstimateInFlight = true
		s.Delivery.Invalidate()
		address = s.Delivery.FullAddress()
		return nil
	}); err != nil {
		return err
	}

	var meters int
	var estErr error
	if u.distance == nil {
		log.Printf("[delivery][usecase] distance provider not configured")
		estErr = errors.New("distance provider not configured")
	} else {
		meters, estErr = u.distance.EstimateMeters(ctx, address)
	}

	// Same disconnect rule as the lookup: the guard clears regardless of
	// the request context.
	return u.sessions.Update(context.WithoutCancel(ctx), func(s *entities.Session) error {
		s.EstimateInFlight = false
		d := &s.Delivery

		if estErr != nil {
			log.Printf("[delivery][usecase] distance provider failed err=%v", estErr)
			d.Error = msgEstimateFailed
			return entities.ErrEstimationFailed
		}

		fee, feeErr := entities.FeeForDistance(meters)
		if feeErr != nil {
			var outOfArea *entities.OutOfServiceAreaError
			if errors.As(feeErr, &outOfArea) {
				log.Printf("[delivery][usecase] out of service area meters=%d", meters)
				d.Distance = &meters
				d.Error = capitalizeFirst(outOfArea.Error()) + msgOutOfAreaSuffix
				return feeErr
			}
			log.Printf("[delivery][usecase] unusable distance meters=%d err=%v", meters, feeErr)
			d.Error = msgEstimateFailed
			return feeErr
		}

		log.Printf("[delivery][usecase] estimate success meters=%d fee=%s", meters, fee.StringFixed(2))
		d.Distance = &meters
		d.Fee = &fee
		d.Error = ""
		return nil
	})
}

func normalizeCEP(cep string) string {
	var b strings.Builder
	for _, r := range cep {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
