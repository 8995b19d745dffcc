package interfaces

import "context"

// IDistanceProvider abstracts the external distance estimator. Input is a
// full formatted customer address; output is a straight-line distance in
// meters. Extracting a usable integer from a free-text provider reply is
// the adapter's job, so implementations either return a positive distance
// or an error — never both.

type IDistanceProvider interface {
	EstimateMeters(ctx context.Context, fullAddress string) (int, error)
}
