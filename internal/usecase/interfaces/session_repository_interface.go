package interfaces

import (
	"context"
	"time"

	"meopastel/internal/domain/entities"
)

// ISessionRepository guards the single in-memory session aggregate.
//
// There is no row storage here: the aggregate is one struct, so the
// repository exposes functional access instead of CRUD. Update serializes
// mutations; View runs read-only functions against a copy-safe snapshot.
// A mutation arriving while the session sits in the completed phase
// cancels any pending auto-reset and starts from a fresh session.

type ISessionRepository interface {
	View(ctx context.Context, fn func(s *entities.Session) error) error
	Update(ctx context.Context, fn func(s *entities.Session) error) error

	// ScheduleReset arms the completed-order auto-revert window.
	ScheduleReset(after time.Duration)
}
