package memory

import (
	"context"
	"log"
	"sync"
	"time"

	"meopastel/internal/domain/entities"
	"meopastel/internal/usecase/interfaces"
)

// SessionStore holds the single in-memory session behind a mutex. It also
// owns the completed-order auto-reset timer: after a submission the
// session lingers in the completed phase for a display window, then wipes;
// a new mutation arriving inside the window cancels the timer and wipes
// immediately, so a session the user started reusing is never reset out
// from under them.

type SessionStore struct {
	mu         sync.Mutex
	session    *entities.Session
	resetTimer *time.Timer
}

var _ interfaces.ISessionRepository = (*SessionStore)(nil)

func NewSessionStore() *SessionStore {
	return &SessionStore{session: entities.NewSession()}
}

func (s *SessionStore) View(ctx context.Context, fn func(sess *entities.Session) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.session)
}

func (s *SessionStore) Update(ctx context.Context, fn func(sess *entities.Session) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session.Phase == entities.PhaseCompleted {
		log.Printf("[session][store] new action on completed session; cancelling pending reset")
		s.cancelResetLocked()
		s.session.Reset()
	}
	return fn(s.session)
}

func (s *SessionStore) ScheduleReset(after time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelResetLocked()
	s.resetTimer = time.AfterFunc(after, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.session.Phase != entities.PhaseCompleted {
			return
		}
		log.Printf("[session][store] completion window elapsed; resetting session")
		s.session.Reset()
	})
}

func (s *SessionStore) cancelResetLocked() {
	if s.resetTimer != nil {
		s.resetTimer.Stop()
		s.resetTimer = nil
	}
}
