package memory

import (
	"context"
	"time"

	"github.com/facetrack/attendance-backend-go/internal/domain/session"
)

type sessionRepositoryImpl struct {
	store *Store
}

func NewSessionRepository(store *Store) session.SessionRepository {
	return &sessionRepositoryImpl{store: store}
}

// Create implements session.SessionRepository.
func (r *sessionRepositoryImpl) Create(ctx context.Context, newSession session.Session) (session.Session, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if newSession.CreatedAt.IsZero() {
		newSession.CreatedAt = time.Now()
	}
	r.store.sessions.put(newSession.ID, newSession)
	return newSession, nil
}

// GetByID implements session.SessionRepository.
func (r *sessionRepositoryImpl) GetByID(ctx context.Context, id string) (session.Session, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	found, ok := r.store.sessions.get(id)
	if !ok {
		return session.Session{}, session.ErrSessionNotFound
	}
	return found, nil
}

// Delete implements session.SessionRepository.
func (r *sessionRepositoryImpl) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.sessions.remove(id)
	return nil
}

// DeleteExpired implements session.SessionRepository.
func (r *sessionRepositoryImpl) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var deleted int64
	for _, existing := range r.store.sessions.list() {
		if existing.Expired(now) {
			r.store.sessions.remove(existing.ID)
			deleted++
		}
	}
	return deleted, nil
}
