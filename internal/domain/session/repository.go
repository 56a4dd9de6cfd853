package session

import (
	"context"
	"time"
)

type SessionRepository interface {
	Create(ctx context.Context, newSession Session) (Session, error)
	GetByID(ctx context.Context, id string) (Session, error)
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
