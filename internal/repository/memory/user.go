package memory

import (
	"context"
	"time"

	"github.com/facetrack/attendance-backend-go/internal/domain/user"
)

type userRepositoryImpl struct {
	store *Store
}

func NewUserRepository(store *Store) user.UserRepository {
	return &userRepositoryImpl{store: store}
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	found, ok := r.store.users.get(id)
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return found, nil
}

// GetByUsername implements user.UserRepository.
func (r *userRepositoryImpl) GetByUsername(ctx context.Context, username string) (user.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, u := range r.store.users.list() {
		if u.Username == username {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.users.list() {
		if existing.Username == newUser.Username {
			return user.User{}, user.ErrUsernameExists
		}
		if newUser.Email != nil && existing.Email != nil && *existing.Email == *newUser.Email {
			return user.User{}, user.ErrEmailExists
		}
	}

	if newUser.CreatedAt.IsZero() {
		newUser.CreatedAt = time.Now()
	}
	r.store.users.put(newUser.ID, newUser)
	return newUser, nil
}

// TouchLastLogin implements user.UserRepository.
func (r *userRepositoryImpl) TouchLastLogin(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	found, ok := r.store.users.get(id)
	if !ok {
		return user.ErrUserNotFound
	}
	now := time.Now()
	found.LastLogin = &now
	r.store.users.put(id, found)
	return nil
}
