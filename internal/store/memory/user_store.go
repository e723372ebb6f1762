// Package memory provides the in-memory store.UserStore implementation.
// Records live for the lifetime of the process; there is no persistence.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/vastberg/user-api/internal/domain"
	"github.com/vastberg/user-api/internal/store"
)

// UserStore is a mutex-guarded, insertion-ordered user collection.
//
// IDs come from a monotonic counter that is never decremented, so a deleted
// user's ID is not handed out again within the same run. Reads take the
// read lock and may run concurrently; mutations are exclusive.
type UserStore struct {
	mu     sync.RWMutex
	users  []domain.User
	lastID int64
}

// Statically verify the interface is satisfied.
var _ store.UserStore = (*UserStore)(nil)

// NewUserStore creates an empty user store.
func NewUserStore() *UserStore {
	return &UserStore{}
}

// List implements store.UserStore.
func (s *UserStore) List(ctx context.Context) []domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Copy so callers never alias the guarded slice.
	out := make([]domain.User, len(s.users))
	copy(out, s.users)
	return out
}

// GetByID implements store.UserStore.
func (s *UserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, store.ErrUserNotFound
	}
	u := s.users[i]
	return &u, nil
}

// Search implements store.UserStore.
func (s *UserStore) Search(ctx context.Context, term string) ([]domain.User, error) {
	if term == "" {
		return nil, store.ErrEmptyQuery
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(term)
	matches := make([]domain.User, 0)
	for _, u := range s.users {
		if strings.Contains(strings.ToLower(u.Name), needle) {
			matches = append(matches, u)
		}
	}
	return matches, nil
}

// Create implements store.UserStore.
func (s *UserStore) Create(ctx context.Context, name, email string) (*domain.User, error) {
	if name == "" || email == "" {
		return nil, store.ErrMissingFields
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.emailTaken(email, 0) {
		return nil, store.ErrEmailExists
	}

	s.lastID++
	u := domain.User{
		ID:    s.lastID,
		Name:  name,
		Email: email,
	}
	s.users = append(s.users, u)
	return &u, nil
}

// Replace implements store.UserStore.
//
// No cross-user email uniqueness check happens here; see the interface
// documentation for why this gap is kept.
func (s *UserStore) Replace(ctx context.Context, id int64, name, email string) (*domain.User, error) {
	if name == "" || email == "" {
		return nil, store.ErrMissingFields
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, store.ErrUserNotFound
	}

	s.users[i] = domain.User{ID: id, Name: name, Email: email}
	u := s.users[i]
	return &u, nil
}

// Patch implements store.UserStore.
func (s *UserStore) Patch(ctx context.Context, id int64, patch store.UserPatch) (*domain.User, error) {
	if patch.IsEmpty() {
		return nil, store.ErrEmptyPatch
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, store.ErrUserNotFound
	}

	if patch.Email != nil && s.emailTaken(*patch.Email, id) {
		return nil, store.ErrEmailExists
	}

	if patch.Name != nil {
		s.users[i].Name = *patch.Name
	}
	if patch.Email != nil {
		s.users[i].Email = *patch.Email
	}

	u := s.users[i]
	return &u, nil
}

// Delete implements store.UserStore.
func (s *UserStore) Delete(ctx context.Context, id int64) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, store.ErrUserNotFound
	}

	u := s.users[i]
	s.users = append(s.users[:i], s.users[i+1:]...)
	return &u, nil
}

// DeleteAll implements store.UserStore.
func (s *UserStore) DeleteAll(ctx context.Context, confirm string) (int, error) {
	if confirm != "yes" {
		return 0, store.ErrConfirmationRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	count := len(s.users)
	s.users = nil
	// lastID is deliberately not reset: IDs are never reused within a run.
	return count, nil
}

// indexOf returns the position of the user with the given ID, or -1.
// Callers must hold at least the read lock.
func (s *UserStore) indexOf(id int64) int {
	for i := range s.users {
		if s.users[i].ID == id {
			return i
		}
	}
	return -1
}

// emailTaken reports whether any user other than excludeID holds the email.
// Comparison is exact; callers are expected to normalize first.
// Callers must hold the write lock.
func (s *UserStore) emailTaken(email string, excludeID int64) bool {
	for i := range s.users {
		if s.users[i].ID != excludeID && s.users[i].Email == email {
			return true
		}
	}
	return false
}
