// Package session holds the client's cached belief about the current
// authenticated identity: the bearer token and the user it belongs to,
// mirrored into durable storage so a restart does not log the user out.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/Hao186188/parttime-job-frontend/internal/models"
)

// Identity is the "who am I" call Reconcile validates the cached token
// against. The API client implements it.
type Identity interface {
	Me(ctx context.Context) (*models.User, error)
}

// Store is the single authoritative holder of the session. Construct one with
// NewStore and pass it explicitly to whatever needs identity — there is no
// package-level instance.
//
// Token and user are always set and cleared together.
type Store struct {
	storage Storage

	mu    sync.RWMutex
	token string
	user  *models.User

	reconciles singleflight.Group
}

func NewStore(storage Storage) *Store {
	return &Store{storage: storage}
}

// Load reads a previously persisted session into memory. A storage miss is
// not an error — it just means the session starts anonymous. No network call
// is made; pair with Reconcile to validate what was loaded.
func (s *Store) Load(ctx context.Context) error {
	token, err := s.storage.Get(ctx, keyToken)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load token: %w", err)
	}

	raw, err := s.storage.Get(ctx, keyUser)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("load user: %w", err)
	}

	var user *models.User
	if raw != "" {
		user = &models.User{}
		if err := json.Unmarshal([]byte(raw), user); err != nil {
			// A corrupt user entry is stale state, not a fatal condition;
			// Reconcile will refresh or clear it.
			log.Printf("[session] Ignoring unreadable stored user: %v", err)
			user = nil
		}
	}

	s.mu.Lock()
	s.token = token
	s.user = user
	s.mu.Unlock()
	return nil
}

// SetSession records token and user in memory and persists both. All
// subsequent authenticated requests carry the new token.
func (s *Store) SetSession(ctx context.Context, token string, user *models.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}
	if err := s.storage.Set(ctx, keyToken, token); err != nil {
		return err
	}
	if err := s.storage.Set(ctx, keyUser, string(raw)); err != nil {
		return err
	}

	s.mu.Lock()
	s.token = token
	s.user = user
	s.mu.Unlock()
	return nil
}

// Clear drops the session from memory and durable storage. Subsequent
// requests carry no auth header.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.storage.Del(ctx, keyToken, keyUser); err != nil {
		return err
	}

	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()
	return nil
}

// Token returns the held bearer token, or "" when anonymous.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// IsAuthenticated reports whether a token is held. It does not validate the
// token against the server.
func (s *Store) IsAuthenticated() bool {
	return s.Token() != ""
}

// CurrentUser returns the cached user, or nil when anonymous.
func (s *Store) CurrentUser() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// HasRole reports whether the cached user carries the given role tag.
// False whenever no user is cached.
func (s *Store) HasRole(role string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil && s.user.UserType == role
}

// IsEmployer is shorthand for HasRole(models.RoleEmployer).
func (s *Store) IsEmployer() bool { return s.HasRole(models.RoleEmployer) }

// IsStudent is shorthand for HasRole(models.RoleStudent).
func (s *Store) IsStudent() bool { return s.HasRole(models.RoleStudent) }

// Reconcile re-validates the cached token against the remote API. On success
// the user is refreshed and the token kept; on any failure — transport error,
// rejected token, bad response — the session is cleared. The two failure kinds
// are deliberately not distinguished.
//
// Concurrent callers are collapsed onto a single in-flight request so the
// resulting session state is deterministic.
func (s *Store) Reconcile(ctx context.Context, identity Identity) error {
	if !s.IsAuthenticated() {
		return nil
	}

	_, err, _ := s.reconciles.Do("reconcile", func() (any, error) {
		user, err := identity.Me(ctx)
		if err != nil {
			log.Printf("[session] Reconcile failed, clearing session: %v", err)
			if clearErr := s.Clear(ctx); clearErr != nil {
				return nil, clearErr
			}
			return nil, err
		}
		return nil, s.SetSession(ctx, s.Token(), user)
	})
	return err
}
