// Package users provisions user accounts from verified Google identities.
package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/campuscode/auth-service/internal/log"
	"github.com/campuscode/auth-service/internal/storage"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

// Service implements find-or-create provisioning over a Store.
type Service struct {
	store storage.Store

	// collapses concurrent first logins for the same googleId within
	// this process
	group singleflight.Group
}

// NewService creates a provisioning service.
func NewService(store storage.Store) *Service {
	return &Service{store: store}
}

// FindOrCreate returns the user for the given googleId, creating it on
// first login. An existing record is returned unchanged: email or name
// drift on the Google side is not reconciled here.
func (s *Service) FindOrCreate(ctx context.Context, googleID, email, name string) (*storage.User, error) {
	v, err, _ := s.group.Do(googleID, func() (any, error) {
		return s.findOrCreate(ctx, googleID, email, name)
	})
	if err != nil {
		return nil, err
	}
	return v.(*storage.User), nil
}

func (s *Service) findOrCreate(ctx context.Context, googleID, email, name string) (*storage.User, error) {
	user, err := s.store.FindByGoogleID(ctx, googleID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("looking up user: %w", err)
	}

	created := &storage.User{
		ID:       uuid.NewString(),
		GoogleID: googleID,
		Email:    email,
		Name:     name,
		Status:   storage.StatusNone,
	}

	err = s.store.Create(ctx, created)
	if err == nil {
		log.LogInfoWithFields("users", "User created", map[string]any{
			"id": created.ID,
		})
		return created, nil
	}

	// Another instance won the create race; the store's uniqueness
	// constraint guarantees a record now exists, so re-read it
	if errors.Is(err, storage.ErrAlreadyExists) {
		user, err := s.store.FindByGoogleID(ctx, googleID)
		if err != nil {
			return nil, fmt.Errorf("re-reading user after create conflict: %w", err)
		}
		return user, nil
	}

	return nil, fmt.Errorf("creating user: %w", err)
}

// FindByID returns the user with the given generated id.
func (s *Service) FindByID(ctx context.Context, id string) (*storage.User, error) {
	return s.store.FindByID(ctx, id)
}
