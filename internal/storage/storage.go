// Package storage persists user accounts.
package storage

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when no user matches the lookup key
	ErrNotFound = errors.New("user not found")
	// ErrAlreadyExists is returned when a create collides with an
	// existing googleId
	ErrAlreadyExists = errors.New("user already exists")
)

// Status is the account status enum. New accounts start at StatusNone;
// the other values are managed by flows outside this service.
type Status string

const (
	StatusNone     Status = "none"
	StatusPending  Status = "pending"
	StatusVerified Status = "verified"
)

// User is the persisted account record. GoogleID is the primary lookup
// key and immutable after creation. Email and Name are snapshots of the
// Google claims at first login and are not refreshed afterwards.
type User struct {
	ID       string `firestore:"id" json:"id"`
	GoogleID string `firestore:"googleId" json:"-"`
	Email    string `firestore:"email" json:"email"`
	Name     string `firestore:"name" json:"name"`
	Status   Status `firestore:"status" json:"status"`

	// Fields owned by account features outside this service,
	// passed through read-only in responses
	PasswordSet      bool   `firestore:"passwordSet" json:"passwordSet"`
	CodechefUsername string `firestore:"codechefUsername" json:"codechefUsername"`
	VerificationHex  string `firestore:"verificationHex" json:"verificationHex"`
	SubmissionID     string `firestore:"submissionId" json:"submissionId"`
}

// Store is the user persistence interface. The implementation must
// enforce googleId uniqueness and surface ErrAlreadyExists on the
// losing write of a concurrent create.
type Store interface {
	// FindByGoogleID returns the user with the given googleId, or
	// ErrNotFound
	FindByGoogleID(ctx context.Context, googleID string) (*User, error)

	// FindByID returns the user with the given generated id, or
	// ErrNotFound
	FindByID(ctx context.Context, id string) (*User, error)

	// Create persists a new user, failing with ErrAlreadyExists if the
	// googleId is taken
	Create(ctx context.Context, user *User) error
}
