package storage

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/campuscode/auth-service/internal/log"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const usersCollection = "users"

// FirestoreStore implements Store using Google Cloud Firestore.
//
// Documents are keyed by googleId so the uniqueness invariant is
// enforced by the storage layer itself: a concurrent first login for
// the same account loses its Create with codes.AlreadyExists. The
// generated opaque id lives in the document body.
type FirestoreStore struct {
	client     *firestore.Client
	collection string
}

var _ Store = (*FirestoreStore)(nil)

// NewFirestoreStore creates a Firestore-backed user store.
func NewFirestoreStore(ctx context.Context, projectID, database string) (*FirestoreStore, error) {
	if projectID == "" {
		return nil, fmt.Errorf("projectID is required")
	}

	var client *firestore.Client
	var err error
	if database != "" && database != "(default)" {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, database)
	} else {
		client, err = firestore.NewClient(ctx, projectID)
	}
	if err != nil {
		return nil, fmt.Errorf("creating Firestore client: %w", err)
	}

	log.LogInfoWithFields("storage", "Firestore store ready", map[string]any{
		"project":    projectID,
		"collection": usersCollection,
	})

	return &FirestoreStore{client: client, collection: usersCollection}, nil
}

// Close releases the underlying Firestore client.
func (s *FirestoreStore) Close() error {
	return s.client.Close()
}

// FindByGoogleID looks up the user document keyed by googleId.
func (s *FirestoreStore) FindByGoogleID(ctx context.Context, googleID string) (*User, error) {
	doc, err := s.client.Collection(s.collection).Doc(googleID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetching user by googleId: %w", err)
	}

	var user User
	if err := doc.DataTo(&user); err != nil {
		return nil, fmt.Errorf("decoding user document: %w", err)
	}
	return &user, nil
}

// FindByID queries on the generated id field.
func (s *FirestoreStore) FindByID(ctx context.Context, id string) (*User, error) {
	iter := s.client.Collection(s.collection).
		Where("id", "==", id).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying user by id: %w", err)
	}

	var user User
	if err := doc.DataTo(&user); err != nil {
		return nil, fmt.Errorf("decoding user document: %w", err)
	}
	return &user, nil
}

// Create persists a new user. Firestore's Create precondition turns a
// concurrent insert for the same googleId into codes.AlreadyExists.
func (s *FirestoreStore) Create(ctx context.Context, user *User) error {
	_, err := s.client.Collection(s.collection).Doc(user.GoogleID).Create(ctx, user)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return ErrAlreadyExists
		}
		return fmt.Errorf("creating user: %w", err)
	}
	return nil
}
