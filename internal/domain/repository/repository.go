// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"github.com/google/uuid"
)

// Query describes a collection read: an exact-match filter over whitelisted
// fields, a "field:asc|desc" sort list (comma-separated for multi-key), and
// page-based pagination. Zero values fall back to the repository defaults.
type Query struct {
	Filter map[string]string
	SortBy string
	Limit  int
	Page   int
}

// Page is one page of query results together with the pagination totals.
type Page[E any] struct {
	Results      []*E  `json:"results"`
	Page         int   `json:"page"`
	Limit        int   `json:"limit"`
	TotalPages   int   `json:"totalPages"`
	TotalResults int64 `json:"totalResults"`
}

// Crud is the contract every entity repository satisfies.
//
// FindByID returns the repository's not-found sentinel when the id does not
// resolve, including ids that are not syntactically valid identifiers; lookups
// never raise on malformed input.
type Crud[E any] interface {
	// Create persists a new entity.
	Create(ctx context.Context, e *E) error

	// FindByID retrieves a single entity by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*E, error)

	// Find returns one page of entities matching the query.
	Find(ctx context.Context, q Query) (*Page[E], error)

	// Update persists changes to an existing entity.
	Update(ctx context.Context, e *E) error

	// Delete removes an entity by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
