package repository

import (
	"context"
	"errors"

	"event-finder/data/models"
)

var (
	ErrNotFound    = errors.New("event not found")
	ErrDuplicateID = errors.New("event id already exists")
)

// EventRepo is the append-only storage behind the event store. Implementations
// must be safe for concurrent use.
type EventRepo interface {
	Insert(ctx context.Context, e models.Event) error
	GetByID(ctx context.Context, id string) (models.Event, error)
	// List returns every event in insertion order.
	List(ctx context.Context) ([]models.Event, error)
	Count(ctx context.Context) (int, error)
}
