// Package store is the authoritative event collection. It validates new
// events, assigns identifiers and serves lookups and queries on top of an
// EventRepo.
package store

import (
	"context"
	"errors"
	"fmt"

	"event-finder/data/models"
	"event-finder/data/query"
	"event-finder/data/repository"

	"github.com/go-playground/validator"
	"github.com/google/uuid"
)

// ValidationError is returned by Create when the payload is rejected. Missing
// is set when at least one required field is absent; Field is the JSON name of
// the first offending field.
type ValidationError struct {
	Missing bool
	Field   string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Missing {
		return "Missing required fields"
	}
	return fmt.Sprintf("%s is invalid", e.Field)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func newValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &ValidationError{Missing: true, Err: err}
	}

	ve := &ValidationError{Field: verrs[0].Field(), Err: err}
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			ve.Missing = true
			ve.Field = fe.Field()
			break
		}
	}
	return ve
}

type Store struct {
	repo  repository.EventRepo
	newID func() string
}

func New(repo repository.EventRepo) *Store {
	return &Store{repo: repo, newID: uuid.NewString}
}

// Create validates ne and appends it as a new event with a fresh id and no
// participants.
func (s *Store) Create(ctx context.Context, ne models.NewEvent) (models.Event, error) {
	if err := models.Validate(ne); err != nil {
		return models.Event{}, newValidationError(err)
	}

	e := models.Event{
		ID:                  s.newID(),
		Title:               ne.Title,
		Description:         ne.Description,
		Date:                ne.Date,
		MaxParticipants:     ne.MaxParticipants,
		CurrentParticipants: 0,
		Location:            *ne.Location,
		Category:            ne.Category,
		ImageURL:            ne.ImageURL,
	}
	if len(ne.Tags) > 0 {
		e.Tags = append([]string(nil), ne.Tags...)
	}

	if err := s.repo.Insert(ctx, e); err != nil {
		return models.Event{}, fmt.Errorf("failed to store event: %w", err)
	}
	return e, nil
}

// Get returns the event with the given id or repository.ErrNotFound.
func (s *Store) Get(ctx context.Context, id string) (models.Event, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns a snapshot of every event in insertion order.
func (s *Store) List(ctx context.Context) ([]models.Event, error) {
	return s.repo.List(ctx)
}

func (s *Store) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

// Query lists events filtered and ranked by p.
func (s *Store) Query(ctx context.Context, p query.Params) ([]models.Event, error) {
	events, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return query.Apply(events, p), nil
}

// Similar returns up to limit events related to the event with the given id.
func (s *Store) Similar(ctx context.Context, id string, limit int) ([]models.Event, error) {
	target, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	events, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return query.Similar(target, events, limit), nil
}

// Seed creates the given events unless the store already holds some, so a
// persistent backend is only seeded once. It returns how many were created.
func (s *Store) Seed(ctx context.Context, events []models.NewEvent) (int, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}

	for i, ne := range events {
		if _, err := s.Create(ctx, ne); err != nil {
			return i, fmt.Errorf("seed event %d (%q): %w", i, ne.Title, err)
		}
	}
	return len(events), nil
}
