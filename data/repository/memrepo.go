package repository

import (
	"context"
	"sync"

	"event-finder/data/models"
)

// MemRepo keeps events in process memory. Everything is lost on restart.
type MemRepo struct {
	mu     sync.RWMutex
	events []models.Event
	byID   map[string]int
}

func NewMemRepo() *MemRepo {
	return &MemRepo{byID: make(map[string]int)}
}

func (mr *MemRepo) Insert(_ context.Context, e models.Event) error {
	mr.mu.Lock()
	defer mr.mu.Unlock()

	if _, ok := mr.byID[e.ID]; ok {
		return ErrDuplicateID
	}

	e = e.Clone()
	e.DistanceInKm = nil
	mr.byID[e.ID] = len(mr.events)
	mr.events = append(mr.events, e)
	return nil
}

func (mr *MemRepo) GetByID(_ context.Context, id string) (models.Event, error) {
	mr.mu.RLock()
	defer mr.mu.RUnlock()

	i, ok := mr.byID[id]
	if !ok {
		return models.Event{}, ErrNotFound
	}
	return mr.events[i].Clone(), nil
}

func (mr *MemRepo) List(_ context.Context) ([]models.Event, error) {
	mr.mu.RLock()
	defer mr.mu.RUnlock()

	out := make([]models.Event, len(mr.events))
	for i, e := range mr.events {
		out[i] = e.Clone()
	}
	return out, nil
}

func (mr *MemRepo) Count(_ context.Context) (int, error) {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	return len(mr.events), nil
}
