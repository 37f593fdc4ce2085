package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"event-finder/data/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEvent(id, title string) models.Event {
	return models.Event{
		ID:              id,
		Title:           title,
		Description:     "A test event",
		Date:            "2025-06-01T09:00:00Z",
		MaxParticipants: 25,
		Location:        models.Location{Name: "Dublin Park", Lat: 53.3498, Lng: -6.2603},
		Tags:            []string{"test"},
	}
}

func TestMemRepo(t *testing.T) {
	ctx := context.Background()
	repo := NewMemRepo()

	t.Run("Insert and GetByID", func(t *testing.T) {
		require.NoError(t, repo.Insert(ctx, testEvent("a", "First")))

		e, err := repo.GetByID(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, "First", e.Title)
		assert.Equal(t, "Dublin Park", e.Location.Name)
	})

	t.Run("duplicate id", func(t *testing.T) {
		err := repo.Insert(ctx, testEvent("a", "Again"))
		assert.ErrorIs(t, err, ErrDuplicateID)

		n, _ := repo.Count(ctx)
		assert.Equal(t, 1, n)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := repo.GetByID(ctx, "does-not-exist")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("List keeps insertion order", func(t *testing.T) {
		require.NoError(t, repo.Insert(ctx, testEvent("b", "Second")))
		require.NoError(t, repo.Insert(ctx, testEvent("c", "Third")))

		events, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, events, 3)
		assert.Equal(t, []string{"a", "b", "c"}, []string{events[0].ID, events[1].ID, events[2].ID})
	})

	t.Run("returned events are copies", func(t *testing.T) {
		events, err := repo.List(ctx)
		require.NoError(t, err)
		events[0].Title = "mutated"
		events[0].Tags[0] = "mutated"

		e, err := repo.GetByID(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, "First", e.Title)
		assert.Equal(t, []string{"test"}, e.Tags)
	})

	t.Run("distance is never stored", func(t *testing.T) {
		e := testEvent("d", "Fourth")
		d := 3.2
		e.DistanceInKm = &d
		require.NoError(t, repo.Insert(ctx, e))

		got, err := repo.GetByID(ctx, "d")
		require.NoError(t, err)
		assert.Nil(t, got.DistanceInKm)
	})
}

func TestMemRepo_ConcurrentInsert(t *testing.T) {
	ctx := context.Background()
	repo := NewMemRepo()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, repo.Insert(ctx, testEvent(fmt.Sprintf("id-%d", i), "Concurrent")))
			_, _ = repo.List(ctx)
		}(i)
	}
	wg.Wait()

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 50, n)
}
