package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"event-finder/data/models"
	"event-finder/data/repository"
	"event-finder/data/seed"
	"event-finder/data/store"
)

type application struct {
	Config  config
	Store   *store.Store
	Metrics *metrics
}

func main() {
	cfg, err := loadConfig(nil)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	app := &application{Config: cfg, Metrics: newMetrics()}

	repo, closeRepo, err := app.openRepo()
	if err != nil {
		log.Fatalf("Failed to open event repository: %v", err)
	}
	defer closeRepo()

	app.Store = store.New(repo)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.seed(ctx); err != nil {
		log.Fatalf("Failed to seed events: %v", err)
	}

	if err := app.serve(ctx); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// openRepo returns the Postgres repository when a database URL is configured
// and the in-memory one otherwise.
func (app *application) openRepo() (repository.EventRepo, func(), error) {
	if app.Config.DatabaseURL == "" {
		log.Println("No DATABASE_URL set, events are kept in memory")
		return repository.NewMemRepo(), func() {}, nil
	}

	db, err := app.ConnectToDB()
	if err != nil {
		return nil, nil, err
	}

	repo := &repository.SqlRepo{DB: db}
	if err := repo.RunMigrations("events"); err != nil {
		db.Close()
		return nil, nil, err
	}
	return repo, func() { db.Close() }, nil
}

func (app *application) seed(ctx context.Context) error {
	if app.Config.SeedEnabled {
		var (
			events []models.NewEvent
			err    error
		)
		if app.Config.SeedFile != "" {
			events, err = seed.LoadFile(app.Config.SeedFile)
		} else {
			events, err = seed.Default()
		}
		if err != nil {
			return err
		}

		n, err := app.Store.Seed(ctx, events)
		if err != nil {
			return err
		}
		log.Printf("Seeded %d sample events", n)
	}

	count, err := app.Store.Count(ctx)
	if err != nil {
		return err
	}
	app.Metrics.eventsStored.Set(float64(count))
	return nil
}

func (app *application) serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:         app.Config.Addr(),
		Handler:      app.routes(),
		ReadTimeout:  app.Config.ReadTimeout,
		WriteTimeout: app.Config.WriteTimeout,
		IdleTimeout:  app.Config.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Mini Event Finder API listening on %s (%s)", srv.Addr, app.Config.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Println("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), app.Config.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
