package main

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/jackc/pgx/v4/stdlib"
)

const (
	connectAttempts = 5
	connectBackoff  = 2 * time.Second
)

func (app *application) ConnectToDB() (*sql.DB, error) {
	var err error
	for i := 1; i <= connectAttempts; i++ {
		var db *sql.DB
		db, err = openDB(app.Config.DatabaseURL)
		if err == nil {
			log.Println("Database connection established")
			return db, nil
		}
		log.Printf("Database not ready (attempt %d/%d): %v", i, connectAttempts, err)
		if i < connectAttempts {
			time.Sleep(connectBackoff)
		}
	}
	return nil, err
}

func openDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}
