package database

import (
	"database/sql"
	"log"
	"time"

	"coworkly/config"

	_ "github.com/lib/pq"
)

// DB is the global Postgres handle.
var DB *sql.DB

// InitDB initializes the Postgres connection pool.
func InitDB() {
	db, err := sql.Open("postgres", config.AppConfig.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to open Postgres connection: %v", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		log.Fatalf("failed to ping Postgres: %v", err)
	}

	DB = db
	log.Println("Connected to Postgres successfully!")
}
