package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
)

const migrationsDir = "migrations"

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")

	ctx := context.Background()

	if err := ensureDatabase(ctx, host, port, user, password, dbname); err != nil {
		log.Fatalf("Database setup failed: %v", err)
	}

	targetConnString := connString(host, port, user, password, dbname)
	conn, err := pgx.Connect(ctx, targetConnString)
	if err != nil {
		log.Fatalf("Unable to connect to %s database: %v", dbname, err)
	}
	defer conn.Close(ctx)

	if err := applyMigrations(ctx, conn); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	fmt.Println("Setup completed successfully.")
}

func connString(host, port, user, password, dbname string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, dbname)
}

// ensureDatabase creates the target database if it does not already exist.
// Connects to the default 'postgres' database since CREATE DATABASE cannot
// run against the database being created.
func ensureDatabase(ctx context.Context, host, port, user, password, dbname string) error {
	conn, err := pgx.Connect(ctx, connString(host, port, user, password, "postgres"))
	if err != nil {
		return fmt.Errorf("connect to postgres database: %w", err)
	}
	defer conn.Close(ctx)

	var exists bool
	err = conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", dbname).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check database existence: %w", err)
	}

	if exists {
		fmt.Printf("Database %s already exists.\n", dbname)
		return nil
	}

	fmt.Printf("Creating database %s...\n", dbname)
	if _, err := conn.Exec(ctx, fmt.Sprintf("CREATE DATABASE %s", dbname)); err != nil {
		return fmt.Errorf("create database: %w", err)
	}
	fmt.Println("Database created successfully.")
	return nil
}

// applyMigrations executes every *.up.sql file in the migrations directory
// in lexical order. The schema uses IF NOT EXISTS throughout, so re-running
// against an existing database is safe.
func applyMigrations(ctx context.Context, conn *pgx.Conn) error {
	entries, err := os.ReadDir(migrationsDir)
	if err != nil {
		return fmt.Errorf("read migrations directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".up.sql") {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)

	if len(files) == 0 {
		return fmt.Errorf("no migration files found in %s", migrationsDir)
	}

	for _, name := range files {
		sql, err := os.ReadFile(filepath.Join(migrationsDir, name))
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}

		fmt.Printf("Applying %s...\n", name)
		if _, err := conn.Exec(ctx, string(sql)); err != nil {
			return fmt.Errorf("apply migration %s: %w", name, err)
		}
	}

	return nil
}
