package integration

import (
	"context"
	"fmt"
	"strconv"
	"testing"
	"time"

	"item-catalog/internal/config"
	"item-catalog/internal/database"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a migrated test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	Config    config.DatabaseConfig
}

// SetupTestDB starts a PostgreSQL test container, applies the embedded
// migrations and opens a pool through the production code path.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	t.Cleanup(func() {
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	host, err := postgresContainer.Host(ctx)
	if err != nil {
		t.Fatalf("failed to get container host: %v", err)
	}

	mappedPort, err := postgresContainer.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("failed to get mapped port: %v", err)
	}

	port, err := strconv.Atoi(mappedPort.Port())
	if err != nil {
		t.Fatalf("failed to parse mapped port: %v", err)
	}

	dbConfig := config.DatabaseConfig{
		Host:            host,
		Port:            port,
		User:            "testuser",
		Password:        "testpass",
		Database:        "testdb",
		MaxConnections:  10,
		MinConnections:  2,
		MaxConnLifetime: 300,
		AutoMigrate:     true,
	}

	pool, err := database.Open(ctx, dbConfig, zerolog.Nop())
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(pool.Close)

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		Config:    dbConfig,
	}
}

// SeedCategories inserts the given categories and returns their ids in order.
func SeedCategories(t *testing.T, pool *pgxpool.Pool, names ...string) []int64 {
	t.Helper()

	ctx := context.Background()

	ids := make([]int64, 0, len(names))
	for _, name := range names {
		var id int64
		err := pool.QueryRow(ctx,
			"INSERT INTO categories (name) VALUES ($1) RETURNING id", name,
		).Scan(&id)
		if err != nil {
			t.Fatalf("failed to seed category %s: %v", name, err)
		}
		ids = append(ids, id)
	}
	return ids
}

// CleanupDB removes all rows and resets identities so ids start at 1 again.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	tables := []string{"product_media", "media", "products", "categories"}
	for _, table := range tables {
		_, err := pool.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}
}
