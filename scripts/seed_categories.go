package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"item-catalog/internal/config"
	"item-catalog/internal/database"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

// defaultCategories are inserted when absent. Existing rows are left alone.
var defaultCategories = []string{
	"Stationery",
	"Office",
	"Electronics",
	"Kitchen",
}

// Seeds the categories table so items can be created locally. Takes optional
// category names as arguments; without arguments the defaults are used.
func main() {
	names := categoryNames(os.Args[1:])
	if len(names) == 0 {
		fmt.Fprintln(os.Stderr, "No category names given: all arguments are blank")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger := config.NewLogger(cfg.Logger)
	if err := database.RunMigrations(cfg.Database.ConnectionString(), logger); err != nil {
		fmt.Fprintf(os.Stderr, "Migration failed: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, cfg.Database.ConnectionString())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close(ctx)

	query, args, err := categoryInsert(names).ToSql()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to build insert: %v\n", err)
		os.Exit(1)
	}

	tag, err := conn.Exec(ctx, query, args...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Insert failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Inserted %d new categories\n", tag.RowsAffected())

	rows, err := conn.Query(ctx, "SELECT id, name FROM categories ORDER BY id")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Query failed: %v\n", err)
		os.Exit(1)
	}
	defer rows.Close()

	fmt.Println("\nAvailable categories:")
	for rows.Next() {
		var (
			id   int64
			name string
		)
		if err := rows.Scan(&id, &name); err != nil {
			fmt.Fprintf(os.Stderr, "Scan failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("  %d - %s\n", id, name)
	}
	if err := rows.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Reading categories failed: %v\n", err)
		os.Exit(1)
	}
}

// categoryNames trims args and drops blanks. No args at all means the defaults.
func categoryNames(args []string) []string {
	if len(args) == 0 {
		return defaultCategories
	}
	names := make([]string, 0, len(args))
	for _, arg := range args {
		if name := strings.TrimSpace(arg); name != "" {
			names = append(names, name)
		}
	}
	return names
}

func categoryInsert(names []string) sq.InsertBuilder {
	insert := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Insert("categories").
		Columns("name").
		Suffix("ON CONFLICT (name) DO NOTHING")
	for _, name := range names {
		insert = insert.Values(name)
	}
	return insert
}
