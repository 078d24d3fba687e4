package schema

import (
	"database/sql"
	_ "embed"
	"fmt"

	_ "github.com/lib/pq"

	"todo-api/pkg/resource"
)

//go:embed schema.sql
var schemaSQL string

// Apply runs the idempotent DDL against the configured Postgres database
// over a short-lived plain database/sql connection.
func Apply() error {
	host := resource.GetString("app.db.host")
	port := resource.GetString("app.db.port")
	password := resource.GetString("app.db.password")
	username := resource.GetString("app.db.username")
	database := resource.GetString("app.db.database")
	searchPath := resource.GetString("app.db.schema")

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable search_path=%s",
		host, port, username, password, database, searchPath)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
