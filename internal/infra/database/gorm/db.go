package gorm

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"todo-api/pkg/resource"
)

// Open connects to the configured Postgres database. TranslateError is on so
// constraint failures surface as gorm.ErrDuplicatedKey and
// gorm.ErrForeignKeyViolated for the gateways to translate.
func Open() (*gorm.DB, error) {
	host := resource.GetString("app.db.host")
	port := resource.GetString("app.db.port")
	password := resource.GetString("app.db.password")
	username := resource.GetString("app.db.username")
	database := resource.GetString("app.db.database")
	schema := resource.GetString("app.db.schema")
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable search_path=%s",
		host, username, password, database, port, schema)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	return db, nil
}
