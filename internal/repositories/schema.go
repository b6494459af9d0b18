package repositories

import (
	"context"
	"database/sql"
	"fmt"
)

var contactsTable = map[string]string{
	"mysql": `CREATE TABLE IF NOT EXISTS contacts (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NULL,
		address VARCHAR(255) NULL,
		phone VARCHAR(32) NULL,
		favorite TINYINT(1) NOT NULL DEFAULT 0,
		avatar VARCHAR(255) NULL,
		INDEX idx_contacts_favorite (favorite)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	"sqlite": `CREATE TABLE IF NOT EXISTS contacts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255),
		address VARCHAR(255),
		phone VARCHAR(32),
		favorite BOOLEAN NOT NULL DEFAULT 0,
		avatar VARCHAR(255)
	)`,
}

// EnsureSchema creates the contacts table for the given driver when missing.
func EnsureSchema(ctx context.Context, db *sql.DB, driver string) error {
	ddl, ok := contactsTable[driver]
	if !ok {
		return fmt.Errorf("unsupported database driver %q", driver)
	}
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("error creating contacts table: %w", err)
	}
	return nil
}
