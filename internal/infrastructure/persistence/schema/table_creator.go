// Package schema provides database schema creation and seeding.
package schema

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/dspfilms/studio-go/internal/infrastructure/security"
	"golang.org/x/crypto/bcrypt"
)

var tables = []string{
	`CREATE TABLE IF NOT EXISTS site_content (
		section TEXT NOT NULL,
		key TEXT NOT NULL,
		value TEXT NOT NULL,
		updated_at DATETIME NOT NULL,
		updated_by TEXT NOT NULL,
		PRIMARY KEY (section, key)
	)`,
	`CREATE TABLE IF NOT EXISTS galleries (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		category TEXT NOT NULL,
		image TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		sort_order INTEGER NOT NULL DEFAULT 0,
		is_active INTEGER NOT NULL DEFAULT 1,
		created DATETIME NOT NULL,
		changed DATETIME
	)`,
	`CREATE TABLE IF NOT EXISTS service_offerings (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		features TEXT NOT NULL DEFAULT '[]',
		image TEXT NOT NULL DEFAULT '',
		icon TEXT NOT NULL DEFAULT '',
		color TEXT NOT NULL DEFAULT '',
		sort_order INTEGER NOT NULL DEFAULT 0,
		is_active INTEGER NOT NULL DEFAULT 1,
		created DATETIME NOT NULL,
		changed DATETIME
	)`,
	`CREATE TABLE IF NOT EXISTS packages (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		price TEXT NOT NULL,
		duration TEXT NOT NULL,
		category TEXT NOT NULL,
		features TEXT NOT NULL DEFAULT '[]',
		popular INTEGER NOT NULL DEFAULT 0,
		color TEXT NOT NULL DEFAULT '',
		sort_order INTEGER NOT NULL DEFAULT 0,
		is_active INTEGER NOT NULL DEFAULT 1,
		created DATETIME NOT NULL,
		changed DATETIME
	)`,
	`CREATE TABLE IF NOT EXISTS testimonials (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		event TEXT NOT NULL DEFAULT '',
		rating INTEGER NOT NULL DEFAULT 5,
		text TEXT NOT NULL,
		image TEXT NOT NULL DEFAULT '',
		location TEXT NOT NULL DEFAULT '',
		sort_order INTEGER NOT NULL DEFAULT 0,
		is_active INTEGER NOT NULL DEFAULT 1,
		created DATETIME NOT NULL,
		changed DATETIME
	)`,
	`CREATE TABLE IF NOT EXISTS blog_posts (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		slug TEXT NOT NULL UNIQUE,
		excerpt TEXT NOT NULL DEFAULT '',
		body TEXT NOT NULL DEFAULT '',
		image TEXT NOT NULL DEFAULT '',
		is_active INTEGER NOT NULL DEFAULT 1,
		created DATETIME NOT NULL,
		changed DATETIME
	)`,
	`CREATE TABLE IF NOT EXISTS videos (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		url TEXT NOT NULL,
		thumb TEXT NOT NULL DEFAULT '',
		sort_order INTEGER NOT NULL DEFAULT 0,
		is_active INTEGER NOT NULL DEFAULT 1,
		created DATETIME NOT NULL,
		changed DATETIME
	)`,
	`CREATE TABLE IF NOT EXISTS inquiries (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT NOT NULL DEFAULT '',
		event_type TEXT NOT NULL,
		event_date TEXT NOT NULL DEFAULT '',
		message TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'new',
		created DATETIME NOT NULL,
		changed DATETIME
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'editor',
		is_active INTEGER NOT NULL DEFAULT 1,
		created DATETIME NOT NULL,
		last_login DATETIME
	)`,
	`CREATE TABLE IF NOT EXISTS sessions (
		token_hash TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		created DATETIME NOT NULL,
		expires_at DATETIME NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS settings (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		facebook_pixel_id TEXT NOT NULL DEFAULT '',
		google_analytics_id TEXT NOT NULL DEFAULT '',
		google_tag_manager_id TEXT NOT NULL DEFAULT '',
		enable_facebook_pixel INTEGER NOT NULL DEFAULT 0,
		enable_google_analytics INTEGER NOT NULL DEFAULT 0,
		enable_google_tag_manager INTEGER NOT NULL DEFAULT 0,
		changed DATETIME
	)`,
	`CREATE TABLE IF NOT EXISTS activity_log (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		action TEXT NOT NULL,
		resource TEXT NOT NULL,
		resource_id TEXT NOT NULL DEFAULT '',
		timestamp DATETIME NOT NULL
	)`,
}

var indexes = []string{
	`CREATE INDEX IF NOT EXISTS idx_galleries_category ON galleries(category)`,
	`CREATE INDEX IF NOT EXISTS idx_packages_category ON packages(category)`,
	`CREATE INDEX IF NOT EXISTS idx_inquiries_status ON inquiries(status)`,
	`CREATE INDEX IF NOT EXISTS idx_sessions_expires ON sessions(expires_at)`,
	`CREATE INDEX IF NOT EXISTS idx_activity_timestamp ON activity_log(timestamp)`,
}

// TableCreator handles the creation of the database schema.
type TableCreator struct{}

// NewTableCreator creates a new TableCreator.
func NewTableCreator() *TableCreator {
	return &TableCreator{}
}

// CreateSchema executes all necessary queries to build the tables and indexes.
func (tc *TableCreator) CreateSchema(db *sql.DB) error {
	for _, tableSQL := range tables {
		if _, err := db.Exec(tableSQL); err != nil {
			return fmt.Errorf("failed to create table for query [%s]: %w", tableSQL, err)
		}
	}

	for _, indexSQL := range indexes {
		if _, err := db.Exec(indexSQL); err != nil {
			return fmt.Errorf("failed to create index for query [%s]: %w", indexSQL, err)
		}
	}
	return nil
}

// SeedInitialAdmin idempotently creates the bootstrap admin account so a
// fresh deployment has a way into the portal.
func (tc *TableCreator) SeedInitialAdmin(db *sql.DB, email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	var exists bool
	err := db.QueryRow("SELECT EXISTS(SELECT 1 FROM users WHERE email = ?)", email).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check for admin user: %w", err)
	}
	if exists {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	_, err = db.Exec(
		`INSERT INTO users (id, email, name, password_hash, role, is_active, created) VALUES (?, ?, ?, ?, ?, 1, ?)`,
		security.GenerateULID(), email, "Administrator", string(hash), "admin", time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert admin user: %w", err)
	}
	return nil
}
