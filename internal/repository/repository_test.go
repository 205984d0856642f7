package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"intranet-api/internal/domain"
	"intranet-api/internal/schema"
)

// setupTestDB opens an in-memory database and creates the full table set.
// commentAuthorColumn selects which author reference the comments table
// carries, mirroring the schema variants seen in the wild.
func setupTestDB(t *testing.T, commentAuthorColumn string) (*gorm.DB, *schema.Catalog) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	db.Exec(`CREATE TABLE companies (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		industry TEXT,
		location TEXT,
		website TEXT,
		email TEXT NOT NULL,
		phone TEXT,
		status TEXT NOT NULL DEFAULT 'active',
		description TEXT,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	)`)
	db.Exec(`CREATE TABLE users (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL,
		company_id TEXT,
		name TEXT NOT NULL DEFAULT '',
		phone TEXT DEFAULT '',
		avatar_url TEXT DEFAULT '',
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	)`)
	db.Exec(`CREATE TABLE posts (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		content TEXT NOT NULL,
		category TEXT DEFAULT 'general',
		company_id TEXT NOT NULL,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	)`)
	db.Exec(fmt.Sprintf(`CREATE TABLE comments (
		id TEXT PRIMARY KEY,
		post_id TEXT NOT NULL,
		content TEXT NOT NULL,
		%q TEXT,
		created_at DATETIME NOT NULL
	)`, commentAuthorColumn))
	db.Exec(`CREATE TABLE messages (
		id TEXT PRIMARY KEY,
		sender_company_id TEXT NOT NULL,
		receiver_company_id TEXT NOT NULL,
		content TEXT NOT NULL,
		created_at DATETIME NOT NULL
	)`)
	db.Exec(`CREATE TABLE user_settings (
		user_id TEXT PRIMARY KEY,
		notifications TEXT,
		updated_at DATETIME NOT NULL
	)`)

	catalog := schema.NewCatalog(map[string][]string{
		"companies":     {"id", "name", "industry", "location", "website", "email", "phone", "status", "description", "created_at", "updated_at"},
		"users":         {"id", "email", "password_hash", "role", "company_id", "name", "phone", "avatar_url", "created_at", "updated_at"},
		"posts":         {"id", "title", "content", "category", "company_id", "created_at", "updated_at"},
		"comments":      {"id", "post_id", "content", commentAuthorColumn, "created_at"},
		"messages":      {"id", "sender_company_id", "receiver_company_id", "content", "created_at"},
		"user_settings": {"user_id", "notifications", "updated_at"},
	})
	return db, catalog
}

func makeCompany(t *testing.T, db *gorm.DB, name string) *domain.Company {
	t.Helper()
	company := &domain.Company{
		ID:     uuid.New(),
		Name:   name,
		Email:  name + "@example.com",
		Status: domain.CompanyStatusActive,
	}
	if err := db.Create(company).Error; err != nil {
		t.Fatalf("failed to create company %s: %v", name, err)
	}
	return company
}

func makeUser(t *testing.T, db *gorm.DB, name string, companyID uuid.UUID) *domain.User {
	t.Helper()
	user := &domain.User{
		ID:           uuid.New(),
		Email:        name + "@example.com",
		PasswordHash: "x",
		Role:         domain.RoleCompany,
		CompanyID:    &companyID,
		Name:         name,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user %s: %v", name, err)
	}
	return user
}

func makePost(t *testing.T, db *gorm.DB, companyID uuid.UUID) *domain.Post {
	t.Helper()
	post := &domain.Post{
		ID:        uuid.New(),
		Title:     "title",
		Content:   "content",
		Category:  "general",
		CompanyID: companyID,
		CreatedAt: time.Now().UTC(),
	}
	if err := db.Create(post).Error; err != nil {
		t.Fatalf("failed to create post: %v", err)
	}
	return post
}

func countRows(t *testing.T, db *gorm.DB, query string, args ...interface{}) int64 {
	t.Helper()
	var n int64
	if err := db.Raw(query, args...).Scan(&n).Error; err != nil {
		t.Fatalf("count query failed: %v", err)
	}
	return n
}
