package service_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/msomdec/yatube/internal/domain"
	"github.com/msomdec/yatube/internal/repository/sqlite"
)

func newTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New DB: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func seedUser(t *testing.T, db *sqlite.DB, username string) *domain.User {
	t.Helper()
	u := &domain.User{Username: username, PasswordHash: "hash"}
	if err := db.Users().Create(context.Background(), u); err != nil {
		t.Fatalf("seed user %s: %v", username, err)
	}
	return u
}

func seedGroup(t *testing.T, db *sqlite.DB, slug string) *domain.Group {
	t.Helper()
	g := &domain.Group{Title: slug, Slug: slug, Description: "Тестовое описание"}
	if err := db.Groups().Create(context.Background(), g); err != nil {
		t.Fatalf("seed group %s: %v", slug, err)
	}
	return g
}

func seedPost(t *testing.T, db *sqlite.DB, author *domain.User, group *domain.Group, text string) *domain.Post {
	t.Helper()
	p := &domain.Post{Text: text, Author: *author, Group: group}
	if err := db.Posts().Create(context.Background(), p); err != nil {
		t.Fatalf("seed post: %v", err)
	}
	return p
}
