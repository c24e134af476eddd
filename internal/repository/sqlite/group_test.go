package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"github.com/msomdec/yatube/internal/domain"
)

func TestGroupRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	repo := db.Groups()
	ctx := context.Background()

	g := &domain.Group{Title: "Тестовая группа", Slug: "test_slug", Description: "Тестовое описание"}
	if err := repo.Create(ctx, g); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID == 0 {
		t.Fatal("expected group ID to be set")
	}

	bySlug, err := repo.GetBySlug(ctx, "test_slug")
	if err != nil {
		t.Fatalf("GetBySlug: %v", err)
	}
	if bySlug.ID != g.ID || bySlug.Title != g.Title || bySlug.Description != g.Description {
		t.Fatalf("unexpected group: %+v", bySlug)
	}

	byID, err := repo.GetByID(ctx, g.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if byID.Slug != "test_slug" {
		t.Fatalf("expected slug test_slug, got %q", byID.Slug)
	}
}

func TestGroupRepository_DuplicateSlug(t *testing.T) {
	db := newTestDB(t)
	repo := db.Groups()
	ctx := context.Background()

	if err := repo.Create(ctx, &domain.Group{Title: "One", Slug: "same"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	err := repo.Create(ctx, &domain.Group{Title: "Two", Slug: "same"})
	if !errors.Is(err, domain.ErrDuplicateSlug) {
		t.Fatalf("expected ErrDuplicateSlug, got %v", err)
	}
}

func TestGroupRepository_NotFound(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	if _, err := db.Groups().GetBySlug(ctx, "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("GetBySlug: expected ErrNotFound, got %v", err)
	}
	if _, err := db.Groups().GetByID(ctx, 77); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("GetByID: expected ErrNotFound, got %v", err)
	}
}

func TestGroupRepository_List(t *testing.T) {
	db := newTestDB(t)
	repo := db.Groups()
	ctx := context.Background()

	for _, g := range []*domain.Group{
		{Title: "Beta", Slug: "beta"},
		{Title: "Alpha", Slug: "alpha"},
	} {
		if err := repo.Create(ctx, g); err != nil {
			t.Fatalf("Create %s: %v", g.Slug, err)
		}
	}

	groups, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].Slug != "alpha" || groups[1].Slug != "beta" {
		t.Fatalf("expected groups ordered by title, got %s, %s", groups[0].Slug, groups[1].Slug)
	}
}
