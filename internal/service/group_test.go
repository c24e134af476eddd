package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/msomdec/yatube/internal/domain"
	"github.com/msomdec/yatube/internal/service"
)

func TestGroupService_Create(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewGroupService(db.Groups())
	ctx := context.Background()

	g, err := svc.Create(ctx, " Тестовая группа ", "test_slug", "Тестовое описание")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID == 0 {
		t.Fatal("expected group ID to be set")
	}
	if g.Title != "Тестовая группа" {
		t.Fatalf("expected trimmed title, got %q", g.Title)
	}
	if g.String() != g.Title {
		t.Fatalf("expected String() to return the title, got %q", g.String())
	}

	groups, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
}

func TestGroupService_Create_Invalid(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewGroupService(db.Groups())
	ctx := context.Background()

	tests := []struct {
		name  string
		title string
		slug  string
		field string
	}{
		{"empty title", "", "ok", "title"},
		{"empty slug", "Title", "", "slug"},
		{"slug with spaces", "Title", "Тестовый слаг", "slug"},
		{"slug with slash", "Title", "a/b", "slug"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tc.title, tc.slug, "")
			var verr *domain.ValidationError
			if !errors.As(err, &verr) || verr.Field(tc.field) == "" {
				t.Fatalf("expected validation error on %q, got %v", tc.field, err)
			}
		})
	}
}

func TestGroupService_Create_Duplicate(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewGroupService(db.Groups())
	ctx := context.Background()

	if _, err := svc.Create(ctx, "One", "same", ""); err != nil {
		t.Fatalf("Create: %v", err)
	}
	_, err := svc.Create(ctx, "Two", "same", "")
	if !errors.Is(err, domain.ErrDuplicateSlug) {
		t.Fatalf("expected ErrDuplicateSlug, got %v", err)
	}
}
