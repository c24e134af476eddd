package domain

import (
	"context"
	"time"
)

// Group is a named category posts can be filed under.
type Group struct {
	ID          int64
	Title       string
	Slug        string // unique, URL safe
	Description string
	CreatedAt   time.Time
}

func (g *Group) String() string {
	return g.Title
}

// GroupRepository defines persistence operations for groups.
type GroupRepository interface {
	Create(ctx context.Context, group *Group) error
	GetByID(ctx context.Context, id int64) (*Group, error)
	GetBySlug(ctx context.Context, slug string) (*Group, error)
	List(ctx context.Context) ([]Group, error)
}
