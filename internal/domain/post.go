package domain

import (
	"context"
	"time"
)

// PostPreviewRunes is how much of the text String() shows.
const PostPreviewRunes = 15

// Post is a unit of content written by a single author.
type Post struct {
	ID        int64
	Text      string
	CreatedAt time.Time
	Author    User
	Group     *Group // nil when the post is not filed under a group
}

func (p *Post) String() string {
	r := []rune(p.Text)
	if len(r) > PostPreviewRunes {
		r = r[:PostPreviewRunes]
	}
	return string(r)
}

// GroupID returns the id of the post's group, or nil.
func (p *Post) GroupID() *int64 {
	if p.Group == nil {
		return nil
	}
	id := p.Group.ID
	return &id
}

// PostFilter narrows a post listing. Nil fields do not filter.
type PostFilter struct {
	GroupID  *int64
	AuthorID *int64
}

// PostRepository defines persistence operations for posts.
// List returns posts newest first, with id as the tie-break, so that
// successive pages of the same filter never reorder.
type PostRepository interface {
	Create(ctx context.Context, post *Post) error
	GetByID(ctx context.Context, id int64) (*Post, error)
	Update(ctx context.Context, post *Post) error
	List(ctx context.Context, filter PostFilter, limit, offset int) ([]Post, error)
	Count(ctx context.Context, filter PostFilter) (int, error)
}
