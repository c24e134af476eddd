package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/msomdec/yatube/internal/domain"
)

// PostInput is the user-editable part of a post.
type PostInput struct {
	Text    string
	GroupID *int64
}

// PostService creates and edits posts on behalf of a principal.
type PostService struct {
	posts  domain.PostRepository
	groups domain.GroupRepository
}

// NewPostService creates a new PostService.
func NewPostService(posts domain.PostRepository, groups domain.GroupRepository) *PostService {
	return &PostService{posts: posts, groups: groups}
}

// Create validates input and stores a new post authored by principal.
func (s *PostService) Create(ctx context.Context, principal *domain.User, in PostInput) (*domain.Post, error) {
	if err := AuthorizeMutation(principal, nil).Err(); err != nil {
		return nil, err
	}

	post := &domain.Post{Author: *principal}
	if err := s.apply(ctx, post, in); err != nil {
		return nil, err
	}

	if err := s.posts.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return post, nil
}

// Edit replaces the text and group of a post owned by principal.
func (s *PostService) Edit(ctx context.Context, principal *domain.User, postID int64, in PostInput) (*domain.Post, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if err := AuthorizeMutation(principal, post).Err(); err != nil {
		return nil, err
	}

	if err := s.apply(ctx, post, in); err != nil {
		return nil, err
	}

	if err := s.posts.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}
	return post, nil
}

// apply validates in and copies it onto post. post is left untouched when
// validation fails.
func (s *PostService) apply(ctx context.Context, post *domain.Post, in PostInput) error {
	// Stored as entered apart from surrounding whitespace; views escape on output.
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return domain.NewValidationError("text", "This field is required.")
	}

	var group *domain.Group
	if in.GroupID != nil {
		g, err := s.groups.GetByID(ctx, *in.GroupID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.NewValidationError("group", "Select a valid choice. That choice is not one of the available choices.")
			}
			return fmt.Errorf("get group: %w", err)
		}
		group = g
	}

	post.Text = text
	post.Group = group
	return nil
}
