package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/msomdec/yatube/internal/domain"
)

var slugPattern = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)

// GroupService handles administrative group operations.
type GroupService struct {
	groups domain.GroupRepository
}

// NewGroupService creates a new GroupService.
func NewGroupService(groups domain.GroupRepository) *GroupService {
	return &GroupService{groups: groups}
}

// Create validates and stores a new group. Slugs are unique.
func (s *GroupService) Create(ctx context.Context, title, slug, description string) (*domain.Group, error) {
	title = strings.TrimSpace(title)
	slug = strings.TrimSpace(slug)

	if title == "" {
		return nil, domain.NewValidationError("title", "This field is required.")
	}
	if len([]rune(title)) > 200 {
		return nil, domain.NewValidationError("title", "Ensure this value has at most 200 characters.")
	}
	if !slugPattern.MatchString(slug) {
		return nil, domain.NewValidationError("slug", "Enter a valid slug consisting of letters, numbers, underscores or hyphens.")
	}

	group := &domain.Group{Title: title, Slug: slug, Description: strings.TrimSpace(description)}
	if err := s.groups.Create(ctx, group); err != nil {
		return nil, fmt.Errorf("create group: %w", err)
	}
	return group, nil
}

// List returns all groups.
func (s *GroupService) List(ctx context.Context) ([]domain.Group, error) {
	return s.groups.List(ctx)
}
