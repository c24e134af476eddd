package service

import (
	"context"
	"fmt"

	"github.com/msomdec/yatube/internal/domain"
)

// ScopeKind names the set of posts a listing draws from.
type ScopeKind string

const (
	ScopeAll    ScopeKind = "all"
	ScopeGroup  ScopeKind = "group"
	ScopeAuthor ScopeKind = "author"
)

// Scope selects which posts a listing considers.
type Scope struct {
	Kind ScopeKind
	Key  string // group slug or author username
}

func AllPosts() Scope {
	return Scope{Kind: ScopeAll}
}

func GroupPosts(slug string) Scope {
	return Scope{Kind: ScopeGroup, Key: slug}
}

func AuthorPosts(username string) Scope {
	return Scope{Kind: ScopeAuthor, Key: username}
}

// Listing is one page of posts for a scope together with the entity the
// scope resolved to.
type Listing struct {
	Scope  Scope
	Page   domain.Page[domain.Post]
	Group  *domain.Group // set for ScopeGroup
	Author *domain.User  // set for ScopeAuthor
}

// PostDetail is a single post plus its author's total number of posts.
type PostDetail struct {
	Post        *domain.Post
	AuthorPosts int
}

// ListingService serves the read side: paginated post listings, single
// posts, and the group catalogue.
type ListingService struct {
	posts  domain.PostRepository
	groups domain.GroupRepository
	users  domain.UserRepository
}

// NewListingService creates a new ListingService.
func NewListingService(posts domain.PostRepository, groups domain.GroupRepository, users domain.UserRepository) *ListingService {
	return &ListingService{posts: posts, groups: groups, users: users}
}

// List returns the page selected by pageToken of the posts in scope.
// Unknown group slugs and usernames yield domain.ErrNotFound. Pages past
// the end come back empty.
func (s *ListingService) List(ctx context.Context, scope Scope, pageToken string) (*Listing, error) {
	listing := &Listing{Scope: scope}

	var filter domain.PostFilter
	switch scope.Kind {
	case ScopeAll, "":
		listing.Scope.Kind = ScopeAll
	case ScopeGroup:
		group, err := s.groups.GetBySlug(ctx, scope.Key)
		if err != nil {
			return nil, err
		}
		listing.Group = group
		filter.GroupID = &group.ID
	case ScopeAuthor:
		author, err := s.users.GetByUsername(ctx, scope.Key)
		if err != nil {
			return nil, err
		}
		listing.Author = author
		filter.AuthorID = &author.ID
	default:
		return nil, fmt.Errorf("%w: unknown scope %q", domain.ErrInvalidInput, scope.Kind)
	}

	req := domain.ParsePageToken(pageToken, domain.PostsPerPage)

	total, err := s.posts.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count posts: %w", err)
	}

	items := []domain.Post{}
	if req.Offset() < total {
		items, err = s.posts.List(ctx, filter, req.Limit(), req.Offset())
		if err != nil {
			return nil, fmt.Errorf("list posts: %w", err)
		}
	}

	listing.Page = domain.NewPage(req, items, total)
	return listing, nil
}

// Get returns a single post with its author's post count.
func (s *ListingService) Get(ctx context.Context, postID int64) (*PostDetail, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	count, err := s.posts.Count(ctx, domain.PostFilter{AuthorID: &post.Author.ID})
	if err != nil {
		return nil, fmt.Errorf("count author posts: %w", err)
	}

	return &PostDetail{Post: post, AuthorPosts: count}, nil
}

// Groups returns every group, ordered by title.
func (s *ListingService) Groups(ctx context.Context) ([]domain.Group, error) {
	return s.groups.List(ctx)
}
