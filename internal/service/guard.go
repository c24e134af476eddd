package service

import "github.com/msomdec/yatube/internal/domain"

// Decision is the outcome of an authorization check.
type Decision int

const (
	Allowed Decision = iota
	DeniedUnauthenticated
	DeniedNotAuthor
)

func (d Decision) String() string {
	switch d {
	case Allowed:
		return "allowed"
	case DeniedUnauthenticated:
		return "denied: unauthenticated"
	case DeniedNotAuthor:
		return "denied: not the author"
	default:
		return "denied"
	}
}

// Err maps the decision onto the domain error taxonomy.
func (d Decision) Err() error {
	switch d {
	case Allowed:
		return nil
	case DeniedNotAuthor:
		return domain.ErrForbidden
	default:
		return domain.ErrUnauthorized
	}
}

// AuthorizeMutation reports whether principal may mutate post. A nil post
// asks about creating a new one, which any authenticated principal may do.
// Editing an existing post is reserved to its author.
func AuthorizeMutation(principal *domain.User, post *domain.Post) Decision {
	if principal == nil || principal.ID == 0 {
		return DeniedUnauthenticated
	}
	if post == nil {
		return Allowed
	}
	if post.Author.ID != principal.ID {
		return DeniedNotAuthor
	}
	return Allowed
}
