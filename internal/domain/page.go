package domain

import (
	"strconv"
	"strings"
)

// PostsPerPage is the fixed size of every post listing page.
const PostsPerPage = 10

// PageRequest selects one page of an ordered result set.
type PageRequest struct {
	Number int // 1-based
	Size   int
}

// ParsePageToken turns a raw ?page= value into a request for a page of the
// given size. Missing, non-numeric and non-positive tokens select page 1.
func ParsePageToken(token string, size int) PageRequest {
	if size <= 0 {
		size = PostsPerPage
	}
	number := 1
	if n, err := strconv.Atoi(strings.TrimSpace(token)); err == nil && n > 0 {
		number = n
	}
	return PageRequest{Number: number, Size: size}
}

// Offset returns the number of items preceding the page.
func (p PageRequest) Offset() int {
	return (p.Number - 1) * p.Size
}

// Limit returns the page size.
func (p PageRequest) Limit() int {
	return p.Size
}

// Page is one slice of an ordered listing plus the numbers a view needs to
// link to its neighbours. Pages past the end have no items.
type Page[T any] struct {
	Items      []T
	Number     int
	Size       int
	TotalItems int
}

// NewPage builds a Page for req over a listing with total items.
func NewPage[T any](req PageRequest, items []T, total int) Page[T] {
	return Page[T]{Items: items, Number: req.Number, Size: req.Size, TotalItems: total}
}

// TotalPages is at least 1, even for an empty listing.
func (p Page[T]) TotalPages() int {
	if p.TotalItems <= 0 || p.Size <= 0 {
		return 1
	}
	return (p.TotalItems + p.Size - 1) / p.Size
}

func (p Page[T]) HasNext() bool {
	return p.Number < p.TotalPages()
}

func (p Page[T]) HasPrevious() bool {
	return p.Number > 1
}

func (p Page[T]) NextNumber() int {
	return p.Number + 1
}

// PreviousNumber clamps to the last page so a link from an out-of-range
// page leads back to content.
func (p Page[T]) PreviousNumber() int {
	return min(p.Number-1, p.TotalPages())
}

func (p Page[T]) Len() int {
	return len(p.Items)
}
