package ports

import (
	"context"

	"github.com/nexospark/website-api/internal/core/domain"
)

// BlogInput carries all data needed to create a blog post. Slug and author
// are derived by the service, never supplied by the caller.
type BlogInput struct {
	Title         string
	Content       string
	Excerpt       string
	Category      string
	Tags          []string
	FeaturedImage string
	Status        domain.BlogStatus // empty = draft
	ReadTime      int
}

// BlogPatch is a partial update; nil fields are left unchanged. A title
// change re-derives the slug.
type BlogPatch struct {
	Title         *string
	Content       *string
	Excerpt       *string
	Category      *string
	Tags          *[]string
	FeaturedImage *string
	Status        *domain.BlogStatus
	ReadTime      *int
}

// BlogFilter carries the public list query parameters.
type BlogFilter struct {
	Category string
	Tag      string
	Page     int
	Limit    int
}

// BlogService defines use-case operations for blog posts.
type BlogService interface {
	Create(ctx context.Context, author *domain.User, in BlogInput) (*domain.Blog, error)
	// ListPublished returns a page of published posts for the public site.
	ListPublished(ctx context.Context, filter BlogFilter) (*Page[*domain.Blog], error)
	// ListAll returns every post regardless of status (back office).
	ListAll(ctx context.Context) ([]*domain.Blog, error)
	// GetBySlug returns the post when viewer may read it; a draft invisible
	// to the viewer is reported as not found, not forbidden.
	GetBySlug(ctx context.Context, slug string, viewer *domain.User) (*domain.Blog, error)
	// Update applies patch when actor is the author or an admin.
	Update(ctx context.Context, actor *domain.User, id string, patch BlogPatch) (*domain.Blog, error)
	// Delete removes the post when actor is the author or an admin.
	Delete(ctx context.Context, actor *domain.User, id string) error
}
