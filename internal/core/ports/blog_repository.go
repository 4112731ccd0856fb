package ports

import (
	"context"

	"github.com/nexospark/website-api/internal/core/domain"
)

// BlogListFilter carries the query parameters for listing blog posts.
// Skip/Limit are computed by the service from page/limit.
type BlogListFilter struct {
	Status   domain.BlogStatus // empty = all statuses (admin listing)
	Category string
	Tag      string
	Skip     int
	Limit    int
}

// BlogRepository defines persistence for blog posts.
type BlogRepository interface {
	// Insert stores a new post; a duplicate slug yields a Conflict error.
	Insert(ctx context.Context, b *domain.Blog) (*domain.Blog, error)
	FindByID(ctx context.Context, id string) (*domain.Blog, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Blog, error)
	// List returns one page of posts newest-first plus the total count.
	List(ctx context.Context, filter BlogListFilter) ([]*domain.Blog, int64, error)
	// Replace overwrites the stored post; a duplicate slug yields Conflict.
	Replace(ctx context.Context, b *domain.Blog) (*domain.Blog, error)
	Delete(ctx context.Context, id string) error
}
