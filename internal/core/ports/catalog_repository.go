package ports

import (
	"context"

	"github.com/nexospark/website-api/internal/core/domain"
)

// CatalogListFilter carries the shared list query shape for catalog
// collections. PublishedOnly is ignored by ProductRepository (products
// have no publication flag).
type CatalogListFilter struct {
	PublishedOnly bool
	Level         string // courses only
	Category      string // products and services
	FeaturedOnly  bool   // products only
	Skip          int
	Limit         int
}

// CourseRepository defines persistence for courses.
type CourseRepository interface {
	Insert(ctx context.Context, c *domain.Course) (*domain.Course, error)
	FindByID(ctx context.Context, id string) (*domain.Course, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Course, error)
	List(ctx context.Context, filter CatalogListFilter) ([]*domain.Course, int64, error)
	Replace(ctx context.Context, c *domain.Course) (*domain.Course, error)
	Delete(ctx context.Context, id string) error
}

// ProductRepository defines persistence for products.
type ProductRepository interface {
	Insert(ctx context.Context, p *domain.Product) (*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Product, error)
	List(ctx context.Context, filter CatalogListFilter) ([]*domain.Product, int64, error)
	Replace(ctx context.Context, p *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

// ServiceRepository defines persistence for service offerings.
type ServiceRepository interface {
	Insert(ctx context.Context, s *domain.Service) (*domain.Service, error)
	FindByID(ctx context.Context, id string) (*domain.Service, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Service, error)
	List(ctx context.Context, filter CatalogListFilter) ([]*domain.Service, int64, error)
	Replace(ctx context.Context, s *domain.Service) (*domain.Service, error)
	Delete(ctx context.Context, id string) error
}
