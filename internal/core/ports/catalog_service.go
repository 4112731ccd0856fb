package ports

import (
	"context"

	"github.com/nexospark/website-api/internal/core/domain"
)

// --- Course DTOs ---

type CourseInput struct {
	Title            string
	Description      string
	ShortDescription string
	Level            domain.CourseLevel
	Duration         string
	Price            float64
	Thumbnail        string
	IsPublished      bool
}

type CoursePatch struct {
	Title            *string
	Description      *string
	ShortDescription *string
	Level            *domain.CourseLevel
	Duration         *string
	Price            *float64
	Thumbnail        *string
	IsPublished      *bool
}

type CourseFilter struct {
	Level string
	Page  int
	Limit int
}

// --- Product DTOs ---

type ProductInput struct {
	Name             string
	Description      string
	ShortDescription string
	Category         string
	Price            float64
	Specifications   map[string]string
	Features         []string
	Images           []string
	FeaturedImage    string
	InStock          bool
	IsFeatured       bool
}

type ProductPatch struct {
	Name             *string
	Description      *string
	ShortDescription *string
	Category         *string
	Price            *float64
	Specifications   *map[string]string
	Features         *[]string
	Images           *[]string
	FeaturedImage    *string
	InStock          *bool
	IsFeatured       *bool
}

type ProductFilter struct {
	Category     string
	FeaturedOnly bool
	Page         int
	Limit        int
}

// --- Service DTOs ---

type ServiceInput struct {
	Title            string
	Description      string
	ShortDescription string
	Category         string
	Icon             string
	Features         []string
	Image            string
	IsPublished      bool
}

type ServicePatch struct {
	Title            *string
	Description      *string
	ShortDescription *string
	Category         *string
	Icon             *string
	Features         *[]string
	Image            *string
	IsPublished      *bool
}

type ServiceFilter struct {
	Category string
	Page     int
	Limit    int
}

// CatalogService defines use-case operations for the three public catalog
// collections. Public reads only surface published records (products are
// always public); admin operations see everything.
type CatalogService interface {
	// Courses
	ListCourses(ctx context.Context, filter CourseFilter) (*Page[*domain.Course], error)
	ListCoursesAdmin(ctx context.Context) ([]*domain.Course, error)
	GetCourse(ctx context.Context, slug string) (*domain.Course, error)
	CreateCourse(ctx context.Context, in CourseInput) (*domain.Course, error)
	UpdateCourse(ctx context.Context, id string, patch CoursePatch) (*domain.Course, error)
	DeleteCourse(ctx context.Context, id string) error
	ToggleCourse(ctx context.Context, id string) (*domain.Course, error)

	// Products
	ListProducts(ctx context.Context, filter ProductFilter) (*Page[*domain.Product], error)
	ListFeaturedProducts(ctx context.Context, limit int) ([]*domain.Product, error)
	GetProduct(ctx context.Context, slug string) (*domain.Product, error)
	CreateProduct(ctx context.Context, in ProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id string, patch ProductPatch) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error

	// Services
	ListServices(ctx context.Context, filter ServiceFilter) (*Page[*domain.Service], error)
	ListServicesAdmin(ctx context.Context) ([]*domain.Service, error)
	GetService(ctx context.Context, slug string) (*domain.Service, error)
	CreateService(ctx context.Context, in ServiceInput) (*domain.Service, error)
	UpdateService(ctx context.Context, id string, patch ServicePatch) (*domain.Service, error)
	DeleteService(ctx context.Context, id string) error
	ToggleService(ctx context.Context, id string) (*domain.Service, error)
}
