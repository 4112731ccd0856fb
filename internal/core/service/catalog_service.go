package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/nexospark/website-api/internal/api/metrics"
	"github.com/nexospark/website-api/internal/core/domain"
	"github.com/nexospark/website-api/internal/core/ports"
)

const (
	defaultCatalogLimit  = 12
	defaultFeaturedLimit = 4
)

// ContentCache abstracts the read-through cache for public by-slug content
// lookups (Redis). Cache failures must degrade to the database, never to a
// request failure.
type ContentCache interface {
	// Get unmarshals the cached value for key into v and reports whether
	// the key was present.
	Get(ctx context.Context, key string, v any) (bool, error)
	Set(ctx context.Context, key string, v any) error
	Invalidate(ctx context.Context, keys ...string) error
}

// CatalogService implements the course, product, and service collections:
// published-only public reads with a Redis-backed slug cache, and
// unrestricted admin CRUD. Authorization for the admin operations lives at
// the routing layer (role gate); nothing here is ownership-based.
type CatalogService struct {
	courses  ports.CourseRepository
	products ports.ProductRepository
	services ports.ServiceRepository
	cache    ContentCache
	log      zerolog.Logger
}

func NewCatalogService(
	courses ports.CourseRepository,
	products ports.ProductRepository,
	services ports.ServiceRepository,
	cache ContentCache,
	log zerolog.Logger,
) *CatalogService {
	return &CatalogService{courses: courses, products: products, services: services, cache: cache, log: log}
}

func cacheKey(collection, slug string) string {
	return "content:" + collection + ":" + slug
}

// cacheGet is a best-effort lookup; errors are logged and treated as a miss.
func (s *CatalogService) cacheGet(ctx context.Context, key string, v any) bool {
	if s.cache == nil {
		return false
	}
	hit, err := s.cache.Get(ctx, key, v)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("cache lookup failed")
		return false
	}
	if hit {
		metrics.CacheLookupsTotal.WithLabelValues("hit").Inc()
	} else {
		metrics.CacheLookupsTotal.WithLabelValues("miss").Inc()
	}
	return hit
}

func (s *CatalogService) cacheSet(ctx context.Context, key string, v any) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, v); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
}

func (s *CatalogService) cacheInvalidate(ctx context.Context, keys ...string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, keys...); err != nil {
		s.log.Warn().Err(err).Msg("cache invalidation failed")
	}
}

// --- Courses ---

func (s *CatalogService) ListCourses(ctx context.Context, filter ports.CourseFilter) (*ports.Page[*domain.Course], error) {
	page, limit := normalizePage(filter.Page, filter.Limit, defaultCatalogLimit)
	items, total, err := s.courses.List(ctx, ports.CatalogListFilter{
		PublishedOnly: true,
		Level:         filter.Level,
		Skip:          (page - 1) * limit,
		Limit:         limit,
	})
	if err != nil {
		return nil, err
	}
	return ports.NewPage(items, total, page, limit), nil
}

func (s *CatalogService) ListCoursesAdmin(ctx context.Context) ([]*domain.Course, error) {
	items, _, err := s.courses.List(ctx, ports.CatalogListFilter{})
	return items, err
}

// GetCourse is the public fetch: an unpublished course is not found,
// regardless of caller.
func (s *CatalogService) GetCourse(ctx context.Context, slug string) (*domain.Course, error) {
	key := cacheKey("courses", slug)
	var cached domain.Course
	if s.cacheGet(ctx, key, &cached) {
		return &cached, nil
	}

	course, err := s.courses.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !course.IsPublished {
		return nil, domain.NotFound("no course found with that slug")
	}

	s.cacheSet(ctx, key, course)
	return course, nil
}

func (s *CatalogService) CreateCourse(ctx context.Context, in ports.CourseInput) (*domain.Course, error) {
	now := time.Now().UTC()
	course := &domain.Course{
		Title:            in.Title,
		Slug:             domain.Slugify(in.Title),
		Description:      in.Description,
		ShortDescription: in.ShortDescription,
		Level:            in.Level,
		Duration:         in.Duration,
		Price:            in.Price,
		Thumbnail:        in.Thumbnail,
		IsPublished:      in.IsPublished,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	created, err := s.courses.Insert(ctx, course)
	if err != nil {
		return nil, err
	}
	metrics.ContentWritesTotal.WithLabelValues("courses", "create").Inc()
	return created, nil
}

func (s *CatalogService) UpdateCourse(ctx context.Context, id string, patch ports.CoursePatch) (*domain.Course, error) {
	course, err := s.courses.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	oldSlug := course.Slug

	if patch.Title != nil && *patch.Title != course.Title {
		course.Title = *patch.Title
		course.Slug = domain.Slugify(*patch.Title)
	}
	if patch.Description != nil {
		course.Description = *patch.Description
	}
	if patch.ShortDescription != nil {
		course.ShortDescription = *patch.ShortDescription
	}
	if patch.Level != nil {
		course.Level = *patch.Level
	}
	if patch.Duration != nil {
		course.Duration = *patch.Duration
	}
	if patch.Price != nil {
		course.Price = *patch.Price
	}
	if patch.Thumbnail != nil {
		course.Thumbnail = *patch.Thumbnail
	}
	if patch.IsPublished != nil {
		course.IsPublished = *patch.IsPublished
	}
	course.UpdatedAt = time.Now().UTC()

	updated, err := s.courses.Replace(ctx, course)
	if err != nil {
		return nil, err
	}

	s.cacheInvalidate(ctx, cacheKey("courses", oldSlug), cacheKey("courses", updated.Slug))
	metrics.ContentWritesTotal.WithLabelValues("courses", "update").Inc()
	return updated, nil
}

func (s *CatalogService) DeleteCourse(ctx context.Context, id string) error {
	course, err := s.courses.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.courses.Delete(ctx, id); err != nil {
		return err
	}
	s.cacheInvalidate(ctx, cacheKey("courses", course.Slug))
	metrics.ContentWritesTotal.WithLabelValues("courses", "delete").Inc()
	return nil
}

func (s *CatalogService) ToggleCourse(ctx context.Context, id string) (*domain.Course, error) {
	course, err := s.courses.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	course.IsPublished = !course.IsPublished
	course.UpdatedAt = time.Now().UTC()

	updated, err := s.courses.Replace(ctx, course)
	if err != nil {
		return nil, err
	}
	s.cacheInvalidate(ctx, cacheKey("courses", updated.Slug))
	metrics.ContentWritesTotal.WithLabelValues("courses", "update").Inc()
	return updated, nil
}

// --- Products ---

func (s *CatalogService) ListProducts(ctx context.Context, filter ports.ProductFilter) (*ports.Page[*domain.Product], error) {
	page, limit := normalizePage(filter.Page, filter.Limit, defaultCatalogLimit)
	items, total, err := s.products.List(ctx, ports.CatalogListFilter{
		Category:     filter.Category,
		FeaturedOnly: filter.FeaturedOnly,
		Skip:         (page - 1) * limit,
		Limit:        limit,
	})
	if err != nil {
		return nil, err
	}
	return ports.NewPage(items, total, page, limit), nil
}

func (s *CatalogService) ListFeaturedProducts(ctx context.Context, limit int) ([]*domain.Product, error) {
	if limit < 1 {
		limit = defaultFeaturedLimit
	}
	items, _, err := s.products.List(ctx, ports.CatalogListFilter{FeaturedOnly: true, Limit: limit})
	return items, err
}

func (s *CatalogService) GetProduct(ctx context.Context, slug string) (*domain.Product, error) {
	key := cacheKey("products", slug)
	var cached domain.Product
	if s.cacheGet(ctx, key, &cached) {
		return &cached, nil
	}

	product, err := s.products.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	s.cacheSet(ctx, key, product)
	return product, nil
}

func (s *CatalogService) CreateProduct(ctx context.Context, in ports.ProductInput) (*domain.Product, error) {
	now := time.Now().UTC()
	product := &domain.Product{
		Name:             in.Name,
		Slug:             domain.Slugify(in.Name),
		Description:      in.Description,
		ShortDescription: in.ShortDescription,
		Category:         in.Category,
		Price:            in.Price,
		Specifications:   in.Specifications,
		Features:         in.Features,
		Images:           in.Images,
		FeaturedImage:    in.FeaturedImage,
		InStock:          in.InStock,
		IsFeatured:       in.IsFeatured,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	created, err := s.products.Insert(ctx, product)
	if err != nil {
		return nil, err
	}
	metrics.ContentWritesTotal.WithLabelValues("products", "create").Inc()
	return created, nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, id string, patch ports.ProductPatch) (*domain.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	oldSlug := product.Slug

	if patch.Name != nil && *patch.Name != product.Name {
		product.Name = *patch.Name
		product.Slug = domain.Slugify(*patch.Name)
	}
	if patch.Description != nil {
		product.Description = *patch.Description
	}
	if patch.ShortDescription != nil {
		product.ShortDescription = *patch.ShortDescription
	}
	if patch.Category != nil {
		product.Category = *patch.Category
	}
	if patch.Price != nil {
		product.Price = *patch.Price
	}
	if patch.Specifications != nil {
		product.Specifications = *patch.Specifications
	}
	if patch.Features != nil {
		product.Features = *patch.Features
	}
	if patch.Images != nil {
		product.Images = *patch.Images
	}
	if patch.FeaturedImage != nil {
		product.FeaturedImage = *patch.FeaturedImage
	}
	if patch.InStock != nil {
		product.InStock = *patch.InStock
	}
	if patch.IsFeatured != nil {
		product.IsFeatured = *patch.IsFeatured
	}
	product.UpdatedAt = time.Now().UTC()

	updated, err := s.products.Replace(ctx, product)
	if err != nil {
		return nil, err
	}

	s.cacheInvalidate(ctx, cacheKey("products", oldSlug), cacheKey("products", updated.Slug))
	metrics.ContentWritesTotal.WithLabelValues("products", "update").Inc()
	return updated, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}
	s.cacheInvalidate(ctx, cacheKey("products", product.Slug))
	metrics.ContentWritesTotal.WithLabelValues("products", "delete").Inc()
	return nil
}

// --- Services ---

func (s *CatalogService) ListServices(ctx context.Context, filter ports.ServiceFilter) (*ports.Page[*domain.Service], error) {
	page, limit := normalizePage(filter.Page, filter.Limit, defaultCatalogLimit)
	items, total, err := s.services.List(ctx, ports.CatalogListFilter{
		PublishedOnly: true,
		Category:      filter.Category,
		Skip:          (page - 1) * limit,
		Limit:         limit,
	})
	if err != nil {
		return nil, err
	}
	return ports.NewPage(items, total, page, limit), nil
}

func (s *CatalogService) ListServicesAdmin(ctx context.Context) ([]*domain.Service, error) {
	items, _, err := s.services.List(ctx, ports.CatalogListFilter{})
	return items, err
}

func (s *CatalogService) GetService(ctx context.Context, slug string) (*domain.Service, error) {
	key := cacheKey("services", slug)
	var cached domain.Service
	if s.cacheGet(ctx, key, &cached) {
		return &cached, nil
	}

	svc, err := s.services.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !svc.IsPublished {
		return nil, domain.NotFound("no service found with that slug")
	}

	s.cacheSet(ctx, key, svc)
	return svc, nil
}

func (s *CatalogService) CreateService(ctx context.Context, in ports.ServiceInput) (*domain.Service, error) {
	now := time.Now().UTC()
	svc := &domain.Service{
		Title:            in.Title,
		Slug:             domain.Slugify(in.Title),
		Description:      in.Description,
		ShortDescription: in.ShortDescription,
		Category:         in.Category,
		Icon:             in.Icon,
		Features:         in.Features,
		Image:            in.Image,
		IsPublished:      in.IsPublished,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	created, err := s.services.Insert(ctx, svc)
	if err != nil {
		return nil, err
	}
	metrics.ContentWritesTotal.WithLabelValues("services", "create").Inc()
	return created, nil
}

func (s *CatalogService) UpdateService(ctx context.Context, id string, patch ports.ServicePatch) (*domain.Service, error) {
	svc, err := s.services.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	oldSlug := svc.Slug

	if patch.Title != nil && *patch.Title != svc.Title {
		svc.Title = *patch.Title
		svc.Slug = domain.Slugify(*patch.Title)
	}
	if patch.Description != nil {
		svc.Description = *patch.Description
	}
	if patch.ShortDescription != nil {
		svc.ShortDescription = *patch.ShortDescription
	}
	if patch.Category != nil {
		svc.Category = *patch.Category
	}
	if patch.Icon != nil {
		svc.Icon = *patch.Icon
	}
	if patch.Features != nil {
		svc.Features = *patch.Features
	}
	if patch.Image != nil {
		svc.Image = *patch.Image
	}
	if patch.IsPublished != nil {
		svc.IsPublished = *patch.IsPublished
	}
	svc.UpdatedAt = time.Now().UTC()

	updated, err := s.services.Replace(ctx, svc)
	if err != nil {
		return nil, err
	}

	s.cacheInvalidate(ctx, cacheKey("services", oldSlug), cacheKey("services", updated.Slug))
	metrics.ContentWritesTotal.WithLabelValues("services", "update").Inc()
	return updated, nil
}

func (s *CatalogService) DeleteService(ctx context.Context, id string) error {
	svc, err := s.services.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.services.Delete(ctx, id); err != nil {
		return err
	}
	s.cacheInvalidate(ctx, cacheKey("services", svc.Slug))
	metrics.ContentWritesTotal.WithLabelValues("services", "delete").Inc()
	return nil
}

func (s *CatalogService) ToggleService(ctx context.Context, id string) (*domain.Service, error) {
	svc, err := s.services.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	svc.IsPublished = !svc.IsPublished
	svc.UpdatedAt = time.Now().UTC()

	updated, err := s.services.Replace(ctx, svc)
	if err != nil {
		return nil, err
	}
	s.cacheInvalidate(ctx, cacheKey("services", updated.Slug))
	metrics.ContentWritesTotal.WithLabelValues("services", "update").Inc()
	return updated, nil
}
