package service

import (
	"context"
	"encoding/json"
	"strconv"
	"testing"

	"github.com/rs/zerolog"

	"github.com/nexospark/website-api/internal/core/domain"
	"github.com/nexospark/website-api/internal/core/ports"
)

type stubCourseRepo struct {
	courses map[string]*domain.Course
	nextID  int
}

func newStubCourseRepo() *stubCourseRepo {
	return &stubCourseRepo{courses: make(map[string]*domain.Course)}
}

func cloneCourse(c *domain.Course) *domain.Course {
	clone := *c
	return &clone
}

func (r *stubCourseRepo) Insert(_ context.Context, c *domain.Course) (*domain.Course, error) {
	for _, existing := range r.courses {
		if existing.Slug == c.Slug {
			return nil, domain.Conflict("a course with this slug already exists")
		}
	}
	copy := cloneCourse(c)
	r.nextID++
	copy.ID = "course-" + strconv.Itoa(r.nextID)
	r.courses[copy.ID] = cloneCourse(copy)
	return copy, nil
}

func (r *stubCourseRepo) FindByID(_ context.Context, id string) (*domain.Course, error) {
	c, ok := r.courses[id]
	if !ok {
		return nil, domain.NotFound("no course found with that ID")
	}
	return cloneCourse(c), nil
}

func (r *stubCourseRepo) FindBySlug(_ context.Context, slug string) (*domain.Course, error) {
	for _, c := range r.courses {
		if c.Slug == slug {
			return cloneCourse(c), nil
		}
	}
	return nil, domain.NotFound("no course found with that slug")
}

func (r *stubCourseRepo) List(_ context.Context, filter ports.CatalogListFilter) ([]*domain.Course, int64, error) {
	var items []*domain.Course
	for _, c := range r.courses {
		if filter.PublishedOnly && !c.IsPublished {
			continue
		}
		if filter.Level != "" && string(c.Level) != filter.Level {
			continue
		}
		items = append(items, cloneCourse(c))
	}
	return items, int64(len(items)), nil
}

func (r *stubCourseRepo) Replace(_ context.Context, c *domain.Course) (*domain.Course, error) {
	if _, ok := r.courses[c.ID]; !ok {
		return nil, domain.NotFound("no course found with that ID")
	}
	r.courses[c.ID] = cloneCourse(c)
	return cloneCourse(c), nil
}

func (r *stubCourseRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.courses[id]; !ok {
		return domain.NotFound("no course found with that ID")
	}
	delete(r.courses, id)
	return nil
}

type stubProductRepo struct {
	products map[string]*domain.Product
	nextID   int
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[string]*domain.Product)}
}

func cloneProduct(p *domain.Product) *domain.Product {
	clone := *p
	return &clone
}

func (r *stubProductRepo) Insert(_ context.Context, p *domain.Product) (*domain.Product, error) {
	copy := cloneProduct(p)
	r.nextID++
	copy.ID = "product-" + strconv.Itoa(r.nextID)
	r.products[copy.ID] = cloneProduct(copy)
	return copy, nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id string) (*domain.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, domain.NotFound("no product found with that ID")
	}
	return cloneProduct(p), nil
}

func (r *stubProductRepo) FindBySlug(_ context.Context, slug string) (*domain.Product, error) {
	for _, p := range r.products {
		if p.Slug == slug {
			return cloneProduct(p), nil
		}
	}
	return nil, domain.NotFound("no product found with that slug")
}

func (r *stubProductRepo) List(_ context.Context, filter ports.CatalogListFilter) ([]*domain.Product, int64, error) {
	var items []*domain.Product
	for _, p := range r.products {
		if filter.FeaturedOnly && !p.IsFeatured {
			continue
		}
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		items = append(items, cloneProduct(p))
	}
	if filter.Limit > 0 && len(items) > filter.Limit {
		items = items[:filter.Limit]
	}
	return items, int64(len(items)), nil
}

func (r *stubProductRepo) Replace(_ context.Context, p *domain.Product) (*domain.Product, error) {
	if _, ok := r.products[p.ID]; !ok {
		return nil, domain.NotFound("no product found with that ID")
	}
	r.products[p.ID] = cloneProduct(p)
	return cloneProduct(p), nil
}

func (r *stubProductRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.products[id]; !ok {
		return domain.NotFound("no product found with that ID")
	}
	delete(r.products, id)
	return nil
}

// stubCache is an in-memory ContentCache that records invalidated keys.
type stubCache struct {
	entries     map[string][]byte
	invalidated []string
}

func newStubCache() *stubCache {
	return &stubCache{entries: make(map[string][]byte)}
}

func (c *stubCache) Get(_ context.Context, key string, v any) (bool, error) {
	raw, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, v)
}

func (c *stubCache) Set(_ context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.entries[key] = raw
	return nil
}

func (c *stubCache) Invalidate(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(c.entries, key)
		c.invalidated = append(c.invalidated, key)
	}
	return nil
}

func newTestCatalogService(courses ports.CourseRepository, products ports.ProductRepository, cache ContentCache) *CatalogService {
	return NewCatalogService(courses, products, nil, cache, zerolog.Nop())
}

func TestCatalogService_GetCourse_UnpublishedIsNotFound(t *testing.T) {
	repo := newStubCourseRepo()
	svc := newTestCatalogService(repo, nil, nil)

	course, err := svc.CreateCourse(context.Background(), ports.CourseInput{Title: "Drone Piloting 101"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := svc.GetCourse(context.Background(), course.Slug); domain.KindOf(err) != domain.KindNotFound {
		t.Fatalf("expected not found for unpublished course, got %v", err)
	}

	if _, err := svc.ToggleCourse(context.Background(), course.ID); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if _, err := svc.GetCourse(context.Background(), course.Slug); err != nil {
		t.Fatalf("expected published course to be readable, got %v", err)
	}
}

func TestCatalogService_ToggleCourse_Flips(t *testing.T) {
	repo := newStubCourseRepo()
	svc := newTestCatalogService(repo, nil, nil)

	course, err := svc.CreateCourse(context.Background(), ports.CourseInput{Title: "Mapping Basics", IsPublished: true})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	toggled, err := svc.ToggleCourse(context.Background(), course.ID)
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if toggled.IsPublished {
		t.Fatalf("expected unpublished after toggle")
	}
	toggled, err = svc.ToggleCourse(context.Background(), course.ID)
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if !toggled.IsPublished {
		t.Fatalf("expected published after second toggle")
	}
}

func TestCatalogService_GetCourse_CacheRoundTrip(t *testing.T) {
	repo := newStubCourseRepo()
	cache := newStubCache()
	svc := newTestCatalogService(repo, nil, cache)

	course, err := svc.CreateCourse(context.Background(), ports.CourseInput{Title: "Cached Course", IsPublished: true})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := svc.GetCourse(context.Background(), course.Slug); err != nil {
		t.Fatalf("first read failed: %v", err)
	}
	if _, ok := cache.entries["content:courses:cached-course"]; !ok {
		t.Fatalf("expected read to populate the cache, entries=%v", cache.entries)
	}

	// A second read must be served from the cache even if the record
	// disappears underneath.
	delete(repo.courses, course.ID)
	got, err := svc.GetCourse(context.Background(), course.Slug)
	if err != nil {
		t.Fatalf("cached read failed: %v", err)
	}
	if got.Title != "Cached Course" {
		t.Fatalf("unexpected cached title %q", got.Title)
	}
}

func TestCatalogService_UpdateCourse_InvalidatesBothSlugs(t *testing.T) {
	repo := newStubCourseRepo()
	cache := newStubCache()
	svc := newTestCatalogService(repo, nil, cache)

	course, err := svc.CreateCourse(context.Background(), ports.CourseInput{Title: "Old Name", IsPublished: true})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	title := "New Name"
	if _, err := svc.UpdateCourse(context.Background(), course.ID, ports.CoursePatch{Title: &title}); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	want := map[string]bool{
		"content:courses:old-name": false,
		"content:courses:new-name": false,
	}
	for _, key := range cache.invalidated {
		if _, ok := want[key]; ok {
			want[key] = true
		}
	}
	for key, seen := range want {
		if !seen {
			t.Fatalf("expected invalidation of %q, got %v", key, cache.invalidated)
		}
	}
}

func TestCatalogService_GetProduct_NoPublicationGate(t *testing.T) {
	products := newStubProductRepo()
	svc := newTestCatalogService(nil, products, nil)

	product, err := svc.CreateProduct(context.Background(), ports.ProductInput{Name: "Surveyor X2"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	got, err := svc.GetProduct(context.Background(), product.Slug)
	if err != nil {
		t.Fatalf("expected product to be public, got %v", err)
	}
	if got.Slug != "surveyor-x2" {
		t.Fatalf("unexpected slug %q", got.Slug)
	}
}

func TestCatalogService_ListFeaturedProducts(t *testing.T) {
	products := newStubProductRepo()
	svc := newTestCatalogService(nil, products, nil)

	if _, err := svc.CreateProduct(context.Background(), ports.ProductInput{Name: "Plain One"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.CreateProduct(context.Background(), ports.ProductInput{Name: "Star One", IsFeatured: true}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	featured, err := svc.ListFeaturedProducts(context.Background(), 0)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(featured) != 1 || featured[0].Slug != "star-one" {
		t.Fatalf("unexpected featured set: %+v", featured)
	}
}

func TestCatalogService_ListCourses_PublishedOnly(t *testing.T) {
	repo := newStubCourseRepo()
	svc := newTestCatalogService(repo, nil, nil)

	if _, err := svc.CreateCourse(context.Background(), ports.CourseInput{Title: "Hidden"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.CreateCourse(context.Background(), ports.CourseInput{Title: "Visible", IsPublished: true}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	page, err := svc.ListCourses(context.Background(), ports.CourseFilter{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if page.Total != 1 || len(page.Items) != 1 || page.Items[0].Slug != "visible" {
		t.Fatalf("unexpected public listing: total=%d items=%+v", page.Total, page.Items)
	}

	all, err := svc.ListCoursesAdmin(context.Background())
	if err != nil {
		t.Fatalf("admin list failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected both courses in admin listing, got %d", len(all))
	}
}
