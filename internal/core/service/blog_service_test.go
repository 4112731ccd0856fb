package service

import (
	"context"
	"strconv"
	"testing"

	"github.com/rs/zerolog"

	"github.com/nexospark/website-api/internal/core/domain"
	"github.com/nexospark/website-api/internal/core/ports"
)

type stubBlogRepo struct {
	blogs  map[string]*domain.Blog
	nextID int
}

func newStubBlogRepo() *stubBlogRepo {
	return &stubBlogRepo{blogs: make(map[string]*domain.Blog)}
}

func cloneBlog(b *domain.Blog) *domain.Blog {
	if b == nil {
		return nil
	}
	clone := *b
	return &clone
}

func (r *stubBlogRepo) Insert(_ context.Context, b *domain.Blog) (*domain.Blog, error) {
	for _, existing := range r.blogs {
		if existing.Slug == b.Slug {
			return nil, domain.Conflict("a blog post with this slug already exists")
		}
	}
	copy := cloneBlog(b)
	r.nextID++
	copy.ID = "blog-" + strconv.Itoa(r.nextID)
	r.blogs[copy.ID] = cloneBlog(copy)
	return copy, nil
}

func (r *stubBlogRepo) FindByID(_ context.Context, id string) (*domain.Blog, error) {
	b, ok := r.blogs[id]
	if !ok {
		return nil, domain.NotFound("no blog post found with that ID")
	}
	return cloneBlog(b), nil
}

func (r *stubBlogRepo) FindBySlug(_ context.Context, slug string) (*domain.Blog, error) {
	for _, b := range r.blogs {
		if b.Slug == slug {
			return cloneBlog(b), nil
		}
	}
	return nil, domain.NotFound("no blog post found with that slug")
}

func (r *stubBlogRepo) List(_ context.Context, filter ports.BlogListFilter) ([]*domain.Blog, int64, error) {
	var items []*domain.Blog
	for _, b := range r.blogs {
		if filter.Status != "" && b.Status != filter.Status {
			continue
		}
		if filter.Category != "" && b.Category != filter.Category {
			continue
		}
		items = append(items, cloneBlog(b))
	}
	return items, int64(len(items)), nil
}

func (r *stubBlogRepo) Replace(_ context.Context, b *domain.Blog) (*domain.Blog, error) {
	if _, ok := r.blogs[b.ID]; !ok {
		return nil, domain.NotFound("no blog post found with that ID")
	}
	r.blogs[b.ID] = cloneBlog(b)
	return cloneBlog(b), nil
}

func (r *stubBlogRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.blogs[id]; !ok {
		return domain.NotFound("no blog post found with that ID")
	}
	delete(r.blogs, id)
	return nil
}

var (
	blogAuthor = &domain.User{ID: "author-1", Name: "Alice", Role: domain.RoleEmployee}
	blogAdmin  = &domain.User{ID: "admin-1", Name: "Root", Role: domain.RoleAdmin}
	blogOther  = &domain.User{ID: "other-1", Name: "Mallory", Role: domain.RoleEmployee}
)

func newTestBlogService(repo *stubBlogRepo) *BlogService {
	return NewBlogService(repo, zerolog.Nop())
}

func TestBlogService_Create_DefaultsToDraft(t *testing.T) {
	svc := newTestBlogService(newStubBlogRepo())

	blog, err := svc.Create(context.Background(), blogAuthor, ports.BlogInput{
		Title:   "My First Post",
		Content: "body",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if blog.Status != domain.BlogDraft {
		t.Fatalf("expected draft status, got %q", blog.Status)
	}
	if blog.Slug != "my-first-post" {
		t.Fatalf("unexpected slug %q", blog.Slug)
	}
	if blog.Author.ID != blogAuthor.ID || blog.Author.Name != blogAuthor.Name {
		t.Fatalf("author not denormalized: %+v", blog.Author)
	}
}

func TestBlogService_Create_DuplicateSlug(t *testing.T) {
	svc := newTestBlogService(newStubBlogRepo())

	if _, err := svc.Create(context.Background(), blogAuthor, ports.BlogInput{Title: "Same Title"}); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	_, err := svc.Create(context.Background(), blogAuthor, ports.BlogInput{Title: "Same Title"})
	if domain.KindOf(err) != domain.KindConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestBlogService_GetBySlug_DraftVisibility(t *testing.T) {
	svc := newTestBlogService(newStubBlogRepo())

	draft, err := svc.Create(context.Background(), blogAuthor, ports.BlogInput{Title: "Hidden Draft"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	cases := []struct {
		name    string
		viewer  *domain.User
		wantErr bool
	}{
		{"anonymous", nil, true},
		{"unrelated user", blogOther, true},
		{"author", blogAuthor, false},
		{"admin", blogAdmin, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.GetBySlug(context.Background(), draft.Slug, tc.viewer)
			if tc.wantErr {
				// The draft must be indistinguishable from a missing post.
				if domain.KindOf(err) != domain.KindNotFound {
					t.Fatalf("expected not found, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected visibility, got %v", err)
			}
		})
	}
}

func TestBlogService_Update_OwnerOrAdmin(t *testing.T) {
	svc := newTestBlogService(newStubBlogRepo())

	blog, err := svc.Create(context.Background(), blogAuthor, ports.BlogInput{Title: "Editable"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	content := "updated body"
	if _, err := svc.Update(context.Background(), blogOther, blog.ID, ports.BlogPatch{Content: &content}); domain.KindOf(err) != domain.KindForbidden {
		t.Fatalf("expected forbidden for non-owner, got %v", err)
	}
	if _, err := svc.Update(context.Background(), blogAuthor, blog.ID, ports.BlogPatch{Content: &content}); err != nil {
		t.Fatalf("author update failed: %v", err)
	}
	if _, err := svc.Update(context.Background(), blogAdmin, blog.ID, ports.BlogPatch{Content: &content}); err != nil {
		t.Fatalf("admin update failed: %v", err)
	}
}

func TestBlogService_Update_ReslugsOnTitleChange(t *testing.T) {
	svc := newTestBlogService(newStubBlogRepo())

	blog, err := svc.Create(context.Background(), blogAuthor, ports.BlogInput{Title: "Old Title"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	title := "New Title"
	updated, err := svc.Update(context.Background(), blogAuthor, blog.ID, ports.BlogPatch{Title: &title})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Slug != "new-title" {
		t.Fatalf("expected slug re-derived, got %q", updated.Slug)
	}

	// Patching other fields must not touch the slug.
	content := "body"
	updated, err = svc.Update(context.Background(), blogAuthor, blog.ID, ports.BlogPatch{Content: &content})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Slug != "new-title" {
		t.Fatalf("slug changed without title change: %q", updated.Slug)
	}
}

func TestBlogService_Delete_OwnerOrAdmin(t *testing.T) {
	repo := newStubBlogRepo()
	svc := newTestBlogService(repo)

	blog, err := svc.Create(context.Background(), blogAuthor, ports.BlogInput{Title: "Doomed"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.Delete(context.Background(), blogOther, blog.ID); domain.KindOf(err) != domain.KindForbidden {
		t.Fatalf("expected forbidden for non-owner, got %v", err)
	}
	if err := svc.Delete(context.Background(), blogAuthor, blog.ID); err != nil {
		t.Fatalf("author delete failed: %v", err)
	}
	if err := svc.Delete(context.Background(), blogAuthor, blog.ID); domain.KindOf(err) != domain.KindNotFound {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}

func TestBlogService_ListPublished_ExcludesDrafts(t *testing.T) {
	svc := newTestBlogService(newStubBlogRepo())

	if _, err := svc.Create(context.Background(), blogAuthor, ports.BlogInput{Title: "Draft Post"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), blogAuthor, ports.BlogInput{Title: "Live Post", Status: domain.BlogPublished}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	page, err := svc.ListPublished(context.Background(), ports.BlogFilter{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if page.Total != 1 || len(page.Items) != 1 {
		t.Fatalf("expected one published post, got total=%d items=%d", page.Total, len(page.Items))
	}
	if page.Items[0].Slug != "live-post" {
		t.Fatalf("unexpected item %q", page.Items[0].Slug)
	}

	all, err := svc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("list all failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected both posts in admin listing, got %d", len(all))
	}
}

func TestNormalizePage(t *testing.T) {
	cases := []struct {
		page, limit         int
		wantPage, wantLimit int
	}{
		{0, 0, 1, defaultBlogLimit},
		{-3, -1, 1, defaultBlogLimit},
		{2, 25, 2, 25},
		{1, 500, 1, maxPageLimit},
	}
	for _, tc := range cases {
		page, limit := normalizePage(tc.page, tc.limit, defaultBlogLimit)
		if page != tc.wantPage || limit != tc.wantLimit {
			t.Fatalf("normalizePage(%d,%d) = (%d,%d), want (%d,%d)",
				tc.page, tc.limit, page, limit, tc.wantPage, tc.wantLimit)
		}
	}
}
