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
	defaultBlogLimit = 10
	maxPageLimit     = 100
)

// BlogService implements blog CRUD with owner-or-admin authorization.
type BlogService struct {
	repo ports.BlogRepository
	log  zerolog.Logger
}

func NewBlogService(repo ports.BlogRepository, log zerolog.Logger) *BlogService {
	return &BlogService{repo: repo, log: log}
}

func (s *BlogService) Create(ctx context.Context, author *domain.User, in ports.BlogInput) (*domain.Blog, error) {
	status := in.Status
	if status == "" {
		status = domain.BlogDraft
	}

	now := time.Now().UTC()
	blog := &domain.Blog{
		Title:         in.Title,
		Slug:          domain.Slugify(in.Title),
		Content:       in.Content,
		Excerpt:       in.Excerpt,
		Author:        domain.AuthorRef{ID: author.ID, Name: author.Name},
		Category:      in.Category,
		Tags:          in.Tags,
		FeaturedImage: in.FeaturedImage,
		Status:        status,
		ReadTime:      in.ReadTime,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.repo.Insert(ctx, blog)
	if err != nil {
		return nil, err
	}

	metrics.ContentWritesTotal.WithLabelValues("blogs", "create").Inc()
	s.log.Info().Str("slug", created.Slug).Str("author_id", author.ID).Msg("blog created")
	return created, nil
}

func (s *BlogService) ListPublished(ctx context.Context, filter ports.BlogFilter) (*ports.Page[*domain.Blog], error) {
	page, limit := normalizePage(filter.Page, filter.Limit, defaultBlogLimit)

	items, total, err := s.repo.List(ctx, ports.BlogListFilter{
		Status:   domain.BlogPublished,
		Category: filter.Category,
		Tag:      filter.Tag,
		Skip:     (page - 1) * limit,
		Limit:    limit,
	})
	if err != nil {
		return nil, err
	}
	return ports.NewPage(items, total, page, limit), nil
}

func (s *BlogService) ListAll(ctx context.Context) ([]*domain.Blog, error) {
	items, _, err := s.repo.List(ctx, ports.BlogListFilter{})
	return items, err
}

// GetBySlug returns the post if the viewer may read it. A draft the viewer
// cannot see reports not-found so existence does not leak.
func (s *BlogService) GetBySlug(ctx context.Context, slug string, viewer *domain.User) (*domain.Blog, error) {
	blog, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !blog.VisibleTo(viewer) {
		return nil, domain.NotFound("no blog post found with that slug")
	}
	return blog, nil
}

func (s *BlogService) Update(ctx context.Context, actor *domain.User, id string, patch ports.BlogPatch) (*domain.Blog, error) {
	blog, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := domain.AuthorizeOwnerOrRole(actor, blog.Author.ID, domain.RoleAdmin); err != nil {
		return nil, err
	}

	if patch.Title != nil && *patch.Title != blog.Title {
		blog.Title = *patch.Title
		blog.Slug = domain.Slugify(*patch.Title)
	}
	if patch.Content != nil {
		blog.Content = *patch.Content
	}
	if patch.Excerpt != nil {
		blog.Excerpt = *patch.Excerpt
	}
	if patch.Category != nil {
		blog.Category = *patch.Category
	}
	if patch.Tags != nil {
		blog.Tags = *patch.Tags
	}
	if patch.FeaturedImage != nil {
		blog.FeaturedImage = *patch.FeaturedImage
	}
	if patch.Status != nil {
		blog.Status = *patch.Status
	}
	if patch.ReadTime != nil {
		blog.ReadTime = *patch.ReadTime
	}
	blog.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Replace(ctx, blog)
	if err != nil {
		return nil, err
	}

	metrics.ContentWritesTotal.WithLabelValues("blogs", "update").Inc()
	return updated, nil
}

func (s *BlogService) Delete(ctx context.Context, actor *domain.User, id string) error {
	blog, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := domain.AuthorizeOwnerOrRole(actor, blog.Author.ID, domain.RoleAdmin); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	metrics.ContentWritesTotal.WithLabelValues("blogs", "delete").Inc()
	s.log.Info().Str("blog_id", id).Str("actor_id", actor.ID).Msg("blog deleted")
	return nil
}

// normalizePage clamps page/limit to sane bounds.
func normalizePage(page, limit, defaultLimit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit
}
