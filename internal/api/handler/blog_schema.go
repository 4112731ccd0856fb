package handler

import (
	"github.com/nexospark/website-api/internal/core/domain"
	"github.com/nexospark/website-api/internal/core/ports"
)

type createBlogRequest struct {
	Title         string   `json:"title" validate:"required"`
	Content       string   `json:"content" validate:"required"`
	Excerpt       string   `json:"excerpt" validate:"required,max=200"`
	Category      string   `json:"category" validate:"required,oneof=Technology Education 'Industry News' Research Events"`
	Tags          []string `json:"tags"`
	FeaturedImage string   `json:"featuredImage" validate:"required"`
	Status        string   `json:"status" validate:"omitempty,oneof=draft published"`
	ReadTime      int      `json:"readTime" validate:"required,gte=1"`
}

func (r createBlogRequest) toInput() ports.BlogInput {
	return ports.BlogInput{
		Title:         r.Title,
		Content:       r.Content,
		Excerpt:       r.Excerpt,
		Category:      r.Category,
		Tags:          r.Tags,
		FeaturedImage: r.FeaturedImage,
		Status:        domain.BlogStatus(r.Status),
		ReadTime:      r.ReadTime,
	}
}

type updateBlogRequest struct {
	Title         *string   `json:"title" validate:"omitempty,min=1"`
	Content       *string   `json:"content" validate:"omitempty,min=1"`
	Excerpt       *string   `json:"excerpt" validate:"omitempty,max=200"`
	Category      *string   `json:"category" validate:"omitempty,oneof=Technology Education 'Industry News' Research Events"`
	Tags          *[]string `json:"tags"`
	FeaturedImage *string   `json:"featuredImage"`
	Status        *string   `json:"status" validate:"omitempty,oneof=draft published"`
	ReadTime      *int      `json:"readTime" validate:"omitempty,gte=1"`
}

func (r updateBlogRequest) toPatch() ports.BlogPatch {
	patch := ports.BlogPatch{
		Title:         r.Title,
		Content:       r.Content,
		Excerpt:       r.Excerpt,
		Category:      r.Category,
		Tags:          r.Tags,
		FeaturedImage: r.FeaturedImage,
		ReadTime:      r.ReadTime,
	}
	if r.Status != nil {
		status := domain.BlogStatus(*r.Status)
		patch.Status = &status
	}
	return patch
}
