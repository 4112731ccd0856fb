package handler

import (
	"github.com/nexospark/website-api/internal/core/domain"
	"github.com/nexospark/website-api/internal/core/ports"
)

// --- Courses ---

type createCourseRequest struct {
	Title            string  `json:"title" validate:"required"`
	Description      string  `json:"description" validate:"required"`
	ShortDescription string  `json:"shortDescription" validate:"required,max=200"`
	Level            string  `json:"level" validate:"required,oneof=beginner intermediate advanced"`
	Duration         string  `json:"duration" validate:"required"`
	Price            float64 `json:"price" validate:"gte=0"`
	Thumbnail        string  `json:"thumbnail" validate:"required"`
	IsPublished      bool    `json:"isPublished"`
}

func (r createCourseRequest) toInput() ports.CourseInput {
	return ports.CourseInput{
		Title:            r.Title,
		Description:      r.Description,
		ShortDescription: r.ShortDescription,
		Level:            domain.CourseLevel(r.Level),
		Duration:         r.Duration,
		Price:            r.Price,
		Thumbnail:        r.Thumbnail,
		IsPublished:      r.IsPublished,
	}
}

type updateCourseRequest struct {
	Title            *string  `json:"title" validate:"omitempty,min=1"`
	Description      *string  `json:"description" validate:"omitempty,min=1"`
	ShortDescription *string  `json:"shortDescription" validate:"omitempty,max=200"`
	Level            *string  `json:"level" validate:"omitempty,oneof=beginner intermediate advanced"`
	Duration         *string  `json:"duration"`
	Price            *float64 `json:"price" validate:"omitempty,gte=0"`
	Thumbnail        *string  `json:"thumbnail"`
	IsPublished      *bool    `json:"isPublished"`
}

func (r updateCourseRequest) toPatch() ports.CoursePatch {
	patch := ports.CoursePatch{
		Title:            r.Title,
		Description:      r.Description,
		ShortDescription: r.ShortDescription,
		Duration:         r.Duration,
		Price:            r.Price,
		Thumbnail:        r.Thumbnail,
		IsPublished:      r.IsPublished,
	}
	if r.Level != nil {
		level := domain.CourseLevel(*r.Level)
		patch.Level = &level
	}
	return patch
}

// --- Products ---

type createProductRequest struct {
	Name             string            `json:"name" validate:"required"`
	Description      string            `json:"description" validate:"required"`
	ShortDescription string            `json:"shortDescription" validate:"required,max=200"`
	Category         string            `json:"category" validate:"required"`
	Price            float64           `json:"price" validate:"gte=0"`
	Specifications   map[string]string `json:"specifications"`
	Features         []string          `json:"features"`
	Images           []string          `json:"images"`
	FeaturedImage    string            `json:"featuredImage" validate:"required"`
	InStock          *bool             `json:"inStock"`
	IsFeatured       bool              `json:"isFeatured"`
}

func (r createProductRequest) toInput() ports.ProductInput {
	// New products are in stock unless the payload says otherwise.
	inStock := true
	if r.InStock != nil {
		inStock = *r.InStock
	}
	return ports.ProductInput{
		Name:             r.Name,
		Description:      r.Description,
		ShortDescription: r.ShortDescription,
		Category:         r.Category,
		Price:            r.Price,
		Specifications:   r.Specifications,
		Features:         r.Features,
		Images:           r.Images,
		FeaturedImage:    r.FeaturedImage,
		InStock:          inStock,
		IsFeatured:       r.IsFeatured,
	}
}

type updateProductRequest struct {
	Name             *string            `json:"name" validate:"omitempty,min=1"`
	Description      *string            `json:"description" validate:"omitempty,min=1"`
	ShortDescription *string            `json:"shortDescription" validate:"omitempty,max=200"`
	Category         *string            `json:"category" validate:"omitempty,min=1"`
	Price            *float64           `json:"price" validate:"omitempty,gte=0"`
	Specifications   *map[string]string `json:"specifications"`
	Features         *[]string          `json:"features"`
	Images           *[]string          `json:"images"`
	FeaturedImage    *string            `json:"featuredImage"`
	InStock          *bool              `json:"inStock"`
	IsFeatured       *bool              `json:"isFeatured"`
}

func (r updateProductRequest) toPatch() ports.ProductPatch {
	return ports.ProductPatch{
		Name:             r.Name,
		Description:      r.Description,
		ShortDescription: r.ShortDescription,
		Category:         r.Category,
		Price:            r.Price,
		Specifications:   r.Specifications,
		Features:         r.Features,
		Images:           r.Images,
		FeaturedImage:    r.FeaturedImage,
		InStock:          r.InStock,
		IsFeatured:       r.IsFeatured,
	}
}

// --- Services ---

type createServiceRequest struct {
	Title            string   `json:"title" validate:"required"`
	Description      string   `json:"description" validate:"required"`
	ShortDescription string   `json:"shortDescription" validate:"required,max=200"`
	Category         string   `json:"category" validate:"required"`
	Icon             string   `json:"icon"`
	Features         []string `json:"features"`
	Image            string   `json:"image" validate:"required"`
	IsPublished      bool     `json:"isPublished"`
}

func (r createServiceRequest) toInput() ports.ServiceInput {
	return ports.ServiceInput{
		Title:            r.Title,
		Description:      r.Description,
		ShortDescription: r.ShortDescription,
		Category:         r.Category,
		Icon:             r.Icon,
		Features:         r.Features,
		Image:            r.Image,
		IsPublished:      r.IsPublished,
	}
}

type updateServiceRequest struct {
	Title            *string   `json:"title" validate:"omitempty,min=1"`
	Description      *string   `json:"description" validate:"omitempty,min=1"`
	ShortDescription *string   `json:"shortDescription" validate:"omitempty,max=200"`
	Category         *string   `json:"category" validate:"omitempty,min=1"`
	Icon             *string   `json:"icon"`
	Features         *[]string `json:"features"`
	Image            *string   `json:"image"`
	IsPublished      *bool     `json:"isPublished"`
}

func (r updateServiceRequest) toPatch() ports.ServicePatch {
	return ports.ServicePatch{
		Title:            r.Title,
		Description:      r.Description,
		ShortDescription: r.ShortDescription,
		Category:         r.Category,
		Icon:             r.Icon,
		Features:         r.Features,
		Image:            r.Image,
		IsPublished:      r.IsPublished,
	}
}
