package domain

import "time"

// Product is a drone product in the public catalog.
type Product struct {
	ID               string            `json:"id" bson:"-"`
	Name             string            `json:"name" bson:"name"`
	Slug             string            `json:"slug" bson:"slug"`
	Description      string            `json:"description" bson:"description"`
	ShortDescription string            `json:"shortDescription" bson:"shortDescription"`
	Category         string            `json:"category" bson:"category"`
	Price            float64           `json:"price" bson:"price"`
	Specifications   map[string]string `json:"specifications" bson:"specifications"`
	Features         []string          `json:"features" bson:"features"`
	Images           []string          `json:"images" bson:"images"`
	FeaturedImage    string            `json:"featuredImage" bson:"featuredImage"`
	InStock          bool              `json:"inStock" bson:"inStock"`
	IsFeatured       bool              `json:"isFeatured" bson:"isFeatured"`
	CreatedAt        time.Time         `json:"createdAt" bson:"createdAt"`
	UpdatedAt        time.Time         `json:"updatedAt" bson:"updatedAt"`
}
