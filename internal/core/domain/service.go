package domain

import "time"

// Service is a professional service offering (mapping, inspection, etc).
// Unpublished services are invisible to the public API.
type Service struct {
	ID               string    `json:"id" bson:"-"`
	Title            string    `json:"title" bson:"title"`
	Slug             string    `json:"slug" bson:"slug"`
	Description      string    `json:"description" bson:"description"`
	ShortDescription string    `json:"shortDescription" bson:"shortDescription"`
	Category         string    `json:"category" bson:"category"`
	Icon             string    `json:"icon" bson:"icon"`
	Features         []string  `json:"features" bson:"features"`
	Image            string    `json:"image" bson:"image"`
	IsPublished      bool      `json:"isPublished" bson:"isPublished"`
	CreatedAt        time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt" bson:"updatedAt"`
}
