package domain

import "time"

// CourseLevel is the difficulty of a course.
type CourseLevel string

const (
	LevelBeginner     CourseLevel = "beginner"
	LevelIntermediate CourseLevel = "intermediate"
	LevelAdvanced     CourseLevel = "advanced"
)

// Course is a training course offered on the public site. Unpublished
// courses are invisible to the public API regardless of caller.
type Course struct {
	ID               string      `json:"id" bson:"-"`
	Title            string      `json:"title" bson:"title"`
	Slug             string      `json:"slug" bson:"slug"`
	Description      string      `json:"description" bson:"description"`
	ShortDescription string      `json:"shortDescription" bson:"shortDescription"`
	Level            CourseLevel `json:"level" bson:"level"`
	Duration         string      `json:"duration" bson:"duration"`
	Price            float64     `json:"price" bson:"price"`
	Thumbnail        string      `json:"thumbnail" bson:"thumbnail"`
	IsPublished      bool        `json:"isPublished" bson:"isPublished"`
	CreatedAt        time.Time   `json:"createdAt" bson:"createdAt"`
	UpdatedAt        time.Time   `json:"updatedAt" bson:"updatedAt"`
}
