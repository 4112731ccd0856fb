package domain

import "time"

// BlogStatus is the publication state of a blog post.
type BlogStatus string

const (
	BlogDraft     BlogStatus = "draft"
	BlogPublished BlogStatus = "published"
)

// BlogCategories is the closed set of accepted blog categories.
var BlogCategories = []string{"Technology", "Education", "Industry News", "Research", "Events"}

// AuthorRef is the denormalized author subdocument carried by owned
// resources. ID is the owning principal's identifier.
type AuthorRef struct {
	ID   string `json:"id" bson:"id"`
	Name string `json:"name" bson:"name"`
}

// Blog is a blog post. Draft posts are visible only to their author and
// admins; published posts are public.
type Blog struct {
	ID            string     `json:"id" bson:"-"`
	Title         string     `json:"title" bson:"title"`
	Slug          string     `json:"slug" bson:"slug"`
	Content       string     `json:"content" bson:"content"`
	Excerpt       string     `json:"excerpt" bson:"excerpt"`
	Author        AuthorRef  `json:"author" bson:"author"`
	Category      string     `json:"category" bson:"category"`
	Tags          []string   `json:"tags" bson:"tags"`
	FeaturedImage string     `json:"featuredImage" bson:"featuredImage"`
	Status        BlogStatus `json:"status" bson:"status"`
	ReadTime      int        `json:"readTime" bson:"readTime"`
	CreatedAt     time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt" bson:"updatedAt"`
}

// VisibleTo reports whether viewer may read the post. Published posts are
// public; drafts require the author or an admin. A nil viewer is an
// anonymous request.
func (b *Blog) VisibleTo(viewer *User) bool {
	if b.Status == BlogPublished {
		return true
	}
	if viewer == nil {
		return false
	}
	return viewer.Role == RoleAdmin || viewer.ID == b.Author.ID
}
