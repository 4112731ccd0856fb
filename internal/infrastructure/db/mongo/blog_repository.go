package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nexospark/website-api/internal/core/domain"
	"github.com/nexospark/website-api/internal/core/ports"
)

const blogsCollection = "blogs"

type BlogRepository struct {
	coll *mongo.Collection
}

func NewBlogRepository(db *mongo.Database) *BlogRepository {
	return &BlogRepository{coll: db.Collection(blogsCollection)}
}

type blogDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	domain.Blog `bson:",inline"`
}

func (d *blogDoc) toDomain() *domain.Blog {
	b := d.Blog
	b.ID = d.ID.Hex()
	return &b
}

func (r *BlogRepository) Insert(ctx context.Context, b *domain.Blog) (*domain.Blog, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, blogDoc{Blog: *b})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.Conflict("a blog post with that slug already exists")
		}
		return nil, fmt.Errorf("insert blog: %w", err)
	}

	created := *b
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *BlogRepository) FindByID(ctx context.Context, id string) (*domain.Blog, error) {
	oid, err := parseID(id, "blog post")
	if err != nil {
		return nil, err
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *BlogRepository) FindBySlug(ctx context.Context, slug string) (*domain.Blog, error) {
	return r.findOne(ctx, bson.M{"slug": slug})
}

func (r *BlogRepository) findOne(ctx context.Context, filter bson.M) (*domain.Blog, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc blogDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.NotFound("no blog post found with that slug")
		}
		return nil, fmt.Errorf("find blog: %w", err)
	}
	return doc.toDomain(), nil
}

// List returns one page of posts newest-first plus the total count.
// A non-positive Limit disables pagination (back-office listing).
func (r *BlogRepository) List(ctx context.Context, f ports.BlogListFilter) ([]*domain.Blog, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	if f.Tag != "" {
		filter["tags"] = f.Tag
	}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count blogs: %w", err)
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if f.Limit > 0 {
		opts.SetSkip(int64(f.Skip)).SetLimit(int64(f.Limit))
	}

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list blogs: %w", err)
	}
	defer cur.Close(ctx)

	var items []*domain.Blog
	for cur.Next(ctx) {
		var doc blogDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, 0, fmt.Errorf("decode blog: %w", err)
		}
		items = append(items, doc.toDomain())
	}
	return items, total, cur.Err()
}

func (r *BlogRepository) Replace(ctx context.Context, b *domain.Blog) (*domain.Blog, error) {
	oid, err := parseID(b.ID, "blog post")
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, blogDoc{ID: oid, Blog: *b})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.Conflict("a blog post with that slug already exists")
		}
		return nil, fmt.Errorf("replace blog: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.NotFound("no blog post found with that ID")
	}
	return b, nil
}

func (r *BlogRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id, "blog post")
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete blog: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.NotFound("no blog post found with that ID")
	}
	return nil
}

// EnsureIndexes creates the unique slug index and the listing indexes.
func (r *BlogRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "slug", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
