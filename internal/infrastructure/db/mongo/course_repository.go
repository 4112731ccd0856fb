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

const coursesCollection = "courses"

type CourseRepository struct {
	coll *mongo.Collection
}

func NewCourseRepository(db *mongo.Database) *CourseRepository {
	return &CourseRepository{coll: db.Collection(coursesCollection)}
}

type courseDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	domain.Course `bson:",inline"`
}

func (d *courseDoc) toDomain() *domain.Course {
	c := d.Course
	c.ID = d.ID.Hex()
	return &c
}

func (r *CourseRepository) Insert(ctx context.Context, c *domain.Course) (*domain.Course, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, courseDoc{Course: *c})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.Conflict("a course with that slug already exists")
		}
		return nil, fmt.Errorf("insert course: %w", err)
	}

	created := *c
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *CourseRepository) FindByID(ctx context.Context, id string) (*domain.Course, error) {
	oid, err := parseID(id, "course")
	if err != nil {
		return nil, err
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *CourseRepository) FindBySlug(ctx context.Context, slug string) (*domain.Course, error) {
	return r.findOne(ctx, bson.M{"slug": slug})
}

func (r *CourseRepository) findOne(ctx context.Context, filter bson.M) (*domain.Course, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc courseDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.NotFound("no course found with that slug")
		}
		return nil, fmt.Errorf("find course: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *CourseRepository) List(ctx context.Context, f ports.CatalogListFilter) ([]*domain.Course, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if f.PublishedOnly {
		filter["isPublished"] = true
	}
	if f.Level != "" {
		filter["level"] = f.Level
	}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count courses: %w", err)
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if f.Limit > 0 {
		opts.SetSkip(int64(f.Skip)).SetLimit(int64(f.Limit))
	}

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list courses: %w", err)
	}
	defer cur.Close(ctx)

	var items []*domain.Course
	for cur.Next(ctx) {
		var doc courseDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, 0, fmt.Errorf("decode course: %w", err)
		}
		items = append(items, doc.toDomain())
	}
	return items, total, cur.Err()
}

func (r *CourseRepository) Replace(ctx context.Context, c *domain.Course) (*domain.Course, error) {
	oid, err := parseID(c.ID, "course")
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, courseDoc{ID: oid, Course: *c})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.Conflict("a course with that slug already exists")
		}
		return nil, fmt.Errorf("replace course: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.NotFound("no course found with that ID")
	}
	return c, nil
}

func (r *CourseRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id, "course")
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete course: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.NotFound("no course found with that ID")
	}
	return nil
}

func (r *CourseRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "slug", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "isPublished", Value: 1}, {Key: "createdAt", Value: -1}}},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
