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

const servicesCollection = "services"

type ServiceRepository struct {
	coll *mongo.Collection
}

func NewServiceRepository(db *mongo.Database) *ServiceRepository {
	return &ServiceRepository{coll: db.Collection(servicesCollection)}
}

type serviceDoc struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	domain.Service `bson:",inline"`
}

func (d *serviceDoc) toDomain() *domain.Service {
	s := d.Service
	s.ID = d.ID.Hex()
	return &s
}

func (r *ServiceRepository) Insert(ctx context.Context, s *domain.Service) (*domain.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, serviceDoc{Service: *s})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.Conflict("a service with that slug already exists")
		}
		return nil, fmt.Errorf("insert service: %w", err)
	}

	created := *s
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *ServiceRepository) FindByID(ctx context.Context, id string) (*domain.Service, error) {
	oid, err := parseID(id, "service")
	if err != nil {
		return nil, err
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *ServiceRepository) FindBySlug(ctx context.Context, slug string) (*domain.Service, error) {
	return r.findOne(ctx, bson.M{"slug": slug})
}

func (r *ServiceRepository) findOne(ctx context.Context, filter bson.M) (*domain.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc serviceDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.NotFound("no service found with that slug")
		}
		return nil, fmt.Errorf("find service: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ServiceRepository) List(ctx context.Context, f ports.CatalogListFilter) ([]*domain.Service, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if f.PublishedOnly {
		filter["isPublished"] = true
	}
	if f.Category != "" {
		filter["category"] = f.Category
	}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count services: %w", err)
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if f.Limit > 0 {
		opts.SetSkip(int64(f.Skip)).SetLimit(int64(f.Limit))
	}

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list services: %w", err)
	}
	defer cur.Close(ctx)

	var items []*domain.Service
	for cur.Next(ctx) {
		var doc serviceDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, 0, fmt.Errorf("decode service: %w", err)
		}
		items = append(items, doc.toDomain())
	}
	return items, total, cur.Err()
}

func (r *ServiceRepository) Replace(ctx context.Context, s *domain.Service) (*domain.Service, error) {
	oid, err := parseID(s.ID, "service")
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, serviceDoc{ID: oid, Service: *s})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.Conflict("a service with that slug already exists")
		}
		return nil, fmt.Errorf("replace service: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.NotFound("no service found with that ID")
	}
	return s, nil
}

func (r *ServiceRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id, "service")
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete service: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.NotFound("no service found with that ID")
	}
	return nil
}

func (r *ServiceRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "slug", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "isPublished", Value: 1}, {Key: "createdAt", Value: -1}}},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
