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
)

const applicationsCollection = "jobapplications"

type ApplicationRepository struct {
	coll *mongo.Collection
}

func NewApplicationRepository(db *mongo.Database) *ApplicationRepository {
	return &ApplicationRepository{coll: db.Collection(applicationsCollection)}
}

type applicationDoc struct {
	ID                    primitive.ObjectID `bson:"_id,omitempty"`
	domain.JobApplication `bson:",inline"`
}

func (d *applicationDoc) toDomain() *domain.JobApplication {
	a := d.JobApplication
	a.ID = d.ID.Hex()
	return &a
}

func (r *ApplicationRepository) Insert(ctx context.Context, a *domain.JobApplication) (*domain.JobApplication, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, applicationDoc{JobApplication: *a})
	if err != nil {
		return nil, fmt.Errorf("insert application: %w", err)
	}

	created := *a
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *ApplicationRepository) FindByID(ctx context.Context, id string) (*domain.JobApplication, error) {
	oid, err := parseID(id, "application")
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc applicationDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.NotFound("no application found with that ID")
		}
		return nil, fmt.Errorf("find application: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ApplicationRepository) ListAll(ctx context.Context) ([]*domain.JobApplication, error) {
	return r.list(ctx, bson.M{})
}

func (r *ApplicationRepository) ListByApplicant(ctx context.Context, applicantID string) ([]*domain.JobApplication, error) {
	return r.list(ctx, bson.M{"applicant.id": applicantID})
}

func (r *ApplicationRepository) list(ctx context.Context, filter bson.M) ([]*domain.JobApplication, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	defer cur.Close(ctx)

	var items []*domain.JobApplication
	for cur.Next(ctx) {
		var doc applicationDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode application: %w", err)
		}
		items = append(items, doc.toDomain())
	}
	return items, cur.Err()
}

func (r *ApplicationRepository) Replace(ctx context.Context, a *domain.JobApplication) (*domain.JobApplication, error) {
	oid, err := parseID(a.ID, "application")
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, applicationDoc{ID: oid, JobApplication: *a})
	if err != nil {
		return nil, fmt.Errorf("replace application: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.NotFound("no application found with that ID")
	}
	return a, nil
}

func (r *ApplicationRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id, "application")
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete application: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.NotFound("no application found with that ID")
	}
	return nil
}

// EnsureIndexes creates the applicant listing index.
func (r *ApplicationRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "applicant.id", Value: 1}, {Key: "createdAt", Value: -1}},
	})
	return err
}
