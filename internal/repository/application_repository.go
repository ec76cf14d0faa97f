package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/spec-kit/loanlink-service/internal/domain"
)

// ApplicationRepository defines persistence access for loan applications.
// Application payloads are opaque documents; only the review fields
// (status, managerFeedback, timestamps) are touched by name.
type ApplicationRepository interface {
	Create(ctx context.Context, doc bson.M) (primitive.ObjectID, error)
	Find(ctx context.Context, filter bson.M) ([]bson.M, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (bson.M, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status domain.ApplicationStatus, feedback string, at time.Time) (int64, error)
}

type applicationRepository struct {
	coll *mongo.Collection
}

// NewApplicationRepository returns a mongo-backed implementation over the
// loanApplications collection.
func NewApplicationRepository(coll *mongo.Collection) ApplicationRepository {
	return &applicationRepository{coll: coll}
}

func (r *applicationRepository) Create(ctx context.Context, doc bson.M) (primitive.ObjectID, error) {
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

func (r *applicationRepository) Find(ctx context.Context, filter bson.M) ([]bson.M, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	applications := []bson.M{}
	if err := cursor.All(ctx, &applications); err != nil {
		return nil, err
	}
	return applications, nil
}

func (r *applicationRepository) GetByID(ctx context.Context, id primitive.ObjectID) (bson.M, error) {
	var application bson.M
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&application); err != nil {
		return nil, err
	}
	return application, nil
}

func (r *applicationRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status domain.ApplicationStatus, feedback string, at time.Time) (int64, error) {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			domain.FieldStatus:          status,
			domain.FieldManagerFeedback: feedback,
			domain.FieldUpdatedAt:       at,
		}},
	)
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}
