package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LoanRepository defines persistence access for loan documents. Loan
// amount/terms fields are opaque to the service, so documents move through
// as bson maps rather than typed structs.
type LoanRepository interface {
	Create(ctx context.Context, doc bson.M) (primitive.ObjectID, error)
	List(ctx context.Context, limit int64) ([]bson.M, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (bson.M, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type loanRepository struct {
	coll *mongo.Collection
}

// NewLoanRepository returns a mongo-backed implementation over the loans collection.
func NewLoanRepository(coll *mongo.Collection) LoanRepository {
	return &loanRepository{coll: coll}
}

func (r *loanRepository) Create(ctx context.Context, doc bson.M) (primitive.ObjectID, error) {
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

func (r *loanRepository) List(ctx context.Context, limit int64) ([]bson.M, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	loans := []bson.M{}
	if err := cursor.All(ctx, &loans); err != nil {
		return nil, err
	}
	return loans, nil
}

func (r *loanRepository) GetByID(ctx context.Context, id primitive.ObjectID) (bson.M, error) {
	var loan bson.M
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&loan); err != nil {
		return nil, err
	}
	return loan, nil
}

func (r *loanRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
