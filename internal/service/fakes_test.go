package service

import (
	"context"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/spec-kit/loanlink-service/internal/domain"
	"github.com/spec-kit/loanlink-service/internal/payment"
)

// In-memory repository fakes. Single-goroutine test use only.

type fakeUserRepo struct {
	users []*domain.User
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return mongo.CommandError{Code: 11000, Message: "duplicate key"}
		}
	}
	user.ID = primitive.NewObjectID()
	copied := *user
	r.users = append(r.users, &copied)
	return nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeUserRepo) List(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUserRepo) UpdateRole(_ context.Context, id primitive.ObjectID, role domain.Role) (int64, error) {
	for _, u := range r.users {
		if u.ID == id {
			u.Role = role
			return 1, nil
		}
	}
	return 0, nil
}

func (r *fakeUserRepo) SetSuspension(_ context.Context, id primitive.ObjectID, suspended bool, reason string) (int64, error) {
	for _, u := range r.users {
		if u.ID == id {
			u.Suspended = suspended
			u.SuspendReason = reason
			return 1, nil
		}
	}
	return 0, nil
}

type fakeLoanRepo struct {
	docs []bson.M
}

func (r *fakeLoanRepo) Create(_ context.Context, doc bson.M) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	stored := bson.M{"_id": id}
	for k, v := range doc {
		stored[k] = v
	}
	r.docs = append(r.docs, stored)
	return id, nil
}

func (r *fakeLoanRepo) List(_ context.Context, limit int64) ([]bson.M, error) {
	out := append([]bson.M{}, r.docs...)
	sort.SliceStable(out, func(i, j int) bool {
		ti, _ := out[i]["createdAt"].(time.Time)
		tj, _ := out[j]["createdAt"].(time.Time)
		return ti.After(tj)
	})
	if limit > 0 && int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeLoanRepo) GetByID(_ context.Context, id primitive.ObjectID) (bson.M, error) {
	for _, doc := range r.docs {
		if doc["_id"] == id {
			return doc, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeLoanRepo) Delete(_ context.Context, id primitive.ObjectID) (int64, error) {
	for i, doc := range r.docs {
		if doc["_id"] == id {
			r.docs = append(r.docs[:i], r.docs[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

type fakeApplicationRepo struct {
	docs []bson.M
}

func (r *fakeApplicationRepo) Create(_ context.Context, doc bson.M) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	stored := bson.M{"_id": id}
	for k, v := range doc {
		stored[k] = v
	}
	r.docs = append(r.docs, stored)
	return id, nil
}

func (r *fakeApplicationRepo) Find(_ context.Context, filter bson.M) ([]bson.M, error) {
	out := []bson.M{}
	for _, doc := range r.docs {
		match := true
		for k, v := range filter {
			if doc[k] != v {
				match = false
				break
			}
		}
		if match {
			out = append(out, doc)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) GetByID(_ context.Context, id primitive.ObjectID) (bson.M, error) {
	for _, doc := range r.docs {
		if doc["_id"] == id {
			return doc, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeApplicationRepo) UpdateStatus(_ context.Context, id primitive.ObjectID, status domain.ApplicationStatus, feedback string, at time.Time) (int64, error) {
	for _, doc := range r.docs {
		if doc["_id"] == id {
			doc[domain.FieldStatus] = status
			doc[domain.FieldManagerFeedback] = feedback
			doc[domain.FieldUpdatedAt] = at
			return 1, nil
		}
	}
	return 0, nil
}

type fakeCheckoutClient struct {
	lastParams payment.CheckoutParams
	sessionID  string
	err        error
}

func (c *fakeCheckoutClient) CreateCheckoutSession(_ context.Context, params payment.CheckoutParams) (string, error) {
	c.lastParams = params
	if c.err != nil {
		return "", c.err
	}
	return c.sessionID, nil
}
