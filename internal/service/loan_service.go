package service

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/spec-kit/loanlink-service/internal/domain"
	"github.com/spec-kit/loanlink-service/internal/repository"
	apperrors "github.com/spec-kit/loanlink-service/pkg/util"
)

// LoanService manages loan documents. Amount/terms fields are opaque; the
// service only stamps status and creation time.
type LoanService struct {
	loans repository.LoanRepository
}

// NewLoanService builds the service.
func NewLoanService(loans repository.LoanRepository) *LoanService {
	return &LoanService{loans: loans}
}

// Create inserts a loan document, defaulting status and createdAt.
func (s *LoanService) Create(ctx context.Context, fields map[string]any) (bson.M, error) {
	doc := bson.M{}
	for k, v := range fields {
		if k == "_id" {
			continue
		}
		doc[k] = v
	}
	if status, ok := doc[domain.FieldStatus].(string); !ok || status == "" {
		doc[domain.FieldStatus] = domain.LoanStatusDefault
	}
	doc[domain.FieldCreatedAt] = time.Now().UTC()

	id, err := s.loans.Create(ctx, doc)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	doc["_id"] = id
	return doc, nil
}

// List returns loans newest-first, optionally capped.
func (s *LoanService) List(ctx context.Context, limit int64) ([]bson.M, error) {
	loans, err := s.loans.List(ctx, limit)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return loans, nil
}

// Get returns a loan document, or nil when none exists for the id.
func (s *LoanService) Get(ctx context.Context, idHex string) (bson.M, error) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, apperrors.NewInvalidInput("invalid loan id", map[string]any{"id": idHex})
	}

	loan, err := s.loans.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, apperrors.MapError(err)
	}
	return loan, nil
}

// Delete removes a loan and reports how many documents went away.
func (s *LoanService) Delete(ctx context.Context, idHex string) (int64, error) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return 0, apperrors.NewInvalidInput("invalid loan id", map[string]any{"id": idHex})
	}

	deleted, err := s.loans.Delete(ctx, id)
	if err != nil {
		return 0, apperrors.MapError(err)
	}
	return deleted, nil
}
