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

// ApplicationService manages loan applications and their review lifecycle.
type ApplicationService struct {
	applications repository.ApplicationRepository
}

// NewApplicationService builds the service.
func NewApplicationService(applications repository.ApplicationRepository) *ApplicationService {
	return &ApplicationService{applications: applications}
}

// Create inserts an application document. Status is always forced to
// Pending regardless of what the caller sent; review fields are reserved.
func (s *ApplicationService) Create(ctx context.Context, fields map[string]any) (bson.M, error) {
	doc := bson.M{}
	for k, v := range fields {
		switch k {
		case "_id", domain.FieldManagerFeedback, domain.FieldUpdatedAt:
			continue
		}
		doc[k] = v
	}
	doc[domain.FieldStatus] = domain.StatusPending
	doc[domain.FieldCreatedAt] = time.Now().UTC()

	id, err := s.applications.Create(ctx, doc)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	doc["_id"] = id
	return doc, nil
}

// List returns applications matching the optional email/status filters.
// A status filter is normalized onto the canonical enum before matching.
func (s *ApplicationService) List(ctx context.Context, email, status string) ([]bson.M, error) {
	filter := bson.M{}
	if email != "" {
		filter[domain.FieldEmail] = email
	}
	if status != "" {
		normalized, ok := domain.NormalizeStatus(status)
		if !ok {
			return nil, apperrors.NewInvalidInput("unknown status", map[string]any{"status": status})
		}
		filter[domain.FieldStatus] = normalized
	}

	applications, err := s.applications.Find(ctx, filter)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return applications, nil
}

// ListByStatus returns applications in exactly the given canonical state.
func (s *ApplicationService) ListByStatus(ctx context.Context, status domain.ApplicationStatus) ([]bson.M, error) {
	applications, err := s.applications.Find(ctx, bson.M{domain.FieldStatus: status})
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return applications, nil
}

// Get returns a single application document.
func (s *ApplicationService) Get(ctx context.Context, idHex string) (bson.M, error) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, apperrors.NewInvalidInput("invalid application id", map[string]any{"id": idHex})
	}

	application, err := s.applications.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NewNotFound("loan application", map[string]any{"id": idHex})
		}
		return nil, apperrors.MapError(err)
	}
	return application, nil
}

// UpdateStatus moves an application to a canonical state and records the
// reviewer's feedback plus the update time.
func (s *ApplicationService) UpdateStatus(ctx context.Context, idHex, status, feedback string) error {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return apperrors.NewInvalidInput("invalid application id", map[string]any{"id": idHex})
	}
	normalized, ok := domain.NormalizeStatus(status)
	if !ok {
		return apperrors.NewInvalidInput("unknown status", map[string]any{"status": status})
	}

	matched, err := s.applications.UpdateStatus(ctx, id, normalized, feedback, time.Now().UTC())
	if err != nil {
		return apperrors.MapError(err)
	}
	if matched == 0 {
		return apperrors.NewNotFound("loan application", map[string]any{"id": idHex})
	}
	return nil
}
