package queries

import (
	"context"

	"talentbridge/internal/domain/followup"
	"talentbridge/internal/infra"
	"talentbridge/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

var ErrInvalidStatusFilter = errs.New("invalid status filter")

type FollowUpFilters struct {
	Status *string
	Limit  int
}

type FollowUpReadStore interface {
	ListByRecruiter(ctx context.Context, recruiterID uuid.UUID, status *string, limit int32) ([]*FollowUpView, error)
	FindForRecruiter(ctx context.Context, id, recruiterID uuid.UUID) (*FollowUpView, error)
}

type FollowUpQueries interface {
	List(ctx context.Context, recruiterID uuid.UUID, filters FollowUpFilters) ([]*FollowUpView, error)
	Get(ctx context.Context, id, recruiterID uuid.UUID) (*FollowUpView, error)
}

type followUpQueriesImpl struct {
	repo FollowUpReadStore
}

func NewFollowUpQueries(repo FollowUpReadStore) FollowUpQueries {
	return &followUpQueriesImpl{repo: repo}
}

func (q *followUpQueriesImpl) List(ctx context.Context, recruiterID uuid.UUID, filters FollowUpFilters) ([]*FollowUpView, error) {
	if filters.Status != nil {
		if _, err := followup.ParseStatus(*filters.Status); err != nil {
			return nil, errs.Mark(err, ErrInvalidStatusFilter)
		}
	}
	return q.repo.ListByRecruiter(ctx, recruiterID, filters.Status, int32(ValidateLimit(filters.Limit)))
}

func (q *followUpQueriesImpl) Get(ctx context.Context, id, recruiterID uuid.UUID) (*FollowUpView, error) {
	v, err := q.repo.FindForRecruiter(ctx, id, recruiterID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrFollowUpNotFound
		}
		return nil, err
	}
	return v, nil
}

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}
