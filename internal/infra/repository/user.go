package repository

import (
	"context"
	"time"

	"talentbridge/internal/infra"
	sqlc "talentbridge/internal/infra/sqlc/generated"
	"talentbridge/internal/pkg/pgconv"
	"talentbridge/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserQueries interface {
	UpdateUserLastLogin(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserLastLoginParams) error
	SetUserPremium(ctx context.Context, db sqlc.DBTX, arg sqlc.SetUserPremiumParams) (int64, error)
	FindUserIDByStripeCustomerID(ctx context.Context, db sqlc.DBTX, stripeCustomerID pgtype.Text) (uuid.UUID, error)
	LinkUserStripeCustomer(ctx context.Context, db sqlc.DBTX, arg sqlc.LinkUserStripeCustomerParams) error
	FindUserContact(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.FindUserContactRow, error)
}

type UserRepository struct {
	queries UserQueries
	db      sqlc.DBTX
}

func NewUserRepository(queries UserQueries, db sqlc.DBTX) *UserRepository {
	return &UserRepository{
		queries: queries,
		db:      db,
	}
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID, at time.Time) error {
	err := r.queries.UpdateUserLastLogin(ctx, r.db, sqlc.UpdateUserLastLoginParams{
		ID:        userID,
		LastLogin: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	return nil
}

func (r *UserRepository) SetPremium(ctx context.Context, userID uuid.UUID, premium bool, at time.Time) error {
	affected, err := r.queries.SetUserPremium(ctx, r.db, sqlc.SetUserPremiumParams{
		ID:        userID,
		IsPremium: premium,
		UpdatedAt: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update premium flag", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) FindIDByCustomer(ctx context.Context, customerID string) (uuid.UUID, error) {
	id, err := r.queries.FindUserIDByStripeCustomerID(ctx, r.db, pgconv.StringToPgtype(customerID))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to find user by customer", err)
	}
	return id, nil
}

func (r *UserRepository) LinkCustomer(ctx context.Context, userID uuid.UUID, customerID string, at time.Time) error {
	err := r.queries.LinkUserStripeCustomer(ctx, r.db, sqlc.LinkUserStripeCustomerParams{
		ID:               userID,
		StripeCustomerID: pgconv.StringToPgtype(customerID),
		UpdatedAt:        pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to link billing customer", err)
	}
	return nil
}

func (r *UserRepository) FindContact(ctx context.Context, userID uuid.UUID) (*shared.UserContact, error) {
	row, err := r.queries.FindUserContact(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user contact", err)
	}
	return &shared.UserContact{ID: row.ID, Email: row.Email, DisplayName: row.DisplayName}, nil
}
