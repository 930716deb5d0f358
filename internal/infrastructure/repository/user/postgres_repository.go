package user

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	domain "todopro-server/internal/domain/user"
	"todopro-server/internal/infrastructure/database/entities"
	"todopro-server/internal/utils/platformerrors"
)

// Repository persists user accounts.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a user repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts the account record.
func (r *Repository) Create(ctx context.Context, u *domain.User) error {
	entity := entities.NewSchemaUser(u)

	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return platformerrors.NewError(
				ctx,
				platformerrors.LayerRepository,
				platformerrors.ErrorTypeConflict,
				"email already registered",
				err,
				"6d0e1f2a-3b4c-4d5e-9f6a-8b9c0d1e2f3a",
			)
		}
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to create user",
			err,
			"7e1f2a3b-4c5d-4e6f-8a7b-9c0d1e2f3a4b",
		)
	}

	u.ID = entity.ID
	u.CreatedAt = entity.CreatedAt
	u.UpdatedAt = entity.UpdatedAt
	return nil
}

// FindByEmail fetches an account by email.
func (r *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var entity entities.User
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformerrors.NewError(
				ctx,
				platformerrors.LayerRepository,
				platformerrors.ErrorTypeNotFound,
				fmt.Sprintf("user not found: %s", email),
				nil,
				"8f2a3b4c-5d6e-4f7a-9b8c-0d1e2f3a4b5c",
			)
		}
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to fetch user",
			err,
			"9a3b4c5d-6e7f-4a8b-8c9d-1e2f3a4b5c6d",
		)
	}

	return entity.EtoD(), nil
}

// FindByPublicID fetches an account by its public identifier.
func (r *Repository) FindByPublicID(ctx context.Context, publicID string) (*domain.User, error) {
	var entity entities.User
	if err := r.db.WithContext(ctx).
		Where("public_id = ?", publicID).
		First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformerrors.NewError(
				ctx,
				platformerrors.LayerRepository,
				platformerrors.ErrorTypeNotFound,
				fmt.Sprintf("user not found: %s", publicID),
				nil,
				"0b4c5d6e-7f8a-4b9c-9d0e-2f3a4b5c6d7e",
			)
		}
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to fetch user",
			err,
			"1c5d6e7f-8a9b-4c0d-8e1f-3a4b5c6d7e8f",
		)
	}

	return entity.EtoD(), nil
}
