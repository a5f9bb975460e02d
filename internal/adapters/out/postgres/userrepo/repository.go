package userrepo

import (
	"context"

	"roomservice/internal/core/domain/model/user"
	"roomservice/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormUserRepository implements ports.UserRepository using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Upsert issues INSERT ... ON CONFLICT (full_name) DO UPDATE SET role ...
// RETURNING id. Concurrent first orders of the same name therefore converge
// on one row without a read-then-write race.
func (r *GormUserRepository) Upsert(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := UserDTO{
		FullName: aggregate.FullName(),
		Role:     aggregate.Role().String(),
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "full_name"}},
			DoUpdates: clause.AssignmentColumns([]string{"role"}),
		}).
		Create(&dto).Error
	if err != nil {
		return errs.NewStoreError("upsert user", err)
	}

	return aggregate.AssignID(dto.ID)
}
