package postgres

import (
	"context"
	"errors"

	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/shahhub/resumehub/internal/models"
	"github.com/shahhub/resumehub/internal/utils"
)

type AccountRepository interface {
	Upsert(ctx context.Context, acct *models.Account) error
	GetByID(ctx context.Context, id string) (*models.Account, error)
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	SetPro(ctx context.Context, id string, pro bool) error
	IncrementUploads(ctx context.Context, id string) (int, error)
	SetKeywords(ctx context.Context, id string, keywords []string) error
	SetPreferences(ctx context.Context, id string, prefs []byte) error
}

type accountRepo struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepo{db: db}
}

// Upsert inserts the account or refreshes the mutable identity columns when
// the id already exists. Tier flags and counters are owned by their own
// setters and are left untouched on conflict.
func (r *accountRepo) Upsert(ctx context.Context, acct *models.Account) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"email", "name", "picture", "updated_at"}),
		}).
		Create(acct).Error
}

func (r *accountRepo) GetByID(ctx context.Context, id string) (*models.Account, error) {
	var acct models.Account
	err := r.db.WithContext(ctx).First(&acct, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &acct, nil
}

func (r *accountRepo) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	var acct models.Account
	err := r.db.WithContext(ctx).First(&acct, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &acct, nil
}

func (r *accountRepo) SetPro(ctx context.Context, id string, pro bool) error {
	res := r.db.WithContext(ctx).Model(&models.Account{}).
		Where("id = ?", id).
		Update("is_pro", pro)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}

// IncrementUploads bumps the upload counter atomically and returns the new
// value. The guest trial limit is enforced against this counter.
func (r *accountRepo) IncrementUploads(ctx context.Context, id string) (int, error) {
	var acct models.Account
	err := r.db.WithContext(ctx).Model(&acct).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "uploads_count"}}}).
		Where("id = ?", id).
		Update("uploads_count", gorm.Expr("uploads_count + 1")).Error
	if err != nil {
		return 0, err
	}
	return acct.UploadsCount, nil
}

func (r *accountRepo) SetKeywords(ctx context.Context, id string, keywords []string) error {
	return r.db.WithContext(ctx).Model(&models.Account{}).
		Where("id = ?", id).
		Update("keywords", pq.StringArray(keywords)).Error
}

func (r *accountRepo) SetPreferences(ctx context.Context, id string, prefs []byte) error {
	return r.db.WithContext(ctx).Model(&models.Account{}).
		Where("id = ?", id).
		Update("preferences", datatypes.JSON(prefs)).Error
}
