package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/vietmaphub/landmark-backend/internal/pkg/logger"
	"github.com/vietmaphub/landmark-backend/internal/types"
)

type LandmarkRepo interface {
	GetByID(ctx context.Context, tx *gorm.DB, id int64) (*types.Landmark, error)
	ListAll(ctx context.Context, tx *gorm.DB) ([]*types.Landmark, error)
	Create(ctx context.Context, tx *gorm.DB, landmark *types.Landmark) error
	Save(ctx context.Context, tx *gorm.DB, landmark *types.Landmark) error
	DeleteByID(ctx context.Context, tx *gorm.DB, id int64) error
	DeleteAll(ctx context.Context, tx *gorm.DB) error
}

type landmarkRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLandmarkRepo(db *gorm.DB, baseLog *logger.Logger) LandmarkRepo {
	return &landmarkRepo{db: db, log: baseLog.With("repo", "LandmarkRepo")}
}

func (r *landmarkRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *landmarkRepo) GetByID(ctx context.Context, tx *gorm.DB, id int64) (*types.Landmark, error) {
	var result types.Landmark
	if err := r.conn(tx).WithContext(ctx).
		Where("id = ?", id).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *landmarkRepo) ListAll(ctx context.Context, tx *gorm.DB) ([]*types.Landmark, error) {
	var results []*types.Landmark
	if err := r.conn(tx).WithContext(ctx).
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *landmarkRepo) Create(ctx context.Context, tx *gorm.DB, landmark *types.Landmark) error {
	return r.conn(tx).WithContext(ctx).Create(landmark).Error
}

func (r *landmarkRepo) Save(ctx context.Context, tx *gorm.DB, landmark *types.Landmark) error {
	return r.conn(tx).WithContext(ctx).Save(landmark).Error
}

func (r *landmarkRepo) DeleteByID(ctx context.Context, tx *gorm.DB, id int64) error {
	return r.conn(tx).WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.Landmark{}).Error
}

func (r *landmarkRepo) DeleteAll(ctx context.Context, tx *gorm.DB) error {
	return r.conn(tx).WithContext(ctx).
		Where("1 = 1").
		Delete(&types.Landmark{}).Error
}
