package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/vietmaphub/landmark-backend/internal/pkg/logger"
	"github.com/vietmaphub/landmark-backend/internal/types"
)

type LandmarkMediaRepo interface {
	GetByID(ctx context.Context, tx *gorm.DB, id int64) (*types.LandmarkMedia, error)
	// ListByLandmarkID returns rows ordered media_type DESC, order_index ASC
	// (video first, then images in display order).
	ListByLandmarkID(ctx context.Context, tx *gorm.DB, landmarkID int64) ([]*types.LandmarkMedia, error)
	CountByType(ctx context.Context, tx *gorm.DB, landmarkID int64, mediaType string) (int64, error)
	ExistsExact(ctx context.Context, tx *gorm.DB, landmarkID int64, originalName string, size int64) (bool, error)
	CountByOriginalName(ctx context.Context, tx *gorm.DB, landmarkID int64, originalName string) (int64, error)
	// MaxImageOrderIndex returns -1 when the landmark has no images yet.
	MaxImageOrderIndex(ctx context.Context, tx *gorm.DB, landmarkID int64) (int, error)
	Create(ctx context.Context, tx *gorm.DB, media *types.LandmarkMedia) error
	UpdateOrderIndex(ctx context.Context, tx *gorm.DB, id int64, orderIndex int) error
	DeleteByID(ctx context.Context, tx *gorm.DB, id int64) error
	DeleteByLandmarkID(ctx context.Context, tx *gorm.DB, landmarkID int64) error
}

type landmarkMediaRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLandmarkMediaRepo(db *gorm.DB, baseLog *logger.Logger) LandmarkMediaRepo {
	return &landmarkMediaRepo{db: db, log: baseLog.With("repo", "LandmarkMediaRepo")}
}

func (r *landmarkMediaRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *landmarkMediaRepo) GetByID(ctx context.Context, tx *gorm.DB, id int64) (*types.LandmarkMedia, error) {
	var result types.LandmarkMedia
	if err := r.conn(tx).WithContext(ctx).
		Where("id = ?", id).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *landmarkMediaRepo) ListByLandmarkID(ctx context.Context, tx *gorm.DB, landmarkID int64) ([]*types.LandmarkMedia, error) {
	var results []*types.LandmarkMedia
	if err := r.conn(tx).WithContext(ctx).
		Where("landmark_id = ?", landmarkID).
		Order("media_type DESC").
		Order("order_index ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *landmarkMediaRepo) CountByType(ctx context.Context, tx *gorm.DB, landmarkID int64, mediaType string) (int64, error) {
	var count int64
	if err := r.conn(tx).WithContext(ctx).
		Model(&types.LandmarkMedia{}).
		Where("landmark_id = ? AND media_type = ?", landmarkID, mediaType).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *landmarkMediaRepo) ExistsExact(ctx context.Context, tx *gorm.DB, landmarkID int64, originalName string, size int64) (bool, error) {
	var count int64
	if err := r.conn(tx).WithContext(ctx).
		Model(&types.LandmarkMedia{}).
		Where("landmark_id = ? AND original_file_name = ? AND file_size = ?", landmarkID, originalName, size).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *landmarkMediaRepo) CountByOriginalName(ctx context.Context, tx *gorm.DB, landmarkID int64, originalName string) (int64, error) {
	var count int64
	if err := r.conn(tx).WithContext(ctx).
		Model(&types.LandmarkMedia{}).
		Where("landmark_id = ? AND original_file_name = ?", landmarkID, originalName).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *landmarkMediaRepo) MaxImageOrderIndex(ctx context.Context, tx *gorm.DB, landmarkID int64) (int, error) {
	var maxOrder *int
	if err := r.conn(tx).WithContext(ctx).
		Model(&types.LandmarkMedia{}).
		Where("landmark_id = ? AND media_type = ?", landmarkID, types.MediaTypeImage).
		Select("MAX(order_index)").
		Scan(&maxOrder).Error; err != nil {
		return 0, err
	}
	if maxOrder == nil {
		return -1, nil
	}
	return *maxOrder, nil
}

func (r *landmarkMediaRepo) Create(ctx context.Context, tx *gorm.DB, media *types.LandmarkMedia) error {
	return r.conn(tx).WithContext(ctx).Create(media).Error
}

func (r *landmarkMediaRepo) UpdateOrderIndex(ctx context.Context, tx *gorm.DB, id int64, orderIndex int) error {
	return r.conn(tx).WithContext(ctx).
		Model(&types.LandmarkMedia{}).
		Where("id = ?", id).
		Update("order_index", orderIndex).Error
}

func (r *landmarkMediaRepo) DeleteByID(ctx context.Context, tx *gorm.DB, id int64) error {
	return r.conn(tx).WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.LandmarkMedia{}).Error
}

func (r *landmarkMediaRepo) DeleteByLandmarkID(ctx context.Context, tx *gorm.DB, landmarkID int64) error {
	return r.conn(tx).WithContext(ctx).
		Where("landmark_id = ?", landmarkID).
		Delete(&types.LandmarkMedia{}).Error
}
