package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"

	"gorm.io/gorm"

	"github.com/vietmaphub/landmark-backend/internal/db"
	"github.com/vietmaphub/landmark-backend/internal/pkg/logger"
	"github.com/vietmaphub/landmark-backend/internal/repos"
	"github.com/vietmaphub/landmark-backend/internal/types"
)

// CreateLandmarkInput carries the client-supplied fields for a new landmark.
// Lat/Lng are passed through without range validation; a missing value fails
// at the database's NOT NULL constraint, same as the stored contract.
type CreateLandmarkInput struct {
	Name                    string
	Lat                     *float64
	Lng                     *float64
	City                    *string
	Description             *string
	HouseNumberOrOfficeName *string
	Ward                    string
	District                string
	Province                string
	Country                 string
}

// UpdateLandmarkInput distinguishes "not provided" (nil, keep current value)
// from an explicit empty string (rejected for required fields).
type UpdateLandmarkInput struct {
	Name                    *string
	Lat                     *float64
	Lng                     *float64
	City                    *string
	Description             *string
	HouseNumberOrOfficeName *string
	Ward                    *string
	District                *string
	Province                *string
	Country                 *string
}

// BulkLandmarkInput is one element of a bulk replace payload.
type BulkLandmarkInput struct {
	Name                    string
	Lat                     *float64
	Lng                     *float64
	City                    *string
	Description             *string
	HouseNumberOrOfficeName *string
	Ward                    string
	District                string
	Province                string
	Country                 string
}

type LandmarkService interface {
	List(ctx context.Context) ([]*types.LandmarkWithAddress, error)
	Create(ctx context.Context, input CreateLandmarkInput) (*types.LandmarkWithAddress, error)
	Update(ctx context.Context, id int64, input UpdateLandmarkInput) (*types.LandmarkWithAddress, error)
	Delete(ctx context.Context, id int64) (*types.Landmark, error)
	BulkReplace(ctx context.Context, items []BulkLandmarkInput) (int, error)
}

type landmarkService struct {
	db           *gorm.DB
	log          *logger.Logger
	landmarkRepo repos.LandmarkRepo
	mediaRepo    repos.LandmarkMediaRepo
	uploadsRoot  string
}

func NewLandmarkService(
	gdb *gorm.DB,
	baseLog *logger.Logger,
	landmarkRepo repos.LandmarkRepo,
	mediaRepo repos.LandmarkMediaRepo,
	uploadsRoot string,
) LandmarkService {
	return &landmarkService{
		db:           gdb,
		log:          baseLog.With("service", "LandmarkService"),
		landmarkRepo: landmarkRepo,
		mediaRepo:    mediaRepo,
		uploadsRoot:  uploadsRoot,
	}
}

func (s *landmarkService) List(ctx context.Context) ([]*types.LandmarkWithAddress, error) {
	rows, err := s.landmarkRepo.ListAll(ctx, nil)
	if err != nil {
		return nil, err
	}
	results := make([]*types.LandmarkWithAddress, 0, len(rows))
	for _, row := range rows {
		results = append(results, types.NewLandmarkWithAddress(row))
	}
	return results, nil
}

func (s *landmarkService) Create(ctx context.Context, input CreateLandmarkInput) (*types.LandmarkWithAddress, error) {
	if input.Name == "" {
		return nil, &ValidationError{Reason: "missing name"}
	}
	if input.Ward == "" {
		return nil, &ValidationError{Reason: "missing ward"}
	}
	if input.District == "" {
		return nil, &ValidationError{Reason: "missing district"}
	}
	if input.Province == "" {
		return nil, &ValidationError{Reason: "missing province"}
	}

	country := input.Country
	if country == "" {
		country = types.DefaultCountry
	}

	landmark := &types.Landmark{
		Name:                    input.Name,
		Lat:                     input.Lat,
		Lng:                     input.Lng,
		City:                    input.City,
		Description:             input.Description,
		HouseNumberOrOfficeName: input.HouseNumberOrOfficeName,
		Ward:                    input.Ward,
		District:                input.District,
		Province:                input.Province,
		Country:                 country,
	}
	if err := s.landmarkRepo.Create(ctx, nil, landmark); err != nil {
		if db.IsUniqueViolation(err) {
			return nil, newLandmarkConflict()
		}
		return nil, err
	}
	return types.NewLandmarkWithAddress(landmark), nil
}

func (s *landmarkService) Update(ctx context.Context, id int64, input UpdateLandmarkInput) (*types.LandmarkWithAddress, error) {
	// An explicit empty string on a required field is invalid; nil means
	// "keep the stored value".
	if input.Name != nil && *input.Name == "" {
		return nil, &ValidationError{Reason: "name cannot be empty"}
	}
	if input.Ward != nil && *input.Ward == "" {
		return nil, &ValidationError{Reason: "ward cannot be empty"}
	}
	if input.District != nil && *input.District == "" {
		return nil, &ValidationError{Reason: "district cannot be empty"}
	}
	if input.Province != nil && *input.Province == "" {
		return nil, &ValidationError{Reason: "province cannot be empty"}
	}

	current, err := s.landmarkRepo.GetByID(ctx, nil, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "Landmark"}
		}
		return nil, err
	}

	if input.Name != nil {
		current.Name = *input.Name
	}
	if input.Lat != nil {
		current.Lat = input.Lat
	}
	if input.Lng != nil {
		current.Lng = input.Lng
	}
	if input.City != nil {
		current.City = input.City
	}
	if input.Description != nil {
		current.Description = input.Description
	}
	if input.HouseNumberOrOfficeName != nil {
		current.HouseNumberOrOfficeName = input.HouseNumberOrOfficeName
	}
	if input.Ward != nil {
		current.Ward = *input.Ward
	}
	if input.District != nil {
		current.District = *input.District
	}
	if input.Province != nil {
		current.Province = *input.Province
	}
	// Country is not re-defaulted here: an explicit empty string is stored,
	// matching the create-time-only default.
	if input.Country != nil {
		current.Country = *input.Country
	}
	current.UpdatedAt = time.Now()

	if err := s.landmarkRepo.Save(ctx, nil, current); err != nil {
		if db.IsUniqueViolation(err) {
			return nil, newLandmarkConflict()
		}
		return nil, err
	}
	return types.NewLandmarkWithAddress(current), nil
}

func (s *landmarkService) Delete(ctx context.Context, id int64) (*types.Landmark, error) {
	var deleted *types.Landmark
	var mediaRows []*types.LandmarkMedia

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		landmark, err := s.landmarkRepo.GetByID(ctx, tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Resource: "Landmark"}
			}
			return err
		}
		rows, err := s.mediaRepo.ListByLandmarkID(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := s.mediaRepo.DeleteByLandmarkID(ctx, tx, id); err != nil {
			return err
		}
		if err := s.landmarkRepo.DeleteByID(ctx, tx, id); err != nil {
			return err
		}
		deleted = landmark
		mediaRows = rows
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Physical files are owned by the deleted rows; removal is best effort and
	// never fails the request.
	for _, m := range mediaRows {
		path := filepath.Join(s.uploadsRoot, filepath.FromSlash(m.FilePath))
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			s.log.Warn("Failed to remove media file after landmark delete", "path", path, "error", err)
		}
	}
	return deleted, nil
}

func (s *landmarkService) BulkReplace(ctx context.Context, items []BulkLandmarkInput) (int, error) {
	inserted := 0
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.landmarkRepo.DeleteAll(ctx, tx); err != nil {
			return err
		}
		for _, item := range items {
			if item.Name == "" || item.Lat == nil || item.Lng == nil {
				continue
			}
			country := item.Country
			if country == "" {
				country = types.DefaultCountry
			}
			landmark := &types.Landmark{
				Name:                    item.Name,
				Lat:                     item.Lat,
				Lng:                     item.Lng,
				City:                    item.City,
				Description:             item.Description,
				HouseNumberOrOfficeName: item.HouseNumberOrOfficeName,
				Ward:                    item.Ward,
				District:                item.District,
				Province:                item.Province,
				Country:                 country,
			}
			if err := s.landmarkRepo.Create(ctx, tx, landmark); err != nil {
				if db.IsUniqueViolation(err) {
					return newLandmarkConflict()
				}
				return err
			}
			inserted++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	s.log.Info("Bulk replace completed", "inserted", inserted)
	return inserted, nil
}
