package types

import "time"

const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"

	// Per-landmark attachment quotas, enforced at write time.
	MaxImagesPerLandmark = 5
	MaxVideosPerLandmark = 1

	// MaxVideoSizeBytes caps a single video upload at 50 MiB.
	MaxVideoSizeBytes = 50 * 1024 * 1024
)

// LandmarkMedia is the metadata record for one uploaded image or video. The
// physical file is owned 1:1 by the row; deleting the row deletes the file
// (best effort). FileName carries the epoch-millis prefix; OriginalFileName is
// preserved for duplicate detection and display.
type LandmarkMedia struct {
	ID               int64     `gorm:"primaryKey" json:"id"`
	LandmarkID       int64     `gorm:"not null;index:idx_landmark_media_landmark_id" json:"landmark_id"`
	Landmark         *Landmark `gorm:"constraint:OnDelete:CASCADE;foreignKey:LandmarkID;references:ID" json:"-"`
	MediaType        string    `gorm:"size:50;not null" json:"media_type"`
	FileName         string    `gorm:"size:255;not null" json:"file_name"`
	OriginalFileName string    `gorm:"size:255" json:"original_file_name"`
	FilePath         string    `gorm:"size:500;not null" json:"file_path"`
	FileSize         int64     `gorm:"not null" json:"file_size"`
	MimeType         string    `gorm:"size:100;not null" json:"mime_type"`
	OrderIndex       int       `gorm:"not null;default:0" json:"order_index"`
	CreatedAt        time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt        time.Time `gorm:"not null" json:"updated_at"`
}

func (LandmarkMedia) TableName() string { return "landmark_media" }
