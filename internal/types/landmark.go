package types

import (
	"strings"
	"time"
)

const DefaultCountry = "Vietnam"

// Landmark is a named geographic point of interest with a structured address.
// The triple (name, lat, lng) is unique; duplicate inserts are rejected by the
// composite unique index.
type Landmark struct {
	ID                      int64    `gorm:"primaryKey" json:"id"`
	Name                    string   `gorm:"size:255;not null;uniqueIndex:idx_landmarks_name_lat_lng" json:"name"`
	Lat                     *float64 `gorm:"type:decimal(10,6);not null;uniqueIndex:idx_landmarks_name_lat_lng" json:"lat"`
	Lng                     *float64 `gorm:"type:decimal(10,6);not null;uniqueIndex:idx_landmarks_name_lat_lng" json:"lng"`
	City                    *string  `gorm:"size:255" json:"city"`
	Description             *string  `gorm:"type:text" json:"description"`
	HouseNumberOrOfficeName *string  `gorm:"size:255" json:"house_number_or_office_name"`
	Ward                    string   `gorm:"size:255;not null" json:"ward"`
	District                string   `gorm:"size:255;not null" json:"district"`
	Province                string   `gorm:"size:255;not null" json:"province"`
	Country                 string   `gorm:"size:100;default:Vietnam" json:"country"`
	CreatedAt               time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt               time.Time `gorm:"not null" json:"updated_at"`
}

func (Landmark) TableName() string { return "landmarks" }

// FullAddress concatenates the present address parts in display order. It is
// derived on read and never persisted.
func (l *Landmark) FullAddress() string {
	parts := make([]string, 0, 5)
	if l.HouseNumberOrOfficeName != nil && *l.HouseNumberOrOfficeName != "" {
		parts = append(parts, *l.HouseNumberOrOfficeName)
	}
	if l.Ward != "" {
		parts = append(parts, l.Ward)
	}
	if l.District != "" {
		parts = append(parts, l.District)
	}
	if l.Province != "" {
		parts = append(parts, l.Province)
	}
	if l.Country != "" {
		parts = append(parts, l.Country)
	}
	return strings.Join(parts, ", ")
}

// LandmarkWithAddress is the wire representation of a landmark: the stored row
// plus the derived full address.
type LandmarkWithAddress struct {
	Landmark
	FullAddress string `json:"fullAddress"`
}

func NewLandmarkWithAddress(l *Landmark) *LandmarkWithAddress {
	return &LandmarkWithAddress{Landmark: *l, FullAddress: l.FullAddress()}
}
