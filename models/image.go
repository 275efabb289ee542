package models

import "time"

// Image points into external cloud storage. Exactly one of UserID,
// VendorID, EventID is set.
type Image struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	PublicID     string `gorm:"not null" json:"public_id"`
	ReferenceURL string `gorm:"not null" json:"reference_url"`

	UserID   *uint `gorm:"index" json:"user_id,omitempty"`
	VendorID *uint `gorm:"index" json:"vendor_id,omitempty"`
	EventID  *uint `gorm:"index" json:"event_id,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
