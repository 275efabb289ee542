package models

import "time"

type User struct {
	ID             uint    `gorm:"primaryKey" json:"id"`
	GoogleID       string  `gorm:"uniqueIndex;not null" json:"google_id"`
	Email          string  `gorm:"uniqueIndex;not null" json:"email"`
	Name           string  `gorm:"not null" json:"name"`
	ProfilePicture string  `json:"profile_picture"`
	Location       string  `json:"location"`
	IsVendor       bool    `gorm:"default:false" json:"is_vendor"`
	FCMToken       *string `json:"fcm_token,omitempty"`

	Vendor      *Vendor          `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"vendor,omitempty"`
	Preferences []UserPreference `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"preferences,omitempty"`
	Follows     []VendorFollow   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"follows,omitempty"`
	Bookmarks   []EventBookmark  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"bookmarks,omitempty"`
	Reviews     []Review         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"reviews,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
