package models

import "time"

type Vendor struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	BusinessName string `gorm:"uniqueIndex;not null" json:"business_name"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	Description  string `gorm:"type:text" json:"description"`
	Facebook     string `json:"facebook,omitempty"`
	Instagram    string `json:"instagram,omitempty"`
	Website      string `json:"website,omitempty"`

	UserID uint `gorm:"uniqueIndex;not null;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user_id"`
	User   User `gorm:"foreignKey:UserID" json:"-"`

	Events  []Event  `gorm:"foreignKey:VendorID;constraint:OnDelete:CASCADE" json:"events,omitempty"`
	Reviews []Review `gorm:"foreignKey:VendorID;constraint:OnDelete:CASCADE" json:"reviews,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
