package models

import "time"

type Review struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Rating  int    `gorm:"not null" json:"rating"` // 1..5, validated at the route layer
	Comment string `gorm:"type:text" json:"comment,omitempty"`

	UserID uint `gorm:"index;not null;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user_id"`
	User   User `gorm:"foreignKey:UserID" json:"user,omitempty"`

	VendorID uint   `gorm:"index;not null;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"vendor_id"`
	Vendor   Vendor `gorm:"foreignKey:VendorID" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
