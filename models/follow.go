package models

import "time"

// VendorFollow subscribes a user to a vendor's event notifications.
type VendorFollow struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"index;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user_id"`
	User   User `gorm:"foreignKey:UserID" json:"-"`

	VendorID uint   `gorm:"index;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"vendor_id"`
	Vendor   Vendor `gorm:"foreignKey:VendorID" json:"vendor,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
