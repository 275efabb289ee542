package models

import "time"

// UserPreference marks a category a user wants in their feed.
type UserPreference struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"index:idx_user_pref,unique;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user_id"`
	User   User `gorm:"foreignKey:UserID" json:"-"`

	CategoryID uint     `gorm:"index:idx_user_pref,unique;not null" json:"category_id"`
	Category   Category `gorm:"foreignKey:CategoryID" json:"category"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
