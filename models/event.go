package models

import "time"

type Event struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	StartDate   time.Time `gorm:"not null;index" json:"startDate"`
	EndDate     time.Time `gorm:"not null" json:"endDate"`
	Venue       string    `json:"venue_name"`
	Location    string    `json:"location"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`

	IsFree        bool `gorm:"default:false" json:"isFree"`
	IsKidFriendly bool `gorm:"default:false" json:"isKidFriendly"`
	IsSober       bool `gorm:"default:false" json:"isSober"`

	ImageURL string `json:"image_url,omitempty"`

	VendorID uint   `gorm:"index;not null;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"vendor_id"`
	Vendor   Vendor `gorm:"foreignKey:VendorID" json:"vendor,omitempty"`

	Categories []EventCategory `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:"categories,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// EventCategory tags an event with one category.
type EventCategory struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	EventID    uint     `gorm:"index:idx_event_category,unique;not null" json:"event_id"`
	CategoryID uint     `gorm:"index:idx_event_category,unique;not null" json:"category_id"`
	Category   Category `gorm:"foreignKey:CategoryID" json:"category"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
