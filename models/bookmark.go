package models

import "time"

// EventBookmark is a user's saved reference to an event.
type EventBookmark struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"index;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user_id"`
	User   User `gorm:"foreignKey:UserID" json:"-"`

	EventID uint  `gorm:"index;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"event_id"`
	Event   Event `gorm:"foreignKey:EventID" json:"event,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
