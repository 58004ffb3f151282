package models

import "time"

// Notification types emitted by the core write paths.
const (
	NotificationTypeReview = "review"
	NotificationTypeFollow = "follow"
)

type Notification struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	RecipientID string    `gorm:"type:uuid;not null;index" json:"recipient_id"`
	SenderID    string    `gorm:"type:uuid;not null" json:"sender_id"`
	Type        string    `gorm:"not null" json:"type"` // review, follow
	Message     string    `json:"message"`
	Link        string    `json:"link"` // deep-link path, e.g. /anime/42
	Read        bool      `gorm:"default:false" json:"read"`
	CreatedAt   time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`

	// Associations
	Recipient *User `gorm:"foreignKey:RecipientID" json:"recipient,omitempty"`
	Sender    *User `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
}

func (Notification) TableName() string {
	return "notifications"
}
