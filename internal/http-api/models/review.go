package models

import "time"

// Review lives and dies with its parent anime; there is no standalone
// review resource. One per (anime, user), checked before insert.
type Review struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	AnimeID   int64     `json:"anime_id" gorm:"not null;index"`
	UserID    string    `json:"user_id" gorm:"type:uuid;not null;index"`
	Rating    int       `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Associations
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
}

func (Review) TableName() string {
	return "reviews"
}
