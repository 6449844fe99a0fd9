package model

import "time"

// Follow is a directed subscription edge: UserID follows AuthorID.
// idx_follow_pair = (user_id, author_id) keeps the edge unique so repeated
// follow requests stay idempotent.
type Follow struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"index:idx_follow_user;index:idx_follow_pair,unique;not null"`
	User      User
	AuthorID  uint `gorm:"not null;index:idx_follow_pair,unique"`
	Author    User
	CreatedAt time.Time
}

func (Follow) TableName() string { return "follows" }
