package model

import "time"

type Comment struct {
	ID        uint   `gorm:"primaryKey"`
	PostID    uint   `gorm:"index:idx_comment_post;not null"`
	Post      Post   `gorm:"constraint:OnDelete:CASCADE"`
	AuthorID  uint   `gorm:"not null"`
	Author    User
	Text      string `gorm:"type:text;not null"`
	CreatedAt time.Time
}

func (Comment) TableName() string { return "comments" }
