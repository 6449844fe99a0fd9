package model

import "time"

// displayLimit caps the post preview used in lists and logs.
const displayLimit = 15

// Post is the content unit: author text, optional group, optional image.
type Post struct {
	ID        uint   `gorm:"primaryKey"`
	Text      string `gorm:"type:text;not null"`
	AuthorID  uint   `gorm:"index:idx_post_author;not null"`
	Author    User
	GroupID   *uint `gorm:"index:idx_post_group"`
	Group     *Group
	Image     string    `gorm:"size:255"` // relative media path, e.g. posts/small.gif
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

func (Post) TableName() string { return "posts" }

// String returns the first 15 runes of the text.
func (p Post) String() string {
	r := []rune(p.Text)
	if len(r) <= displayLimit {
		return p.Text
	}
	return string(r[:displayLimit])
}
