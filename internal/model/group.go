package model

import "time"

// Group is a named category that posts may belong to. The slug is the URL
// identifier and must not change once published.
type Group struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"size:200;not null"`
	Slug        string `gorm:"uniqueIndex;size:100;not null"`
	Description string `gorm:"type:text"`
	CreatedAt   time.Time
}

func (Group) TableName() string { return "groups" }

func (g Group) String() string { return g.Title }
