package model

import "time"

// NewsModel is the GORM model for the news table. The author relationship is
// an explicit foreign-key column, not a preloaded association.
type NewsModel struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Title     string    `gorm:"column:title;size:512;not null;index"`
	Content   string    `gorm:"column:content;type:text;not null"`
	AuthorID  int64     `gorm:"column:author_id;not null;index"`
	IsPublic  bool      `gorm:"column:is_public;not null;default:true"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// TableName overrides the default GORM table name.
func (NewsModel) TableName() string {
	return "news"
}
