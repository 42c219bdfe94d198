package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NewsModel struct {
	NewsID          uuid.UUID `gorm:"column:news_id;type:uuid;primaryKey" json:"news_id"`
	NewsSlug        string    `gorm:"column:news_slug;size:160;not null;uniqueIndex" json:"news_slug"`
	NewsTitle       string    `gorm:"column:news_title;size:200;not null" json:"news_title"`
	NewsExcerpt     string    `gorm:"column:news_excerpt;type:text" json:"news_excerpt"`
	NewsCategory    string    `gorm:"column:news_category;size:80" json:"news_category"`
	NewsImage       string    `gorm:"column:news_image;size:255" json:"news_image"`
	NewsPublishedAt time.Time `gorm:"column:news_published_at;not null;index" json:"news_published_at"`
	NewsCreatedAt   time.Time `gorm:"column:news_created_at;autoCreateTime" json:"news_created_at"`
}

func (NewsModel) TableName() string { return "news" }

func (n *NewsModel) BeforeCreate(*gorm.DB) error {
	if n.NewsID == uuid.Nil {
		n.NewsID = uuid.New()
	}
	return nil
}
