package dto

import (
	"time"

	"globalhearts_backend/internals/features/content/news/model"
)

// NewsDisplayDate is how the site prints publish dates ("March 15, 2025").
const NewsDisplayDate = "January 2, 2006"

type NewsDTO struct {
	NewsID          string    `json:"news_id"`
	NewsSlug        string    `json:"news_slug"`
	NewsTitle       string    `json:"news_title"`
	NewsExcerpt     string    `json:"news_excerpt"`
	NewsCategory    string    `json:"news_category"`
	NewsImage       string    `json:"news_image"`
	NewsPublishedAt time.Time `json:"news_published_at"`
	NewsDate        string    `json:"news_date"`
}

func ToNewsDTO(n model.NewsModel) NewsDTO {
	return NewsDTO{
		NewsID:          n.NewsID.String(),
		NewsSlug:        n.NewsSlug,
		NewsTitle:       n.NewsTitle,
		NewsExcerpt:     n.NewsExcerpt,
		NewsCategory:    n.NewsCategory,
		NewsImage:       n.NewsImage,
		NewsPublishedAt: n.NewsPublishedAt,
		NewsDate:        n.NewsPublishedAt.Format(NewsDisplayDate),
	}
}
