package news

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"globalhearts_backend/internals/features/content/news/model"
	helper "globalhearts_backend/internals/helpers"
)

type NewsSeed struct {
	Title       string `json:"title"`
	Category    string `json:"category"`
	PublishedAt string `json:"published_at"` // YYYY-MM-DD
	Excerpt     string `json:"excerpt"`
	Image       string `json:"image"`
}

func SeedNewsFromJSON(db *gorm.DB, filePath string) error {
	log.Println("📥 Reading file:", filePath)

	content, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("read %s: %w", filePath, err)
	}
	var data []NewsSeed
	if err := json.Unmarshal(content, &data); err != nil {
		return fmt.Errorf("decode %s: %w", filePath, err)
	}

	seen := map[string]int{}
	rows := make([]model.NewsModel, 0, len(data))
	for _, item := range data {
		published, err := time.Parse(time.DateOnly, item.PublishedAt)
		if err != nil {
			return fmt.Errorf("news %q: bad published_at %q: %w", item.Title, item.PublishedAt, err)
		}
		rows = append(rows, model.NewsModel{
			NewsSlug:        helper.DedupeSlug(helper.Slugify(item.Title, 160), seen),
			NewsTitle:       item.Title,
			NewsExcerpt:     item.Excerpt,
			NewsCategory:    item.Category,
			NewsImage:       item.Image,
			NewsPublishedAt: published,
		})
	}
	if len(rows) == 0 {
		return nil
	}

	res := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "news_slug"}},
		DoNothing: true,
	}).Create(&rows)
	if res.Error != nil {
		return fmt.Errorf("insert news: %w", res.Error)
	}
	log.Printf("✅ News seeded: %d new of %d", res.RowsAffected, len(rows))
	return nil
}
