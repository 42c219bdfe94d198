package programs

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"globalhearts_backend/internals/features/content/programs/model"
	helper "globalhearts_backend/internals/helpers"
)

type ProgramSeed struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Color       string   `json:"color"`
	Tags        []string `json:"tags"`
}

func SeedProgramsFromJSON(db *gorm.DB, filePath string) error {
	log.Println("📥 Reading file:", filePath)

	content, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("read %s: %w", filePath, err)
	}
	var data []ProgramSeed
	if err := json.Unmarshal(content, &data); err != nil {
		return fmt.Errorf("decode %s: %w", filePath, err)
	}

	seen := map[string]int{}
	rows := make([]model.ProgramModel, 0, len(data))
	for i, item := range data {
		rows = append(rows, model.ProgramModel{
			ProgramSlug:        helper.DedupeSlug(helper.Slugify(item.Title, 120), seen),
			ProgramTitle:       item.Title,
			ProgramDescription: item.Description,
			ProgramImage:       item.Image,
			ProgramColor:       item.Color,
			ProgramTags:        model.ProgramTags(item.Tags),
			ProgramSortOrder:   i,
		})
	}
	if len(rows) == 0 {
		return nil
	}

	res := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "program_slug"}},
		DoNothing: true,
	}).Create(&rows)
	if res.Error != nil {
		return fmt.Errorf("insert programs: %w", res.Error)
	}
	log.Printf("✅ Programs seeded: %d new of %d", res.RowsAffected, len(rows))
	return nil
}
