package seeds

import (
	"fmt"
	"log"
	"path/filepath"

	"gorm.io/gorm"

	"globalhearts_backend/internals/seeds/content/appeals"
	"globalhearts_backend/internals/seeds/content/news"
	"globalhearts_backend/internals/seeds/content/programs"
)

// DefaultSeedDir is relative to the repo root.
const DefaultSeedDir = "internals/seeds/content"

// RunAllSeeds is idempotent: existing slugs are left untouched.
func RunAllSeeds(db *gorm.DB, dir string) error {
	if dir == "" {
		dir = DefaultSeedDir
	}

	steps := []struct {
		name string
		run  func(*gorm.DB, string) error
		file string
	}{
		{"appeals", appeals.SeedAppealsFromJSON, "appeals/data_appeals.json"},
		{"programs", programs.SeedProgramsFromJSON, "programs/data_programs.json"},
		{"news", news.SeedNewsFromJSON, "news/data_news.json"},
	}
	for _, s := range steps {
		if err := s.run(db, filepath.Join(dir, s.file)); err != nil {
			return fmt.Errorf("seed %s: %w", s.name, err)
		}
	}
	log.Println("[INFO] 🌱 seeds done")
	return nil
}
