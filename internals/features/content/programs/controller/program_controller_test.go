package controller_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"globalhearts_backend/internals/features/content/programs/dto"
	"globalhearts_backend/internals/features/content/programs/model"
	route "globalhearts_backend/internals/features/content/programs/route"
	"globalhearts_backend/internals/seeds/content/programs"
)

func TestProgramRoutes(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&model.ProgramModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := programs.SeedProgramsFromJSON(db, "../../../../seeds/content/programs/data_programs.json"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	app := fiber.New()
	route.ProgramPublicRoutes(app.Group("/api/public"), db)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/public/programs", nil))
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("list status %d", resp.StatusCode)
	}
	if cc := resp.Header.Get(fiber.HeaderCacheControl); cc == "" {
		t.Fatalf("expected a public Cache-Control header")
	}
	var env struct {
		Data []dto.ProgramDTO `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	titles := []string{"Education Support", "Women Empowerment", "Health Outreach", "Environmental Conservation"}
	if len(env.Data) != len(titles) {
		t.Fatalf("expected %d programs, got %d", len(titles), len(env.Data))
	}
	for i, p := range env.Data {
		if p.ProgramTitle != titles[i] {
			t.Fatalf("program %d = %q, want %q", i, p.ProgramTitle, titles[i])
		}
	}
	if env.Data[1].ProgramColor != "secondary" || env.Data[2].ProgramImage != "health-outreach.jpg" {
		t.Fatalf("unexpected program fields %+v", env.Data)
	}

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/api/public/programs/unknown", nil))
	if err != nil {
		t.Fatalf("detail: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}
