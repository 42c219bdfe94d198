package service_test

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"globalhearts_backend/internals/features/content/appeals/model"
	"globalhearts_backend/internals/features/content/appeals/service"
	"globalhearts_backend/internals/seeds/content/appeals"
)

func seededLookup(t *testing.T) *service.AppealLookup {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&model.AppealModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := appeals.SeedAppealsFromJSON(db, "../../../../seeds/content/appeals/data_appeals.json"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return service.NewAppealLookup(db)
}

func TestSuggestedAmount(t *testing.T) {
	l := seededLookup(t)
	ctx := context.Background()

	cases := []struct {
		ref   string
		want  string // "" means nil amount
		found bool
	}{
		{"provide-safe-water", "", false}, // a category, not an appeal
		{"waterwell-construction", "1100.00", true},
		{"Birthdays", "50.00", true},
		{"ramadan", "", true},
		{"kurban", "", true},
		{"kurban:goat", "75.00", true},
		{"kurban:Cow", "350.00", true},
		{"kurban:camel", "", false},
		{"healthcare-assistance", "200.00", true},
		{"nope", "", false},
	}
	for _, tc := range cases {
		amount, found, err := l.SuggestedAmount(ctx, tc.ref)
		if err != nil {
			t.Fatalf("%s: %v", tc.ref, err)
		}
		if found != tc.found {
			t.Fatalf("%s: found=%v, want %v", tc.ref, found, tc.found)
		}
		got := ""
		if amount != nil {
			got = amount.StringFixed(2)
		}
		if got != tc.want {
			t.Fatalf("%s: amount=%q, want %q", tc.ref, got, tc.want)
		}
	}
}
