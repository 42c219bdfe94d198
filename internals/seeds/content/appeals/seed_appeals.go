package appeals

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"globalhearts_backend/internals/features/content/appeals/model"
	helper "globalhearts_backend/internals/helpers"
)

type AppealSeed struct {
	Category        string              `json:"category"`
	Name            string              `json:"name"`
	Description     string              `json:"description"`
	AmountLabel     string              `json:"amount_label"`
	SuggestedAmount decimal.NullDecimal `json:"suggested_amount"`
	PriceOptions    []model.PriceOption `json:"price_options,omitempty"`
}

// SeedAppealsFromJSON inserts appeals in file order; rows whose slug already exists are skipped.
func SeedAppealsFromJSON(db *gorm.DB, filePath string) error {
	log.Println("📥 Reading file:", filePath)

	content, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("read %s: %w", filePath, err)
	}
	var data []AppealSeed
	if err := json.Unmarshal(content, &data); err != nil {
		return fmt.Errorf("decode %s: %w", filePath, err)
	}

	seen := map[string]int{}
	rows := make([]model.AppealModel, 0, len(data))
	for i, item := range data {
		row := model.AppealModel{
			AppealSlug:            helper.DedupeSlug(helper.Slugify(item.Name, 120), seen),
			AppealName:            item.Name,
			AppealDescription:     item.Description,
			AppealCategory:        item.Category,
			AppealCategorySlug:    helper.Slugify(item.Category, 120),
			AppealAmountLabel:     item.AmountLabel,
			AppealSuggestedAmount: item.SuggestedAmount,
			AppealSortOrder:       i,
		}
		if len(item.PriceOptions) > 0 {
			raw, err := json.Marshal(item.PriceOptions)
			if err != nil {
				return fmt.Errorf("encode price options for %q: %w", item.Name, err)
			}
			row.AppealPriceOptions = datatypes.JSON(raw)
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil
	}

	res := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "appeal_slug"}},
		DoNothing: true,
	}).Create(&rows)
	if res.Error != nil {
		return fmt.Errorf("insert appeals: %w", res.Error)
	}
	log.Printf("✅ Appeals seeded: %d new of %d", res.RowsAffected, len(rows))
	return nil
}
