package dto

import (
	"log"

	"github.com/shopspring/decimal"

	"globalhearts_backend/internals/features/content/appeals/model"
)

// ====================
// Response DTO
// ====================

type AppealDTO struct {
	AppealID          string              `json:"appeal_id"`
	AppealSlug        string              `json:"appeal_slug"`
	AppealName        string              `json:"appeal_name"`
	AppealDescription string              `json:"appeal_description"`
	AppealAmountLabel string              `json:"appeal_amount_label"`
	SuggestedAmount   *decimal.Decimal    `json:"suggested_amount"`
	PriceOptions      []model.PriceOption `json:"price_options,omitempty"`
}

type AppealCategoryDTO struct {
	Category     string      `json:"category"`
	CategorySlug string      `json:"category_slug"`
	Appeals      []AppealDTO `json:"appeals"`
}

// ====================
// Converter
// ====================

func ToAppealDTO(a model.AppealModel) AppealDTO {
	out := AppealDTO{
		AppealID:          a.AppealID.String(),
		AppealSlug:        a.AppealSlug,
		AppealName:        a.AppealName,
		AppealDescription: a.AppealDescription,
		AppealAmountLabel: a.AppealAmountLabel,
	}
	if a.AppealSuggestedAmount.Valid {
		v := a.AppealSuggestedAmount.Decimal
		out.SuggestedAmount = &v
	}
	opts, err := a.PriceOptions()
	if err != nil {
		log.Printf("[WARN] appeal %s has unreadable price options: %v", a.AppealSlug, err)
	}
	out.PriceOptions = opts
	return out
}

// GroupByCategory keeps the order rows arrive in (category order, then appeal order).
func GroupByCategory(rows []model.AppealModel) []AppealCategoryDTO {
	out := make([]AppealCategoryDTO, 0)
	index := map[string]int{}
	for _, a := range rows {
		i, ok := index[a.AppealCategorySlug]
		if !ok {
			i = len(out)
			index[a.AppealCategorySlug] = i
			out = append(out, AppealCategoryDTO{
				Category:     a.AppealCategory,
				CategorySlug: a.AppealCategorySlug,
				Appeals:      []AppealDTO{},
			})
		}
		out[i].Appeals = append(out[i].Appeals, ToAppealDTO(a))
	}
	return out
}
