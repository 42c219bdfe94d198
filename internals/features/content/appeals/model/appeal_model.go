package model

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PriceOption is one fixed-price choice of an appeal (e.g. Kurban: cow, goat, sheep).
type PriceOption struct {
	Key    string          `json:"key"`
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

type AppealModel struct {
	AppealID           uuid.UUID `gorm:"column:appeal_id;type:uuid;primaryKey" json:"appeal_id"`
	AppealSlug         string    `gorm:"column:appeal_slug;size:120;not null;uniqueIndex" json:"appeal_slug"`
	AppealName         string    `gorm:"column:appeal_name;size:160;not null" json:"appeal_name"`
	AppealDescription  string    `gorm:"column:appeal_description;type:text" json:"appeal_description"`
	AppealCategory     string    `gorm:"column:appeal_category;size:120;not null;index" json:"appeal_category"`
	AppealCategorySlug string    `gorm:"column:appeal_category_slug;size:120;not null" json:"appeal_category_slug"`

	// display text, e.g. "$1,100", "Any Amount", "$5 per copy"
	AppealAmountLabel string `gorm:"column:appeal_amount_label;size:120" json:"appeal_amount_label"`
	// pre-fills a donation session; null for "Any Amount" appeals
	AppealSuggestedAmount decimal.NullDecimal `gorm:"column:appeal_suggested_amount;type:numeric(12,2)" json:"appeal_suggested_amount"`
	AppealPriceOptions    datatypes.JSON      `gorm:"column:appeal_price_options" json:"appeal_price_options,omitempty"`

	AppealSortOrder int       `gorm:"column:appeal_sort_order;not null;default:0" json:"appeal_sort_order"`
	AppealCreatedAt time.Time `gorm:"column:appeal_created_at;autoCreateTime" json:"appeal_created_at"`
	AppealUpdatedAt time.Time `gorm:"column:appeal_updated_at;autoUpdateTime" json:"appeal_updated_at"`
}

func (AppealModel) TableName() string { return "appeals" }

func (a *AppealModel) BeforeCreate(*gorm.DB) error {
	if a.AppealID == uuid.Nil {
		a.AppealID = uuid.New()
	}
	return nil
}

// PriceOptions decodes the stored options; none is not an error.
func (a AppealModel) PriceOptions() ([]PriceOption, error) {
	if len(a.AppealPriceOptions) == 0 || string(a.AppealPriceOptions) == "null" {
		return nil, nil
	}
	var out []PriceOption
	if err := json.Unmarshal(a.AppealPriceOptions, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AmountFor returns the option's amount when option is set, else the suggested amount.
func (a AppealModel) AmountFor(option string) (*decimal.Decimal, bool, error) {
	option = strings.TrimSpace(strings.ToLower(option))
	if option == "" {
		if !a.AppealSuggestedAmount.Valid {
			return nil, true, nil
		}
		v := a.AppealSuggestedAmount.Decimal
		return &v, true, nil
	}
	opts, err := a.PriceOptions()
	if err != nil {
		return nil, false, err
	}
	for _, o := range opts {
		if o.Key == option {
			v := o.Amount
			return &v, true, nil
		}
	}
	return nil, false, nil
}
