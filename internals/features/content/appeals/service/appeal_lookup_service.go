package service

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"globalhearts_backend/internals/features/content/appeals/model"
)

// AppealLookup feeds appeal amounts into new donation sessions.
type AppealLookup struct {
	DB *gorm.DB
}

func NewAppealLookup(db *gorm.DB) *AppealLookup {
	return &AppealLookup{DB: db}
}

func (l *AppealLookup) FindBySlug(ctx context.Context, slug string) (*model.AppealModel, error) {
	var a model.AppealModel
	err := l.DB.WithContext(ctx).
		Where("appeal_slug = ?", strings.ToLower(strings.TrimSpace(slug))).
		Take(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// SuggestedAmount accepts "slug" or "slug:option" (e.g. "kurban:goat").
// found is false for an unknown appeal or option; amount is nil for open-amount appeals.
func (l *AppealLookup) SuggestedAmount(ctx context.Context, ref string) (*decimal.Decimal, bool, error) {
	slug, option, _ := strings.Cut(ref, ":")
	a, err := l.FindBySlug(ctx, slug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return a.AmountFor(option)
}
