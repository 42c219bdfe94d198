package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"globalhearts_backend/internals/features/content/appeals/dto"
	"globalhearts_backend/internals/features/content/appeals/model"
	"globalhearts_backend/internals/features/content/appeals/service"
	helper "globalhearts_backend/internals/helpers"
)

type AppealController struct {
	DB     *gorm.DB
	Lookup *service.AppealLookup
}

func NewAppealController(db *gorm.DB) *AppealController {
	return &AppealController{DB: db, Lookup: service.NewAppealLookup(db)}
}

// ======================
// GET /appeals[?category=]
// ======================
func (ctrl *AppealController) ListAppeals(c *fiber.Ctx) error {
	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.AppealModel{})
	if cat := strings.ToLower(strings.TrimSpace(c.Query("category"))); cat != "" {
		q = q.Where("appeal_category_slug = ?", cat)
	}

	var rows []model.AppealModel
	if err := q.Order("appeal_sort_order ASC").Order("appeal_name ASC").Find(&rows).Error; err != nil {
		log.Printf("[ERROR] list appeals: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve appeals")
	}

	helper.SetPublicCache(c, 300)
	return helper.JsonOK(c, "ok", dto.GroupByCategory(rows))
}

// ======================
// GET /appeals/:slug
// ======================
func (ctrl *AppealController) GetAppealBySlug(c *fiber.Ctx) error {
	a, err := ctrl.Lookup.FindBySlug(c.UserContext(), c.Params("slug"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Appeal not found")
	}
	if err != nil {
		log.Printf("[ERROR] get appeal %q: %v", c.Params("slug"), err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve appeal")
	}

	helper.SetPublicCache(c, 300)
	return helper.JsonOK(c, "ok", dto.ToAppealDTO(*a))
}
