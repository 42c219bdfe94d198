package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"globalhearts_backend/internals/features/content/news/dto"
	"globalhearts_backend/internals/features/content/news/model"
	helper "globalhearts_backend/internals/helpers"
)

const (
	newsDefaultPerPage = 10
	newsMaxPerPage     = 50
)

type NewsController struct {
	DB *gorm.DB
}

func NewNewsController(db *gorm.DB) *NewsController {
	return &NewsController{DB: db}
}

// GET /news?page=&per_page=&category=
// Newest first.
func (ctrl *NewsController) ListNews(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, newsDefaultPerPage, newsMaxPerPage)

	cat := strings.TrimSpace(c.Query("category"))
	base := func() *gorm.DB {
		q := ctrl.DB.WithContext(c.UserContext()).Model(&model.NewsModel{})
		if cat != "" {
			q = q.Where("LOWER(news_category) = LOWER(?)", cat)
		}
		return q
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		log.Printf("[ERROR] count news: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve news")
	}

	var rows []model.NewsModel
	if err := base().Order("news_published_at DESC").
		Order("news_slug ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		log.Printf("[ERROR] list news: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve news")
	}

	out := make([]dto.NewsDTO, 0, len(rows))
	for _, n := range rows {
		out = append(out, dto.ToNewsDTO(n))
	}
	helper.SetPublicCache(c, 60)
	return helper.JsonList(c, "ok", out, helper.BuildPagination(total, p, len(out)))
}

// GET /news/:slug
func (ctrl *NewsController) GetNewsBySlug(c *fiber.Ctx) error {
	slug := strings.ToLower(strings.TrimSpace(c.Params("slug")))

	var n model.NewsModel
	err := ctrl.DB.WithContext(c.UserContext()).Where("news_slug = ?", slug).Take(&n).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "News not found")
	}
	if err != nil {
		log.Printf("[ERROR] get news %q: %v", slug, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve news")
	}

	helper.SetPublicCache(c, 60)
	return helper.JsonOK(c, "ok", dto.ToNewsDTO(n))
}
