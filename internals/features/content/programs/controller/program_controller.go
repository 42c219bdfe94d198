package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"globalhearts_backend/internals/features/content/programs/dto"
	"globalhearts_backend/internals/features/content/programs/model"
	helper "globalhearts_backend/internals/helpers"
)

type ProgramController struct {
	DB *gorm.DB
}

func NewProgramController(db *gorm.DB) *ProgramController {
	return &ProgramController{DB: db}
}

// GET /programs
func (ctrl *ProgramController) ListPrograms(c *fiber.Ctx) error {
	var rows []model.ProgramModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Order("program_sort_order ASC").
		Order("program_title ASC").
		Find(&rows).Error; err != nil {
		log.Printf("[ERROR] list programs: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve programs")
	}

	out := make([]dto.ProgramDTO, 0, len(rows))
	for _, p := range rows {
		out = append(out, dto.ToProgramDTO(p))
	}
	helper.SetPublicCache(c, 300)
	return helper.JsonOK(c, "ok", out)
}

// GET /programs/:slug
func (ctrl *ProgramController) GetProgramBySlug(c *fiber.Ctx) error {
	slug := strings.ToLower(strings.TrimSpace(c.Params("slug")))

	var p model.ProgramModel
	err := ctrl.DB.WithContext(c.UserContext()).Where("program_slug = ?", slug).Take(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Program not found")
	}
	if err != nil {
		log.Printf("[ERROR] get program %q: %v", slug, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve program")
	}

	helper.SetPublicCache(c, 300)
	return helper.JsonOK(c, "ok", dto.ToProgramDTO(p))
}
