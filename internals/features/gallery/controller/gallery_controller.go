package controller

import (
	"errors"
	"log"
	"os"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"globalhearts_backend/internals/features/gallery/service"
	helper "globalhearts_backend/internals/helpers"
)

type GalleryController struct {
	Gallery *service.Gallery
	Base    string // public prefix, e.g. /api/public/gallery
}

func NewGalleryController(g *service.Gallery, base string) *GalleryController {
	return &GalleryController{Gallery: g, Base: base}
}

type imageView struct {
	service.Image
	URL      string `json:"url"`
	ThumbURL string `json:"thumb_url"`
}

// GET /gallery
func (ctrl *GalleryController) List(c *fiber.Ctx) error {
	images, err := ctrl.Gallery.List()
	if err != nil {
		log.Printf("[ERROR] gallery list: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to read gallery")
	}
	out := make([]imageView, 0, len(images))
	for _, im := range images {
		out = append(out, imageView{
			Image:    im,
			URL:      ctrl.Base + "/" + im.Name,
			ThumbURL: ctrl.Base + "/" + im.Name + "/thumb",
		})
	}
	helper.SetPublicCache(c, 300)
	return helper.JsonOK(c, "ok", out)
}

// GET /gallery/:name
func (ctrl *GalleryController) Original(c *fiber.Ctx) error {
	p, _, err := ctrl.Gallery.Path(c.Params("name"))
	if err != nil {
		return ctrl.fail(c, err)
	}
	helper.SetPublicCache(c, 86400)
	return c.SendFile(p)
}

// GET /gallery/:name/thumb?w=
func (ctrl *GalleryController) Thumbnail(c *fiber.Ctx) error {
	p, _, err := ctrl.Gallery.Path(c.Params("name"))
	if err != nil {
		return ctrl.fail(c, err)
	}
	w, _ := strconv.Atoi(c.Query("w"))
	w = helper.ClampThumbWidth(w)

	f, err := os.Open(p)
	if err != nil {
		return ctrl.fail(c, err)
	}
	defer f.Close()

	body, err := helper.ThumbnailWebP(f, w)
	if err != nil {
		log.Printf("[WARN] thumbnail %s w=%d: %v", c.Params("name"), w, err)
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Image could not be processed")
	}
	helper.SetPublicCache(c, 86400)
	c.Set(fiber.HeaderContentType, "image/webp")
	return c.Send(body)
}

func (ctrl *GalleryController) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrBadImageName):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrImageNotFound), errors.Is(err, os.ErrNotExist):
		return helper.JsonError(c, fiber.StatusNotFound, service.ErrImageNotFound.Error())
	}
	log.Printf("[ERROR] gallery %s: %v", c.Params("name"), err)
	return helper.JsonError(c, fiber.StatusInternalServerError, "")
}
