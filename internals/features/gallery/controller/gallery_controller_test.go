package controller_test

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/chai2010/webp"
	"github.com/gofiber/fiber/v2"

	route "globalhearts_backend/internals/features/gallery/route"
	"globalhearts_backend/internals/features/gallery/service"
)

func newGalleryApp(t *testing.T) *fiber.App {
	t.Helper()
	dir := t.TempDir()

	img := image.NewNRGBA(image.Rect(0, 0, 200, 100))
	for x := 0; x < 200; x++ {
		for y := 0; y < 100; y++ {
			img.Set(x, y, color.NRGBA{R: uint8(x), G: 120, B: uint8(y), A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "health-outreach.png"), buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "broken.jpg"), []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}

	app := fiber.New()
	route.GalleryPublicRoutes(app.Group("/api/public"), service.NewGallery(dir), "/api/public/gallery")
	return app
}

func TestGalleryList(t *testing.T) {
	app := newGalleryApp(t)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/public/gallery", nil))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	var env struct {
		Data []struct {
			Name     string `json:"name"`
			ThumbURL string `json:"thumb_url"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatal(err)
	}
	if len(env.Data) != 2 || env.Data[0].Name != "broken.jpg" {
		t.Fatalf("unexpected listing %+v", env.Data)
	}
	if env.Data[1].ThumbURL != "/api/public/gallery/health-outreach.png/thumb" {
		t.Fatalf("unexpected thumb url %q", env.Data[1].ThumbURL)
	}
}

func TestGalleryThumbnail(t *testing.T) {
	app := newGalleryApp(t)

	cases := []struct {
		query string
		width int
	}{
		// default 480 never upscales a 200px source
		{"", 200},
		{"?w=100", 100},
		// below the minimum, clamped to 64
		{"?w=10", 64},
	}
	for _, tc := range cases {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/public/gallery/health-outreach.png/thumb"+tc.query, nil))
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != fiber.StatusOK || resp.Header.Get(fiber.HeaderContentType) != "image/webp" {
			t.Fatalf("%q: status %d type %q", tc.query, resp.StatusCode, resp.Header.Get(fiber.HeaderContentType))
		}
		cfg, err := webp.DecodeConfig(resp.Body)
		resp.Body.Close()
		if err != nil {
			t.Fatalf("%q: decode webp: %v", tc.query, err)
		}
		if cfg.Width != tc.width {
			t.Fatalf("%q: width %d, want %d", tc.query, cfg.Width, tc.width)
		}
	}
}

func TestGalleryErrors(t *testing.T) {
	app := newGalleryApp(t)

	cases := map[string]int{
		"/api/public/gallery/missing.png/thumb": fiber.StatusNotFound,
		"/api/public/gallery/broken.jpg/thumb":  fiber.StatusUnprocessableEntity,
		"/api/public/gallery/notes.txt":         fiber.StatusBadRequest,
	}
	for path, want := range cases {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, path, nil))
		if err != nil {
			t.Fatal(err)
		}
		resp.Body.Close()
		if resp.StatusCode != want {
			t.Fatalf("%s: status %d, want %d", path, resp.StatusCode, want)
		}
	}
}
