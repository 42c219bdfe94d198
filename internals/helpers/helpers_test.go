package helper

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/chai2010/webp"
	"github.com/gofiber/fiber/v2"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Provide Safe Water":         "provide-safe-water",
		"  Kurban / Qurbani 2025 ":   "kurban-qurbani-2025",
		"Café Éducation":             "cafe-education",
		"!!!":                        "item",
		"Build Mosques & Shelters":   "build-mosques-shelters",
	}
	for in, want := range cases {
		if got := Slugify(in, 0); got != want {
			t.Fatalf("Slugify(%q) = %q, want %q", in, got, want)
		}
	}
	if got := Slugify("abcdef-ghij", 7); got != "abcdef" {
		t.Fatalf("expected trimmed cut, got %q", got)
	}
}

func TestEmailFingerprint(t *testing.T) {
	a := EmailFingerprint("Amina@Example.org ")
	b := EmailFingerprint("amina@example.org")
	if a != b || len(a) != 16 {
		t.Fatalf("expected stable 16-char fingerprint, got %q and %q", a, b)
	}
	if EmailFingerprint("") != "-" {
		t.Fatalf("expected placeholder for empty email")
	}
}

func TestClampThumbWidth(t *testing.T) {
	cases := map[int]int{0: 480, -5: 480, 10: 64, 500: 500, 5000: 1600}
	for in, want := range cases {
		if got := ClampThumbWidth(in); got != want {
			t.Fatalf("ClampThumbWidth(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestThumbnailWebP(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 200, 100))
	for x := 0; x < 200; x++ {
		for y := 0; y < 100; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 120, A: 255})
		}
	}
	var src bytes.Buffer
	if err := png.Encode(&src, img); err != nil {
		t.Fatalf("png: %v", err)
	}

	out, err := ThumbnailWebP(&src, 100)
	if err != nil {
		t.Fatalf("thumbnail: %v", err)
	}
	cfg, err := webp.DecodeConfig(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("decode webp: %v", err)
	}
	if cfg.Width != 100 || cfg.Height != 50 {
		t.Fatalf("expected 100x50, got %dx%d", cfg.Width, cfg.Height)
	}

	if _, err := ThumbnailWebP(bytes.NewReader([]byte("not an image")), 100); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestJsonErrorWithData(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return JsonErrorWithData(c, fiber.StatusGone, "", fiber.Map{"x": 1})
	})
	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != fiber.StatusGone {
		t.Fatalf("expected 410, got %d", resp.StatusCode)
	}
	if !bytes.Contains(body, []byte(`"error_code":"GONE"`)) || !bytes.Contains(body, []byte(`"data":{"x":1}`)) {
		t.Fatalf("unexpected body %s", body)
	}
}

func TestFieldErrorsUsesJSONNames(t *testing.T) {
	type input struct {
		Email string `json:"email" validate:"required,email"`
	}
	err := NewValidator().Struct(input{Email: "nope"})
	fe := FieldErrors(err)
	if msgs := fe["email"]; len(msgs) != 1 || msgs[0] != "must be a valid email address" {
		t.Fatalf("unexpected field errors %#v", fe)
	}
}

func TestDedupeSlug(t *testing.T) {
	seen := map[string]int{}
	got := []string{
		DedupeSlug("shelters", seen),
		DedupeSlug("zakat", seen),
		DedupeSlug("shelters", seen),
		DedupeSlug("shelters", seen),
	}
	want := []string{"shelters", "zakat", "shelters-2", "shelters-3"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("slug %d = %q, want %q", i, got[i], want[i])
		}
	}
}
