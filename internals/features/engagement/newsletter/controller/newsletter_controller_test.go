package controller_test

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"globalhearts_backend/internals/features/engagement/newsletter/dto"
	route "globalhearts_backend/internals/features/engagement/newsletter/route"
	"globalhearts_backend/internals/features/engagement/service"
	"globalhearts_backend/internals/helpers/toast"
)

type envelope struct {
	Success bool                  `json:"success"`
	Message string                `json:"message"`
	Data    dto.SubscribeResponse `json:"data"`
}

func subscribe(t *testing.T, app *fiber.App, body string) (int, envelope) {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, "/api/public/newsletter/subscribe", strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req, 5000)
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	defer resp.Body.Close()
	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return resp.StatusCode, env
}

func newApp(delay time.Duration) *fiber.App {
	app := fiber.New()
	route.NewsletterPublicRoutes(app.Group("/api/public"), service.NewFormSimulator(delay))
	return app
}

func TestSubscribeSuccess(t *testing.T) {
	app := newApp(20 * time.Millisecond)

	start := time.Now()
	status, env := subscribe(t, app, `{"email":" amina@example.org "}`)
	if status != fiber.StatusOK || !env.Success {
		t.Fatalf("expected 200, got %d (%+v)", status, env)
	}
	if time.Since(start) < 20*time.Millisecond {
		t.Fatalf("expected the simulated delay to elapse")
	}
	if env.Data.Reference == "" {
		t.Fatalf("expected a reference id")
	}
	if len(env.Data.Toasts) != 1 || env.Data.Toasts[0].Title != "Successfully Subscribed!" ||
		env.Data.Toasts[0].Message != "Thank you for joining our newsletter." {
		t.Fatalf("unexpected toasts %+v", env.Data.Toasts)
	}
}

func TestSubscribeInvalidEmail(t *testing.T) {
	app := newApp(0)

	for _, body := range []string{`{"email":"not-an-email"}`, `{"email":""}`, ``} {
		status, env := subscribe(t, app, body)
		if status != fiber.StatusUnprocessableEntity || env.Success {
			t.Fatalf("body %q: expected 422, got %d", body, status)
		}
		if len(env.Data.Toasts) != 1 || env.Data.Toasts[0].Title != "Invalid Email" ||
			env.Data.Toasts[0].Severity != toast.SeverityDestructive {
			t.Fatalf("body %q: unexpected toasts %+v", body, env.Data.Toasts)
		}
		if env.Data.Reference != "" {
			t.Fatalf("body %q: no reference expected", body)
		}
	}
}
