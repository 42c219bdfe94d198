package controller_test

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"globalhearts_backend/internals/features/engagement/contact/dto"
	route "globalhearts_backend/internals/features/engagement/contact/route"
	"globalhearts_backend/internals/features/engagement/service"
)

type envelope struct {
	Success bool                `json:"success"`
	Data    dto.ContactResponse `json:"data"`
}

func send(t *testing.T, app *fiber.App, body string) (int, envelope) {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, "/api/public/contact", strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	defer resp.Body.Close()
	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return resp.StatusCode, env
}

func TestContactFlow(t *testing.T) {
	app := fiber.New()
	route.ContactPublicRoutes(app.Group("/api/public"), service.NewFormSimulator(0))

	cases := []struct {
		name   string
		body   string
		status int
		title  string
	}{
		{"ok", `{"name":"John Doe","email":"john@example.com","message":"I'd like to volunteer."}`, fiber.StatusOK, "Message Sent!"},
		{"missing message", `{"name":"John Doe","email":"john@example.com","message":"  "}`, fiber.StatusUnprocessableEntity, "Missing Information"},
		{"missing name and bad email", `{"email":"nope","message":"hi"}`, fiber.StatusUnprocessableEntity, "Missing Information"},
		{"bad email", `{"name":"John","email":"nope","message":"hi"}`, fiber.StatusUnprocessableEntity, "Invalid Email"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, env := send(t, app, tc.body)
			if status != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, status)
			}
			if len(env.Data.Toasts) != 1 || env.Data.Toasts[0].Title != tc.title {
				t.Fatalf("unexpected toasts %+v", env.Data.Toasts)
			}
			if (status == fiber.StatusOK) != (env.Data.Reference != "") {
				t.Fatalf("reference presence mismatch: %q", env.Data.Reference)
			}
		})
	}
}

func TestContactMessageFieldErrors(t *testing.T) {
	app := fiber.New()
	route.ContactPublicRoutes(app.Group("/api/public"), service.NewFormSimulator(0))

	_, env := send(t, app, `{"name":"John"}`)
	for _, field := range []string{"email", "message"} {
		if _, ok := env.Data.Errors[field]; !ok {
			t.Fatalf("expected an error for %q, got %v", field, env.Data.Errors)
		}
	}
}
