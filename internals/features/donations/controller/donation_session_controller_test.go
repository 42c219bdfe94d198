package controller_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	donationController "globalhearts_backend/internals/features/donations/controller"
	"globalhearts_backend/internals/features/donations/dto"
	route "globalhearts_backend/internals/features/donations/routes"
	"globalhearts_backend/internals/features/donations/service"
	helper "globalhearts_backend/internals/helpers"
)

type stubAppeals map[string]decimal.Decimal

func (s stubAppeals) SuggestedAmount(_ context.Context, slug string) (*decimal.Decimal, bool, error) {
	v, ok := s[slug]
	if !ok {
		return nil, false, nil
	}
	return &v, true, nil
}

var _ donationController.AppealLookup = stubAppeals{}

type envelope struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	ErrorCode string          `json:"error_code"`
	Data      json.RawMessage `json:"data"`
}

func newTestApp(t *testing.T) (*fiber.App, *service.Runtime) {
	t.Helper()
	rt := &service.Runtime{
		Store: service.NewSessionStore(service.SessionConfig{
			Rules:      service.ValidationRules{RequirePolicy: true},
			Dispatcher: &service.SimulatedDispatcher{Review: service.DefaultReviewPolicy()},
		}, time.Minute),
		Tokens:      service.NewReceiptTokens("controller-test", time.Minute),
		Org:         service.DefaultOrganization(),
		Bank:        service.DefaultBankDetails(),
		WaitTimeout: 2 * time.Second,
	}
	app := fiber.New(fiber.Config{ErrorHandler: helper.FiberErrorHandler})
	route.AllDonationRoutes(app.Group("/api/public/donations"), rt, stubAppeals{
		"provide-safe-water": decimal.NewFromInt(250),
	})
	return app, rt
}

func call(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, envelope) {
	t.Helper()
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rdr)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, 5000)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	var env envelope
	if strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
			t.Fatalf("decode %s %s: %v", method, path, err)
		}
	}
	return resp, env
}

func sessionOf(t *testing.T, env envelope) dto.SessionView {
	t.Helper()
	var v dto.SessionView
	if err := json.Unmarshal(env.Data, &v); err != nil {
		t.Fatalf("decode session: %v (%s)", err, env.Data)
	}
	return v
}

const base = "/api/public/donations"

func TestDonationFlowEndToEnd(t *testing.T) {
	app, _ := newTestApp(t)

	resp, env := call(t, app, "POST", base+"/sessions", fiber.Map{"amount": 50})
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("create: status %d", resp.StatusCode)
	}
	sess := sessionOf(t, env)
	if sess.Phase != "selecting" || *sess.Draft.PresetAmount != "50.00" {
		t.Fatalf("unexpected session %+v", sess)
	}
	path := base + "/sessions/" + sess.ID

	if resp, _ := call(t, app, "POST", path+"/method", fiber.Map{"method": "card"}); resp.StatusCode != fiber.StatusOK {
		t.Fatalf("method: status %d", resp.StatusCode)
	}

	resp, env = call(t, app, "PATCH", path+"/draft", fiber.Map{
		"cover_fees":      true,
		"first_name":      "Amina",
		"last_name":       "Nakato",
		"email":           "amina@example.org",
		"accepted_policy": true,
		"card":            fiber.Map{"number": "4242424242424242", "expiry": "1227", "cvv": "123"},
	})
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("draft: status %d", resp.StatusCode)
	}
	sess = sessionOf(t, env)
	if sess.Draft.FinalAmount != "51.50" || sess.Draft.Payment.CardLastFour != "4242" {
		t.Fatalf("unexpected draft %+v", sess.Draft)
	}
	if bytes.Contains(env.Data, []byte("4242 4242")) {
		t.Fatalf("full card number echoed: %s", env.Data)
	}

	if resp, _ := call(t, app, "POST", path+"/submit", nil); resp.StatusCode != fiber.StatusAccepted {
		t.Fatalf("submit: status %d", resp.StatusCode)
	}

	resp, env = call(t, app, "GET", path+"?wait=true", nil)
	sess = sessionOf(t, env)
	if sess.Phase != "confirmation" || sess.Transaction == nil {
		t.Fatalf("expected confirmation, got %+v", sess)
	}
	if sess.Transaction.FinalAmount != "51.50" || !service.TransactionIDPattern.MatchString(sess.Transaction.TransactionID) {
		t.Fatalf("unexpected transaction %+v", sess.Transaction)
	}
	if sess.ReceiptURL == "" {
		t.Fatalf("expected receipt url")
	}

	resp, _ = call(t, app, "GET", sess.ReceiptURL, nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("receipt: status %d", resp.StatusCode)
	}
	if cd := resp.Header.Get("Content-Disposition"); !strings.Contains(cd, "donation-receipt-"+sess.Transaction.TransactionID+".txt") {
		t.Fatalf("unexpected disposition %q", cd)
	}
	text, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(text), "Amount: $51.50") {
		t.Fatalf("unexpected receipt:\n%s", text)
	}

	// after close the old link must not resolve
	if resp, _ := call(t, app, "POST", path+"/close", nil); resp.StatusCode != fiber.StatusOK {
		t.Fatalf("close: status %d", resp.StatusCode)
	}
	if resp, _ := call(t, app, "GET", sess.ReceiptURL, nil); resp.StatusCode != fiber.StatusGone {
		t.Fatalf("expected 410 for stale receipt, got %d", resp.StatusCode)
	}
}

func TestSubmitValidationFailure(t *testing.T) {
	app, _ := newTestApp(t)
	_, env := call(t, app, "POST", base+"/sessions", nil)
	path := base + "/sessions/" + sessionOf(t, env).ID

	call(t, app, "POST", path+"/method", fiber.Map{"method": "bank_transfer"})
	call(t, app, "PATCH", path+"/draft", fiber.Map{"custom_amount": "abc", "first_name": "Amina"})

	resp, env := call(t, app, "POST", path+"/submit", nil)
	if resp.StatusCode != fiber.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.StatusCode)
	}
	var data struct {
		Kind    string          `json:"kind"`
		Session dto.SessionView `json:"session"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if data.Kind != string(service.KindInvalidAmount) || data.Session.Phase != "form_entry" {
		t.Fatalf("unexpected failure payload %+v", data)
	}
	if len(data.Session.Toasts) != 1 || data.Session.Toasts[0].Severity != "destructive" {
		t.Fatalf("expected destructive toast, got %+v", data.Session.Toasts)
	}
}

func TestTransitionErrors(t *testing.T) {
	app, _ := newTestApp(t)

	if resp, _ := call(t, app, "GET", base+"/sessions/not-a-uuid", nil); resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}

	_, env := call(t, app, "POST", base+"/sessions", nil)
	path := base + "/sessions/" + sessionOf(t, env).ID

	if resp, _ := call(t, app, "POST", path+"/submit", nil); resp.StatusCode != fiber.StatusConflict {
		t.Fatalf("expected 409 submitting from selecting, got %d", resp.StatusCode)
	}
	if resp, _ := call(t, app, "POST", path+"/method", fiber.Map{"method": "paypal"}); resp.StatusCode != fiber.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for unknown method, got %d", resp.StatusCode)
	}
	call(t, app, "POST", path+"/method", fiber.Map{"method": "bank_transfer"})
	resp, _ := call(t, app, "PATCH", path+"/draft", fiber.Map{"card": fiber.Map{"number": "4242"}})
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for card input on bank transfer, got %d", resp.StatusCode)
	}

	if resp, _ := call(t, app, "DELETE", path, nil); resp.StatusCode != fiber.StatusOK {
		t.Fatalf("delete: %d", resp.StatusCode)
	}
	if resp, _ := call(t, app, "GET", path, nil); resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", resp.StatusCode)
	}
}

func TestCreateFromAppeal(t *testing.T) {
	app, _ := newTestApp(t)

	resp, env := call(t, app, "POST", base+"/sessions", fiber.Map{"appeal_slug": "provide-safe-water"})
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("create: %d", resp.StatusCode)
	}
	if s := sessionOf(t, env); s.Draft.BaseAmount != "250.00" {
		t.Fatalf("expected appeal amount, got %s", s.Draft.BaseAmount)
	}
	if resp, _ := call(t, app, "POST", base+"/sessions", fiber.Map{"appeal_slug": "nope"}); resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for unknown appeal, got %d", resp.StatusCode)
	}
	if resp, _ := call(t, app, "POST", base+"/sessions", fiber.Map{"amount": -5}); resp.StatusCode != fiber.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for negative amount, got %d", resp.StatusCode)
	}
}

func TestOptionsEndpoint(t *testing.T) {
	app, _ := newTestApp(t)
	resp, env := call(t, app, "GET", base+"/options", nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("options: %d", resp.StatusCode)
	}
	var opts dto.OptionsView
	if err := json.Unmarshal(env.Data, &opts); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if opts.BankDetails.SwiftCode != "SBICUGKX" || !opts.RequirePolicy {
		t.Fatalf("unexpected options %+v", opts)
	}
}
