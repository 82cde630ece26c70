package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	apphttp "driveline/internal/http"
	"driveline/internal/repos"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	db, err := repos.OpenDB(":memory:", false)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return apphttp.NewApp(db)
}

func jsonReq(method, target string, body any) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return req
}

func decode(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func signup(t *testing.T, app *fiber.App, email, role string) string {
	t.Helper()
	resp, err := app.Test(jsonReq("POST", "/api/auth/signup", fiber.Map{
		"email": email, "password": "longenough", "name": "Test User", "role": role,
	}), -1)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("signup %s: status %d", email, resp.StatusCode)
	}
	var sess struct {
		Token string `json:"token"`
	}
	decode(t, resp, &sess)
	if sess.Token == "" {
		t.Fatal("signup returned no token")
	}
	return sess.Token
}

func TestHealthz(t *testing.T) {
	app := newTestApp(t)
	resp, err := app.Test(httptest.NewRequest("GET", "/healthz", nil), -1)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("healthz status %d", resp.StatusCode)
	}
}

func TestMissingCustomerIsNotFoundNotInternal(t *testing.T) {
	app := newTestApp(t)

	for _, tc := range []struct{ method, target string }{
		{"GET", "/api/customer/999"},
		{"DELETE", "/api/customer/999"},
		{"GET", "/api/vehicle/999"},
		{"GET", "/api/order/999"},
	} {
		resp, err := app.Test(httptest.NewRequest(tc.method, tc.target, nil), -1)
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("%s %s: want 404, got %d", tc.method, tc.target, resp.StatusCode)
		}
		var body struct {
			Error string `json:"error"`
		}
		decode(t, resp, &body)
		if body.Error == "" {
			t.Errorf("%s %s: missing error message", tc.method, tc.target)
		}
	}
}

func TestAuthFailureUsesMessageShape(t *testing.T) {
	app := newTestApp(t)
	resp, err := app.Test(jsonReq("POST", "/api/auth/login", fiber.Map{
		"email": "nobody@example.com", "password": "whatever1",
	}), -1)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("want 401, got %d", resp.StatusCode)
	}
	var body struct {
		Message string `json:"message"`
	}
	decode(t, resp, &body)
	if body.Message != "invalid email or password" {
		t.Fatalf("login failure message %q should not say which field was wrong", body.Message)
	}
}

func TestVehicleMutationsRequireAdmin(t *testing.T) {
	app := newTestApp(t)
	payload := fiber.Map{"name": "2022 Kia EV6", "price": "$41,000.00", "categoryName": "EV"}

	// No token
	resp, err := app.Test(jsonReq("POST", "/api/vehicle/", payload), -1)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("anonymous create: want 401, got %d", resp.StatusCode)
	}

	// Customer token
	custTok := signup(t, app, "cust@example.com", "customer")
	req := jsonReq("POST", "/api/vehicle/", payload)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+custTok)
	resp, err = app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("customer create: want 403, got %d", resp.StatusCode)
	}

	// Admin token
	adminTok := signup(t, app, "admin@example.com", "admin")
	req = jsonReq("POST", "/api/vehicle/", payload)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+adminTok)
	resp, err = app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("admin create: want 201, got %d", resp.StatusCode)
	}
	var created struct {
		ID int64 `json:"id"`
	}
	decode(t, resp, &created)
	if created.ID == 0 {
		t.Fatal("created vehicle has no id")
	}

	// The created vehicle is publicly readable without a token.
	resp, err = app.Test(httptest.NewRequest("GET", fmt.Sprintf("/api/vehicle/%d", created.ID), nil), -1)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("public read: want 200, got %d", resp.StatusCode)
	}
}

func TestCustomerCRUDOverHTTP(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(jsonReq("POST", "/api/customer/", fiber.Map{
		"firstname": "Ada", "lastname": "Okoye", "email": "ada@example.com",
	}), -1)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create: want 201, got %d", resp.StatusCode)
	}
	var created struct {
		ID int64 `json:"id"`
	}
	decode(t, resp, &created)

	target := fmt.Sprintf("/api/customer/%d", created.ID)
	resp, err = app.Test(jsonReq("PUT", target, fiber.Map{
		"firstname": "Ada", "lastname": "Okoye-Smith", "email": "ada@example.com",
	}), -1)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update: want 200, got %d", resp.StatusCode)
	}

	resp, err = app.Test(httptest.NewRequest("DELETE", target, nil), -1)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		t.Fatalf("delete: got %d", resp.StatusCode)
	}

	resp, err = app.Test(httptest.NewRequest("GET", target, nil), -1)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("read after delete: want 404, got %d", resp.StatusCode)
	}
}

func TestCartListWithoutCustomerIsEmptyArray(t *testing.T) {
	app := newTestApp(t)
	resp, err := app.Test(httptest.NewRequest("GET", "/api/cart/", nil), -1)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}
	var items []json.RawMessage
	decode(t, resp, &items)
	if items == nil || len(items) != 0 {
		t.Fatalf("want empty JSON array, got %v", items)
	}
}

func TestSearchEndpointFiltersByPrice(t *testing.T) {
	app := newTestApp(t)
	adminTok := signup(t, app, "admin2@example.com", "admin")

	for _, v := range []fiber.Map{
		{"name": "cheap", "price": "$9,999.00"},
		{"name": "dear", "price": "$25,000.00"},
	} {
		req := jsonReq("POST", "/api/vehicle/", v)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+adminTok)
		resp, err := app.Test(req, -1)
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("seed create: %d", resp.StatusCode)
		}
	}

	resp, err := app.Test(jsonReq("POST", "/api/vehicle/search", fiber.Map{"priceMin": 10000}), -1)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("search: want 200, got %d", resp.StatusCode)
	}
	var out []struct {
		Name string `json:"name"`
	}
	decode(t, resp, &out)
	if len(out) != 1 || out[0].Name != "dear" {
		t.Fatalf("priceMin=10000 should keep only the dear one, got %+v", out)
	}
}
