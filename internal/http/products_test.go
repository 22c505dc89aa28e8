package handlers_test

import (
	"math"
	"net/http"
	"testing"
	"time"

	"stockroom/internal/auth"
	"stockroom/internal/domain"
)

func TestProductLifecycle(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerUser(t, app, "owner@example.com")

	// Create
	resp, err := app.Test(jsonReq(t, "POST", "/api/products", token, map[string]any{
		"name": "Widget", "price": 9.99, "quantity": 5,
	}))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d", resp.StatusCode)
	}
	var created domain.ProductView
	decodeJSON(t, resp, &created)
	if created.ID == "" || created.CreatedAt == "" {
		t.Fatalf("server did not assign id/timestamps: %+v", created)
	}
	if created.Status != "low" {
		t.Fatalf("quantity 5 should be low stock, got %q", created.Status)
	}
	if math.Abs(created.TotalValue-49.95) > 1e-9 {
		t.Fatalf("totalValue: want 49.95, got %v", created.TotalValue)
	}
	if created.Category != domain.DefaultCategory {
		t.Fatalf("category should default, got %q", created.Category)
	}

	// List contains it
	resp, err = app.Test(jsonReq(t, "GET", "/api/products", token, nil))
	if err != nil {
		t.Fatal(err)
	}
	var listed []domain.ProductView
	decodeJSON(t, resp, &listed)
	if len(listed) != 1 || listed[0].ID != created.ID {
		t.Fatalf("list should contain the created product, got %+v", listed)
	}

	// Partial update: only quantity changes
	resp, err = app.Test(jsonReq(t, "PUT", "/api/products/"+created.ID, token, map[string]any{
		"quantity": 40,
	}))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update: expected 200, got %d", resp.StatusCode)
	}
	var updated domain.ProductView
	decodeJSON(t, resp, &updated)
	if updated.Name != "Widget" || updated.Quantity != 40 {
		t.Fatalf("merge broke fields: %+v", updated)
	}
	if updated.Status != "active" {
		t.Fatalf("quantity 40 should be active, got %q", updated.Status)
	}

	// Delete, then the list no longer contains it and a second delete is 404
	resp, err = app.Test(jsonReq(t, "DELETE", "/api/products/"+created.ID, token, nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", resp.StatusCode)
	}
	var ack struct {
		Message string `json:"message"`
	}
	decodeJSON(t, resp, &ack)
	if ack.Message == "" {
		t.Fatal("delete returned no acknowledgement")
	}

	resp, err = app.Test(jsonReq(t, "GET", "/api/products", token, nil))
	if err != nil {
		t.Fatal(err)
	}
	listed = nil
	decodeJSON(t, resp, &listed)
	if len(listed) != 0 {
		t.Fatalf("deleted product still listed: %+v", listed)
	}

	resp, err = app.Test(jsonReq(t, "DELETE", "/api/products/"+created.ID, token, nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("second delete: expected 404, got %d", resp.StatusCode)
	}
}

func TestUpdateUnknownIDLeavesStoreUnchanged(t *testing.T) {
	app, db := newTestApp(t)
	token := registerUser(t, app, "owner@example.com")

	resp, err := app.Test(jsonReq(t, "PUT", "/api/products/no-such-id", token, map[string]any{
		"name": "Ghost",
	}))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM products`); err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatalf("store changed by failed update: %d rows", n)
	}
}

func TestCreateValidation(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerUser(t, app, "owner@example.com")

	cases := []map[string]any{
		{"price": 1.0, "quantity": 1},               // missing name
		{"name": "X", "price": -1.0, "quantity": 1}, // negative price
		{"name": "X", "price": 1.0, "quantity": -1}, // negative quantity
	}
	for i, body := range cases {
		resp, err := app.Test(jsonReq(t, "POST", "/api/products", token, body))
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("case %d: expected 400, got %d", i, resp.StatusCode)
		}
	}
}

func TestProtectedEndpointsRejectBadTokens(t *testing.T) {
	app, db := newTestApp(t)

	// No token
	resp, err := app.Test(jsonReq(t, "POST", "/api/products", "", map[string]any{
		"name": "Widget", "price": 1.0, "quantity": 1,
	}))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("no token: expected 401, got %d", resp.StatusCode)
	}

	// Malformed token
	resp, err = app.Test(jsonReq(t, "GET", "/api/products", "not-a-jwt", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("malformed token: expected 401, got %d", resp.StatusCode)
	}

	// Expired token
	expired, err := auth.GenerateToken("some-user", []byte(testSecret), -time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	resp, err = app.Test(jsonReq(t, "GET", "/api/products", expired, nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expired token: expected 401, got %d", resp.StatusCode)
	}

	// Token signed with the wrong key
	forged, err := auth.GenerateToken("some-user", []byte("other-secret"), time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	resp, err = app.Test(jsonReq(t, "GET", "/api/products", forged, nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("forged token: expected 401, got %d", resp.StatusCode)
	}

	// None of the rejected requests reached the store.
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM products`); err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatalf("rejected request reached the store: %d rows", n)
	}
}

func TestTokenSurvivesRestart(t *testing.T) {
	// Tokens are stateless: one issued against the same secret verifies on a
	// freshly wired app instance.
	app1, _ := newTestApp(t)
	token := registerUser(t, app1, "eve@example.com")

	app2, _ := newTestApp(t)
	resp, err := app2.Test(jsonReq(t, "GET", "/api/products", token, nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("token should verify on a new instance, got %d", resp.StatusCode)
	}
}
