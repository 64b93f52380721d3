package order

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/kedai-labs/kopitiam/internal/presentation/http/response"
	service "github.com/kedai-labs/kopitiam/internal/service/order"
)

// newTestServer registers the order routes over a zero-value service.
// Requests that fail validation never reach the repository, so these
// tests exercise the full wire contract without a store.
func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()
	e := echo.New()
	Register(e, NewHandler(&service.Service{}))
	return e
}

func do(t *testing.T, e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body response.ErrorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("non-contract error body %q: %v", rec.Body.String(), err)
	}
	return body.Error
}

func TestCreateMalformedBodyIsClientError(t *testing.T) {
	e := newTestServer(t)

	rec := do(t, e, http.MethodPost, "/orders", "{not json")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if got := errorMessage(t, rec); got != "Invalid payload" {
		t.Fatalf("unexpected error message %q", got)
	}
}

func TestCreateWithoutOrderNumberIsClientError(t *testing.T) {
	e := newTestServer(t)

	rec := do(t, e, http.MethodPost, "/orders",
		`{"items":[{"item_id":"a","quantity":1,"unit_price":"2.00"}]}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if got := errorMessage(t, rec); got != "order_number is required" {
		t.Fatalf("unexpected error message %q", got)
	}
}

func TestCreateWithEmptyItemsIsClientError(t *testing.T) {
	e := newTestServer(t)

	rec := do(t, e, http.MethodPost, "/orders", `{"order_number":5,"items":[]}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if got := errorMessage(t, rec); got != "items must not be empty" {
		t.Fatalf("unexpected error message %q", got)
	}
}

func TestStatusRoutesRejectMalformedID(t *testing.T) {
	e := newTestServer(t)

	for _, path := range []string{"/orders/abc/serve", "/orders/0/cancel"} {
		rec := do(t, e, http.MethodPatch, path, "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", path, rec.Code)
		}
		if got := errorMessage(t, rec); got != "Missing order ID" {
			t.Fatalf("%s: unexpected error message %q", path, got)
		}
	}
}

func TestEditRejectsMalformedIDBeforeReadingTheBody(t *testing.T) {
	e := newTestServer(t)

	rec := do(t, e, http.MethodPatch, "/orders/abc/edit",
		`{"items":[{"item_id":"a","quantity":1,"unit_price":"2.00"}]}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if got := errorMessage(t, rec); got != "Missing order ID" {
		t.Fatalf("unexpected error message %q", got)
	}
}

func TestEditWithEmptyItemsIsClientError(t *testing.T) {
	e := newTestServer(t)

	rec := do(t, e, http.MethodPatch, "/orders/4/edit", `{"items":[]}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if got := errorMessage(t, rec); got != "items must not be empty" {
		t.Fatalf("unexpected error message %q", got)
	}
}
