package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Teodagher/jove-jewelry-sub004/internal/domain"
	"github.com/Teodagher/jove-jewelry-sub004/internal/pricing"
)

type stubAuth struct {
	token   string
	adminID string
}

func (s *stubAuth) Login(_ context.Context, _, _ string) (string, error) {
	return s.token, nil
}

func (s *stubAuth) Verify(tokenString string) (string, error) {
	if tokenString != s.token {
		return "", errors.New("invalid token")
	}
	return s.adminID, nil
}

func (s *stubAuth) TokenTTLSeconds() int { return 3600 }

type stubCatalogSvc struct {
	item  *domain.JewelryItem
	quote *pricing.Quote
	err   error
}

func (s *stubCatalogSvc) List(_ context.Context) ([]domain.JewelryItem, error) {
	if s.item == nil {
		return nil, s.err
	}
	return []domain.JewelryItem{*s.item}, s.err
}

func (s *stubCatalogSvc) Get(_ context.Context, _ string) (*domain.JewelryItem, error) {
	return s.item, s.err
}

func (s *stubCatalogSvc) Quote(_ context.Context, _ string, _ domain.CustomizationState) (*pricing.Quote, error) {
	return s.quote, s.err
}

func (s *stubCatalogSvc) Upsert(_ context.Context, item domain.JewelryItem) (*domain.JewelryItem, error) {
	return &item, s.err
}

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestAdminAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	auth := &stubAuth{token: "good-token", adminID: "a1"}
	router := gin.New()
	router.GET("/admin/ping", adminAuthMiddleware(auth), func(c *gin.Context) {
		if c.GetString(adminIDKey) != "a1" {
			t.Fatalf("expected admin id in context")
		}
		c.Status(http.StatusOK)
	})

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"valid token", "Bearer good-token", http.StatusOK},
		{"wrong token", "Bearer bad-token", http.StatusUnauthorized},
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			if rec.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, rec.Code)
			}
		})
	}
}

func TestQuoteHandlerConvertsForMarket(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &stubCatalogSvc{quote: &pricing.Quote{BasePriceCents: 50000, TotalCents: 69000}}
	router := gin.New()
	router.POST("/api/items/:productType/quote", quoteHandler(testLogger(), svc))

	body := `{"selections":{"set-metal":["opt-yg"]}}`
	req := httptest.NewRequest(http.MethodPost, "/api/items/ring/quote?market=ae", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var out struct {
		TotalCents int64 `json:"totalCents"`
		Display    struct {
			AmountCents  int64  `json:"amountCents"`
			CurrencyCode string `json:"currencyCode"`
		} `json:"display"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.TotalCents != 69000 {
		t.Fatalf("expected USD total 69000, got %d", out.TotalCents)
	}
	if out.Display.CurrencyCode != "AED" {
		t.Fatalf("expected AED display, got %q", out.Display.CurrencyCode)
	}
	// 69000 * 3.6725 = 253402.5 -> 253403 half-up.
	if out.Display.AmountCents != 253403 {
		t.Fatalf("expected 253403 display cents, got %d", out.Display.AmountCents)
	}
}

func TestQuoteHandlerUnknownMarket(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &stubCatalogSvc{quote: &pricing.Quote{TotalCents: 100}}
	router := gin.New()
	router.POST("/api/items/:productType/quote", quoteHandler(testLogger(), svc))

	req := httptest.NewRequest(http.MethodPost, "/api/items/ring/quote?market=mars", strings.NewReader(`{"selections":{}}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 for unknown market, got %d", rec.Code)
	}
}

func TestQuoteHandlerValidationError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &stubCatalogSvc{err: domain.ErrValidation}
	router := gin.New()
	router.POST("/api/items/:productType/quote", quoteHandler(testLogger(), svc))

	req := httptest.NewRequest(http.MethodPost, "/api/items/ring/quote", strings.NewReader(`{"selections":{}}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestGetItemHandlerNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &stubCatalogSvc{err: domain.ErrNotFound}
	router := gin.New()
	router.GET("/api/items/:productType", getItemHandler(testLogger(), svc))

	req := httptest.NewRequest(http.MethodGet, "/api/items/ring", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
