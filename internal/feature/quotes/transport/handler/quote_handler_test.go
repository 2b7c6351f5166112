package handler_test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"crypto_dashboard/internal/feature/quotes/domain/entity"
	"crypto_dashboard/internal/feature/quotes/transport/handler"
	"crypto_dashboard/internal/feature/quotes/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// mockQuoteUsecase はQuoteUsecaseインターフェースのモック実装です。
type mockQuoteUsecase struct {
	GetQuoteFunc func(ctx context.Context, code string) (*entity.Quote, error)
}

func (m *mockQuoteUsecase) GetQuote(ctx context.Context, code string) (*entity.Quote, error) {
	return m.GetQuoteFunc(ctx, code)
}

// TestQuoteHandler_GetQuoteHandler はGetQuoteHandlerのHTTPリクエスト/レスポンス処理をテストします。
func TestQuoteHandler_GetQuoteHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	fetchedAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		url            string
		mockGetQuote   func(ctx context.Context, code string) (*entity.Quote, error)
		expectedStatus int
		expectedBody   string // JSON文字列として比較
	}{
		{
			name: "success: quote is returned",
			url:  "/quotes/BTC-USD",
			mockGetQuote: func(ctx context.Context, code string) (*entity.Quote, error) {
				assert.Equal(t, "BTC-USD", code)
				return &entity.Quote{
					Symbol:    "BTC-USD",
					Name:      "Bitcoin",
					Price:     43250.5,
					Change24h: -1.25,
					FetchedAt: fetchedAt,
				}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{
				"symbol": "BTC-USD",
				"name": "Bitcoin",
				"price": 43250.5,
				"change_24h": -1.25,
				"fetched_at": "2024-06-01T12:00:00Z"
			}`,
		},
		{
			name: "error: unsupported symbol maps to 404",
			url:  "/quotes/SHIB-USD",
			mockGetQuote: func(ctx context.Context, code string) (*entity.Quote, error) {
				return nil, usecase.ErrUnsupportedSymbol
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"unsupported symbol"}`,
		},
		{
			name: "error: upstream failure maps to 502",
			url:  "/quotes/BTC-USD",
			mockGetQuote: func(ctx context.Context, code string) (*entity.Quote, error) {
				return nil, usecase.ErrUpstream
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `{"error":"upstream request failed"}`,
		},
		{
			name: "error: invalid response maps to 502",
			url:  "/quotes/BTC-USD",
			mockGetQuote: func(ctx context.Context, code string) (*entity.Quote, error) {
				return nil, usecase.ErrInvalidResponse
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `{"error":"invalid upstream response"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockQuoteUsecase{
				GetQuoteFunc: tt.mockGetQuote,
			}

			h := handler.NewQuoteHandler(mockUC)

			router := gin.New()
			router.GET("/quotes/:code", h.GetQuoteHandler)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, tt.url, io.NopCloser(bytes.NewReader(nil)))

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
