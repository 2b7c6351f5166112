package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"crypto_dashboard/internal/feature/quotes/domain/entity"
	"crypto_dashboard/internal/feature/quotes/usecase"
	symbolentity "crypto_dashboard/internal/feature/symbollist/domain/entity"
	symbolusecase "crypto_dashboard/internal/feature/symbollist/usecase"
)

// ErrSource はモックと期待値の間で共有されるセンチネルエラーです。
var ErrSource = errors.New("source error")

// mockQuoteSource はQuoteSourceインターフェースのモック実装です。
type mockQuoteSource struct {
	FetchQuoteFunc func(ctx context.Context, blockchain, address string) (entity.Quote, error)
	Calls          int
}

// FetchQuote はFetchQuoteFuncが設定されていればそれを呼び出し、呼び出し回数を記録します。
func (m *mockQuoteSource) FetchQuote(ctx context.Context, blockchain, address string) (entity.Quote, error) {
	m.Calls++
	if m.FetchQuoteFunc != nil {
		return m.FetchQuoteFunc(ctx, blockchain, address)
	}
	return entity.Quote{}, errors.New("FetchQuoteFunc is not implemented")
}

// mockCatalog はSymbolCatalogインターフェースのモック実装です。
// BTC-USDは気配マッピング付き、DOGE-USDはチャートのみの銘柄として返します。
type mockCatalog struct{}

func (mockCatalog) FindByCode(_ context.Context, code string) (symbolentity.Symbol, error) {
	switch code {
	case "BTC-USD":
		return symbolentity.Symbol{
			Code: "BTC-USD", Name: "Bitcoin", Ticker: "BTC-USD",
			Blockchain: "Bitcoin", Address: "0x0000000000000000000000000000000000000000",
			IsActive: true,
		}, nil
	case "DOGE-USD":
		return symbolentity.Symbol{Code: "DOGE-USD", Name: "Dogecoin", Ticker: "DOGE-USD", IsActive: true}, nil
	}
	return symbolentity.Symbol{}, symbolusecase.ErrSymbolNotFound
}

// TestQuoteUsecase_GetQuote はGetQuoteメソッドの銘柄解決と上流呼び出しをテストします。
func TestQuoteUsecase_GetQuote(t *testing.T) {
	ctx := context.Background()
	fetchedAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name          string
		inputCode     string
		mockFetch     func(ctx context.Context, blockchain, address string) (entity.Quote, error)
		expectedErr   error
		expectedCalls int
		check         func(t *testing.T, q *entity.Quote)
	}{
		{
			name:      "success: quote with symbol and name filled in",
			inputCode: "BTC-USD",
			mockFetch: func(_ context.Context, blockchain, address string) (entity.Quote, error) {
				// ユースケースがカタログのマッピングで上流を呼ぶことを検証
				if blockchain != "Bitcoin" {
					t.Errorf("expected blockchain Bitcoin, got %s", blockchain)
				}
				if address != "0x0000000000000000000000000000000000000000" {
					t.Errorf("unexpected address %s", address)
				}
				return entity.Quote{Price: 43250.5, Change24h: -1.2, FetchedAt: fetchedAt}, nil
			},
			expectedCalls: 1,
			check: func(t *testing.T, q *entity.Quote) {
				if q.Symbol != "BTC-USD" || q.Name != "Bitcoin" {
					t.Errorf("expected symbol fields filled, got %+v", q)
				}
				if q.Price != 43250.5 || q.Change24h != -1.2 {
					t.Errorf("unexpected quote values: %+v", q)
				}
			},
		},
		{
			name:          "error: symbol not in catalog, no upstream call",
			inputCode:     "SHIB",
			expectedErr:   usecase.ErrUnsupportedSymbol,
			expectedCalls: 0,
		},
		{
			name:          "error: chart-only symbol without quote mapping, no upstream call",
			inputCode:     "DOGE-USD",
			expectedErr:   usecase.ErrUnsupportedSymbol,
			expectedCalls: 0,
		},
		{
			name:      "error: source failure propagates",
			inputCode: "BTC-USD",
			mockFetch: func(context.Context, string, string) (entity.Quote, error) {
				return entity.Quote{}, ErrSource
			},
			expectedErr:   ErrSource,
			expectedCalls: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockSource := &mockQuoteSource{FetchQuoteFunc: tc.mockFetch}
			uc := usecase.NewQuoteUsecase(mockSource, mockCatalog{})

			q, err := uc.GetQuote(ctx, tc.inputCode)

			// センチネル比較によるエラー検証
			if tc.expectedErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
			} else if !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected %v, got %v", tc.expectedErr, err)
			}

			// 呼び出し回数の検証
			if mockSource.Calls != tc.expectedCalls {
				t.Errorf("FetchQuote was called %d times, expected %d", mockSource.Calls, tc.expectedCalls)
			}

			if tc.check != nil {
				tc.check(t, q)
			}
		})
	}
}
