package dia

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"crypto_dashboard/internal/feature/quotes/domain/entity"
	"crypto_dashboard/internal/feature/quotes/usecase"
	"crypto_dashboard/internal/platform/externalapi/dia/dto"
	infrahttp "crypto_dashboard/internal/platform/http"
)

// DIAQuote はDIA外部APIから現在気配を取得するQuoteSource実装です。
type DIAQuote struct {
	cfg    Config
	client *infrahttp.Client
}

// DIAQuoteがQuoteSourceを実装していることをコンパイル時に検証します。
var _ usecase.QuoteSource = (*DIAQuote)(nil)

// NewDIAQuote は指定された設定とHTTPクライアントでDIAQuoteの新しいインスタンスを生成します。
func NewDIAQuote(cfg Config, client *infrahttp.Client) *DIAQuote {
	return &DIAQuote{cfg: cfg, client: client}
}

// FetchQuote はDIAのassetQuotationエンドポイントから現在価格と
// 24時間変化率を取得します。変化率が欠けている場合は0として扱います。
func (d *DIAQuote) FetchQuote(ctx context.Context, blockchain, address string) (entity.Quote, error) {
	u := fmt.Sprintf("%s/v1/assetQuotation/%s/%s",
		d.cfg.BaseURL, url.PathEscape(blockchain), url.PathEscape(address))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return entity.Quote{}, err
	}

	res, err := d.client.Do(req)
	if err != nil {
		return entity.Quote{}, fmt.Errorf("dia fetch: %w: %v", usecase.ErrUpstream, err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode != http.StatusOK {
		return entity.Quote{}, fmt.Errorf("dia: %w: http %d", usecase.ErrUpstream, res.StatusCode)
	}

	// JSONレスポンスをDTOにデコード
	var body dto.AssetQuotationResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return entity.Quote{}, fmt.Errorf("dia decode: %w: %v", usecase.ErrInvalidResponse, err)
	}
	if body.Price == nil {
		return entity.Quote{}, fmt.Errorf("dia: price missing for %s/%s: %w", blockchain, address, usecase.ErrInvalidResponse)
	}

	q := entity.Quote{
		Price:     *body.Price,
		FetchedAt: time.Now(),
	}
	if body.Change24h != nil {
		q.Change24h = *body.Change24h
	}
	// 上流のタイムスタンプが読めればそちらを優先する
	if ts, err := time.Parse(time.RFC3339, body.Time); err == nil {
		q.FetchedAt = ts
	}
	return q, nil
}
