package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"crypto_dashboard/internal/feature/candles/domain/entity"
	"crypto_dashboard/internal/feature/candles/usecase"
	"crypto_dashboard/internal/platform/externalapi/yahoo/dto"
	infrahttp "crypto_dashboard/internal/platform/http"
)

// YahooMarket はYahoo Finance外部APIから時系列データを取得するMarketRepository実装です。
type YahooMarket struct {
	cfg    Config
	client *infrahttp.Client
}

// YahooMarketがMarketRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.MarketRepository = (*YahooMarket)(nil)

// NewYahooMarket は指定された設定とHTTPクライアントでYahooMarketの新しいインスタンスを生成します。
func NewYahooMarket(cfg Config, client *infrahttp.Client) *YahooMarket {
	return &YahooMarket{cfg: cfg, client: client}
}

// GetTimeSeries はYahoo Financeのchart APIからローソク足を取得し、
// entity.Candleのスライスとして返します。OHLCのいずれかがnullの行は
// チャートに描画できないためここで除外します。ソートや重複排除は
// 行いません（usecase側の正規化パイプラインが担います）。
func (y *YahooMarket) GetTimeSeries(ctx context.Context, ticker string, interval entity.Interval, bars int) ([]entity.Candle, error) {
	q := url.Values{}
	q.Set("interval", string(interval))
	q.Set("range", rangeFor(interval, bars))

	u := fmt.Sprintf("%s/v8/finance/chart/%s?%s", y.cfg.BaseURL, url.PathEscape(ticker), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	// ブラウザ由来でないUAはYahoo側で弾かれることがある
	req.Header.Set("User-Agent", "Mozilla/5.0")

	res, err := y.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yahoo fetch: %w: %v", usecase.ErrUpstream, err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo: %w: http %d", usecase.ErrUpstream, res.StatusCode)
	}

	// JSONレスポンスをDTOにデコード
	var body dto.ChartResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("yahoo decode: %w: %v", usecase.ErrInvalidResponse, err)
	}
	if body.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo: %w: %s", usecase.ErrUpstream, body.Chart.Error.Description)
	}
	if len(body.Chart.Result) == 0 || len(body.Chart.Result[0].Indicators.Quote) == 0 {
		// 正常応答だが中身が空。空スライスを返し、usecase側でErrNoDataに変換する
		return nil, nil
	}

	result := body.Chart.Result[0]
	quote := result.Indicators.Quote[0]
	if len(quote.Open) != len(result.Timestamp) || len(quote.High) != len(result.Timestamp) ||
		len(quote.Low) != len(result.Timestamp) || len(quote.Close) != len(result.Timestamp) {
		return nil, fmt.Errorf("yahoo: %w: field arrays do not match timestamps", usecase.ErrInvalidResponse)
	}

	candles := make([]entity.Candle, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		// OHLCのいずれかが欠けた行は不完全なローソク足なので捨てる
		if quote.Open[i] == nil || quote.High[i] == nil || quote.Low[i] == nil || quote.Close[i] == nil {
			continue
		}
		var vol int64
		if i < len(quote.Volume) && quote.Volume[i] != nil {
			vol = int64(*quote.Volume[i])
		}
		candles = append(candles, entity.Candle{
			Time:   time.Unix(ts, 0).UTC(),
			Open:   *quote.Open[i],
			High:   *quote.High[i],
			Low:    *quote.Low[i],
			Close:  *quote.Close[i],
			Volume: vol,
		})
	}
	return candles, nil
}

// rangeFor はリクエストに必要な期間を覆う最小のrangeトークンを返します。
// Yahoo側は細かい間隔ほど遡れる期間が短いため、必要以上に広げません。
func rangeFor(interval entity.Interval, bars int) string {
	need := time.Duration(bars) * interval.Duration()
	switch {
	case need <= 24*time.Hour:
		return "1d"
	case need <= 5*24*time.Hour:
		return "5d"
	case need <= 30*24*time.Hour:
		return "1mo"
	case need <= 90*24*time.Hour:
		return "3mo"
	case need <= 180*24*time.Hour:
		return "6mo"
	case need <= 365*24*time.Hour:
		return "1y"
	default:
		return "2y"
	}
}
