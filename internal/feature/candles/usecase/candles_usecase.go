package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"crypto_dashboard/internal/feature/candles/domain/entity"
	symbolentity "crypto_dashboard/internal/feature/symbollist/domain/entity"
)

const (
	// DefaultInterval はローソク足クエリのデフォルト時間間隔です。
	DefaultInterval = entity.Interval1d
	// DefaultPeriod はデフォルトのローソク足返却件数です。
	DefaultPeriod = 365
	// MaxPeriod は1回のリクエストで要求できるローソク足の最大件数です。
	// これを超えるリクエストは黙って切り詰めず、ErrInvalidRequestで拒否します。
	MaxPeriod = 500
)

// MarketRepository は時系列の市場データを取得するリポジトリのインターフェイスです。
// 外部 API の実装を抽象化します。
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type MarketRepository interface {
	// GetTimeSeries は指定ティッカーのローソク足を新しい方からbars本程度取得します。
	// 返却順・重複・不完全な行の有無は保証されません。
	GetTimeSeries(ctx context.Context, ticker string, interval entity.Interval, bars int) ([]entity.Candle, error)
}

// SymbolCatalog は対応銘柄カタログへの読み取りアクセスを抽象化します。
type SymbolCatalog interface {
	FindByCode(ctx context.Context, code string) (symbolentity.Symbol, error)
}

// CandlesUsecase はチャート用のローソク足取得・正規化のユースケースを定義します。
// リクエストごとにステートレスで、キャッシュもリトライも行いません。
type CandlesUsecase struct {
	market  MarketRepository
	catalog SymbolCatalog
}

// NewCandlesUsecase はCandlesUsecaseの新しいインスタンスを生成します。
func NewCandlesUsecase(market MarketRepository, catalog SymbolCatalog) *CandlesUsecase {
	return &CandlesUsecase{market: market, catalog: catalog}
}

// GetHistory は指定された銘柄・時間間隔・期間のローソク足を取得し、
// 正規化済みのSeriesとして返します。
//
// パイプライン（この順で実行）:
//  1. リクエスト検証（未対応銘柄・間隔・期間は上流を呼ばずに拒否）
//  2. 上流呼び出し（1回のみ、リトライなし）
//  3. タイムスタンプ昇順ソート（上流の順序は保証されない）
//  4. タイムスタンプ重複排除（後勝ち）
//  5. OHLC不変条件に違反する行の除去（補正はしない）
//  6. 2h/4h/12hの場合は1h足のバケット集約
//  7. 要求件数への切り詰め（新しい側を残す）
//  8. 空ならErrNoData、そうでなければ派生値を計算してSeriesを返す
func (cu *CandlesUsecase) GetHistory(ctx context.Context, code, interval string, period int) (*entity.Series, error) {
	sym, err := cu.catalog.FindByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", code, ErrUnsupportedSymbol)
	}

	if interval == "" {
		interval = string(DefaultInterval)
	}
	iv, ok := entity.ParseInterval(interval)
	if !ok {
		return nil, fmt.Errorf("%w: unknown interval %q", ErrInvalidRequest, interval)
	}

	if period == 0 {
		period = DefaultPeriod
	}
	if period < 0 || period > MaxPeriod {
		return nil, fmt.Errorf("%w: period %d out of range (1-%d)", ErrInvalidRequest, period, MaxPeriod)
	}

	raw, err := cu.market.GetTimeSeries(ctx, sym.Ticker, iv.Base(), period*iv.BucketSize())
	if err != nil {
		return nil, err
	}

	candles := normalize(raw)
	if iv.BucketSize() > 1 {
		candles = aggregate(candles, iv)
	}
	// 新しい側からperiod本に切り詰める
	if len(candles) > period {
		candles = candles[len(candles)-period:]
	}

	if len(candles) == 0 {
		// 「データなし」と「未取得」を呼び出し側が区別できるよう、空の成功は返さない
		return nil, fmt.Errorf("%s %s: %w", sym.Code, iv, ErrNoData)
	}

	return entity.NewSeries(sym.Code, iv, candles), nil
}

// normalize は生のローソク足をソート・重複排除し、OHLC不変条件に
// 違反する行を取り除きます。違反行は補正せず破棄します。
func normalize(raw []entity.Candle) []entity.Candle {
	if len(raw) == 0 {
		return nil
	}

	sorted := make([]entity.Candle, len(raw))
	copy(sorted, raw)
	// 安定ソート: 同一タイムスタンプは入力順が保たれ、後勝ちの重複排除が成立する
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Time.Before(sorted[j].Time) })

	// 重複タイムスタンプは最後の行で置き換える（ページングの重なり対策）
	deduped := make([]entity.Candle, 0, len(sorted))
	for _, c := range sorted {
		if n := len(deduped); n > 0 && deduped[n-1].Time.Equal(c.Time) {
			deduped[n-1] = c
			continue
		}
		deduped = append(deduped, c)
	}

	out := deduped[:0]
	dropped := 0
	for _, c := range deduped {
		if !c.Valid() {
			dropped++
			continue
		}
		out = append(out, c)
	}
	if dropped > 0 {
		slog.Warn("dropped bars violating OHLC invariant", "count", dropped)
	}
	return out
}

// aggregate は昇順のbase間隔ローソク足をbucket本ずつ1本に集約します。
// バケットの境界はエポックからの経過時間で揃えます。
func aggregate(candles []entity.Candle, iv entity.Interval) []entity.Candle {
	if len(candles) == 0 {
		return nil
	}

	bucketLen := iv.Duration()
	out := make([]entity.Candle, 0, len(candles)/iv.BucketSize()+1)
	for _, c := range candles {
		start := c.Time.Truncate(bucketLen)
		if n := len(out); n > 0 && out[n-1].Time.Equal(start) {
			cur := &out[n-1]
			if c.High > cur.High {
				cur.High = c.High
			}
			if c.Low < cur.Low {
				cur.Low = c.Low
			}
			cur.Close = c.Close
			cur.Volume += c.Volume
			continue
		}
		bar := c
		bar.Time = start
		out = append(out, bar)
	}
	return out
}
