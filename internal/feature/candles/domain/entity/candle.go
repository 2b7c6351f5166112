// Package entity defines the domain models for the candles feature.
package entity

import "time"

// Candle represents one OHLCV (Open, High, Low, Close, Volume) bar for a
// crypto symbol at a specific time interval.
type Candle struct {
	Time   time.Time // Timestamp for the start of this bar period
	Open   float64   // Opening price
	High   float64   // Highest price during this period
	Low    float64   // Lowest price during this period
	Close  float64   // Closing price
	Volume int64     // Trading volume
}

// Valid reports whether the bar satisfies the OHLC invariant
// (low <= open,close <= high) and has a non-negative volume.
func (c Candle) Valid() bool {
	return c.Low <= c.Open && c.Open <= c.High &&
		c.Low <= c.Close && c.Close <= c.High &&
		c.Volume >= 0
}

// Series はチャート描画用に正規化済みのローソク足の並びです。
// タイムスタンプは厳密に昇順で、重複はありません。
// 表示用のスカラー値（直近終値・期間高値・期間安値）は生成時に一度だけ計算されます。
type Series struct {
	Symbol      string   // カタログ上の銘柄コード（例: "BTC-USD"）
	Interval    Interval // ローソク足の時間間隔
	Candles     []Candle // 昇順のローソク足
	LatestClose float64  // 最後のローソク足の終値
	High        float64  // 期間中の最高値
	Low         float64  // 期間中の最安値
}

// NewSeries は正規化済みのローソク足から派生値を計算してSeriesを生成します。
// candlesは昇順かつ空でないことを呼び出し側が保証します。
func NewSeries(symbol string, interval Interval, candles []Candle) *Series {
	s := &Series{
		Symbol:   symbol,
		Interval: interval,
		Candles:  candles,
		High:     candles[0].High,
		Low:      candles[0].Low,
	}
	for _, c := range candles {
		if c.High > s.High {
			s.High = c.High
		}
		if c.Low < s.Low {
			s.Low = c.Low
		}
	}
	s.LatestClose = candles[len(candles)-1].Close
	return s
}
