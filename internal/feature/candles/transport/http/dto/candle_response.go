package dto

// CandleItem はロウソク足1本分のレスポンスDTOです。
type CandleItem struct {
	Time   string  `json:"time"`   // 日時
	Open   float64 `json:"open"`   // 始値
	High   float64 `json:"high"`   // 高値
	Low    float64 `json:"low"`    // 安値
	Close  float64 `json:"close"`  // 終値
	Volume int64   `json:"volume"` // 出来高
}

// SeriesResponse は正規化済みロウソク足系列のレスポンスDTOです。
// 表示用の派生値はサーバ側で一度だけ計算済みの値をそのまま返します。
type SeriesResponse struct {
	Symbol      string       `json:"symbol"`       // 銘柄コード
	Interval    string       `json:"interval"`     // 時間間隔
	LatestClose float64      `json:"latest_close"` // 直近終値
	High        float64      `json:"high"`         // 期間高値
	Low         float64      `json:"low"`          // 期間安値
	Candles     []CandleItem `json:"candles"`      // 昇順のロウソク足
}
