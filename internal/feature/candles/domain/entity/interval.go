package entity

import "time"

// Interval is the supported candle granularity for chart requests.
type Interval string

// Supported intervals, mirroring the dashboard's interval selector.
const (
	Interval1m  Interval = "1m"
	Interval5m  Interval = "5m"
	Interval15m Interval = "15m"
	Interval30m Interval = "30m"
	Interval1h  Interval = "1h"
	Interval2h  Interval = "2h"
	Interval4h  Interval = "4h"
	Interval12h Interval = "12h"
	Interval1d  Interval = "1d"
)

// intervalSpec は各時間間隔の取得方法を定義します。
// 上流APIがネイティブに提供しない間隔（2h/4h/12h）は、より細かい
// base間隔で取得し、bucket本ずつ集約して生成します。
type intervalSpec struct {
	base     Interval      // 上流へ要求するネイティブ間隔
	bucket   int           // 1本のローソク足に集約するbase間隔の本数
	duration time.Duration // 1本のローソク足が表す期間
}

var intervalSpecs = map[Interval]intervalSpec{
	Interval1m:  {base: Interval1m, bucket: 1, duration: time.Minute},
	Interval5m:  {base: Interval5m, bucket: 1, duration: 5 * time.Minute},
	Interval15m: {base: Interval15m, bucket: 1, duration: 15 * time.Minute},
	Interval30m: {base: Interval30m, bucket: 1, duration: 30 * time.Minute},
	Interval1h:  {base: Interval1h, bucket: 1, duration: time.Hour},
	Interval2h:  {base: Interval1h, bucket: 2, duration: 2 * time.Hour},
	Interval4h:  {base: Interval1h, bucket: 4, duration: 4 * time.Hour},
	Interval12h: {base: Interval1h, bucket: 12, duration: 12 * time.Hour},
	Interval1d:  {base: Interval1d, bucket: 1, duration: 24 * time.Hour},
}

// ParseInterval は文字列をIntervalに変換します。
// サポート外の値の場合は2番目の戻り値がfalseになります。
func ParseInterval(s string) (Interval, bool) {
	iv := Interval(s)
	_, ok := intervalSpecs[iv]
	return iv, ok
}

// Base returns the upstream-native granularity used to fetch this interval.
func (i Interval) Base() Interval { return intervalSpecs[i].base }

// BucketSize returns how many base bars are aggregated into one candle.
// It is 1 for intervals the upstream serves natively.
func (i Interval) BucketSize() int { return intervalSpecs[i].bucket }

// Duration returns the time span one candle of this interval covers.
func (i Interval) Duration() time.Duration { return intervalSpecs[i].duration }

// Intraday reports whether the interval is finer than one day.
// Handlers use this to pick the timestamp display format.
func (i Interval) Intraday() bool { return i != Interval1d }
