// Package handler はcandlesフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"crypto_dashboard/internal/feature/candles/domain/entity"
	"crypto_dashboard/internal/feature/candles/transport/http/dto"
	"crypto_dashboard/internal/feature/candles/usecase"

	"github.com/gin-gonic/gin"
)

// CandlesUsecase はローソク足データ操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type CandlesUsecase interface {
	GetHistory(ctx context.Context, code, interval string, period int) (*entity.Series, error)
}

// CandlesHandler はローソク足データのHTTPリクエストを処理します。
type CandlesHandler struct {
	uc CandlesUsecase
}

// NewCandlesHandler は指定されたusecaseでCandlesHandlerの新しいインスタンスを生成します。
func NewCandlesHandler(uc CandlesUsecase) *CandlesHandler {
	return &CandlesHandler{uc: uc}
}

// GetCandlesHandler は銘柄コード・時間間隔・期間を受け取り、
// 正規化済みのローソク足系列をJSONで返します。
//
// エンドポイント例:
// GET /candles/BTC-USD?interval=1d&period=365
func (h *CandlesHandler) GetCandlesHandler(c *gin.Context) {
	code := c.Param("code")
	// 未指定の場合はデフォルト値を使用
	interval := c.DefaultQuery("interval", string(entity.Interval1d))
	periodStr := c.DefaultQuery("period", "365")
	// 文字列を整数に変換（不正な文字列は0になり、usecase側でデフォルトが適用される）
	period, _ := strconv.Atoi(periodStr)

	series, err := h.uc.GetHistory(c.Request.Context(), code, interval, period)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	// 日足は日付のみ、それより細かい間隔は時刻まで表示する
	layout := "2006-01-02"
	if series.Interval.Intraday() {
		layout = "2006-01-02 15:04"
	}

	out := dto.SeriesResponse{
		Symbol:      series.Symbol,
		Interval:    string(series.Interval),
		LatestClose: series.LatestClose,
		High:        series.High,
		Low:         series.Low,
		Candles:     make([]dto.CandleItem, 0, len(series.Candles)),
	}
	for _, x := range series.Candles {
		out.Candles = append(out.Candles, dto.CandleItem{
			Time:   x.Time.UTC().Format(layout),
			Open:   x.Open,
			High:   x.High,
			Low:    x.Low,
			Close:  x.Close,
			Volume: x.Volume,
		})
	}

	c.JSON(http.StatusOK, out)
}

// statusFor はユースケースのセンチネルエラーをHTTPステータスに対応付けます。
// どのエラーもチャート領域の劣化表示にとどまり、ページ全体を壊しません。
func statusFor(err error) int {
	switch {
	case errors.Is(err, usecase.ErrUnsupportedSymbol), errors.Is(err, usecase.ErrNoData):
		return http.StatusNotFound
	case errors.Is(err, usecase.ErrInvalidRequest):
		return http.StatusBadRequest
	default:
		return http.StatusBadGateway
	}
}
