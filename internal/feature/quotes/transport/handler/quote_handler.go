// Package handler はquotesフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"crypto_dashboard/internal/feature/quotes/domain/entity"
	"crypto_dashboard/internal/feature/quotes/transport/http/dto"
	"crypto_dashboard/internal/feature/quotes/usecase"

	"github.com/gin-gonic/gin"
)

// QuoteUsecase は気配取得のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type QuoteUsecase interface {
	GetQuote(ctx context.Context, code string) (*entity.Quote, error)
}

// QuoteHandler は価格カード向け気配のHTTPリクエストを処理します。
type QuoteHandler struct {
	uc QuoteUsecase
}

// NewQuoteHandler は指定されたusecaseでQuoteHandlerの新しいインスタンスを生成します。
func NewQuoteHandler(uc QuoteUsecase) *QuoteHandler {
	return &QuoteHandler{uc: uc}
}

// GetQuoteHandler は銘柄コードを受け取り、現在の気配をJSONで返します。
// エラー時はカード1枚分の劣化表示のためのエラーボディを返し、
// 他のカードの取得には影響しません。
//
// エンドポイント例:
// GET /quotes/BTC-USD
func (h *QuoteHandler) GetQuoteHandler(c *gin.Context) {
	code := c.Param("code")

	q, err := h.uc.GetQuote(c.Request.Context(), code)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.QuoteResponse{
		Symbol:    q.Symbol,
		Name:      q.Name,
		Price:     q.Price,
		Change24h: q.Change24h,
		FetchedAt: q.FetchedAt.UTC().Format(time.RFC3339),
	})
}

// statusFor はユースケースのセンチネルエラーをHTTPステータスに対応付けます。
func statusFor(err error) int {
	switch {
	case errors.Is(err, usecase.ErrUnsupportedSymbol):
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}
