package router

import (
	candleshandler "crypto_dashboard/internal/feature/candles/transport/handler"
	quoteshandler "crypto_dashboard/internal/feature/quotes/transport/handler"
	symbollisthandler "crypto_dashboard/internal/feature/symbollist/transport/handler"
	"crypto_dashboard/internal/platform/http/handler"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter はダッシュボードAPIのルーティングを構築します。
// すべてのエンドポイントは認証不要です（閲覧専用のダッシュボード）。
func NewRouter(quotes *quoteshandler.QuoteHandler, candles *candleshandler.CandlesHandler,
	symbols *symbollisthandler.SymbolHandler) *gin.Engine {
	r := gin.Default()

	// ダッシュボードはブラウザから呼ばれるのでCORSを有効にする
	r.Use(cors.Default())

	// 導通確認用
	r.GET("/healthz", handler.Health)
	// チャートの銘柄セレクタと価格カードの対象一覧
	r.GET("/symbols", symbols.List)
	// 価格カード1枚分の気配
	r.GET("/quotes/:code", quotes.GetQuoteHandler)
	// チャート用の正規化済みローソク足
	r.GET("/candles/:code", candles.GetCandlesHandler)

	return r
}
