package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"crypto_dashboard/internal/app/di"
	"crypto_dashboard/internal/app/router"
	candleshandler "crypto_dashboard/internal/feature/candles/transport/handler"
	candlesusecase "crypto_dashboard/internal/feature/candles/usecase"
	quoteshandler "crypto_dashboard/internal/feature/quotes/transport/handler"
	quotesusecase "crypto_dashboard/internal/feature/quotes/usecase"
	symbollistadapters "crypto_dashboard/internal/feature/symbollist/adapters"
	symbollisthandler "crypto_dashboard/internal/feature/symbollist/transport/handler"
	symbollistusecase "crypto_dashboard/internal/feature/symbollist/usecase"
)

func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	// 銘柄カタログは固定設定。起動時に検証し、不正なら起動させない
	catalog := symbollistadapters.NewSymbolRepository()
	if err := catalog.Validate(); err != nil {
		log.Fatal("invalid symbol catalog: ", err)
	}

	// 外部APIクライアント
	quoteSource := di.NewQuoteSource()
	market := di.NewMarket()

	// Usecase
	quoteUC := quotesusecase.NewQuoteUsecase(quoteSource, catalog)
	candlesUC := candlesusecase.NewCandlesUsecase(market, catalog)
	symbolUC := symbollistusecase.NewSymbolUsecase(catalog)

	// Handler
	quoteH := quoteshandler.NewQuoteHandler(quoteUC)
	candlesH := candleshandler.NewCandlesHandler(candlesUC)
	symbolH := symbollisthandler.NewSymbolHandler(symbolUC)

	// ルータ生成（CORS込み）
	router := router.NewRouter(quoteH, candlesH, symbolH)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
