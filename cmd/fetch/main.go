package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/joho/godotenv"

	"crypto_dashboard/internal/app/di"
	"crypto_dashboard/internal/feature/candles/usecase"
	symbollistadapters "crypto_dashboard/internal/feature/symbollist/adapters"
)

// fetch はサーバを立てずにヒストリカルデータのパイプラインを確認するためのCLIです。
// 指定銘柄の正規化済みローソク足をダッシュボードのデータグリッドと同じ書式で出力します。
func main() {
	symbol := flag.String("symbol", "BTC-USD", "symbol code to fetch")
	interval := flag.String("interval", "1d", "candle interval (1m 5m 15m 30m 1h 2h 4h 12h 1d)")
	period := flag.Int("period", 30, "number of candles")
	flag.Parse()

	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	catalog := symbollistadapters.NewSymbolRepository()
	if err := catalog.Validate(); err != nil {
		log.Fatal("invalid symbol catalog: ", err)
	}
	uc := usecase.NewCandlesUsecase(di.NewMarket(), catalog)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	series, err := uc.GetHistory(ctx, *symbol, *interval, *period)
	if err != nil {
		log.Fatal(err)
	}

	layout := "2006-01-02"
	if series.Interval.Intraday() {
		layout = "2006-01-02 15:04"
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "time\topen\thigh\tlow\tclose\tvolume\t")
	for _, c := range series.Candles {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t\n",
			c.Time.UTC().Format(layout),
			money(c.Open), money(c.High), money(c.Low), money(c.Close),
			humanize.Comma(c.Volume))
	}
	if err := w.Flush(); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("\n%s %s: %d candles, latest close %s (range %s - %s)\n",
		series.Symbol, series.Interval, len(series.Candles),
		money(series.LatestClose), money(series.Low), money(series.High))
}

// money は価格をダッシュボードと同じ "$43,250.50" 形式にします。
func money(v float64) string {
	return "$" + humanize.FormatFloat("#,###.##", v)
}
