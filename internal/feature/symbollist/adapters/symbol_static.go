// Package adapters はsymbollistフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"crypto_dashboard/internal/feature/symbollist/domain/entity"
	"crypto_dashboard/internal/feature/symbollist/usecase"
)

// ダッシュボードが対応する固定の銘柄セットです。
// Blockchain/Addressを持つ銘柄のみが価格カード（リアルタイム気配）の対象になります。
// XRPはチェーン名が資産名と異なる（XRPL）点に注意してください。
var dashboardSymbols = []entity.Symbol{
	{Code: "BTC-USD", Name: "Bitcoin", Ticker: "BTC-USD", Blockchain: "Bitcoin", Address: zeroAddress, IsActive: true, SortKey: 1},
	{Code: "ETH-USD", Name: "Ethereum", Ticker: "ETH-USD", Blockchain: "Ethereum", Address: zeroAddress, IsActive: true, SortKey: 2},
	{Code: "XMR-USD", Name: "Monero", Ticker: "XMR-USD", Blockchain: "Monero", Address: zeroAddress, IsActive: true, SortKey: 3},
	{Code: "SOL-USD", Name: "Solana", Ticker: "SOL-USD", Blockchain: "Solana", Address: zeroAddress, IsActive: true, SortKey: 4},
	{Code: "XRP-USD", Name: "XRP", Ticker: "XRP-USD", Blockchain: "XRPL", Address: zeroAddress, IsActive: true, SortKey: 5},
	{Code: "ADA-USD", Name: "Cardano", Ticker: "ADA-USD", IsActive: true, SortKey: 6},
	{Code: "DOGE-USD", Name: "Dogecoin", Ticker: "DOGE-USD", IsActive: true, SortKey: 7},
	{Code: "LTC-USD", Name: "Litecoin", Ticker: "LTC-USD", IsActive: true, SortKey: 8},
	{Code: "AVAX-USD", Name: "Avalanche", Ticker: "AVAX-USD", IsActive: true, SortKey: 9},
	{Code: "MATIC-USD", Name: "Polygon", Ticker: "MATIC-USD", IsActive: true, SortKey: 10},
}

// zeroAddress はネイティブコインの照会時に気配ソースが期待するアドレスです。
const zeroAddress = "0x0000000000000000000000000000000000000000"

// symbolStatic はSymbolRepositoryインターフェースの固定テーブル実装です。
// カタログは設定であり実行時データではないため、永続化層は持ちません。
type symbolStatic struct {
	symbols []entity.Symbol
}

var _ usecase.SymbolRepository = (*symbolStatic)(nil)

// NewSymbolRepository は組み込みのダッシュボード銘柄カタログを持つ
// symbolStaticリポジトリの新しいインスタンスを生成します。
func NewSymbolRepository() *symbolStatic {
	return &symbolStatic{symbols: dashboardSymbols}
}

// Validate はカタログの整合性を検証します。起動時に一度呼び出し、
// 不正なエントリがあればプロセスを起動させないでください（設定エラーであり実行時エラーではありません）。
func (r *symbolStatic) Validate() error {
	seen := make(map[string]struct{}, len(r.symbols))
	for _, s := range r.symbols {
		if s.Code == "" || s.Name == "" {
			return fmt.Errorf("symbol %q: code and name are required", s.Code)
		}
		if s.Ticker == "" {
			return fmt.Errorf("symbol %q: ticker is required", s.Code)
		}
		// 気配ソースのマッピングは両方揃っているか、両方空であること
		if (s.Blockchain == "") != (s.Address == "") {
			return fmt.Errorf("symbol %q: blockchain and address must be set together", s.Code)
		}
		if _, ok := seen[s.Code]; ok {
			return fmt.Errorf("symbol %q: duplicate code", s.Code)
		}
		seen[s.Code] = struct{}{}
	}
	return nil
}

// ListActive はsort_key順にすべてのアクティブな銘柄を返します。
func (r *symbolStatic) ListActive(_ context.Context) ([]entity.Symbol, error) {
	out := make([]entity.Symbol, 0, len(r.symbols))
	for _, s := range r.symbols {
		if s.IsActive {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SortKey < out[j].SortKey })
	return out, nil
}

// FindByCode はコードに一致するアクティブな銘柄を返します。
// "BTC-USD"の完全一致に加え、ベース資産のみの"BTC"も受け付けます。
func (r *symbolStatic) FindByCode(_ context.Context, code string) (entity.Symbol, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, s := range r.symbols {
		if !s.IsActive {
			continue
		}
		if s.Code == code || baseAsset(s.Code) == code {
			return s, nil
		}
	}
	return entity.Symbol{}, fmt.Errorf("%q: %w", code, usecase.ErrSymbolNotFound)
}

// baseAsset は"BTC-USD"から"BTC"を取り出します。
func baseAsset(code string) string {
	if i := strings.IndexByte(code, '-'); i > 0 {
		return code[:i]
	}
	return code
}
