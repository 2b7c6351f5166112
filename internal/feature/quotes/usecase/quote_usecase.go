package usecase

import (
	"context"
	"fmt"

	"crypto_dashboard/internal/feature/quotes/domain/entity"
	symbolentity "crypto_dashboard/internal/feature/symbollist/domain/entity"
)

// QuoteSource は銘柄のブロックチェーン識別子から現在の気配を取得する
// リポジトリのインターフェイスです。外部 API の実装を抽象化します。
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type QuoteSource interface {
	// FetchQuote は1回の外部呼び出しで現在価格と24時間変化率を取得します。
	// Symbol/Nameフィールドは設定されません（呼び出し側で補完します）。
	FetchQuote(ctx context.Context, blockchain, address string) (entity.Quote, error)
}

// SymbolCatalog は対応銘柄カタログへの読み取りアクセスを抽象化します。
type SymbolCatalog interface {
	FindByCode(ctx context.Context, code string) (symbolentity.Symbol, error)
}

// QuoteUsecase は価格カード1枚分の気配取得のユースケースを定義します。
// 呼び出しごとに外部APIを1回だけ叩き、キャッシュもリトライも行いません。
// カード間の順序や整合性は保証しません（各カードは独立に取得されます）。
type QuoteUsecase struct {
	source  QuoteSource
	catalog SymbolCatalog
}

// NewQuoteUsecase はQuoteUsecaseの新しいインスタンスを生成します。
func NewQuoteUsecase(source QuoteSource, catalog SymbolCatalog) *QuoteUsecase {
	return &QuoteUsecase{source: source, catalog: catalog}
}

// GetQuote は指定された銘柄の現在価格スナップショットを返します。
// 銘柄がカタログにない、または気配ソースのマッピングを持たない場合は、
// 外部呼び出しを行わずにErrUnsupportedSymbolを返します。
func (qu *QuoteUsecase) GetQuote(ctx context.Context, code string) (*entity.Quote, error) {
	sym, err := qu.catalog.FindByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", code, ErrUnsupportedSymbol)
	}
	if !sym.HasQuote() {
		return nil, fmt.Errorf("%q has no quote source mapping: %w", sym.Code, ErrUnsupportedSymbol)
	}

	q, err := qu.source.FetchQuote(ctx, sym.Blockchain, sym.Address)
	if err != nil {
		return nil, err
	}

	q.Symbol = sym.Code
	q.Name = sym.Name
	return &q, nil
}
