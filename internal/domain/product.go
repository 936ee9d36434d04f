package domain

import "github.com/shopspring/decimal"

// UnitOfMeasure: единица измерения содержимого товара.
type UnitOfMeasure string

const (
	UnitLiter      UnitOfMeasure = "L"
	UnitMilliliter UnitOfMeasure = "ML"
	UnitKilogram   UnitOfMeasure = "KG"
	UnitGram       UnitOfMeasure = "GR"
	UnitPiece      UnitOfMeasure = "PZ"
	UnitMeter      UnitOfMeasure = "MTR"
)

// Product описывает товар каталога. Источник истины: внешний API, здесь только чтение.
type Product struct {
	ID              string
	Name            string
	Barcode         string
	Brand           string
	Content         string
	Unit            UnitOfMeasure
	Description     string
	PurchasePrice   decimal.Decimal
	SalePrice       decimal.Decimal
	Stock           decimal.Decimal
	Image           string
	AllowsBackorder bool // товар можно заказать "под заказ" при нулевом остатке
	Active          bool
	CategoryID      string
	Category        *Category
}

// IsBackorder сообщает, что товара нет в наличии, но его можно заказать заранее.
func (p *Product) IsBackorder() bool {
	return p.Stock.IsZero() && p.AllowsBackorder
}

// AcceptsQuantity проверяет количество против остатка:
// при положительном остатке количество ограничено им, при нулевом допустимо только под заказ.
func (p *Product) AcceptsQuantity(quantity int) bool {
	if quantity <= 0 {
		return false
	}

	if p.Stock.IsPositive() {
		return decimal.NewFromInt(int64(quantity)).LessThanOrEqual(p.Stock)
	}

	return p.AllowsBackorder
}

// Listed сообщает, виден ли товар в витрине: активен и есть в наличии либо доступен под заказ.
func (p *Product) Listed() bool {
	return p.Active && (p.Stock.IsPositive() || p.AllowsBackorder)
}
