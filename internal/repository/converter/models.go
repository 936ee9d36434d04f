package converter

import "github.com/shopspring/decimal"

// CartStorageModel описывает запись корзины в хранилище, например {"state":{"items":[...]},"version":0}.
type CartStorageModel struct {
	State   CartStateModel `json:"state"`
	Version int            `json:"version"`
}

type CartStateModel struct {
	Items []CartItemModel `json:"items"`
}

type CartItemModel struct {
	Producto ProductModel `json:"producto"`
	Cantidad int          `json:"cantidad"`
}

// ProductModel: снимок товара на момент добавления в корзину.
type ProductModel struct {
	ID             string          `json:"id"`
	Nombre         string          `json:"nombre"`
	CodigoBarras   string          `json:"codigoBarras,omitempty"`
	Marca          string          `json:"marca,omitempty"`
	Contenido      string          `json:"contenido,omitempty"`
	Medida         string          `json:"medida,omitempty"`
	Descripcion    string          `json:"descripcion,omitempty"`
	PrecioCompra   decimal.Decimal `json:"precioCompra"`
	PrecioVenta    decimal.Decimal `json:"precioVenta"`
	Stock          decimal.Decimal `json:"stock"`
	Imagen         string          `json:"imagen,omitempty"`
	PermiteEncargo bool            `json:"permiteEncargo"`
	Activo         bool            `json:"activo"`
	CategoriaID    string          `json:"categoriaId"`
}
