package converter

import (
	"encoding/json"

	"github.com/DRSN-tech/storefront/internal/domain"
)

// CartStorageVersion: версия формата записи корзины.
const CartStorageVersion = 0

// CartConverter преобразует корзину между domain и моделью хранилища.
type CartConverter struct{}

func NewCartConverter() CartConverter {
	return CartConverter{}
}

func (CartConverter) ToModel(cart *domain.Cart) *CartStorageModel {
	items := make([]CartItemModel, 0, len(cart.Items))
	for _, item := range cart.Items {
		p := item.Product
		items = append(items, CartItemModel{
			Producto: ProductModel{
				ID:             p.ID,
				Nombre:         p.Name,
				CodigoBarras:   p.Barcode,
				Marca:          p.Brand,
				Contenido:      p.Content,
				Medida:         string(p.Unit),
				Descripcion:    p.Description,
				PrecioCompra:   p.PurchasePrice,
				PrecioVenta:    p.SalePrice,
				Stock:          p.Stock,
				Imagen:         p.Image,
				PermiteEncargo: p.AllowsBackorder,
				Activo:         p.Active,
				CategoriaID:    p.CategoryID,
			},
			Cantidad: item.Quantity,
		})
	}

	return &CartStorageModel{
		State:   CartStateModel{Items: items},
		Version: CartStorageVersion,
	}
}

// ToEntity восстанавливает корзину. Позиции с количеством < 1 и повторы товара отбрасываются.
func (CartConverter) ToEntity(model *CartStorageModel) *domain.Cart {
	cart := domain.NewCart()
	for _, item := range model.State.Items {
		if item.Cantidad <= 0 || item.Producto.ID == "" {
			continue
		}
		if _, ok := cart.Find(item.Producto.ID); ok {
			continue
		}

		m := item.Producto
		cart.Items = append(cart.Items, domain.CartItem{
			Product: domain.Product{
				ID:              m.ID,
				Name:            m.Nombre,
				Barcode:         m.CodigoBarras,
				Brand:           m.Marca,
				Content:         m.Contenido,
				Unit:            domain.UnitOfMeasure(m.Medida),
				Description:     m.Descripcion,
				PurchasePrice:   m.PrecioCompra,
				SalePrice:       m.PrecioVenta,
				Stock:           m.Stock,
				Image:           m.Imagen,
				AllowsBackorder: m.PermiteEncargo,
				Active:          m.Activo,
				CategoryID:      m.CategoriaID,
			},
			Quantity: item.Cantidad,
		})
	}

	return cart
}

func (c CartConverter) Marshal(cart *domain.Cart) ([]byte, error) {
	return json.Marshal(c.ToModel(cart))
}

// Unmarshal разбирает запись; пустые данные дают пустую корзину.
func (c CartConverter) Unmarshal(data []byte) (*domain.Cart, error) {
	if len(data) == 0 {
		return domain.NewCart(), nil
	}

	var model CartStorageModel
	if err := json.Unmarshal(data, &model); err != nil {
		return nil, err
	}

	return c.ToEntity(&model), nil
}

// CartKey: ключ корзины сессии в хранилище.
func CartKey(sessionID string) string {
	return domain.CartNamespace + ":" + sessionID
}
