package restapi

import (
	"encoding/json"
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/shopspring/decimal"
)

// Модели ответа API. Цены и остатки приходят строкой или числом,
// decimal.Decimal принимает оба варианта.

type categoryModel struct {
	ID          string `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion,omitempty"`
	Activo      bool   `json:"activo"`
	Count       *struct {
		Productos int `json:"productos"`
	} `json:"_count,omitempty"`
}

type productModel struct {
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
	Categoria      *categoryModel  `json:"categoria,omitempty"`
}

type scheduleModel struct {
	ID           string `json:"id"`
	Dia          string `json:"dia"`
	HoraApertura string `json:"horaApertura"`
	HoraCierre   string `json:"horaCierre"`
	Cerrado      bool   `json:"cerrado"`
	Activo       bool   `json:"activo"`
}

type locationModel struct {
	ID     string          `json:"id"`
	Nombre string          `json:"nombre"`
	Costo  decimal.Decimal `json:"costo"`
	Activo bool            `json:"activo"`
}

type userModel struct {
	ID              string     `json:"id"`
	Nombre          string     `json:"nombre"`
	Telefono        string     `json:"telefono"`
	Rol             string     `json:"rol"`
	FechaNacimiento string     `json:"fechaNacimiento,omitempty"`
	CreatedAt       *time.Time `json:"createdAt,omitempty"`
}

type partyModel struct {
	ID       string `json:"id"`
	Nombre   string `json:"nombre"`
	Telefono string `json:"telefono"`
}

type orderLineModel struct {
	ID             string          `json:"id"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	Producto       productModel    `json:"producto"`
}

type orderModel struct {
	ID           string           `json:"id"`
	UsuarioID    string           `json:"usuarioId"`
	Usuario      *partyModel      `json:"usuario,omitempty"`
	Repartidor   *partyModel      `json:"repartidor,omitempty"`
	Estado       string           `json:"estado"`
	Subtotal     decimal.Decimal  `json:"subtotal"`
	CostoEnvio   decimal.Decimal  `json:"costoEnvio"`
	Total        decimal.Decimal  `json:"total"`
	FechaEncargo *time.Time       `json:"fechaEncargo,omitempty"`
	Notas        string           `json:"notas,omitempty"`
	FechaEntrega *time.Time       `json:"fechaEntrega,omitempty"`
	CreatedAt    *time.Time       `json:"createdAt,omitempty"`
	Detalles     []orderLineModel `json:"detalles"`
}

type authModel struct {
	AccessToken string     `json:"accessToken"`
	Usuario     *userModel `json:"usuario,omitempty"`
}

type requestCodeModel struct {
	EsNuevoUsuario bool `json:"esNuevoUsuario"`
}

// Тела запросов. Числа отправляются как JSON-числа.

type orderItemBody struct {
	ProductoID string `json:"productoId"`
	Cantidad   int    `json:"cantidad"`
}

type placeOrderBody struct {
	Items          []orderItemBody `json:"items"`
	UbicacionEnvio string          `json:"ubicacionEnvio"`
	FechaEncargo   string          `json:"fechaEncargo,omitempty"`
	Notas          string          `json:"notas,omitempty"`
	CostoEnvio     json.Number     `json:"costoEnvio"`
}

type orderStatusBody struct {
	Estado       string `json:"estado"`
	RepartidorID string `json:"repartidorId,omitempty"`
}

type stockBody struct {
	Cantidad json.Number `json:"cantidad"`
}

type activeBody struct {
	Activo bool `json:"activo"`
}

type categoryBody struct {
	Nombre      *string `json:"nombre,omitempty"`
	Descripcion *string `json:"descripcion,omitempty"`
	Activo      *bool   `json:"activo,omitempty"`
}

type locationBody struct {
	Nombre *string      `json:"nombre,omitempty"`
	Costo  *json.Number `json:"costo,omitempty"`
	Activo *bool        `json:"activo,omitempty"`
}

type scheduleBody struct {
	Dia          string `json:"dia,omitempty"`
	HoraApertura string `json:"horaApertura"`
	HoraCierre   string `json:"horaCierre"`
	Cerrado      bool   `json:"cerrado"`
}

type userBody struct {
	Nombre          *string `json:"nombre,omitempty"`
	Telefono        *string `json:"telefono,omitempty"`
	FechaNacimiento *string `json:"fechaNacimiento,omitempty"`
}

type roleBody struct {
	Rol string `json:"rol"`
}

type requestCodeBody struct {
	Telefono string `json:"telefono"`
	Nombre   string `json:"nombre,omitempty"`
}

type verifyCodeBody struct {
	Telefono string `json:"telefono"`
	Codigo   string `json:"codigo"`
}

// CONVERTERS

func toCategory(m *categoryModel) domain.Category {
	c := domain.Category{
		ID:          m.ID,
		Name:        m.Nombre,
		Description: m.Descripcion,
		Active:      m.Activo,
	}
	if m.Count != nil {
		c.ProductCount = m.Count.Productos
	}

	return c
}

func toProduct(m *productModel) domain.Product {
	p := domain.Product{
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
	}
	if m.Categoria != nil {
		category := toCategory(m.Categoria)
		p.Category = &category
	}

	return p
}

func toSchedule(m *scheduleModel) domain.ScheduleEntry {
	return domain.ScheduleEntry{
		ID:          m.ID,
		Day:         domain.Weekday(m.Dia),
		OpeningTime: m.HoraApertura,
		ClosingTime: m.HoraCierre,
		Closed:      m.Cerrado,
		Active:      m.Activo,
	}
}

func toLocation(m *locationModel) domain.Location {
	return domain.Location{
		ID:     m.ID,
		Name:   m.Nombre,
		Cost:   m.Costo,
		Active: m.Activo,
	}
}

func toUser(m *userModel) *domain.User {
	if m == nil {
		return nil
	}

	u := &domain.User{
		ID:        m.ID,
		Name:      m.Nombre,
		Phone:     m.Telefono,
		Role:      domain.Role(m.Rol),
		BirthDate: m.FechaNacimiento,
	}
	if m.CreatedAt != nil {
		u.CreatedAt = *m.CreatedAt
	}

	return u
}

func toParty(m *partyModel) *domain.OrderParty {
	if m == nil {
		return nil
	}

	return &domain.OrderParty{ID: m.ID, Name: m.Nombre, Phone: m.Telefono}
}

func toOrder(m *orderModel) domain.Order {
	o := domain.Order{
		ID:            m.ID,
		UserID:        m.UsuarioID,
		Courier:       toParty(m.Repartidor),
		Status:        domain.OrderStatus(m.Estado),
		Subtotal:      m.Subtotal,
		ShippingCost:  m.CostoEnvio,
		Total:         m.Total,
		FulfillmentAt: m.FechaEncargo,
		Notes:         m.Notas,
		DeliveredAt:   m.FechaEntrega,
		Lines:         make([]domain.OrderLine, 0, len(m.Detalles)),
	}
	if party := toParty(m.Usuario); party != nil {
		o.User = *party
	}
	if m.CreatedAt != nil {
		o.CreatedAt = *m.CreatedAt
	}

	for i := range m.Detalles {
		d := &m.Detalles[i]
		o.Lines = append(o.Lines, domain.OrderLine{
			ID:        d.ID,
			Quantity:  d.Cantidad,
			UnitPrice: d.PrecioUnitario,
			Subtotal:  d.Subtotal,
			Product:   toProduct(&d.Producto),
		})
	}

	return o
}

func toArr[M any, T any](models []M, conv func(*M) T) []T {
	res := make([]T, 0, len(models))
	for i := range models {
		res = append(res, conv(&models[i]))
	}

	return res
}

func number(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}
