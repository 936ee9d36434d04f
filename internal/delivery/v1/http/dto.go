package http

import (
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/shopspring/decimal"
)

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

type CategoryDTO struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	Active       bool   `json:"active"`
	ProductCount int    `json:"productCount"`
}

func toCategoryDTO(c *domain.Category) CategoryDTO {
	return CategoryDTO{
		ID:           c.ID,
		Name:         c.Name,
		Description:  c.Description,
		Active:       c.Active,
		ProductCount: c.ProductCount,
	}
}

func toArrCategoryDTO(categories []domain.Category) []CategoryDTO {
	res := make([]CategoryDTO, 0, len(categories))
	for i := range categories {
		res = append(res, toCategoryDTO(&categories[i]))
	}

	return res
}

type ProductDTO struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Barcode         string       `json:"barcode,omitempty"`
	Brand           string       `json:"brand,omitempty"`
	Content         string       `json:"content,omitempty"`
	Unit            string       `json:"unit,omitempty"`
	Description     string       `json:"description,omitempty"`
	Price           string       `json:"price"`
	PurchasePrice   string       `json:"purchasePrice,omitempty"`
	Stock           string       `json:"stock"`
	Image           string       `json:"image,omitempty"`
	AllowsBackorder bool         `json:"allowsBackorder"`
	Backorder       bool         `json:"backorder"`
	Active          bool         `json:"active"`
	CategoryID      string       `json:"categoryId"`
	Category        *CategoryDTO `json:"category,omitempty"`
}

// toProductDTO: цена закупки отдается только администратору.
func toProductDTO(p *domain.Product, admin bool) ProductDTO {
	dto := ProductDTO{
		ID:              p.ID,
		Name:            p.Name,
		Barcode:         p.Barcode,
		Brand:           p.Brand,
		Content:         p.Content,
		Unit:            string(p.Unit),
		Description:     p.Description,
		Price:           money(p.SalePrice),
		Stock:           p.Stock.String(),
		Image:           p.Image,
		AllowsBackorder: p.AllowsBackorder,
		Backorder:       p.IsBackorder(),
		Active:          p.Active,
		CategoryID:      p.CategoryID,
	}
	if admin {
		dto.PurchasePrice = money(p.PurchasePrice)
	}
	if p.Category != nil {
		c := toCategoryDTO(p.Category)
		dto.Category = &c
	}

	return dto
}

func toArrProductDTO(products []domain.Product, admin bool) []ProductDTO {
	res := make([]ProductDTO, 0, len(products))
	for i := range products {
		res = append(res, toProductDTO(&products[i], admin))
	}

	return res
}

type HoursDTO struct {
	State        string            `json:"state"`
	CanOrderNow  bool              `json:"canOrderNow"`
	Today        *ScheduleEntryDTO `json:"today,omitempty"`
	CheckedAtUTC time.Time         `json:"checkedAt"`
}

func toHoursDTO(s *domain.HoursStatus, now time.Time) HoursDTO {
	dto := HoursDTO{
		State:        s.State.String(),
		CanOrderNow:  s.AllowsImmediateOrder(),
		CheckedAtUTC: now.UTC(),
	}
	if s.Today != nil {
		today := toScheduleEntryDTO(s.Today)
		dto.Today = &today
	}

	return dto
}

type ScheduleEntryDTO struct {
	ID          string `json:"id"`
	Day         string `json:"day"`
	OpeningTime string `json:"openingTime"`
	ClosingTime string `json:"closingTime"`
	Closed      bool   `json:"closed"`
	Active      bool   `json:"active"`
}

func toScheduleEntryDTO(s *domain.ScheduleEntry) ScheduleEntryDTO {
	return ScheduleEntryDTO{
		ID:          s.ID,
		Day:         string(s.Day),
		OpeningTime: s.OpeningTime,
		ClosingTime: s.ClosingTime,
		Closed:      s.Closed,
		Active:      s.Active,
	}
}

func toArrScheduleDTO(entries []domain.ScheduleEntry) []ScheduleEntryDTO {
	res := make([]ScheduleEntryDTO, 0, len(entries))
	for i := range entries {
		res = append(res, toScheduleEntryDTO(&entries[i]))
	}

	return res
}

type LocationDTO struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Cost   string `json:"cost"`
	Active bool   `json:"active"`
}

func toArrLocationDTO(locations []domain.Location) []LocationDTO {
	res := make([]LocationDTO, 0, len(locations))
	for _, l := range locations {
		res = append(res, toLocationDTO(&l))
	}

	return res
}

func toLocationDTO(l *domain.Location) LocationDTO {
	return LocationDTO{
		ID:     l.ID,
		Name:   l.Name,
		Cost:   money(l.Cost),
		Active: l.Active,
	}
}

type CartLineDTO struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Image     string `json:"image,omitempty"`
	UnitPrice string `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
	Subtotal  string `json:"subtotal"`
	Stock     string `json:"stock"`
	Backorder bool   `json:"backorder"`
}

type CartDTO struct {
	Items     []CartLineDTO `json:"items"`
	Total     string        `json:"total"`
	ItemCount int           `json:"itemCount"`
}

func toCartDTO(v *usecase.CartView) CartDTO {
	items := make([]CartLineDTO, 0, len(v.Items))
	for _, l := range v.Items {
		items = append(items, CartLineDTO{
			ProductID: l.ProductID,
			Name:      l.Name,
			Image:     l.Image,
			UnitPrice: money(l.UnitPrice),
			Quantity:  l.Quantity,
			Subtotal:  money(l.Subtotal),
			Stock:     l.Stock.String(),
			Backorder: l.Backorder,
		})
	}

	return CartDTO{
		Items:     items,
		Total:     money(v.Total),
		ItemCount: v.ItemCount,
	}
}

type QuoteDTO struct {
	Subtotal            string        `json:"subtotal"`
	ShippingCost        string        `json:"shippingCost"`
	Total               string        `json:"total"`
	Hours               HoursDTO      `json:"hours"`
	RequiresFulfillment bool          `json:"requiresFulfillment"`
	MinFulfillmentAt    time.Time     `json:"minFulfillmentAt"`
	Locations           []LocationDTO `json:"locations"`
}

func toQuoteDTO(q *usecase.QuoteRes, now time.Time) QuoteDTO {
	return QuoteDTO{
		Subtotal:            money(q.Subtotal),
		ShippingCost:        money(q.ShippingCost),
		Total:               money(q.Total),
		Hours:               toHoursDTO(&q.Hours, now),
		RequiresFulfillment: q.RequiresFulfillment,
		MinFulfillmentAt:    q.MinFulfillmentAt,
		Locations:           toArrLocationDTO(q.Locations),
	}
}

type PartyDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type OrderLineDTO struct {
	ID        string     `json:"id"`
	Quantity  string     `json:"quantity"`
	UnitPrice string     `json:"unitPrice"`
	Subtotal  string     `json:"subtotal"`
	Product   ProductDTO `json:"product"`
}

type OrderDTO struct {
	ID            string         `json:"id"`
	UserID        string         `json:"userId"`
	User          PartyDTO       `json:"user"`
	Courier       *PartyDTO      `json:"courier,omitempty"`
	Status        string         `json:"status"`
	Subtotal      string         `json:"subtotal"`
	ShippingCost  string         `json:"shippingCost"`
	Total         string         `json:"total"`
	FulfillmentAt *time.Time     `json:"fulfillmentAt,omitempty"`
	Notes         string         `json:"notes,omitempty"`
	DeliveredAt   *time.Time     `json:"deliveredAt,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
	Lines         []OrderLineDTO `json:"lines"`
}

func toOrderDTO(o *domain.Order) OrderDTO {
	lines := make([]OrderLineDTO, 0, len(o.Lines))
	for i := range o.Lines {
		l := &o.Lines[i]
		lines = append(lines, OrderLineDTO{
			ID:        l.ID,
			Quantity:  l.Quantity.String(),
			UnitPrice: money(l.UnitPrice),
			Subtotal:  money(l.Subtotal),
			Product:   toProductDTO(&l.Product, false),
		})
	}

	dto := OrderDTO{
		ID:            o.ID,
		UserID:        o.UserID,
		User:          PartyDTO(o.User),
		Status:        string(o.Status),
		Subtotal:      money(o.Subtotal),
		ShippingCost:  money(o.ShippingCost),
		Total:         money(o.Total),
		FulfillmentAt: o.FulfillmentAt,
		Notes:         o.Notes,
		DeliveredAt:   o.DeliveredAt,
		CreatedAt:     o.CreatedAt,
		Lines:         lines,
	}
	if o.Courier != nil {
		c := PartyDTO(*o.Courier)
		dto.Courier = &c
	}

	return dto
}

func toArrOrderDTO(orders []domain.Order) []OrderDTO {
	res := make([]OrderDTO, 0, len(orders))
	for i := range orders {
		res = append(res, toOrderDTO(&orders[i]))
	}

	return res
}

type PlacedOrderDTO struct {
	OrderID       string     `json:"orderId"`
	Total         string     `json:"total"`
	FulfillmentAt *time.Time `json:"fulfillmentAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

func toArrPlacedOrderDTO(orders []usecase.PlacedOrder) []PlacedOrderDTO {
	res := make([]PlacedOrderDTO, 0, len(orders))
	for _, o := range orders {
		res = append(res, PlacedOrderDTO{
			OrderID:       o.OrderID,
			Total:         money(o.Total),
			FulfillmentAt: o.FulfillmentAt,
			CreatedAt:     o.CreatedAt,
		})
	}

	return res
}

type UserDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	BirthDate string    `json:"birthDate,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func toUserDTO(u *domain.User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		Name:      u.Name,
		Phone:     u.Phone,
		Role:      string(u.Role),
		BirthDate: u.BirthDate,
		CreatedAt: u.CreatedAt,
	}
}

func toArrUserDTO(users []domain.User) []UserDTO {
	res := make([]UserDTO, 0, len(users))
	for i := range users {
		res = append(res, toUserDTO(&users[i]))
	}

	return res
}
