// Package docs содержит описание HTTP API витрины для swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/catalog/home": {
            "get": {
                "tags": ["catalog"],
                "summary": "Главная страница",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/http.HomeDTO"}}}
            }
        },
        "/catalog/products": {
            "get": {
                "tags": ["catalog"],
                "summary": "Товары витрины",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "description": "Поиск по названию, марке и описанию", "name": "q", "in": "query"},
                    {"type": "string", "description": "ID категории", "name": "category", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/http.ProductDTO"}}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/catalog/products/{id}": {
            "get": {
                "tags": ["catalog"],
                "summary": "Карточка товара",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "description": "ID товара", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.ProductDTO"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/hours/status": {
            "get": {
                "tags": ["hours"],
                "summary": "Часы работы сейчас",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/http.HoursDTO"}}}
            }
        },
        "/cart/items": {
            "post": {
                "tags": ["cart"],
                "summary": "Добавить товар в корзину",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"description": "Товар и количество", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.AddItemBody"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.CartDTO"}},
                    "400": {"description": "Нет в наличии или превышен остаток", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/checkout": {
            "post": {
                "tags": ["checkout"],
                "summary": "Оформить заказ",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"description": "Данные оформления", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.CheckoutBody"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/http.OrderDTO"}},
                    "400": {"description": "Ошибки полей формы", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "401": {"description": "Нужен вход по телефону", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/auth/request-code": {
            "post": {
                "tags": ["auth"],
                "summary": "Запросить код входа",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"description": "Телефон и имя", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.RequestCodeBody"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/http.RequestCodeDTO"}}}
            }
        },
        "/auth/verify-code": {
            "post": {
                "tags": ["auth"],
                "summary": "Подтвердить код",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"description": "Телефон и код", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.VerifyCodeBody"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/http.SignInDTO"}}}
            }
        },
        "/admin/products": {
            "post": {
                "tags": ["admin"],
                "summary": "Создать товар",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"description": "Товар", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.ProductBody"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/http.ProductDTO"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/admin/orders/{id}/status": {
            "patch": {
                "tags": ["admin"],
                "summary": "Сменить статус заказа",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "description": "ID заказа", "name": "id", "in": "path", "required": true},
                    {"description": "Новый статус и курьер", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.OrderStatusBody"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/http.OrderDTO"}}}
            }
        }
    },
    "definitions": {
        "http.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "message": {"type": "string"},
                "fields": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "http.CategoryDTO": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "description": {"type": "string"},
                "active": {"type": "boolean"},
                "productCount": {"type": "integer"}
            }
        },
        "http.ProductDTO": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "barcode": {"type": "string"},
                "brand": {"type": "string"},
                "content": {"type": "string"},
                "unit": {"type": "string"},
                "description": {"type": "string"},
                "price": {"type": "string"},
                "purchasePrice": {"type": "string"},
                "stock": {"type": "string"},
                "image": {"type": "string"},
                "allowsBackorder": {"type": "boolean"},
                "backorder": {"type": "boolean"},
                "active": {"type": "boolean"},
                "categoryId": {"type": "string"},
                "category": {"$ref": "#/definitions/http.CategoryDTO"}
            }
        },
        "http.ScheduleEntryDTO": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "day": {"type": "string"},
                "openingTime": {"type": "string"},
                "closingTime": {"type": "string"},
                "closed": {"type": "boolean"},
                "active": {"type": "boolean"}
            }
        },
        "http.HoursDTO": {
            "type": "object",
            "properties": {
                "state": {"type": "string", "enum": ["open_now", "outside_hours", "closed_all_day"]},
                "canOrderNow": {"type": "boolean"},
                "today": {"$ref": "#/definitions/http.ScheduleEntryDTO"},
                "checkedAt": {"type": "string"}
            }
        },
        "http.HomeDTO": {
            "type": "object",
            "properties": {
                "products": {"type": "array", "items": {"$ref": "#/definitions/http.ProductDTO"}},
                "categories": {"type": "array", "items": {"$ref": "#/definitions/http.CategoryDTO"}},
                "hours": {"$ref": "#/definitions/http.HoursDTO"}
            }
        },
        "http.AddItemBody": {
            "type": "object",
            "properties": {
                "productId": {"type": "string"},
                "quantity": {"type": "integer"}
            }
        },
        "http.CartLineDTO": {
            "type": "object",
            "properties": {
                "productId": {"type": "string"},
                "name": {"type": "string"},
                "image": {"type": "string"},
                "unitPrice": {"type": "string"},
                "quantity": {"type": "integer"},
                "subtotal": {"type": "string"},
                "stock": {"type": "string"},
                "backorder": {"type": "boolean"}
            }
        },
        "http.CartDTO": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/http.CartLineDTO"}},
                "total": {"type": "string"},
                "itemCount": {"type": "integer"}
            }
        },
        "http.CheckoutBody": {
            "type": "object",
            "properties": {
                "shippingDestination": {"type": "string"},
                "fulfillmentAt": {"type": "string"},
                "notes": {"type": "string"}
            }
        },
        "http.OrderDTO": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "userId": {"type": "string"},
                "status": {"type": "string"},
                "subtotal": {"type": "string"},
                "shippingCost": {"type": "string"},
                "total": {"type": "string"},
                "fulfillmentAt": {"type": "string"},
                "notes": {"type": "string"},
                "createdAt": {"type": "string"}
            }
        },
        "http.RequestCodeBody": {
            "type": "object",
            "properties": {
                "phone": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "http.RequestCodeDTO": {
            "type": "object",
            "properties": {
                "sent": {"type": "boolean"},
                "newUser": {"type": "boolean"}
            }
        },
        "http.VerifyCodeBody": {
            "type": "object",
            "properties": {
                "phone": {"type": "string"},
                "code": {"type": "string"}
            }
        },
        "http.UserDTO": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "phone": {"type": "string"},
                "role": {"type": "string"},
                "birthDate": {"type": "string"},
                "createdAt": {"type": "string"}
            }
        },
        "http.SignInDTO": {
            "type": "object",
            "properties": {
                "authenticated": {"type": "boolean"},
                "user": {"$ref": "#/definitions/http.UserDTO"}
            }
        },
        "http.ProductBody": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "barcode": {"type": "string"},
                "brand": {"type": "string"},
                "content": {"type": "string"},
                "unit": {"type": "string"},
                "description": {"type": "string"},
                "purchasePrice": {"type": "string"},
                "price": {"type": "string"},
                "stock": {"type": "string"},
                "allowsBackorder": {"type": "boolean"},
                "active": {"type": "boolean"},
                "categoryId": {"type": "string"}
            }
        },
        "http.OrderStatusBody": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "courierId": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Storefront API",
	Description:      "Витрина магазина: каталог, корзина, оформление заказа и панель администратора.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
