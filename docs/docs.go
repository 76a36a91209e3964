// Package docs содержит описание HTTP API витрины в формате Swagger 2.0.
// Описание соответствует аннотациям обработчиков в internal/delivery/v1/http.
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
        "/products": {
            "get": {
                "description": "Возвращает товары категории в порядке каталога. Без параметра или с \"all\" возвращается весь каталог.",
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Товары каталога",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Идентификатор категории",
                        "name": "category",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/http.ProductListResponse"}
                    }
                }
            }
        },
        "/products/featured": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Популярные товары",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/http.ProductListResponse"}
                    }
                }
            }
        },
        "/products/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Товар по идентификатору",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Идентификатор товара",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/http.ProductResponse"}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/http.ErrorResponse"}
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {"$ref": "#/definitions/http.ErrorResponse"}
                    }
                }
            }
        },
        "/categories": {
            "get": {
                "description": "Первая категория всегда \"all\".",
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Категории каталога",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/http.CategoryListResponse"}
                    }
                }
            }
        },
        "/cart": {
            "get": {
                "produces": ["application/json"],
                "tags": ["cart"],
                "summary": "Корзина текущей сессии",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/http.CartResponse"}
                    }
                }
            },
            "delete": {
                "description": "Корзина удаляется, cookie сессии сбрасывается.",
                "tags": ["cart"],
                "summary": "Завершить сессию",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/cart/items": {
            "post": {
                "description": "Повторное добавление увеличивает количество на 1.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["cart"],
                "summary": "Добавить товар в корзину",
                "parameters": [
                    {
                        "description": "Товар",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.AddCartItemRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/http.CartResponse"}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/http.ErrorResponse"}
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {"$ref": "#/definitions/http.ErrorResponse"}
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {"$ref": "#/definitions/http.ErrorResponse"}
                    }
                }
            }
        },
        "/cart/items/{productID}": {
            "delete": {
                "produces": ["application/json"],
                "tags": ["cart"],
                "summary": "Удалить товар из корзины",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Идентификатор товара",
                        "name": "productID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/http.CartResponse"}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/http.ErrorResponse"}
                    }
                }
            },
            "patch": {
                "description": "Количество меняется на delta, но не опускается ниже 1.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["cart"],
                "summary": "Изменить количество товара",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Идентификатор товара",
                        "name": "productID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Изменение количества",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.UpdateCartItemRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/http.CartResponse"}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/http.ErrorResponse"}
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {"$ref": "#/definitions/http.ErrorResponse"}
                    }
                }
            }
        }
    },
    "definitions": {
        "http.AddCartItemRequest": {
            "type": "object",
            "properties": {
                "product_id": {"type": "integer"}
            }
        },
        "http.UpdateCartItemRequest": {
            "type": "object",
            "properties": {
                "delta": {"type": "integer"}
            }
        },
        "http.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "message": {"type": "string"}
            }
        },
        "http.ProductResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "price": {"type": "string"},
                "currency": {"type": "string"},
                "category": {"type": "string"},
                "image": {"type": "string"},
                "image_kind": {"type": "string"}
            }
        },
        "http.ProductListResponse": {
            "type": "object",
            "properties": {
                "category": {"type": "string"},
                "products": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/http.ProductResponse"}
                }
            }
        },
        "http.CategoryResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "http.CategoryListResponse": {
            "type": "object",
            "properties": {
                "categories": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/http.CategoryResponse"}
                }
            }
        },
        "http.CartItemResponse": {
            "type": "object",
            "properties": {
                "product_id": {"type": "integer"},
                "name": {"type": "string"},
                "price": {"type": "string"},
                "category": {"type": "string"},
                "image": {"type": "string"},
                "image_kind": {"type": "string"},
                "quantity": {"type": "integer"},
                "subtotal": {"type": "string"}
            }
        },
        "http.CartResponse": {
            "type": "object",
            "properties": {
                "items": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/http.CartItemResponse"}
                },
                "total_items": {"type": "integer"},
                "total_price": {"type": "string"},
                "currency": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo содержит метаданные API, подставляемые в docTemplate.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Storefront API",
	Description:      "Каталог товаров с фильтрацией по категориям и корзина сессии.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
