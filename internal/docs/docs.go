// Package docs registers the OpenAPI description served at /swagger.
// Regenerate with: swag init -g cmd/api/main.go -o internal/docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/auth/register": {
            "post": {
                "tags": ["auth"],
                "summary": "Register a new user",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handlers.RegisterRequest"}}],
                "responses": {
                    "201": {"description": "User registered and token generated", "schema": {"$ref": "#/definitions/handlers.AuthResponse"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "409": {"description": "Email already registered", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Login user",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handlers.LoginRequest"}}],
                "responses": {
                    "200": {"description": "User authenticated and token generated", "schema": {"$ref": "#/definitions/handlers.AuthResponse"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/profile": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["user"],
                "summary": "Get user profile",
                "produces": ["application/json"],
                "responses": {"200": {"description": "User profile", "schema": {"$ref": "#/definitions/handlers.UserResponse"}}}
            }
        },
        "/categories": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["categories"],
                "summary": "List categories",
                "parameters": [{"type": "string", "enum": ["income", "expense"], "name": "type", "in": "query"}],
                "responses": {"200": {"description": "List of categories"}}
            }
        },
        "/categories/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["categories"],
                "summary": "Get category by ID",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "Category details"}, "404": {"description": "Category not found"}}
            }
        },
        "/transactions": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["transactions"],
                "summary": "List transactions",
                "parameters": [
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "pageSize", "in": "query"},
                    {"type": "string", "format": "date", "name": "startDate", "in": "query"},
                    {"type": "string", "format": "date", "name": "endDate", "in": "query"},
                    {"type": "string", "enum": ["income", "expense"], "name": "type", "in": "query"},
                    {"type": "string", "name": "categoryId", "in": "query"}
                ],
                "responses": {"200": {"description": "Paginated transactions"}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["transactions"],
                "summary": "Create a transaction",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handlers.TransactionRequest"}}],
                "responses": {"201": {"description": "Transaction created"}, "400": {"description": "Invalid input"}}
            }
        },
        "/transactions/recent": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["transactions"],
                "summary": "Recent transactions",
                "parameters": [{"type": "integer", "name": "limit", "in": "query"}],
                "responses": {"200": {"description": "Recent transactions"}}
            }
        },
        "/transactions/export": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["transactions"],
                "summary": "Export transactions",
                "produces": ["text/csv", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"],
                "parameters": [
                    {"type": "string", "enum": ["csv", "xlsx"], "name": "format", "in": "query"},
                    {"type": "string", "format": "date", "name": "startDate", "in": "query"},
                    {"type": "string", "format": "date", "name": "endDate", "in": "query"}
                ],
                "responses": {"200": {"description": "Export file", "schema": {"type": "file"}}}
            }
        },
        "/transactions/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["transactions"],
                "summary": "Get transaction by ID",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "Transaction details"}, "404": {"description": "Transaction not found"}}
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["transactions"],
                "summary": "Update transaction",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handlers.TransactionRequest"}}
                ],
                "responses": {"200": {"description": "Updated transaction"}, "404": {"description": "Transaction not found"}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["transactions"],
                "summary": "Delete transaction",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "Transaction deleted"}, "404": {"description": "Transaction not found"}}
            }
        },
        "/budgets": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["budgets"],
                "summary": "List budgets",
                "parameters": [
                    {"type": "integer", "name": "month", "in": "query"},
                    {"type": "integer", "name": "year", "in": "query"}
                ],
                "responses": {"200": {"description": "Budgets"}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["budgets"],
                "summary": "Set a budget",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handlers.UpsertBudgetRequest"}}],
                "responses": {"200": {"description": "Budget stored"}, "409": {"description": "Concurrent update"}}
            }
        },
        "/budgets/analysis": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["budgets"],
                "summary": "Budget analysis",
                "parameters": [
                    {"type": "integer", "name": "month", "in": "query", "required": true},
                    {"type": "integer", "name": "year", "in": "query", "required": true}
                ],
                "responses": {"200": {"description": "Analysis"}}
            }
        },
        "/budgets/{id}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["budgets"],
                "summary": "Delete budget",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "Budget deleted"}, "404": {"description": "Budget not found"}}
            }
        },
        "/dashboard/summary": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["dashboard"],
                "summary": "Dashboard summary",
                "parameters": [
                    {"type": "string", "format": "date", "name": "startDate", "in": "query"},
                    {"type": "string", "format": "date", "name": "endDate", "in": "query"}
                ],
                "responses": {"200": {"description": "Summary"}}
            }
        }
    },
    "definitions": {
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "object", "properties": {"code": {"type": "string"}, "message": {"type": "string"}}}}
        },
        "handlers.RegisterRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {"email": {"type": "string"}, "password": {"type": "string", "minLength": 8}, "fullName": {"type": "string"}}
        },
        "handlers.LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}}
        },
        "handlers.UserResponse": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "email": {"type": "string"}, "fullName": {"type": "string"}}
        },
        "handlers.AuthResponse": {
            "type": "object",
            "properties": {"token": {"type": "string"}, "user": {"$ref": "#/definitions/handlers.UserResponse"}}
        },
        "handlers.TransactionRequest": {
            "type": "object",
            "required": ["categoryId", "type", "amount", "description"],
            "properties": {
                "categoryId": {"type": "string"},
                "type": {"type": "string", "enum": ["income", "expense"]},
                "amount": {"type": "string", "example": "12.50"},
                "description": {"type": "string"},
                "date": {"type": "string", "format": "date"}
            }
        },
        "handlers.UpsertBudgetRequest": {
            "type": "object",
            "required": ["categoryId", "month", "year", "amount"],
            "properties": {
                "categoryId": {"type": "string"},
                "month": {"type": "integer", "minimum": 1, "maximum": 12},
                "year": {"type": "integer"},
                "amount": {"type": "string", "example": "300.00"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Budgetly API",
	Description:      "Budgetly tracks income and expenses against monthly category budgets.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
