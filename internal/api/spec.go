package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// specDocument is the generated Swagger 2.0 description of the API, served
// at /spec and rendered by the /swagger page.
func specDocument() map[string]any {
	errorRef := map[string]any{"$ref": "#/definitions/Error"}
	validationRef := map[string]any{"$ref": "#/definitions/ValidationError"}
	expenseRef := map[string]any{"$ref": "#/definitions/ExpenseOut"}
	bearer := []map[string]any{{"Bearer": []any{}}}

	return map[string]any{
		"swagger":  "2.0",
		"info":     map[string]any{"title": "Expenses API", "version": "1.0"},
		"basePath": "/",
		"consumes": []string{"application/json"},
		"produces": []string{"application/json"},
		"securityDefinitions": map[string]any{
			"Bearer": map[string]any{
				"type":        "apiKey",
				"name":        "Authorization",
				"in":          "header",
				"description": "JWT passed as: Bearer <token>",
			},
		},
		"definitions": map[string]any{
			"Greeting": map[string]any{
				"type":       "object",
				"properties": map[string]any{"message": map[string]any{"type": "string"}},
				"example":    map[string]any{"message": "Hello from Expenses API!"},
			},
			"UserIn": map[string]any{
				"type":     "object",
				"required": []string{"username", "password"},
				"properties": map[string]any{
					"username": map[string]any{"type": "string", "minLength": 4, "maxLength": 20},
					"password": map[string]any{"type": "string", "minLength": 4},
				},
				"example": map[string]any{"username": "alice123", "password": "pw1234"},
			},
			"UserOut": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":       map[string]any{"type": "integer"},
					"username": map[string]any{"type": "string"},
				},
				"example": map[string]any{"id": 1, "username": "alice123"},
			},
			"TokenPair": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"access_token":  map[string]any{"type": "string"},
					"refresh_token": map[string]any{"type": "string"},
				},
			},
			"AccessToken": map[string]any{
				"type":       "object",
				"properties": map[string]any{"access_token": map[string]any{"type": "string"}},
			},
			"ExpenseIn": map[string]any{
				"type":     "object",
				"required": []string{"title", "amount"},
				"properties": map[string]any{
					"title":  map[string]any{"type": "string", "minLength": 1, "maxLength": 50},
					"amount": map[string]any{"type": "number", "minimum": 0},
				},
				"example": map[string]any{"title": "Coffee", "amount": 3.5},
			},
			"ExpensePatch": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"title":  map[string]any{"type": "string", "minLength": 1, "maxLength": 50},
					"amount": map[string]any{"type": "number", "minimum": 0},
				},
			},
			"ExpenseOut": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":       map[string]any{"type": "integer"},
					"title":    map[string]any{"type": "string"},
					"amount":   map[string]any{"type": "number"},
					"owner_id": map[string]any{"type": "integer"},
				},
				"example": map[string]any{"id": 1, "title": "Coffee", "amount": 3.5, "owner_id": 1},
			},
			"Error": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"error": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"code":        map[string]any{"type": "integer"},
							"name":        map[string]any{"type": "string"},
							"description": map[string]any{"type": "string"},
						},
					},
				},
				"example": map[string]any{
					"error": map[string]any{"code": 404, "name": "Not Found", "description": "Expense not found"},
				},
			},
			"ValidationError": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"errors": map[string]any{
						"type": "object",
						"additionalProperties": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
					},
				},
				"example": map[string]any{
					"errors": map[string]any{"amount": []string{"Must be greater than or equal to 0."}},
				},
			},
		},
		"paths": map[string]any{
			"/": map[string]any{
				"get": map[string]any{
					"tags":    []string{"tests"},
					"summary": "Return a greeting message",
					"responses": map[string]any{
						"200": map[string]any{"description": "Greeting", "schema": map[string]any{"$ref": "#/definitions/Greeting"}},
					},
				},
			},
			"/auth/register": map[string]any{
				"post": map[string]any{
					"tags":    []string{"auth"},
					"summary": "Register a new user",
					"parameters": []map[string]any{
						{"in": "body", "name": "User", "required": true, "schema": map[string]any{"$ref": "#/definitions/UserIn"}},
					},
					"responses": map[string]any{
						"201": map[string]any{"description": "Created", "schema": map[string]any{"$ref": "#/definitions/UserOut"}},
						"400": map[string]any{"description": "Validation failure", "schema": validationRef},
					},
				},
			},
			"/auth/login": map[string]any{
				"post": map[string]any{
					"tags":    []string{"auth"},
					"summary": "Verify credentials and issue tokens",
					"parameters": []map[string]any{
						{"in": "body", "name": "Credentials", "required": true, "schema": map[string]any{"$ref": "#/definitions/UserIn"}},
					},
					"responses": map[string]any{
						"200": map[string]any{"description": "Token pair", "schema": map[string]any{"$ref": "#/definitions/TokenPair"}},
						"401": map[string]any{"description": "Incorrect credentials", "schema": errorRef},
					},
				},
			},
			"/auth/refresh": map[string]any{
				"post": map[string]any{
					"tags":     []string{"auth"},
					"summary":  "Mint a new access token from a refresh token",
					"security": bearer,
					"responses": map[string]any{
						"200": map[string]any{"description": "New access token", "schema": map[string]any{"$ref": "#/definitions/AccessToken"}},
						"401": map[string]any{"description": "Missing or invalid token", "schema": errorRef},
						"422": map[string]any{"description": "Wrong token class", "schema": errorRef},
					},
				},
			},
			"/expenses/": map[string]any{
				"post": map[string]any{
					"tags":     []string{"expenses"},
					"summary":  "Create a new expense",
					"security": bearer,
					"parameters": []map[string]any{
						{"in": "body", "name": "Expense", "required": true, "schema": map[string]any{"$ref": "#/definitions/ExpenseIn"}},
					},
					"responses": map[string]any{
						"201": map[string]any{"description": "Created", "schema": expenseRef},
						"400": map[string]any{"description": "Validation failure", "schema": validationRef},
						"401": map[string]any{"description": "Missing or invalid token", "schema": errorRef},
					},
				},
				"get": map[string]any{
					"tags":     []string{"expenses"},
					"summary":  "List the caller's expenses",
					"security": bearer,
					"responses": map[string]any{
						"200": map[string]any{
							"description": "List of the caller's expenses",
							"schema":      map[string]any{"type": "array", "items": expenseRef},
						},
						"401": map[string]any{"description": "Missing or invalid token", "schema": errorRef},
					},
				},
			},
			"/expenses/{id}": map[string]any{
				"get": map[string]any{
					"tags":       []string{"expenses"},
					"summary":    "Get a single expense",
					"security":   bearer,
					"parameters": pathIDParam(),
					"responses": map[string]any{
						"200": map[string]any{"description": "The expense", "schema": expenseRef},
						"403": map[string]any{"description": "Not the owner", "schema": errorRef},
						"404": map[string]any{"description": "Not found", "schema": errorRef},
					},
				},
				"patch": map[string]any{
					"tags":     []string{"expenses"},
					"summary":  "Partially update an expense",
					"security": bearer,
					"parameters": append(pathIDParam(),
						map[string]any{"in": "body", "name": "Expense", "required": true, "schema": map[string]any{"$ref": "#/definitions/ExpensePatch"}},
					),
					"responses": map[string]any{
						"200": map[string]any{"description": "Updated expense", "schema": expenseRef},
						"400": map[string]any{"description": "Validation failure", "schema": validationRef},
						"403": map[string]any{"description": "Not the owner", "schema": errorRef},
						"404": map[string]any{"description": "Not found", "schema": errorRef},
					},
				},
				"delete": map[string]any{
					"tags":       []string{"expenses"},
					"summary":    "Delete an expense",
					"security":   bearer,
					"parameters": pathIDParam(),
					"responses": map[string]any{
						"204": map[string]any{"description": "No content"},
						"403": map[string]any{"description": "Not the owner", "schema": errorRef},
						"404": map[string]any{"description": "Not found", "schema": errorRef},
					},
				},
			},
		},
	}
}

func pathIDParam() []map[string]any {
	return []map[string]any{
		{"in": "path", "name": "id", "type": "integer", "description": "Expense ID", "required": true},
	}
}

// swaggerHTML renders swagger-ui against the /spec document.
const swaggerHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>Expenses API</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    SwaggerUIBundle({url: "/spec", dom_id: "#swagger-ui"});
  </script>
</body>
</html>
`

func specHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, specDocument())
}

func swaggerHandler(c echo.Context) error {
	return c.HTML(http.StatusOK, swaggerHTML)
}
