// Package docs holds the committed swagger spec for the todo API.
// Code generated by swag init; edits travel through the handler annotations.
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
        "/todolists": {
            "get": {
                "produces": ["application/json"],
                "tags": ["todolists"],
                "summary": "Search todo lists by exact name and description",
                "parameters": [
                    {"type": "string", "description": "Exact list name", "name": "name", "in": "query"},
                    {"type": "string", "description": "Exact list description", "name": "description", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.TodoListResponse"}}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["todolists"],
                "summary": "Create a todo list",
                "parameters": [
                    {"description": "List body", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateTodoListRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.TodoListResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/todolists/{listID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["todolists"],
                "summary": "Get a todo list",
                "parameters": [
                    {"type": "integer", "description": "List ID", "name": "listID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.TodoListResponse"}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["todolists"],
                "summary": "Replace a todo list",
                "parameters": [
                    {"type": "integer", "description": "List ID", "name": "listID", "in": "path", "required": true},
                    {"description": "Full list body", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ReplaceTodoListRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.TodoListResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["todolists"],
                "summary": "Partially update a todo list",
                "parameters": [
                    {"type": "integer", "description": "List ID", "name": "listID", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateTodoListRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.TodoListResponse"}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "delete": {
                "tags": ["todolists"],
                "summary": "Delete a todo list",
                "parameters": [
                    {"type": "integer", "description": "List ID", "name": "listID", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/todolists/{listID}/todoitems": {
            "get": {
                "produces": ["application/json"],
                "tags": ["todoitems"],
                "summary": "List a todo list's items",
                "parameters": [
                    {"type": "integer", "description": "List ID", "name": "listID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.TodoItemResponse"}}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["todoitems"],
                "summary": "Add an item to a todo list",
                "parameters": [
                    {"type": "integer", "description": "List ID", "name": "listID", "in": "path", "required": true},
                    {"description": "Item body", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateTodoItemRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.TodoItemResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/todolists/{listID}/todoitems/{itemID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["todoitems"],
                "summary": "Get a todo item",
                "parameters": [
                    {"type": "integer", "description": "List ID", "name": "listID", "in": "path", "required": true},
                    {"type": "integer", "description": "Item ID", "name": "itemID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.TodoItemResponse"}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["todoitems"],
                "summary": "Replace a todo item",
                "parameters": [
                    {"type": "integer", "description": "List ID", "name": "listID", "in": "path", "required": true},
                    {"type": "integer", "description": "Item ID", "name": "itemID", "in": "path", "required": true},
                    {"description": "Full item body", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ReplaceTodoItemRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.TodoItemResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["todoitems"],
                "summary": "Partially update a todo item",
                "parameters": [
                    {"type": "integer", "description": "List ID", "name": "listID", "in": "path", "required": true},
                    {"type": "integer", "description": "Item ID", "name": "itemID", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateTodoItemRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.TodoItemResponse"}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "delete": {
                "tags": ["todoitems"],
                "summary": "Delete a todo item",
                "parameters": [
                    {"type": "integer", "description": "List ID", "name": "listID", "in": "path", "required": true},
                    {"type": "integer", "description": "Item ID", "name": "itemID", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "dto.CreateTodoListRequest": {
            "type": "object",
            "required": ["description", "name"],
            "properties": {
                "description": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "dto.ReplaceTodoListRequest": {
            "type": "object",
            "required": ["description", "name"],
            "properties": {
                "description": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "dto.UpdateTodoListRequest": {
            "type": "object",
            "properties": {
                "description": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "dto.CreateTodoItemRequest": {
            "type": "object",
            "required": ["task"],
            "properties": {
                "task": {"type": "string"}
            }
        },
        "dto.ReplaceTodoItemRequest": {
            "type": "object",
            "required": ["isFinished", "task"],
            "properties": {
                "isFinished": {"type": "boolean"},
                "task": {"type": "string"}
            }
        },
        "dto.UpdateTodoItemRequest": {
            "type": "object",
            "properties": {
                "isFinished": {"type": "boolean"},
                "task": {"type": "string"}
            }
        },
        "dto.TodoListResponse": {
            "type": "object",
            "properties": {
                "description": {"type": "string"},
                "id": {"type": "integer"},
                "name": {"type": "string"}
            }
        },
        "dto.TodoItemResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "isFinished": {"type": "boolean"},
                "task": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Todo API",
	Description:      "Todo-list API over an in-memory graph seeded from a JSON snapshot.",
	InfoInstanceName: "todo",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
