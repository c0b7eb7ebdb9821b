// Package docs holds the OpenAPI template served by /swagger.
// Regenerate with: swag init -g cmd/server/main.go
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
        "/api/chat": {
            "post": {
                "description": "Заглушка чат-бэкенда: через короткую паузу возвращает подтверждение с началом сообщения.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Чат"],
                "summary": "Отправить реплику",
                "parameters": [
                    {
                        "description": "Сообщение",
                        "name": "input",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handlers.chatRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/conversation.ChatOutput"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/presenter.LegacyError"}}
                }
            }
        },
        "/api/conversation/{id}/cards": {
            "get": {
                "description": "Последний сохранённый payload профессии и ссылка на файл экспорта.",
                "produces": ["application/json"],
                "tags": ["Карточки"],
                "summary": "Карточки беседы",
                "parameters": [
                    {"type": "string", "description": "ID беседы", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/conversation.CardsLookup"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Принимает payload профессии, проверяет его по JSON-схеме, сохраняет и экспортирует в файл.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Карточки"],
                "summary": "Сохранить карточки беседы",
                "parameters": [
                    {"type": "string", "description": "ID беседы", "name": "id", "in": "path", "required": true},
                    {
                        "description": "Payload профессии",
                        "name": "input",
                        "in": "body",
                        "required": true,
                        "schema": {"type": "object"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/conversation.CardsLookup"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "503": {"description": "Service Unavailable", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "conversation.CardsLookup": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "file": {"type": "string"}
            }
        },
        "conversation.ChatOutput": {
            "type": "object",
            "properties": {
                "conversation_id": {"type": "string"},
                "reply": {"type": "string"}
            }
        },
        "handlers.chatRequest": {
            "type": "object",
            "properties": {
                "conversation_id": {"type": "string"},
                "history": {"type": "array", "items": {"$ref": "#/definitions/handlers.historyItem"}},
                "message": {"type": "string"}
            }
        },
        "handlers.historyItem": {
            "type": "object",
            "properties": {
                "content": {"type": "string"},
                "role": {"type": "string"}
            }
        },
        "presenter.ErrorResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "presenter.LegacyError": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Сервисный токен (vibechat token). Поддерживаются форматы: \"Bearer <JWT>\" или \"<JWT>\".",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8000",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "workvibe API",
	Description:      "Заглушка чат-бэкенда и хранилище карточек профессий для терминального клиента vibechat.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
