// Package docs registers the OpenAPI document served at /swagger.
//
// Regenerate with: swag init -g cmd/server/main.go -o docs
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
        "/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login",
                "parameters": [
                    {"description": "Login credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.loginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.authResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/auth/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register a new user",
                "parameters": [
                    {"description": "User registration details", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.registerRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.authResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness check",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/health/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "503": {"description": "Service Unavailable", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/v1/admin/workstation-bookings": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "List every workstation booking",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.bookingResponse"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/history": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Room bookings, workstation bookings and food orders owned by the\ncaller. A source that cannot be read yields an empty list and is\nnamed in unavailableSources; the request still succeeds.",
                "produces": ["application/json"],
                "tags": ["history"],
                "summary": "Booking history of the caller",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.historyResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/history/stream": {
            "get": {
                "produces": ["text/event-stream"],
                "tags": ["history"],
                "summary": "Stream the caller's booking history",
                "parameters": [
                    {"type": "string", "description": "Bearer token when no Authorization header is sent", "name": "access_token", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/v1/workstations": {
            "get": {
                "produces": ["application/json"],
                "tags": ["workstations"],
                "summary": "List bookable workstations",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.catalogEntryResponse"}}}
                }
            }
        },
        "/v1/workstations/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["workstations"],
                "summary": "Get a workstation",
                "parameters": [
                    {"type": "integer", "description": "Workstation ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.catalogEntryResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/workstations/{id}/bookings": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Validates the request, computes the cost and persists the booking.\nThe confirmation email is sent in the background; its outcome never\naffects this response. Clients should show the message for at least\nnext.delayMs before navigating to next.path.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["bookings"],
                "summary": "Book a workstation",
                "parameters": [
                    {"type": "integer", "description": "Workstation ID", "name": "id", "in": "path", "required": true},
                    {"description": "Booking details", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.createBookingRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.confirmationResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/workstations/{id}/schedule": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["workstations"],
                "summary": "Existing bookings of a workstation",
                "parameters": [
                    {"type": "integer", "description": "Workstation ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.scheduleSlotResponse"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handler.authResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"},
                "user": {"$ref": "#/definitions/handler.userResponse"}
            }
        },
        "handler.bookingResponse": {
            "type": "object",
            "properties": {
                "date": {"type": "string"},
                "duration": {"type": "integer"},
                "id": {"type": "string"},
                "pcId": {"type": "integer"},
                "time": {"type": "string"},
                "title": {"type": "string"},
                "totalCost": {"type": "integer"},
                "userEmail": {"type": "string"}
            }
        },
        "handler.catalogEntryResponse": {
            "type": "object",
            "properties": {
                "description": {"type": "string"},
                "id": {"type": "integer"},
                "imageUrl": {"type": "string"},
                "pricePerHour": {"type": "integer"},
                "title": {"type": "string"}
            }
        },
        "handler.confirmationResponse": {
            "type": "object",
            "properties": {
                "attemptId": {"type": "string"},
                "booking": {"$ref": "#/definitions/handler.bookingResponse"},
                "confirmedAt": {"type": "string"},
                "message": {"type": "string"},
                "next": {"$ref": "#/definitions/handler.transitionResponse"}
            }
        },
        "handler.createBookingRequest": {
            "type": "object",
            "properties": {
                "date": {"type": "string", "example": "2024-06-01"},
                "duration": {"type": "integer", "example": 3},
                "time": {"type": "string", "example": "10:00"}
            }
        },
        "handler.errorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "login_url": {"type": "string"}
            }
        },
        "handler.foodOrderResponse": {
            "type": "object",
            "properties": {
                "date": {"type": "string"},
                "id": {"type": "string"},
                "totalPrice": {"type": "number"}
            }
        },
        "handler.historyResponse": {
            "type": "object",
            "properties": {
                "foodOrders": {"type": "array", "items": {"$ref": "#/definitions/handler.foodOrderResponse"}},
                "partial": {"type": "boolean"},
                "rooms": {"type": "array", "items": {"$ref": "#/definitions/handler.roomBookingResponse"}},
                "unavailableSources": {"type": "array", "items": {"type": "string"}},
                "workstations": {"type": "array", "items": {"$ref": "#/definitions/handler.bookingResponse"}}
            }
        },
        "handler.loginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "handler.registerRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "display_name": {"type": "string", "maxLength": 80},
                "email": {"type": "string"},
                "password": {"type": "string", "minLength": 6}
            }
        },
        "handler.roomBookingResponse": {
            "type": "object",
            "properties": {
                "date": {"type": "string"},
                "id": {"type": "string"},
                "roomId": {"type": "string"},
                "status": {"type": "string"},
                "time": {"type": "string"}
            }
        },
        "handler.scheduleSlotResponse": {
            "type": "object",
            "properties": {
                "date": {"type": "string"},
                "duration": {"type": "integer"},
                "pcId": {"type": "integer"},
                "time": {"type": "string"}
            }
        },
        "handler.transitionResponse": {
            "type": "object",
            "properties": {
                "delayMs": {"type": "integer"},
                "path": {"type": "string"}
            }
        },
        "handler.userResponse": {
            "type": "object",
            "properties": {
                "display_name": {"type": "string"},
                "email": {"type": "string"},
                "id": {"type": "string"},
                "role": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Booking Portal API",
	Description:      "Workstation booking and per-user history for the coworking space.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
