// Package docs holds the Swagger document served under /swagger/.
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
        "/": {
            "get": {
                "produces": ["text/plain"],
                "tags": ["system"],
                "summary": "Welcome message",
                "responses": {
                    "200": {"description": "Welcome to the Party AI API!", "schema": {"type": "string"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {"description": "data.status: ok", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/contacts": {
            "get": {
                "description": "Returns contacts that can be invited. The source (static list, contact store, or assistant-written query) is chosen at startup.",
                "produces": ["application/json"],
                "tags": ["contacts"],
                "summary": "List contacts",
                "parameters": [
                    {"type": "integer", "description": "Page number (default 1)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Page size (default 20, max 100)", "name": "page_size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.ListContactsSuccessResponse"}},
                    "500": {"description": "error.code: internal_error", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "502": {"description": "error.code: bad_model_output, upstream_error", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/themes": {
            "get": {
                "description": "Asks the language model for ten party themes. Without query parameters the party is for all ages and mixed company.",
                "produces": ["application/json"],
                "tags": ["party"],
                "summary": "Generate party themes",
                "parameters": [
                    {"type": "array", "items": {"type": "string"}, "collectionFormat": "multi", "description": "Age groups, repeatable or comma separated (e.g. kids,adults)", "name": "age_groups", "in": "query"},
                    {"type": "string", "description": "Guys only, Girls only or Mixed (default Mixed)", "name": "exclusivity", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.ListThemesSuccessResponse"}},
                    "400": {"description": "error.code: bad_request", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "500": {"description": "error.code: internal_error", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "502": {"description": "error.code: bad_model_output, upstream_error", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/party-plans": {
            "post": {
                "description": "Asks the language model for a plan for the theme and guests. The plan text is returned verbatim.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["party"],
                "summary": "Generate a party plan",
                "parameters": [
                    {"description": "Theme and guests", "name": "plan", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.CreatePlanRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.CreatePlanSuccessResponse"}},
                    "400": {"description": "error.code: bad_request", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "500": {"description": "error.code: internal_error", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "502": {"description": "error.code: bad_model_output, upstream_error", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/send-invites": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Sends one invitation email per guest from the host address, with the plan as the body and a subject naming the theme and date. Returns a per-guest delivery report; when every delivery fails the report is returned with error.code delivery_failed.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["invitations"],
                "summary": "Send party invitations",
                "parameters": [
                    {"description": "Plan, date/time and guests", "name": "invites", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.SendInvitesRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.SendInvitesSuccessResponse"}},
                    "400": {"description": "error.code: bad_request", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "401": {"description": "error.code: unauthorized (only when invite auth is enabled)", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "500": {"description": "error.code: internal_error", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "502": {"description": "error.code: delivery_failed, upstream_error", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        }
    },
    "definitions": {
        "helpers.APIError": {
            "type": "object",
            "properties": {"code": {"type": "string"}, "message": {"type": "string"}}
        },
        "helpers.APIResponse": {
            "type": "object",
            "properties": {"data": {}, "error": {"$ref": "#/definitions/helpers.APIError"}}
        },
        "domain.Contact": {
            "type": "object",
            "properties": {"id": {"type": "integer"}, "name": {"type": "string"}, "email": {"type": "string"}}
        },
        "domain.Theme": {
            "type": "object",
            "properties": {"name": {"type": "string"}, "description": {"type": "string"}}
        },
        "domain.PartyPlan": {
            "type": "object",
            "properties": {"theme": {"type": "string"}, "plan": {"type": "string"}}
        },
        "domain.Delivery": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "status": {"type": "string"},
                "message_id": {"type": "string"},
                "error": {"type": "string"}
            }
        },
        "domain.InvitationResult": {
            "type": "object",
            "properties": {
                "summary": {"type": "string"},
                "sent": {"type": "integer"},
                "failed": {"type": "integer"},
                "deliveries": {"type": "array", "items": {"$ref": "#/definitions/domain.Delivery"}}
            }
        },
        "controllers.GuestRequest": {
            "type": "object",
            "properties": {"id": {"type": "integer"}, "name": {"type": "string"}, "email": {"type": "string"}}
        },
        "controllers.CreatePlanRequest": {
            "type": "object",
            "properties": {
                "theme": {"type": "string"},
                "guests": {"type": "array", "items": {"$ref": "#/definitions/controllers.GuestRequest"}}
            }
        },
        "controllers.SendInvitesRequest": {
            "type": "object",
            "properties": {
                "plans": {"type": "string"},
                "dateTime": {"type": "string"},
                "theme": {"type": "string"},
                "guests": {"type": "array", "items": {"$ref": "#/definitions/controllers.GuestRequest"}}
            }
        },
        "controllers.ListContactsSuccessResponse": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/domain.Contact"}},
                "error": {"$ref": "#/definitions/helpers.APIError"}
            }
        },
        "controllers.ListThemesSuccessResponse": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/domain.Theme"}},
                "error": {"$ref": "#/definitions/helpers.APIError"}
            }
        },
        "controllers.CreatePlanSuccessResponse": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/domain.PartyPlan"},
                "error": {"$ref": "#/definitions/helpers.APIError"}
            }
        },
        "controllers.SendInvitesSuccessResponse": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/domain.InvitationResult"},
                "error": {"$ref": "#/definitions/helpers.APIError"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Party Planner API",
	Description:      "Generates party themes and plans with a language model and emails invitations to guests.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
