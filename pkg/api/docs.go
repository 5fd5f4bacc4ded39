package api

import "github.com/swaggo/swag"

// docTemplate is the OpenAPI 2.0 description of the routes in NewRouter.
// Keep it in step with the handler annotations.
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
        "/health": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        },
        "/messages": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["messages"],
                "summary": "List messages",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/api.APIResponse"},
                                {"type": "object", "properties": {"data": {"type": "array", "items": {"$ref": "#/definitions/api.MessageSummary"}}}}
                            ]
                        }
                    }
                }
            }
        },
        "/messages/{name}": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["messages"],
                "summary": "Get a message schema",
                "parameters": [
                    {"type": "string", "description": "Message name or id", "name": "name", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        },
        "/channels": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["channels"],
                "summary": "Open a channel",
                "parameters": [
                    {"description": "Frame version (1 or 2, default 2)", "name": "request", "in": "body", "schema": {"$ref": "#/definitions/api.CreateChannelRequest"}}
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/api.APIResponse"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/api.ChannelResponse"}}}
                            ]
                        }
                    },
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        },
        "/channels/{id}": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["channels"],
                "summary": "Get a channel",
                "parameters": [
                    {"type": "string", "description": "Channel id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            },
            "delete": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["channels"],
                "summary": "Close a channel",
                "parameters": [
                    {"type": "string", "description": "Channel id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        },
        "/channels/{id}/pack": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["channels"],
                "summary": "Pack a message",
                "parameters": [
                    {"type": "string", "description": "Channel id", "name": "id", "in": "path", "required": true},
                    {"description": "Message and field values", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.PackRequest"}}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/api.APIResponse"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/api.PackResponse"}}}
                            ]
                        }
                    },
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        },
        "/decode": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["frames"],
                "summary": "Decode a frame",
                "parameters": [
                    {"description": "Hex encoded frame", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.DecodeRequest"}}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/api.APIResponse"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/api.DecodeResponse"}}}
                            ]
                        }
                    },
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/api.APIResponse"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/api.RejectionDetail"}}}
                            ]
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "api.APIResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "data": {},
                "error": {"type": "string"}
            }
        },
        "api.MessageSummary": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "payload_length": {"type": "integer"},
                "min_payload_length": {"type": "integer"},
                "crc_extra": {"type": "integer"},
                "typed": {"type": "boolean"}
            }
        },
        "api.CreateChannelRequest": {
            "type": "object",
            "properties": {
                "version": {"type": "integer", "enum": [1, 2]}
            }
        },
        "api.ChannelResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "version": {"type": "integer"},
                "sequence": {"type": "integer"},
                "created_at": {"type": "string", "format": "date-time"}
            }
        },
        "api.PackRequest": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "system_id": {"type": "integer"},
                "component_id": {"type": "integer"},
                "fields": {"type": "object", "additionalProperties": {}}
            }
        },
        "api.PackResponse": {
            "type": "object",
            "properties": {
                "frame": {"type": "string"},
                "length": {"type": "integer"},
                "sequence": {"type": "integer"}
            }
        },
        "api.DecodeRequest": {
            "type": "object",
            "properties": {
                "frame": {"type": "string"}
            }
        },
        "api.DecodeResponse": {
            "type": "object",
            "properties": {
                "version": {"type": "integer"},
                "sequence": {"type": "integer"},
                "system_id": {"type": "integer"},
                "component_id": {"type": "integer"},
                "message_id": {"type": "integer"},
                "message": {"type": "string"},
                "payload_length": {"type": "integer"},
                "signed": {"type": "boolean"},
                "typed": {"type": "boolean"},
                "incompat_flags": {"type": "integer"},
                "compat_flags": {"type": "integer"},
                "fields": {"type": "object", "additionalProperties": {}}
            }
        },
        "api.RejectionDetail": {
            "type": "object",
            "properties": {
                "reason": {"type": "string", "enum": ["checksum", "length", "unknown_id", "magic", "truncated", "incompat_flags", "other"]}
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {"type": "apiKey", "name": "X-API-Key", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "mavcodec REST API",
	Description:      "Pack, validate and decode MAVLink frames over HTTP.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
