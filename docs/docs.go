// Package docs registers the OpenAPI description served at /swagger/*.
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
        "/api/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login",
                "parameters": [
                    {
                        "description": "Login credentials",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/loginRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Envelope"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/Envelope"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/api/auth/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Current user",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/Envelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/api/patients": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["patients"],
                "summary": "List all patients",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["patients"],
                "summary": "Create a patient",
                "parameters": [
                    {
                        "description": "New patient",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/createPatientRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Envelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Envelope"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/Envelope"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/Envelope"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/api/patients/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["patients"],
                "summary": "Get a patient by id",
                "parameters": [
                    {"type": "integer", "description": "Patient id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Envelope"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/Envelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["patients"],
                "summary": "Partially update a patient",
                "parameters": [
                    {"type": "integer", "description": "Patient id", "name": "id", "in": "path", "required": true},
                    {
                        "description": "Fields to change",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/updatePatientRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Envelope"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/Envelope"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/Envelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Envelope"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["patients"],
                "summary": "Delete a patient",
                "parameters": [
                    {"type": "integer", "description": "Patient id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Envelope"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/Envelope"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/Envelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        }
    },
    "definitions": {
        "Envelope": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "data": {},
                "error": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "loginRequest": {
            "type": "object",
            "required": ["username", "password"],
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "createPatientRequest": {
            "type": "object",
            "required": ["firstName", "lastName", "email", "phoneNumber", "dob"],
            "properties": {
                "firstName": {"type": "string", "maxLength": 50},
                "lastName": {"type": "string", "maxLength": 50},
                "email": {"type": "string"},
                "phoneNumber": {"type": "string", "minLength": 10, "maxLength": 15},
                "dob": {"type": "string", "example": "1985-06-15"}
            }
        },
        "updatePatientRequest": {
            "type": "object",
            "properties": {
                "firstName": {"type": "string", "maxLength": 50},
                "lastName": {"type": "string", "maxLength": 50},
                "email": {"type": "string"},
                "phoneNumber": {"type": "string", "minLength": 10, "maxLength": 15},
                "dob": {"type": "string", "example": "1985-06-15"}
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

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Patient Record Management API",
	Description:      "Login-gated patient record CRUD. Admins write, users read.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
