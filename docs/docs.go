// Package docs registers the OpenAPI document served under /swagger. The
// template is maintained by hand next to the handler annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/genres": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List genres",
                "responses": {
                    "200": {"description": "Genres", "schema": {"$ref": "#/definitions/utils.StandardResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/utils.StandardResponse"}}
                }
            }
        },
        "/movies": {
            "get": {
                "description": "List synced movies ordered by popularity, optionally filtered by title",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List movies",
                "parameters": [
                    {"type": "integer", "default": 1, "description": "Page number", "name": "page", "in": "query"},
                    {"type": "integer", "default": 20, "description": "Items per page (max 100)", "name": "limit", "in": "query"},
                    {"type": "string", "description": "Search by title or original title", "name": "search", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "List of movies", "schema": {"$ref": "#/definitions/utils.StandardResponse"}},
                    "400": {"description": "Invalid pagination", "schema": {"$ref": "#/definitions/utils.StandardResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/utils.StandardResponse"}}
                }
            }
        },
        "/movies/{id}": {
            "get": {
                "description": "Get one movie with its genres, companies, countries and languages",
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Get movie by TMDB id",
                "parameters": [
                    {"type": "integer", "description": "TMDB movie id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Movie details", "schema": {"$ref": "#/definitions/utils.StandardResponse"}},
                    "400": {"description": "Invalid movie id", "schema": {"$ref": "#/definitions/utils.StandardResponse"}},
                    "404": {"description": "Movie not found", "schema": {"$ref": "#/definitions/utils.StandardResponse"}}
                }
            }
        },
        "/recommendations": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["recommendations"],
                "summary": "Recommend a movie to a user",
                "parameters": [
                    {"description": "Recommendation", "name": "recommendation", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.RecommendationRequest"}}
                ],
                "responses": {
                    "201": {"description": "Recommendation created", "schema": {"$ref": "#/definitions/utils.StandardResponse"}},
                    "400": {"description": "Invalid request body", "schema": {"$ref": "#/definitions/utils.StandardResponse"}},
                    "404": {"description": "Movie not found", "schema": {"$ref": "#/definitions/utils.StandardResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/utils.StandardResponse"}}
                }
            }
        },
        "/series": {
            "get": {
                "description": "List synced TV series ordered by popularity, optionally filtered by name",
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List series",
                "parameters": [
                    {"type": "integer", "default": 1, "description": "Page number", "name": "page", "in": "query"},
                    {"type": "integer", "default": 20, "description": "Items per page (max 100)", "name": "limit", "in": "query"},
                    {"type": "string", "description": "Search by name or original name", "name": "search", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "List of series", "schema": {"$ref": "#/definitions/utils.StandardResponse"}},
                    "400": {"description": "Invalid pagination", "schema": {"$ref": "#/definitions/utils.StandardResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/utils.StandardResponse"}}
                }
            }
        },
        "/series/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Get series by TMDB id",
                "parameters": [
                    {"type": "integer", "description": "TMDB series id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Series details", "schema": {"$ref": "#/definitions/utils.StandardResponse"}},
                    "400": {"description": "Invalid series id", "schema": {"$ref": "#/definitions/utils.StandardResponse"}},
                    "404": {"description": "Series not found", "schema": {"$ref": "#/definitions/utils.StandardResponse"}}
                }
            }
        },
        "/stats": {
            "get": {
                "description": "Row counts per table and the genres with the most movies",
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Catalog statistics",
                "responses": {
                    "200": {"description": "Catalog statistics", "schema": {"$ref": "#/definitions/utils.StandardResponse"}},
                    "500": {"description": "Failed to retrieve statistics", "schema": {"$ref": "#/definitions/utils.StandardResponse"}}
                }
            }
        },
        "/sync": {
            "post": {
                "description": "Fetch and store the movie and the TV series of every TMDB id in [from, to]. The first error ends the pass.",
                "produces": ["application/json"],
                "tags": ["sync"],
                "summary": "Run a TMDB sync pass",
                "parameters": [
                    {"type": "integer", "default": 1, "description": "First TMDB id (inclusive)", "name": "from", "in": "query"},
                    {"type": "integer", "default": 99, "description": "Last TMDB id (inclusive)", "name": "to", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Sync completed successfully", "schema": {"$ref": "#/definitions/utils.StandardResponse"}},
                    "400": {"description": "Invalid id range", "schema": {"$ref": "#/definitions/utils.StandardResponse"}},
                    "409": {"description": "A sync pass is already running", "schema": {"$ref": "#/definitions/utils.StandardResponse"}},
                    "500": {"description": "Sync failed", "schema": {"$ref": "#/definitions/utils.StandardResponse"}}
                }
            }
        },
        "/sync/last-log": {
            "get": {
                "description": "Get the most recent sync pass, successful or not",
                "produces": ["application/json"],
                "tags": ["sync"],
                "summary": "Get last sync log",
                "responses": {
                    "200": {"description": "Last sync log", "schema": {"$ref": "#/definitions/utils.StandardResponse"}},
                    "500": {"description": "Failed to retrieve sync log", "schema": {"$ref": "#/definitions/utils.StandardResponse"}}
                }
            }
        },
        "/users/{userId}/recommendations": {
            "get": {
                "produces": ["application/json"],
                "tags": ["recommendations"],
                "summary": "List a user's recommendations",
                "parameters": [
                    {"type": "integer", "description": "User id", "name": "userId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Recommendations", "schema": {"$ref": "#/definitions/utils.StandardResponse"}},
                    "400": {"description": "Invalid user id", "schema": {"$ref": "#/definitions/utils.StandardResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/utils.StandardResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handlers.RecommendationRequest": {
            "type": "object",
            "required": ["movie_id", "user_id"],
            "properties": {
                "movie_id": {"type": "integer", "minimum": 1, "example": 550},
                "user_id": {"type": "integer", "minimum": 1, "example": 7}
            }
        },
        "utils.PaginationMeta": {
            "type": "object",
            "properties": {
                "has_next": {"type": "boolean"},
                "has_previous": {"type": "boolean"},
                "limit": {"type": "integer", "example": 20},
                "page": {"type": "integer", "example": 1},
                "total": {"type": "integer", "example": 98},
                "total_pages": {"type": "integer", "example": 5}
            }
        },
        "utils.StandardResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "integer", "example": 200},
                "data": {},
                "message": {"type": "string"},
                "meta": {},
                "status": {"type": "string", "example": "success"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8010",
	BasePath:         "/api/v1",
	Schemes:          []string{"http", "https"},
	Title:            "Movia API",
	Description:      "TMDB catalog sync: movies, TV series and their genres, companies, countries and languages",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
