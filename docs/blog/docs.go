// Package docs holds the committed swagger spec for the blog API.
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
        "/users": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "List all users",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.UserResponse"}}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Create a user",
                "parameters": [
                    {"description": "User body", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateUserRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.UserResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/users/{userID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Get a user by id",
                "parameters": [
                    {"type": "integer", "description": "User ID", "name": "userID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.UserResponse"}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Partially update a user",
                "parameters": [
                    {"type": "integer", "description": "User ID", "name": "userID", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateUserRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.UserResponse"}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "delete": {
                "tags": ["users"],
                "summary": "Delete a user",
                "parameters": [
                    {"type": "integer", "description": "User ID", "name": "userID", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/users/{userID}/socials": {
            "get": {
                "produces": ["application/json"],
                "tags": ["socials"],
                "summary": "List a user's social media entries",
                "parameters": [
                    {"type": "integer", "description": "User ID", "name": "userID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.SocialMediaResponse"}}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["socials"],
                "summary": "Add a social media entry",
                "parameters": [
                    {"type": "integer", "description": "User ID", "name": "userID", "in": "path", "required": true},
                    {"description": "Entry body", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateSocialRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.SocialMediaResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/users/{userID}/socials/{socialID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["socials"],
                "summary": "Get a social media entry",
                "parameters": [
                    {"type": "integer", "description": "User ID", "name": "userID", "in": "path", "required": true},
                    {"type": "integer", "description": "Entry ID", "name": "socialID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.SocialMediaResponse"}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["socials"],
                "summary": "Update a social media entry",
                "parameters": [
                    {"type": "integer", "description": "User ID", "name": "userID", "in": "path", "required": true},
                    {"type": "integer", "description": "Entry ID", "name": "socialID", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateSocialRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.SocialMediaResponse"}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "delete": {
                "tags": ["socials"],
                "summary": "Delete a social media entry",
                "parameters": [
                    {"type": "integer", "description": "User ID", "name": "userID", "in": "path", "required": true},
                    {"type": "integer", "description": "Entry ID", "name": "socialID", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/users/{userID}/posts": {
            "get": {
                "produces": ["application/json"],
                "tags": ["posts"],
                "summary": "List a user's posts",
                "parameters": [
                    {"type": "integer", "description": "User ID", "name": "userID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.PostResponse"}}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["posts"],
                "summary": "Create a post",
                "parameters": [
                    {"type": "integer", "description": "User ID", "name": "userID", "in": "path", "required": true},
                    {"description": "Post body", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreatePostRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.PostResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/users/{userID}/posts/{postID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["posts"],
                "summary": "Get a post",
                "parameters": [
                    {"type": "integer", "description": "User ID", "name": "userID", "in": "path", "required": true},
                    {"type": "integer", "description": "Post ID", "name": "postID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.PostResponse"}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["posts"],
                "summary": "Partially update a post",
                "parameters": [
                    {"type": "integer", "description": "User ID", "name": "userID", "in": "path", "required": true},
                    {"type": "integer", "description": "Post ID", "name": "postID", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.UpdatePostRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.PostResponse"}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "delete": {
                "tags": ["posts"],
                "summary": "Delete a post",
                "parameters": [
                    {"type": "integer", "description": "User ID", "name": "userID", "in": "path", "required": true},
                    {"type": "integer", "description": "Post ID", "name": "postID", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/users/{userID}/posts/{postID}/comments": {
            "get": {
                "produces": ["application/json"],
                "tags": ["comments"],
                "summary": "List a post's comments",
                "parameters": [
                    {"type": "integer", "description": "User ID", "name": "userID", "in": "path", "required": true},
                    {"type": "integer", "description": "Post ID", "name": "postID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.CommentResponse"}}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["comments"],
                "summary": "Comment on a post",
                "parameters": [
                    {"type": "integer", "description": "User ID", "name": "userID", "in": "path", "required": true},
                    {"type": "integer", "description": "Post ID", "name": "postID", "in": "path", "required": true},
                    {"description": "Comment body", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateCommentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.CommentResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/users/{userID}/posts/{postID}/comments/{commentID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["comments"],
                "summary": "Get a comment",
                "parameters": [
                    {"type": "integer", "description": "User ID", "name": "userID", "in": "path", "required": true},
                    {"type": "integer", "description": "Post ID", "name": "postID", "in": "path", "required": true},
                    {"type": "integer", "description": "Comment ID", "name": "commentID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CommentResponse"}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["comments"],
                "summary": "Partially update a comment",
                "parameters": [
                    {"type": "integer", "description": "User ID", "name": "userID", "in": "path", "required": true},
                    {"type": "integer", "description": "Post ID", "name": "postID", "in": "path", "required": true},
                    {"type": "integer", "description": "Comment ID", "name": "commentID", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateCommentRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CommentResponse"}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "delete": {
                "tags": ["comments"],
                "summary": "Delete a comment",
                "parameters": [
                    {"type": "integer", "description": "User ID", "name": "userID", "in": "path", "required": true},
                    {"type": "integer", "description": "Post ID", "name": "postID", "in": "path", "required": true},
                    {"type": "integer", "description": "Comment ID", "name": "commentID", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/users/{userID}/posts/{postID}/likes": {
            "get": {
                "produces": ["application/json"],
                "tags": ["likes"],
                "summary": "List a post's likes",
                "parameters": [
                    {"type": "integer", "description": "User ID", "name": "userID", "in": "path", "required": true},
                    {"type": "integer", "description": "Post ID", "name": "postID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.LikeResponse"}}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["likes"],
                "summary": "Like a post",
                "parameters": [
                    {"type": "integer", "description": "User ID", "name": "userID", "in": "path", "required": true},
                    {"type": "integer", "description": "Post ID", "name": "postID", "in": "path", "required": true},
                    {"description": "Liking user", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.LikeRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.LikeResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/users/{userID}/posts/{postID}/likes/{likeUserID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["likes"],
                "summary": "Get one user's like on a post",
                "parameters": [
                    {"type": "integer", "description": "User ID", "name": "userID", "in": "path", "required": true},
                    {"type": "integer", "description": "Post ID", "name": "postID", "in": "path", "required": true},
                    {"type": "integer", "description": "Liking user ID", "name": "likeUserID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.LikeResponse"}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "delete": {
                "tags": ["likes"],
                "summary": "Remove one user's like from a post",
                "parameters": [
                    {"type": "integer", "description": "User ID", "name": "userID", "in": "path", "required": true},
                    {"type": "integer", "description": "Post ID", "name": "postID", "in": "path", "required": true},
                    {"type": "integer", "description": "Liking user ID", "name": "likeUserID", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/users/{userID}/posts/{postID}/comments/{commentID}/likes": {
            "get": {
                "produces": ["application/json"],
                "tags": ["likes"],
                "summary": "List a comment's likes",
                "parameters": [
                    {"type": "integer", "description": "User ID", "name": "userID", "in": "path", "required": true},
                    {"type": "integer", "description": "Post ID", "name": "postID", "in": "path", "required": true},
                    {"type": "integer", "description": "Comment ID", "name": "commentID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.LikeResponse"}}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["likes"],
                "summary": "Like a comment",
                "parameters": [
                    {"type": "integer", "description": "User ID", "name": "userID", "in": "path", "required": true},
                    {"type": "integer", "description": "Post ID", "name": "postID", "in": "path", "required": true},
                    {"type": "integer", "description": "Comment ID", "name": "commentID", "in": "path", "required": true},
                    {"description": "Liking user", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.LikeRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.LikeResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/users/{userID}/posts/{postID}/comments/{commentID}/likes/{likeUserID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["likes"],
                "summary": "Get one user's like on a comment",
                "parameters": [
                    {"type": "integer", "description": "User ID", "name": "userID", "in": "path", "required": true},
                    {"type": "integer", "description": "Post ID", "name": "postID", "in": "path", "required": true},
                    {"type": "integer", "description": "Comment ID", "name": "commentID", "in": "path", "required": true},
                    {"type": "integer", "description": "Liking user ID", "name": "likeUserID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.LikeResponse"}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "delete": {
                "tags": ["likes"],
                "summary": "Remove one user's like from a comment",
                "parameters": [
                    {"type": "integer", "description": "User ID", "name": "userID", "in": "path", "required": true},
                    {"type": "integer", "description": "Post ID", "name": "postID", "in": "path", "required": true},
                    {"type": "integer", "description": "Comment ID", "name": "commentID", "in": "path", "required": true},
                    {"type": "integer", "description": "Liking user ID", "name": "likeUserID", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "dto.CreateUserRequest": {
            "type": "object",
            "required": ["about", "name", "profileImage"],
            "properties": {
                "about": {"type": "string"},
                "name": {"type": "string"},
                "profileImage": {"type": "string"},
                "socialMedia": {"type": "array", "items": {"$ref": "#/definitions/dto.SocialMediaPayload"}}
            }
        },
        "dto.SocialMediaPayload": {
            "type": "object",
            "properties": {
                "icon": {"type": "string"},
                "network": {"type": "string"},
                "url": {"type": "string"}
            }
        },
        "dto.UpdateUserRequest": {
            "type": "object",
            "properties": {
                "about": {"type": "string"},
                "name": {"type": "string"},
                "profileImage": {"type": "string"}
            }
        },
        "dto.CreateSocialRequest": {
            "type": "object",
            "required": ["icon", "network", "url"],
            "properties": {
                "icon": {"type": "string"},
                "network": {"type": "string"},
                "url": {"type": "string"}
            }
        },
        "dto.UpdateSocialRequest": {
            "type": "object",
            "properties": {
                "icon": {"type": "string"},
                "network": {"type": "string"},
                "url": {"type": "string"}
            }
        },
        "dto.CreatePostRequest": {
            "type": "object",
            "required": ["content", "title"],
            "properties": {
                "content": {"type": "string"},
                "title": {"type": "string"}
            }
        },
        "dto.UpdatePostRequest": {
            "type": "object",
            "properties": {
                "content": {"type": "string"},
                "title": {"type": "string"}
            }
        },
        "dto.CreateCommentRequest": {
            "type": "object",
            "required": ["content", "userID"],
            "properties": {
                "content": {"type": "string"},
                "userID": {"type": "integer"}
            }
        },
        "dto.UpdateCommentRequest": {
            "type": "object",
            "properties": {
                "content": {"type": "string"}
            }
        },
        "dto.LikeRequest": {
            "type": "object",
            "required": ["userID"],
            "properties": {
                "userID": {"type": "integer"}
            }
        },
        "dto.UserResponse": {
            "type": "object",
            "properties": {
                "about": {"type": "string"},
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "profileImage": {"type": "string"},
                "socialMedia": {"type": "array", "items": {"$ref": "#/definitions/dto.SocialMediaResponse"}}
            }
        },
        "dto.UserSummary": {
            "type": "object",
            "properties": {
                "about": {"type": "string"},
                "id": {"type": "integer"},
                "name": {"type": "string"}
            }
        },
        "dto.SocialMediaResponse": {
            "type": "object",
            "properties": {
                "icon": {"type": "string"},
                "id": {"type": "integer"},
                "network": {"type": "string"},
                "url": {"type": "string"}
            }
        },
        "dto.PostResponse": {
            "type": "object",
            "properties": {
                "content": {"type": "string"},
                "datePosted": {"type": "number"},
                "numComments": {"type": "integer"},
                "numLikes": {"type": "integer"},
                "postID": {"type": "integer"},
                "title": {"type": "string"},
                "user": {"$ref": "#/definitions/dto.UserSummary"}
            }
        },
        "dto.CommentResponse": {
            "type": "object",
            "properties": {
                "commentID": {"type": "integer"},
                "content": {"type": "string"},
                "datePosted": {"type": "number"},
                "numLikes": {"type": "integer"},
                "user": {"$ref": "#/definitions/dto.UserSummary"}
            }
        },
        "dto.LikeResponse": {
            "type": "object",
            "properties": {
                "datePosted": {"type": "number"},
                "user": {"$ref": "#/definitions/dto.UserSummary"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/blogr/api/v1",
	Schemes:          []string{},
	Title:            "Blogr API",
	Description:      "Blogging API over an in-memory graph seeded from JSON snapshots.",
	InfoInstanceName: "blog",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
