// Package docs holds the OpenAPI document built from the swag annotations on
// the HTTP handlers. Regenerate with: swag init -g cmd/app/main.go
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
        "/api/auth/change-password": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Change Password Request",
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.ChangePasswordRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Message"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Change password",
                "tags": [
                    "Auth"
                ]
            }
        },
        "/api/auth/check-registration": {
            "post": {
                "description": "Resolve the caller's identity token to a registered user, if any.",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Data-dto_CheckRegistrationResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Check registration",
                "tags": [
                    "Auth"
                ]
            }
        },
        "/api/auth/login": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "description": "Exchange email and password for an access and refresh token pair.",
                "parameters": [
                    {
                        "description": "Login Request",
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.LoginRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Data-dto_LoginResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "summary": "Login a user",
                "tags": [
                    "Auth"
                ]
            }
        },
        "/api/auth/logout": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Logout Request",
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.LogoutRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Message"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "summary": "Logout",
                "tags": [
                    "Auth"
                ]
            }
        },
        "/api/auth/refresh-token": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "description": "The presented refresh token is revoked and a new pair is issued.",
                "parameters": [
                    {
                        "description": "Refresh Token Request",
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.RefreshTokenRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Data-dto_RefreshTokenResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "summary": "Refresh token",
                "tags": [
                    "Auth"
                ]
            }
        },
        "/api/auth/register": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Register Request",
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.RegisterRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/response.Data-dto_UserResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Register",
                "tags": [
                    "Auth"
                ]
            }
        },
        "/api/auth/signup": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Signup Request",
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.SignupRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/response.Data-dto_UserResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "summary": "Sign up",
                "tags": [
                    "Auth"
                ]
            }
        },
        "/api/bookings/create": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "description": "Create a pending booking for exactly one ride or one accommodation.",
                "parameters": [
                    {
                        "description": "Replays the first response for a repeated key",
                        "in": "header",
                        "name": "Idempotency-Key",
                        "type": "string"
                    },
                    {
                        "description": "Create Booking Request",
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreateBookingRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/response.Data-dto_BookingResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Create a booking",
                "tags": [
                    "Booking"
                ]
            }
        },
        "/api/bookings/provider": {
            "get": {
                "description": "Retrieve bookings for rides the caller drives or accommodations the caller hosts.",
                "parameters": [
                    {
                        "in": "query",
                        "name": "page",
                        "type": "integer"
                    },
                    {
                        "in": "query",
                        "name": "limit",
                        "type": "integer"
                    },
                    {
                        "in": "query",
                        "name": "sort_by",
                        "type": "string"
                    },
                    {
                        "enum": [
                            "ASC",
                            "DESC"
                        ],
                        "in": "query",
                        "name": "sort_dir",
                        "type": "string"
                    },
                    {
                        "description": "Filter by status",
                        "enum": [
                            "pending",
                            "confirmed",
                            "rejected",
                            "cancelled",
                            "completed"
                        ],
                        "in": "query",
                        "name": "status",
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Data-dto_GetBookingsResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "List bookings on my listings",
                "tags": [
                    "Booking"
                ]
            }
        },
        "/api/bookings/user": {
            "get": {
                "description": "Retrieve the caller's bookings as a customer, optionally by status.",
                "parameters": [
                    {
                        "in": "query",
                        "name": "page",
                        "type": "integer"
                    },
                    {
                        "in": "query",
                        "name": "limit",
                        "type": "integer"
                    },
                    {
                        "in": "query",
                        "name": "sort_by",
                        "type": "string"
                    },
                    {
                        "enum": [
                            "ASC",
                            "DESC"
                        ],
                        "in": "query",
                        "name": "sort_dir",
                        "type": "string"
                    },
                    {
                        "description": "Filter by status",
                        "enum": [
                            "pending",
                            "confirmed",
                            "rejected",
                            "cancelled",
                            "completed"
                        ],
                        "in": "query",
                        "name": "status",
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Data-dto_GetBookingsResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "List my bookings",
                "tags": [
                    "Booking"
                ]
            }
        },
        "/api/bookings/{id}": {
            "get": {
                "parameters": [
                    {
                        "description": "Booking ID",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Data-dto_BookingResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Get a booking by ID",
                "tags": [
                    "Booking"
                ]
            }
        },
        "/api/bookings/{id}/approve": {
            "post": {
                "parameters": [
                    {
                        "description": "Booking ID",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Message"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Approve a booking",
                "tags": [
                    "Booking"
                ]
            }
        },
        "/api/bookings/{id}/cancel": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "description": "Either party may cancel. Cancelling a confirmed booking releases its capacity.",
                "parameters": [
                    {
                        "description": "Booking ID",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Cancel Booking Request",
                        "in": "body",
                        "name": "request",
                        "required": false,
                        "schema": {
                            "$ref": "#/definitions/dto.CancelBookingRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Message"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Cancel a booking",
                "tags": [
                    "Booking"
                ]
            }
        },
        "/api/bookings/{id}/complete": {
            "post": {
                "parameters": [
                    {
                        "description": "Booking ID",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Message"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Complete a booking",
                "tags": [
                    "Booking"
                ]
            }
        },
        "/api/bookings/{id}/rating": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Booking ID",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Rate Booking Request",
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.RateBookingRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Message"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Rate a booking",
                "tags": [
                    "Booking"
                ]
            }
        },
        "/api/bookings/{id}/reject": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Booking ID",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Reject Booking Request",
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.RejectBookingRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Message"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Reject a booking",
                "tags": [
                    "Booking"
                ]
            }
        },
        "/api/health": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Data-health_Status"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/response.Message"
                        }
                    }
                },
                "summary": "Health check",
                "tags": [
                    "Health"
                ]
            }
        },
        "/api/hotels": {
            "get": {
                "description": "Filter by address or city substring, stay window and party size.",
                "parameters": [
                    {
                        "in": "query",
                        "name": "page",
                        "type": "integer"
                    },
                    {
                        "in": "query",
                        "name": "limit",
                        "type": "integer"
                    },
                    {
                        "in": "query",
                        "name": "sort_by",
                        "type": "string"
                    },
                    {
                        "enum": [
                            "ASC",
                            "DESC"
                        ],
                        "in": "query",
                        "name": "sort_dir",
                        "type": "string"
                    },
                    {
                        "description": "Address or city contains",
                        "in": "query",
                        "name": "address",
                        "type": "string"
                    },
                    {
                        "description": "Check-in date (YYYY-MM-DD)",
                        "in": "query",
                        "name": "checkIn",
                        "type": "string"
                    },
                    {
                        "description": "Check-out date (YYYY-MM-DD)",
                        "in": "query",
                        "name": "checkOut",
                        "type": "string"
                    },
                    {
                        "description": "Guests per room",
                        "in": "query",
                        "name": "guests",
                        "type": "integer"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Data-dto_GetAccommodationsResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "summary": "Search accommodations",
                "tags": [
                    "Hotel"
                ]
            },
            "post": {
                "consumes": [
                    "multipart/form-data"
                ],
                "description": "Verified hosts with stay offering enabled can list rooms. The image is optional.",
                "parameters": [
                    {
                        "description": "Title",
                        "in": "formData",
                        "name": "title",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Description",
                        "in": "formData",
                        "name": "description",
                        "type": "string"
                    },
                    {
                        "description": "Address",
                        "in": "formData",
                        "name": "address",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "City",
                        "in": "formData",
                        "name": "city",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "First available night (YYYY-MM-DD)",
                        "in": "formData",
                        "name": "available_from",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Checkout limit (YYYY-MM-DD)",
                        "in": "formData",
                        "name": "available_to",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Rooms offered",
                        "in": "formData",
                        "name": "total_rooms",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "description": "Guests per room",
                        "in": "formData",
                        "name": "max_guests",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "description": "Price per room per night",
                        "in": "formData",
                        "name": "price_per_night",
                        "required": true,
                        "type": "number"
                    },
                    {
                        "description": "Listing image",
                        "in": "formData",
                        "name": "image",
                        "type": "file"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/response.Data-dto_AccommodationResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Offer an accommodation",
                "tags": [
                    "Hotel"
                ]
            }
        },
        "/api/hotels/mine": {
            "get": {
                "parameters": [
                    {
                        "in": "query",
                        "name": "page",
                        "type": "integer"
                    },
                    {
                        "in": "query",
                        "name": "limit",
                        "type": "integer"
                    },
                    {
                        "in": "query",
                        "name": "sort_by",
                        "type": "string"
                    },
                    {
                        "enum": [
                            "ASC",
                            "DESC"
                        ],
                        "in": "query",
                        "name": "sort_dir",
                        "type": "string"
                    },
                    {
                        "description": "Filter by status",
                        "enum": [
                            "active",
                            "cancelled"
                        ],
                        "in": "query",
                        "name": "status",
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Data-dto_GetAccommodationsResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "List my accommodations",
                "tags": [
                    "Hotel"
                ]
            }
        },
        "/api/hotels/{id}": {
            "get": {
                "parameters": [
                    {
                        "description": "Accommodation ID",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Data-dto_AccommodationResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Get an accommodation by ID",
                "tags": [
                    "Hotel"
                ]
            },
            "patch": {
                "consumes": [
                    "application/json",
                    "multipart/form-data"
                ],
                "description": "Accepts JSON or multipart with a replacement image. Rooms may not drop below those already confirmed.",
                "parameters": [
                    {
                        "description": "Accommodation ID",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Update Accommodation Request",
                        "in": "body",
                        "name": "request",
                        "required": false,
                        "schema": {
                            "$ref": "#/definitions/dto.UpdateAccommodationRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Message"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Update an accommodation",
                "tags": [
                    "Hotel"
                ]
            }
        },
        "/api/hotels/{id}/cancel": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Accommodation ID",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Cancel Accommodation Request",
                        "in": "body",
                        "name": "request",
                        "required": false,
                        "schema": {
                            "$ref": "#/definitions/dto.CancelAccommodationRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Message"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Cancel an accommodation",
                "tags": [
                    "Hotel"
                ]
            }
        },
        "/api/rides": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "description": "Verified drivers with ride offering enabled can publish a ride.",
                "parameters": [
                    {
                        "description": "Create Ride Request",
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreateRideRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/response.Data-dto_RideResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Offer a ride",
                "tags": [
                    "Ride"
                ]
            }
        },
        "/api/rides/mine": {
            "get": {
                "parameters": [
                    {
                        "in": "query",
                        "name": "page",
                        "type": "integer"
                    },
                    {
                        "in": "query",
                        "name": "limit",
                        "type": "integer"
                    },
                    {
                        "in": "query",
                        "name": "sort_by",
                        "type": "string"
                    },
                    {
                        "enum": [
                            "ASC",
                            "DESC"
                        ],
                        "in": "query",
                        "name": "sort_dir",
                        "type": "string"
                    },
                    {
                        "description": "Filter by status",
                        "enum": [
                            "active",
                            "cancelled",
                            "completed"
                        ],
                        "in": "query",
                        "name": "status",
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Data-dto_GetRidesResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "List my rides",
                "tags": [
                    "Ride"
                ]
            }
        },
        "/api/rides/search": {
            "get": {
                "description": "Match on origin and destination substrings, departure date and free seats.",
                "parameters": [
                    {
                        "in": "query",
                        "name": "page",
                        "type": "integer"
                    },
                    {
                        "in": "query",
                        "name": "limit",
                        "type": "integer"
                    },
                    {
                        "in": "query",
                        "name": "sort_by",
                        "type": "string"
                    },
                    {
                        "enum": [
                            "ASC",
                            "DESC"
                        ],
                        "in": "query",
                        "name": "sort_dir",
                        "type": "string"
                    },
                    {
                        "description": "Origin contains",
                        "in": "query",
                        "name": "from",
                        "type": "string"
                    },
                    {
                        "description": "Destination contains",
                        "in": "query",
                        "name": "to",
                        "type": "string"
                    },
                    {
                        "description": "Departure date (YYYY-MM-DD)",
                        "in": "query",
                        "name": "date",
                        "type": "string"
                    },
                    {
                        "default": 1,
                        "description": "Seats needed",
                        "in": "query",
                        "name": "passengers",
                        "type": "integer"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Data-dto_GetRidesResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "summary": "Search rides",
                "tags": [
                    "Ride"
                ]
            }
        },
        "/api/rides/{id}": {
            "get": {
                "parameters": [
                    {
                        "description": "Ride ID",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Data-dto_RideResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Get a ride by ID",
                "tags": [
                    "Ride"
                ]
            },
            "patch": {
                "consumes": [
                    "application/json"
                ],
                "description": "Seats may not drop below the seats already confirmed.",
                "parameters": [
                    {
                        "description": "Ride ID",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Update Ride Request",
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.UpdateRideRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Message"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Update a ride",
                "tags": [
                    "Ride"
                ]
            }
        },
        "/api/rides/{id}/cancel": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Ride ID",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Cancel Ride Request",
                        "in": "body",
                        "name": "request",
                        "required": false,
                        "schema": {
                            "$ref": "#/definitions/dto.CancelRideRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Message"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Cancel a ride",
                "tags": [
                    "Ride"
                ]
            }
        },
        "/api/rides/{id}/complete": {
            "post": {
                "description": "Confirmed bookings become completed and pending ones are cancelled.",
                "parameters": [
                    {
                        "description": "Ride ID",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Message"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Complete a ride",
                "tags": [
                    "Ride"
                ]
            }
        },
        "/api/users": {
            "get": {
                "parameters": [
                    {
                        "in": "query",
                        "name": "page",
                        "type": "integer"
                    },
                    {
                        "in": "query",
                        "name": "limit",
                        "type": "integer"
                    },
                    {
                        "in": "query",
                        "name": "sort_by",
                        "type": "string"
                    },
                    {
                        "enum": [
                            "ASC",
                            "DESC"
                        ],
                        "in": "query",
                        "name": "sort_dir",
                        "type": "string"
                    },
                    {
                        "description": "Filter by email",
                        "in": "query",
                        "name": "email",
                        "type": "string"
                    },
                    {
                        "description": "Filter by verification status",
                        "enum": [
                            "unverified",
                            "pending",
                            "verified",
                            "rejected"
                        ],
                        "in": "query",
                        "name": "verification_status",
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Data-dto_GetUsersResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "List users",
                "tags": [
                    "User"
                ]
            }
        },
        "/api/users/me": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Data-dto_UserResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Get my profile",
                "tags": [
                    "User"
                ]
            },
            "patch": {
                "consumes": [
                    "application/json"
                ],
                "description": "Enabling ride or stay offering requires a verified account.",
                "parameters": [
                    {
                        "description": "Update Profile Request",
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.UpdateProfileRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Message"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Update my profile",
                "tags": [
                    "User"
                ]
            }
        },
        "/api/users/me/verification": {
            "post": {
                "consumes": [
                    "multipart/form-data"
                ],
                "parameters": [
                    {
                        "description": "Identity document (png, jpeg or pdf)",
                        "in": "formData",
                        "name": "document",
                        "required": true,
                        "type": "file"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "202": {
                        "description": "Accepted",
                        "schema": {
                            "$ref": "#/definitions/response.Message"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Submit verification document",
                "tags": [
                    "User"
                ]
            }
        },
        "/api/users/{id}": {
            "get": {
                "parameters": [
                    {
                        "description": "User ID",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Data-dto_PublicUserResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Get a public profile",
                "tags": [
                    "User"
                ]
            }
        },
        "/api/users/{id}/deactivate": {
            "post": {
                "parameters": [
                    {
                        "description": "User ID",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Message"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Deactivate a user",
                "tags": [
                    "User"
                ]
            }
        },
        "/api/users/{id}/verification": {
            "patch": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "User ID",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Review Verification Request",
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.ReviewVerificationRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Message"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Review a verification",
                "tags": [
                    "User"
                ]
            }
        },
        "/api/ws": {
            "get": {
                "description": "Opens a WebSocket. Browsers pass the bearer credential in the token query parameter.",
                "parameters": [
                    {
                        "description": "Bearer credential",
                        "in": "query",
                        "name": "token",
                        "type": "string"
                    }
                ],
                "responses": {
                    "101": {
                        "description": "Switching Protocols"
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/response.Error"
                        }
                    }
                },
                "summary": "Subscribe to booking events",
                "tags": [
                    "Events"
                ]
            }
        }
    },
    "definitions": {
        "dto.AccommodationResponse": {
            "properties": {
                "address": {
                    "type": "string"
                },
                "available_from": {
                    "type": "string"
                },
                "available_rooms": {
                    "type": "integer"
                },
                "available_to": {
                    "type": "string"
                },
                "city": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                },
                "created_by": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "host_id": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "image": {
                    "type": "string"
                },
                "max_guests": {
                    "type": "integer"
                },
                "modified_at": {
                    "type": "string"
                },
                "modified_by": {
                    "type": "string"
                },
                "price_per_night": {
                    "type": "number"
                },
                "status": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "total_rooms": {
                    "type": "integer"
                }
            },
            "type": "object"
        },
        "dto.BookingResponse": {
            "properties": {
                "accommodation_id": {
                    "type": "string"
                },
                "cancellation_reason": {
                    "type": "string"
                },
                "cancelled_by": {
                    "type": "string"
                },
                "check_in": {
                    "type": "string"
                },
                "check_out": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                },
                "created_by": {
                    "type": "string"
                },
                "customer_id": {
                    "type": "string"
                },
                "guests": {
                    "type": "integer"
                },
                "id": {
                    "type": "string"
                },
                "modified_at": {
                    "type": "string"
                },
                "modified_by": {
                    "type": "string"
                },
                "provider_id": {
                    "type": "string"
                },
                "quantity": {
                    "type": "integer"
                },
                "rating": {
                    "type": "integer"
                },
                "rejection_reason": {
                    "type": "string"
                },
                "ride_id": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "target": {
                    "type": "string"
                },
                "total_price": {
                    "type": "number"
                },
                "unit_price": {
                    "type": "number"
                }
            },
            "type": "object"
        },
        "dto.CancelAccommodationRequest": {
            "properties": {
                "reason": {
                    "maxLength": 500,
                    "type": "string"
                }
            },
            "type": "object"
        },
        "dto.CancelBookingRequest": {
            "properties": {
                "reason": {
                    "maxLength": 500,
                    "type": "string"
                }
            },
            "type": "object"
        },
        "dto.CancelRideRequest": {
            "properties": {
                "reason": {
                    "maxLength": 500,
                    "type": "string"
                }
            },
            "type": "object"
        },
        "dto.ChangePasswordRequest": {
            "properties": {
                "current_password": {
                    "type": "string"
                },
                "new_password": {
                    "maxLength": 72,
                    "minLength": 8,
                    "type": "string"
                }
            },
            "required": [
                "current_password",
                "new_password"
            ],
            "type": "object"
        },
        "dto.CheckRegistrationResponse": {
            "properties": {
                "registered": {
                    "type": "boolean"
                },
                "user": {
                    "$ref": "#/definitions/dto.UserResponse"
                }
            },
            "type": "object"
        },
        "dto.CreateBookingRequest": {
            "properties": {
                "accommodation_id": {
                    "type": "string"
                },
                "check_in": {
                    "type": "string"
                },
                "check_out": {
                    "type": "string"
                },
                "guests": {
                    "maximum": 1000,
                    "minimum": 1,
                    "type": "integer"
                },
                "quantity": {
                    "maximum": 50,
                    "minimum": 1,
                    "type": "integer"
                },
                "ride_id": {
                    "type": "string"
                }
            },
            "required": [
                "quantity"
            ],
            "type": "object"
        },
        "dto.CreateRideRequest": {
            "properties": {
                "departure_at": {
                    "type": "string"
                },
                "destination": {
                    "maxLength": 255,
                    "type": "string"
                },
                "notes": {
                    "maxLength": 1000,
                    "type": "string"
                },
                "origin": {
                    "maxLength": 255,
                    "type": "string"
                },
                "price_per_seat": {
                    "type": "number"
                },
                "total_seats": {
                    "maximum": 50,
                    "minimum": 1,
                    "type": "integer"
                }
            },
            "required": [
                "departure_at",
                "destination",
                "origin",
                "total_seats"
            ],
            "type": "object"
        },
        "dto.GetAccommodationsResponse": {
            "properties": {
                "accommodations": {
                    "items": {
                        "$ref": "#/definitions/dto.AccommodationResponse"
                    },
                    "type": "array"
                },
                "total_data": {
                    "type": "integer"
                },
                "total_page": {
                    "type": "integer"
                }
            },
            "type": "object"
        },
        "dto.GetBookingsResponse": {
            "properties": {
                "bookings": {
                    "items": {
                        "$ref": "#/definitions/dto.BookingResponse"
                    },
                    "type": "array"
                },
                "total_data": {
                    "type": "integer"
                },
                "total_page": {
                    "type": "integer"
                }
            },
            "type": "object"
        },
        "dto.GetRidesResponse": {
            "properties": {
                "rides": {
                    "items": {
                        "$ref": "#/definitions/dto.RideResponse"
                    },
                    "type": "array"
                },
                "total_data": {
                    "type": "integer"
                },
                "total_page": {
                    "type": "integer"
                }
            },
            "type": "object"
        },
        "dto.GetUsersResponse": {
            "properties": {
                "total_data": {
                    "type": "integer"
                },
                "total_page": {
                    "type": "integer"
                },
                "users": {
                    "items": {
                        "$ref": "#/definitions/dto.UserResponse"
                    },
                    "type": "array"
                }
            },
            "type": "object"
        },
        "dto.LoginRequest": {
            "properties": {
                "email": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                }
            },
            "required": [
                "email",
                "password"
            ],
            "type": "object"
        },
        "dto.LoginResponse": {
            "properties": {
                "access_token": {
                    "type": "string"
                },
                "expires_in": {
                    "type": "integer"
                },
                "refresh_token": {
                    "type": "string"
                },
                "token_type": {
                    "type": "string"
                },
                "user": {
                    "$ref": "#/definitions/dto.UserResponse"
                }
            },
            "type": "object"
        },
        "dto.LogoutRequest": {
            "properties": {
                "refresh_token": {
                    "type": "string"
                }
            },
            "required": [
                "refresh_token"
            ],
            "type": "object"
        },
        "dto.PublicUserResponse": {
            "properties": {
                "can_offer_rides": {
                    "type": "boolean"
                },
                "can_offer_stays": {
                    "type": "boolean"
                },
                "full_name": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "profile_image": {
                    "type": "string"
                },
                "rating": {
                    "type": "number"
                },
                "rating_count": {
                    "type": "integer"
                },
                "verification_status": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "dto.RateBookingRequest": {
            "properties": {
                "score": {
                    "maximum": 5,
                    "minimum": 1,
                    "type": "integer"
                }
            },
            "required": [
                "score"
            ],
            "type": "object"
        },
        "dto.RefreshTokenRequest": {
            "properties": {
                "refresh_token": {
                    "type": "string"
                }
            },
            "required": [
                "refresh_token"
            ],
            "type": "object"
        },
        "dto.RefreshTokenResponse": {
            "properties": {
                "access_token": {
                    "type": "string"
                },
                "expires_in": {
                    "type": "integer"
                },
                "refresh_token": {
                    "type": "string"
                },
                "token_type": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "dto.RegisterRequest": {
            "properties": {
                "full_name": {
                    "maxLength": 255,
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                }
            },
            "required": [
                "full_name"
            ],
            "type": "object"
        },
        "dto.RejectBookingRequest": {
            "properties": {
                "reason": {
                    "maxLength": 500,
                    "type": "string"
                }
            },
            "required": [
                "reason"
            ],
            "type": "object"
        },
        "dto.ReviewVerificationRequest": {
            "properties": {
                "note": {
                    "maxLength": 500,
                    "type": "string"
                },
                "status": {
                    "enum": [
                        "verified",
                        "rejected"
                    ],
                    "type": "string"
                }
            },
            "required": [
                "status"
            ],
            "type": "object"
        },
        "dto.RideResponse": {
            "properties": {
                "available_seats": {
                    "type": "integer"
                },
                "created_at": {
                    "type": "string"
                },
                "created_by": {
                    "type": "string"
                },
                "departure_at": {
                    "type": "string"
                },
                "destination": {
                    "type": "string"
                },
                "driver_id": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "modified_at": {
                    "type": "string"
                },
                "modified_by": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                },
                "origin": {
                    "type": "string"
                },
                "price_per_seat": {
                    "type": "number"
                },
                "status": {
                    "type": "string"
                },
                "total_seats": {
                    "type": "integer"
                }
            },
            "type": "object"
        },
        "dto.SignupRequest": {
            "properties": {
                "email": {
                    "type": "string"
                },
                "full_name": {
                    "maxLength": 255,
                    "type": "string"
                },
                "password": {
                    "maxLength": 72,
                    "minLength": 8,
                    "type": "string"
                }
            },
            "required": [
                "email",
                "full_name",
                "password"
            ],
            "type": "object"
        },
        "dto.UpdateAccommodationRequest": {
            "properties": {
                "address": {
                    "maxLength": 255,
                    "minLength": 1,
                    "type": "string"
                },
                "available_from": {
                    "type": "string"
                },
                "available_to": {
                    "type": "string"
                },
                "city": {
                    "maxLength": 100,
                    "minLength": 1,
                    "type": "string"
                },
                "description": {
                    "maxLength": 2000,
                    "type": "string"
                },
                "max_guests": {
                    "maximum": 20,
                    "minimum": 1,
                    "type": "integer"
                },
                "price_per_night": {
                    "type": "number"
                },
                "title": {
                    "maxLength": 255,
                    "minLength": 1,
                    "type": "string"
                },
                "total_rooms": {
                    "maximum": 500,
                    "minimum": 1,
                    "type": "integer"
                }
            },
            "type": "object"
        },
        "dto.UpdateProfileRequest": {
            "properties": {
                "can_offer_rides": {
                    "type": "boolean"
                },
                "can_offer_stays": {
                    "type": "boolean"
                },
                "full_name": {
                    "maxLength": 100,
                    "minLength": 1,
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "profile_image": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "dto.UpdateRideRequest": {
            "properties": {
                "departure_at": {
                    "type": "string"
                },
                "destination": {
                    "maxLength": 255,
                    "minLength": 1,
                    "type": "string"
                },
                "notes": {
                    "maxLength": 1000,
                    "type": "string"
                },
                "origin": {
                    "maxLength": 255,
                    "minLength": 1,
                    "type": "string"
                },
                "price_per_seat": {
                    "type": "number"
                },
                "total_seats": {
                    "maximum": 50,
                    "minimum": 1,
                    "type": "integer"
                }
            },
            "type": "object"
        },
        "dto.UserResponse": {
            "properties": {
                "active": {
                    "type": "boolean"
                },
                "can_offer_rides": {
                    "type": "boolean"
                },
                "can_offer_stays": {
                    "type": "boolean"
                },
                "created_at": {
                    "type": "string"
                },
                "created_by": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "full_name": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "last_login": {
                    "type": "string"
                },
                "modified_at": {
                    "type": "string"
                },
                "modified_by": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "profile_image": {
                    "type": "string"
                },
                "rating": {
                    "type": "number"
                },
                "rating_count": {
                    "type": "integer"
                },
                "role": {
                    "type": "string"
                },
                "verification_document": {
                    "type": "string"
                },
                "verification_note": {
                    "type": "string"
                },
                "verification_status": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "health.Status": {
            "properties": {
                "cache": {
                    "type": "string"
                },
                "database": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "response.Data-dto_AccommodationResponse": {
            "properties": {
                "data": {
                    "$ref": "#/definitions/dto.AccommodationResponse"
                }
            },
            "type": "object"
        },
        "response.Data-dto_BookingResponse": {
            "properties": {
                "data": {
                    "$ref": "#/definitions/dto.BookingResponse"
                }
            },
            "type": "object"
        },
        "response.Data-dto_CheckRegistrationResponse": {
            "properties": {
                "data": {
                    "$ref": "#/definitions/dto.CheckRegistrationResponse"
                }
            },
            "type": "object"
        },
        "response.Data-dto_GetAccommodationsResponse": {
            "properties": {
                "data": {
                    "$ref": "#/definitions/dto.GetAccommodationsResponse"
                }
            },
            "type": "object"
        },
        "response.Data-dto_GetBookingsResponse": {
            "properties": {
                "data": {
                    "$ref": "#/definitions/dto.GetBookingsResponse"
                }
            },
            "type": "object"
        },
        "response.Data-dto_GetRidesResponse": {
            "properties": {
                "data": {
                    "$ref": "#/definitions/dto.GetRidesResponse"
                }
            },
            "type": "object"
        },
        "response.Data-dto_GetUsersResponse": {
            "properties": {
                "data": {
                    "$ref": "#/definitions/dto.GetUsersResponse"
                }
            },
            "type": "object"
        },
        "response.Data-dto_LoginResponse": {
            "properties": {
                "data": {
                    "$ref": "#/definitions/dto.LoginResponse"
                }
            },
            "type": "object"
        },
        "response.Data-dto_PublicUserResponse": {
            "properties": {
                "data": {
                    "$ref": "#/definitions/dto.PublicUserResponse"
                }
            },
            "type": "object"
        },
        "response.Data-dto_RefreshTokenResponse": {
            "properties": {
                "data": {
                    "$ref": "#/definitions/dto.RefreshTokenResponse"
                }
            },
            "type": "object"
        },
        "response.Data-dto_RideResponse": {
            "properties": {
                "data": {
                    "$ref": "#/definitions/dto.RideResponse"
                }
            },
            "type": "object"
        },
        "response.Data-dto_UserResponse": {
            "properties": {
                "data": {
                    "$ref": "#/definitions/dto.UserResponse"
                }
            },
            "type": "object"
        },
        "response.Data-health_Status": {
            "properties": {
                "data": {
                    "$ref": "#/definitions/health.Status"
                }
            },
            "type": "object"
        },
        "response.Error": {
            "properties": {
                "error": {
                    "type": "string"
                },
                "kind": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "response.Message": {
            "properties": {
                "message": {
                    "type": "string"
                }
            },
            "type": "object"
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Bearer credential issued by the identity provider or by /api/auth/login.",
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
	Title:            "Link-A API",
	Description:      "Rides and accommodations marketplace. Drivers and hosts publish listings, customers book them and providers approve.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
