package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Departmental Notice Board",
        "description": "Public notice board with a staff-only administration area",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {
            "name": "Board",
            "description": "Public views"
        },
        {
            "name": "Admin",
            "description": "Staff sign-in and dashboard"
        },
        {
            "name": "Health",
            "description": "Operational endpoints"
        }
    ],
    "paths": {
        "/ping/": {
            "get": {
                "tags": [
                    "Health"
                ],
                "summary": "Liveness probe",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/metrics": {
            "get": {
                "tags": [
                    "Health"
                ],
                "summary": "Prometheus metrics",
                "produces": [
                    "text/plain"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/": {
            "get": {
                "tags": [
                    "Board"
                ],
                "summary": "Landing page",
                "parameters": [
                    {
                        "name": "search",
                        "in": "query",
                        "type": "string",
                        "description": "Text search"
                    },
                    {
                        "name": "department",
                        "in": "query",
                        "type": "string",
                        "description": "Department id"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/announcements/": {
            "get": {
                "tags": [
                    "Board"
                ],
                "summary": "Active announcements",
                "parameters": [
                    {
                        "name": "search",
                        "in": "query",
                        "type": "string",
                        "description": "Text search"
                    },
                    {
                        "name": "department",
                        "in": "query",
                        "type": "string",
                        "description": "Department id"
                    },
                    {
                        "name": "page",
                        "in": "query",
                        "type": "integer",
                        "description": "Page number"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/events/": {
            "get": {
                "tags": [
                    "Board"
                ],
                "summary": "Active events",
                "parameters": [
                    {
                        "name": "search",
                        "in": "query",
                        "type": "string",
                        "description": "Text search"
                    },
                    {
                        "name": "department",
                        "in": "query",
                        "type": "string",
                        "description": "Department id"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/timetable/": {
            "get": {
                "tags": [
                    "Board"
                ],
                "summary": "Weekly timetable",
                "parameters": [
                    {
                        "name": "department",
                        "in": "query",
                        "type": "string",
                        "description": "Department id"
                    },
                    {
                        "name": "level",
                        "in": "query",
                        "type": "string",
                        "description": "Level"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/timetable/export/": {
            "get": {
                "tags": [
                    "Board"
                ],
                "summary": "Timetable PDF",
                "produces": [
                    "application/pdf"
                ],
                "parameters": [
                    {
                        "name": "department",
                        "in": "query",
                        "type": "string",
                        "description": "Department id"
                    },
                    {
                        "name": "level",
                        "in": "query",
                        "type": "string",
                        "description": "Level"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "PDF attachment"
                    }
                }
            }
        },
        "/results/": {
            "get": {
                "tags": [
                    "Board"
                ],
                "summary": "Published results",
                "parameters": [
                    {
                        "name": "department",
                        "in": "query",
                        "type": "string",
                        "description": "Department id"
                    },
                    {
                        "name": "session",
                        "in": "query",
                        "type": "string",
                        "description": "Academic session"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/results/export/": {
            "get": {
                "tags": [
                    "Board"
                ],
                "summary": "Published results CSV",
                "produces": [
                    "text/csv"
                ],
                "parameters": [
                    {
                        "name": "department",
                        "in": "query",
                        "type": "string",
                        "description": "Department id"
                    },
                    {
                        "name": "session",
                        "in": "query",
                        "type": "string",
                        "description": "Academic session"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "CSV attachment"
                    }
                }
            }
        },
        "/admin/": {
            "get": {
                "tags": [
                    "Admin"
                ],
                "summary": "Dashboard counts",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/admin/login/": {
            "get": {
                "tags": [
                    "Admin"
                ],
                "summary": "Sign-in form",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "Admin"
                ],
                "summary": "Sign in",
                "consumes": [
                    "application/x-www-form-urlencoded"
                ],
                "parameters": [
                    {
                        "name": "username",
                        "in": "formData",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "password",
                        "in": "formData",
                        "type": "string",
                        "required": true
                    }
                ],
                "responses": {
                    "303": {
                        "description": "Signed in"
                    },
                    "401": {
                        "description": "Invalid credentials or insufficient permissions.",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/admin/logout/": {
            "post": {
                "tags": [
                    "Admin"
                ],
                "summary": "Sign out",
                "responses": {
                    "303": {
                        "description": "Signed out"
                    }
                }
            }
        },
        "/admin/announcements/": {
            "get": {
                "tags": [
                    "Admin: Announcements"
                ],
                "summary": "List all announcements",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/admin/announcements/add/": {
            "get": {
                "tags": [
                    "Admin: Announcements"
                ],
                "summary": "Empty form",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "Admin: Announcements"
                ],
                "summary": "Create",
                "consumes": [
                    "application/x-www-form-urlencoded"
                ],
                "responses": {
                    "303": {
                        "description": "Created"
                    },
                    "400": {
                        "description": "Field errors",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/admin/announcements/edit/{id}/": {
            "get": {
                "tags": [
                    "Admin: Announcements"
                ],
                "summary": "Prefilled form",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "type": "string",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "Admin: Announcements"
                ],
                "summary": "Update",
                "consumes": [
                    "application/x-www-form-urlencoded"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "type": "string",
                        "required": true
                    }
                ],
                "responses": {
                    "303": {
                        "description": "Updated"
                    },
                    "400": {
                        "description": "Field errors"
                    },
                    "404": {
                        "description": "Not found"
                    }
                }
            }
        },
        "/admin/announcements/delete/{id}/": {
            "get": {
                "tags": [
                    "Admin: Announcements"
                ],
                "summary": "Confirmation prompt",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "type": "string",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "Admin: Announcements"
                ],
                "summary": "Delete",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "type": "string",
                        "required": true
                    }
                ],
                "responses": {
                    "303": {
                        "description": "Deleted"
                    },
                    "404": {
                        "description": "Not found"
                    }
                }
            }
        },
        "/admin/events/": {
            "get": {
                "tags": [
                    "Admin: Events"
                ],
                "summary": "List all events",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/admin/events/add/": {
            "get": {
                "tags": [
                    "Admin: Events"
                ],
                "summary": "Empty form",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "Admin: Events"
                ],
                "summary": "Create",
                "consumes": [
                    "application/x-www-form-urlencoded"
                ],
                "responses": {
                    "303": {
                        "description": "Created"
                    },
                    "400": {
                        "description": "Field errors",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/admin/events/edit/{id}/": {
            "get": {
                "tags": [
                    "Admin: Events"
                ],
                "summary": "Prefilled form",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "type": "string",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "Admin: Events"
                ],
                "summary": "Update",
                "consumes": [
                    "application/x-www-form-urlencoded"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "type": "string",
                        "required": true
                    }
                ],
                "responses": {
                    "303": {
                        "description": "Updated"
                    },
                    "400": {
                        "description": "Field errors"
                    },
                    "404": {
                        "description": "Not found"
                    }
                }
            }
        },
        "/admin/events/delete/{id}/": {
            "get": {
                "tags": [
                    "Admin: Events"
                ],
                "summary": "Confirmation prompt",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "type": "string",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "Admin: Events"
                ],
                "summary": "Delete",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "type": "string",
                        "required": true
                    }
                ],
                "responses": {
                    "303": {
                        "description": "Deleted"
                    },
                    "404": {
                        "description": "Not found"
                    }
                }
            }
        },
        "/admin/timetables/": {
            "get": {
                "tags": [
                    "Admin: Timetable entries"
                ],
                "summary": "List all timetable entries",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/admin/timetables/add/": {
            "get": {
                "tags": [
                    "Admin: Timetable entries"
                ],
                "summary": "Empty form",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "Admin: Timetable entries"
                ],
                "summary": "Create",
                "consumes": [
                    "application/x-www-form-urlencoded"
                ],
                "responses": {
                    "303": {
                        "description": "Created"
                    },
                    "400": {
                        "description": "Field errors",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/admin/timetables/edit/{id}/": {
            "get": {
                "tags": [
                    "Admin: Timetable entries"
                ],
                "summary": "Prefilled form",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "type": "string",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "Admin: Timetable entries"
                ],
                "summary": "Update",
                "consumes": [
                    "application/x-www-form-urlencoded"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "type": "string",
                        "required": true
                    }
                ],
                "responses": {
                    "303": {
                        "description": "Updated"
                    },
                    "400": {
                        "description": "Field errors"
                    },
                    "404": {
                        "description": "Not found"
                    }
                }
            }
        },
        "/admin/timetables/delete/{id}/": {
            "get": {
                "tags": [
                    "Admin: Timetable entries"
                ],
                "summary": "Confirmation prompt",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "type": "string",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "Admin: Timetable entries"
                ],
                "summary": "Delete",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "type": "string",
                        "required": true
                    }
                ],
                "responses": {
                    "303": {
                        "description": "Deleted"
                    },
                    "404": {
                        "description": "Not found"
                    }
                }
            }
        },
        "/admin/results/": {
            "get": {
                "tags": [
                    "Admin: Results"
                ],
                "summary": "List all results",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/admin/results/add/": {
            "get": {
                "tags": [
                    "Admin: Results"
                ],
                "summary": "Empty form",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "Admin: Results"
                ],
                "summary": "Create",
                "consumes": [
                    "application/x-www-form-urlencoded"
                ],
                "responses": {
                    "303": {
                        "description": "Created"
                    },
                    "400": {
                        "description": "Field errors",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/admin/results/edit/{id}/": {
            "get": {
                "tags": [
                    "Admin: Results"
                ],
                "summary": "Prefilled form",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "type": "string",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "Admin: Results"
                ],
                "summary": "Update",
                "consumes": [
                    "application/x-www-form-urlencoded"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "type": "string",
                        "required": true
                    }
                ],
                "responses": {
                    "303": {
                        "description": "Updated"
                    },
                    "400": {
                        "description": "Field errors"
                    },
                    "404": {
                        "description": "Not found"
                    }
                }
            }
        },
        "/admin/results/delete/{id}/": {
            "get": {
                "tags": [
                    "Admin: Results"
                ],
                "summary": "Confirmation prompt",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "type": "string",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "Admin: Results"
                ],
                "summary": "Delete",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "type": "string",
                        "required": true
                    }
                ],
                "responses": {
                    "303": {
                        "description": "Deleted"
                    },
                    "404": {
                        "description": "Not found"
                    }
                }
            }
        },
        "/admin/departments/": {
            "get": {
                "tags": [
                    "Admin: Departments"
                ],
                "summary": "List all departments",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/admin/departments/add/": {
            "get": {
                "tags": [
                    "Admin: Departments"
                ],
                "summary": "Empty form",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "Admin: Departments"
                ],
                "summary": "Create",
                "consumes": [
                    "application/x-www-form-urlencoded"
                ],
                "responses": {
                    "303": {
                        "description": "Created"
                    },
                    "400": {
                        "description": "Field errors",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/admin/departments/edit/{id}/": {
            "get": {
                "tags": [
                    "Admin: Departments"
                ],
                "summary": "Prefilled form",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "type": "string",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "Admin: Departments"
                ],
                "summary": "Update",
                "consumes": [
                    "application/x-www-form-urlencoded"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "type": "string",
                        "required": true
                    }
                ],
                "responses": {
                    "303": {
                        "description": "Updated"
                    },
                    "400": {
                        "description": "Field errors"
                    },
                    "404": {
                        "description": "Not found"
                    }
                }
            }
        },
        "/admin/departments/delete/{id}/": {
            "get": {
                "tags": [
                    "Admin: Departments"
                ],
                "summary": "Confirmation prompt",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "type": "string",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "Admin: Departments"
                ],
                "summary": "Delete",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "type": "string",
                        "required": true
                    }
                ],
                "responses": {
                    "303": {
                        "description": "Deleted"
                    },
                    "404": {
                        "description": "Not found"
                    }
                }
            }
        }
    },
    "definitions": {
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {
                    "type": "integer"
                },
                "page_size": {
                    "type": "integer"
                },
                "total_count": {
                    "type": "integer"
                },
                "total_pages": {
                    "type": "integer"
                },
                "has_next": {
                    "type": "boolean"
                },
                "has_previous": {
                    "type": "boolean"
                }
            }
        },
        "Notice": {
            "type": "object",
            "properties": {
                "level": {
                    "type": "string"
                },
                "text": {
                    "type": "string"
                }
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                },
                "status": {
                    "type": "integer"
                },
                "fields": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "string"
                    }
                }
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "view": {
                    "type": "string"
                },
                "data": {
                    "type": "object"
                },
                "error": {
                    "$ref": "#/definitions/APIError"
                },
                "pagination": {
                    "$ref": "#/definitions/Pagination"
                },
                "notices": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/Notice"
                    }
                }
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
