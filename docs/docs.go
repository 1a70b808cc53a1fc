// Package docs registers the Swagger document served at /swagger.
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
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Root endpoint",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"},
                    "503": {"description": "Service Unavailable"}
                }
            }
        },
        "/employees": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Employees"],
                "summary": "List employees",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Employee"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Employees"],
                "summary": "Create employee",
                "parameters": [
                    {"description": "Employee", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.EmployeeCreate"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Employee"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorBody"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/response.ErrorBody"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            }
        },
        "/employees/{id}": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Employees"],
                "summary": "Update employee",
                "parameters": [
                    {"type": "integer", "description": "Employee ID", "name": "id", "in": "path", "required": true},
                    {"description": "Employee fields", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.EmployeeUpdate"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Employee"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorBody"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.ErrorBody"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/response.ErrorBody"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            },
            "delete": {
                "tags": ["Employees"],
                "summary": "Delete employee",
                "parameters": [
                    {"type": "integer", "description": "Employee ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorBody"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            }
        },
        "/attendance": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Attendance"],
                "summary": "List attendance",
                "parameters": [
                    {"type": "integer", "description": "Employee ID", "name": "employee_id", "in": "query"},
                    {"type": "string", "description": "Date (YYYY-MM-DD)", "name": "date", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Attendance"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorBody"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Attendance"],
                "summary": "Mark attendance",
                "parameters": [
                    {"description": "Attendance", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.AttendanceCreate"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Attendance"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.ErrorBody"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/response.ErrorBody"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            }
        },
        "/attendance/{id}": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Attendance"],
                "summary": "Update attendance",
                "parameters": [
                    {"type": "integer", "description": "Attendance ID", "name": "id", "in": "path", "required": true},
                    {"description": "Attendance fields", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.AttendanceUpdate"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Attendance"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.ErrorBody"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/response.ErrorBody"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            },
            "delete": {
                "tags": ["Attendance"],
                "summary": "Delete attendance",
                "parameters": [
                    {"type": "integer", "description": "Attendance ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            }
        },
        "/dashboard-summary": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Dashboard"],
                "summary": "Dashboard summary",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.DashboardSummary"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            }
        }
    },
    "definitions": {
        "domain.Employee": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "employee_id": {"type": "string"},
                "full_name": {"type": "string"},
                "email": {"type": "string"},
                "department": {"type": "string"},
                "date_of_joining": {"type": "string", "example": "2024-01-15"}
            }
        },
        "domain.EmployeeCreate": {
            "type": "object",
            "required": ["employee_id", "full_name", "email", "department"],
            "properties": {
                "employee_id": {"type": "string"},
                "full_name": {"type": "string"},
                "email": {"type": "string"},
                "department": {"type": "string"},
                "date_of_joining": {"type": "string", "example": "2024-01-15"}
            }
        },
        "domain.EmployeeUpdate": {
            "type": "object",
            "required": ["full_name", "email", "department", "date_of_joining"],
            "properties": {
                "full_name": {"type": "string"},
                "email": {"type": "string"},
                "department": {"type": "string"},
                "date_of_joining": {"type": "string", "example": "2024-01-15"}
            }
        },
        "domain.Attendance": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "employee_id": {"type": "integer"},
                "date": {"type": "string", "example": "2024-03-04"},
                "status": {"type": "string", "enum": ["Present", "Absent"]}
            }
        },
        "domain.AttendanceCreate": {
            "type": "object",
            "required": ["employee_id", "date", "status"],
            "properties": {
                "employee_id": {"type": "integer"},
                "date": {"type": "string", "example": "2024-03-04"},
                "status": {"type": "string", "enum": ["Present", "Absent"]}
            }
        },
        "domain.AttendanceUpdate": {
            "type": "object",
            "required": ["date", "status"],
            "properties": {
                "date": {"type": "string", "example": "2024-03-04"},
                "status": {"type": "string", "enum": ["Present", "Absent"]}
            }
        },
        "domain.RecentAttendance": {
            "type": "object",
            "properties": {
                "employee_name": {"type": "string"},
                "date": {"type": "string"},
                "status": {"type": "string", "enum": ["Present", "Absent"]}
            }
        },
        "domain.DashboardSummary": {
            "type": "object",
            "properties": {
                "total_employees": {"type": "integer"},
                "present_today": {"type": "integer"},
                "absent_today": {"type": "integer"},
                "recent_attendance": {"type": "array", "items": {"$ref": "#/definitions/domain.RecentAttendance"}}
            }
        },
        "response.ErrorBody": {
            "type": "object",
            "properties": {
                "detail": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "HRMS Lite API",
	Description:      "Employee directory and daily attendance API",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
