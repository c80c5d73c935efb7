package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Patent Lifecycle API",
        "description": "Patent register, review workflow, and reporting service",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Authentication", "description": "Login and identity"},
        {"name": "Registration", "description": "Inventor and reviewer sign-up"},
        {"name": "Patents", "description": "Patent register and filings"},
        {"name": "Reviews", "description": "Reviewer assignment and decisions"},
        {"name": "Oppositions", "description": "Third-party oppositions"},
        {"name": "Reports", "description": "Reporting projections and exports"}
    ],
    "paths": {
        "/auth/login": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Authenticate user",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "Access token issued"},
                    "401": {"description": "Invalid credentials"}
                }
            }
        },
        "/auth/me": {
            "get": {
                "tags": ["Authentication"],
                "summary": "Get current user",
                "responses": {
                    "200": {"description": "Authenticated subject"},
                    "401": {"description": "Missing or invalid token"}
                }
            }
        },
        "/register/inventor": {
            "post": {
                "tags": ["Registration"],
                "summary": "Register an inventor account",
                "responses": {
                    "201": {"description": "Created"},
                    "409": {"description": "Email already registered"}
                }
            }
        },
        "/register/reviewer": {
            "post": {
                "tags": ["Registration"],
                "summary": "Register a reviewer account",
                "responses": {
                    "201": {"description": "Created"},
                    "409": {"description": "Email already registered"}
                }
            }
        },
        "/patents": {
            "get": {
                "tags": ["Patents"],
                "summary": "List patents",
                "parameters": [
                    {"name": "domain", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Patent register"}
                }
            },
            "post": {
                "tags": ["Patents"],
                "summary": "File a patent",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreatePatentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Patent filed with Pending status"},
                    "400": {"description": "Validation error"}
                }
            }
        },
        "/patents/domains": {
            "get": {
                "tags": ["Patents"],
                "summary": "List distinct patent domains",
                "responses": {
                    "200": {"description": "Domain list"}
                }
            }
        },
        "/patents/{id}": {
            "get": {
                "tags": ["Patents"],
                "summary": "Get patent detail",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "Patent"},
                    "404": {"description": "Not found"}
                }
            },
            "put": {
                "tags": ["Patents"],
                "summary": "Update a patent",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "Updated patent"},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/patents/{id}/age": {
            "get": {
                "tags": ["Patents"],
                "summary": "Get patent age",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "Calendar years and months since filing"},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/patents/{id}/status": {
            "patch": {
                "tags": ["Patents"],
                "summary": "Update patent status",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "204": {"description": "Status updated"},
                    "400": {"description": "Unknown status"},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/patents/{id}/reviewers": {
            "get": {
                "tags": ["Reviews"],
                "summary": "List assignments for a patent",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "Assignments"}
                }
            },
            "post": {
                "tags": ["Reviews"],
                "summary": "Assign reviewers to a patent",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AssignReviewersRequest"}}
                ],
                "responses": {
                    "200": {"description": "Number of assignments created"},
                    "404": {"description": "Patent not found"},
                    "412": {"description": "No active reviewers"}
                }
            }
        },
        "/inventor/patents": {
            "get": {
                "tags": ["Patents"],
                "summary": "List the acting inventor's patents",
                "responses": {
                    "200": {"description": "Patents"}
                }
            }
        },
        "/inventor/patents/count": {
            "get": {
                "tags": ["Patents"],
                "summary": "Count the acting inventor's patents",
                "responses": {
                    "200": {"description": "Count"}
                }
            }
        },
        "/reviewer/assignments": {
            "get": {
                "tags": ["Reviews"],
                "summary": "List pending assignments",
                "responses": {
                    "200": {"description": "Pending assignments"}
                }
            }
        },
        "/reviewer/history": {
            "get": {
                "tags": ["Reviews"],
                "summary": "List the acting reviewer's review record",
                "responses": {
                    "200": {"description": "Review history"}
                }
            }
        },
        "/reviewer/patents/{id}/review": {
            "post": {
                "tags": ["Reviews"],
                "summary": "Submit a review decision",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SubmitReviewRequest"}}
                ],
                "responses": {
                    "204": {"description": "Decision recorded and propagated"},
                    "400": {"description": "Unknown decision"},
                    "409": {"description": "Already reviewed"}
                }
            }
        },
        "/oppositions": {
            "post": {
                "tags": ["Oppositions"],
                "summary": "File an opposition",
                "responses": {
                    "201": {"description": "Opposition recorded"},
                    "400": {"description": "Validation error"}
                }
            }
        },
        "/admin/oppositions": {
            "get": {
                "tags": ["Oppositions"],
                "summary": "List the most recent oppositions",
                "responses": {
                    "200": {"description": "Oppositions"}
                }
            }
        },
        "/reviewers/active": {
            "get": {
                "tags": ["Reviews"],
                "summary": "Reviewers eligible for assignment",
                "responses": {
                    "200": {"description": "Active reviewers"}
                }
            }
        },
        "/stats": {
            "get": {
                "tags": ["Reports"],
                "summary": "Public headline counters",
                "responses": {
                    "200": {"description": "Aggregate statistics"}
                }
            }
        },
        "/reports/domains": {
            "get": {
                "tags": ["Reports"],
                "summary": "Patent counts per domain",
                "responses": {
                    "200": {"description": "Distribution"}
                }
            }
        },
        "/reports/types": {
            "get": {
                "tags": ["Reports"],
                "summary": "Patent counts per type",
                "responses": {
                    "200": {"description": "Distribution"}
                }
            }
        },
        "/reports/assignments": {
            "get": {
                "tags": ["Reports"],
                "summary": "Assignment join view",
                "responses": {
                    "200": {"description": "Rows"}
                }
            }
        },
        "/reports/granted-reviewers": {
            "get": {
                "tags": ["Reports"],
                "summary": "Reviewers of granted patents",
                "responses": {
                    "200": {"description": "Reviewers"}
                }
            }
        },
        "/reports/workload": {
            "get": {
                "tags": ["Reports"],
                "summary": "Reviewer workload",
                "responses": {
                    "200": {"description": "Workload rows"}
                }
            }
        },
        "/reports/qualifying-renewals": {
            "get": {
                "tags": ["Reports"],
                "summary": "Patents with at least two paid renewals",
                "responses": {
                    "200": {"description": "Qualifying patents"}
                }
            }
        },
        "/reports/register/export": {
            "get": {
                "tags": ["Reports"],
                "summary": "Export the patent register",
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "File download"},
                    "400": {"description": "Unsupported format"}
                }
            }
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "required": ["role", "email", "password"],
            "properties": {
                "role": {"type": "string", "enum": ["ADMIN", "INVENTOR", "REVIEWER"]},
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "CreatePatentRequest": {
            "type": "object",
            "required": ["title", "description", "domain", "patent_type", "applicant_name", "filing_date"],
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "domain": {"type": "string"},
                "patent_type": {"type": "string", "enum": ["Utility", "Design", "Plant"]},
                "applicant_name": {"type": "string"},
                "filing_date": {"type": "string", "format": "date"}
            }
        },
        "AssignReviewersRequest": {
            "type": "object",
            "required": ["reviewer_ids"],
            "properties": {
                "reviewer_ids": {"type": "array", "items": {"type": "integer"}}
            }
        },
        "SubmitReviewRequest": {
            "type": "object",
            "required": ["decision"],
            "properties": {
                "decision": {"type": "string", "enum": ["Approved", "Rejected", "Needs Revision"]},
                "comments": {"type": "string"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
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
