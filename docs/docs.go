// Package docs - описание API для swagger UI
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
        "/book_production_service": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Services"],
                "summary": "Получение списка услуг",
                "parameters": [
                    {"type": "string", "description": "Начало названия услуги", "name": "book_production_service_name", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ServiceListResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Services"],
                "summary": "Создание услуги",
                "parameters": [
                    {"description": "Данные услуги", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateServiceRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.ServiceResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/book_production_service/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Services"],
                "summary": "Получение услуги по ID",
                "parameters": [{"type": "integer", "description": "ID услуги", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ServiceResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Services"],
                "summary": "Обновление услуги",
                "parameters": [
                    {"type": "integer", "description": "ID услуги", "name": "id", "in": "path", "required": true},
                    {"description": "Данные для обновления", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateServiceRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ServiceResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["Services"],
                "summary": "Удаление услуги",
                "parameters": [{"type": "integer", "description": "ID услуги", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.SuccessResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/book_production_service/{id}/add": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Services"],
                "summary": "Добавление услуги в проект",
                "parameters": [{"type": "integer", "description": "ID услуги", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.SelectedServiceResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/book_production_service/{id}/add_image": {
            "post": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["Services"],
                "summary": "Загрузка изображения услуги",
                "parameters": [
                    {"type": "integer", "description": "ID услуги", "name": "id", "in": "path", "required": true},
                    {"type": "file", "description": "Файл изображения", "name": "image", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ServiceResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/book_publishing_project": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Projects"],
                "summary": "Получение списка проектов",
                "parameters": [
                    {"type": "string", "description": "Статус проекта", "name": "status", "in": "query"},
                    {"type": "string", "description": "Дата формирования с", "name": "formation_start", "in": "query"},
                    {"type": "string", "description": "Дата формирования по", "name": "formation_end", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ProjectListResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/book_publishing_project/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Projects"],
                "summary": "Получение проекта по ID",
                "parameters": [{"type": "integer", "description": "ID проекта", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.FullProjectResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Projects"],
                "summary": "Обновление проекта",
                "parameters": [
                    {"type": "integer", "description": "ID проекта", "name": "id", "in": "path", "required": true},
                    {"description": "Формат и тираж", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateProjectRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ProjectResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["Projects"],
                "summary": "Удаление проекта",
                "parameters": [{"type": "integer", "description": "ID проекта", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.SuccessResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/book_publishing_project/{id}/form": {
            "put": {
                "produces": ["application/json"],
                "tags": ["Projects"],
                "summary": "Формирование проекта",
                "parameters": [{"type": "integer", "description": "ID проекта", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ProjectResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/book_publishing_project/{id}/resolve": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Projects"],
                "summary": "Завершение/отклонение проекта",
                "parameters": [
                    {"type": "integer", "description": "ID проекта", "name": "id", "in": "path", "required": true},
                    {"description": "Итоговый статус", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ResolveProjectRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ProjectResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/selected_services/{id}": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["SelectedServices"],
                "summary": "Изменение тарифа услуги в проекте",
                "parameters": [
                    {"type": "integer", "description": "ID проекта", "name": "id", "in": "path", "required": true},
                    {"description": "Услуга и тариф", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateSelectedServiceRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.SelectedServiceResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["SelectedServices"],
                "summary": "Удаление услуги из проекта",
                "parameters": [
                    {"type": "integer", "description": "ID проекта", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "description": "ID услуги", "name": "service", "in": "query", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/users/sign_up": {
            "post": {
                "consumes": ["application/json", "application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["Users"],
                "summary": "Регистрация пользователя",
                "parameters": [{"description": "Данные для регистрации", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.SignUpRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.UserResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/users/log_in": {
            "post": {
                "consumes": ["application/json", "application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["Users"],
                "summary": "Вход в систему",
                "parameters": [{"description": "Логин и пароль", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.LoginRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.LoginResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/users/log_out": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Users"],
                "summary": "Выход из системы",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.SuccessResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/users/me": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Users"],
                "summary": "Профиль пользователя",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.UserResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/users/update": {
            "put": {
                "consumes": ["application/json", "application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["Users"],
                "summary": "Обновление профиля",
                "parameters": [{"description": "Новые почта и пароль", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateUserRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.UserResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/ping": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Проверка работоспособности",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "message": {"type": "string"},
                "errors": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "dto.SuccessResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "message": {"type": "string"},
                "data": {}
            }
        },
        "dto.ServiceResponse": {
            "type": "object",
            "properties": {
                "pk": {"type": "integer"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "is_active": {"type": "boolean"},
                "image_url": {"type": "string"},
                "price": {"type": "string"}
            }
        },
        "dto.ServiceListResponse": {
            "type": "object",
            "properties": {
                "book_production_services": {"type": "array", "items": {"$ref": "#/definitions/dto.ServiceResponse"}},
                "book_publishing_project_id": {"type": "integer"},
                "selected_services_count": {"type": "integer"}
            }
        },
        "dto.CreateServiceRequest": {
            "type": "object",
            "required": ["description", "price", "title"],
            "properties": {
                "title": {"type": "string", "maxLength": 130},
                "description": {"type": "string"},
                "price": {"type": "string", "maxLength": 50}
            }
        },
        "dto.UpdateServiceRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string", "maxLength": 130, "minLength": 1},
                "description": {"type": "string"},
                "price": {"type": "string", "maxLength": 50}
            }
        },
        "dto.ProjectResponse": {
            "type": "object",
            "properties": {
                "pk": {"type": "integer"},
                "status": {"type": "string"},
                "creation_datetime": {"type": "string"},
                "formation_datetime": {"type": "string"},
                "completion_datetime": {"type": "string"},
                "format": {"type": "string"},
                "circulation": {"type": "integer"},
                "customer": {"type": "string"},
                "manager": {"type": "string"},
                "personal_discount": {"type": "integer"}
            }
        },
        "dto.ServiceForProjectResponse": {
            "type": "object",
            "properties": {
                "pk": {"type": "integer"},
                "title": {"type": "string"},
                "price": {"type": "string"},
                "image_url": {"type": "string"}
            }
        },
        "dto.RelatedServiceResponse": {
            "type": "object",
            "properties": {
                "pk": {"type": "integer"},
                "service": {"$ref": "#/definitions/dto.ServiceForProjectResponse"},
                "rate": {"type": "string"}
            }
        },
        "dto.FullProjectResponse": {
            "type": "object",
            "properties": {
                "pk": {"type": "integer"},
                "status": {"type": "string"},
                "creation_datetime": {"type": "string"},
                "formation_datetime": {"type": "string"},
                "completion_datetime": {"type": "string"},
                "format": {"type": "string"},
                "circulation": {"type": "integer"},
                "customer": {"type": "string"},
                "manager": {"type": "string"},
                "personal_discount": {"type": "integer"},
                "services_list": {"type": "array", "items": {"$ref": "#/definitions/dto.RelatedServiceResponse"}}
            }
        },
        "dto.ProjectListResponse": {
            "type": "object",
            "properties": {
                "book_publishing_projects": {"type": "array", "items": {"$ref": "#/definitions/dto.ProjectResponse"}},
                "total": {"type": "integer"}
            }
        },
        "dto.UpdateProjectRequest": {
            "type": "object",
            "properties": {
                "format": {"type": "string", "enum": ["A4", "A5", "A6", "SQUARE", "B5"]},
                "circulation": {"type": "integer", "minimum": 1}
            }
        },
        "dto.ResolveProjectRequest": {
            "type": "object",
            "required": ["status"],
            "properties": {
                "status": {"type": "string", "enum": ["COMPLETED", "REJECTED"]}
            }
        },
        "dto.SelectedServiceResponse": {
            "type": "object",
            "properties": {
                "pk": {"type": "integer"},
                "project": {"type": "integer"},
                "service": {"type": "integer"},
                "rate": {"type": "string"}
            }
        },
        "dto.UpdateSelectedServiceRequest": {
            "type": "object",
            "required": ["rate", "service"],
            "properties": {
                "service": {"type": "integer"},
                "rate": {"type": "string", "enum": ["BASE", "PREMIUM", "PROFESSIONAL"]}
            }
        },
        "dto.UserResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "username": {"type": "string"},
                "email": {"type": "string"},
                "is_staff": {"type": "boolean"}
            }
        },
        "dto.SignUpRequest": {
            "type": "object",
            "required": ["password", "username"],
            "properties": {
                "username": {"type": "string", "maxLength": 150, "minLength": 3},
                "password": {"type": "string", "minLength": 6},
                "email": {"type": "string"}
            }
        },
        "dto.LoginRequest": {
            "type": "object",
            "required": ["password", "username"],
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "dto.LoginResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "user": {"$ref": "#/definitions/dto.UserResponse"},
                "token": {"type": "string"},
                "token_type": {"type": "string"},
                "expires_in": {"type": "integer"}
            }
        },
        "dto.UpdateUserRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string", "minLength": 6}
            }
        }
    },
    "securityDefinitions": {
        "Bearer": {
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
	Title:            "Book Office API",
	Description:      "Каталог услуг книжного производства и проекты изданий заказчиков.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
