package dto

import "time"

// ============ Общие структуры ============

type ErrorResponse struct {
	Status  string            `json:"status"`
	Message string            `json:"message,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"` // ошибки валидации: поле -> сообщение
}

type SuccessResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ============ Услуги (Book Production Services) ============

type ServiceResponse struct {
	ID          uint   `json:"pk"`
	Title       string `json:"title"`
	Description string `json:"description"`
	IsActive    bool   `json:"is_active"`
	ImageURL    string `json:"image_url"`
	Price       string `json:"price"`
}

type ServiceListResponse struct {
	Services      []ServiceResponse `json:"book_production_services"`
	ProjectID     uint              `json:"book_publishing_project_id"` // 0 если черновика нет
	SelectedCount int64             `json:"selected_services_count"`
}

type CreateServiceRequest struct {
	Title       string `json:"title" binding:"required,max=130"`
	Description string `json:"description" binding:"required"`
	Price       string `json:"price" binding:"required,max=50"`
}

// UpdateServiceRequest - частичное обновление: отсутствующие поля не меняются
type UpdateServiceRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=1,max=130"`
	Description *string `json:"description"`
	Price       *string `json:"price" binding:"omitempty,max=50"`
}

// ============ Проекты (Book Publishing Projects) ============

type ProjectResponse struct {
	ID                 uint       `json:"pk"`
	Status             string     `json:"status"`
	CreationDatetime   time.Time  `json:"creation_datetime"`
	FormationDatetime  *time.Time `json:"formation_datetime"`
	CompletionDatetime *time.Time `json:"completion_datetime"`
	Format             string     `json:"format"`
	Circulation        *int       `json:"circulation"`
	Customer           string     `json:"customer"` // логин заказчика
	Manager            *string    `json:"manager"`  // логин менеджера (если есть)
	PersonalDiscount   *int       `json:"personal_discount"`
}

type ServiceForProjectResponse struct {
	ID       uint   `json:"pk"`
	Title    string `json:"title"`
	Price    string `json:"price"`
	ImageURL string `json:"image_url"`
}

type RelatedServiceResponse struct {
	ID      uint                      `json:"pk"`
	Service ServiceForProjectResponse `json:"service"`
	Rate    string                    `json:"rate"`
}

type FullProjectResponse struct {
	ProjectResponse
	Services []RelatedServiceResponse `json:"services_list"`
}

type ProjectListResponse struct {
	Projects []ProjectResponse `json:"book_publishing_projects"`
	Total    int               `json:"total"`
}

type UpdateProjectRequest struct {
	Format      *string `json:"format" binding:"omitempty,oneof=A4 A5 A6 SQUARE B5"`
	Circulation *int    `json:"circulation" binding:"omitempty,gte=1"`
}

type ResolveProjectRequest struct {
	Status string `json:"status" binding:"required"`
}

// ============ М-М связь (Selected Services) ============

type SelectedServiceResponse struct {
	ID      uint   `json:"pk"`
	Project uint   `json:"project"`
	Service uint   `json:"service"`
	Rate    string `json:"rate"`
}

type UpdateSelectedServiceRequest struct {
	Service uint   `json:"service" binding:"required"`
	Rate    string `json:"rate" binding:"required,oneof=BASE PREMIUM PROFESSIONAL"`
}

type SelectedServiceQuery struct {
	Service uint `form:"service" binding:"required"`
}

// ============ Пользователи (Users) ============

type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsStaff  bool   `json:"is_staff"`
}

type SignUpRequest struct {
	Username string `json:"username" form:"username" binding:"required,min=3,max=150"`
	Password string `json:"password" form:"password" binding:"required,min=6,max=72"`
	Email    string `json:"email" form:"email" binding:"omitempty,email"`
}

type LoginRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

type LoginResponse struct {
	Status    string       `json:"status"`
	User      UserResponse `json:"user"`
	Token     string       `json:"token"` // bearer-вариант: JWT со ссылкой на сессию
	TokenType string       `json:"token_type"`
	ExpiresIn int          `json:"expires_in"`
}

type UpdateUserRequest struct {
	Email    *string `json:"email" form:"email" binding:"omitempty,email"`
	Password *string `json:"password" form:"password" binding:"omitempty,min=6,max=72"`
}
