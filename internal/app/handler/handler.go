package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"book-office/internal/app/ds"
	"book-office/internal/app/dto"
	"book-office/internal/app/repository"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

// Repository - операции с БД, которые нужны обработчикам
type Repository interface {
	ListServices(ctx context.Context, prefix string) ([]ds.BookProductionService, error)
	GetService(ctx context.Context, id uint) (*ds.BookProductionService, error)
	CreateService(ctx context.Context, service *ds.BookProductionService) error
	UpdateService(ctx context.Context, id uint, upd repository.ServiceUpdate) error
	DeactivateService(ctx context.Context, id uint) error
	SetServiceImage(ctx context.Context, id uint, imageURL string) error

	FindDraft(ctx context.Context, customerID uint) (*ds.BookPublishingProject, error)
	GetOrCreateDraft(ctx context.Context, customerID uint) (*ds.BookPublishingProject, error)
	ListProjects(ctx context.Context, f repository.ProjectFilter) ([]ds.BookPublishingProject, error)
	GetProject(ctx context.Context, id uint) (*ds.BookPublishingProject, error)
	UpdateDraftProject(ctx context.Context, id uint, upd repository.ProjectUpdate) error
	SaveProjectTransition(ctx context.Context, project *ds.BookPublishingProject, from ds.ProjectStatus) error

	AddSelectedService(ctx context.Context, projectID, serviceID uint) (*ds.SelectedService, error)
	ListSelectedServices(ctx context.Context, projectID uint) ([]ds.SelectedService, error)
	CountSelectedServices(ctx context.Context, projectID uint) (int64, error)
	UpdateSelectedServiceRate(ctx context.Context, projectID, serviceID uint, rate ds.Rate) (*ds.SelectedService, error)
	DeleteSelectedService(ctx context.Context, projectID, serviceID uint) error

	GetUserByID(ctx context.Context, id uint) (*ds.User, error)
	GetUserByUsername(ctx context.Context, username string) (*ds.User, error)
	CreateUser(ctx context.Context, user *ds.User) error
	UpdateUser(ctx context.Context, id uint, upd repository.UserUpdate) error
}

// BlobStorage - хранилище картинок услуг (MinIO)
type BlobStorage interface {
	UploadFile(ctx context.Context, key string, reader io.Reader, size int64) (string, error)
	DeleteFile(ctx context.Context, key string) error
}

type Handler struct {
	Repository  Repository
	Storage     BlobStorage
	AuthHandler *AuthHandler

	now func() time.Time
}

func NewHandler(r Repository, storage BlobStorage, authHandler *AuthHandler) *Handler {
	registerJSONTagNames()
	return &Handler{
		Repository:  r,
		Storage:     storage,
		AuthHandler: authHandler,
		now:         time.Now,
	}
}

var tagNamesOnce sync.Once

// registerJSONTagNames - ошибки валидации называют поля так же, как в JSON/форме
func registerJSONTagNames() {
	tagNamesOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, tag := range []string{"json", "form"} {
				name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return fld.Name
		})
	})
}

// ============ Вспомогательные функции ============

func errorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{
		Status:  "fail",
		Message: message,
	})
}

// internalError логирует причину и отдает 500
func internalError(c *gin.Context, err error) {
	logrus.Errorf("%s %s: %v", c.Request.Method, c.FullPath(), err)
	errorResponse(c, http.StatusInternalServerError, "внутренняя ошибка сервера")
}

func validationError(c *gin.Context, fields map[string]string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Status: "fail",
		Errors: fields,
	})
}

// bindError превращает ошибку биндинга в карту поле -> сообщение
func bindError(c *gin.Context, err error) {
	fields := map[string]string{}

	var verrs validator.ValidationErrors
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &verrs):
		for _, fe := range verrs {
			fields[fe.Field()] = fieldMessage(fe)
		}
	case errors.As(err, &typeErr) && typeErr.Field != "":
		fields[typeErr.Field] = "неверный тип значения"
	default:
		fields["non_field_errors"] = err.Error()
	}

	validationError(c, fields)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "обязательное поле"
	case "email":
		return "неверный адрес электронной почты"
	case "min":
		return "минимум " + fe.Param()
	case "max":
		return "максимум " + fe.Param()
	case "oneof":
		return "допустимые значения: " + fe.Param()
	default:
		return fmt.Sprintf("не выполнено условие %s=%s", fe.Tag(), fe.Param())
	}
}

func successResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	response := dto.SuccessResponse{
		Status:  "success",
		Message: message,
	}
	if data != nil {
		response.Data = data
	}
	c.JSON(statusCode, response)
}

// parseID читает положительный числовой параметр пути
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		errorResponse(c, http.StatusBadRequest, "неверный ID")
		return 0, false
	}
	return uint(id), true
}

// Ping проверяет работоспособность API
// @Summary Проверка работоспособности
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /ping [get]
func (h *Handler) Ping(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "pong"})
}
