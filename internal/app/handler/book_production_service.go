package handler

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"book-office/internal/app/ds"
	"book-office/internal/app/dto"
	"book-office/internal/app/middleware"
	"book-office/internal/app/repository"
	"book-office/internal/app/storage"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ============ ДОМЕН УСЛУГИ ============

// GetServices получает список услуг
// @Summary Получение списка услуг
// @Description Активные услуги, название которых начинается с заданной строки, и данные черновика текущего пользователя
// @Tags Services
// @Produce json
// @Param book_production_service_name query string false "Начало названия услуги"
// @Success 200 {object} dto.ServiceListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /book_production_service [get]
func (h *Handler) GetServices(c *gin.Context) {
	ctx := c.Request.Context()
	prefix := c.Query("book_production_service_name")

	services, err := h.Repository.ListServices(ctx, prefix)
	if err != nil {
		internalError(c, err)
		return
	}

	response := dto.ServiceListResponse{
		Services: make([]dto.ServiceResponse, len(services)),
	}
	for i := range services {
		response.Services[i] = toServiceResponse(&services[i])
	}

	if user := middleware.CurrentUser(c); user != nil {
		draft, err := h.Repository.FindDraft(ctx, user.ID)
		switch {
		case err == nil:
			response.ProjectID = draft.ID
			response.SelectedCount, err = h.Repository.CountSelectedServices(ctx, draft.ID)
			if err != nil {
				internalError(c, err)
				return
			}
		case !errors.Is(err, repository.ErrNotFound):
			internalError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, response)
}

// GetService получает одну услугу
// @Summary Получение услуги по ID
// @Tags Services
// @Produce json
// @Param id path int true "ID услуги"
// @Success 200 {object} dto.ServiceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /book_production_service/{id} [get]
func (h *Handler) GetService(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	service, err := h.Repository.GetService(c.Request.Context(), id)
	if err != nil {
		h.serviceLookupError(c, err)
		return
	}

	c.JSON(http.StatusOK, toServiceResponse(service))
}

// CreateService создает новую услугу
// @Summary Создание услуги
// @Description Только для сотрудников
// @Tags Services
// @Accept json
// @Produce json
// @Param request body dto.CreateServiceRequest true "Данные услуги"
// @Success 201 {object} dto.ServiceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /book_production_service [post]
func (h *Handler) CreateService(c *gin.Context) {
	var req dto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	service := &ds.BookProductionService{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
	}
	err := h.Repository.CreateService(c.Request.Context(), service)
	if errors.Is(err, repository.ErrDuplicate) {
		validationError(c, map[string]string{"title": "услуга с таким названием уже существует"})
		return
	}
	if err != nil {
		internalError(c, err)
		return
	}

	logrus.Infof("service %d %q created", service.ID, service.Title)
	c.JSON(http.StatusCreated, toServiceResponse(service))
}

// UpdateService частично обновляет услугу
// @Summary Обновление услуги
// @Description Меняются только переданные поля. Только для сотрудников
// @Tags Services
// @Accept json
// @Produce json
// @Param id path int true "ID услуги"
// @Param request body dto.UpdateServiceRequest true "Данные для обновления"
// @Success 200 {object} dto.ServiceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /book_production_service/{id} [put]
func (h *Handler) UpdateService(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	ctx := c.Request.Context()
	err := h.Repository.UpdateService(ctx, id, repository.ServiceUpdate{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
	})
	switch {
	case errors.Is(err, repository.ErrNotFound):
		errorResponse(c, http.StatusNotFound, "услуга не найдена")
		return
	case errors.Is(err, repository.ErrDuplicate):
		validationError(c, map[string]string{"title": "услуга с таким названием уже существует"})
		return
	case err != nil:
		internalError(c, err)
		return
	}

	service, err := h.Repository.GetService(ctx, id)
	if err != nil {
		h.serviceLookupError(c, err)
		return
	}
	c.JSON(http.StatusOK, toServiceResponse(service))
}

// DeleteService логически удаляет услугу
// @Summary Удаление услуги
// @Description Удаляет картинку из хранилища, затем помечает услугу неактивной. Только для сотрудников
// @Tags Services
// @Produce json
// @Param id path int true "ID услуги"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /book_production_service/{id} [delete]
func (h *Handler) DeleteService(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	service, err := h.Repository.GetService(ctx, id)
	if err != nil {
		h.serviceLookupError(c, err)
		return
	}

	// Сначала картинка: при ошибке хранилища услуга остается как есть
	if service.ImageURL != "" {
		if h.Storage == nil {
			errorResponse(c, http.StatusInternalServerError, "хранилище изображений недоступно")
			return
		}
		if err := h.Storage.DeleteFile(ctx, storage.ObjectKey(service.ImageURL)); err != nil {
			logrus.Errorf("delete image of service %d: %v", id, err)
			errorResponse(c, http.StatusInternalServerError, err.Error())
			return
		}
	}

	err = h.Repository.DeactivateService(ctx, id)
	if err != nil {
		h.serviceLookupError(c, err)
		return
	}

	successResponse(c, http.StatusOK, "услуга удалена", nil)
}

// AddServiceToProject добавляет услугу в черновик текущего пользователя
// @Summary Добавление услуги в проект
// @Description Черновик создается, если его еще нет. Тариф по умолчанию BASE
// @Tags Services
// @Produce json
// @Param id path int true "ID услуги"
// @Success 201 {object} dto.SelectedServiceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /book_production_service/{id}/add [post]
func (h *Handler) AddServiceToProject(c *gin.Context) {
	serviceID, ok := parseID(c, "id")
	if !ok {
		return
	}

	user := middleware.CurrentUser(c)
	ctx := c.Request.Context()

	if _, err := h.Repository.GetService(ctx, serviceID); err != nil {
		h.serviceLookupError(c, err)
		return
	}

	draft, err := h.Repository.GetOrCreateDraft(ctx, user.ID)
	if err != nil {
		internalError(c, err)
		return
	}

	selected, err := h.Repository.AddSelectedService(ctx, draft.ID, serviceID)
	if errors.Is(err, repository.ErrDuplicate) {
		validationError(c, map[string]string{"service": "услуга уже добавлена в проект"})
		return
	}
	if err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toSelectedServiceResponse(selected))
}

// UploadServiceImage загружает изображение для услуги
// @Summary Загрузка изображения услуги
// @Description Файл сохраняется в MinIO под ключом "{id}{расширение}". Только для сотрудников
// @Tags Services
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "ID услуги"
// @Param image formData file true "Файл изображения"
// @Success 200 {object} dto.ServiceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /book_production_service/{id}/add_image [post]
func (h *Handler) UploadServiceImage(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	service, err := h.Repository.GetService(ctx, id)
	if err != nil {
		h.serviceLookupError(c, err)
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		validationError(c, map[string]string{"image": "обязательное поле"})
		return
	}

	if h.Storage == nil {
		errorResponse(c, http.StatusInternalServerError, "хранилище изображений недоступно")
		return
	}

	openedFile, err := file.Open()
	if err != nil {
		internalError(c, err)
		return
	}
	defer openedFile.Close()

	key := fmt.Sprintf("%d%s", id, strings.ToLower(filepath.Ext(file.Filename)))
	imageURL, err := h.Storage.UploadFile(ctx, key, openedFile, file.Size)
	if err != nil {
		logrus.Errorf("upload image of service %d: %v", id, err)
		errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	if err := h.Repository.SetServiceImage(ctx, id, imageURL); err != nil {
		h.serviceLookupError(c, err)
		return
	}

	service.ImageURL = imageURL
	c.JSON(http.StatusOK, toServiceResponse(service))
}

func (h *Handler) serviceLookupError(c *gin.Context, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		errorResponse(c, http.StatusNotFound, "услуга не найдена")
		return
	}
	internalError(c, err)
}
