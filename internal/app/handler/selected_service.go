package handler

import (
	"errors"
	"net/http"

	"book-office/internal/app/ds"
	"book-office/internal/app/dto"
	"book-office/internal/app/repository"

	"github.com/gin-gonic/gin"
)

// ============ ДОМЕН М-М ============

// UpdateSelectedService меняет тариф услуги в проекте
// @Summary Изменение тарифа услуги в проекте
// @Tags SelectedServices
// @Accept json
// @Produce json
// @Param id path int true "ID проекта"
// @Param request body dto.UpdateSelectedServiceRequest true "Услуга и тариф"
// @Success 200 {object} dto.SelectedServiceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /selected_services/{id} [put]
func (h *Handler) UpdateSelectedService(c *gin.Context) {
	project, ok := h.loadProject(c)
	if !ok {
		return
	}

	var req dto.UpdateSelectedServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	rate, err := ds.ParseRate(req.Rate)
	if err != nil {
		validationError(c, map[string]string{"rate": "неизвестный тариф"})
		return
	}

	selected, err := h.Repository.UpdateSelectedServiceRate(c.Request.Context(), project.ID, req.Service, rate)
	if err != nil {
		h.selectedLookupError(c, err)
		return
	}

	c.JSON(http.StatusOK, toSelectedServiceResponse(selected))
}

// DeleteSelectedService убирает услугу из проекта
// @Summary Удаление услуги из проекта
// @Description Запись связи удаляется физически
// @Tags SelectedServices
// @Produce json
// @Param id path int true "ID проекта"
// @Param service query int true "ID услуги"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /selected_services/{id} [delete]
func (h *Handler) DeleteSelectedService(c *gin.Context) {
	project, ok := h.loadProject(c)
	if !ok {
		return
	}

	var query dto.SelectedServiceQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		bindError(c, err)
		return
	}

	if err := h.Repository.DeleteSelectedService(c.Request.Context(), project.ID, query.Service); err != nil {
		h.selectedLookupError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) selectedLookupError(c *gin.Context, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		errorResponse(c, http.StatusNotFound, "услуга в проекте не найдена")
		return
	}
	internalError(c, err)
}
