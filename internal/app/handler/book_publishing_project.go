package handler

import (
	"errors"
	"net/http"
	"time"

	"book-office/internal/app/ds"
	"book-office/internal/app/dto"
	"book-office/internal/app/middleware"
	"book-office/internal/app/repository"
	"book-office/internal/app/role"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ============ ДОМЕН ПРОЕКТЫ ============

// GetProjects получает список проектов
// @Summary Получение списка проектов
// @Description Удаленные проекты не возвращаются. Заказчик видит только свои проекты, сотрудник - все
// @Tags Projects
// @Produce json
// @Param status query string false "Статус проекта"
// @Param formation_start query string false "Дата формирования с (2006-01-02 или RFC3339)"
// @Param formation_end query string false "Дата формирования по (2006-01-02 или RFC3339)"
// @Success 200 {object} dto.ProjectListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /book_publishing_project [get]
func (h *Handler) GetProjects(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var filter repository.ProjectFilter
	fields := map[string]string{}

	if s := c.Query("status"); s != "" {
		status, err := ds.ParseProjectStatus(s)
		if err != nil {
			fields["status"] = "неизвестный статус"
		} else {
			filter.Status = &status
		}
	}
	if s := c.Query("formation_start"); s != "" {
		start, _, err := parseDate(s)
		if err != nil {
			fields["formation_start"] = "неверный формат даты"
		} else {
			filter.FormationStart = &start
		}
	}
	if s := c.Query("formation_end"); s != "" {
		end, dateOnly, err := parseDate(s)
		if err != nil {
			fields["formation_end"] = "неверный формат даты"
		} else {
			// дата без времени включает весь день
			if dateOnly {
				end = end.Add(24*time.Hour - time.Nanosecond)
			}
			filter.FormationEnd = &end
		}
	}
	if len(fields) > 0 {
		validationError(c, fields)
		return
	}

	if role.Of(user) != role.Staff {
		filter.CustomerID = &user.ID
	}

	response := dto.ProjectListResponse{Projects: []dto.ProjectResponse{}}

	// удаленные проекты в выдачу не попадают никогда
	if filter.Status != nil && *filter.Status == ds.StatusDeleted {
		c.JSON(http.StatusOK, response)
		return
	}

	projects, err := h.Repository.ListProjects(c.Request.Context(), filter)
	if err != nil {
		internalError(c, err)
		return
	}

	for i := range projects {
		response.Projects = append(response.Projects, toProjectResponse(&projects[i]))
	}
	response.Total = len(response.Projects)

	c.JSON(http.StatusOK, response)
}

// GetProject получает проект с выбранными услугами
// @Summary Получение проекта по ID
// @Tags Projects
// @Produce json
// @Param id path int true "ID проекта"
// @Success 200 {object} dto.FullProjectResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /book_publishing_project/{id} [get]
func (h *Handler) GetProject(c *gin.Context) {
	project, ok := h.loadProject(c)
	if !ok {
		return
	}

	selected, err := h.Repository.ListSelectedServices(c.Request.Context(), project.ID)
	if err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, toFullProjectResponse(project, selected))
}

// UpdateProject меняет поля черновика
// @Summary Обновление проекта
// @Description Только для черновиков. Меняются только переданные поля
// @Tags Projects
// @Accept json
// @Produce json
// @Param id path int true "ID проекта"
// @Param request body dto.UpdateProjectRequest true "Формат и тираж"
// @Success 200 {object} dto.ProjectResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /book_publishing_project/{id} [put]
func (h *Handler) UpdateProject(c *gin.Context) {
	project, ok := h.loadProject(c)
	if !ok {
		return
	}

	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	if project.Status != ds.StatusDraft {
		errorResponse(c, http.StatusNotFound, "черновик не найден")
		return
	}

	upd := repository.ProjectUpdate{Circulation: req.Circulation}
	if req.Format != nil {
		format, err := ds.ParseBookFormat(*req.Format)
		if err != nil {
			validationError(c, map[string]string{"format": "неизвестный формат"})
			return
		}
		upd.Format = &format
	}

	ctx := c.Request.Context()
	if err := h.Repository.UpdateDraftProject(ctx, project.ID, upd); err != nil {
		h.projectLookupError(c, err)
		return
	}

	updated, err := h.Repository.GetProject(ctx, project.ID)
	if err != nil {
		h.projectLookupError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProjectResponse(updated))
}

// FormProject формирует проект
// @Summary Формирование проекта
// @Description DRAFT -> FORMED. Нужен тираж не меньше 100
// @Tags Projects
// @Produce json
// @Param id path int true "ID проекта"
// @Success 200 {object} dto.ProjectResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /book_publishing_project/{id}/form [put]
func (h *Handler) FormProject(c *gin.Context) {
	project, ok := h.loadProject(c)
	if !ok {
		return
	}

	from := project.Status
	err := project.Form(h.now())

	var circErr *ds.CirculationError
	switch {
	case errors.Is(err, ds.ErrIllegalTransition):
		errorResponse(c, http.StatusNotFound, "черновик не найден")
		return
	case errors.As(err, &circErr):
		msg := "обязательное поле"
		if circErr.Circulation != nil {
			msg = "тираж должен быть не меньше 100"
		}
		validationError(c, map[string]string{"circulation": msg})
		return
	case err != nil:
		internalError(c, err)
		return
	}

	h.saveTransition(c, project, from)
}

// ResolveProject завершает или отклоняет проект
// @Summary Завершение/отклонение проекта
// @Description FORMED -> COMPLETED/REJECTED, считает персональную скидку. Только для сотрудников
// @Tags Projects
// @Accept json
// @Produce json
// @Param id path int true "ID проекта"
// @Param request body dto.ResolveProjectRequest true "Итоговый статус"
// @Success 200 {object} dto.ProjectResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /book_publishing_project/{id}/resolve [put]
func (h *Handler) ResolveProject(c *gin.Context) {
	var req dto.ResolveProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	to, err := ds.ParseProjectStatus(req.Status)
	if err != nil || !to.IsResolution() {
		validationError(c, map[string]string{"status": "допустимые значения: COMPLETED REJECTED"})
		return
	}

	project, ok := h.loadProject(c)
	if !ok {
		return
	}

	manager := middleware.CurrentUser(c)
	from := project.Status
	if err := project.Resolve(to, manager.ID, h.now()); err != nil {
		if errors.Is(err, ds.ErrIllegalTransition) {
			errorResponse(c, http.StatusNotFound, "сформированный проект не найден")
			return
		}
		internalError(c, err)
		return
	}
	project.Manager = manager

	logrus.Infof("project %d resolved to %s by %s, discount %d%%", project.ID, to, manager.Username, *project.PersonalDiscount)
	h.saveTransition(c, project, from)
}

// DeleteProject логически удаляет черновик
// @Summary Удаление проекта
// @Description DRAFT -> DELETED
// @Tags Projects
// @Produce json
// @Param id path int true "ID проекта"
// @Success 200 {object} dto.SuccessResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /book_publishing_project/{id} [delete]
func (h *Handler) DeleteProject(c *gin.Context) {
	project, ok := h.loadProject(c)
	if !ok {
		return
	}

	from := project.Status
	if err := project.Delete(); err != nil {
		errorResponse(c, http.StatusNotFound, "черновик не найден")
		return
	}

	if err := h.Repository.SaveProjectTransition(c.Request.Context(), project, from); err != nil {
		h.projectLookupError(c, err)
		return
	}

	successResponse(c, http.StatusOK, "проект удален", nil)
}

// loadProject достает проект из пути и проверяет, что вызывающий - заказчик или сотрудник
func (h *Handler) loadProject(c *gin.Context) (*ds.BookPublishingProject, bool) {
	id, ok := parseID(c, "id")
	if !ok {
		return nil, false
	}

	project, err := h.Repository.GetProject(c.Request.Context(), id)
	if err != nil {
		h.projectLookupError(c, err)
		return nil, false
	}

	user := middleware.CurrentUser(c)
	if role.Of(user) != role.Staff && !project.OwnedBy(user.ID) {
		errorResponse(c, http.StatusForbidden, "нет доступа к проекту")
		return nil, false
	}

	return project, true
}

func (h *Handler) saveTransition(c *gin.Context, project *ds.BookPublishingProject, from ds.ProjectStatus) {
	if err := h.Repository.SaveProjectTransition(c.Request.Context(), project, from); err != nil {
		h.projectLookupError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProjectResponse(project))
}

func (h *Handler) projectLookupError(c *gin.Context, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		errorResponse(c, http.StatusNotFound, "проект не найден")
		return
	}
	internalError(c, err)
}

// parseDate принимает "2006-01-02" или RFC3339; второй результат - была ли передана только дата
func parseDate(s string) (time.Time, bool, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, true, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	return t, false, err
}
