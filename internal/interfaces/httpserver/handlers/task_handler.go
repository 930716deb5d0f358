package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"todopro-server/internal/domain/task"
	"todopro-server/internal/interfaces/httpserver/middlewares"
	"todopro-server/internal/interfaces/httpserver/requests"
	"todopro-server/internal/interfaces/httpserver/responses"
	"todopro-server/internal/utils/platformerrors"
)

// TaskHandler exposes HTTP entrypoints for task CRUD.
type TaskHandler struct {
	service task.Service
	log     zerolog.Logger
}

// NewTaskHandler constructs the handler.
func NewTaskHandler(service task.Service, log zerolog.Logger) *TaskHandler {
	return &TaskHandler{
		service: service,
		log:     log.With().Str("handler", "task").Logger(),
	}
}

// Create handles POST /v1/tasks
func (h *TaskHandler) Create(c *gin.Context) {
	identity, ok := middlewares.IdentityFromContext(c)
	if !ok {
		responses.HandleNewError(c, platformerrors.ErrorTypeUnauthorized,
			"Could not validate credentials", "4a8b9c0d-1e2f-4a3b-8c4d-5e6f7a8b9c00")
		return
	}

	var req requests.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation,
			"invalid task payload", "5b9c0d1e-2f3a-4b4c-9d5e-6f7a8b9c0d10")
		return
	}

	created, err := h.service.Create(c.Request.Context(), identity.UserID, task.CreateParams{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		responses.HandleError(c, err, "failed to create task")
		return
	}

	c.JSON(http.StatusCreated, responses.FromDomainTask(created))
}

// List handles GET /v1/tasks
func (h *TaskHandler) List(c *gin.Context) {
	identity, ok := middlewares.IdentityFromContext(c)
	if !ok {
		responses.HandleNewError(c, platformerrors.ErrorTypeUnauthorized,
			"Could not validate credentials", "6c0d1e2f-3a4b-4c5d-8e6f-7a8b9c0d1e20")
		return
	}

	var query requests.ListTasksQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation,
			"invalid list query", "7d1e2f3a-4b5c-4d6e-9f7a-8b9c0d1e2f30")
		return
	}

	tasks, err := h.service.List(c.Request.Context(), identity.UserID, task.Filter{
		Status: task.StatusFilter(query.Status),
		Limit:  query.Limit,
		Offset: query.Offset,
	})
	if err != nil {
		responses.HandleError(c, err, "failed to list tasks")
		return
	}

	c.JSON(http.StatusOK, responses.FromDomainTasks(tasks))
}

// Get handles GET /v1/tasks/:task_id
func (h *TaskHandler) Get(c *gin.Context) {
	identity, ok := middlewares.IdentityFromContext(c)
	if !ok {
		responses.HandleNewError(c, platformerrors.ErrorTypeUnauthorized,
			"Could not validate credentials", "8e2f3a4b-5c6d-4e7f-8a8b-9c0d1e2f3a40")
		return
	}

	id, ok := taskIDParam(c)
	if !ok {
		return
	}

	t, err := h.service.Get(c.Request.Context(), identity.UserID, id)
	if err != nil {
		responses.HandleError(c, err, "failed to get task")
		return
	}

	c.JSON(http.StatusOK, responses.FromDomainTask(t))
}

// Update handles PUT /v1/tasks/:task_id
func (h *TaskHandler) Update(c *gin.Context) {
	identity, ok := middlewares.IdentityFromContext(c)
	if !ok {
		responses.HandleNewError(c, platformerrors.ErrorTypeUnauthorized,
			"Could not validate credentials", "9f3a4b5c-6d7e-4f8a-9b9c-0d1e2f3a4b50")
		return
	}

	id, ok := taskIDParam(c)
	if !ok {
		return
	}

	var req requests.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation,
			"invalid task payload", "0a4b5c6d-7e8f-4a9b-8c0d-1e2f3a4b5c60")
		return
	}

	updated, err := h.service.Update(c.Request.Context(), identity.UserID, id, task.UpdateParams{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	})
	if err != nil {
		responses.HandleError(c, err, "failed to update task")
		return
	}

	c.JSON(http.StatusOK, responses.FromDomainTask(updated))
}

// ToggleComplete handles PATCH /v1/tasks/:task_id/toggle-complete
func (h *TaskHandler) ToggleComplete(c *gin.Context) {
	identity, ok := middlewares.IdentityFromContext(c)
	if !ok {
		responses.HandleNewError(c, platformerrors.ErrorTypeUnauthorized,
			"Could not validate credentials", "1b5c6d7e-8f9a-4b0c-9d1e-2f3a4b5c6d70")
		return
	}

	id, ok := taskIDParam(c)
	if !ok {
		return
	}

	updated, err := h.service.ToggleCompletion(c.Request.Context(), identity.UserID, id)
	if err != nil {
		responses.HandleError(c, err, "failed to toggle task")
		return
	}

	c.JSON(http.StatusOK, responses.FromDomainTask(updated))
}

// Delete handles DELETE /v1/tasks/:task_id
func (h *TaskHandler) Delete(c *gin.Context) {
	identity, ok := middlewares.IdentityFromContext(c)
	if !ok {
		responses.HandleNewError(c, platformerrors.ErrorTypeUnauthorized,
			"Could not validate credentials", "2c6d7e8f-9a0b-4c1d-8e2f-3a4b5c6d7e80")
		return
	}

	id, ok := taskIDParam(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), identity.UserID, id); err != nil {
		responses.HandleError(c, err, "failed to delete task")
		return
	}

	c.Status(http.StatusNoContent)
}

func taskIDParam(c *gin.Context) (uint, bool) {
	raw := c.Param("task_id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation,
			"task id must be a positive integer", "3d7e8f9a-0b1c-4d2e-9f3a-4b5c6d7e8f90")
		return 0, false
	}
	return uint(id), true
}
