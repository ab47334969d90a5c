package http

import (
	"github.com/gin-gonic/gin"

	"personal-task-management/internal/middleware"
	"personal-task-management/internal/model"
	"personal-task-management/internal/task"
	pkgErrors "personal-task-management/pkg/errors"
	"personal-task-management/pkg/response"
)

// Create godoc
// @Summary     Create a task
// @Description Creates a task with a fresh id and timestamps.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task payload"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Add(ctx, middleware.ScopeFromContext(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Add: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// List godoc
// @Summary     List tasks
// @Description Returns tasks matching the optional category/priority/completed filters (AND semantics).
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       category  query string false "Filter by category"
// @Param       priority  query string false "Filter by priority"
// @Param       completed query bool   false "Filter by completion"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Filter(ctx, middleware.ScopeFromContext(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Filter: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// ByCategory godoc
// @Summary     List tasks in a category
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       category path string true "Task category"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/tasks/category/{category} [GET]
func (h *handler) ByCategory(c *gin.Context) {
	ctx := c.Request.Context()

	category := model.TaskCategory(c.Param("category"))
	if !category.Valid() {
		response.Error(c, h.mapError(task.ErrInvalidCategory))
		return
	}

	output, err := h.uc.ByCategory(ctx, middleware.ScopeFromContext(c), category)
	if err != nil {
		h.l.Errorf(ctx, "uc.ByCategory: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Stats godoc
// @Summary     Task statistics
// @Description Returns total/completed/pending counts and the completion rate.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Success     200 {object} statsResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/tasks/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	stats, err := h.uc.Stats(ctx, middleware.ScopeFromContext(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.Stats: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newStatsResp(stats))
}

// Update godoc
// @Summary     Update a task
// @Description Partial update: only supplied fields are replaced. A missing id is a silent no-op with found=false.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Task ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} updateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, middleware.ScopeFromContext(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newUpdateResp(output))
}

// Delete godoc
// @Summary     Delete a task
// @Description Permanently removes a task. A missing id is a silent no-op.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, pkgErrors.NewHTTPError(400, "id is required"))
		return
	}

	if err := h.uc.Delete(ctx, middleware.ScopeFromContext(c), id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Toggle godoc
// @Summary     Toggle task completion
// @Description Flips the completed flag and refreshes updated_at. A missing id is a silent no-op with found=false.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} toggleResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/tasks/{id}/toggle [POST]
func (h *handler) Toggle(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, pkgErrors.NewHTTPError(400, "id is required"))
		return
	}

	output, err := h.uc.Toggle(ctx, middleware.ScopeFromContext(c), id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Toggle: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newToggleResp(output))
}

// Generate godoc
// @Summary     Generate candidate tasks
// @Description Produces AI-generated candidates for preview. Candidates are not saved; commit them explicitly. A generation failure yields an empty list with the error message in the payload.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body generateReq true "Generation request"
// @Success     200 {object} generateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/tasks/generate [POST]
func (h *handler) Generate(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.ScopeFromContext(c)

	req, err := h.processGenerateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Generate(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Generate: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newGenerateResp(output, h.uc.GenerationStatus(ctx, sc)))
}

// Commit godoc
// @Summary     Commit generated candidates
// @Description Saves previewed candidates into the collection through the normal add path, re-stamped with fresh ids and timestamps.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body commitReq true "Candidate batch"
// @Success     200 {object} commitResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/tasks/generate/commit [POST]
func (h *handler) Commit(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCommitReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Commit(ctx, middleware.ScopeFromContext(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Commit: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCommitResp(output))
}
