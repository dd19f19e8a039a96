package http

import (
	"net/http"
	"strconv"

	"github.com/aussiebroadwan/taskboard/internal/tasks/service"
	"github.com/aussiebroadwan/taskboard/pkg/httpx"
	"github.com/aussiebroadwan/taskboard/pkg/tasksdk"
)

type TaskHandler struct {
	TaskService *service.TaskService
}

// queryInt reads a positive integer parameter. Missing or unparsable values
// yield 0 so the service applies its default.
func queryInt(r *http.Request, name string) int {
	n, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// HandleList handles GET /api/tasks
//
//	@Summary		List own tasks
//	@Description	Returns the caller's tasks, newest first. Limit defaults to 10 and is capped at 100.
//	@Tags			Tasks
//	@Produce		json
//	@Param			page	query		int		false	"Page number, 1-based"	default(1)
//	@Param			limit	query		int		false	"Page size"				default(10)
//	@Param			status	query		string	false	"pending or completed"
//	@Param			search	query		string	false	"Case-insensitive match on title or description"
//	@Success		200		{object}	tasksdk.TaskListResponse
//	@Failure		400		{object}	tasksdk.APIError	"Unknown status"
//	@Failure		401		{object}	tasksdk.APIError
//	@Security		BearerAuth
//	@Router			/api/tasks [get].
func (h *TaskHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	id, ok := identityFrom(r)
	if !ok {
		writeServiceError(w, r, service.ErrMissingToken)
		return
	}

	q := r.URL.Query()
	page, err := h.TaskService.List(r.Context(), id, service.ListQuery{
		Page:   queryInt(r, "page"),
		Limit:  queryInt(r, "limit"),
		Status: q.Get("status"),
		Search: q.Get("search"),
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := tasksdk.TaskListResponse{
		Tasks:      make([]tasksdk.Task, len(page.Tasks)),
		Pagination: toPagination(page.Pagination),
	}
	for i, t := range page.Tasks {
		resp.Tasks[i] = toTask(t)
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleCreate handles POST /api/tasks
//
//	@Summary		Create a task
//	@Description	Creates a task owned by the caller. Status defaults to pending.
//	@Tags			Tasks
//	@Accept			json
//	@Produce		json
//	@Param			request	body		tasksdk.CreateTaskRequest	true	"New task"
//	@Success		201		{object}	tasksdk.TaskResponse
//	@Failure		400		{object}	tasksdk.APIError
//	@Failure		401		{object}	tasksdk.APIError
//	@Security		BearerAuth
//	@Router			/api/tasks [post].
func (h *TaskHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	id, ok := identityFrom(r)
	if !ok {
		writeServiceError(w, r, service.ErrMissingToken)
		return
	}

	var req tasksdk.CreateTaskRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	t, err := h.TaskService.Create(r.Context(), id, service.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, tasksdk.TaskResponse{Task: toTask(t)})
}

// HandleUpdate handles PUT /api/tasks/{id}
//
//	@Summary		Update own task
//	@Description	Applies the supplied fields. Tasks owned by someone else are reported as not found.
//	@Tags			Tasks
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Task ID"
//	@Param			request	body		tasksdk.UpdateTaskRequest	true	"Fields to change"
//	@Success		200		{object}	tasksdk.TaskResponse
//	@Failure		400		{object}	tasksdk.APIError
//	@Failure		401		{object}	tasksdk.APIError
//	@Failure		404		{object}	tasksdk.APIError
//	@Security		BearerAuth
//	@Router			/api/tasks/{id} [put].
func (h *TaskHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := identityFrom(r)
	if !ok {
		writeServiceError(w, r, service.ErrMissingToken)
		return
	}

	var req tasksdk.UpdateTaskRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	t, err := h.TaskService.Update(r.Context(), id, r.PathValue("id"), service.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, tasksdk.TaskResponse{Task: toTask(t)})
}

// HandleDelete handles DELETE /api/tasks/{id}
//
//	@Summary		Delete any task
//	@Description	Admin only. Ownership is not checked.
//	@Tags			Tasks
//	@Produce		json
//	@Param			id	path		string	true	"Task ID"
//	@Success		200	{object}	tasksdk.DeleteTaskResponse
//	@Failure		401	{object}	tasksdk.APIError
//	@Failure		403	{object}	tasksdk.APIError	"Caller is not an admin"
//	@Failure		404	{object}	tasksdk.APIError
//	@Security		BearerAuth
//	@Router			/api/tasks/{id} [delete].
func (h *TaskHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := identityFrom(r)
	if !ok {
		writeServiceError(w, r, service.ErrMissingToken)
		return
	}

	t, err := h.TaskService.Delete(r.Context(), id, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, tasksdk.DeleteTaskResponse{Message: "task deleted", Task: toTask(t)})
}

// HandleSummary handles GET /api/tasks/summary
//
//	@Summary		Task analytics
//	@Description	Totals, completion rate and daily activity for the caller's tasks.
//	@Tags			Tasks
//	@Produce		json
//	@Success		200	{object}	tasksdk.Summary
//	@Failure		401	{object}	tasksdk.APIError
//	@Security		BearerAuth
//	@Router			/api/tasks/summary [get].
func (h *TaskHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	id, ok := identityFrom(r)
	if !ok {
		writeServiceError(w, r, service.ErrMissingToken)
		return
	}

	sum, err := h.TaskService.Summary(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toSummary(sum))
}
