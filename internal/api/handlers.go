// Package api exposes HTTP handlers for the warmup curriculum service.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"example.com/warmup/internal/auth"
	"example.com/warmup/internal/curriculum"
	"example.com/warmup/internal/domain"
)

// Handler coordinates HTTP requests with the domain service.
type Handler struct {
	service *domain.Service
	devices domain.DeviceDirectory
}

// NewHandler builds a Handler.
func NewHandler(service *domain.Service, devices domain.DeviceDirectory) *Handler {
	return &Handler{service: service, devices: devices}
}

// RegisterRoutes wires endpoints to the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/v1/daily-tasks", h.tasks)
	mux.HandleFunc("/v1/daily-tasks/", h.taskSubtree)
	mux.HandleFunc("/healthz", healthz)
}

// healthz reports a simple OK status for container health checks.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) tasks(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.createTask(w, r)
	case http.MethodGet:
		h.listTasks(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
	}
}

// taskSubtree dispatches everything under /v1/daily-tasks/: the static
// template and progress endpoints, device-scoped collections, and the
// id-addressed task routes.
func (h *Handler) taskSubtree(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/v1/daily-tasks/")
	if rest == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "missing task id")
		return
	}

	switch {
	case rest == "templates":
		h.templates(w, r)
	case rest == "progress":
		h.progress(w, r)
	case strings.HasPrefix(rest, "initialize/"):
		h.initialize(w, r, strings.TrimPrefix(rest, "initialize/"))
	case strings.HasPrefix(rest, "device/"):
		h.deviceSubtree(w, r, strings.TrimPrefix(rest, "device/"))
	default:
		h.taskByID(w, r, rest)
	}
}

func (h *Handler) deviceSubtree(w http.ResponseWriter, r *http.Request, rest string) {
	parts := strings.Split(rest, "/")
	switch {
	case len(parts) == 3 && parts[1] == "day":
		h.listTasksForDay(w, r, parts[0], parts[2])
	case len(parts) == 2 && parts[1] == "clear":
		h.clearDeviceTasks(w, r, parts[0])
	default:
		writeError(w, http.StatusNotFound, "not_found", "unknown route")
	}
}

func (h *Handler) taskByID(w http.ResponseWriter, r *http.Request, rest string) {
	parts := strings.Split(rest, "/")
	switch {
	case len(parts) == 1:
		switch r.Method {
		case http.MethodGet:
			h.getTask(w, r, parts[0])
		case http.MethodPut:
			h.updateTask(w, r, parts[0])
		case http.MethodDelete:
			h.deleteTask(w, r, parts[0])
		default:
			writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		}
	case len(parts) == 2 && parts[1] == "complete":
		if r.Method != http.MethodPut {
			writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
			return
		}
		h.completeTask(w, r, parts[0])
	default:
		writeError(w, http.StatusNotFound, "not_found", "unknown route")
	}
}

func (h *Handler) initialize(w http.ResponseWriter, r *http.Request, deviceID string) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}
	if !h.requireScope(w, r, auth.ScopeWarmupWrite) {
		return
	}
	if deviceID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "missing device id")
		return
	}

	if !h.ensureDeviceExists(w, r, deviceID) {
		return
	}

	count, err := h.service.InitializeCurriculum(r.Context(), deviceID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, InitializeResponse{
		Success:       true,
		Message:       "21-day curriculum initialized",
		TemplateCount: count,
	})
}

func (h *Handler) createTask(w http.ResponseWriter, r *http.Request) {
	if !h.requireScope(w, r, auth.ScopeWarmupWrite) {
		return
	}

	var req CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	if !h.ensureDeviceExists(w, r, req.DeviceID) {
		return
	}

	task, err := h.service.CreateTask(r.Context(), domain.CreateTaskInput{
		DeviceID:    req.DeviceID,
		DayNumber:   req.DayNumber,
		TaskType:    req.TaskType,
		Description: req.TaskDescription,
		Metadata:    req.Metadata,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTaskView(*task))
}

func (h *Handler) listTasks(w http.ResponseWriter, r *http.Request) {
	if !h.requireReadScope(w, r) {
		return
	}

	deviceID := r.URL.Query().Get("device_id")
	if strings.TrimSpace(deviceID) == "" {
		writeError(w, http.StatusBadRequest, "validation_failed", "missing device_id parameter")
		return
	}

	var filter domain.TaskFilter
	if raw := r.URL.Query().Get("day_number"); raw != "" {
		day, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "validation_failed", "day_number must be an integer")
			return
		}
		filter.DayNumber = &day
	}
	if raw := r.URL.Query().Get("status"); raw != "" {
		status := domain.TaskStatus(raw)
		filter.Status = &status
	}
	if raw := r.URL.Query().Get("task_type"); raw != "" {
		filter.TaskType = &raw
	}

	tasks, err := h.service.ListTasks(r.Context(), deviceID, filter)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ListTasksResponse{Items: toTaskViews(tasks), Count: len(tasks)})
}

func (h *Handler) listTasksForDay(w http.ResponseWriter, r *http.Request, deviceID, rawDay string) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}
	if !h.requireReadScope(w, r) {
		return
	}

	day, err := strconv.Atoi(rawDay)
	if err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", "day number must be an integer")
		return
	}

	tasks, err := h.service.ListTasksForDay(r.Context(), deviceID, day)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, DayTasksResponse{Items: toTaskViews(tasks), Day: day, Count: len(tasks)})
}

func (h *Handler) getTask(w http.ResponseWriter, r *http.Request, taskID string) {
	if !h.requireReadScope(w, r) {
		return
	}

	task, err := h.service.GetTask(r.Context(), taskID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toTaskView(*task))
}

func (h *Handler) updateTask(w http.ResponseWriter, r *http.Request, taskID string) {
	if !h.requireScope(w, r, auth.ScopeWarmupWrite) {
		return
	}

	var req UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
		return
	}

	input := domain.UpdateTaskInput{Notes: req.Notes, Metadata: req.Metadata}
	if req.Status != nil {
		status := domain.TaskStatus(*req.Status)
		input.Status = &status
	}

	task, err := h.service.UpdateTask(r.Context(), taskID, input)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toTaskView(*task))
}

func (h *Handler) completeTask(w http.ResponseWriter, r *http.Request, taskID string) {
	if !h.requireScope(w, r, auth.ScopeWarmupWrite) {
		return
	}

	var req CompleteTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
		return
	}

	task, err := h.service.CompleteTask(r.Context(), taskID, req.Notes)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toTaskView(*task))
}

func (h *Handler) deleteTask(w http.ResponseWriter, r *http.Request, taskID string) {
	if !h.requireScope(w, r, auth.ScopeWarmupWrite) {
		return
	}

	deleted, err := h.service.DeleteTask(r.Context(), taskID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, DeletedTaskResponse{
		TaskID:   deleted.ID,
		TaskType: deleted.TaskType,
		Status:   string(deleted.Status),
	})
}

func (h *Handler) clearDeviceTasks(w http.ResponseWriter, r *http.Request, deviceID string) {
	if r.Method != http.MethodDelete {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}
	if !h.requireScope(w, r, auth.ScopeWarmupWrite) {
		return
	}

	count, err := h.service.ClearDeviceTasks(r.Context(), deviceID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ClearTasksResponse{
		Message:      fmt.Sprintf("%d tasks removed", count),
		DeletedCount: count,
	})
}

func (h *Handler) progress(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}
	if !h.requireReadScope(w, r) {
		return
	}

	deviceID := r.URL.Query().Get("device_id")
	if strings.TrimSpace(deviceID) == "" {
		writeError(w, http.StatusBadRequest, "validation_failed", "missing device_id parameter")
		return
	}

	progress, err := h.service.GetProgress(r.Context(), deviceID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	daily := make([]DayProgressView, 0, len(progress.DailyProgress))
	for _, day := range progress.DailyProgress {
		daily = append(daily, DayProgressView{
			DayNumber:            day.DayNumber,
			TotalTasks:           day.TotalTasks,
			CompletedTasks:       day.CompletedTasks,
			PendingTasks:         day.PendingTasks,
			CompletionPercentage: day.CompletionPercentage,
		})
	}

	writeJSON(w, http.StatusOK, ProgressResponse{
		DailyProgress: daily,
		OverallStats: OverallStatsView{
			TotalTasks:        progress.OverallStats.TotalTasks,
			CompletedTasks:    progress.OverallStats.CompletedTasks,
			PendingTasks:      progress.OverallStats.PendingTasks,
			OverallPercentage: progress.OverallStats.OverallPercentage,
		},
	})
}

func (h *Handler) templates(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}
	if !h.requireReadScope(w, r) {
		return
	}

	templates := curriculum.DefaultTasks()
	writeJSON(w, http.StatusOK, TemplatesResponse{
		Templates: templates,
		TotalDays: len(templates),
	})
}

// ensureDeviceExists answers false after writing a 404 when the device is not
// enrolled. Device identity is the fleet service's concern; the curriculum
// engine itself never checks it.
func (h *Handler) ensureDeviceExists(w http.ResponseWriter, r *http.Request, deviceID string) bool {
	exists, err := h.devices.DeviceExists(r.Context(), deviceID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return false
	}
	if !exists {
		writeError(w, http.StatusNotFound, "not_found", "device not found")
		return false
	}
	return true
}

func (h *Handler) requireScope(w http.ResponseWriter, r *http.Request, scope string) bool {
	claims, ok := auth.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "missing bearer token")
		return false
	}
	if !claims.HasScope(scope) {
		writeError(w, http.StatusForbidden, "forbidden", "scope "+scope+" required")
		return false
	}
	return true
}

func (h *Handler) requireReadScope(w http.ResponseWriter, r *http.Request) bool {
	claims, ok := auth.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "missing bearer token")
		return false
	}
	if !claims.HasScope(auth.ScopeWarmupRead) && !claims.HasScope(auth.ScopeWarmupWrite) {
		writeError(w, http.StatusForbidden, "forbidden", "scope "+auth.ScopeWarmupRead+" required")
		return false
	}
	return true
}

func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrTaskNotFound):
		writeError(w, http.StatusNotFound, "not_found", "daily task not found")
	case errors.Is(err, domain.ErrDeviceNotFound):
		writeError(w, http.StatusNotFound, "not_found", "device not found")
	case errors.Is(err, domain.ErrDayOutOfRange),
		errors.Is(err, domain.ErrNoFieldsToUpdate),
		errors.Is(err, domain.ErrInvalidStatus):
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
	case errors.Is(err, domain.ErrDuplicateTask):
		writeError(w, http.StatusBadRequest, "duplicate_task", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
	}
}
