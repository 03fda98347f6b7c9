package project

import (
	"errors"
	"net/http"
	"strconv"

	"bauportal/internal/domain"
	"bauportal/internal/middleware"
	"bauportal/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ListProjects handles GET /projects; ?q= filters by name, code, city or client.
func (h *Handler) ListProjects(c *gin.Context) {
	projects, err := h.service.Search(c.Request.Context(), middleware.TenantID(c), c.Query("q"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Bauvorhaben konnten nicht geladen werden")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"projects": projects})
}

// GetProject handles GET /projects/:id
func (h *Handler) GetProject(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	p, err := h.service.GetByID(c.Request.Context(), middleware.TenantID(c), id)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Bauvorhaben konnte nicht geladen werden")
		return
	}
	if p == nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Bauvorhaben nicht gefunden")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"project": p})
}

// CreateProject handles POST /projects
func (h *Handler) CreateProject(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_REQUEST", "Ungültige Anfrage", err.Error())
		return
	}

	p, err := h.service.Create(c.Request.Context(), middleware.TenantID(c), req, c.GetInt64("user_id"))
	if err != nil {
		h.handleError(c, err, "Bauvorhaben konnte nicht angelegt werden")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"project": p})
}

// UpdateProject handles PATCH /projects/:id
func (h *Handler) UpdateProject(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_REQUEST", "Ungültige Anfrage", err.Error())
		return
	}

	p, err := h.service.Update(c.Request.Context(), middleware.TenantID(c), id, req, c.GetInt64("user_id"))
	if err != nil {
		h.handleError(c, err, "Bauvorhaben konnte nicht gespeichert werden")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"project": p})
}

// ChangeStatus handles PATCH /projects/:id/status
func (h *Handler) ChangeStatus(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_REQUEST", "Ungültige Anfrage", err.Error())
		return
	}

	p, err := h.service.ChangeStatus(c.Request.Context(), middleware.TenantID(c), id, domain.ProjectStatus(req.Status), c.GetInt64("user_id"))
	if err != nil {
		h.handleError(c, err, "Statuswechsel fehlgeschlagen")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"project": p})
}

// DeleteProject handles DELETE /projects/:id
func (h *Handler) DeleteProject(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), middleware.TenantID(c), id); err != nil {
		h.handleError(c, err, "Bauvorhaben konnte nicht gelöscht werden")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// GetProgress handles GET /projects/:id/progress
func (h *Handler) GetProgress(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	p, err := h.service.Progress(c.Request.Context(), middleware.TenantID(c), id)
	if err != nil {
		h.handleError(c, err, "Fortschritt konnte nicht berechnet werden")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"progress": p})
}

// GetProgressOverview handles GET /projects/progress
func (h *Handler) GetProgressOverview(c *gin.Context) {
	overview, err := h.service.ProgressOverview(c.Request.Context(), middleware.TenantID(c))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Fortschritt konnte nicht berechnet werden")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"projects": overview})
}

// ListAssignments handles GET /projects/:id/trades
func (h *Handler) ListAssignments(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	assignments, err := h.service.ListAssignments(c.Request.Context(), middleware.TenantID(c), id)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Gewerke konnten nicht geladen werden")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"assignments": assignments})
}

// CreateAssignment handles POST /projects/:id/trades
func (h *Handler) CreateAssignment(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	var req CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_REQUEST", "Ungültige Anfrage", err.Error())
		return
	}

	a, err := h.service.CreateAssignment(c.Request.Context(), middleware.TenantID(c), id, req, c.GetInt64("user_id"))
	if err != nil {
		h.handleError(c, err, "Gewerk konnte nicht zugeordnet werden")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"assignment": a})
}

// UpdateAssignment handles PATCH /trade-assignments/:id
func (h *Handler) UpdateAssignment(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	var req UpdateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_REQUEST", "Ungültige Anfrage", err.Error())
		return
	}

	a, err := h.service.UpdateAssignment(c.Request.Context(), middleware.TenantID(c), id, req, c.GetInt64("user_id"))
	if err != nil {
		h.handleError(c, err, "Gewerk konnte nicht gespeichert werden")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"assignment": a})
}

// DeleteAssignment handles DELETE /trade-assignments/:id
func (h *Handler) DeleteAssignment(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteAssignment(c.Request.Context(), middleware.TenantID(c), id); err != nil {
		h.handleError(c, err, "Gewerk konnte nicht entfernt werden")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Ungültige ID")
		return 0, false
	}
	return id, true
}

func (h *Handler) handleError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Bauvorhaben nicht gefunden")
	case errors.Is(err, ErrAssignmentNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Gewerk-Zuordnung nicht gefunden")
	case errors.Is(err, ErrCodeTaken):
		response.Error(c, http.StatusConflict, "CODE_TAKEN", "Die Projektnummer wird in diesem Mandanten bereits verwendet")
	case errors.Is(err, ErrInvalidTransition):
		response.Error(c, http.StatusUnprocessableEntity, "INVALID_TRANSITION", "Dieser Statuswechsel ist nicht zulässig")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
