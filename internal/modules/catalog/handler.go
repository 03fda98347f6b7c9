package catalog

import (
	"errors"
	"net/http"
	"strconv"

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

// --- trades ---

func (h *Handler) ListTrades(c *gin.Context) {
	trades, err := h.service.SearchTrades(c.Request.Context(), c.Query("q"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Gewerke-Katalog konnte nicht geladen werden")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"trades": trades})
}

func (h *Handler) GetTrade(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	t, err := h.service.GetTrade(c.Request.Context(), id)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Gewerk konnte nicht geladen werden")
		return
	}
	if t == nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Gewerk nicht gefunden")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"trade": t})
}

func (h *Handler) CreateTrade(c *gin.Context) {
	var req CreateTradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_REQUEST", "Ungültige Anfrage", err.Error())
		return
	}
	t, err := h.service.CreateTrade(c.Request.Context(), req, c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Gewerk konnte nicht angelegt werden")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"trade": t})
}

func (h *Handler) UpdateTrade(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req UpdateTradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_REQUEST", "Ungültige Anfrage", err.Error())
		return
	}
	t, err := h.service.UpdateTrade(c.Request.Context(), id, req, c.GetInt64("user_id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"trade": t})
}

func (h *Handler) DeleteTrade(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteTrade(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// --- phases ---

func (h *Handler) ListPhases(c *gin.Context) {
	phases, err := h.service.ListPhases(c.Request.Context(), middleware.TenantID(c))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Phasen konnten nicht geladen werden")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"phases": phases})
}

func (h *Handler) CreatePhase(c *gin.Context) {
	var req CreatePhaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_REQUEST", "Ungültige Anfrage", err.Error())
		return
	}
	p, err := h.service.CreatePhase(c.Request.Context(), middleware.TenantID(c), req, c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Phase konnte nicht angelegt werden")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"phase": p})
}

func (h *Handler) UpdatePhase(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req UpdatePhaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_REQUEST", "Ungültige Anfrage", err.Error())
		return
	}
	p, err := h.service.UpdatePhase(c.Request.Context(), middleware.TenantID(c), id, req, c.GetInt64("user_id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"phase": p})
}

func (h *Handler) DeletePhase(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	if err := h.service.DeletePhase(c.Request.Context(), middleware.TenantID(c), id); err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// --- project types ---

func (h *Handler) ListProjectTypes(c *gin.Context) {
	types, err := h.service.SearchProjectTypes(c.Request.Context(), middleware.TenantID(c), c.Query("q"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Bauvorhabenarten konnten nicht geladen werden")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"project_types": types})
}

func (h *Handler) GetProjectType(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	t, err := h.service.GetProjectType(c.Request.Context(), middleware.TenantID(c), id)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Bauvorhabenart konnte nicht geladen werden")
		return
	}
	if t == nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Bauvorhabenart nicht gefunden")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"project_type": t})
}

func (h *Handler) CreateProjectType(c *gin.Context) {
	var req CreateProjectTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_REQUEST", "Ungültige Anfrage", err.Error())
		return
	}
	t, err := h.service.CreateProjectType(c.Request.Context(), middleware.TenantID(c), req, c.GetInt64("user_id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"project_type": t})
}

func (h *Handler) UpdateProjectType(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req UpdateProjectTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_REQUEST", "Ungültige Anfrage", err.Error())
		return
	}
	t, err := h.service.UpdateProjectType(c.Request.Context(), middleware.TenantID(c), id, req, c.GetInt64("user_id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"project_type": t})
}

func (h *Handler) DeleteProjectType(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteProjectType(c.Request.Context(), middleware.TenantID(c), id); err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Ungültige ID")
		return 0, false
	}
	return id, true
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrTradeNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Gewerk nicht gefunden")
	case errors.Is(err, ErrPhaseNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Phase nicht gefunden")
	case errors.Is(err, ErrProjectTypeNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Bauvorhabenart nicht gefunden")
	case errors.Is(err, ErrUnknownPhase):
		response.Error(c, http.StatusUnprocessableEntity, "UNKNOWN_PHASE", "Mindestens eine Phase gehört nicht zu diesem Mandanten")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Speichern fehlgeschlagen")
	}
}
