package v1

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/globalmatt/wavetraffic/internal/config"
	"github.com/globalmatt/wavetraffic/internal/service"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	sessionService  service.SessionService
	incidentService service.IncidentService
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(sessionService service.SessionService, incidentService service.IncidentService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		sessionService:  sessionService,
		incidentService: incidentService,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

// handleServiceError переводит сигнальные ошибки сервисов в HTTP-статусы
func (h *Handler) handleServiceError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		log.WithError(err).Warn("Session not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
	case errors.Is(err, service.ErrIncidentNotFound):
		log.WithError(err).Warn("Incident not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "incident not found"})
	case errors.Is(err, service.ErrInvalidRegion):
		log.WithError(err).Warn("Invalid bounding region")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bounding region"})
	case errors.Is(err, service.ErrStreamClosed):
		log.WithError(err).Warn("Directive stream closed")
		c.JSON(http.StatusGone, gin.H{"error": "directive stream closed"})
	default:
		log.WithError(err).Error("Service call failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// @Summary Create a new map session
// @Description Create a new session and receive its bootstrap payload: markers, fit bounds and map defaults.
// @Tags Sessions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 201 {object} SessionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /sessions [post]
func (h *Handler) createSession(c *gin.Context) {
	log := h.logger.WithField("method", "createSession")

	bootstrap, err := h.sessionService.CreateSession(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToSessionResponse(bootstrap))
}

// @Summary Close a map session
// @Description Close the session and its directive stream.
// @Tags Sessions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Session not found"
// @Router /sessions/{id} [delete]
func (h *Handler) closeSession(c *gin.Context) {
	sessionID := c.Param("id")
	log := h.logger.WithField("method", "closeSession").WithField("session_id", sessionID)

	if err := h.sessionService.CloseSession(c.Request.Context(), sessionID); err != nil {
		h.handleServiceError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Stream render directives
// @Description Subscribe to the session's render directives over Server-Sent Events.
// @Tags Sessions
// @Produce text/event-stream
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Success 200 {string} string "SSE stream of directive events"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Session not found"
// @Router /sessions/{id}/stream [get]
func (h *Handler) streamDirectives(c *gin.Context) {
	sessionID := c.Param("id")
	log := h.logger.WithField("method", "streamDirectives").WithField("session_id", sessionID)

	directives, err := h.sessionService.Subscribe(c.Request.Context(), sessionID)
	if err != nil {
		h.handleServiceError(c, log, err)
		return
	}

	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	log.Info("Directive stream opened")

	heartbeat := time.NewTicker(h.cfg.StreamHeartbeat)
	defer heartbeat.Stop()

	c.Stream(func(w io.Writer) bool {
		select {
		case directive, ok := <-directives:
			if !ok {
				return false
			}
			c.SSEvent("directive", directive)
			return true
		case <-heartbeat.C:
			c.SSEvent("ping", time.Now().Unix())
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
	log.Info("Directive stream closed")
}

// @Summary Get the session view snapshot
// @Description Get the current view state of the session for client recovery.
// @Tags Sessions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Success 200 {object} ViewResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Session not found"
// @Router /sessions/{id}/view [get]
func (h *Handler) getView(c *gin.Context) {
	sessionID := c.Param("id")
	log := h.logger.WithField("method", "getView").WithField("session_id", sessionID)

	snapshot, err := h.sessionService.Snapshot(c.Request.Context(), sessionID)
	if err != nil {
		h.handleServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToViewResponse(snapshot))
}

// @Summary Report a settled viewport
// @Description Report that the map stopped moving; the visible incident set is recomputed.
// @Tags Events
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Param viewport body ViewportSettledRequest true "Settled viewport"
// @Success 202 "Accepted"
// @Failure 400 {object} map[string]string "Invalid request body or bounding region"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Session not found"
// @Router /sessions/{id}/events/viewport-settled [post]
func (h *Handler) viewportSettled(c *gin.Context) {
	sessionID := c.Param("id")
	log := h.logger.WithField("method", "viewportSettled").WithField("session_id", sessionID)

	var input ViewportSettledRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.sessionService.ViewportSettled(c.Request.Context(), sessionID, DTOToRegionModel(input), input.Zoom); err != nil {
		h.handleServiceError(c, log, err)
		return
	}
	c.Status(http.StatusAccepted)
}

// @Summary Report a marker click
// @Description Select the incident behind the clicked map marker.
// @Tags Events
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Param click body IncidentClickRequest true "Clicked incident"
// @Success 202 "Accepted"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Session or incident not found"
// @Router /sessions/{id}/events/marker-click [post]
func (h *Handler) markerClicked(c *gin.Context) {
	sessionID := c.Param("id")
	log := h.logger.WithField("method", "markerClicked").WithField("session_id", sessionID)

	var input IncidentClickRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.sessionService.MarkerClicked(c.Request.Context(), sessionID, input.IncidentID); err != nil {
		h.handleServiceError(c, log, err)
		return
	}
	c.Status(http.StatusAccepted)
}

// @Summary Report a list item click
// @Description Select the incident behind the clicked list row; the map recenters and zooms in.
// @Tags Events
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Param click body IncidentClickRequest true "Clicked incident"
// @Success 202 "Accepted"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Session or incident not found"
// @Router /sessions/{id}/events/list-click [post]
func (h *Handler) listItemClicked(c *gin.Context) {
	sessionID := c.Param("id")
	log := h.logger.WithField("method", "listItemClicked").WithField("session_id", sessionID)

	var input IncidentClickRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.sessionService.ListItemClicked(c.Request.Context(), sessionID, input.IncidentID); err != nil {
		h.handleServiceError(c, log, err)
		return
	}
	c.Status(http.StatusAccepted)
}

// @Summary Dismiss the selection
// @Description Clear the current selection; without an active selection nothing happens.
// @Tags Events
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Success 202 "Accepted"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Session not found"
// @Router /sessions/{id}/events/dismiss [post]
func (h *Handler) dismissSelection(c *gin.Context) {
	sessionID := c.Param("id")
	log := h.logger.WithField("method", "dismissSelection").WithField("session_id", sessionID)

	if err := h.sessionService.DismissSelection(c.Request.Context(), sessionID); err != nil {
		h.handleServiceError(c, log, err)
		return
	}
	c.Status(http.StatusAccepted)
}

// @Summary Toggle the list drawer
// @Description Toggle the mobile list drawer; the selection is not affected.
// @Tags Events
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Success 200 {object} DrawerStateResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Session not found"
// @Router /sessions/{id}/events/drawer-toggle [post]
func (h *Handler) toggleDrawer(c *gin.Context) {
	sessionID := c.Param("id")
	log := h.logger.WithField("method", "toggleDrawer").WithField("session_id", sessionID)

	open, err := h.sessionService.ToggleDrawer(c.Request.Context(), sessionID)
	if err != nil {
		h.handleServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, DrawerStateResponse{DrawerOpen: open})
}

// @Summary Report row visibility
// @Description Report whether the checked list row is fully visible; stale reports are discarded.
// @Tags Events
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Param visibility body RowVisibilityRequest true "Row visibility report"
// @Success 202 "Accepted"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Session not found"
// @Router /sessions/{id}/events/row-visibility [post]
func (h *Handler) rowVisibility(c *gin.Context) {
	sessionID := c.Param("id")
	log := h.logger.WithField("method", "rowVisibility").WithField("session_id", sessionID)

	var input RowVisibilityRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.sessionService.ReportRowVisibility(c.Request.Context(), sessionID, input.IncidentID, input.Seq, input.FullyVisible); err != nil {
		h.handleServiceError(c, log, err)
		return
	}
	c.Status(http.StatusAccepted)
}

// @Summary Get a list of incidents
// @Description Get all incidents in dataset order.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} IncidentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")

	incidents, err := h.incidentService.ListIncidents(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}

// @Summary Get incident by ID
// @Description Get a single incident by its ID.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 200 {object} IncidentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "getIncident").WithField("incident_id", id)

	incident, err := h.incidentService.GetIncident(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Get service statistics
// @Description Get active session count and dataset counters.
// @Tags Admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	stats, err := h.incidentService.GetStats(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get stats from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelToStatsResponse(stats))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
