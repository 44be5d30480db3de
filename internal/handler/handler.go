package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/Oceanwind82/AI-Mind-OS-sub001/docs"
	"github.com/Oceanwind82/AI-Mind-OS-sub001/internal/domain"
	"github.com/Oceanwind82/AI-Mind-OS-sub001/internal/dto"
	"github.com/Oceanwind82/AI-Mind-OS-sub001/internal/metrics"
	"github.com/Oceanwind82/AI-Mind-OS-sub001/internal/service"
)

type Handler struct {
	eventService service.EventServicer
	router       *gin.Engine
	log          *zap.Logger
}

func NewHandler(eventService service.EventServicer, log *zap.Logger) *Handler {
	h := &Handler{
		eventService: eventService,
		router:       gin.Default(),
		log:          log,
	}

	h.registerRoutes()

	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) registerRoutes() {
	h.router.GET("/health", h.healthCheck)
	h.router.POST("/track", h.trackEvent)
	h.router.POST("/track/bulk", h.trackEventsBulk)
	h.router.GET("/dashboard", h.dashboard)
	h.router.GET("/metrics", gin.WrapH(metrics.Handler()))
	h.router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// requestMeta pulls the optional event metadata out of the request.
func requestMeta(c *gin.Context) domain.RequestMeta {
	return domain.RequestMeta{
		UserID:    c.GetHeader("X-User-ID"),
		UserAgent: c.GetHeader("User-Agent"),
		IP:        c.ClientIP(),
		Country:   c.GetHeader("X-Country"),
		Referrer:  c.GetHeader("Referer"),
	}
}

// healthCheck handles health check requests
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// trackEvent handles POST /track
// @Summary Track a single event
// @Description Record a behavioral event; user identity and request metadata are read from headers
// @Tags events
// @Accept json
// @Produce json
// @Param event body dto.TrackEventRequest true "Event data"
// @Param X-User-ID header string false "Acting user ID"
// @Param X-Country header string false "Resolved request country"
// @Success 200 {object} dto.TrackEventResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /track [post]
func (h *Handler) trackEvent(c *gin.Context) {
	var req dto.TrackEventRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid track request",
			zap.Error(err),
			zap.String("event_name", req.Event))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	eventID, err := h.eventService.Track(&req, requestMeta(c))
	if err != nil {
		h.log.Warn("Event rejected",
			zap.Error(err),
			zap.String("event_name", req.Event),
			zap.String("category", req.Category))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	h.log.Info("Event tracked",
		zap.String("event_id", eventID),
		zap.String("event_name", req.Event),
		zap.String("category", req.Category))

	c.JSON(http.StatusOK, dto.TrackEventResponse{
		Success: true,
		EventID: eventID,
	})
}

// trackEventsBulk handles POST /track/bulk
// @Summary Track multiple events
// @Description Record multiple behavioral events in one request
// @Tags events
// @Accept json
// @Produce json
// @Param events body dto.TrackEventsBulkRequest true "Bulk events data"
// @Success 200 {object} dto.TrackEventsBulkResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /track/bulk [post]
func (h *Handler) trackEventsBulk(c *gin.Context) {
	var bulkRequest dto.TrackEventsBulkRequest

	if err := c.ShouldBindJSON(&bulkRequest); err != nil {
		h.log.Warn("Invalid bulk track request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	eventIDs, errs := h.eventService.TrackBulk(bulkRequest.Events, requestMeta(c))

	h.log.Info("Bulk events tracked",
		zap.Int("accepted", len(eventIDs)),
		zap.Int("rejected", len(errs)),
		zap.Int("total", len(bulkRequest.Events)))

	c.JSON(http.StatusOK, dto.TrackEventsBulkResponse{
		Success:  true,
		Accepted: len(eventIDs),
		Rejected: len(errs),
		EventIDs: eventIDs,
		Errors:   errs,
	})
}

// dashboard handles GET /dashboard
// @Summary Get dashboard reports
// @Description Retrieve one analytics report, or all four combined for overview
// @Tags dashboard
// @Produce json
// @Param type query string false "Report type" Enums(overview, realtime, revenue, ai, learning) default(overview)
// @Success 200 {object} dto.DashboardOverview
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /dashboard [get]
func (h *Handler) dashboard(c *gin.Context) {
	reportType := c.DefaultQuery("type", "overview")

	report, err := h.eventService.Dashboard(reportType)
	if err != nil {
		if errors.Is(err, service.ErrUnknownReportType) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error:   "validation_error",
				Message: err.Error(),
			})
			return
		}
		h.log.Error("Failed to compute dashboard report",
			zap.Error(err),
			zap.String("type", reportType))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, report)
}
