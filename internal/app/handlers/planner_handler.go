package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-tripcore/internal/app/models"
	"github.com/FACorreiaa/go-tripcore/internal/app/services"
)

type PlannerHandler struct {
	*BaseHandler
	service services.PlannerService
}

func NewPlannerHandler(service services.PlannerService, log *zap.Logger) *PlannerHandler {
	return &PlannerHandler{
		BaseHandler: NewBaseHandler(log),
		service:     service,
	}
}

// DetectTradeoffs godoc
// @Summary Detect preference tradeoffs
// @Tags planner
// @Accept json
// @Produce json
// @Param request body models.TradeoffsRequest true "Trip preferences"
// @Success 200 {object} models.TradeoffReport
// @Failure 400 {object} map[string]string
// @Router /api/v1/planner/tradeoffs [post]
func (h *PlannerHandler) DetectTradeoffs(c *gin.Context) {
	var req models.TradeoffsRequest
	if !h.BindJSON(c, &req) {
		return
	}
	c.JSON(http.StatusOK, h.service.Tradeoffs(c.Request.Context(), req.Preferences))
}

// ResolveTradeoff godoc
// @Summary Apply a tradeoff resolution
// @Tags planner
// @Accept json
// @Produce json
// @Param request body models.ResolveRequest true "Preferences and chosen option"
// @Success 200 {object} models.TripPreferences
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /api/v1/planner/tradeoffs/resolve [post]
func (h *PlannerHandler) ResolveTradeoff(c *gin.Context) {
	var req models.ResolveRequest
	if !h.BindJSON(c, &req) {
		return
	}
	prefs, err := h.service.Resolve(c.Request.Context(), req.Preferences, req.TradeoffID, req.OptionID, req.CustomText)
	if err != nil {
		h.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, prefs)
}

// DiscoverAreas godoc
// @Summary Rank areas for a destination
// @Tags planner
// @Accept json
// @Produce json
// @Param request body models.DiscoverRequest true "Preferences, evidence and validation options"
// @Success 200 {object} models.DiscoveryReport
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /api/v1/planner/areas [post]
func (h *PlannerHandler) DiscoverAreas(c *gin.Context) {
	var req models.DiscoverRequest
	if !h.BindJSON(c, &req) {
		return
	}
	report, err := h.service.Discover(c.Request.Context(), req.Preferences, req.Evidence, req.Options)
	if err != nil {
		h.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *PlannerHandler) Schedule(c *gin.Context) {
	var req models.ScheduleRequest
	if !h.BindJSON(c, &req) {
		return
	}
	c.JSON(http.StatusOK, h.service.Schedule(c.Request.Context(), req.Preferences))
}

// CheckQuality runs the quality gate. A blocked itinerary is still a 200; the
// verdict is in the body.
func (h *PlannerHandler) CheckQuality(c *gin.Context) {
	var req models.QualityRequest
	if !h.BindJSON(c, &req) {
		return
	}
	c.JSON(http.StatusOK, h.service.Check(c.Request.Context(), req.Itinerary, req.Preferences))
}
