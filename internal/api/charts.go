package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pageza/healthlog/backend/internal/service"
	"github.com/pageza/healthlog/backend/internal/validation"
)

// ChartHandler serves /charts
type ChartHandler struct {
	chartService service.IChartService
	now          func() time.Time
}

func NewChartHandler(chartService service.IChartService) *ChartHandler {
	return &ChartHandler{chartService: chartService, now: time.Now}
}

func (h *ChartHandler) RegisterRoutes(router *gin.RouterGroup) {
	charts := router.Group("/charts")
	{
		charts.GET("/weight", h.Weight)
		charts.GET("/blood-pressure", h.BloodPressure)
	}
}

func (h *ChartHandler) Weight(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	period, err := validation.Period(c.Query("period"))
	if err != nil {
		badInput(c, err)
		return
	}

	chart, err := h.chartService.WeightChart(c.Request.Context(), userID, period, h.now())
	if err != nil {
		internalError(c, "build weight chart", err)
		return
	}
	c.JSON(http.StatusOK, chart)
}

func (h *ChartHandler) BloodPressure(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	period, err := validation.Period(c.Query("period"))
	if err != nil {
		badInput(c, err)
		return
	}

	chart, err := h.chartService.BloodPressureChart(c.Request.Context(), userID, period, h.now())
	if err != nil {
		internalError(c, "build blood pressure chart", err)
		return
	}
	c.JSON(http.StatusOK, chart)
}
