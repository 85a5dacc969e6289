package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/healthlog/backend/internal/service"
	"github.com/pageza/healthlog/backend/internal/types"
	"github.com/pageza/healthlog/backend/internal/validation"
)

// WeightHandler serves /weight
type WeightHandler struct {
	weightService service.IWeightService
}

func NewWeightHandler(weightService service.IWeightService) *WeightHandler {
	return &WeightHandler{weightService: weightService}
}

func (h *WeightHandler) RegisterRoutes(router *gin.RouterGroup) {
	weight := router.Group("/weight")
	{
		weight.GET("", h.List)
		weight.POST("", h.Create)
		weight.PUT("/:id", h.Update)
		weight.DELETE("/:id", h.Delete)
	}
}

func (h *WeightHandler) List(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	p, ok := pagination(c)
	if !ok {
		return
	}

	page, err := h.weightService.ListWeightRecords(c.Request.Context(), userID, p)
	if err != nil {
		internalError(c, "list weight records", err)
		return
	}
	paginated(c, p, page)
}

func (h *WeightHandler) Create(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	in, ok := weightInput(c)
	if !ok {
		return
	}

	rec, err := h.weightService.CreateWeightRecord(c.Request.Context(), userID, in)
	if err != nil {
		internalError(c, "create weight record", err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

func (h *WeightHandler) Update(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := recordID(c)
	if !ok {
		return
	}
	in, ok := weightInput(c)
	if !ok {
		return
	}

	rec, outcome, err := h.weightService.UpdateWeightRecord(c.Request.Context(), userID, id, in)
	mutated(c, outcome, err, "update weight record", func() {
		c.JSON(http.StatusOK, rec)
	})
}

func (h *WeightHandler) Delete(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := recordID(c)
	if !ok {
		return
	}

	outcome, err := h.weightService.DeleteWeightRecord(c.Request.Context(), userID, id)
	mutated(c, outcome, err, "delete weight record", func() {
		c.Status(http.StatusNoContent)
	})
}

func weightInput(c *gin.Context) (types.WeightInput, bool) {
	var req types.WeightRecordRequest
	if !decode(c, &req) {
		return types.WeightInput{}, false
	}
	in, err := validation.Weight(&req)
	if err != nil {
		badInput(c, err)
		return types.WeightInput{}, false
	}
	return in, true
}
