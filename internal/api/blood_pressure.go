package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/healthlog/backend/internal/service"
	"github.com/pageza/healthlog/backend/internal/types"
	"github.com/pageza/healthlog/backend/internal/validation"
)

// BloodPressureHandler serves /blood-pressure
type BloodPressureHandler struct {
	bpService service.IBloodPressureService
}

func NewBloodPressureHandler(bpService service.IBloodPressureService) *BloodPressureHandler {
	return &BloodPressureHandler{bpService: bpService}
}

func (h *BloodPressureHandler) RegisterRoutes(router *gin.RouterGroup) {
	bp := router.Group("/blood-pressure")
	{
		bp.GET("", h.List)
		bp.POST("", h.Create)
		bp.PUT("/:id", h.Update)
		bp.DELETE("/:id", h.Delete)
	}
}

func (h *BloodPressureHandler) List(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	p, ok := pagination(c)
	if !ok {
		return
	}

	page, err := h.bpService.ListBloodPressureRecords(c.Request.Context(), userID, p)
	if err != nil {
		internalError(c, "list blood pressure records", err)
		return
	}
	paginated(c, p, page)
}

func (h *BloodPressureHandler) Create(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	in, ok := bloodPressureInput(c)
	if !ok {
		return
	}

	rec, err := h.bpService.CreateBloodPressureRecord(c.Request.Context(), userID, in)
	if err != nil {
		internalError(c, "create blood pressure record", err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

func (h *BloodPressureHandler) Update(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := recordID(c)
	if !ok {
		return
	}
	in, ok := bloodPressureInput(c)
	if !ok {
		return
	}

	rec, outcome, err := h.bpService.UpdateBloodPressureRecord(c.Request.Context(), userID, id, in)
	mutated(c, outcome, err, "update blood pressure record", func() {
		c.JSON(http.StatusOK, rec)
	})
}

func (h *BloodPressureHandler) Delete(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := recordID(c)
	if !ok {
		return
	}

	outcome, err := h.bpService.DeleteBloodPressureRecord(c.Request.Context(), userID, id)
	mutated(c, outcome, err, "delete blood pressure record", func() {
		c.Status(http.StatusNoContent)
	})
}

func bloodPressureInput(c *gin.Context) (types.BloodPressureInput, bool) {
	var req types.BloodPressureRecordRequest
	if !decode(c, &req) {
		return types.BloodPressureInput{}, false
	}
	in, err := validation.BloodPressure(&req)
	if err != nil {
		badInput(c, err)
		return types.BloodPressureInput{}, false
	}
	return in, true
}
