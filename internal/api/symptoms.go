package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/healthlog/backend/internal/service"
	"github.com/pageza/healthlog/backend/internal/types"
	"github.com/pageza/healthlog/backend/internal/validation"
)

// SymptomHandler serves /symptoms
type SymptomHandler struct {
	symptomService service.ISymptomService
}

func NewSymptomHandler(symptomService service.ISymptomService) *SymptomHandler {
	return &SymptomHandler{symptomService: symptomService}
}

func (h *SymptomHandler) RegisterRoutes(router *gin.RouterGroup) {
	symptoms := router.Group("/symptoms")
	{
		symptoms.GET("", h.List)
		symptoms.POST("", h.Create)
		symptoms.PUT("/:id", h.Update)
		symptoms.DELETE("/:id", h.Delete)
	}
}

func (h *SymptomHandler) List(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	p, ok := pagination(c)
	if !ok {
		return
	}

	page, err := h.symptomService.ListSymptomRecords(c.Request.Context(), userID, p)
	if err != nil {
		internalError(c, "list symptom records", err)
		return
	}
	paginated(c, p, page)
}

func (h *SymptomHandler) Create(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	in, ok := symptomInput(c)
	if !ok {
		return
	}

	rec, err := h.symptomService.CreateSymptomRecord(c.Request.Context(), userID, in)
	if err != nil {
		internalError(c, "create symptom record", err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

func (h *SymptomHandler) Update(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := recordID(c)
	if !ok {
		return
	}
	in, ok := symptomInput(c)
	if !ok {
		return
	}

	rec, outcome, err := h.symptomService.UpdateSymptomRecord(c.Request.Context(), userID, id, in)
	mutated(c, outcome, err, "update symptom record", func() {
		c.JSON(http.StatusOK, rec)
	})
}

func (h *SymptomHandler) Delete(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := recordID(c)
	if !ok {
		return
	}

	outcome, err := h.symptomService.DeleteSymptomRecord(c.Request.Context(), userID, id)
	mutated(c, outcome, err, "delete symptom record", func() {
		c.Status(http.StatusNoContent)
	})
}

func symptomInput(c *gin.Context) (types.SymptomInput, bool) {
	var req types.SymptomRecordRequest
	if !decode(c, &req) {
		return types.SymptomInput{}, false
	}
	in, err := validation.Symptom(&req)
	if err != nil {
		badInput(c, err)
		return types.SymptomInput{}, false
	}
	return in, true
}
