package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pageza/healthlog/backend/internal/middleware"
	"github.com/pageza/healthlog/backend/internal/service"
	"github.com/pageza/healthlog/backend/internal/types"
	"github.com/pageza/healthlog/backend/internal/validation"
)

// ValidationResponse is the 400 body for input that failed validation
type ValidationResponse struct {
	Message string            `json:"message"`
	Errors  *validation.Error `json:"errors"`
}

const (
	msgValidationFailed = "Validation failed"
	msgInvalidRecordID  = "Invalid record ID"
	msgRecordNotFound   = "Record not found"
	msgForbidden        = "Forbidden"
)

// currentUser returns the authenticated user id, answering 401 when there is none
func currentUser(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, middleware.ErrorResponse{Message: "Unauthorized"})
		return uuid.Nil, false
	}
	return userID, true
}

// badInput answers 400 for validation errors and 500 for anything else
func badInput(c *gin.Context, err error) {
	var verr *validation.Error
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, ValidationResponse{Message: msgValidationFailed, Errors: verr})
		return
	}
	internalError(c, "validate request", err)
}

// internalError logs the failure and answers with the generic 500 body
func internalError(c *gin.Context, op string, err error) {
	log.Printf("[api] %s %s: failed to %s: %v", c.Request.Method, c.FullPath(), op, err)
	c.JSON(http.StatusInternalServerError, middleware.InternalError)
}

func message(c *gin.Context, status int, msg string) {
	c.JSON(status, middleware.ErrorResponse{Message: msg})
}

// recordID parses the :id path parameter
func recordID(c *gin.Context) (int64, bool) {
	id, err := validation.RecordID(c.Param("id"))
	if err != nil {
		var verr *validation.Error
		if !errors.As(err, &verr) {
			internalError(c, "parse record id", err)
			return 0, false
		}
		c.JSON(http.StatusBadRequest, ValidationResponse{Message: msgInvalidRecordID, Errors: verr})
		return 0, false
	}
	return id, true
}

// pagination parses the page and pageSize query parameters
func pagination(c *gin.Context) (types.Pagination, bool) {
	p, err := validation.Pagination(c.Query("page"), c.Query("pageSize"))
	if err != nil {
		badInput(c, err)
		return types.Pagination{}, false
	}
	return p, true
}

// decode reads the JSON body into dst
func decode(c *gin.Context, dst interface{}) bool {
	if err := validation.DecodeJSON(c.Request.Body, dst); err != nil {
		badInput(c, err)
		return false
	}
	return true
}

// paginated writes one page of records with its pagination block
func paginated[T any](c *gin.Context, p types.Pagination, page types.Page[T]) {
	data := page.Data
	if data == nil {
		data = []T{}
	}
	p.Total = page.Total
	c.JSON(http.StatusOK, types.PaginatedResponse[T]{Data: data, Pagination: p})
}

// mutated answers a check-then-act outcome. onSuccess writes the success response.
func mutated(c *gin.Context, outcome service.Outcome, err error, op string, onSuccess func()) {
	if err != nil {
		internalError(c, op, err)
		return
	}
	switch outcome {
	case service.OutcomeSuccess:
		onSuccess()
	case service.OutcomeForbidden:
		message(c, http.StatusForbidden, msgForbidden)
	default:
		message(c, http.StatusNotFound, msgRecordNotFound)
	}
}
