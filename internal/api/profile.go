package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/healthlog/backend/internal/service"
	"github.com/pageza/healthlog/backend/internal/types"
	"github.com/pageza/healthlog/backend/internal/validation"
)

type ProfileHandler struct {
	profileService service.IProfileService
}

func NewProfileHandler(profileService service.IProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup) {
	me := router.Group("/users/me")
	{
		me.GET("", h.GetProfile)
		me.POST("", h.CreateProfile)
		me.PUT("", h.UpdateProfile)
	}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	profile, err := h.profileService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		internalError(c, "get profile", err)
		return
	}
	if profile == nil {
		message(c, http.StatusNotFound, "Profile not found")
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req types.CreateProfileRequest
	if !decode(c, &req) {
		return
	}
	in, err := validation.NewProfile(&req)
	if err != nil {
		badInput(c, err)
		return
	}

	profile, err := h.profileService.CreateProfile(c.Request.Context(), userID, in)
	if err != nil {
		if errors.Is(err, service.ErrProfileExists) {
			message(c, http.StatusConflict, "Profile already exists")
			return
		}
		internalError(c, "create profile", err)
		return
	}

	c.JSON(http.StatusCreated, profile)
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req types.UpdateProfileRequest
	if !decode(c, &req) {
		return
	}
	changes, err := validation.ProfileChanges(&req)
	if err != nil {
		badInput(c, err)
		return
	}

	profile, err := h.profileService.UpdateProfile(c.Request.Context(), userID, changes)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			message(c, http.StatusNotFound, "Profile not found")
			return
		}
		internalError(c, "update profile", err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
