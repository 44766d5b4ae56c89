package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ecobridge/internal/models"
	"ecobridge/internal/responses"
	"ecobridge/internal/services"
	"ecobridge/internal/utils"
)

type ConsultantHandler struct {
	consultantService *services.ConsultantService
}

func NewConsultantHandler(consultantService *services.ConsultantService) *ConsultantHandler {
	return &ConsultantHandler{consultantService: consultantService}
}

// UpsertProfile handles PUT /api/v1/consultants/me
func (h *ConsultantHandler) UpsertProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req services.UpsertProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	profile, err := h.consultantService.UpsertProfile(c.Request.Context(), userID, req)
	if err != nil {
		responses.Error(c, err, "Could not save consultant profile")
		return
	}

	responses.Success(c, http.StatusOK, profile, "Profile saved")
}

// GetOwnProfile handles GET /api/v1/consultants/me
func (h *ConsultantHandler) GetOwnProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	profile, err := h.consultantService.GetOwnProfile(c.Request.Context(), userID)
	if err != nil {
		responses.Error(c, err, "Could not load consultant profile")
		return
	}

	responses.Success(c, http.StatusOK, profile, "Profile retrieved")
}

// GetProfile handles GET /api/v1/consultants/:id
func (h *ConsultantHandler) GetProfile(c *gin.Context) {
	profileID, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid consultant id")
		return
	}

	profile, err := h.consultantService.GetProfile(c.Request.Context(), profileID)
	if err != nil {
		responses.Error(c, err, "Could not load consultant profile")
		return
	}

	responses.Success(c, http.StatusOK, profile, "Profile retrieved")
}

// ListConsultants handles GET /api/v1/consultants
func (h *ConsultantHandler) ListConsultants(c *gin.Context) {
	var pg models.Pagination
	if err := c.ShouldBindQuery(&pg); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid pagination parameters")
		return
	}

	profiles, err := h.consultantService.ListConsultants(c.Request.Context(), pg)
	if err != nil {
		responses.Error(c, err, "Could not list consultants")
		return
	}

	responses.Success(c, http.StatusOK, profiles, "Consultants retrieved")
}
