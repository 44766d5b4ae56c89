package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ecobridge/internal/models"
	"ecobridge/internal/responses"
	"ecobridge/internal/services"
	"ecobridge/internal/utils"
)

type MatchHandler struct {
	matchService *services.MatchService
}

func NewMatchHandler(matchService *services.MatchService) *MatchHandler {
	return &MatchHandler{matchService: matchService}
}

// ListMatches handles GET /api/v1/matches, listing the acting consultant's
// matches, optionally filtered with ?status=pending|accepted|rejected|completed.
func (h *MatchHandler) ListMatches(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var pg models.Pagination
	if err := c.ShouldBindQuery(&pg); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid pagination parameters")
		return
	}

	var status *models.MatchStatus
	if raw := c.Query("status"); raw != "" {
		s := models.MatchStatus(raw)
		switch s {
		case models.MatchPending, models.MatchAccepted, models.MatchRejected, models.MatchCompleted:
			status = &s
		default:
			responses.Fail(c, http.StatusBadRequest, nil, "Invalid status filter")
			return
		}
	}

	matches, err := h.matchService.ListConsultantMatches(c.Request.Context(), userID, status, pg)
	if err != nil {
		responses.Error(c, err, "Could not list matches")
		return
	}

	responses.Success(c, http.StatusOK, matches, "Matches retrieved")
}

// SubmitProposal handles PUT /api/v1/matches/:id/proposal
func (h *MatchHandler) SubmitProposal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	matchID, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid match id")
		return
	}

	var req struct {
		Proposal string  `json:"proposal" binding:"required"`
		Price    float64 `json:"price" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	match, err := h.matchService.SubmitProposal(c.Request.Context(), matchID, userID, req.Proposal, req.Price)
	if err != nil {
		responses.Error(c, err, "Could not submit proposal")
		return
	}

	responses.Success(c, http.StatusOK, match, "Proposal submitted")
}

// UpdateStatus handles PUT /api/v1/matches/:id/status
func (h *MatchHandler) UpdateStatus(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	matchID, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid match id")
		return
	}

	var req struct {
		Status models.MatchStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	match, err := h.matchService.UpdateMatchStatus(c.Request.Context(), matchID, userID, req.Status)
	if err != nil {
		responses.Error(c, err, "Could not update match status")
		return
	}

	responses.Success(c, http.StatusOK, match, "Match status updated")
}
