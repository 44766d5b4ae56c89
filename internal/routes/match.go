package routes

import (
	"github.com/gin-gonic/gin"

	"ecobridge/internal/handlers"
	"ecobridge/internal/middlewares"
)

type MatchRoutes struct {
	handler *handlers.MatchHandler
}

func NewMatchRoutes(handler *handlers.MatchHandler) *MatchRoutes {
	return &MatchRoutes{handler: handler}
}

func (r *MatchRoutes) RegisterRoutes(router *gin.RouterGroup) {
	matches := router.Group("/matches")
	matches.Use(middlewares.Authenticate)
	{
		matches.GET("", r.handler.ListMatches)
		matches.PUT("/:id/proposal", r.handler.SubmitProposal)
		matches.PUT("/:id/status", r.handler.UpdateStatus)
	}
}
