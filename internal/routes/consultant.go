package routes

import (
	"github.com/gin-gonic/gin"

	"ecobridge/internal/handlers"
	"ecobridge/internal/middlewares"
)

type ConsultantRoutes struct {
	handler *handlers.ConsultantHandler
}

func NewConsultantRoutes(handler *handlers.ConsultantHandler) *ConsultantRoutes {
	return &ConsultantRoutes{handler: handler}
}

func (r *ConsultantRoutes) RegisterRoutes(router *gin.RouterGroup) {
	consultants := router.Group("/consultants")
	consultants.Use(middlewares.Authenticate)
	{
		consultants.GET("/me", r.handler.GetOwnProfile)
		consultants.PUT("/me", r.handler.UpsertProfile)
		consultants.GET("", r.handler.ListConsultants)
		consultants.GET("/:id", r.handler.GetProfile)
	}
}
