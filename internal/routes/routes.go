package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ecobridge/internal/handlers"
)

func RegisterRoutes(router *gin.Engine, authHandler *handlers.AuthHandler, consultantHandler *handlers.ConsultantHandler, projectHandler *handlers.ProjectHandler, matchHandler *handlers.MatchHandler) {
	api := router.Group("/api/v1")

	NewAuthRoutes(authHandler).RegisterRoutes(api)
	NewConsultantRoutes(consultantHandler).RegisterRoutes(api)
	NewProjectRoutes(projectHandler).RegisterRoutes(api)
	NewMatchRoutes(matchHandler).RegisterRoutes(api)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
}
