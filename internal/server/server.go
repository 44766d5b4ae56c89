package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/joho/godotenv/autoload"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"ecobridge/internal/database"
	"ecobridge/internal/handlers"
	"ecobridge/internal/repositories"
	"ecobridge/internal/routes"
	"ecobridge/internal/services"
)

type Server struct {
	port int
	db   *pgxpool.Pool
}

func NewServer() *http.Server {
	port, _ := strconv.Atoi(os.Getenv("PORT"))
	if port == 0 {
		port = 8080
	}

	db, err := database.Connect()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	if err := database.RunMigrations(db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", os.Getenv("REDIS_HOST"), os.Getenv("REDIS_PORT")),
	})
	{
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
	}

	s := &Server{
		port: port,
		db:   db,
	}

	// Dependency injection
	userRepo := repositories.NewUserRepository(db)
	consultantRepo := repositories.NewConsultantRepository(db)
	projectRepo := repositories.NewProjectRepository(db)
	matchRepo := repositories.NewMatchRepository(db)
	redisRepo := repositories.NewRedisRepository(rdb)

	authService := services.NewAuthService(userRepo, redisRepo)
	consultantService := services.NewConsultantService(consultantRepo, userRepo)
	projectService := services.NewProjectService(projectRepo, matchRepo, consultantRepo)
	matchService := services.NewMatchService(matchRepo, projectRepo, consultantRepo)

	authHandler := handlers.NewAuthHandler(authService)
	consultantHandler := handlers.NewConsultantHandler(consultantService)
	projectHandler := handlers.NewProjectHandler(projectService, matchService)
	matchHandler := handlers.NewMatchHandler(matchService)

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	routes.RegisterRoutes(router, authHandler, consultantHandler, projectHandler, matchHandler)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.port),
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return server
}
