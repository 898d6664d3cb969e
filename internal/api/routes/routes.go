package routes

import (
	"organisation-dashboard-backend/internal/api/handlers"
	"organisation-dashboard-backend/internal/api/middleware"
	"organisation-dashboard-backend/internal/cache"
	"organisation-dashboard-backend/internal/config"
	"organisation-dashboard-backend/internal/gateway"
	"organisation-dashboard-backend/internal/notify"
	"organisation-dashboard-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize gateways to the remote entity store
	client := gateway.NewClient(cfg.RemoteAPIBaseURL, cfg.RemoteAPITimeout())
	teamGateway := gateway.NewTeamClient(client)
	projectGateway := gateway.NewProjectClient(client)
	organisationGateway := gateway.NewOrganisationClient(client)
	memberGateway := gateway.NewMemberClient(client)

	// Initialize derived views and notification channel
	viewCache := cache.NewViewCache(teamGateway, projectGateway)
	notifier := notify.NewLogNotifier()

	// Initialize services
	teamService := service.NewTeamService(teamGateway, viewCache, notifier, validator)
	projectService := service.NewProjectService(projectGateway, viewCache)
	organisationService := service.NewOrganisationService(organisationGateway)
	memberService := service.NewMemberService(memberGateway)

	// Initialize handlers
	teamHandler := handlers.NewTeamHandler(teamService)
	projectHandler := handlers.NewProjectHandler(projectService)
	organisationHandler := handlers.NewOrganisationHandler(organisationService)
	memberHandler := handlers.NewMemberHandler(memberService)
	healthHandler := handlers.NewHealthHandler()

	// Health check
	router.GET("/health", healthHandler.Health)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		organisations := v1.Group("/organisations/:orgId")
		{
			organisations.GET("", organisationHandler.GetOrganisation)
			organisations.GET("/teams", teamHandler.ListTeams)
			organisations.POST("/teams", teamHandler.CreateTeam)
			organisations.GET("/projects", projectHandler.ListProjects)
			organisations.GET("/projects/:projectId/name", projectHandler.GetProjectName)
			organisations.GET("/members", memberHandler.ListMembers)
		}

		teams := v1.Group("/teams")
		{
			teams.PUT("/:id", teamHandler.UpdateTeam)
			teams.DELETE("/:id", teamHandler.DeleteTeam)
		}
	}

	return router
}
