package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"bauportal/internal/config"
	"bauportal/internal/database"
	"bauportal/internal/middleware"
	"bauportal/internal/modules/auth"
	"bauportal/internal/modules/catalog"
	"bauportal/internal/modules/document"
	"bauportal/internal/modules/events"
	"bauportal/internal/modules/project"
	"bauportal/internal/modules/tenant"
	"bauportal/internal/modules/user"
	jwtsvc "bauportal/internal/pkg/jwt"
	"bauportal/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	tenantRepo := repository.NewTenantRepository(db)
	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	tradeRepo := repository.NewTradeRepository(db)
	phaseRepo := repository.NewPhaseRepository(db)
	projectTypeRepo := repository.NewProjectTypeRepository(db)
	documentRepo := repository.NewDocumentRepository(db)
	folderRepo := repository.NewFolderRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)

	hub := events.NewHub()
	defer hub.Close()
	eventsHandler := events.NewHandler(hub)

	authService := auth.NewService(
		userRepo,
		j,
		auth.LogMailer{},
		auth.NewCodeStore(cfg.TwoFactorTTL, cfg.ResendCooldown),
		auth.NewCodeStore(cfg.ResetCodeTTL, cfg.ResendCooldown),
		cfg.PortalBaseURL,
	)
	authHandler := auth.NewHandler(authService)

	tenantService := tenant.NewService(tenantRepo, hub)
	tenantHandler := tenant.NewHandler(tenantService)

	projectService := project.NewService(projectRepo, assignmentRepo, hub)
	projectHandler := project.NewHandler(projectService)

	catalogService := catalog.NewService(tradeRepo, phaseRepo, projectTypeRepo, hub)
	catalogHandler := catalog.NewHandler(catalogService)

	storage, err := document.NewDiskStorage(cfg.UploadDir)
	if err != nil {
		log.Fatal(err)
	}
	documentService := document.NewService(documentRepo, folderRepo, storage, hub)
	documentHandler := document.NewHandler(documentService)

	userService := user.NewService(userRepo, hub)
	userHandler := user.NewHandler(userService)

	if cfg.AppEnv == "prod" || cfg.AppEnv == "production" || cfg.AppEnv == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.ErrorLogger(), middleware.CORS())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			eventsHandler.RegisterRoutes(protected)
			projectHandler.RegisterRoutes(protected)
			documentHandler.RegisterRoutes(protected)
			catalogHandler.RegisterRoutes(protected)

			admin := protected.Group("/")
			admin.Use(middleware.AdminOnly())
			{
				tenantHandler.RegisterRoutes(admin)
				userHandler.RegisterRoutes(admin)
				catalogHandler.RegisterAdminRoutes(admin)
			}
		}
	}

	log.Printf("listening on %s", cfg.ListenAddr)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal(err)
	}
}
