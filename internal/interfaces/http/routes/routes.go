package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"gorm.io/gorm"

	"github.com/crescerhub/diagnostico-api/internal/application/usecases"
	"github.com/crescerhub/diagnostico-api/internal/domain/repositories"
	"github.com/crescerhub/diagnostico-api/internal/infrastructure/cache"
	"github.com/crescerhub/diagnostico-api/internal/interfaces/http/handlers"
	"github.com/crescerhub/diagnostico-api/internal/interfaces/http/middleware"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, blobStore usecases.BlobStore, jwtSecret string) {
	// Add performance middleware
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	// Add ETag support for efficient caching
	app.Use(etag.New())

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// Repositories
	pillarRepo := repositories.NewPillarRepository(db)
	resultRepo := repositories.NewResultRepository(db)
	settingsRepo := repositories.NewSettingsRepository(db)

	// Cache compartilhado entre os casos de uso
	c := cache.New()

	// Use Cases
	pillarUseCase := usecases.NewPillarUseCase(pillarRepo, c)
	diagnosticUseCase := usecases.NewDiagnosticUseCase(pillarRepo, resultRepo, c)
	settingsUseCase := usecases.NewSettingsUseCase(settingsRepo, blobStore)

	// Handlers
	pillarHandler := handlers.NewPillarHandler(pillarUseCase)
	diagnosticHandler := handlers.NewDiagnosticHandler(diagnosticUseCase)
	settingsHandler := handlers.NewSettingsHandler(settingsUseCase)

	// Routes
	groups := middleware.SetupRouteGroups(app, middleware.Auth(jwtSecret))

	// Leitura pública: questionário e identidade visual
	groups.Public.Get("/pillars", pillarHandler.GetPillars)
	groups.Public.Get("/settings", settingsHandler.GetSettings)

	// Diagnósticos do usuário autenticado
	groups.Diagnostics.Post("/", diagnosticHandler.SaveDiagnostic)
	groups.Diagnostics.Get("/", diagnosticHandler.GetDiagnostics)
	groups.Diagnostics.Get("/:id", diagnosticHandler.GetDiagnostic)
	groups.Diagnostics.Get("/:id/report", diagnosticHandler.GetReport)
	groups.Diagnostics.Delete("/:id", diagnosticHandler.DeleteDiagnostic)

	// Backoffice: edição de pilares, perguntas e branding
	groups.Admin.Post("/pillars", pillarHandler.CreatePillar)
	groups.Admin.Put("/pillars/:id", pillarHandler.UpdatePillar)
	groups.Admin.Delete("/pillars/:id", pillarHandler.DeletePillar)
	groups.Admin.Post("/pillars/:id/questions", pillarHandler.AddQuestion)
	groups.Admin.Put("/questions/:id", pillarHandler.UpdateQuestion)
	groups.Admin.Delete("/questions/:id", pillarHandler.DeleteQuestion)
	groups.Admin.Put("/settings", settingsHandler.UpdateSettings)
	groups.Admin.Post("/settings/logos/:type", settingsHandler.UploadLogo)
	groups.Admin.Delete("/settings/logos/:type", settingsHandler.RemoveLogo)
}
