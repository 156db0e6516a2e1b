package middleware

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func SetupMiddlewares(app *fiber.App) {
	allowOrigins := os.Getenv("CORS_ORIGINS")
	if allowOrigins == "" {
		allowOrigins = "http://localhost:3000"
	}

	// CORS configuration
	app.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           300, // 5 minutes
	}))

	app.Use(RequestLogger())
}

// RouteGroups define os grupos de rotas da API
type RouteGroups struct {
	Public      fiber.Router
	Diagnostics fiber.Router
	Admin       fiber.Router
}

// SetupRouteGroups configura os grupos de rotas com seus respectivos middlewares
func SetupRouteGroups(app *fiber.App, authMiddleware fiber.Handler) RouteGroups {
	// Grupo público (sem autenticação): leitura de pilares e configurações
	public := app.Group("/")

	// Grupo de diagnósticos (com autenticação)
	diagnostics := app.Group("/diagnostics")
	diagnostics.Use(authMiddleware)

	// Grupo do Backoffice (com autenticação): edição de pilares e branding
	admin := app.Group("/admin")
	admin.Use(authMiddleware)

	return RouteGroups{
		Public:      public,
		Diagnostics: diagnostics,
		Admin:       admin,
	}
}
