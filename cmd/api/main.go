package main

import (
	"log"
	"os"
	"time"

	"github.com/crescerhub/diagnostico-api/internal/infrastructure/database"
	"github.com/crescerhub/diagnostico-api/internal/infrastructure/storage"
	"github.com/crescerhub/diagnostico-api/internal/interfaces/http/middleware"
	"github.com/crescerhub/diagnostico-api/internal/interfaces/http/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
)

const logoBucket = "logos"

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, using system environment variables")
	}

	// Initialize database
	db, err := database.SetupDatabase()
	if err != nil {
		log.Fatalf("❌ Error setting up database: %v", err)
	}

	// Blob store dos logos (Supabase Storage)
	blobStore, err := storage.NewFromEnv(logoBucket)
	if err != nil {
		log.Fatalf("❌ Error setting up blob storage: %v", err)
	}

	jwtSecret := os.Getenv("SUPABASE_JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("❌ SUPABASE_JWT_SECRET is not defined in the environment")
	}

	app := fiber.New(fiber.Config{
		BodyLimit:    10 * 1024 * 1024, // 10MB, suficiente para upload de logos
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	})

	// Setup middleware
	middleware.SetupMiddlewares(app)

	// Setup routes
	routes.SetupRoutes(app, db, blobStore, jwtSecret)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server is running on port %s", port)
	log.Fatal(app.Listen(":" + port))
}
