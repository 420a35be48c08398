package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/briitney/daybook-backend/internal/config"
	"github.com/briitney/daybook-backend/internal/database"
	"github.com/briitney/daybook-backend/internal/handlers"
	"github.com/briitney/daybook-backend/internal/middleware"
	"github.com/briitney/daybook-backend/internal/routes"
	"github.com/briitney/daybook-backend/internal/services"
	"github.com/briitney/daybook-backend/internal/store"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	cfg := config.Load()

	// Connect to MongoDB
	log.Printf("Connecting to MongoDB...")
	if err := database.Connect(cfg.MongoURI); err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer database.Disconnect()

	// Connect to Redis
	log.Printf("Connecting to Redis...")
	if err := database.ConnectRedis(cfg.RedisURI); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	defer database.DisconnectRedis()

	// Initialize the Cloudinary image store. The server still runs without
	// credentials; create/update requests carrying an image will fail.
	var images services.ImageStore
	if cfg.CloudinaryName != "" && cfg.CloudinaryAPIKey != "" && cfg.CloudinaryAPISecret != "" {
		cloudinaryService, err := services.NewCloudinaryService(cfg.CloudinaryName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret, cfg.UploadFolder)
		if err != nil {
			log.Printf("Warning: Failed to initialize Cloudinary: %v", err)
			log.Println("Image uploads will not be available")
		} else {
			images = cloudinaryService
			log.Println("Cloudinary image store initialized")
		}
	} else {
		log.Println("Warning: Cloudinary credentials not found. Image uploads will not be available")
	}

	entries := store.NewEntries(database.DB.Collection(cfg.EntriesCollection))
	journal := handlers.NewJournal(services.NewJournalService(entries, images))

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Use(middleware.SecurityHeaders)
	if cfg.IsProduction() {
		r.Use(middleware.GlobalRateLimit)
		log.Println("Production security enabled (in-memory per-IP rate limiting)")
	}
	r.Use(middleware.RateLimit(database.RedisClient))

	routes.Setup(r, journal, cfg.StaticDir)

	log.Println("Registered routes:")
	log.Println("  POST /api/journal/entries")
	log.Println("  GET  /api/journal/entries")
	log.Println("  PUT  /api/journal/entries/{entryID}")
	log.Println("  POST /api/auth/verify")
	log.Println("  GET  /health")

	log.Printf("Daybook backend running on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
