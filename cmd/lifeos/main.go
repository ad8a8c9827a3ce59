package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/lifeos-dev/lifeos/internal/api"
	"github.com/lifeos-dev/lifeos/internal/db"
	"github.com/lifeos-dev/lifeos/internal/nutrition"
	"github.com/lifeos-dev/lifeos/internal/services"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("dotenv load failed: %v", err)
	}

	location := mustLoadLocation(getEnv("TZ", "UTC"))
	time.Local = location

	secretKey := getEnv("SECRET_KEY", "change_me_in_production")
	dbPath := getEnv("DB_PATH", filepath.Join("data", "lifeos.db"))
	port := getEnv("PORT", "8080")
	cookieSecure := getEnv("COOKIE_SECURE", "false") == "true"

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	resolver := buildFoodResolver()
	handler := api.NewHandler(database, secretKey, location, resolver, cookieSecure)

	repositories := db.NewRepositories(database)
	if err := services.NewFitnessService(repositories.Fitness).EnsureCatalogSeeded(); err != nil {
		log.Fatalf("exercise catalog seed failed: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName:               "LifeOS",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("LifeOS listening on http://0.0.0.0:%s (db: %s, tz: %s)", port, dbPath, location.String())
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

// buildFoodResolver wires the lookup chain: the public food database first,
// then an OpenAI-compatible model when one is configured.
func buildFoodResolver() *nutrition.Resolver {
	httpClient := &http.Client{Timeout: 15 * time.Second}

	sources := []nutrition.Source{
		nutrition.NewFoodAPISource(getEnv("FOOD_API_BASE_URL", ""), getEnv("FOOD_API_LOCALE", "en"), httpClient),
	}
	if baseURL := os.Getenv("LLM_API_BASE_URL"); baseURL != "" {
		sources = append(sources, nutrition.NewLLMSource(
			baseURL,
			os.Getenv("LLM_API_KEY"),
			getEnv("LLM_MODEL", "gpt-4o-mini"),
			httpClient,
		))
	}
	return nutrition.NewResolver(sources...)
}

func mustLoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
