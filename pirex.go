//go:build !cli
// +build !cli

package main

import (
	"html/template"
	"log"
	"strconv"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"pirex.GO/api"
	_ "pirex.GO/api/blog"
	_ "pirex.GO/api/catalog"
	_ "pirex.GO/api/contact"
	_ "pirex.GO/api/graphql"
	_ "pirex.GO/api/media"
	"pirex.GO/config"
	"pirex.GO/core/auth"
	_ "pirex.GO/custom"
	html "pirex.GO/html"
)

func main() {
	config.LoadEnv()
	config.LoadAppConfig()

	figure.NewFigure("Pirex", "", true).Print()

	// Initialize Redis
	config.InitRedis()
	redisStatus := "Redis not configured or not reachable, caching disabled."
	if config.RedisClient != nil {
		err := config.RedisClient.Ping(config.RedisCtx()).Err()
		if err == nil {
			redisStatus = "Redis connection successful."
		} else {
			config.RedisClient = nil // Disable Redis if not reachable
			redisStatus = "Redis configured but not reachable, caching disabled."
		}
	}
	log.Println(redisStatus)

	db, err := config.NewDB()
	if err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	// Check DB connection
	sqldb, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get DB instance: %v", err)
	}
	if err := sqldb.Ping(); err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	log.Println("Database connection successful.")

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.Gzip())
	e.Use(middleware.Decompress())

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			duration := time.Since(start).Milliseconds()
			c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(duration, 10))
			return err
		}
	})

	// Register the template renderer
	t := &html.Template{
		Templates: template.Must(template.ParseGlob("html/pages/*.html")),
	}
	e.Renderer = t

	e.Static("/assets", "assets")
	e.File("/default.jpg", "assets/default.jpg")

	apiGroup := e.Group("/api")
	apiGroup.Use(auth.Middleware())

	api.ApplyModules(apiGroup, db)
	api.ApplyRoutes(e, db)
	html.RegisterStorefrontRoutes(e, db)

	port := config.AppConfig.Port
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on :%s", port)
	e.Logger.Fatal(e.Start(":" + port))
}
