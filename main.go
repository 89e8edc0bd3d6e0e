package main

import (
	"log"
	"net/http"
	"os"
	"strings"

	"stayhub/config"
	"stayhub/dto"
	"stayhub/jobs"
	"stayhub/models"
	"stayhub/routes"
	"stayhub/services"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func migrateTables() {
	if err := config.DB.AutoMigrate(&models.User{}, &models.Hotel{}, &models.Room{}, &models.Booking{}); err != nil {
		panic("Failed to migrate tables: " + err.Error())
	}
}

func registerValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("bookdate", dto.BookDate); err != nil {
			log.Fatalf("Failed to register bookdate validation: %v", err)
		}
	}
}

func main() {

	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	registerValidations()
	migrateTables()

	jobs.SetHotelCacheRefresher(services.HotelCacheJob{DB: config.DB, RDB: config.RedisClient})
	if err := jobs.InitCronJobs(c, m); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	config.InitWebSocket(router, m)

	routes.SetupRoutes(router, config.DB, config.RedisClient, config.Cloudinary, m)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	// Non-API routes fall back to the SPA shell
	router.Static("/static", "./static")
	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
			return
		}
		c.File("./static/index.html")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
