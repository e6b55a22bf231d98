package main

import (
	"log"

	"github.com/m0derNik/FromsApp-Backend/internal/config"
	"github.com/m0derNik/FromsApp-Backend/internal/database"
	"github.com/m0derNik/FromsApp-Backend/internal/handlers"
	"github.com/m0derNik/FromsApp-Backend/internal/middleware"
	"github.com/m0derNik/FromsApp-Backend/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           FormsApp API
// @version         1.0
// @description     API for authoring form templates, collecting submissions and rating templates
// @host            localhost:8080
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter "Bearer {token}"

func main() {
	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)

	authService := services.NewAuthService(db, cfg.JWTSecret)
	cascadeService := services.NewCascadeService(db)
	ratingService := services.NewRatingService(db)
	templateService := services.NewTemplateService(db, ratingService, cascadeService)
	formService := services.NewFormService(db, cascadeService)

	authHandler := handlers.NewAuthHandler(authService)
	templateHandler := handlers.NewTemplateHandler(templateService)
	formHandler := handlers.NewFormHandler(formService)
	ratingHandler := handlers.NewRatingHandler(ratingService)
	adminHandler := handlers.NewAdminHandler(templateService, formService, cascadeService)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		templates := api.Group("/templates")
		{
			// Listing and search are public; a token, when present,
			// widens what a single-template read may return.
			templates.GET("", middleware.OptionalAuth(authService), templateHandler.ListTemplates)
			templates.GET("/search", middleware.OptionalAuth(authService), templateHandler.SearchTemplates)
			templates.GET("/:id", middleware.OptionalAuth(authService), templateHandler.GetTemplate)

			templates.POST("", middleware.JWTAuth(authService), templateHandler.CreateTemplate)
			templates.PUT("/:id", middleware.JWTAuth(authService), templateHandler.UpdateTemplate)
			templates.DELETE("/:id", middleware.JWTAuth(authService), templateHandler.DeleteTemplate)
			templates.GET("/:id/forms", middleware.JWTAuth(authService), templateHandler.ListTemplateForms)
		}

		forms := api.Group("/forms")
		forms.Use(middleware.JWTAuth(authService))
		{
			forms.GET("", formHandler.ListForms)
			forms.POST("", formHandler.CreateForm)
			forms.GET("/:id", formHandler.GetForm)
			forms.PUT("/:id", formHandler.UpdateForm)
			forms.DELETE("/:id", formHandler.DeleteForm)
		}

		ratings := api.Group("/ratings")
		ratings.Use(middleware.JWTAuth(authService))
		{
			ratings.POST("", ratingHandler.CreateRating)
		}

		admin := api.Group("/admin")
		admin.Use(middleware.JWTAuth(authService), middleware.AdminOnly())
		{
			admin.DELETE("/users/:id", adminHandler.DeleteUser)
			admin.DELETE("/templates/:id", adminHandler.DeleteTemplate)
			admin.PUT("/templates/:id", adminHandler.UpdateTemplate)
			admin.PUT("/forms/:id", adminHandler.UpdateForm)
		}
	}

	log.Printf("server listening on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
