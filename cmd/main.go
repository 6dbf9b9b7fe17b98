package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"luxemart/database"
	"luxemart/internal/handlers"
	"luxemart/internal/repositories"
	"luxemart/internal/services"
	"luxemart/internal/uploader"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, relying on the environment")
	}

	ctx := context.Background()

	client, err := database.Connect(ctx)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(context.Background())

	up, err := uploader.NewR2(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize uploader: %v", err)
	}

	productRepo := repositories.NewMongoProductRepository(database.OpenCollection(client, "products"))
	groupRepo := repositories.NewMongoGroupRepository(database.OpenCollection(client, "productGroups"))
	bannerRepo := repositories.NewMongoBannerRepository(database.OpenCollection(client, "banners"))
	userRepo := repositories.NewMongoUserRepository(database.OpenCollection(client, "users"))

	productService := services.NewProductService(productRepo, groupRepo, up)
	groupService := services.NewGroupService(groupRepo, productRepo, up)
	bannerService := services.NewBannerService(bannerRepo, up)
	userService := services.NewUserService(userRepo)

	productHandler := handlers.NewProductHandler(productService)
	groupHandler := handlers.NewProductGroupHandler(groupService)
	bannerHandler := handlers.NewBannerHandler(bannerService)
	userHandler := handlers.NewUserHandler(userService)

	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS
	allowedOrigins := strings.Split(os.Getenv("CORS_ORIGIN"), ",")
	if len(allowedOrigins) == 1 && allowedOrigins[0] == "" {
		allowedOrigins = []string{"http://localhost:4200"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	// Product routes
	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", productHandler.GetProducts)
		r.Get("/search", productHandler.SearchProducts)
		r.Get("/tag", productHandler.GetProductsByTag)
		r.Get("/group/{id}", productHandler.GetProductsByGroup)

		r.With(handlers.Authentication).Get("/{id}", productHandler.GetProductByID)

		r.Route("/admin", func(r chi.Router) {
			r.Use(handlers.Authentication, handlers.AdminOnly)
			r.Post("/", productHandler.CreateProduct)
			r.Put("/{id}", productHandler.EditProduct)
			r.Delete("/{id}", productHandler.DeleteProduct)
		})
	})

	// Product group routes
	r.Route("/api/productGroups", func(r chi.Router) {
		r.Get("/", groupHandler.GetProductGroups)
		r.Get("/tags/images", groupHandler.GetAllProductGroupImages)

		r.With(handlers.Authentication).Get("/tag", groupHandler.GetProductGroupsByTag)
		r.With(handlers.Authentication).Get("/tags/all", groupHandler.GetAllTags)
		r.With(handlers.Authentication).Get("/{id}", groupHandler.GetProductGroup)

		r.Route("/admin", func(r chi.Router) {
			r.Use(handlers.Authentication, handlers.AdminOnly)
			r.Post("/", groupHandler.CreateProductGroup)
			r.Put("/{id}", groupHandler.EditProductGroup)
			r.Delete("/{id}", groupHandler.DeleteProductGroup)
		})
	})

	// Banner routes
	r.Route("/api/banners", func(r chi.Router) {
		r.Get("/", bannerHandler.GetBanners)

		r.Route("/admin", func(r chi.Router) {
			r.Use(handlers.Authentication, handlers.AdminOnly)
			r.Post("/", bannerHandler.CreateBanner)
			r.Put("/{id}", bannerHandler.EditBanner)
			r.Delete("/{id}", bannerHandler.DeleteBanner)
		})
	})

	// User routes
	r.Route("/api/users", func(r chi.Router) {
		r.Post("/signup", userHandler.SignUp)
		r.Post("/login", userHandler.Login)
		r.Post("/admin/login", userHandler.AdminLogin)
		r.Post("/verify", userHandler.VerifyAdminToken)
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Start the server
	fmt.Printf("Server is running on http://localhost:%s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, r))
}
