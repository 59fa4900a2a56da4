package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"pensees/cmd/app"
	"pensees/internal/config"
	handlers "pensees/internal/handler"
	"pensees/internal/middleware"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY is not set in the .env file")
	}

	db, repo, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(repo, services, cfg)

	router := mux.NewRouter()

	// setting up routes
	router.HandleFunc("/", handlers.HomeHandler).Methods(http.MethodGet)
	router.HandleFunc("/health", handlers.HealthHandler).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/auth/login", handler.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh-token", handler.RefreshToken).Methods(http.MethodPost)

	// public content
	api.HandleFunc("/aphorisms", handler.GetAphorisms).Methods(http.MethodGet)
	api.HandleFunc("/aphorisms/featured", handler.GetFeaturedAphorisms).Methods(http.MethodGet)
	api.HandleFunc("/aphorisms/{id}", handler.GetAphorism).Methods(http.MethodGet)
	api.HandleFunc("/reflections", handler.GetReflections).Methods(http.MethodGet)
	api.HandleFunc("/reflections/{slug}", handler.GetReflectionBySlug).Methods(http.MethodGet)
	api.HandleFunc("/themes/{tag}/aphorisms", handler.GetThemeAphorisms).Methods(http.MethodGet)
	api.HandleFunc("/themes/{tag}/reflections", handler.GetThemeReflections).Methods(http.MethodGet)
	api.HandleFunc("/tags", handler.GetTags).Methods(http.MethodGet)

	// reactions and comments
	api.HandleFunc("/aphorisms/{id}/like", handler.ToggleAphorismLike).Methods(http.MethodPost)
	api.HandleFunc("/reflections/{id}/like", handler.ToggleReflectionLike).Methods(http.MethodPost)
	api.HandleFunc("/reflections/{id}/dislike", handler.ToggleReflectionDislike).Methods(http.MethodPost)
	api.HandleFunc("/reflections/{id}/comments", handler.GetComments).Methods(http.MethodGet)
	api.HandleFunc("/reflections/{id}/comments", handler.CreateComment).Methods(http.MethodPost)

	api.HandleFunc("/contact", handler.Contact).Methods(http.MethodPost)

	// admin dashboard
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(mux.MiddlewareFunc(middleware.AuthMiddleware(cfg)))

	admin.HandleFunc("/aphorisms", handler.CreateAphorism).Methods(http.MethodPost)
	admin.HandleFunc("/aphorisms/{id}", handler.UpdateAphorism).Methods(http.MethodPut)
	admin.HandleFunc("/aphorisms/{id}", handler.DeleteAphorism).Methods(http.MethodDelete)
	admin.HandleFunc("/aphorisms/{id}/images", handler.SaveCard).Methods(http.MethodPost)
	admin.HandleFunc("/aphorisms/{id}/primary-image", handler.SetPrimaryImage).Methods(http.MethodPut)

	admin.HandleFunc("/reflections", handler.GetAllReflections).Methods(http.MethodGet)
	admin.HandleFunc("/reflections", handler.CreateReflection).Methods(http.MethodPost)
	admin.HandleFunc("/reflections/{id}", handler.GetReflection).Methods(http.MethodGet)
	admin.HandleFunc("/reflections/{id}", handler.UpdateReflection).Methods(http.MethodPut)
	admin.HandleFunc("/reflections/{id}", handler.DeleteReflection).Methods(http.MethodDelete)
	admin.HandleFunc("/reflections/{id}/publish", handler.PublishReflection).Methods(http.MethodPost)
	admin.HandleFunc("/reflections/{id}/images", handler.AddReflectionImage).Methods(http.MethodPost)

	admin.HandleFunc("/tags", handler.CreateTag).Methods(http.MethodPost)
	admin.HandleFunc("/tags/{id}", handler.DeleteTag).Methods(http.MethodDelete)

	admin.HandleFunc("/comments", handler.GetAllComments).Methods(http.MethodGet)
	admin.HandleFunc("/comments/{id}", handler.DeleteComment).Methods(http.MethodDelete)

	admin.HandleFunc("/cards/generate", handler.GenerateCard).Methods(http.MethodPost)
	admin.HandleFunc("/images/{id}", handler.DeleteSavedImage).Methods(http.MethodDelete)

	handlerChain := middleware.Chain(
		router,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	fmt.Printf("Server listening on %s\n", addr)
	fmt.Printf("Database: %s\n", cfg.DB.DbNAME)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
