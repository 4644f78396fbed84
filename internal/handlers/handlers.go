package handlers

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"Filmoteka/internal/config"
	"Filmoteka/internal/middleware"
	"Filmoteka/internal/service"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров: собирает роутер и цепочку middleware.
func NewHandler(
	userService *service.UserService,
	movieService *service.MovieService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithLogging)
	r.Use(middleware.WithGzip)

	auth := middleware.WithAuth(config.AuthSecret, userService)

	// Handlers
	userHandler := NewUserHandler(userService, logger, config)
	movieHandler := NewMovieHandler(movieService, logger, config)

	// Auth routes
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", userHandler.Register)
		r.Post("/login", userHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth)
			r.Get("/profile", userHandler.Profile)
			r.Put("/profile", userHandler.UpdateProfile)
			r.Put("/change-password", userHandler.ChangePassword)
			r.Delete("/delete-account", userHandler.DeleteAccount)
		})
	})

	// Movie routes — все под гардом
	r.Route("/movies", func(r chi.Router) {
		r.Use(auth)
		r.Get("/", movieHandler.List)
		r.Post("/create", movieHandler.Create)
		r.Get("/{id}", movieHandler.Get)
		r.Put("/{id}", movieHandler.Update)
		r.Delete("/{id}", movieHandler.Delete)
		r.Post("/upload-poster/{id}", movieHandler.UploadPoster)
		r.Put("/upload-poster/{id}", movieHandler.UploadPoster)
		r.Delete("/delete-poster/{id}", movieHandler.DeletePoster)
	})

	return &Handler{Router: r}
}
