package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/viremo/viremo-be/internal/api/handlers"
	"github.com/viremo/viremo-be/internal/auth"
	"github.com/viremo/viremo-be/internal/services"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(
	userService services.UserServiceProvider,
	taskService services.TaskServiceProvider,
	activityService services.ActivityServiceProvider,
	avatarService services.AvatarServiceProvider,
	recommendService services.RecommendServiceProvider,
) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS configuration for development
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"}, // Adjust for your frontend URL
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize handlers
	userHandler := handlers.NewUserHandler(userService, activityService)
	taskHandler := handlers.NewTaskHandler(taskService)
	activityHandler := handlers.NewActivityHandler(activityService)
	avatarHandler := handlers.NewAvatarHandler(avatarService)
	recommendHandler := handlers.NewRecommendHandler(recommendService)
	systemHandler := handlers.NewSystemHandler()

	// API versioning
	r.Route("/api/v1", func(r chi.Router) {
		// Public endpoints
		r.Post("/auth/register", userHandler.Register)
		r.Post("/auth/login", userHandler.Login)
		r.Post("/auth/logout", userHandler.Logout)
		r.Get("/recommendation", recommendHandler.Get)

		// Protected endpoints
		r.Group(func(r chi.Router) {
			r.Use(auth.JWTMiddleware())

			r.Get("/users/me", userHandler.GetMe)
			r.Post("/users/me/avatar", avatarHandler.Upload)
			r.Delete("/users/me/avatar", avatarHandler.Delete)

			r.Get("/activity", activityHandler.GetWeekly)
			r.Get("/system", systemHandler.Get)

			r.Route("/tasks", func(r chi.Router) {
				r.Get("/", taskHandler.List)
				r.Post("/", taskHandler.Create)
				r.Route("/{id}", func(r chi.Router) {
					r.Put("/", taskHandler.Update)
					r.Delete("/", taskHandler.Delete)
				})
			})
		})
	})

	return r
}
