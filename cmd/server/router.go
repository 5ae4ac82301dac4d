package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jashmevada/skill-swap-platform/internal/api"
	apiMiddleware "github.com/jashmevada/skill-swap-platform/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. It accepts the application dependencies to create handlers
// and register routes. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware) // Add trace IDs for improved error handling

	// Create API handlers using the application's services
	authHandler := api.NewAuthHandler(
		app.userStore,
		app.jwtService,
		app.passwordHasher,
		app.passwordVerifier,
	)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService, app.userStore)

	userHandler := api.NewUserHandler(app.userService, app.logger)
	skillHandler := api.NewSkillHandler(app.skillService, app.logger)
	swapHandler := api.NewSwapHandler(app.swapService, app.logger)
	feedbackHandler := api.NewFeedbackHandler(app.feedbackService, app.logger)
	adminHandler := api.NewAdminHandler(app.adminService, app.logger)

	// Register routes
	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/refresh", authHandler.Refresh)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			// Profile endpoints
			r.Get("/users/me", userHandler.GetMe)
			r.Put("/users/me", userHandler.UpdateMe)
			r.Get("/users", userHandler.SearchUsers)
			r.Get("/users/{userID}", userHandler.GetUser)

			// Per-user skill sets
			r.Get("/users/{userID}/skills/{set}", userHandler.ListSkills)
			r.Post("/users/me/skills/{set}", userHandler.AddSkill)
			r.Delete("/users/me/skills/{set}/{skillID}", userHandler.RemoveSkill)

			// Skill catalog endpoints
			r.Get("/skills", skillHandler.ListSkills)
			r.Post("/skills", skillHandler.CreateSkill)
			r.Get("/skills/categories", skillHandler.ListCategories)
			r.Get("/skills/{skillID}", skillHandler.GetSkill)

			// Swap request lifecycle endpoints
			r.Post("/swaps", swapHandler.CreateSwap)
			r.Get("/swaps", swapHandler.ListSwaps)
			r.Get("/swaps/{swapID}", swapHandler.GetSwap)
			r.Patch("/swaps/{swapID}", swapHandler.UpdateSwap)
			r.Delete("/swaps/{swapID}", swapHandler.DeleteSwap)

			// Feedback endpoints
			r.Post("/feedback", feedbackHandler.SubmitFeedback)
			r.Get("/users/{userID}/feedback", feedbackHandler.ListUserFeedback)
			r.Get("/swaps/{swapID}/feedback", feedbackHandler.ListSwapFeedback)

			// Admin endpoints
			r.Route("/admin", func(r chi.Router) {
				r.Use(authMiddleware.RequireAdmin)

				r.Get("/stats", adminHandler.GetStats)
				r.Get("/reports/feedback", adminHandler.GetFeedbackReport)
				r.Get("/reports/activity", adminHandler.GetUserActivityReport)

				r.Get("/users", adminHandler.ListUsers)
				r.Post("/users/{userID}/ban", adminHandler.BanUser)
				r.Post("/users/{userID}/unban", adminHandler.UnbanUser)

				r.Get("/skills/pending", adminHandler.ListPendingSkills)
				r.Post("/skills/{skillID}/approve", adminHandler.ApproveSkill)
				r.Delete("/skills/{skillID}", adminHandler.RejectSkill)

				r.Get("/swaps", adminHandler.ListAllSwaps)

				r.Post("/messages", adminHandler.CreateMessage)
				r.Get("/messages", adminHandler.ListMessages)
				r.Post("/messages/{messageID}/toggle", adminHandler.ToggleMessage)
			})
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
