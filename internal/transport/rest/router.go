package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/attendance-management/internal/attendance"
	"github.com/frahmantamala/attendance-management/internal/auth"
	"github.com/frahmantamala/attendance-management/internal/report"
	"github.com/frahmantamala/attendance-management/internal/transport/middleware"
	"github.com/frahmantamala/attendance-management/internal/transport/swagger"
	"github.com/frahmantamala/attendance-management/internal/user"
	"github.com/go-chi/chi"
)

func RegisterAllRoutes(router *chi.Mux, db *sql.DB, authHandler *auth.Handler, userHandler *user.Handler, attendanceHandler *attendance.Handler, reportHandler *report.Handler, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	// Apply global middleware
	router.Use(middleware.CORS)
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	// Serve OpenAPI spec at root (outside API prefix)
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	// Swagger UI route at root
	router.Handle("/swagger/*", swagger.Handler())

	// Mount API under /api/v1 to match OpenAPI basePath
	router.Route("/api/v1", func(r chi.Router) {
		// Health check route
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		// Auth routes
		if authHandler != nil {
			r.Route("/auth", func(sr chi.Router) {
				if userHandler != nil {
					sr.Post("/register", userHandler.Register)
				}
				sr.Post("/login", authHandler.Login)
				sr.Post("/refresh", authHandler.RefreshToken)
				sr.Post("/logout", authHandler.Logout)
			})
		}

		if authHandler != nil {
			// Protected routes that require authentication
			r.Group(func(pr chi.Router) {
				pr.Use(authHandler.AuthMiddleware)

				// Current user and roster
				if userHandler != nil {
					pr.Get("/users/me", userHandler.GetCurrentUser)
					pr.Group(func(mr chi.Router) {
						mr.Use(authHandler.RequireManager)
						mr.Get("/users/employees", userHandler.GetEmployees)
					})
				}

				// Attendance routes
				if attendanceHandler != nil {
					pr.Route("/attendance", func(ar chi.Router) {
						// Employee attendance routes
						ar.Post("/checkin", attendanceHandler.CheckIn)    // POST /attendance/checkin
						ar.Post("/checkout", attendanceHandler.CheckOut)  // POST /attendance/checkout
						ar.Get("/today", attendanceHandler.Today)         // GET /attendance/today
						ar.Get("/my-history", attendanceHandler.MyHistory) // GET /attendance/my-history
						if reportHandler != nil {
							ar.Get("/my-summary", reportHandler.MySummary) // GET /attendance/my-summary
						}

						// Manager routes with role protection
						ar.Group(func(mr chi.Router) {
							mr.Use(authHandler.RequireManager)
							mr.Get("/all", attendanceHandler.All)                  // GET /attendance/all
							mr.Get("/employee/{id}", attendanceHandler.ByEmployee) // GET /attendance/employee/:id
							mr.Get("/today-status", attendanceHandler.TodayStatus) // GET /attendance/today-status
							if reportHandler != nil {
								mr.Get("/export", reportHandler.Export) // GET /attendance/export
							}
						})
					})
				}

				// Dashboard routes
				if reportHandler != nil {
					pr.Route("/dashboard", func(dr chi.Router) {
						dr.Get("/employee", reportHandler.EmployeeDashboard)
						dr.Group(func(mr chi.Router) {
							mr.Use(authHandler.RequireManager)
							mr.Get("/manager", reportHandler.ManagerDashboard)
						})
					})
				}
			})
		}
	})
}
