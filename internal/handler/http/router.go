package http

import (
	"log/slog"
	"os"

	"github.com/classtrack/coaching-backend-go/internal/handler/http/middleware"
	"github.com/classtrack/coaching-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	jwtService jwt.Service,
	authHandler AuthHandler,
	attendanceHandler AttendanceHandler,
	shiftHandler ShiftHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "coaching-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				// Teacher or admin
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireTeacherOrAdmin)
					r.Get("/", attendanceHandler.GetSession)
					r.Post("/mark", attendanceHandler.MarkSession)
					r.Get("/student/{id}", attendanceHandler.StudentHistory)
				})

				// Teacher only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireTeacher)
					r.Post("/teacher/self", attendanceHandler.SelfReport)
				})

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Get("/pending", attendanceHandler.ListPending)
					r.Post("/approve/{id}", attendanceHandler.Approve)
					r.Get("/teacher/history", attendanceHandler.TeacherHistory)
				})
			})

			// Admin only
			r.Route("/shifts", func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Get("/", shiftHandler.List)
				r.Post("/", shiftHandler.Create)
				r.Put("/{id}", shiftHandler.Update)
				r.Delete("/{id}", shiftHandler.Delete)
				r.Post("/{id}/assign", shiftHandler.Assign)
			})
		})
	})
	return r
}
