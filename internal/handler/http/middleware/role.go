package middleware

import (
	"net/http"

	"github.com/classtrack/coaching-backend-go/internal/domain/user"
	"github.com/classtrack/coaching-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// RequireAdmin requires admin role
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrAdminAccessRequired)
			return
		}

		role, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, user.ErrAdminAccessRequired)
			return
		}

		if role != string(user.RoleAdmin) {
			response.HandleError(w, user.ErrAdminAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireTeacherOrAdmin requires teacher or admin role
func RequireTeacherOrAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrTeacherAccessRequired)
			return
		}

		role, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, user.ErrTeacherAccessRequired)
			return
		}

		if role != string(user.RoleTeacher) && role != string(user.RoleAdmin) {
			response.HandleError(w, user.ErrTeacherAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireTeacher requires teacher role
func RequireTeacher(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrTeacherAccessRequired)
			return
		}

		role, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, user.ErrTeacherAccessRequired)
			return
		}

		if role != string(user.RoleTeacher) {
			response.HandleError(w, user.ErrTeacherAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
