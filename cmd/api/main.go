package main

import (
	"fmt"
	"net/http"

	"github.com/classtrack/coaching-backend-go/internal/config"
	appHTTP "github.com/classtrack/coaching-backend-go/internal/handler/http"
	"github.com/classtrack/coaching-backend-go/internal/pkg/database"
	"github.com/classtrack/coaching-backend-go/internal/pkg/jwt"
	"github.com/classtrack/coaching-backend-go/internal/repository/postgresql"
	attendanceService "github.com/classtrack/coaching-backend-go/internal/service/attendance"
	authService "github.com/classtrack/coaching-backend-go/internal/service/auth"
	shiftService "github.com/classtrack/coaching-backend-go/internal/service/shift"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	batchRepo := postgresql.NewBatchRepository(db)
	courseRepo := postgresql.NewCourseRepository(db)
	branchRepo := postgresql.NewBranchRepository(db)
	studentRepo := postgresql.NewStudentRepository(db)
	teacherRepo := postgresql.NewTeacherRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	authSvc := authService.NewAuthService(userRepo, teacherRepo, jwtService)
	attendanceSvc := attendanceService.NewAttendanceService(
		db, attendanceRepo, batchRepo, courseRepo, branchRepo, studentRepo, teacherRepo, shiftRepo,
	)
	shiftSvc := shiftService.NewShiftService(db, shiftRepo, teacherRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	shiftHandler := appHTTP.NewShiftHandler(shiftSvc)

	router := appHTTP.NewRouter(jwtService, authHandler, attendanceHandler, shiftHandler)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Server listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
