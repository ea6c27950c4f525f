package main

import (
	"fmt"
	"net/http"

	"github.com/sssms/hrms-backend-go/internal/config"
	appHTTP "github.com/sssms/hrms-backend-go/internal/handler/http"
	"github.com/sssms/hrms-backend-go/internal/pkg/database"
	"github.com/sssms/hrms-backend-go/internal/pkg/jwt"
	"github.com/sssms/hrms-backend-go/internal/repository/postgresql"
	attendanceService "github.com/sssms/hrms-backend-go/internal/service/attendance"
	authService "github.com/sssms/hrms-backend-go/internal/service/auth"
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
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	jwtRepo := postgresql.NewJWTRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	authSvc := authService.NewAuthService(userRepo, jwtService, jwtRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, cfg.Attendance)

	authHandler := appHTTP.NewAuthHandler(jwtService, authSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)

	router := appHTTP.NewRouter(jwtService, cfg.App.FrontendURL, authHandler, attendanceHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
