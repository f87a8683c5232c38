package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/facetrack/attendance-backend-go/internal/config"
	appHTTP "github.com/facetrack/attendance-backend-go/internal/handler/http"
	"github.com/facetrack/attendance-backend-go/internal/pkg/cron"
	"github.com/facetrack/attendance-backend-go/internal/pkg/database"
	"github.com/facetrack/attendance-backend-go/internal/pkg/jwt"
	"github.com/facetrack/attendance-backend-go/internal/pkg/storage"
	"github.com/facetrack/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/facetrack/attendance-backend-go/internal/service/attendance"
	authService "github.com/facetrack/attendance-backend-go/internal/service/auth"
	employeeService "github.com/facetrack/attendance-backend-go/internal/service/employee"
	"github.com/facetrack/attendance-backend-go/internal/service/file"
	locationService "github.com/facetrack/attendance-backend-go/internal/service/location"
	settingsService "github.com/facetrack/attendance-backend-go/internal/service/settings"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	loc, err := time.LoadLocation(cfg.Attendance.Timezone)
	if err != nil {
		fmt.Println("Error loading attendance timezone:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	geoFenceRepo := postgresql.NewGeoFenceRepository(db)
	settingsRepo := postgresql.NewSettingsRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		log.Fatal("Failed to initialize local storage:", err)
	}

	fileSvc := file.NewFileService(fileStorage)
	authSvc := authService.NewAuthService(employeeRepo, jwtService)
	settingsSvc := settingsService.NewSettingsService(settingsRepo)
	locationSvc := locationService.NewLocationService(geoFenceRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, fileSvc)
	attendanceSvc := attendanceService.NewAttendanceService(
		attendanceRepo,
		employeeRepo,
		geoFenceRepo,
		settingsSvc,
		fileSvc,
		cfg.Attendance.FaceMatchThreshold,
		loc,
	)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	settingsHandler := appHTTP.NewSettingsHandler(settingsSvc)
	locationHandler := appHTTP.NewLocationHandler(locationSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		authHandler,
		attendanceHandler,
		settingsHandler,
		locationHandler,
		employeeHandler,
	)

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(attendanceSvc, cfg.Attendance.SweepInterval).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
