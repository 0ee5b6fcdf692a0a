package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/worksite-labs/timeclock-backend-go/internal/config"
	appHTTP "github.com/worksite-labs/timeclock-backend-go/internal/handler/http"
	"github.com/worksite-labs/timeclock-backend-go/internal/pkg/backup"
	"github.com/worksite-labs/timeclock-backend-go/internal/pkg/cron"
	"github.com/worksite-labs/timeclock-backend-go/internal/pkg/database"
	"github.com/worksite-labs/timeclock-backend-go/internal/pkg/jwt"
	"github.com/worksite-labs/timeclock-backend-go/internal/repository/sqlite"
	advanceService "github.com/worksite-labs/timeclock-backend-go/internal/service/advance"
	attendanceService "github.com/worksite-labs/timeclock-backend-go/internal/service/attendance"
	authService "github.com/worksite-labs/timeclock-backend-go/internal/service/auth"
	payrollService "github.com/worksite-labs/timeclock-backend-go/internal/service/payroll"
	reportService "github.com/worksite-labs/timeclock-backend-go/internal/service/report"
	settingsService "github.com/worksite-labs/timeclock-backend-go/internal/service/settings"
	tripService "github.com/worksite-labs/timeclock-backend-go/internal/service/trip"
	workerService "github.com/worksite-labs/timeclock-backend-go/internal/service/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewSQLiteDB(cfg.Database.Path)
	if err != nil {
		log.Fatal("Error opening database: ", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := db.InitSchema(ctx); err != nil {
		log.Fatal("Error initializing schema: ", err)
	}

	workerRepo := sqlite.NewWorkerRepository(db)
	attendanceRepo := sqlite.NewAttendanceRepository(db)
	advanceRepo := sqlite.NewAdvanceRepository(db)
	settingsRepo := sqlite.NewSettingsRepository(db)
	tripRepo := sqlite.NewTripRepository(db)

	if err := settingsService.Seed(ctx, settingsRepo); err != nil {
		log.Fatal("Error seeding settings: ", err)
	}

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	backupService := backup.NewService(db, cfg.Backup.Dir, cfg.Backup.Keep)

	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, workerRepo)
	workerSvc := workerService.NewWorkerService(workerRepo, attendanceRepo, settingsRepo)
	advanceSvc := advanceService.NewAdvanceService(advanceRepo, workerRepo)
	settingsSvc := settingsService.NewSettingsService(settingsRepo)
	authSvc := authService.NewAuthService(settingsRepo, jwtService)
	payrollSvc := payrollService.NewPayrollService(workerRepo, attendanceRepo, advanceRepo, settingsRepo)
	reportSvc := reportService.NewReportService(attendanceRepo, payrollSvc, settingsRepo)
	tripSvc := tripService.NewTripService(tripRepo, workerRepo)

	scheduler := cron.NewScheduler()
	backupService.RegisterJobs(scheduler, cfg.Backup.Interval)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(cfg.App.Env, cfg.App.LogLevel, jwtService, appHTTP.Handlers{
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Worker:     appHTTP.NewWorkerHandler(workerSvc, payrollSvc),
		Advance:    appHTTP.NewAdvanceHandler(advanceSvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
		Settings:   appHTTP.NewSettingsHandler(settingsSvc),
		Auth:       appHTTP.NewAuthHandler(authSvc),
		Backup:     appHTTP.NewBackupHandler(backupService),
		Trip:       appHTTP.NewTripHandler(tripSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
